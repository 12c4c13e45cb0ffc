package lint_test

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/mcandre/unmake/internal/classify"
	"github.com/mcandre/unmake/internal/lint"
	"github.com/mcandre/unmake/internal/parser"
	"github.com/mcandre/unmake/internal/policy"
	"github.com/mcandre/unmake/internal/testutil"
)

func TestGoldenReports(t *testing.T) {
	reportFn := func(input string) string {
		ast, perr := parser.ParseString(input)
		if perr != nil {
			return perr.Error() + "\n"
		}

		decision := &classify.Decision{Path: "Makefile"}
		warnings := policy.Lint(ast, decision, lint.Policies())

		var lines []string
		for _, w := range warnings {
			lines = append(lines, w.String())
		}
		if len(lines) == 0 {
			return ""
		}
		return strings.Join(lines, "\n") + "\n"
	}

	_, filename, _, _ := runtime.Caller(0)
	testdataDir := filepath.Join(filepath.Dir(filename), "testdata")

	testutil.RunGoldenDir(t, testdataDir, "input.mk", "expected.txt", reportFn)
}

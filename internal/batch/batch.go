// Package batch fans a set of candidate file paths out across goroutines,
// one per file, running classify -> parse -> lint independently and
// collecting every file's result. No file's outcome depends on another's.
package batch

import (
	"context"
	"os"
	"runtime"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/mcandre/unmake/internal/classify"
	"github.com/mcandre/unmake/internal/config"
	"github.com/mcandre/unmake/internal/parser"
	"github.com/mcandre/unmake/internal/policy"
	"github.com/mcandre/unmake/pkg/diagnostic"
)

// FileResult is one path's outcome: either a parse error, or a (possibly
// empty) set of warnings. The two are mutually exclusive, mirroring the
// same invariant the parser and lint engine already enforce per file.
type FileResult struct {
	Path       string
	Decision   *classify.Decision
	ParseError *diagnostic.ParseError
	Warnings   []*diagnostic.Warning
	Skipped    bool
	SkipReason string
}

// Run classifies, parses, and lints every path concurrently and returns one
// FileResult per input path, in input order. A read or stat failure on an
// individual file is reported in that file's FileResult.ParseError (with
// the I/O error text as Found) and does not stop the other files. Run
// itself only returns a non-nil error when ctx is cancelled; paths not yet
// started by then have a nil entry in the returned slice.
func Run(ctx context.Context, paths []string, cfg *config.Config, policies []policy.Policy) ([]*FileResult, error) {
	results := make([]*FileResult, len(paths))

	workers := runtime.NumCPU()
	if workers > len(paths) {
		workers = len(paths)
	}
	if workers < 1 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			results[i] = runOne(path, cfg, policies)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func runOne(path string, cfg *config.Config, policies []policy.Policy) *FileResult {
	for _, pattern := range cfg.Lint.Exclude {
		if ok, _ := doublestar.Match(pattern, path); ok {
			return &FileResult{Path: path, Skipped: true, SkipReason: "excluded by config"}
		}
	}

	decision, err := classify.Classify(path)
	if err != nil {
		return &FileResult{
			Path: path,
			ParseError: &diagnostic.ParseError{
				Path:  path,
				Found: err.Error(),
			},
		}
	}

	if decision.RejectReason != "" {
		return &FileResult{Path: path, Decision: decision, Skipped: true, SkipReason: decision.RejectReason}
	}
	if decision.IsMachineGenerated {
		return &FileResult{Path: path, Decision: decision, Skipped: true, SkipReason: "machine generated"}
	}
	if !decision.ShouldLint {
		return &FileResult{Path: path, Decision: decision, Skipped: true, SkipReason: "not linted"}
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return &FileResult{
			Path:     path,
			Decision: decision,
			ParseError: &diagnostic.ParseError{
				Path:  path,
				Found: err.Error(),
			},
		}
	}

	ast, perr := parser.Parse(path, src)
	if perr != nil {
		return &FileResult{Path: path, Decision: decision, ParseError: perr}
	}

	active := activePolicies(policies, cfg)
	warnings := policy.Lint(ast, decision, active)
	return &FileResult{Path: path, Decision: decision, Warnings: warnings}
}

func activePolicies(policies []policy.Policy, cfg *config.Config) []policy.Policy {
	if len(cfg.Lint.Rules) == 0 {
		return policies
	}
	var out []policy.Policy
	for _, p := range policies {
		if cfg.Disabled(p.Code()) {
			continue
		}
		out = append(out, p)
	}
	return out
}

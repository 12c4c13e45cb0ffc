package parser

import "testing"

func TestParseEmpty(t *testing.T) {
	ast, perr := ParseString("")
	if perr != nil {
		t.Fatalf("unexpected parse error: %v", perr)
	}
	if !ast.Empty {
		t.Errorf("expected Empty to be true")
	}
	if len(ast.Items) != 0 {
		t.Errorf("expected 0 items, got %d", len(ast.Items))
	}
}

func TestParseComment(t *testing.T) {
	tests := []struct {
		name string
		in   string
		text string
	}{
		{"hash only", "#\n", ""},
		{"simple", "# hello\n", "hello"},
		{"no space", "#hello\n", "hello"},
		{"leading indent", "  # indented\n", "indented"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ast, perr := ParseString(tt.in)
			if perr != nil {
				t.Fatalf("unexpected parse error: %v", perr)
			}
			if len(ast.Items) != 1 {
				t.Fatalf("expected 1 item, got %d", len(ast.Items))
			}
			it := ast.Items[0]
			if it.Kind != KindComment {
				t.Errorf("expected KindComment, got %v", it.Kind)
			}
			if it.Text != tt.text {
				t.Errorf("text: want %q, got %q", tt.text, it.Text)
			}
		})
	}
}

func TestParseMacroDefinition(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		op    AssignOp
		value string
	}{
		{"simple", "CC = gcc\n", OpSimple, "gcc"},
		{"immediate", "CC ::= gcc\n", OpImmediate, "gcc"},
		{"conditional", "CC ?= gcc\n", OpConditional, "gcc"},
		{"append", "CFLAGS += -Wall\n", OpAppend, "-Wall"},
		{"shell", "GITREV != git rev-parse HEAD\n", OpShell, "git rev-parse HEAD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ast, perr := ParseString(tt.in)
			if perr != nil {
				t.Fatalf("unexpected parse error: %v", perr)
			}
			if len(ast.Items) != 1 {
				t.Fatalf("expected 1 item, got %d", len(ast.Items))
			}
			it := ast.Items[0]
			if it.Kind != KindMacroDefinition {
				t.Fatalf("expected KindMacroDefinition, got %v", it.Kind)
			}
			if it.Op != tt.op {
				t.Errorf("op: want %q, got %q", tt.op, it.Op)
			}
			if it.Value != tt.value {
				t.Errorf("value: want %q, got %q", tt.value, it.Value)
			}
		})
	}
}

func TestParseWalrusIsError(t *testing.T) {
	_, perr := ParseString("M := 1\n")
	if perr == nil {
		t.Fatal("expected a parse error for ':='")
	}
	if perr.Found != "':'" {
		t.Errorf("found: want %q, got %q", "':'", perr.Found)
	}
	if perr.Line != 1 || perr.Column != 3 {
		t.Errorf("position: want line 1 column 3, got line %d column %d", perr.Line, perr.Column)
	}
}

func TestParseMacroValueContinuation(t *testing.T) {
	ast, perr := ParseString("SOURCES = main.go \\\n\tutils.go \\\n\thelpers.go\n")
	if perr != nil {
		t.Fatalf("unexpected parse error: %v", perr)
	}
	if len(ast.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(ast.Items))
	}
	want := "main.go utils.go helpers.go"
	if ast.Items[0].Value != want {
		t.Errorf("value: want %q, got %q", want, ast.Items[0].Value)
	}
}

func TestParseRuleSimple(t *testing.T) {
	ast, perr := ParseString("all: build test\n")
	if perr != nil {
		t.Fatalf("unexpected parse error: %v", perr)
	}
	if len(ast.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(ast.Items))
	}
	it := ast.Items[0]
	if it.Kind != KindRule {
		t.Fatalf("expected KindRule, got %v", it.Kind)
	}
	if len(it.Targets) != 1 || it.Targets[0] != "all" {
		t.Errorf("targets: got %v", it.Targets)
	}
	if len(it.Prerequisites) != 2 {
		t.Errorf("prerequisites: got %v", it.Prerequisites)
	}
}

func TestParseRuleWithRecipe(t *testing.T) {
	ast, perr := ParseString("build:\n\t@go build ./...\n")
	if perr != nil {
		t.Fatalf("unexpected parse error: %v", perr)
	}
	if len(ast.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(ast.Items))
	}
	it := ast.Items[0]
	if len(it.Commands) != 1 {
		t.Fatalf("expected 1 command, got %d", len(it.Commands))
	}
	cmd := it.Commands[0]
	if len(cmd.Prefixes) != 1 || cmd.Prefixes[0] != PrefixSilent {
		t.Errorf("prefixes: got %v", cmd.Prefixes)
	}
	if cmd.Body != "go build ./..." {
		t.Errorf("body: got %q", cmd.Body)
	}
}

func TestParseRuleBareColonRequiresContent(t *testing.T) {
	_, perr := ParseString("foo:\n")
	if perr == nil {
		t.Fatal("expected a parse error for an empty, non-special rule")
	}
}

func TestParseRuleBareSemicolonIsValid(t *testing.T) {
	ast, perr := ParseString("foo:;\n")
	if perr != nil {
		t.Fatalf("unexpected parse error: %v", perr)
	}
	if len(ast.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(ast.Items))
	}
	if ast.Items[0].InlineCommand == nil {
		t.Error("expected an (empty) inline command")
	}
}

func TestParseSpecialTargetRuleNeedsNoContent(t *testing.T) {
	ast, perr := ParseString(".POSIX:\n")
	if perr != nil {
		t.Fatalf("unexpected parse error: %v", perr)
	}
	if len(ast.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(ast.Items))
	}
}

func TestParseCliffhanger(t *testing.T) {
	_, perr := ParseString("FOO = bar \\\n")
	if perr == nil {
		t.Fatal("expected a cliffhanger parse error")
	}
}

func TestParseCarriageReturnIsError(t *testing.T) {
	_, perr := ParseString("all:\r\n\techo hi\n")
	if perr == nil {
		t.Fatal("expected a parse error for a carriage return")
	}
	if perr.Line != 1 || perr.Column != 5 {
		t.Fatalf("expected line 1 column 5, got line %d column %d", perr.Line, perr.Column)
	}
	if perr.Found != "'\\r'" {
		t.Fatalf("expected Found '\\r', got %q", perr.Found)
	}
}

func TestParseLeadingSpaceIsError(t *testing.T) {
	_, perr := ParseString(" CC = gcc\n")
	if perr == nil {
		t.Fatal("expected a parse error for leading whitespace")
	}
}

func TestParseInclude(t *testing.T) {
	ast, perr := ParseString("include config.mk\n")
	if perr != nil {
		t.Fatalf("unexpected parse error: %v", perr)
	}
	if len(ast.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(ast.Items))
	}
	it := ast.Items[0]
	if it.Kind != KindInclude {
		t.Fatalf("expected KindInclude, got %v", it.Kind)
	}
	if len(it.Paths) != 1 || it.Paths[0] != "config.mk" {
		t.Errorf("paths: got %v", it.Paths)
	}
}

func TestParseIncludeForbidsBackslash(t *testing.T) {
	_, perr := ParseString("include foo\\bar.mk\n")
	if perr == nil {
		t.Fatal("expected a parse error for a backslash in an include line")
	}
}

func TestParseNoFinalNewline(t *testing.T) {
	ast, perr := ParseString("all:;\n\t@echo hi")
	if perr != nil {
		t.Fatalf("unexpected parse error: %v", perr)
	}
	if ast.FinalNewline {
		t.Error("expected FinalNewline to be false")
	}
}

func TestParseColumnsAreCodepoints(t *testing.T) {
	// "É" is a single codepoint but two UTF-8 bytes; the column for the
	// assignment operator must count it as one.
	_, perr := ParseString("NAMÉ := x\n")
	if perr == nil {
		t.Fatal("expected a parse error for ':='")
	}
	if perr.Column != 6 {
		t.Errorf("column: want 6, got %d", perr.Column)
	}
}

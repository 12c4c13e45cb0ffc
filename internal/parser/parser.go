package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/mcandre/unmake/pkg/diagnostic"
)

// Parse converts raw makefile bytes into an AST, or the single earliest
// ParseError the grammar rejects the file on. Parsing never produces both.
func Parse(path string, src []byte) (*AST, *diagnostic.ParseError) {
	if off := validateUTF8(src); off >= 0 {
		pos := offsetToPosition(src, off)
		return nil, &diagnostic.ParseError{
			Path: path, Line: pos.Line, Column: pos.Column,
			Found: "invalid UTF-8 byte", Expected: []string{"valid UTF-8"},
		}
	}

	if len(src) == 0 {
		return &AST{Empty: true, FinalNewline: true}, nil
	}

	lines := splitPhysicalLines(src)

	st := &parseState{path: path, lines: lines}
	if perr := st.run(); perr != nil {
		return nil, perr
	}

	return &AST{Items: st.items, FinalNewline: src[len(src)-1] == '\n'}, nil
}

// ParseString is a convenience wrapper over Parse for tests and fuzzing,
// where a source path carries no meaning.
func ParseString(src string) (*AST, *diagnostic.ParseError) {
	return Parse("<string>", []byte(src))
}

// parseState drives the single forward pass over physical lines.
type parseState struct {
	path     string
	lines    []physicalLine
	idx      int
	items    []*Item
	openRule *Item
}

func (st *parseState) run() *diagnostic.ParseError {
	for st.idx < len(st.lines) {
		line := st.lines[st.idx]
		lineNum := st.idx + 1

		if line.Text == "" {
			if perr := st.closeRule(); perr != nil {
				return perr
			}
			st.idx++
			continue
		}

		switch line.Text[0] {
		case '#':
			st.items = append(st.items, parseCommentLine(line, lineNum))
			st.idx++
			continue

		case '\t':
			if st.openRule == nil {
				pos := positionFor(line, lineNum, 0)
				return &diagnostic.ParseError{
					Path: st.path, Line: pos.Line, Column: pos.Column,
					Found: "command line", Expected: []string{"comment", "macro definition", "rule"},
				}
			}
			cl, consumed, perr := st.parseCommandLine(lineNum)
			if perr != nil {
				return perr
			}
			st.openRule.Commands = append(st.openRule.Commands, cl)
			st.idx += consumed
			continue

		case ' ':
			stripped := strings.TrimLeft(line.Text, " ")
			nSpaces := len(line.Text) - len(stripped)
			if strings.HasPrefix(stripped, "#") {
				pos := positionFor(line, lineNum, nSpaces)
				text := strings.TrimPrefix(strings.TrimPrefix(stripped, "#"), " ")
				st.items = append(st.items, &Item{Kind: KindComment, Pos: pos, Text: text})
				st.idx++
				continue
			}
			pos := positionFor(line, lineNum, 0)
			return &diagnostic.ParseError{
				Path: st.path, Line: pos.Line, Column: pos.Column,
				Found: "' '", Expected: []string{"tab", "'#'", "non-blank character"},
			}

		default:
			if perr := st.closeRule(); perr != nil {
				return perr
			}
			consumed, perr := st.dispatchItem(line, lineNum)
			if perr != nil {
				return perr
			}
			st.idx += consumed
			continue
		}
	}

	return st.closeRule()
}

// closeRule checks the wholeness invariant on the currently open rule (if
// any) and clears it. Called whenever the recipe context ends: a blank
// line, a non-recipe top-level item, or end of file.
func (st *parseState) closeRule() *diagnostic.ParseError {
	if st.openRule == nil {
		return nil
	}
	if !st.openRule.HasContent() {
		pos := st.openRule.Pos
		return &diagnostic.ParseError{
			Path: st.path, Line: pos.Line, Column: pos.Column,
			Found: "end of rule", Expected: []string{"prerequisite", "command", "';'"},
		}
	}
	st.openRule = nil
	return nil
}

// dispatchItem classifies a line that starts with a non-whitespace,
// non-'#' byte: include directive, macro definition, or rule header.
func (st *parseState) dispatchItem(line physicalLine, lineNum int) (int, *diagnostic.ParseError) {
	trimmed := line.Text

	kw, rest, isInclude := matchInclude(trimmed)
	scan, hasOp := scanOperator(trimmed)

	// "include =foo.mk" reads as an include directive on its face, but the
	// leftmost-operator rule says otherwise: the token before the "=" is
	// "include" itself, so it is equally a macro named "include". POSIX
	// never resolves the tie; treat it as the macro definition (which
	// parses cleanly) and let UB_AMBIGUOUS_INCLUDE flag it instead of
	// failing the parse.
	if isInclude && hasOp && !scan.ruleColon {
		name := strings.TrimSpace(trimmed[:scan.index])
		if name == kw {
			isInclude = false
		}
	}

	if isInclude {
		return st.parseInclude(line, lineNum, kw, rest)
	}

	if !hasOp {
		if hasContinuationSignal(trimmed) {
			idx := len(trimmed) - 1
			pos := positionFor(line, lineNum, idx)
			return 0, &diagnostic.ParseError{
				Path: st.path, Line: pos.Line, Column: pos.Column,
				Found: "'\\'", Expected: []string{"macro name", "target"},
			}
		}
		pos := positionFor(line, lineNum, 0)
		return 0, &diagnostic.ParseError{
			Path: st.path, Line: pos.Line, Column: pos.Column,
			Found: foundToken(trimmed),
			Expected: []string{"macro definition", "rule", "include directive", "comment"},
		}
	}

	if scan.ruleColon {
		return st.parseRule(line, lineNum, scan.index)
	}

	return st.parseMacroDefinition(line, lineNum, scan)
}

func (st *parseState) parseInclude(line physicalLine, lineNum int, _, rest string) (int, *diagnostic.ParseError) {
	if idx := strings.IndexByte(line.Text, '\\'); idx >= 0 {
		pos := positionFor(line, lineNum, idx)
		return 0, &diagnostic.ParseError{
			Path: st.path, Line: pos.Line, Column: pos.Column,
			Found: "'\\'", Expected: []string{"end of line"},
		}
	}

	var paths []string
	if rest != "" {
		paths = strings.Fields(rest)
	}
	if len(paths) == 0 {
		pos := positionFor(line, lineNum, len(line.Text))
		return 0, &diagnostic.ParseError{
			Path: st.path, Line: pos.Line, Column: pos.Column,
			Found: "end of line", Expected: []string{"path"},
		}
	}

	st.items = append(st.items, &Item{
		Kind:  KindInclude,
		Pos:   positionFor(line, lineNum, 0),
		Paths: paths,
	})
	return 1, nil
}

func (st *parseState) parseMacroDefinition(line physicalLine, lineNum int, scan opScan) (int, *diagnostic.ParseError) {
	rawName := strings.TrimSpace(line.Text[:scan.index])
	name := rawName
	for _, mod := range []string{"override ", "export "} {
		if strings.HasPrefix(name, mod) {
			name = strings.TrimSpace(name[len(mod):])
		}
	}

	if scan.op == ":=" {
		pos := positionFor(line, lineNum, scan.index)
		return 0, &diagnostic.ParseError{
			Path: st.path, Line: pos.Line, Column: pos.Column,
			Found: "':'", Expected: []string{"=", "::=", "?=", "!=", "+="},
		}
	}

	if !macroNameRe.MatchString(name) {
		pos := positionFor(line, lineNum, 0)
		return 0, &diagnostic.ParseError{
			Path: st.path, Line: pos.Line, Column: pos.Column,
			Found: foundToken(rawName), Expected: []string{"macro name"},
		}
	}

	afterOp := scan.index + len(scan.op)

	chunks, consumed, cliffhanger := st.collectContinuedLines(st.idx)
	firstValuePart := ""
	if afterOp < len(chunks[0]) {
		firstValuePart = chunks[0][afterOp:]
	}
	chunks[0] = strings.TrimLeft(firstValuePart, " \t")

	if cliffhanger {
		pos := st.eofPosition()
		return 0, &diagnostic.ParseError{
			Path: st.path, Line: pos.Line, Column: pos.Column,
			Found: "end of file", Expected: []string{"continuation line"},
		}
	}

	st.items = append(st.items, &Item{
		Kind:  KindMacroDefinition,
		Pos:   positionFor(line, lineNum, 0),
		Name:  name,
		Op:    AssignOp(scan.op),
		Value: joinCollapsed(chunks),
	})
	return consumed, nil
}

func (st *parseState) parseRule(line physicalLine, lineNum int, colonIdx int) (int, *diagnostic.ParseError) {
	targetStr := strings.TrimSpace(line.Text[:colonIdx])
	if targetStr == "" {
		pos := positionFor(line, lineNum, colonIdx)
		return 0, &diagnostic.ParseError{
			Path: st.path, Line: pos.Line, Column: pos.Column,
			Found: "':'", Expected: []string{"target"},
		}
	}
	targets := strings.Fields(targetStr)

	if hasContinuationSignal(line.Text) {
		idx := len(line.Text) - 1
		pos := positionFor(line, lineNum, idx)
		return 0, &diagnostic.ParseError{
			Path: st.path, Line: pos.Line, Column: pos.Column,
			Found: "'\\'", Expected: []string{"prerequisite", "';'", "end of line"},
		}
	}

	rest := ""
	if colonIdx+1 < len(line.Text) {
		rest = line.Text[colonIdx+1:]
	}

	if crIdx := strings.IndexByte(rest, '\r'); crIdx >= 0 {
		pos := positionFor(line, lineNum, colonIdx+1+crIdx)
		return 0, &diagnostic.ParseError{
			Path: st.path, Line: pos.Line, Column: pos.Column,
			Found: "'\\r'", Expected: []string{".WAIT", "LF", "comment", "inline command", "macro expansion", "target"},
		}
	}

	item := &Item{
		Kind:    KindRule,
		Pos:     positionFor(line, lineNum, 0),
		Targets: targets,
	}

	if semiIdx := strings.IndexByte(rest, ';'); semiIdx >= 0 {
		prereqStr := strings.TrimSpace(rest[:semiIdx])
		item.Prerequisites = splitPrerequisites(prereqStr)

		cmdBody := strings.TrimLeft(rest[semiIdx+1:], " \t")
		prefixes, body := splitPrefixes(cmdBody)
		if strings.TrimSpace(body) == "" && len(prefixes) == 0 {
			item.explicitEmptyColon = true
		}
		item.InlineCommand = &CommandLine{
			Pos:      positionFor(line, lineNum, colonIdx+1+semiIdx+1),
			Prefixes: prefixes,
			Body:     body,
		}
	} else {
		item.Prerequisites = splitPrerequisites(strings.TrimSpace(rest))
	}

	st.items = append(st.items, item)
	st.openRule = item
	return 1, nil
}

func (st *parseState) parseCommandLine(lineNum int) (*CommandLine, int, *diagnostic.ParseError) {
	startIdx := st.idx
	line := st.lines[startIdx]
	body0 := strings.TrimPrefix(line.Text, "\t")

	chunks, consumed, cliffhanger := st.collectContinuedLines(startIdx)
	chunks[0] = body0
	for i := 1; i < len(chunks); i++ {
		chunks[i] = strings.TrimPrefix(chunks[i], "\t")
	}

	if cliffhanger {
		pos := st.eofPosition()
		return nil, 0, &diagnostic.ParseError{
			Path: st.path, Line: pos.Line, Column: pos.Column,
			Found: "end of file", Expected: []string{"continuation line"},
		}
	}

	body := strings.Join(chunks, "\n")
	prefixes, remBody := splitPrefixes(body)

	return &CommandLine{
		Pos:      positionFor(line, lineNum, 0),
		Prefixes: prefixes,
		Body:     remBody,
	}, consumed, nil
}

// collectContinuedLines gathers the raw physical-line chunks that make up a
// continuation sequence starting at lines[start], stripping exactly one
// trailing backslash from every non-final chunk (the continuation marker
// itself; any remaining backslashes were already verified even-parity and
// so are literal). cliffhanger is true when the file ends mid-continuation.
func (st *parseState) collectContinuedLines(start int) (chunks []string, consumed int, cliffhanger bool) {
	idx := start
	for {
		text := st.lines[idx].Text
		if !hasContinuationSignal(text) {
			chunks = append(chunks, text)
			consumed = idx - start + 1
			return chunks, consumed, false
		}
		chunks = append(chunks, strings.TrimSuffix(text, "\\"))
		idx++
		if idx >= len(st.lines) {
			return chunks, idx - start, true
		}
	}
}

func (st *parseState) eofPosition() Position {
	last := st.lines[len(st.lines)-1]
	return positionFor(last, len(st.lines), len(last.Text))
}

func parseCommentLine(line physicalLine, lineNum int) *Item {
	text := strings.TrimPrefix(line.Text, "#")
	text = strings.TrimPrefix(text, " ")
	return &Item{Kind: KindComment, Pos: positionFor(line, lineNum, 0), Text: text}
}

// joinCollapsed joins continuation chunks the way a macro value does:
// interior whitespace within each physical line survives untouched, but
// every join point collapses to exactly one space.
func joinCollapsed(chunks []string) string {
	parts := make([]string, len(chunks))
	for i, c := range chunks {
		if i > 0 {
			c = strings.TrimLeft(c, " \t")
		}
		if i < len(chunks)-1 {
			c = strings.TrimRight(c, " \t")
		}
		parts[i] = c
	}
	return strings.Join(parts, " ")
}

func splitPrerequisites(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Fields(s)
}

func foundToken(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "end of line"
	}
	fields := strings.Fields(s)
	tok := fields[0]
	if len(tok) > 24 {
		tok = tok[:24] + "..."
	}
	return "'" + tok + "'"
}

// offsetToPosition converts a byte offset into a 1-based line/column pair,
// counting columns in UTF-8 codepoints.
func offsetToPosition(src []byte, offset int) Position {
	line := 1
	lineStart := 0
	for i := 0; i < offset && i < len(src); i++ {
		if src[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	col := 1
	for i := lineStart; i < offset && i < len(src); {
		_, size := utf8.DecodeRune(src[i:])
		if size == 0 {
			size = 1
		}
		i += size
		col++
	}
	return Position{Offset: offset, Line: line, Column: col}
}

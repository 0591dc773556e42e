package datascript

import (
	"strconv"
	"strings"
)

// The command syntax predates the canonical one. A type reference in
// brackets selects a type and a record count, and the values follow in
// parentheses:
//
//	#typedef vec3 = float float float
//	#section origin
//	[vec3] (0 0 0)
//	[int:0] (1 2 3 4)
//
// [T] expects exactly one record, [T:N] expects N, and [T:0] or [T:] accepts
// any whole number of records. Commands start with # at the beginning of a
// line and run to its end.

type cmdMode int

const (
	cmdIdle cmdMode = iota
	cmdTypeRef
	cmdTypeCount
	cmdValues
	cmdString
	cmdCommand
)

var cmdModeNames = map[cmdMode]string{
	cmdIdle:      "idle",
	cmdTypeRef:   "type reference",
	cmdTypeCount: "type count",
	cmdValues:    "value group",
	cmdString:    "string",
	cmdCommand:   "command",
}

func (m cmdMode) String() string { return cmdModeNames[m] }

type commandScanner struct {
	doc       *Document
	mode      cmdMode
	modeLine  int
	prev      byte
	line      int
	lineStart bool

	types      map[string][]Kind
	current    []Kind
	records    int // expected records per group; 0 accepts any multiple
	groupStart int // index of the first token of the open group

	word       strings.Builder
	wordClosed bool
	args       []string

	open    bool
	lit     strings.Builder
	escaped bool
}

func newCommandScanner() *commandScanner {
	types := make(map[string][]Kind, len(keywords))
	for name, kind := range keywords {
		types[name] = []Kind{kind}
	}
	return &commandScanner{
		doc:       newDocument(),
		line:      1,
		prev:      '\n',
		lineStart: true,
		types:     types,
	}
}

// ParseCommands parses a source written in the command syntax. The result is
// interchangeable with a Document from Parse.
// Returns a *SyntaxError on failure.
func ParseCommands(src []byte) (*Document, error) {
	s := newCommandScanner()
	for _, ch := range src {
		if err := s.step(ch); err != nil {
			return nil, err
		}
	}
	if err := s.finish(); err != nil {
		return nil, err
	}
	return s.doc, nil
}

func (s *commandScanner) step(ch byte) error {
	var err error
	switch s.mode {
	case cmdIdle:
		err = s.stepIdle(ch)
	case cmdTypeRef:
		err = s.stepTypeRef(ch)
	case cmdTypeCount:
		err = s.stepTypeCount(ch)
	case cmdValues:
		err = s.stepValues(ch)
	case cmdString:
		if stringByte(&s.lit, &s.escaped, ch) {
			s.mode = cmdValues
		}
	case cmdCommand:
		err = s.stepCommand(ch)
	}
	if ch == '\n' {
		s.line++
		s.lineStart = true
	} else if ch != ' ' && ch != '\t' && ch != '\r' {
		s.lineStart = false
	}
	s.prev = ch
	return err
}

func (s *commandScanner) enter(m cmdMode) {
	s.mode = m
	s.modeLine = s.line
}

func (s *commandScanner) stepIdle(ch byte) error {
	switch {
	case isSeparator(ch):
		return nil
	case ch == '[':
		s.word.Reset()
		s.wordClosed = false
		s.records = 1
		s.enter(cmdTypeRef)
		return nil
	case ch == '(':
		if s.current == nil {
			return syntaxErrorf(ErrMissingTypeList, s.line, "value group before any [type]")
		}
		s.groupStart = s.doc.Len()
		s.enter(cmdValues)
		return nil
	case ch == '#':
		if !s.lineStart {
			return syntaxErrorf(ErrUnexpectedChar, s.line, "'#' must start a line")
		}
		s.word.Reset()
		s.args = s.args[:0]
		s.enter(cmdCommand)
		return nil
	default:
		return syntaxErrorf(ErrUnexpectedChar, s.line, "unexpected %q outside a group", ch)
	}
}

func (s *commandScanner) stepTypeRef(ch byte) error {
	switch {
	case ch == ' ' || ch == '\t':
		if s.word.Len() > 0 {
			s.wordClosed = true
		}
		return nil
	case isLetter(ch) || isDigit(ch) || ch == '_':
		if s.wordClosed {
			return syntaxErrorf(ErrUnexpectedChar, s.line, "type reference names more than one type")
		}
		s.word.WriteByte(ch)
		return nil
	case ch == ':':
		s.records = 0
		s.mode = cmdTypeCount
		return nil
	case ch == ']':
		return s.resolveType()
	default:
		return syntaxErrorf(ErrUnexpectedChar, s.line, "unexpected %q in type reference", ch)
	}
}

func (s *commandScanner) stepTypeCount(ch byte) error {
	switch {
	case ch == ' ' || ch == '\t':
		return nil
	case isDigit(ch):
		s.records = s.records*10 + int(ch-'0')
		if s.records > maxRepeatCount {
			return syntaxErrorf(ErrBadRepeatCount, s.line, "record count exceeds %d", maxRepeatCount)
		}
		return nil
	case ch == ']':
		return s.resolveType()
	default:
		return syntaxErrorf(ErrBadRepeatCount, s.line, "unexpected %q in record count", ch)
	}
}

func (s *commandScanner) resolveType() error {
	name := s.word.String()
	kinds, ok := s.types[name]
	if !ok {
		return syntaxErrorf(ErrUnknownType, s.line, "unknown type %q", name)
	}
	s.current = kinds
	s.mode = cmdIdle
	return nil
}

func (s *commandScanner) stepValues(ch byte) error {
	switch {
	case isSeparator(ch):
		return nil
	case ch == ')':
		return s.closeGroup()
	case ch == '(' || ch == '[' || ch == ']' || ch == '#':
		return syntaxErrorf(ErrUnexpectedChar, s.line, "unexpected %q inside a value group", ch)
	}
	if !s.open || isSeparator(s.prev) || s.prev == '(' {
		s.finishToken()
		n := s.doc.Len() - s.groupStart
		s.doc.appendToken(s.current[n%len(s.current)], s.line)
		s.open = true
	}
	s.lit.WriteByte(ch)
	if ch == '"' {
		s.escaped = false
		s.mode = cmdString
	}
	return nil
}

func (s *commandScanner) finishToken() {
	if !s.open {
		return
	}
	s.open = false
	s.doc.tokens[len(s.doc.tokens)-1].Literal = s.lit.String()
	s.lit.Reset()
}

// closeGroup checks the record count of the group and validates its literals.
func (s *commandScanner) closeGroup() error {
	s.finishToken()
	n := s.doc.Len() - s.groupStart
	width := len(s.current)
	if (s.records == 0 && n%width != 0) || (s.records > 0 && n != s.records*width) {
		return syntaxErrorf(ErrIncompleteRecord, s.line,
			"group holds %d value(s), want %s of %d", n, recordsWant(s.records), width)
	}
	for _, tok := range s.doc.tokens[s.groupStart:] {
		if _, err := Convert(tok.Kind, tok.Literal); err != nil {
			return atLine(err, tok.Line)
		}
	}
	s.mode = cmdIdle
	return nil
}

func recordsWant(records int) string {
	if records == 0 {
		return "a multiple"
	}
	return strconv.Itoa(records) + " record(s)"
}

func (s *commandScanner) stepCommand(ch byte) error {
	switch {
	case ch == '\n':
		s.closeArg()
		s.mode = cmdIdle
		return s.runCommand()
	case isSeparator(ch):
		s.closeArg()
		return nil
	default:
		s.word.WriteByte(ch)
		return nil
	}
}

func (s *commandScanner) closeArg() {
	if s.word.Len() == 0 {
		return
	}
	s.args = append(s.args, s.word.String())
	s.word.Reset()
}

func (s *commandScanner) runCommand() error {
	args := s.args
	if len(args) == 0 {
		return syntaxErrorf(ErrUnknownCommand, s.line, "empty command")
	}
	switch args[0] {
	case "section":
		if len(args) != 2 {
			return syntaxErrorf(ErrUnknownCommand, s.line, "usage: #section <name>")
		}
		if !s.doc.addLabel(args[1]) {
			return syntaxErrorf(ErrDuplicateLabel, s.line, "section %q already declared", args[1])
		}
		return nil
	case "typedef":
		if len(args) < 4 || args[2] != "=" {
			return syntaxErrorf(ErrUnknownCommand, s.line, "usage: #typedef <name> = <type>...")
		}
		return s.typedef(args[1], args[3:])
	default:
		return syntaxErrorf(ErrUnknownCommand, s.line, "unknown command %q", args[0])
	}
}

func (s *commandScanner) typedef(name string, parts []string) error {
	if _, ok := s.types[name]; ok {
		return syntaxErrorf(ErrDuplicateType, s.line, "type %q already defined", name)
	}
	var kinds []Kind
	for _, part := range parts {
		sub, ok := s.types[part]
		if !ok {
			return syntaxErrorf(ErrUnknownType, s.line, "unknown type %q in typedef %q", part, name)
		}
		kinds = append(kinds, sub...)
	}
	s.types[name] = kinds
	return nil
}

func (s *commandScanner) finish() error {
	switch s.mode {
	case cmdIdle:
		return nil
	case cmdCommand:
		s.closeArg()
		s.mode = cmdIdle
		return s.runCommand()
	default:
		return syntaxErrorf(ErrUnterminated, s.modeLine, "unterminated %s at end of input", s.mode)
	}
}

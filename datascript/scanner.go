package datascript

import (
	"strconv"
	"strings"
)

// maxRepeatCount bounds :N so a typo cannot allocate an enormous type list.
const maxRepeatCount = 1 << 20

type scanMode int

const (
	modeIdle scanMode = iota
	modeTypeList
	modeRepeatCount
	modeLabel
	modeString
	modeComment
)

var scanModeNames = map[scanMode]string{
	modeIdle:        "idle",
	modeTypeList:    "type list",
	modeRepeatCount: "repeat count",
	modeLabel:       "label",
	modeString:      "string",
	modeComment:     "comment",
}

func (m scanMode) String() string { return scanModeNames[m] }

// scanner is the canonical-syntax state machine. It consumes one byte at a
// time and remembers the previous byte to tell whether a value character
// starts a new token or extends the current one.
type scanner struct {
	doc      *Document
	mode     scanMode
	modeLine int // line where the current non-idle mode was entered
	prev     byte
	line     int

	current []Kind // kinds of the active block
	offset  int    // round-robin position within current

	pending    []Kind // block under construction
	repeatable bool   // the last pending kind may still take :N
	word       strings.Builder

	open    bool // the last token is still accepting characters
	lit     strings.Builder
	escaped bool
}

func newScanner() *scanner {
	return &scanner{doc: newDocument(), line: 1, prev: '\n'}
}

// scan runs src through the state machine and returns the finished document.
func (s *scanner) scan(src []byte) (*Document, error) {
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

func (s *scanner) step(ch byte) error {
	var err error
	switch s.mode {
	case modeIdle:
		err = s.stepIdle(ch)
	case modeTypeList:
		err = s.stepTypeList(ch)
	case modeRepeatCount:
		err = s.stepRepeatCount(ch)
	case modeLabel:
		err = s.stepLabel(ch)
	case modeString:
		s.stepString(ch)
	case modeComment:
		if ch == '\n' {
			s.mode = modeIdle
		}
	}
	if ch == '\n' {
		s.line++
	}
	s.prev = ch
	return err
}

func (s *scanner) enter(m scanMode) {
	s.mode = m
	s.modeLine = s.line
}

func (s *scanner) stepIdle(ch byte) error {
	switch {
	case isSeparator(ch):
		return nil
	case ch == '(':
		if err := s.finishToken(); err != nil {
			return err
		}
		s.pending = s.pending[:0]
		s.repeatable = false
		s.word.Reset()
		s.enter(modeTypeList)
		return nil
	case ch == '[':
		s.word.Reset()
		s.enter(modeLabel)
		return nil
	case ch == '#':
		s.enter(modeComment)
		return nil
	case ch == ')' || ch == ']':
		return syntaxErrorf(ErrUnexpectedChar, s.line, "unexpected %q outside a block", ch)
	}

	if !s.open || startsValue(s.prev) {
		if err := s.startToken(); err != nil {
			return err
		}
	}
	s.lit.WriteByte(ch)
	if ch == '"' {
		s.escaped = false
		s.enter(modeString)
	}
	return nil
}

func (s *scanner) stepString(ch byte) {
	if stringByte(&s.lit, &s.escaped, ch) {
		s.mode = modeIdle
	}
}

// stringByte feeds one byte of a quoted literal into lit. A backslash is
// dropped and the byte after it kept verbatim. It reports true when ch is
// the closing quote, which is kept.
func stringByte(lit *strings.Builder, escaped *bool, ch byte) bool {
	switch {
	case *escaped:
		lit.WriteByte(ch)
		*escaped = false
	case ch == '\\':
		*escaped = true
	case ch == '"':
		lit.WriteByte(ch)
		return true
	default:
		lit.WriteByte(ch)
	}
	return false
}

func (s *scanner) stepTypeList(ch byte) error {
	switch {
	case isLetter(ch):
		s.word.WriteByte(ch)
		return nil
	case isSeparator(ch):
		return s.closeKeyword()
	case ch == ':':
		if err := s.closeKeyword(); err != nil {
			return err
		}
		if !s.repeatable {
			return syntaxErrorf(ErrBadRepeatCount, s.line, "':' must follow a type keyword")
		}
		s.word.Reset()
		s.mode = modeRepeatCount
		return nil
	case ch == ')':
		if err := s.closeKeyword(); err != nil {
			return err
		}
		return s.finalizeBlock()
	default:
		return syntaxErrorf(ErrUnexpectedChar, s.line, "unexpected %q in type list", ch)
	}
}

func (s *scanner) stepRepeatCount(ch byte) error {
	switch {
	case isDigit(ch):
		s.word.WriteByte(ch)
		return nil
	case isSeparator(ch):
		if err := s.applyRepeat(); err != nil {
			return err
		}
		s.mode = modeTypeList
		return nil
	case ch == ')':
		if err := s.applyRepeat(); err != nil {
			return err
		}
		return s.finalizeBlock()
	default:
		return syntaxErrorf(ErrBadRepeatCount, s.line, "unexpected %q in repeat count", ch)
	}
}

func (s *scanner) stepLabel(ch byte) error {
	switch ch {
	case '\n':
		return syntaxErrorf(ErrBadLabel, s.line, "newline inside label")
	case '[':
		return syntaxErrorf(ErrUnexpectedChar, s.line, "unexpected '[' inside label")
	case ']':
		name := strings.TrimSpace(s.word.String())
		if name == "" {
			return syntaxErrorf(ErrBadLabel, s.line, "empty label name")
		}
		if !s.doc.addLabel(name) {
			return syntaxErrorf(ErrDuplicateLabel, s.line, "label %q already declared", name)
		}
		s.mode = modeIdle
		return nil
	default:
		s.word.WriteByte(ch)
		return nil
	}
}

func (s *scanner) closeKeyword() error {
	if s.word.Len() == 0 {
		return nil
	}
	keyword := s.word.String()
	s.word.Reset()
	kind, ok := LookupKind(keyword)
	if !ok {
		return syntaxErrorf(ErrUnknownType, s.line, "unknown type %q", keyword)
	}
	s.pending = append(s.pending, kind)
	s.repeatable = true
	return nil
}

func (s *scanner) applyRepeat() error {
	digits := s.word.String()
	s.word.Reset()
	n, err := strconv.ParseInt(digits, 10, 32)
	if err != nil || n < 1 || n > maxRepeatCount {
		e := syntaxErrorf(ErrBadRepeatCount, s.line, "repeat count %q must be between 1 and %d", digits, maxRepeatCount)
		e.Cause = err
		return e
	}
	last := s.pending[len(s.pending)-1]
	for i := int64(1); i < n; i++ {
		s.pending = append(s.pending, last)
	}
	s.repeatable = false
	return nil
}

func (s *scanner) finalizeBlock() error {
	if len(s.pending) == 0 {
		return syntaxErrorf(ErrEmptyTypeList, s.line, "type list declares no types")
	}
	s.current = append([]Kind(nil), s.pending...)
	s.offset = 0
	s.mode = modeIdle
	return nil
}

// startToken closes out the previous token and opens a new one with the
// next kind of the active block.
func (s *scanner) startToken() error {
	if err := s.finishToken(); err != nil {
		return err
	}
	if len(s.current) == 0 {
		return syntaxErrorf(ErrMissingTypeList, s.line, "value has no declared type")
	}
	s.doc.appendToken(s.current[s.offset], s.line)
	s.offset = (s.offset + 1) % len(s.current)
	s.open = true
	return nil
}

// finishToken freezes the open token's literal and validates it against its
// kind. This is the only place literal syntax is checked during a scan.
func (s *scanner) finishToken() error {
	if !s.open {
		return nil
	}
	s.open = false
	tok := &s.doc.tokens[len(s.doc.tokens)-1]
	tok.Literal = s.lit.String()
	s.lit.Reset()
	if _, err := Convert(tok.Kind, tok.Literal); err != nil {
		return atLine(err, tok.Line)
	}
	return nil
}

func (s *scanner) checkRecord() error {
	if s.offset == 0 {
		return nil
	}
	return syntaxErrorf(ErrIncompleteRecord, s.line,
		"block of %d types ended after %d value(s) of its last record", len(s.current), s.offset)
}

func (s *scanner) finish() error {
	switch s.mode {
	case modeIdle, modeComment:
	default:
		return syntaxErrorf(ErrUnterminated, s.modeLine, "unterminated %s at end of input", s.mode)
	}
	if err := s.finishToken(); err != nil {
		return err
	}
	return s.checkRecord()
}

// atLine stamps a line onto a *SyntaxError produced without one.
func atLine(err error, line int) error {
	if se, ok := err.(*SyntaxError); ok {
		se.Line = line
		return se
	}
	return err
}

func isSeparator(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == ',' || ch == '\r' || ch == '\n'
}

// startsValue reports whether a value character following prev begins a new
// token rather than extending the current one.
func startsValue(prev byte) bool {
	return isSeparator(prev) || prev == ')' || prev == ']'
}

package datascript

import "fmt"

// ErrorCode classifies a syntax error found while loading a document.
type ErrorCode int

const (
	ErrUnexpectedChar   ErrorCode = iota + 1 // character not allowed in the current mode
	ErrUnknownType                           // type keyword outside the catalog
	ErrEmptyTypeList                         // () with no types
	ErrBadRepeatCount                        // :N missing, zero or out of range
	ErrMissingTypeList                       // value before any type block
	ErrInvalidLiteral                        // literal rejected by its kind
	ErrBadLabel                              // empty label or newline inside [...]
	ErrDuplicateLabel                        // label declared twice
	ErrUnterminated                          // block, label or string still open at end of input
	ErrIncompleteRecord                      // value count not a whole number of records
	ErrUnknownCommand                        // unrecognized or ill-formed #command
	ErrDuplicateType                         // #typedef of a name already defined
)

var errorCodeNames = map[ErrorCode]string{
	ErrUnexpectedChar:   "unexpected character",
	ErrUnknownType:      "unknown type",
	ErrEmptyTypeList:    "empty type list",
	ErrBadRepeatCount:   "bad repeat count",
	ErrMissingTypeList:  "missing type list",
	ErrInvalidLiteral:   "invalid literal",
	ErrBadLabel:         "bad label",
	ErrDuplicateLabel:   "duplicate label",
	ErrUnterminated:     "unterminated",
	ErrIncompleteRecord: "incomplete record",
	ErrUnknownCommand:   "unknown command",
	ErrDuplicateType:    "duplicate type",
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

// SyntaxError is the diagnostic attached to a malformed document.
type SyntaxError struct {
	Code    ErrorCode
	Message string
	Line    int // 1-based
	Cause   error
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %s", e.Line, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *SyntaxError) Unwrap() error { return e.Cause }

func syntaxErrorf(code ErrorCode, line int, format string, args ...any) *SyntaxError {
	return &SyntaxError{Code: code, Line: line, Message: fmt.Sprintf(format, args...)}
}

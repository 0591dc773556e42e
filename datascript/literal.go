package datascript

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errSyntax = errors.New("not a decimal literal")

// Validate reports whether literal is well formed for kind. The scanner and
// the Reader both go through Convert, so the two always agree.
func Validate(kind Kind, literal string) bool {
	_, err := Convert(kind, literal)
	return err == nil
}

// Convert turns a raw literal into its typed value: int32, uint32, int64,
// uint64, float32, float64 or string. String literals must still carry their
// surrounding quotes; the returned value has them stripped. A failure is a
// *SyntaxError with code ErrInvalidLiteral and no line.
func Convert(kind Kind, literal string) (any, error) {
	s := strings.TrimSpace(literal)
	switch kind {
	case KindInt32:
		n, err := parseSigned(s, 32)
		return int32(n), literalError(kind, literal, err)
	case KindUint32:
		n, err := parseUnsigned(s, 32)
		return uint32(n), literalError(kind, literal, err)
	case KindInt64:
		n, err := parseSigned(s, 64)
		return n, literalError(kind, literal, err)
	case KindUint64:
		n, err := parseUnsigned(s, 64)
		return n, literalError(kind, literal, err)
	case KindFloat32:
		f, err := parseFloat(s, 32)
		return float32(f), literalError(kind, literal, err)
	case KindFloat64:
		f, err := parseFloat(s, 64)
		return f, literalError(kind, literal, err)
	case KindString:
		str, err := unquote(s)
		return str, literalError(kind, literal, err)
	default:
		return nil, literalError(kind, literal, fmt.Errorf("unknown kind %d", int(kind)))
	}
}

func literalError(kind Kind, literal string, err error) error {
	if err == nil {
		return nil
	}
	return &SyntaxError{
		Code:    ErrInvalidLiteral,
		Message: fmt.Sprintf("%q is not a valid %s", literal, kind),
		Cause:   err,
	}
}

func parseSigned(s string, bits int) (int64, error) {
	if !isDecimalInteger(s) {
		return 0, errSyntax
	}
	return strconv.ParseInt(s, 10, bits)
}

func parseUnsigned(s string, bits int) (uint64, error) {
	if strings.HasPrefix(s, "-") {
		return 0, errors.New("negative value for unsigned kind")
	}
	if !isDecimalInteger(s) {
		return 0, errSyntax
	}
	return strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, bits)
}

func parseFloat(s string, bits int) (float64, error) {
	if !isDecimalFloat(s) {
		return 0, errSyntax
	}
	return strconv.ParseFloat(s, bits)
}

func unquote(s string) (string, error) {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", errors.New("string literal must be enclosed in double quotes")
	}
	return s[1 : len(s)-1], nil
}

// isDecimalInteger accepts [+-]?[0-9]+.
func isDecimalInteger(s string) bool {
	s = trimSign(s)
	return s != "" && countDigits(s) == len(s)
}

// isDecimalFloat accepts [+-]?(digits[.digits?]|.digits)([eE][+-]?digits)?.
// strconv alone would also take inf, nan, hex mantissas and underscores.
func isDecimalFloat(s string) bool {
	s = trimSign(s)
	intPart := countDigits(s)
	s = s[intPart:]
	fracPart := 0
	if strings.HasPrefix(s, ".") {
		s = s[1:]
		fracPart = countDigits(s)
		s = s[fracPart:]
	}
	if intPart == 0 && fracPart == 0 {
		return false
	}
	if s == "" {
		return true
	}
	if s[0] != 'e' && s[0] != 'E' {
		return false
	}
	s = trimSign(s[1:])
	return s != "" && countDigits(s) == len(s)
}

func trimSign(s string) string {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		return s[1:]
	}
	return s
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	return n
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// Quote renders s as a string literal that scans back to s: the result is
// wrapped in double quotes and every " and \ is escaped with a backslash.
func Quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte('"')
	return sb.String()
}

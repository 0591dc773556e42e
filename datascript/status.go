package datascript

import "strings"

// Status is the composite reader state. Its flags are independent and may be
// set together. A Malformed reader holds no values, so it is also Exhausted.
type Status uint8

const (
	// Malformed means the source failed to load. It is permanent.
	Malformed Status = 1 << iota
	// TypeMismatch means the last extraction asked for the wrong kind.
	TypeMismatch
	// Exhausted means the cursor is at or past the last value.
	Exhausted
)

// OK reports whether no flag is set.
func (s Status) OK() bool { return s == 0 }

// Has reports whether every flag in f is set.
func (s Status) Has(f Status) bool { return f != 0 && s&f == f }

func (s Status) String() string {
	if s == 0 {
		return "ok"
	}
	var parts []string
	if s.Has(Malformed) {
		parts = append(parts, "malformed")
	}
	if s.Has(TypeMismatch) {
		parts = append(parts, "type-mismatch")
	}
	if s.Has(Exhausted) {
		parts = append(parts, "exhausted")
	}
	return strings.Join(parts, "|")
}

package datascript

import (
	"fmt"
	"io"
	"os"
)

// Syntax selects the front-end used to parse a source.
type Syntax int

const (
	// SyntaxCanonical is the (types) values / [label] / # comment format.
	SyntaxCanonical Syntax = iota
	// SyntaxCommands is the [type:N] (values) / #typedef / #section format.
	SyntaxCommands
)

func (s Syntax) String() string {
	switch s {
	case SyntaxCanonical:
		return "canonical"
	case SyntaxCommands:
		return "commands"
	default:
		return fmt.Sprintf("Syntax(%d)", int(s))
	}
}

// ParseSyntax resolves a syntax name as accepted on the command line.
func ParseSyntax(name string) (Syntax, error) {
	switch name {
	case "", "canonical":
		return SyntaxCanonical, nil
	case "commands", "legacy":
		return SyntaxCommands, nil
	default:
		return 0, fmt.Errorf("unknown syntax %q (want canonical or commands)", name)
	}
}

// Parse parses a canonical-syntax source.
// Returns a *SyntaxError on failure.
func Parse(src []byte) (*Document, error) {
	return newScanner().scan(src)
}

// Option configures how a source is loaded.
type Option func(*loadConfig)

type loadConfig struct {
	syntax Syntax
}

// WithSyntax selects the front-end. The default is SyntaxCanonical.
func WithSyntax(s Syntax) Option {
	return func(c *loadConfig) { c.syntax = s }
}

func parseWith(src []byte, opts []Option) (*Document, error) {
	cfg := loadConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.syntax == SyntaxCommands {
		return ParseCommands(src)
	}
	return Parse(src)
}

// Load parses src and returns a Reader positioned at the first value. A
// syntax error does not fail the call: the Reader comes back Malformed and
// carries the diagnostic in Err.
func Load(src []byte, opts ...Option) *Reader {
	doc, err := parseWith(src, opts)
	if err != nil {
		return malformedReader(err)
	}
	return NewReader(doc)
}

// ReadAll consumes r and loads its content. The error reports I/O failures
// only; syntax errors surface through the Reader's Status.
func ReadAll(r io.Reader, opts ...Option) (*Reader, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}
	return Load(src, opts...), nil
}

// LoadFile reads and loads the file at path.
func LoadFile(path string, opts ...Option) (*Reader, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Load(src, opts...), nil
}

package datascript

import "sort"

// Token is one value slot in document order, before conversion.
type Token struct {
	Kind    Kind
	Literal string // source text; strings keep their quotes, escapes already applied
	Line    int    // 1-based line where the literal starts
}

// Label is a named position in the token sequence.
type Label struct {
	Name  string
	Index int
}

// Document is the parsed form of a DataScript source: the token sequence
// and the label table. It is immutable once returned by Parse and may back
// any number of Readers.
type Document struct {
	tokens []Token
	labels map[string]int
}

func newDocument() *Document {
	return &Document{labels: make(map[string]int)}
}

// Len returns the number of value tokens.
func (d *Document) Len() int { return len(d.tokens) }

// Token returns the token at index i. It reports false when i is out of range.
func (d *Document) Token(i int) (Token, bool) {
	if i < 0 || i >= len(d.tokens) {
		return Token{}, false
	}
	return d.tokens[i], true
}

// Tokens returns a copy of the token sequence.
func (d *Document) Tokens() []Token {
	out := make([]Token, len(d.tokens))
	copy(out, d.tokens)
	return out
}

// LabelIndex returns the token index recorded for name.
func (d *Document) LabelIndex(name string) (int, bool) {
	i, ok := d.labels[name]
	return i, ok
}

// Labels returns all labels ordered by index, then by name.
func (d *Document) Labels() []Label {
	out := make([]Label, 0, len(d.labels))
	for name, idx := range d.labels {
		out = append(out, Label{Name: name, Index: idx})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Index != out[j].Index {
			return out[i].Index < out[j].Index
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (d *Document) appendToken(kind Kind, line int) {
	d.tokens = append(d.tokens, Token{Kind: kind, Line: line})
}

// addLabel records name at the next token index. It reports false if the
// name is already taken.
func (d *Document) addLabel(name string) bool {
	if _, ok := d.labels[name]; ok {
		return false
	}
	d.labels[name] = len(d.tokens)
	return true
}

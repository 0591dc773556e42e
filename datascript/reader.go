package datascript

import "fmt"

// Scalar is the set of Go types a Reader can extract.
type Scalar interface {
	int32 | uint32 | int64 | uint64 | float32 | float64 | string
}

// Reader is a typed cursor over a Document. The cursor only moves forward on
// successful reads unless it is repositioned with Goto or GotoLabel.
//
// A Reader is not safe for concurrent use. Give each goroutine its own Reader
// over a shared Document instead.
type Reader struct {
	doc    *Document
	cursor int
	status Status
	err    *SyntaxError
}

// NewReader returns a Reader positioned at the first value of doc.
func NewReader(doc *Document) *Reader {
	r := &Reader{doc: doc}
	r.updateExhausted()
	return r
}

func malformedReader(err error) *Reader {
	r := &Reader{doc: newDocument(), status: Malformed | Exhausted}
	se, ok := err.(*SyntaxError)
	if !ok {
		se = &SyntaxError{Message: err.Error(), Cause: err}
	}
	r.err = se
	return r
}

// Status returns the current flags.
func (r *Reader) Status() Status { return r.status }

// Err returns the load diagnostic of a Malformed reader, or nil.
func (r *Reader) Err() error {
	if r.err == nil {
		return nil
	}
	return r.err
}

// Document returns the document backing r.
func (r *Reader) Document() *Document { return r.doc }

// Len returns the number of values in the document.
func (r *Reader) Len() int { return r.doc.Len() }

// Index returns the cursor position.
func (r *Reader) Index() int { return r.cursor }

// LabelIndex returns the index recorded for a label.
func (r *Reader) LabelIndex(name string) (int, bool) { return r.doc.LabelIndex(name) }

// Peek returns the kind of the value under the cursor without consuming it.
func (r *Reader) Peek() (Kind, bool) {
	if r.status.Has(Malformed) {
		return 0, false
	}
	tok, ok := r.doc.Token(r.cursor)
	return tok.Kind, ok
}

// Goto moves the cursor to index i. An index past the end is clamped to the
// end and leaves the reader Exhausted; a negative index is ignored.
func (r *Reader) Goto(i int) {
	if r.status.Has(Malformed) || i < 0 {
		return
	}
	if i > r.doc.Len() {
		i = r.doc.Len()
	}
	r.cursor = i
	r.updateExhausted()
}

// GotoLabel moves the cursor to a label. Unknown labels are ignored.
func (r *Reader) GotoLabel(name string) {
	i, ok := r.doc.LabelIndex(name)
	if !ok {
		return
	}
	r.Goto(i)
}

func (r *Reader) updateExhausted() {
	if r.cursor >= r.doc.Len() {
		r.status |= Exhausted
	} else {
		r.status &^= Exhausted
	}
}

// read converts the value under the cursor if it has the wanted kind.
func (r *Reader) read(want Kind) (any, bool) {
	if r.status.Has(Malformed) || r.status.Has(Exhausted) {
		return nil, false
	}
	r.status &^= TypeMismatch
	tok := r.doc.tokens[r.cursor]
	if tok.Kind != want {
		r.status |= TypeMismatch
		return nil, false
	}
	v, err := Convert(tok.Kind, tok.Literal)
	if err != nil {
		// Tokens are validated while scanning.
		panic(fmt.Sprintf("datascript: token %d failed conversion after validation: %v", r.cursor, err))
	}
	r.cursor++
	r.updateExhausted()
	return v, true
}

// ReadAs extracts the next value as T. On a kind mismatch it sets
// TypeMismatch and leaves the cursor in place; on any failure it returns the
// zero value.
func ReadAs[T Scalar](r *Reader) T {
	var zero T
	v, ok := r.read(kindOf(zero))
	if !ok {
		return zero
	}
	return v.(T)
}

func kindOf(v any) Kind {
	switch v.(type) {
	case int32:
		return KindInt32
	case uint32:
		return KindUint32
	case int64:
		return KindInt64
	case uint64:
		return KindUint64
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	default:
		return KindString
	}
}

// Int32 reads an int value.
func (r *Reader) Int32() int32 { return ReadAs[int32](r) }

// Uint32 reads a uint value.
func (r *Reader) Uint32() uint32 { return ReadAs[uint32](r) }

// Int64 reads a long value.
func (r *Reader) Int64() int64 { return ReadAs[int64](r) }

// Uint64 reads a ulong value.
func (r *Reader) Uint64() uint64 { return ReadAs[uint64](r) }

// Float32 reads a float value.
func (r *Reader) Float32() float32 { return ReadAs[float32](r) }

// Float64 reads a double value.
func (r *Reader) Float64() float64 { return ReadAs[float64](r) }

// Text reads a string value.
func (r *Reader) Text() string { return ReadAs[string](r) }

// Scan reads consecutive values into dst, which must be pointers to Scalar
// types. It stops at the first read that fails and returns the status at that
// point; destinations that were not read are left untouched. An unsupported
// destination type sets TypeMismatch.
func (r *Reader) Scan(dst ...any) Status {
	for _, d := range dst {
		if r.status.Has(Malformed) || r.status.Has(Exhausted) {
			break
		}
		var ok bool
		switch p := d.(type) {
		case *int32:
			ok = scanInto(r, p)
		case *uint32:
			ok = scanInto(r, p)
		case *int64:
			ok = scanInto(r, p)
		case *uint64:
			ok = scanInto(r, p)
		case *float32:
			ok = scanInto(r, p)
		case *float64:
			ok = scanInto(r, p)
		case *string:
			ok = scanInto(r, p)
		default:
			r.status |= TypeMismatch
		}
		if !ok {
			break
		}
	}
	return r.status
}

func scanInto[T Scalar](r *Reader, p *T) bool {
	if p == nil {
		r.status |= TypeMismatch
		return false
	}
	v, ok := r.read(kindOf(*p))
	if ok {
		*p = v.(T)
	}
	return ok
}

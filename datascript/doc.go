// Package datascript implements a reader for DataScript documents.
//
// A DataScript document is a flat sequence of typed values. Each value block
// opens with a parenthesized type list and is followed by the literal values,
// which take the listed types in round-robin order:
//
//	# player records: name, score, ratio
//	(string int float)
//	"ann"  12  0.5
//	"bob"  40  1.25
//
//	[grid]
//	(uint:3) 1 2 3  4 5 6
//
// A trailing :N on a type repeats it N times, so (uint:3) is shorthand for
// (uint uint uint). [name] records a label at the index of the next value,
// and # starts a comment that runs to the end of the line.
//
// The package is structured in three layers:
//
//   - Scanner: a single-pass, byte-driven state machine that splits the source
//     into raw (kind, literal) tokens and a label table. Literal syntax is
//     validated lazily, when the following token starts, a new block opens, or
//     input ends.
//   - Document: the immutable token sequence and label table.
//   - Reader: a typed cursor over a Document with sequential extraction and
//     repositioning by index or label. Errors are reported through a composite
//     Status rather than returned from each call.
//
// Usage:
//
//	r := datascript.Load(src)
//	name := r.Text()
//	score := r.Int32()
//	if !r.Status().OK() {
//	    log.Fatal(r.Status(), r.Err())
//	}
//
// ParseCommands accepts the older command-driven syntax ([type:N] (values),
// #typedef and #section) and produces the same Document.
package datascript

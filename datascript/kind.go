package datascript

// Kind identifies one of the primitive value types a block may declare.
type Kind int

const (
	KindInt32   Kind = iota // int
	KindUint32              // uint
	KindInt64               // long
	KindUint64              // ulong
	KindFloat32             // float
	KindFloat64             // double
	KindString              // string
)

var kindNames = map[Kind]string{
	KindInt32:   "int",
	KindUint32:  "uint",
	KindInt64:   "long",
	KindUint64:  "ulong",
	KindFloat32: "float",
	KindFloat64: "double",
	KindString:  "string",
}

// keywords maps type keywords to their kinds.
var keywords = map[string]Kind{
	"int":    KindInt32,
	"uint":   KindUint32,
	"long":   KindInt64,
	"ulong":  KindUint64,
	"float":  KindFloat32,
	"double": KindFloat64,
	"string": KindString,
}

// String returns the type keyword for k.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// LookupKind resolves a type keyword. It reports false for anything outside
// the fixed catalog.
func LookupKind(keyword string) (Kind, bool) {
	k, ok := keywords[keyword]
	return k, ok
}

// Kinds returns every primitive kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindInt32, KindUint32, KindInt64, KindUint64, KindFloat32, KindFloat64, KindString}
}

package datascript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseCommandsDoc(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := ParseCommands([]byte(src))
	require.NoError(t, err, "source: %s", src)
	return doc
}

func TestParseCommandsTypedefAndSection(t *testing.T) {
	src := `#typedef vec3 = float float float
#section origin
[vec3] (0 0 0)
#section counts
[int:0] (1 2 3 4)
`
	doc := parseCommandsDoc(t, src)
	assert.Equal(t, []Kind{
		KindFloat32, KindFloat32, KindFloat32,
		KindInt32, KindInt32, KindInt32, KindInt32,
	}, kindsOf(doc))

	idx, ok := doc.LabelIndex("origin")
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	idx, ok = doc.LabelIndex("counts")
	require.True(t, ok)
	assert.Equal(t, 3, idx)
}

func TestParseCommandsMatchesCanonical(t *testing.T) {
	legacy := parseCommandsDoc(t, "#typedef rec = int string\n[rec:2] (1, \"a\", 2, \"b\")\n")
	canonical := parseDoc(t, `(int string) 1 "a" 2 "b"`)
	assert.Equal(t, kindsOf(canonical), kindsOf(legacy))
	assert.Equal(t, literalsOf(canonical), literalsOf(legacy))
}

func TestParseCommandsNestedTypedef(t *testing.T) {
	doc := parseCommandsDoc(t, "#typedef pair = int long\n#typedef quad = pair pair\n[quad] (1 2 3 4)")
	assert.Equal(t, []Kind{KindInt32, KindInt64, KindInt32, KindInt64}, kindsOf(doc))
}

func TestParseCommandsMultipleGroups(t *testing.T) {
	doc := parseCommandsDoc(t, "[string:1] (\"x\") (\"y\")\n[uint:] ()")
	assert.Equal(t, []string{`"x"`, `"y"`}, literalsOf(doc))
}

func TestParseCommandsStrings(t *testing.T) {
	doc := parseCommandsDoc(t, `[string:2] ("a) [b] #c" "q\"q")`)
	reader := NewReader(doc)
	assert.Equal(t, "a) [b] #c", reader.Text())
	assert.Equal(t, `q"q`, reader.Text())
}

func TestParseCommandsSectionAtEOF(t *testing.T) {
	doc := parseCommandsDoc(t, "[int] (1)\n#section end")
	idx, ok := doc.LabelIndex("end")
	require.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestParseCommandsErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code ErrorCode
		line int
	}{
		{"too many values", "[int:2] (1 2 3)", ErrIncompleteRecord, 1},
		{"default is one record", "[int] (1 2)", ErrIncompleteRecord, 1},
		{"partial record", "#typedef p = int int\n[p:0] (1 2 3)", ErrIncompleteRecord, 2},
		{"invalid literal", "[int]\n(\nx\n)", ErrInvalidLiteral, 3},
		{"unknown type", "[vec9] (1)", ErrUnknownType, 1},
		{"two type names", "[int long] (1)", ErrUnexpectedChar, 1},
		{"group before type", "(1)", ErrMissingTypeList, 1},
		{"stray text", "[int] (1) x", ErrUnexpectedChar, 1},
		{"hash mid line", "[int] (1) #section a", ErrUnexpectedChar, 1},
		{"unknown command", "#frobnicate now\n", ErrUnknownCommand, 1},
		{"bad typedef", "#typedef x int\n", ErrUnknownCommand, 1},
		{"typedef unknown part", "#typedef x = int blob\n", ErrUnknownType, 1},
		{"duplicate typedef", "#typedef int = long\n", ErrDuplicateType, 1},
		{"duplicate section", "#section a\n#section a\n", ErrDuplicateLabel, 2},
		{"section arity", "#section\n", ErrUnknownCommand, 1},
		{"bad count", "[int:x] (1)", ErrBadRepeatCount, 1},
		{"unterminated group", "[int] (1", ErrUnterminated, 1},
		{"unterminated type", "\n[int", ErrUnterminated, 2},
		{"nested group", "[int] (1 (2))", ErrUnexpectedChar, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseCommands([]byte(tt.src))
			assert.Nil(t, doc)
			requireSyntaxError(t, err, tt.code, tt.line)
		})
	}
}

func TestLoadWithCommandSyntax(t *testing.T) {
	r := Load([]byte("#section s\n[long:2] (5 6)\n"), WithSyntax(SyntaxCommands))
	require.True(t, r.Status().OK())
	r.Goto(1)
	assert.Equal(t, int64(6), r.Int64())
	r.GotoLabel("s")
	assert.Equal(t, int64(5), r.Int64())
}

func TestParseSyntax(t *testing.T) {
	s, err := ParseSyntax("")
	require.NoError(t, err)
	assert.Equal(t, SyntaxCanonical, s)

	s, err = ParseSyntax("legacy")
	require.NoError(t, err)
	assert.Equal(t, SyntaxCommands, s)
	assert.Equal(t, "commands", s.String())

	_, err = ParseSyntax("yaml")
	assert.Error(t, err)
}

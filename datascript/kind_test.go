package datascript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupKind(t *testing.T) {
	tests := []struct {
		keyword string
		kind    Kind
	}{
		{"int", KindInt32},
		{"uint", KindUint32},
		{"long", KindInt64},
		{"ulong", KindUint64},
		{"float", KindFloat32},
		{"double", KindFloat64},
		{"string", KindString},
	}
	for _, tt := range tests {
		kind, ok := LookupKind(tt.keyword)
		assert.True(t, ok, "keyword: %s", tt.keyword)
		assert.Equal(t, tt.kind, kind, "keyword: %s", tt.keyword)
		assert.Equal(t, tt.keyword, kind.String())
	}
}

func TestLookupKindUnknown(t *testing.T) {
	for _, kw := range []string{"", "Int", "int32", "bool", "char", "str"} {
		_, ok := LookupKind(kw)
		assert.False(t, ok, "keyword: %q", kw)
	}
}

func TestKindsCoversCatalog(t *testing.T) {
	kinds := Kinds()
	assert.Len(t, kinds, len(keywords))
	for _, k := range kinds {
		assert.NotEqual(t, "unknown", k.String())
	}
	assert.Equal(t, "unknown", Kind(99).String())
}

package main

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/sigmamathy/DataScript/datascript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParseKinds(t *testing.T) {
	kinds, err := parseKinds("string, int float")
	require.NoError(t, err)
	assert.Equal(t, []datascript.Kind{datascript.KindString, datascript.KindInt32, datascript.KindFloat32}, kinds)

	_, err = parseKinds("int,blob")
	assert.Error(t, err)

	_, err = parseKinds(" , ")
	assert.Error(t, err)
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, `"a\"b"`, formatValue(`a"b`))
	assert.Equal(t, "0.1", formatValue(float32(0.1)))
	assert.Equal(t, "2.5", formatValue(2.5))
	assert.Equal(t, "-7", formatValue(int32(-7)))
}

func TestReadRecords(t *testing.T) {
	r := datascript.Load([]byte(`(string int) "ann" 12 "bob" 40`))
	kinds := []datascript.Kind{datascript.KindString, datascript.KindInt32}

	var buf bytes.Buffer
	st := readRecords(&buf, r, kinds, 0, discardLogger())
	assert.Equal(t, datascript.Exhausted, st)
	assert.Equal(t, "0\tstring\t\"ann\"\n1\tint\t12\n2\tstring\t\"bob\"\n3\tint\t40\n-- exhausted at index 4\n", buf.String())
}

func TestReadRecordsStopsOnMismatch(t *testing.T) {
	r := datascript.Load([]byte(`(int) 1 2`))
	kinds := []datascript.Kind{datascript.KindInt32, datascript.KindString}

	var buf bytes.Buffer
	st := readRecords(&buf, r, kinds, 1, discardLogger())
	assert.True(t, st.Has(datascript.TypeMismatch))
	assert.Equal(t, "0\tint\t1\n", buf.String())
	assert.Equal(t, 1, r.Index())
}

func TestDumpDocument(t *testing.T) {
	doc, err := datascript.Parse([]byte("[a] (int string) 1 \"x\" [end]"))
	require.NoError(t, err)

	var buf bytes.Buffer
	dumpDocument(&buf, doc, false)
	want := "[a]\n" +
		"     0  line 1     int     1\n" +
		"     1  line 1     string  \"x\"\n" +
		"[end]\n" +
		"2 value(s), 2 label(s)\n"
	assert.Equal(t, want, buf.String())
}

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sigmamathy/DataScript/datascript"
)

// readKind performs one typed extraction for kind k.
func readKind(r *datascript.Reader, k datascript.Kind) any {
	switch k {
	case datascript.KindInt32:
		return r.Int32()
	case datascript.KindUint32:
		return r.Uint32()
	case datascript.KindInt64:
		return r.Int64()
	case datascript.KindUint64:
		return r.Uint64()
	case datascript.KindFloat32:
		return r.Float32()
	case datascript.KindFloat64:
		return r.Float64()
	default:
		return r.Text()
	}
}

// formatValue renders an extracted value the way it would be written in a
// document.
func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return datascript.Quote(x)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

// parseKinds splits a comma or space separated list of type keywords.
func parseKinds(list string) ([]datascript.Kind, error) {
	fields := strings.FieldsFunc(list, func(r rune) bool { return r == ',' || r == ' ' })
	kinds := make([]datascript.Kind, 0, len(fields))
	for _, f := range fields {
		k, ok := datascript.LookupKind(f)
		if !ok {
			return nil, fmt.Errorf("unknown type %q", f)
		}
		kinds = append(kinds, k)
	}
	if len(kinds) == 0 {
		return nil, fmt.Errorf("no types given")
	}
	return kinds, nil
}

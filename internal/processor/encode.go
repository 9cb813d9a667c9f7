package processor

import (
	"github.com/rotisserie/eris"
	"github.com/tdewolff/minify/v2"
	minjson "github.com/tdewolff/minify/v2/json"
	"github.com/tidwall/pretty"
)

const jsonMediaType = "application/json"

var indentOptions = &pretty.Options{
	Indent:   "  ",
	SortKeys: false,
}

// Indent pretty-prints a JSON document with a 2-space indent, keeping key order.
func Indent(data []byte) []byte {
	return pretty.PrettyOptions(data, indentOptions)
}

// Compact minifies a JSON document.
func Compact(data []byte) ([]byte, error) {
	m := minify.New()
	m.AddFunc(jsonMediaType, minjson.Minify)

	out, err := m.Bytes(jsonMediaType, data)
	if err != nil {
		return nil, eris.Wrap(err, "geojson: minify")
	}
	return out, nil
}

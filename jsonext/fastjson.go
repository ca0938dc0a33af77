package jsonext

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/valyala/fastjson"

	"github.com/avdva/bigdec"
)

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// Field is a number found in a JSON document.
type Field struct {
	// Path is a JSON pointer (RFC 6901) to the number.
	Path  string
	Value bigdec.Value
}

// FromFastJSON returns a value for a fastjson number, string or null.
// A string must contain a valid JSON number. null is converted into bigdec.None.
func FromFastJSON(v *fastjson.Value) (bigdec.Value, error) {
	if v == nil {
		return bigdec.None, fmt.Errorf("nil value")
	}
	switch t := v.Type(); t {
	case fastjson.TypeNumber:
		return bigdec.FromString(string(v.MarshalTo(nil)))
	case fastjson.TypeString:
		s, err := v.StringBytes()
		if err != nil {
			return bigdec.None, err
		}
		return bigdec.FromString(string(s))
	case fastjson.TypeNull:
		return bigdec.None, nil
	default:
		return bigdec.None, fmt.Errorf("unexpected json type: %s", t)
	}
}

// Numbers parses doc and returns all the numbers it contains in document order.
// Strings are not treated as numbers.
func Numbers(p *fastjson.Parser, doc string) ([]Field, error) {
	root, err := p.Parse(doc)
	if err != nil {
		return nil, err
	}
	var w walker
	w.walk(root, "")
	if w.err != nil {
		return nil, w.err
	}
	return w.fields, nil
}

type walker struct {
	fields []Field
	err    error
}

func (w *walker) walk(v *fastjson.Value, path string) {
	if w.err != nil {
		return
	}
	switch v.Type() {
	case fastjson.TypeNumber:
		value, err := FromFastJSON(v)
		if err != nil {
			w.err = fmt.Errorf("%q: %w", path, err)
			return
		}
		w.fields = append(w.fields, Field{Path: path, Value: value})
	case fastjson.TypeArray:
		arr, _ := v.Array()
		for i, item := range arr {
			w.walk(item, path+"/"+strconv.Itoa(i))
		}
	case fastjson.TypeObject:
		obj, _ := v.Object()
		obj.Visit(func(key []byte, item *fastjson.Value) {
			w.walk(item, path+"/"+pointerEscaper.Replace(string(key)))
		})
	}
}

package codec

import (
	gojson "github.com/goccy/go-json"

	"github.com/hupe1980/shapesim/search"
)

// GoJSON is a JSON codec backed by github.com/goccy/go-json.
//
// Its output is interchangeable with JSON: both honor the MarshalJSON
// methods of feature.Vector.
type GoJSON struct{}

// Marshal encodes the value to JSON.
func (GoJSON) Marshal(v any) ([]byte, error) { return gojson.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (GoJSON) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }

// Name returns the unique name of the codec ("go-json").
func (GoJSON) Name() string { return "go-json" }

// AppendResults appends results to dst as JSON Lines, one result per line.
func (GoJSON) AppendResults(dst []byte, results []search.Result) ([]byte, error) {
	for _, r := range results {
		b, err := gojson.Marshal(r)
		if err != nil {
			return nil, err
		}
		dst = append(dst, b...)
		dst = append(dst, '\n')
	}
	return dst, nil
}

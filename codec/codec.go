// Package codec encodes shapesim records for viewers and exporters.
//
// Feature vectors and ranked results are plain structs with JSON tags. The
// codecs here serialize them to bytes; writing those bytes anywhere is the
// caller's job. Non-finite aspect ratios are encoded as strings (see
// feature.Vector.MarshalJSON), so every codec produces valid JSON.
package codec

import (
	"fmt"

	"github.com/hupe1980/shapesim/feature"
	"github.com/hupe1980/shapesim/search"
)

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for internal tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}

// Report is the export envelope of one similarity query.
type Report struct {
	Codec   string          `json:"codec"`
	Query   feature.Vector  `json:"query"`
	Results []search.Result `json:"results"`
}

// EncodeReport serializes a query and its ranked results.
// If c is nil, Default is used.
func EncodeReport(c Codec, query feature.Vector, results []search.Result) ([]byte, error) {
	if c == nil {
		c = Default
	}
	if results == nil {
		results = []search.Result{}
	}
	data, err := c.Marshal(Report{Codec: c.Name(), Query: query, Results: results})
	if err != nil {
		return nil, fmt.Errorf("codec %s: encode report: %w", c.Name(), err)
	}
	return data, nil
}

// DecodeReport parses bytes produced by EncodeReport with the same codec.
func DecodeReport(c Codec, data []byte) (Report, error) {
	if c == nil {
		c = Default
	}
	var r Report
	if err := c.Unmarshal(data, &r); err != nil {
		return Report{}, fmt.Errorf("codec %s: decode report: %w", c.Name(), err)
	}
	return r, nil
}

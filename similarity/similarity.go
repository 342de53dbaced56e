// Package similarity scores how alike two feature vectors are.
//
// Score compares six attributes of feature.Vector, each normalized to [0,1]
// as 1 - |a-b| / max(a,b), and returns their weighted sum scaled to an
// integer in [0,100]. Two vectors that agree on every attribute score 100.
//
// Infinite aspect ratios (flat or line-like meshes) are compared without
// arithmetic: two infinite values are identical, one infinite and one finite
// value share nothing.
package similarity

import (
	"math"

	"github.com/hupe1980/shapesim/feature"
)

// Attribute identifies one compared descriptor.
type Attribute int

const (
	VertexCount Attribute = iota
	FaceCount
	Volume
	SurfaceArea
	Compactness
	AspectRatio

	numAttributes
)

var attributeNames = [numAttributes]string{
	VertexCount: "vertexCount",
	FaceCount:   "faceCount",
	Volume:      "volume",
	SurfaceArea: "surfaceArea",
	Compactness: "compactness",
	AspectRatio: "aspectRatio",
}

// String returns the attribute's JSON field name.
func (a Attribute) String() string {
	if a < 0 || a >= numAttributes {
		return "unknown"
	}
	return attributeNames[a]
}

// Weights are the attribute weights. They sum to 1.
var Weights = [numAttributes]float64{
	VertexCount: 0.15,
	FaceCount:   0.15,
	Volume:      0.20,
	SurfaceArea: 0.15,
	Compactness: 0.15,
	AspectRatio: 0.20,
}

// Term is one attribute's contribution to a score.
type Term struct {
	Attribute    Attribute `json:"attribute"`
	Similarity   float64   `json:"similarity"`
	Weight       float64   `json:"weight"`
	Contribution float64   `json:"contribution"`
}

// Terms holds every attribute term in Attribute order.
type Terms [numAttributes]Term

// Total returns the weighted sum of all terms in [0,1].
func (t Terms) Total() float64 {
	var sum float64
	for _, term := range t {
		sum += term.Contribution
	}
	return sum
}

// Score returns the similarity of a and b as an integer in [0,100].
// It is symmetric, and Score(a, a) == 100.
func Score(a, b feature.Vector) int {
	return toPercent(Breakdown(a, b).Total())
}

// Breakdown returns the per-attribute terms behind Score.
func Breakdown(a, b feature.Vector) Terms {
	av, bv := values(a), values(b)

	var terms Terms
	for i := range numAttributes {
		s := Normalized(av[i], bv[i])
		terms[i] = Term{
			Attribute:    i,
			Similarity:   s,
			Weight:       Weights[i],
			Contribution: Weights[i] * s,
		}
	}
	return terms
}

// Normalized returns 1 - |x-y| / max(x,y) for non-negative x and y.
//
// Both zero yields 1. Both +Inf yields 1, exactly one +Inf yields 0. A NaN
// input, or any result outside [0,1] from negative inputs, is clamped so the
// caller always receives a value in [0,1].
func Normalized(x, y float64) float64 {
	xInf, yInf := math.IsInf(x, 1), math.IsInf(y, 1)
	switch {
	case xInf && yInf:
		return 1
	case xInf || yInf:
		return 0
	}

	m := max(x, y)
	if m == 0 {
		return 1
	}
	s := 1 - math.Abs(x-y)/m
	if math.IsNaN(s) || s < 0 {
		return 0
	}
	return min(s, 1)
}

func values(v feature.Vector) [numAttributes]float64 {
	return [numAttributes]float64{
		VertexCount: float64(v.VertexCount),
		FaceCount:   float64(v.FaceCount),
		Volume:      v.Volume,
		SurfaceArea: v.SurfaceArea,
		Compactness: v.Compactness,
		AspectRatio: v.AspectRatio,
	}
}

func toPercent(total float64) int {
	p := math.Round(100 * total)
	return int(min(max(p, 0), 100))
}

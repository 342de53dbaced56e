package feature

import (
	"math"

	"github.com/hupe1980/shapesim/mesh"
)

// Vector is the shape descriptor of one mesh.
//
// It is a plain value: copying it copies every field, and nothing inside it
// aliases the mesh it was computed from.
type Vector struct {
	Name         string    `json:"name"`
	VertexCount  int       `json:"vertexCount"`
	FaceCount    int       `json:"faceCount"`
	BoundingBox  mesh.Vec3 `json:"boundingBox"`
	Volume       float64   `json:"volume"`
	SurfaceArea  float64   `json:"surfaceArea"`
	Compactness  float64   `json:"compactness"`
	AspectRatio  float64   `json:"aspectRatio"`
	CenterOfMass mesh.Vec3 `json:"centerOfMass"`
}

// ExtractorFunc computes a Vector from a mesh. Extract is the default.
type ExtractorFunc func(m mesh.RawMesh) (Vector, error)

// Extract computes the feature vector of m.
//
// m.Positions must hold a non-zero number of whole triangles (a multiple of
// nine coordinates) and every coordinate must be finite.
func Extract(m mesh.RawMesh) (Vector, error) {
	if err := validate(m); err != nil {
		return Vector{}, err
	}

	n := m.VertexCount()

	var (
		bounds   mesh.Bounds
		sum      mesh.Vec3
		area     float64
		triangle [3]mesh.Vec3
	)

	for i := range n {
		v := m.Vertex(i)
		bounds.Extend(v)
		sum.X += v.X
		sum.Y += v.Y
		sum.Z += v.Z

		triangle[i%3] = v
		if i%3 == 2 {
			area += triangleArea(triangle[0], triangle[1], triangle[2])
		}
	}

	size := bounds.Size()
	volume := size.X * size.Y * size.Z
	fn := float64(n)

	return Vector{
		Name:         m.Name,
		VertexCount:  n,
		FaceCount:    n / 3,
		BoundingBox:  size,
		Volume:       volume,
		SurfaceArea:  area,
		Compactness:  compactness(volume, area),
		AspectRatio:  aspectRatio(size),
		CenterOfMass: mesh.Vec3{X: sum.X / fn, Y: sum.Y / fn, Z: sum.Z / fn},
	}, nil
}

func validate(m mesh.RawMesh) error {
	if m.IsEmpty() {
		return noGeometry(m.Name, "empty position buffer")
	}
	if len(m.Positions)%3 != 0 {
		return noGeometry(m.Name, "%d coordinates do not form whole vertices", len(m.Positions))
	}
	if n := m.VertexCount(); n%3 != 0 {
		return noGeometry(m.Name, "%d vertices do not form whole triangles", n)
	}
	for i, c := range m.Positions {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return noGeometry(m.Name, "non-finite coordinate at vertex %d", i/3)
		}
	}
	return nil
}

// triangleArea is +Inf when the edge vectors overflow.
func triangleArea(a, b, c mesh.Vec3) float64 {
	area := 0.5 * b.Sub(a).Cross(c.Sub(a)).Length()
	if math.IsNaN(area) {
		return math.Inf(1)
	}
	return area
}

// compactness is 0 unless both inputs are positive and finite. Finite
// coordinates can still overflow volume or area to +Inf.
func compactness(volume, area float64) float64 {
	if volume <= 0 || area <= 0 || math.IsInf(volume, 0) || math.IsInf(area, 0) {
		return 0
	}
	c := math.Pow(volume, 2.0/3.0) / area
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return 0
	}
	return c
}

// aspectRatio returns d0/d2 for dimensions sorted descending. A zero
// smallest dimension yields +Inf, or 1 when all dimensions are zero.
func aspectRatio(size mesh.Vec3) float64 {
	d0 := max(size.X, size.Y, size.Z)
	d2 := min(size.X, size.Y, size.Z)
	if d2 == 0 {
		if d0 == 0 {
			return 1
		}
		return math.Inf(1)
	}
	if math.IsInf(d2, 1) {
		// Every extent overflowed.
		return 1
	}
	return d0 / d2
}

package mesh

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by FromIndexed when an index points past the vertex buffer.
var ErrIndexOutOfRange = errors.New("mesh: index out of range")

// RawMesh is a named triangle soup in the decoder's object space.
//
// Positions holds x,y,z coordinates back to back; vertex i lives at
// Positions[3*i : 3*i+3] and triangle t is made of vertices 3t, 3t+1, 3t+2.
// The slice is owned by the caller and never modified by shapesim.
type RawMesh struct {
	Name      string
	Positions []float64
}

// VertexCount returns the number of complete x,y,z triples.
func (m RawMesh) VertexCount() int {
	return len(m.Positions) / 3
}

// TriangleCount returns the number of complete triangles.
func (m RawMesh) TriangleCount() int {
	return m.VertexCount() / 3
}

// IsEmpty reports whether the mesh has no coordinates at all.
func (m RawMesh) IsEmpty() bool {
	return len(m.Positions) == 0
}

// Vertex returns vertex i. It panics if i is out of range.
func (m RawMesh) Vertex(i int) Vec3 {
	p := m.Positions[3*i : 3*i+3 : 3*i+3]
	return Vec3{X: p[0], Y: p[1], Z: p[2]}
}

// SizeBytes returns the memory held by the position buffer.
func (m RawMesh) SizeBytes() int64 {
	return int64(len(m.Positions)) * 8
}

// FromFloat32 builds a RawMesh from a float32 position buffer, as produced
// by most binary mesh formats. The values are widened, not copied by reference.
func FromFloat32(name string, positions []float32) RawMesh {
	out := make([]float64, len(positions))
	for i, p := range positions {
		out[i] = float64(p)
	}
	return RawMesh{Name: name, Positions: out}
}

// FromIndexed expands an indexed mesh into a triangle soup.
//
// vertices is a flat x,y,z buffer and indices lists three vertex indices per
// triangle. A trailing partial triangle in indices is dropped.
func FromIndexed(name string, vertices []float64, indices []uint32) (RawMesh, error) {
	nv := uint32(len(vertices) / 3)
	nt := len(indices) / 3
	out := make([]float64, 0, nt*9)
	for t := range nt {
		for _, idx := range indices[3*t : 3*t+3] {
			if idx >= nv {
				return RawMesh{}, fmt.Errorf("%w: triangle %d references vertex %d of %d", ErrIndexOutOfRange, t, idx, nv)
			}
			out = append(out, vertices[3*idx], vertices[3*idx+1], vertices[3*idx+2])
		}
	}
	return RawMesh{Name: name, Positions: out}, nil
}

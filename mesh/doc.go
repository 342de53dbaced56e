// Package mesh defines the raw geometry consumed by shapesim.
//
// A RawMesh is a triangle soup: a flat buffer of x,y,z coordinates where
// every three consecutive vertices form one triangle. There is no shared
// index buffer. Decoders that produce indexed geometry can expand it with
// FromIndexed; decoders that produce float32 buffers (glTF, STL) can use
// FromFloat32.
//
// # Example
//
//	m := mesh.RawMesh{
//	    Name:      "triangle",
//	    Positions: []float64{0, 0, 0, 1, 0, 0, 0, 1, 0},
//	}
//	fmt.Println(m.VertexCount()) // 3
package mesh

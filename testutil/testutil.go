package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/shapesim/mesh"
)

// Box returns an axis-aligned box from the origin to (sx, sy, sz) as 12
// triangles (36 vertices), two per face.
func Box(name string, sx, sy, sz float64) mesh.RawMesh {
	c := [8]mesh.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: sx, Y: 0, Z: 0},
		{X: sx, Y: sy, Z: 0},
		{X: 0, Y: sy, Z: 0},
		{X: 0, Y: 0, Z: sz},
		{X: sx, Y: 0, Z: sz},
		{X: sx, Y: sy, Z: sz},
		{X: 0, Y: sy, Z: sz},
	}

	var b soupBuilder
	b.quad(c[0], c[3], c[2], c[1]) // bottom
	b.quad(c[4], c[5], c[6], c[7]) // top
	b.quad(c[0], c[1], c[5], c[4]) // front
	b.quad(c[2], c[3], c[7], c[6]) // back
	b.quad(c[0], c[4], c[7], c[3]) // left
	b.quad(c[1], c[2], c[6], c[5]) // right

	return mesh.RawMesh{Name: name, Positions: b.positions}
}

// Cube returns a Box with equal sides.
func Cube(name string, side float64) mesh.RawMesh {
	return Box(name, side, side, side)
}

// Plane returns a w×h rectangle in the z=0 plane as two triangles.
func Plane(name string, w, h float64) mesh.RawMesh {
	var b soupBuilder
	b.quad(mesh.Vec3{}, mesh.Vec3{X: w}, mesh.Vec3{X: w, Y: h}, mesh.Vec3{Y: h})
	return mesh.RawMesh{Name: name, Positions: b.positions}
}

// Segment returns a single degenerate triangle lying on the x axis.
func Segment(name string, length float64) mesh.RawMesh {
	return mesh.RawMesh{
		Name:      name,
		Positions: []float64{0, 0, 0, length / 2, 0, 0, length, 0, 0},
	}
}

// Point returns a single triangle collapsed onto p.
func Point(name string, p mesh.Vec3) mesh.RawMesh {
	return mesh.RawMesh{
		Name:      name,
		Positions: []float64{p.X, p.Y, p.Z, p.X, p.Y, p.Z, p.X, p.Y, p.Z},
	}
}

type soupBuilder struct {
	positions []float64
}

func (b *soupBuilder) vertex(v mesh.Vec3) {
	b.positions = append(b.positions, v.X, v.Y, v.Z)
}

func (b *soupBuilder) quad(p0, p1, p2, p3 mesh.Vec3) {
	for _, v := range [6]mesh.Vec3{p0, p1, p2, p0, p2, p3} {
		b.vertex(v)
	}
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Soup returns a random triangle soup with the given number of triangles and
// coordinates in [-scale, scale).
func (r *RNG) Soup(name string, triangles int, scale float64) mesh.RawMesh {
	r.mu.Lock()
	defer r.mu.Unlock()

	positions := make([]float64, triangles*9)
	for i := range positions {
		positions[i] = (r.rand.Float64()*2 - 1) * scale
	}
	return mesh.RawMesh{Name: name, Positions: positions}
}

// ScaledBox returns a Box whose sides are drawn from [minSide, maxSide).
func (r *RNG) ScaledBox(name string, minSide, maxSide float64) mesh.RawMesh {
	r.mu.Lock()
	span := maxSide - minSide
	sx := minSide + r.rand.Float64()*span
	sy := minSide + r.rand.Float64()*span
	sz := minSide + r.rand.Float64()*span
	r.mu.Unlock()

	return Box(name, sx, sy, sz)
}

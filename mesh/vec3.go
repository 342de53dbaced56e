package mesh

import "math"

// Vec3 is a point or extent in object space.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean norm of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// IsFinite reports whether every component is neither NaN nor ±Inf.
func (v Vec3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Bounds is an axis-aligned bounding box accumulated point by point.
// The zero value is empty.
type Bounds struct {
	Min, Max Vec3
	nonEmpty bool
}

// Extend grows the box to contain p.
func (b *Bounds) Extend(p Vec3) {
	if !b.nonEmpty {
		b.Min, b.Max = p, p
		b.nonEmpty = true
		return
	}
	b.Min = Vec3{X: min(b.Min.X, p.X), Y: min(b.Min.Y, p.Y), Z: min(b.Min.Z, p.Z)}
	b.Max = Vec3{X: max(b.Max.X, p.X), Y: max(b.Max.Y, p.Y), Z: max(b.Max.Z, p.Z)}
}

// IsEmpty reports whether no point has been added.
func (b Bounds) IsEmpty() bool { return !b.nonEmpty }

// Size returns the componentwise |max - min| extents. Empty boxes have zero size.
func (b Bounds) Size() Vec3 {
	if !b.nonEmpty {
		return Vec3{}
	}
	return Vec3{
		X: math.Abs(b.Max.X - b.Min.X),
		Y: math.Abs(b.Max.Y - b.Min.Y),
		Z: math.Abs(b.Max.Z - b.Min.Z),
	}
}

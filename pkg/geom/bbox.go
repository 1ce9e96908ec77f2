// Package geom provides axis-aligned bounding volume math for 3D assets.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// BBox is an axis-aligned bounding box.
// The zero value is not useful; use NewBBox to start from an empty box.
type BBox struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// NewBBox returns an empty box. Any point extended into it becomes
// both its minimum and maximum.
func NewBBox() BBox {
	inf := float32(math.Inf(1))
	return BBox{
		Min: mgl32.Vec3{inf, inf, inf},
		Max: mgl32.Vec3{-inf, -inf, -inf},
	}
}

// IsEmpty reports whether the box encloses no points.
func (b BBox) IsEmpty() bool {
	return b.Min.X() > b.Max.X() || b.Min.Y() > b.Max.Y() || b.Min.Z() > b.Max.Z()
}

// Extend grows the box to include point p.
func (b *BBox) Extend(p mgl32.Vec3) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

// ExtendBox grows the box to enclose other. Empty boxes contribute nothing.
func (b *BBox) ExtendBox(other BBox) {
	if other.IsEmpty() {
		return
	}
	b.Extend(other.Min)
	b.Extend(other.Max)
}

// Size returns the extent along each axis. An empty box has zero size.
func (b BBox) Size() mgl32.Vec3 {
	if b.IsEmpty() {
		return mgl32.Vec3{}
	}
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box.
func (b BBox) Center() mgl32.Vec3 {
	if b.IsEmpty() {
		return mgl32.Vec3{}
	}
	return b.Min.Add(b.Max).Mul(0.5)
}

// MaxDimension returns the largest axis extent.
func (b BBox) MaxDimension() float32 {
	s := b.Size()
	m := s.X()
	if s.Y() > m {
		m = s.Y()
	}
	if s.Z() > m {
		m = s.Z()
	}
	return m
}

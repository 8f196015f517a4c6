// Package rendering holds the geometry shared by descriptors and hosts.
package rendering

import (
	"image"
	"math"
)

// Offset is a point in host coordinates.
type Offset struct {
	X float64
	Y float64
}

// Rect is an axis-aligned rectangle in host coordinates. Right and Bottom are
// exclusive.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH builds a Rect from its left, top, width and height.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{Left: left, Top: top, Right: left + width, Bottom: top + height}
}

// RectFromImage converts integer pixel bounds to a Rect.
func RectFromImage(r image.Rectangle) Rect {
	return Rect{
		Left:   float64(r.Min.X),
		Top:    float64(r.Min.Y),
		Right:  float64(r.Max.X),
		Bottom: float64(r.Max.Y),
	}
}

// Width is Right minus Left.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height is Bottom minus Top.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// IsEmpty reports whether r covers no area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Intersect returns the area r shares with o, or the zero Rect when they do
// not overlap.
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		Left:   max(r.Left, o.Left),
		Top:    max(r.Top, o.Top),
		Right:  min(r.Right, o.Right),
		Bottom: min(r.Bottom, o.Bottom),
	}
	if out.IsEmpty() {
		return Rect{}
	}
	return out
}

// ImageRect converts r to integer pixel bounds, rounding outward so that a
// partially covered pixel is included.
func (r Rect) ImageRect() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.Left)),
		int(math.Floor(r.Top)),
		int(math.Ceil(r.Right)),
		int(math.Ceil(r.Bottom)),
	)
}

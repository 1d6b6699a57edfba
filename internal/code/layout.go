package code

import rl "github.com/gen2brain/raylib-go/raylib"

// Line entity geometry.
const (
	LineHalfWidth  = 0.05
	LineHalfHeight = 0.015
	LineHalfDepth  = 0.75
	LineSpacing    = 0.1
)

// LineHalfExtents is the collider of a single standalone line.
var LineHalfExtents = rl.Vector3{X: LineHalfWidth, Y: LineHalfHeight, Z: LineHalfDepth}

// AttachHalfExtent is the bundle half-width after a line attaches to a line or bundle.
func AttachHalfExtent(n int) float32 {
	if n%2 == 0 {
		return LineHalfWidth * float32(n)
	}
	return LineHalfWidth*float32(n-1) + 0.025
}

// MergeHalfExtent is the bundle half-width after a held bundle merges into a target.
// Odd counts pad by a full line width, unlike AttachHalfExtent.
func MergeHalfExtent(n int) float32 {
	if n%2 == 0 {
		return LineHalfWidth * float32(n)
	}
	return LineHalfWidth*float32(n-1) + LineHalfWidth
}

// BundleHalfExtents builds the collider half extents for a bundle of the given half width.
func BundleHalfExtents(halfWidth float32) rl.Vector3 {
	return rl.Vector3{X: halfWidth, Y: LineHalfHeight, Z: LineHalfDepth}
}

// Layout returns the local x offsets for n members, centred on the bundle.
// The first member sits rightmost.
func Layout(n int) []float32 {
	xs := make([]float32, n)
	mid := float32(n-1) / 2
	for i := range xs {
		xs[i] = LineSpacing * (mid - float32(i))
	}
	return xs
}

// Package resample brings two images to a common resolution before they are
// interleaved.
package resample

import "github.com/davesmith10/imgweave/internal/ir"

// Reconcile picks the target size for a pair of images: the dimensions with
// strictly fewer pixels. Equal pixel counts resolve to b.
//
// Both inputs must have positive width and height.
func Reconcile(a, b ir.Dimensions) ir.Dimensions {
	if a.Pixels() < b.Pixels() {
		return a
	}
	return b
}

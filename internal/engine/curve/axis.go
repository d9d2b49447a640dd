package curve

import (
	"github.com/Faultbox/molmesh/pkg/math"
)

// axisWindow is the half-width of the smoothing window used to synthesize
// per-residue helix-axis points.
const axisWindow = 2

// HelixAxisPoints synthesizes one axis point per control point by averaging
// a window of neighbors, collapsing helical winding onto the helix axis.
// The result is a coarser companion curve for radial normal blending.
func HelixAxisPoints(points []math.Vec3) []math.Vec3 {
	n := len(points)
	out := make([]math.Vec3, n)
	for i := range points {
		lo := i - axisWindow
		if lo < 0 {
			lo = 0
		}
		hi := i + axisWindow
		if hi > n-1 {
			hi = n - 1
		}
		var sum math.Vec3
		for j := lo; j <= hi; j++ {
			sum = sum.Add(points[j])
		}
		out[i] = sum.Scale(1 / float32(hi-lo+1))
	}
	return out
}

// SampleAxis resamples the axis polyline at the same density as the main
// curve, returning one axis position per main-curve sample.
func SampleAxis(axisPoints []math.Vec3, segments int) []math.Vec3 {
	return Positions(Sample(axisPoints, segments))
}

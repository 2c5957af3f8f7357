package mathutil

import (
	"golang.org/x/exp/constraints"
)

// Remap converts v from the range [inMin, inMax] to [outMin, outMax].
// A zero-width input range maps everything to outMin.
func Remap[T constraints.Float](v, inMin, inMax, outMin, outMax T) T {
	if inMax == inMin {
		return outMin
	}
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
}

func Clamp[T constraints.Ordered](v, low, high T) T {
	return min(max(v, low), high)
}

func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

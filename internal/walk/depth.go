package walk

import "strconv"

// DepthLimit bounds how far below the scan root a traversal descends.
// The zero value is Unlimited.
type DepthLimit struct {
	max     int
	bounded bool
}

// Unlimited returns a limit that never stops a traversal.
func Unlimited() DepthLimit {
	return DepthLimit{}
}

// Bounded returns a limit admitting nodes up to and including depth n.
// Depth 0 are the immediate children of the scan root. Negative values are clamped to 0.
func Bounded(n int) DepthLimit {
	if n < 0 {
		n = 0
	}

	return DepthLimit{max: n, bounded: true}
}

// Exceeds reports whether depth lies beyond the limit.
func (l DepthLimit) Exceeds(depth int) bool {
	return l.bounded && depth > l.max
}

func (l DepthLimit) String() string {
	if !l.bounded {
		return "unlimited"
	}

	return strconv.Itoa(l.max)
}

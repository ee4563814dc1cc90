package btxt

import "cmp"

const brokenCode = "broken code"

func setBufferSize[T any](buffer []T, size int) []T {
	if cap(buffer) >= size {
		return buffer[ : size]
	} else {
		return make([]T, size)
	}
}

// like setBufferSize, but keeping the current contents
func growBuffer[T any](buffer []T, extra int) []T {
	if cap(buffer) - len(buffer) >= extra { return buffer }
	grown := make([]T, len(buffer), len(buffer) + extra)
	copy(grown, buffer)
	return grown
}

func clamp[T cmp.Ordered](x, a, b T) T {
	if x <= a { return a }
	if x >= b { return b }
	return x
}

package common

// UnknownStr is the display name for out-of-range enum values.
const UnknownStr = "unknown"

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsOdd returns true if the slice has an odd number of elements.
func IsOdd[S ~[]E, E any](s S) bool {
	return len(s)%2 == 1
}

// Pairs groups the slice two elements at a time. A trailing unpaired
// element is dropped; callers check IsOdd first when that matters.
func Pairs[S ~[]E, E any](s S) [][2]E {
	pairs := make([][2]E, 0, len(s)/2)
	for i := 0; i+1 < len(s); i += 2 {
		pairs = append(pairs, [2]E{s[i], s[i+1]})
	}

	return pairs
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

package internal

import "slices"

func Find[S ~[]E, E any](slice S, fn func(E) bool) (E, bool) {
	switch idx := slices.IndexFunc(slice, fn); idx {
	case -1:
		var zero E
		return zero, false
	default:
		return slice[idx], true
	}
}

// Upsert replaces the first element matched by fn with value, keeping its position, or appends value when none match.
func Upsert[S ~[]E, E any](slice S, value E, fn func(E) bool) S {
	if idx := slices.IndexFunc(slice, fn); idx != -1 {
		slice[idx] = value
		return slice
	}
	return append(slice, value)
}

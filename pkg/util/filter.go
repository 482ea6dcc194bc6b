package util

import "golang.org/x/exp/slices"

func InPlaceFilter[T any](s *[]T, p func(T) bool) {
	i := 0
	for _, e := range *s {
		if p(e) {
			(*s)[i] = e
			i++
		}
	}
	*s = (*s)[:i]
}

// Filter returns the elements of s matching p without touching the backing array of s
func Filter[T any](s []T, p func(T) bool) []T {
	filtered := slices.Clone(s)
	InPlaceFilter(&filtered, p)

	return filtered
}

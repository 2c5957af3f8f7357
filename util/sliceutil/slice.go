package sliceutil

import (
	"slices"

	"golang.org/x/exp/constraints"
)

func Contains[T comparable](s []T, v T) bool {
	return slices.Contains(s, v)
}

// AppendIfAbsent keeps s free of duplicates of v, like a set's add.
func AppendIfAbsent[T comparable](s []T, v T) []T {
	if slices.Contains(s, v) {
		return s
	}
	return append(s, v)
}

// MinWithIndex returns the smallest element and its index, or -1 for an empty slice.
func MinWithIndex[T constraints.Ordered](s []T) (T, int) {
	var m T
	if len(s) == 0 {
		return m, -1
	}
	m, index := s[0], 0
	for i, v := range s[1:] {
		if v < m {
			m, index = v, i+1
		}
	}
	return m, index
}

// MaxWithIndex returns the largest element and its index, or -1 for an empty slice.
func MaxWithIndex[T constraints.Ordered](s []T) (T, int) {
	var m T
	if len(s) == 0 {
		return m, -1
	}
	m, index := s[0], 0
	for i, v := range s[1:] {
		if v > m {
			m, index = v, i+1
		}
	}
	return m, index
}

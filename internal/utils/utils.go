// Package utils holds small generic helpers.
package utils

import "sort"

// SortAnySlice returns a sorted copy of s. Elements comparing equal keep
// their order.
func SortAnySlice[T any](s []T, less func(a, b T) bool) []T {
	res := make([]T, len(s))
	copy(res, s)
	sort.SliceStable(res, func(i, j int) bool {
		return less(res[i], res[j])
	})
	return res
}

package utils

import (
	"sort"
	"strings"
)

// SortByKey orders items in place by the string produced by key, comparing
// case-insensitively. The sort is stable: items with equal keys keep their
// original relative order. Safe on empty slices.
func SortByKey[T any](items []T, key func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToUpper(key(items[i])) < strings.ToUpper(key(items[j]))
	})
}

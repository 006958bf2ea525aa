package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type named struct {
	Name string
	Tag  int
}

func TestSortByKey_OrdersCaseInsensitively(t *testing.T) {
	items := []named{
		{Name: "zebra"},
		{Name: "Apple"},
		{Name: "mango"},
	}

	SortByKey(items, func(n named) string { return n.Name })

	assert.Equal(t, "Apple", items[0].Name)
	assert.Equal(t, "mango", items[1].Name)
	assert.Equal(t, "zebra", items[2].Name)
}

func TestSortByKey_StableOnEqualKeys(t *testing.T) {
	items := []named{
		{Name: "same", Tag: 1},
		{Name: "SAME", Tag: 2},
		{Name: "Same", Tag: 3},
	}

	SortByKey(items, func(n named) string { return n.Name })

	assert.Equal(t, []int{1, 2, 3}, []int{items[0].Tag, items[1].Tag, items[2].Tag})
}

func TestSortByKey_EmptySlice(t *testing.T) {
	var items []named
	assert.NotPanics(t, func() {
		SortByKey(items, func(n named) string { return n.Name })
	})
}

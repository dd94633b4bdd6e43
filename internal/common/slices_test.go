package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstLast(t *testing.T) {
	v, ok := First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = Last([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = First([]int(nil))
	assert.False(t, ok)

	_, ok = Last([]int{})
	assert.False(t, ok)
}

func TestIsEmptyAndSetOf(t *testing.T) {
	assert.True(t, IsEmpty([]string{}))
	assert.False(t, IsEmpty([]string{"x"}))

	set := SetOf([]string{"BillSummary", "BillSummary", "Meta"})
	assert.Len(t, set, 2)
	assert.Contains(t, set, "Meta")
}

package buddy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderOfExactPowersOfTwo(t *testing.T) {
	for k := SmallestK; k < SmallestK+10; k++ {
		size := uintptr(1) << k
		assert.Equal(t, k, orderOf(size), "orderOf(2^%d) should be exact", k)
	}
}

func TestOrderOfRoundsUp(t *testing.T) {
	assert.Equal(t, SmallestK, orderOf(1))
	assert.Equal(t, SmallestK+1, orderOf(uintptr(1)<<SmallestK+1))
}

func TestOrderOfNeverBelowSmallestK(t *testing.T) {
	assert.Equal(t, SmallestK, orderOf(1))
}

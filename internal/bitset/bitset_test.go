package bitset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	s := New(130)

	assert.Equal(t, 130, s.Len())
	assert.Equal(t, 0, s.Count())
	assert.False(t, s.Test(1))

	s.Set(1)
	s.Set(64)
	s.Set(129)
	assert.True(t, s.Test(1))
	assert.True(t, s.Test(64))
	assert.True(t, s.Test(129))
	assert.False(t, s.Test(2))
	assert.Equal(t, 3, s.Count())

	// Setting twice does not double count.
	s.Set(64)
	assert.Equal(t, 3, s.Count())
}

func TestSet_OutOfRange(t *testing.T) {
	s := New(10)
	s.Set(-1)
	s.Set(10)
	s.Set(1000)
	assert.Equal(t, 0, s.Count())
	assert.False(t, s.Test(-1))
	assert.False(t, s.Test(10))

	empty := New(0)
	assert.False(t, empty.Test(0))
	assert.Equal(t, 0, empty.Len())
}

func TestSet_TestAndSet(t *testing.T) {
	s := New(8)
	assert.False(t, s.TestAndSet(3))
	assert.True(t, s.TestAndSet(3))
	assert.Equal(t, 1, s.Count())
}

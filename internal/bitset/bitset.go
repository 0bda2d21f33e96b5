package bitset

// Set is a dense bitset over the indices [0, Len()).
type Set struct {
	words []uint64
	n     int
	count int
}

// New creates a Set able to hold n bits, all cleared.
func New(n int) *Set {
	if n < 0 {
		n = 0
	}
	return &Set{
		words: make([]uint64, (n+63)/64),
		n:     n,
	}
}

// Len returns the capacity of the set in bits.
func (s *Set) Len() int {
	return s.n
}

// Count returns the number of set bits.
func (s *Set) Count() int {
	return s.count
}

// Set sets bit i. Out-of-range indices are ignored.
func (s *Set) Set(i int) {
	if i < 0 || i >= s.n {
		return
	}
	mask := uint64(1) << (uint(i) & 63)
	w := &s.words[i>>6]
	if *w&mask == 0 {
		*w |= mask
		s.count++
	}
}

// TestAndSet sets bit i and reports whether it was already set.
func (s *Set) TestAndSet(i int) bool {
	if s.Test(i) {
		return true
	}
	s.Set(i)
	return false
}

// Test reports whether bit i is set. Out-of-range indices report false.
func (s *Set) Test(i int) bool {
	if i < 0 || i >= s.n {
		return false
	}
	return s.words[i>>6]&(uint64(1)<<(uint(i)&63)) != 0
}

package pattern

import "math/bits"

// Mask is a bit set over repository arena indices. Bit i stands for the
// group whose Index() is i.
type Mask []uint64

// NewMask returns an empty mask able to hold n indices.
func NewMask(n int) Mask {
	return make(Mask, (n+63)/64)
}

// FullMask returns a mask with the first n bits set.
func FullMask(n int) Mask {
	m := NewMask(n)
	for i := range m {
		m[i] = ^uint64(0)
	}
	if rem := n % 64; rem != 0 {
		m[len(m)-1] = (uint64(1) << rem) - 1
	}
	return m
}

// Set marks index i. Out-of-range indices are ignored.
func (m Mask) Set(i int) {
	if i < 0 || i/64 >= len(m) {
		return
	}
	m[i/64] |= uint64(1) << (i % 64)
}

// Has reports whether index i is marked.
func (m Mask) Has(i int) bool {
	if i < 0 || i/64 >= len(m) {
		return false
	}
	return m[i/64]&(uint64(1)<<(i%64)) != 0
}

// Intersect clears in m every bit not set in other. A shorter (or nil)
// other clears the remaining words of m.
func (m Mask) Intersect(other Mask) {
	for i := range m {
		if i < len(other) {
			m[i] &= other[i]
		} else {
			m[i] = 0
		}
	}
}

// Count returns the number of marked indices.
func (m Mask) Count() int {
	n := 0
	for _, w := range m {
		n += bits.OnesCount64(w)
	}
	return n
}

// Clone returns an independent copy.
func (m Mask) Clone() Mask {
	if m == nil {
		return nil
	}
	c := make(Mask, len(m))
	copy(c, m)
	return c
}

// Each calls fn for every marked index in ascending order.
func (m Mask) Each(fn func(i int)) {
	for wi, w := range m {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			fn(wi*64 + b)
			w &= w - 1
		}
	}
}

package geom

import (
	"math"
	"math/big"
	"math/bits"
)

// maxExactInt is the largest magnitude at which every integer is a float64.
const maxExactInt = 1 << 53

// dist2ErrBound bounds the relative error of Dist2 and d*d together.
// Gaps wider than this are decided by the float64 result alone.
const dist2ErrBound = 0x1p-49

// Within reports whether dx*dx+dy*dy <= d*d for dx, dy = p-q.
//
// The comparison is exact on the float64 inputs. Integral coordinates take
// a 128-bit integer path; everything else is decided in float64 when the
// rounded sides are clearly apart and in rational arithmetic otherwise.
// Non-finite inputs fall back to plain float64 comparison.
func Within(p, q Point, d float64) bool {
	if !finite(p.X, p.Y, q.X, q.Y, d) {
		return p.Dist2(q) <= d*d
	}

	if dx, dy, ad, ok := integralDeltas(p, q, d); ok {
		shi, slo := bits.Mul64(dx, dx)
		yhi, ylo := bits.Mul64(dy, dy)
		var carry uint64
		slo, carry = bits.Add64(slo, ylo, 0)
		shi, _ = bits.Add64(shi, yhi, carry)

		thi, tlo := bits.Mul64(ad, ad)
		return shi < thi || (shi == thi && slo <= tlo)
	}

	d2 := p.Dist2(q)
	th := d * d
	if math.Abs(d2-th) > dist2ErrBound*max(d2, th)+16*math.SmallestNonzeroFloat64 {
		return d2 < th
	}
	return withinRat(p, q, d)
}

// integralDeltas returns |p-q| per axis and |d| as unsigned integers when
// all inputs are integral and small enough for the squares to fit 128 bits.
func integralDeltas(p, q Point, d float64) (dx, dy, ad uint64, ok bool) {
	for _, v := range [...]float64{p.X, p.Y, q.X, q.Y} {
		if v != math.Trunc(v) || math.Abs(v) > maxExactInt {
			return 0, 0, 0, false
		}
	}
	d = math.Abs(d)
	if d != math.Trunc(d) || d >= 0x1p63 {
		return 0, 0, 0, false
	}
	return absDiff(int64(p.X), int64(q.X)), absDiff(int64(p.Y), int64(q.Y)), uint64(d), true
}

func absDiff(a, b int64) uint64 {
	if a < b {
		return uint64(b - a)
	}
	return uint64(a - b)
}

func withinRat(p, q Point, d float64) bool {
	dx := ratSub(p.X, q.X)
	dy := ratSub(p.Y, q.Y)
	s := new(big.Rat).Mul(dx, dx)
	s.Add(s, dy.Mul(dy, dy))

	t := new(big.Rat).SetFloat64(d)
	t.Mul(t, t)
	return s.Cmp(t) <= 0
}

func ratSub(a, b float64) *big.Rat {
	r := new(big.Rat).SetFloat64(a)
	return r.Sub(r, new(big.Rat).SetFloat64(b))
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

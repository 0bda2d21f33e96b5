package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// 537091786² + 536777448² = 759340250², and 759340250² is above 2^53, so
// the rounded float64 sides disagree on this exact tie.
const (
	tripleX = 537091786
	tripleY = 536777448
	tripleD = 759340250
)

func TestWithin_TouchingTripleIsInclusive(t *testing.T) {
	p, q := Pt(0, 0), Pt(tripleX, tripleY)

	assert.Greater(t, p.Dist2(q), float64(tripleD)*float64(tripleD), "float64 rounding separates the tie")
	assert.True(t, Within(p, q, tripleD))
	assert.True(t, Within(q, p, tripleD))
	assert.False(t, Within(p, q, tripleD-1))
}

func TestWithin_NearMissAboveExactRange(t *testing.T) {
	// dx² + 1 exceeds d² by one, and both round to the same float64.
	p, q := Pt(0, 0), Pt(tripleD, 1)

	assert.Equal(t, float64(tripleD)*float64(tripleD), p.Dist2(q), "float64 rounding hides the gap")
	assert.False(t, Within(p, q, tripleD))
	assert.True(t, Within(p, q, tripleD+1))
}

func TestWithin_NegativeCoordinates(t *testing.T) {
	p, q := Pt(-tripleX, tripleY), Pt(0, 0)
	assert.True(t, Within(p, q, tripleD))
	assert.True(t, Within(q, p, -tripleD))
}

func TestWithin_FractionalTripleIsInclusive(t *testing.T) {
	// The same triple scaled by 1/4 leaves the integral path. Power-of-two
	// scaling keeps the float64 rounding, so only the exact fallback gets
	// this right.
	p, q := Pt(0, 0), Pt(tripleX/4.0, tripleY/4.0)
	d := tripleD / 4.0

	assert.Greater(t, p.Dist2(q), d*d)
	assert.True(t, Within(p, q, d))
	assert.False(t, Within(p, Pt(q.X, q.Y+0.25), d))
}

func TestWithin_SmallValues(t *testing.T) {
	tests := []struct {
		name string
		p, q Point
		d    float64
		want bool
	}{
		{"Same", Pt(1, 1), Pt(1, 1), 0, true},
		{"Touching", Pt(0, 0), Pt(3, 4), 5, true},
		{"Apart", Pt(0, 0), Pt(3, 4), 4.999, false},
		{"Fractional", Pt(0.5, 0), Pt(0, 0), 0.5, true},
		{"Far", Pt(0.1, 0.2), Pt(10.3, -7.7), 1, false},
		{"InfiniteRadius", Pt(-1e300, 0), Pt(1e300, 0), math.Inf(1), true},
		{"NaN", Pt(math.NaN(), 0), Pt(0, 0), 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Within(tt.p, tt.q, tt.d))
		})
	}
}

func TestWithin_OverflowingSquares(t *testing.T) {
	// Both sides overflow float64; the rational path still separates them.
	p, q := Pt(0, 0), Pt(1e200, 0)
	assert.True(t, Within(p, q, 1e200))
	assert.False(t, Within(p, q, 9.999e199))
}

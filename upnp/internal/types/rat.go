package types

import (
	"fmt"
	"math"
	"strconv"
)

// MaxDenominator bounds the denominators ParseFloat32 considers.
const MaxDenominator = 10

// A Rat represents a quotient a/b.
type Rat struct {
	a, b int
}

// ParseFloat32 returns the Rat with a denominator up to MaxDenominator
// that is the closest to x. Ties go to the smaller denominator.
func ParseFloat32(x float32) *Rat {
	f := float64(x)
	best := &Rat{int(math.Round(f)), 1}
	bestErr := math.Abs(f - float64(best.a))

	for b := 2; b <= MaxDenominator; b++ {
		a := int(math.Round(f * float64(b)))
		if err := math.Abs(f - float64(a)/float64(b)); err < bestErr {
			best, bestErr = &Rat{a, b}, err
		}
	}

	return best
}

// String returns a string representation in the form "a/b" if b != 1,
// and in the form "a" if b == 1.
func (x *Rat) String() string {
	if x.b == 1 {
		return strconv.Itoa(x.a)
	}

	return fmt.Sprintf("%d/%d", x.a, x.b)
}

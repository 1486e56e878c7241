package math

import gomath "math"

// Pi as float32.
const Pi = float32(gomath.Pi)

// TwoPi is one full turn in radians.
const TwoPi = 2 * Pi

// Trig is the numeric backend used for every transcendental call in the
// render pipeline. Precise wraps the standard library; Legacy reproduces the
// low-precision series approximations for bit-level parity with old renders.
type Trig interface {
	Sin(x float32) float32
	Cos(x float32) float32
	Sqrt(x float32) float32
	Acos(x float32) float32
}

// Precise is the default Trig backend.
type Precise struct{}

func (Precise) Sin(x float32) float32  { return float32(gomath.Sin(float64(x))) }
func (Precise) Cos(x float32) float32  { return float32(gomath.Cos(float64(x))) }
func (Precise) Sqrt(x float32) float32 { return float32(gomath.Sqrt(float64(x))) }

func (Precise) Acos(x float32) float32 {
	return float32(gomath.Acos(float64(clampUnit(x))))
}

// LegacyTerms is the number of series terms (after the first) summed by Legacy.
const LegacyTerms = 8

// LegacySqrtIterations is the fixed Newton iteration count used by Legacy.Sqrt.
const LegacySqrtIterations = 16

// Legacy evaluates sine and cosine with a fixed-term Taylor series, square
// root with Newton iteration and arccosine with a cubic polynomial. Accuracy
// degrades away from zero, so callers wrap angles into [0, 2π) first.
type Legacy struct{}

func (Legacy) Sin(x float32) float32 {
	var sum float32
	for i := 0; i <= LegacyTerms; i++ {
		fa, pow := float32(1), float32(1)
		for j := 1; j <= 2*i+1; j++ {
			fa *= float32(j)
			pow *= x
		}
		sum += sign(i) / fa * pow
	}
	return sum
}

func (Legacy) Cos(x float32) float32 {
	var sum float32
	for i := 0; i <= LegacyTerms; i++ {
		fa, pow := float32(1), float32(1)
		for j := 1; j <= 2*i; j++ {
			fa *= float32(j)
			pow *= x
		}
		sum += sign(i) / fa * pow
	}
	return sum
}

func (Legacy) Sqrt(x float32) float32 {
	if x <= 0 {
		return 0
	}
	guess := x
	if guess < 1 {
		guess = 1
	}
	for i := 0; i < LegacySqrtIterations; i++ {
		guess = 0.5 * (guess + x/guess)
	}
	return guess
}

// Acos uses Abramowitz & Stegun 4.4.45 (|error| < 7e-5 rad).
func (l Legacy) Acos(x float32) float32 {
	x = clampUnit(x)
	neg := x < 0
	if neg {
		x = -x
	}
	r := l.Sqrt(1-x) * (1.5707288 + x*(-0.2121144+x*(0.0742610+x*-0.0187293)))
	if neg {
		return Pi - r
	}
	return r
}

// TrigByName returns the backend registered under name ("precise" or
// "legacy"). Unknown names fall back to Precise.
func TrigByName(name string) Trig {
	if name == "legacy" {
		return Legacy{}
	}
	return Precise{}
}

// WrapAngle wraps a radian angle into [0, 2π).
func WrapAngle(a float32) float32 {
	a -= TwoPi * float32(int(a/TwoPi))
	if a < 0 {
		a += TwoPi
	}
	if a >= TwoPi {
		a = 0
	}
	return a
}

func sign(i int) float32 {
	if i%2 == 1 {
		return -1
	}
	return 1
}

func clampUnit(x float32) float32 {
	if x < -1 {
		return -1
	}
	if x > 1 {
		return 1
	}
	return x
}

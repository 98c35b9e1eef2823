package gmath

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Curve maps a progress value in [0, 1] to an eased value, normally also in
// [0, 1].
type Curve func(x float64) float64

// Ease applies an exponent easing curve to x, clamped to [0, 1]:
//
//	curve > 1       ease in (slow start)
//	curve == 1      linear
//	0 < curve < 1   ease out (slow end)
//	curve < 0       ease in-out, symmetric around 0.5 with exponent -curve
//	curve == 0      constant 0
func Ease(x, curve float64) float64 {
	x = Clamp(x, 0, 1)
	switch {
	case curve > 0:
		if curve < 1 {
			return 1 - math.Pow(1-x, 1/curve)
		}
		return math.Pow(x, curve)
	case curve < 0:
		if x < 0.5 {
			return math.Pow(x*2, -curve) * 0.5
		}
		return (1-math.Pow(1-(x-0.5)*2, -curve))*0.5 + 0.5
	}
	return 0
}

// EaseCurve returns Ease with a fixed curve parameter.
func EaseCurve(curve float64) Curve {
	return func(x float64) float64 { return Ease(x, curve) }
}

// FromTween adapts a gween easing function to a Curve over [0, 1].
func FromTween(fn ease.TweenFunc) Curve {
	return func(x float64) float64 {
		return float64(fn(float32(Clamp(x, 0, 1)), 0, 1, 1))
	}
}

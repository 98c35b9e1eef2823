package random

import (
	"github.com/metarract/gamelib/gmath"
	"github.com/tanema/gween/ease"
)

// Trend draws a uniform value and eases it with gmath.Ease(x, curve), so the
// result in [0, 1] leans toward 0 for curve > 1 and toward 1 for
// 0 < curve < 1.
func Trend(src Source, curve float64) float64 {
	return gmath.Ease(orDefault(src).Float64(), curve)
}

// TrendRange is Trend remapped onto [lo, hi].
func TrendRange(src Source, curve, lo, hi float64) float64 {
	return gmath.Remap(Trend(src, curve), 0, 1, lo, hi)
}

// TrendTween is TrendRange with a gween easing function as the curve.
func TrendTween(src Source, fn ease.TweenFunc, lo, hi float64) float64 {
	eased := gmath.FromTween(fn)(orDefault(src).Float64())
	return gmath.Remap(eased, 0, 1, lo, hi)
}

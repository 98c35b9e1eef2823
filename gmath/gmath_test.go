package gmath

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

const eps = 1e-9

func near(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestLerp(t *testing.T) {
	tests := []struct{ a, b, t, want float64 }{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.25, 2.5},
		{10, 0, 0.5, 5},
		{0, 10, 1.5, 15},
	}
	for _, tt := range tests {
		if got := Lerp(tt.a, tt.b, tt.t); !near(got, tt.want, eps) {
			t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
		}
	}
}

func TestInverseLerpAndRemap(t *testing.T) {
	if got := InverseLerp(10, 20, 15); !near(got, 0.5, eps) {
		t.Errorf("InverseLerp = %v, want 0.5", got)
	}
	if got := InverseLerp(3, 3, 7); got != 0 {
		t.Errorf("InverseLerp on an empty range = %v, want 0", got)
	}
	if got := Remap(5, 0, 10, 100, 200); !near(got, 150, eps) {
		t.Errorf("Remap = %v, want 150", got)
	}
	if got := Remap(20, 0, 10, 0, 1); !near(got, 2, eps) {
		t.Errorf("Remap should not clamp, got %v", got)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-1, 0, 1) != 0 || Clamp(2, 0, 1) != 1 || Clamp(0.5, 0, 1) != 0.5 {
		t.Error("Clamp out of range")
	}
}

func TestLerpFactor(t *testing.T) {
	if got := LerpFactor(1, 0); got != 0 {
		t.Errorf("LerpFactor with zero delta = %v, want 0", got)
	}
	if got := LerpFactor(1, 1); !near(got, 0.5, eps) {
		t.Errorf("LerpFactor(1, 1) = %v, want 0.5", got)
	}
	if got := LerpFactor(2, 1); !near(got, 0.75, eps) {
		t.Errorf("LerpFactor(2, 1) = %v, want 0.75", got)
	}
}

func TestLerp2FrameRateIndependent(t *testing.T) {
	const rate, target = 3.0, 100.0
	tests := []struct {
		steps int
		delta float64
	}{
		{1, 0.2},
		{2, 0.1},
		{4, 0.05},
		{20, 0.01},
	}
	var want float64
	for i, tt := range tests {
		v := 0.0
		for range tt.steps {
			v = Lerp2(v, target, rate, tt.delta)
		}
		if i == 0 {
			want = v
			continue
		}
		if !near(v, want, 1e-9) {
			t.Errorf("%d steps of %v = %v, want %v", tt.steps, tt.delta, v, want)
		}
	}
	if want <= 0 || want >= target {
		t.Errorf("value should move toward target without reaching it, got %v", want)
	}
}

func TestEase(t *testing.T) {
	tests := []struct{ x, curve, want float64 }{
		{0.5, 1, 0.5},
		{0.5, 2, 0.25},
		{0.5, 0.5, 0.75},
		{0.25, -2, 0.125},
		{0.5, -2, 0.5},
		{0.75, -2, 0.875},
		{0.5, 0, 0},
		{2, 2, 1},
		{-1, 2, 0},
	}
	for _, tt := range tests {
		if got := Ease(tt.x, tt.curve); !near(got, tt.want, eps) {
			t.Errorf("Ease(%v, %v) = %v, want %v", tt.x, tt.curve, got, tt.want)
		}
	}
}

func TestEaseEndpoints(t *testing.T) {
	for _, curve := range []float64{0.2, 0.5, 1, 2, 4.8, -0.5, -2, -4} {
		if got := Ease(0, curve); !near(got, 0, eps) {
			t.Errorf("Ease(0, %v) = %v, want 0", curve, got)
		}
		if got := Ease(1, curve); !near(got, 1, eps) {
			t.Errorf("Ease(1, %v) = %v, want 1", curve, got)
		}
	}
}

func TestEaseCurveAndFromTween(t *testing.T) {
	in := EaseCurve(2)
	if got := in(0.5); !near(got, 0.25, eps) {
		t.Errorf("EaseCurve(2)(0.5) = %v, want 0.25", got)
	}

	lin := FromTween(ease.Linear)
	for _, x := range []float64{0, 0.3, 0.5, 1} {
		if got := lin(x); !near(got, x, 1e-6) {
			t.Errorf("FromTween(Linear)(%v) = %v", x, got)
		}
	}
	if got := lin(3); !near(got, 1, 1e-6) {
		t.Errorf("FromTween should clamp input, got %v", got)
	}
}

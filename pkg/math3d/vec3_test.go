package math3d

import (
	"math"
	"testing"
)

func TestVec3_CrossIsOrthogonal(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(-4, 0.5, 2)
	n := a.Cross(b)

	if math.Abs(n.Dot(a)) > tol || math.Abs(n.Dot(b)) > tol {
		t.Errorf("cross product %v not orthogonal to inputs", n)
	}
}

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3
	}{
		{"unit x", V3(1, 0, 0)},
		{"arbitrary", V3(3, -4, 12)},
		{"tiny", V3(1e-7, 2e-7, -3e-7)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Normalize().Len(); math.Abs(got-1) > 1e-12 {
				t.Errorf("Normalize().Len() = %v, want 1", got)
			}
		})
	}

	t.Run("zero vector", func(t *testing.T) {
		if got := Zero3().Normalize(); got != Zero3() {
			t.Errorf("Zero3().Normalize() = %v, want zero", got)
		}
	})
}

func TestVec3_MaxComponent(t *testing.T) {
	tests := []struct {
		in   Vec3
		want float64
	}{
		{V3(1, 2, 3), 3},
		{V3(5, -10, 2), 5},
		{V3(-1, -2, -3), -1},
	}
	for _, tc := range tests {
		if got := tc.in.MaxComponent(); got != tc.want {
			t.Errorf("%v.MaxComponent() = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestVec3_Distance(t *testing.T) {
	if got := V3(1, 1, 1).Distance(V3(4, 5, 1)); math.Abs(got-5) > tol {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestVec3_MinMax(t *testing.T) {
	a := V3(1, 5, -2)
	b := V3(3, -4, 0)
	if got, want := a.Min(b), V3(1, -4, -2); got != want {
		t.Errorf("Min = %v, want %v", got, want)
	}
	if got, want := a.Max(b), V3(3, 5, 0); got != want {
		t.Errorf("Max = %v, want %v", got, want)
	}
}

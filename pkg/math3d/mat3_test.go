package math3d

import (
	"math"
	"testing"
)

const tol = 1e-12

func vecsClose(a, b Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestRotationZYX_ZeroIsIdentity(t *testing.T) {
	r := RotationZYX(0, 0, 0)
	id := Identity3()
	for i := range r {
		if math.Abs(r[i]-id[i]) > tol {
			t.Fatalf("RotationZYX(0,0,0)[%d] = %v, want %v", i, r[i], id[i])
		}
	}
}

func TestRotationZYX_SingleAxis(t *testing.T) {
	tests := []struct {
		name             string
		yaw, pitch, roll float64
		in, want         Vec3
	}{
		{"yaw quarter turn", math.Pi / 2, 0, 0, V3(1, 0, 0), V3(0, -1, 0)},
		{"pitch quarter turn", 0, math.Pi / 2, 0, V3(1, 0, 0), V3(0, 0, 1)},
		{"roll quarter turn", 0, 0, math.Pi / 2, V3(0, 1, 0), V3(0, 0, -1)},
		{"roll leaves x alone", 0, 0, math.Pi / 2, V3(1, 0, 0), V3(1, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RotationZYX(tc.yaw, tc.pitch, tc.roll).Apply(tc.in)
			if !vecsClose(got, tc.want, 1e-9) {
				t.Errorf("Apply(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestMat3_MulComposesWithApply(t *testing.T) {
	a := RotationZYX(0.3, -0.7, 1.1)
	b := RotationZYX(-1.2, 0.4, 0.05)
	v := V3(0.2, -1.5, 3.7)

	sequential := b.Apply(a.Apply(v))
	combined := a.Mul(b).Apply(v)

	if !vecsClose(sequential, combined, 1e-9) {
		t.Errorf("sequential apply %v != combined apply %v", sequential, combined)
	}
}

func TestRotationZYX_PreservesLength(t *testing.T) {
	r := RotationZYX(0.9, 2.1, -0.4)
	v := V3(3, -4, 12)
	if got, want := r.Apply(v).Len(), v.Len(); math.Abs(got-want) > 1e-9 {
		t.Errorf("rotated length = %v, want %v", got, want)
	}
}

func TestMat3_Transpose(t *testing.T) {
	m := Mat3{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	want := Mat3{
		1, 4, 7,
		2, 5, 8,
		3, 6, 9,
	}
	if m.Transpose() != want {
		t.Errorf("Transpose() = %v, want %v", m.Transpose(), want)
	}
}

func TestRotationZYX_TransposeIsInverse(t *testing.T) {
	r := RotationZYX(0.6, -0.3, 1.7)
	v := V3(1, 2, 3)
	back := r.Transpose().Apply(r.Apply(v))
	if !vecsClose(back, v, 1e-9) {
		t.Errorf("R^T(R(v)) = %v, want %v", back, v)
	}
}

package math3d

import "math"

// Mat3 is a 3x3 matrix stored in row-major order.
//
// Memory layout (indices):
// | 0 1 2 |
// | 3 4 5 |
// | 6 7 8 |
//
// Vertices are treated as row vectors and transformed by right
// multiplication: v' = v · M. Under this convention applying A and then B
// is the same as applying the single product A·B.
type Mat3 [9]float64

// Identity3 returns the identity matrix.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// RotationZYX builds the combined yaw-pitch-roll rotation matrix
// Rz(yaw) · Ry(pitch) · Rx(roll) for row-vector right multiplication.
// Yaw rotates about the Z axis, pitch about Y, roll about X, all in radians.
func RotationZYX(yaw, pitch, roll float64) Mat3 {
	ca, sa := math.Cos(yaw), math.Sin(yaw)
	cb, sb := math.Cos(pitch), math.Sin(pitch)
	cr, sr := math.Cos(roll), math.Sin(roll)

	return Mat3{
		ca * cb, ca*sb*sr - sa*cr, ca*sb*cr + sa*sr,
		sa * cb, sa*sb*sr + ca*cr, sa*sb*cr - ca*sr,
		-sb, cb * sr, cb * cr,
	}
}

// Mul multiplies two matrices: a · b.
func (a Mat3) Mul(b Mat3) Mat3 {
	var m Mat3
	for row := range 3 {
		for col := range 3 {
			var sum float64
			for k := range 3 {
				sum += a[row*3+k] * b[k*3+col]
			}
			m[row*3+col] = sum
		}
	}
	return m
}

// Apply transforms v as a row vector: v' = v · m.
func (m Mat3) Apply(v Vec3) Vec3 {
	return Vec3{
		v.X*m[0] + v.Y*m[3] + v.Z*m[6],
		v.X*m[1] + v.Y*m[4] + v.Z*m[7],
		v.X*m[2] + v.Y*m[5] + v.Z*m[8],
	}
}

// Transpose returns the transposed matrix.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

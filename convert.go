package grl

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/cancanxinxin/grl/pkg/trackfb"
)

// Affine is a double-precision rigid transform. A nil Rotation is the
// identity.
type Affine struct {
	Rotation    *r3.Mat
	Translation r3.Vec
}

// Affine32 is a single-precision rigid transform, row-major rotation.
type Affine32 struct {
	Rotation    [3][3]float32
	Translation [3]float32
}

// Float64 widens a to double precision.
func (a Affine32) Float64() Affine {
	var rot [9]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			rot[i*3+j] = float64(a.Rotation[i][j])
		}
	}
	return Affine{
		Rotation: r3.NewMat(rot[:]),
		Translation: r3.Vec{
			X: float64(a.Translation[0]),
			Y: float64(a.Translation[1]),
			Z: float64(a.Translation[2]),
		},
	}
}

// Point converts a point to its wire struct.
func Point(p r3.Vec) trackfb.Vec3 {
	return trackfb.Vec3{X: p.X, Y: p.Y, Z: p.Z}
}

// Quat converts a quaternion to its wire struct. The wire order is
// (x, y, z, w): Imag, Jmag, Kmag, Real.
func Quat(q quat.Number) trackfb.Quat {
	return trackfb.Quat{X: q.Imag, Y: q.Jmag, Z: q.Kmag, W: q.Real}
}

// PoseFromAffine splits t into translation and rotation.
func PoseFromAffine(t Affine) trackfb.PoseT {
	return trackfb.PoseT{
		Position:    Point(t.Translation),
		Orientation: Quat(RotationQuat(t.Rotation)),
	}
}

// PoseFromAffine32 promotes t to double precision before extraction.
func PoseFromAffine32(t Affine32) trackfb.PoseT {
	return PoseFromAffine(t.Float64())
}

// RotationQuat converts a rotation matrix to a quaternion. The branch on the
// largest diagonal term keeps the square root argument away from zero.
// m is expected to be orthonormal; that is not checked.
func RotationQuat(m *r3.Mat) quat.Number {
	if m == nil {
		return quat.Number{Real: 1}
	}
	var q [3]float64
	var w float64
	trace := m.At(0, 0) + m.At(1, 1) + m.At(2, 2)
	if trace > 0 {
		s := math.Sqrt(trace + 1)
		w = 0.5 * s
		s = 0.5 / s
		q[0] = (m.At(2, 1) - m.At(1, 2)) * s
		q[1] = (m.At(0, 2) - m.At(2, 0)) * s
		q[2] = (m.At(1, 0) - m.At(0, 1)) * s
	} else {
		i := 0
		if m.At(1, 1) > m.At(0, 0) {
			i = 1
		}
		if m.At(2, 2) > m.At(i, i) {
			i = 2
		}
		j := (i + 1) % 3
		k := (j + 1) % 3
		s := math.Sqrt(m.At(i, i) - m.At(j, j) - m.At(k, k) + 1)
		q[i] = 0.5 * s
		s = 0.5 / s
		w = (m.At(k, j) - m.At(j, k)) * s
		q[j] = (m.At(j, i) + m.At(i, j)) * s
		q[k] = (m.At(k, i) + m.At(i, k)) * s
	}
	return quat.Number{Real: w, Imag: q[0], Jmag: q[1], Kmag: q[2]}
}

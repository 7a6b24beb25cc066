package jeod

import (
	"math"

	"github.com/gonum/floats"
	"github.com/gonum/matrix/mat64"
)

// Quaternion is a left transformation quaternion: S is the scalar part and V
// the vector part of a unit quaternion whose elementary form for a rotation
// by x about axis u is (cos(x/2), -sin(x/2)*u). In that convention the
// quaternion maps reference-frame coordinates to rotated-frame coordinates,
// matching the transformation matrices built by R1, R2 and R3.
type Quaternion struct {
	S float64
	V [3]float64
}

// Mul returns the transformation product q*o: the quaternion performing
// transformation o followed by transformation q, so that
// (q.Mul(o)).DCM() equals q.DCM() times o.DCM().
func (q Quaternion) Mul(o Quaternion) Quaternion {
	w := cross(q.V[:], o.V[:])
	return Quaternion{
		S: q.S*o.S - dot(q.V[:], o.V[:]),
		V: [3]float64{
			q.S*o.V[0] + o.S*q.V[0] + w[0],
			q.S*o.V[1] + o.S*q.V[1] + w[1],
			q.S*o.V[2] + o.S*q.V[2] + w[2],
		},
	}
}

// Conjugate returns the quaternion performing the inverse transformation.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{S: q.S, V: [3]float64{-q.V[0], -q.V[1], -q.V[2]}}
}

// Norm returns the Euclidean norm over all four components.
func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.S*q.S + dot(q.V[:], q.V[:]))
}

// Normalize scales q to unit norm in place, cancelling accumulated floating
// point drift. A zero quaternion carries no direction information to rescale:
// it is left untouched and reported to the diagnostic sink.
func (q *Quaternion) Normalize() {
	n := q.Norm()
	if floats.EqualWithinAbs(n, 0, 1e-12) {
		reportZeroNorm("Quaternion.Normalize")
		return
	}
	q.S /= n
	q.V[0] /= n
	q.V[1] /= n
	q.V[2] /= n
}

// DCM returns the direction cosine matrix performing the same coordinate
// transformation as q. q is assumed to be of unit norm.
func (q Quaternion) DCM() *mat64.Dense {
	s := q.S
	x, y, z := q.V[0], q.V[1], q.V[2]
	d := s*s - (x*x + y*y + z*z)
	return mat64.NewDense(3, 3, []float64{
		d + 2*x*x, 2 * (x*y - s*z), 2 * (x*z + s*y),
		2 * (y*x + s*z), d + 2*y*y, 2 * (y*z - s*x),
		2 * (z*x - s*y), 2 * (z*y + s*x), d + 2*z*z,
	})
}

// Package jeod converts between the three attitude representations used in
// spacecraft simulation: Euler angle triples following one of the twelve
// rotation sequences, left transformation quaternions, and direction cosine
// matrices. All conversions are pure functions over value inputs and a
// read-only sequence descriptor table, so they are safe to call concurrently.
//
// MxV33, Deg2rad and Rad2deg are part of the public surface as conveniences
// for callers applying the produced matrices to vectors and feeding angles
// in degrees; the conversions themselves never need them.
package jeod

import (
	"errors"
	"math"

	"github.com/gonum/matrix/mat64"
)

// GimbalLockThreshold is the default threshold for declaring gimbal lock.
// Lock occurs when sin(theta) (aerodynamics sequences) or cos(theta)
// (astronomical sequences) is very close to -1 or +1; this constant
// quantifies 'very close'. It may be overridden through the configuration
// file, see config.go.
const GimbalLockThreshold = 1e-13

// ErrInvalidSequence is returned when an EulerSequence argument falls outside
// the twelve defined values. The offending call reports once to the
// diagnostic sink and yields zero-valued outputs.
var ErrInvalidSequence = errors.New("euler sequence has not been set or is invalid")

// QuatFromEuler builds the left transformation quaternion equivalent to the
// Euler angle triple angles (radians, in application order) following seq.
// The composite is the reverse-order product of the three elementary
// quaternions: each elementary rotation acts on coordinates already rotated
// by the stages before it.
func QuatFromEuler(seq EulerSequence, angles [3]float64) (Quaternion, error) {
	if !seq.valid() {
		reportInvalidSequence("QuatFromEuler", seq)
		return Quaternion{}, ErrInvalidSequence
	}
	axes := eulerInfoTable[seq].axes

	var q [3]Quaternion
	for i := 0; i < 3; i++ {
		sinht, cosht := math.Sincos(0.5 * angles[i])
		q[i].S = cosht
		q[i].V[axes[i]] = -sinht
	}

	quat := q[2].Mul(q[1]).Mul(q[0])
	quat.Normalize()
	return quat, nil
}

// DCMFromEuler builds the transformation matrix equivalent to the Euler angle
// triple angles (radians, in application order) following seq. The composite
// is the reverse-order product of the three elementary matrices, as in
// QuatFromEuler.
func DCMFromEuler(seq EulerSequence, angles [3]float64) (*mat64.Dense, error) {
	if !seq.valid() {
		reportInvalidSequence("DCMFromEuler", seq)
		return nil, ErrInvalidSequence
	}
	axes := eulerInfoTable[seq].axes

	var m21, m mat64.Dense
	m21.Mul(Rot(axes[2], angles[2]), Rot(axes[1], angles[1]))
	m.Mul(&m21, Rot(axes[0], angles[0]))
	return &m, nil
}

// EulerFromDCM extracts the Euler angle triple following seq from the
// transformation matrix m, always returned in (phi, theta, psi) order.
//
// A transformation matrix built from an XYZ sequence has five key elements:
// the [2][0] element is sin(theta) alone, the rest of row 2 carries phi
// scaled by cos(theta), and the rest of column 0 carries psi scaled by
// cos(theta). The same holds for all twelve sequences with the element
// locations taken from the sequence descriptor. Theta is derived from
// whichever of its two sources (the direct element, or the magnitude pooled
// from the four phi/psi elements) is larger, since asin and acos lose
// precision to cancellation near +/-1.
//
// When cos(theta) (or sin(theta) for astronomical sequences) vanishes, the
// four phi/psi elements vanish with it and only the sum or difference of phi
// and psi remains observable: gimbal lock. The policy here is to pin psi to
// zero and recover phi from an element pair that stays well conditioned at
// the singularity. Downstream consumers rely on this exact convention.
//
// m is assumed orthonormal to within numerical accuracy (rows and columns of
// near-unit norm, determinant near +1); this is trusted, not checked.
func EulerFromDCM(m mat64.Matrix, seq EulerSequence) ([3]float64, error) {
	if !seq.valid() {
		reportInvalidSequence("EulerFromDCM", seq)
		return [3]float64{}, ErrInvalidSequence
	}
	info := eulerInfoTable[seq]

	var phi, theta, psi float64

	// m[axes[2]][axes[0]] is sin(theta) for even permutation aerodynamics
	// sequences, -sin(theta) for odd ones, and cos(theta) for all
	// astronomical sequences.
	thetaVal := m.At(info.axes[2], info.axes[0])

	// Four elements of the form sign * (sin or cos of theta) * (sin or cos
	// of phi or psi).
	sinPhi := m.At(info.axes[2], info.axes[1])
	cosPhi := m.At(info.axes[2], info.altLast)
	sinPsi := m.At(info.axes[1], info.axes[0])
	cosPsi := m.At(info.altFirst, info.axes[0])

	// Two independent estimates of the magnitude of theta's complementary
	// trig value; their mean pools both element pairs.
	altThetaVal1 := math.Sqrt(sinPhi*sinPhi + cosPhi*cosPhi)
	altThetaVal2 := math.Sqrt(sinPsi*sinPsi + cosPsi*cosPsi)
	altThetaVal := 0.5 * (altThetaVal1 + altThetaVal2)

	if info.asymmetric && !info.even {
		thetaVal = -thetaVal
	}

	// Derive theta from whichever source has the larger magnitude.
	if altThetaVal < math.Abs(thetaVal) {
		altTheta := math.Asin(altThetaVal)
		if info.asymmetric {
			if thetaVal < 0 {
				theta = -0.5*math.Pi + altTheta
			} else {
				theta = 0.5*math.Pi - altTheta
			}
		} else {
			if thetaVal < 0 {
				theta = math.Pi - altTheta
			} else {
				theta = altTheta
			}
		}
	} else {
		if info.asymmetric {
			theta = math.Asin(thetaVal)
		} else {
			theta = math.Acos(thetaVal)
		}
	}

	if altThetaVal > jeodConfig().gimbalLockThreshold {
		// The four key elements are sin(phi) etc. scaled by a common
		// factor of the form sign*cos(theta). Fix the signs so that the
		// common factor is positive for all four before the atan2 calls.
		if info.asymmetric {
			// The sine values carry the wrong sign for right-handed
			// aerodynamics sequences.
			if info.even {
				sinPhi = -sinPhi
				sinPsi = -sinPsi
			}
		} else {
			// For astronomical sequences one cosine term carries the
			// wrong sign: cos(phi) for even permutations, cos(psi)
			// for odd ones.
			if info.even {
				cosPhi = -cosPhi
			} else {
				cosPsi = -cosPsi
			}
		}
		phi = math.Atan2(sinPhi, cosPhi)
		psi = math.Atan2(sinPsi, cosPsi)
	} else {
		// Gimbal lock: only the sum of or difference between phi and psi
		// is observable. Pin psi to zero and read phi from a pair of
		// elements that does not vanish at the singularity, with the same
		// positive-common-factor constraint as above.
		sinPhi = m.At(info.axes[1], info.altLast)
		cosPhi = m.At(info.axes[1], info.axes[1])
		if !info.even {
			sinPhi = -sinPhi
		}
		phi = math.Atan2(sinPhi, cosPhi)
		psi = 0
	}

	return [3]float64{phi, theta, psi}, nil
}

package jeod

import "fmt"

// EulerSequence identifies the order in which the three elementary rotations
// of an Euler angle triple are applied. The first six sequences are
// aerodynamics-style sequences (all three axes distinct); the last six are
// astronomical-style sequences (first and third axes identical).
type EulerSequence uint8

const (
	// XYZ is the roll-pitch-yaw aerodynamics sequence.
	XYZ EulerSequence = iota
	XZY
	YZX
	YXZ
	ZXY
	ZYX
	XYX
	XZX
	// YZY is an astronomical sequence: the middle angle lies in [0, pi].
	YZY
	YXY
	ZXZ
	ZYZ
)

func (s EulerSequence) String() string {
	switch s {
	case XYZ:
		return "XYZ"
	case XZY:
		return "XZY"
	case YZX:
		return "YZX"
	case YXZ:
		return "YXZ"
	case ZXY:
		return "ZXY"
	case ZYX:
		return "ZYX"
	case XYX:
		return "XYX"
	case XZX:
		return "XZX"
	case YZY:
		return "YZY"
	case YXY:
		return "YXY"
	case ZXZ:
		return "ZXZ"
	case ZYZ:
		return "ZYZ"
	default:
		return fmt.Sprintf("EulerSequence(%d)", uint8(s))
	}
}

// valid returns whether s is one of the twelve defined sequences.
func (s EulerSequence) valid() bool {
	return s <= ZYZ
}

// IsSymmetric returns whether the first and third rotation axes of s
// coincide, as in ZXZ. Symmetric sequences bound their middle angle to
// [0, pi] rather than [-pi/2, pi/2].
func (s EulerSequence) IsSymmetric() bool {
	return s.valid() && !eulerInfoTable[s].asymmetric
}

// eulerInfo wires an EulerSequence to the matrix and quaternion elements
// that matter for it when building a transformation from an angle triple and
// when extracting a triple back out of a matrix.
type eulerInfo struct {
	// axes holds the rotation axes in application order, X=0 Y=1 Z=2.
	// XYZ is {0,1,2}, ZXZ is {2,0,2}.
	axes [3]int

	// altFirst and altLast are the first and last elements of axes for
	// asymmetric sequences, but the index of the omitted axis for symmetric
	// ones (Y=1 for ZXZ).
	altFirst int
	altLast  int

	// even reports whether replacing the final axis with the one axis the
	// first two elements omit yields an even permutation of XYZ. The
	// replacement leaves asymmetric sequences unchanged; ZXZ becomes ZXY,
	// which is even.
	even bool

	// asymmetric is true for aerodynamics sequences, false for astronomical.
	asymmetric bool
}

// eulerInfoTable holds one descriptor per EulerSequence. Built at link time,
// never written afterwards, so concurrent readers need no synchronization.
var eulerInfoTable = [12]eulerInfo{
	XYZ: {axes: [3]int{0, 1, 2}, altFirst: 0, altLast: 2, even: true, asymmetric: true},
	XZY: {axes: [3]int{0, 2, 1}, altFirst: 0, altLast: 1, even: false, asymmetric: true},
	YZX: {axes: [3]int{1, 2, 0}, altFirst: 1, altLast: 0, even: true, asymmetric: true},
	YXZ: {axes: [3]int{1, 0, 2}, altFirst: 1, altLast: 2, even: false, asymmetric: true},
	ZXY: {axes: [3]int{2, 0, 1}, altFirst: 2, altLast: 1, even: true, asymmetric: true},
	ZYX: {axes: [3]int{2, 1, 0}, altFirst: 2, altLast: 0, even: false, asymmetric: true},
	XYX: {axes: [3]int{0, 1, 0}, altFirst: 2, altLast: 2, even: true, asymmetric: false},
	XZX: {axes: [3]int{0, 2, 0}, altFirst: 1, altLast: 1, even: false, asymmetric: false},
	YZY: {axes: [3]int{1, 2, 1}, altFirst: 0, altLast: 0, even: true, asymmetric: false},
	YXY: {axes: [3]int{1, 0, 1}, altFirst: 2, altLast: 2, even: false, asymmetric: false},
	ZXZ: {axes: [3]int{2, 0, 2}, altFirst: 1, altLast: 1, even: true, asymmetric: false},
	ZYZ: {axes: [3]int{2, 1, 2}, altFirst: 0, altLast: 0, even: false, asymmetric: false},
}

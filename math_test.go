package jeod

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func vectorsEqual(a, b []float64) bool {
	for i := range a {
		if !floats.EqualWithinAbs(a[i], b[i], 1e-12) {
			return false
		}
	}
	return true
}

func TestCross(t *testing.T) {
	i := []float64{1, 0, 0}
	j := []float64{0, 1, 0}
	k := []float64{0, 0, 1}
	if !vectorsEqual(cross(i, j), k) {
		t.Fatal("i x j != k")
	}
	if !vectorsEqual(cross(j, k), i) {
		t.Fatal("j x k != i")
	}
	if !vectorsEqual(cross([]float64{2, 3, 4}, []float64{5, 6, 7}), []float64{-3, 6, -3}) {
		t.Fatal("cross fail")
	}
}

func TestNormDot(t *testing.T) {
	v := []float64{3, 4, 12}
	if norm(v) != 13 {
		t.Fatalf("norm = %f", norm(v))
	}
	if dot(v, v) != 169 {
		t.Fatalf("dot = %f", dot(v, v))
	}
	if dot([]float64{1, 0, 0}, []float64{0, 1, 0}) != 0 {
		t.Fatal("orthogonal dot not zero")
	}
}

func TestAngles(t *testing.T) {
	if !floats.EqualWithinAbs(Deg2rad(90), math.Pi/2, 1e-15) {
		t.Fatal("Deg2rad(90) fail")
	}
	if !floats.EqualWithinAbs(Deg2rad(-90), 3*math.Pi/2, 1e-15) {
		t.Fatal("Deg2rad(-90) fail")
	}
	if !floats.EqualWithinAbs(Rad2deg(math.Pi), 180, 1e-12) {
		t.Fatal("Rad2deg(pi) fail")
	}
	if !floats.EqualWithinAbs(Rad2deg(-math.Pi/2), 270, 1e-12) {
		t.Fatal("Rad2deg(-pi/2) fail")
	}
}

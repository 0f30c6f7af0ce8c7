package vector3

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestAddSubScale(t *testing.T) {
	a := New(1, 2, 3)
	b := New(4, -1, 2)

	sum := a.Add(b)
	if sum != (Vector3{5, 1, 5}) {
		t.Fatalf("Add = %+v, want {5 1 5}", sum)
	}

	diff := a.Sub(b)
	if diff != (Vector3{-3, 3, 1}) {
		t.Fatalf("Sub = %+v, want {-3 3 1}", diff)
	}

	scaled := a.Scale(2)
	if scaled != (Vector3{2, 4, 6}) {
		t.Fatalf("Scale = %+v, want {2 4 6}", scaled)
	}
}

func TestDotCross(t *testing.T) {
	x := New(1, 0, 0)
	y := New(0, 1, 0)

	if got := x.Dot(y); got != 0 {
		t.Fatalf("Dot = %v, want 0", got)
	}
	if got := x.Cross(y); got != (Vector3{0, 0, 1}) {
		t.Fatalf("Cross = %+v, want {0 0 1}", got)
	}
}

func TestMagnitudeAndDistance(t *testing.T) {
	v := New(3, 4, 0)
	if got := v.Magnitude(); got != 5 {
		t.Fatalf("Magnitude = %v, want 5", got)
	}

	a := New(0, 0, 0)
	b := New(3, 4, 0)
	if got := a.Distance(b); got != 5 {
		t.Fatalf("Distance = %v, want 5", got)
	}
	if got := a.DistanceSquared(b); got != 25 {
		t.Fatalf("DistanceSquared = %v, want 25", got)
	}
}

func TestNormalizeZeroMagnitudeErrors(t *testing.T) {
	if _, err := Zero.Normalize(); err == nil {
		t.Fatal("Normalize of zero vector should error")
	}

	unit, err := New(0, 5, 0).Normalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(unit.Magnitude(), 1, 1e-12) {
		t.Fatalf("normalized magnitude = %v, want 1", unit.Magnitude())
	}
}

func TestRotateZQuarterTurn(t *testing.T) {
	v := New(1, 0, 0)
	rotated := v.RotateZ(math.Pi / 2)
	if !almostEqual(rotated.X, 0, 1e-12) || !almostEqual(rotated.Y, 1, 1e-12) {
		t.Fatalf("RotateZ(pi/2) = %+v, want {0 1 0}", rotated)
	}
}

func TestRotateRoundTrip(t *testing.T) {
	v := New(1.2, -3.4, 5.6)
	angle := 0.77

	rx := v.RotateX(angle).RotateX(-angle)
	if !almostEqual(rx.X, v.X, 1e-9) || !almostEqual(rx.Y, v.Y, 1e-9) || !almostEqual(rx.Z, v.Z, 1e-9) {
		t.Fatalf("RotateX round trip = %+v, want %+v", rx, v)
	}

	ry := v.RotateY(angle).RotateY(-angle)
	if !almostEqual(ry.X, v.X, 1e-9) || !almostEqual(ry.Y, v.Y, 1e-9) || !almostEqual(ry.Z, v.Z, 1e-9) {
		t.Fatalf("RotateY round trip = %+v, want %+v", ry, v)
	}

	rz := v.RotateZ(angle).RotateZ(-angle)
	if !almostEqual(rz.X, v.X, 1e-9) || !almostEqual(rz.Y, v.Y, 1e-9) || !almostEqual(rz.Z, v.Z, 1e-9) {
		t.Fatalf("RotateZ round trip = %+v, want %+v", rz, v)
	}
}

func TestAngleDegrees(t *testing.T) {
	a := New(1, 0, 0)
	b := New(0, 1, 0)
	angle, err := a.AngleDegrees(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(angle, 90, 1e-9) {
		t.Fatalf("AngleDegrees = %v, want 90", angle)
	}
}

func TestIsFinite(t *testing.T) {
	if !New(1, 2, 3).IsFinite() {
		t.Fatal("expected finite vector to report finite")
	}
	if New(math.NaN(), 0, 0).IsFinite() {
		t.Fatal("expected NaN vector to report non-finite")
	}
	if New(math.Inf(1), 0, 0).IsFinite() {
		t.Fatal("expected +Inf vector to report non-finite")
	}
}

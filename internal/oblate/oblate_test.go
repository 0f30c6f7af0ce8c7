package oblate

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestLegendreClosedForms(t *testing.T) {
	xis := []float64{-0.9, -0.5, -0.1, 0.1, 0.5, 0.9}
	for _, xi := range xis {
		p, pd := Legendre(3, xi)

		wantP2 := 0.5 * (3*xi*xi - 1)
		wantP3 := 0.5 * (5*xi*xi*xi - 3*xi)
		if !almostEqual(p[2], wantP2, 1e-12) {
			t.Errorf("xi=%v P2 = %v, want %v", xi, p[2], wantP2)
		}
		if !almostEqual(p[3], wantP3, 1e-12) {
			t.Errorf("xi=%v P3 = %v, want %v", xi, p[3], wantP3)
		}

		wantP2d := 3 * xi
		wantP3d := 0.5 * (15*xi*xi - 3)
		if !almostEqual(pd[2], wantP2d, 1e-12) {
			t.Errorf("xi=%v P2' = %v, want %v", xi, pd[2], wantP2d)
		}
		if !almostEqual(pd[3], wantP3d, 1e-12) {
			t.Errorf("xi=%v P3' = %v, want %v", xi, pd[3], wantP3d)
		}
	}
}

func TestPerturbationVanishesWithZeroZonals(t *testing.T) {
	p := Params{
		Mu:               3.986e14,
		EquatorialRadius: 6.378e6,
		Zonal:            []float64{0, 0, 0, 0, 0},
	}
	r := Vec3{X: 7e6, Y: 1e6, Z: 2e6}
	accel := Perturbation(r, p)

	mag := accel.Magnitude()
	pointMassMag := p.Mu / r.MagnitudeSquared()
	if mag > 1e-15*pointMassMag {
		t.Fatalf("perturbation with zero Jn = %v, want <= %v", mag, 1e-15*pointMassMag)
	}
}

func TestPerturbationFiniteNearPole(t *testing.T) {
	p := Params{
		Mu:               3.986e14,
		EquatorialRadius: 6.378e6,
		Zonal:            []float64{0, 0, 1.08263e-3, -2.532e-6, -1.6109876e-6},
	}
	r := Vec3{X: 1e-6, Y: 1e-6, Z: 7e6}
	accel := Perturbation(r, p)
	if !accel.IsFinite() {
		t.Fatalf("perturbation near pole is not finite: %+v", accel)
	}
}

func TestFrameTransformRoundTrip(t *testing.T) {
	alpha := 0.3
	delta := 0.9
	obliquity := DefaultObliquity

	vs := []Vec3{
		{X: 1, Y: 0, Z: 0},
		{X: 0.2, Y: -1.4, Z: 3.1},
		{X: -5, Y: 2, Z: 0.5},
	}
	for _, v := range vs {
		eq := EclipticToEquatorial(v, alpha, delta, obliquity)
		back := EquatorialToEcliptic(eq, alpha, delta, obliquity)

		rel := back.Sub(v).Magnitude() / math.Max(1e-15, v.Magnitude())
		if rel > 1e-10 {
			t.Fatalf("round trip for %+v: got %+v, relative error %v", v, back, rel)
		}
	}
}

func TestPoleAt(t *testing.T) {
	pole := Pole{
		EpochJD:   2451545.0,
		Alpha0:    1.0,
		Delta0:    0.5,
		AlphaRate: 0.1,
		DeltaRate: -0.05,
	}

	a, d := pole.At(pole.EpochJD)
	if !almostEqual(a, 1.0, 1e-12) || !almostEqual(d, 0.5, 1e-12) {
		t.Fatalf("At(T0) = (%v, %v), want (1.0, 0.5)", a, d)
	}

	a, d = pole.At(pole.EpochJD + DaysPerJulianCentury)
	if !almostEqual(a, 1.1, 1e-12) || !almostEqual(d, 0.45, 1e-12) {
		t.Fatalf("At(T0+century) = (%v, %v), want (1.1, 0.45)", a, d)
	}
}

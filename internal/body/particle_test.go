package body

import (
	"math"
	"testing"

	"solarsim/internal/oblate"
	"solarsim/internal/vector3"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestSetMassUpdatesMu(t *testing.T) {
	p := New("earth", 5.972e24, vector3.Zero, vector3.Zero)
	wantMu := G * 5.972e24
	if !almostEqual(p.Mu, wantMu, wantMu*1e-12) {
		t.Fatalf("Mu = %v, want %v", p.Mu, wantMu)
	}

	p.SetMu(42)
	if p.Mu != 42 {
		t.Fatalf("Mu after SetMu = %v, want 42", p.Mu)
	}
	if p.Mass != 5.972e24 {
		t.Fatalf("Mass changed by SetMu: %v", p.Mass)
	}
}

func TestSetMassZeroLeavesMuUnchanged(t *testing.T) {
	p := New("probe", 0, vector3.Zero, vector3.Zero)
	p.SetMu(100)
	p.SetMass(0)
	if p.Mu != 100 {
		t.Fatalf("Mu changed by zero-mass SetMass: %v", p.Mu)
	}
}

func TestNewtonAccelerationPointsTowardAttractor(t *testing.T) {
	sun := New("sun", 1.989e30, vector3.Zero, vector3.Zero)
	earth := New("earth", 5.972e24, vector3.New(1.496e11, 0, 0), vector3.Zero)

	acc := earth.NewtonAcceleration([]*Particle{sun, earth}, 2451545.0)
	if acc.X >= 0 {
		t.Fatalf("expected acceleration toward sun (negative X), got %+v", acc)
	}
	if acc.Y != 0 || acc.Z != 0 {
		t.Fatalf("expected planar acceleration, got %+v", acc)
	}

	expectedMag := sun.Mu / (1.496e11 * 1.496e11)
	if !almostEqual(acc.Magnitude(), expectedMag, expectedMag*1e-9) {
		t.Fatalf("|acc| = %v, want %v", acc.Magnitude(), expectedMag)
	}
}

func TestAccelerationFromDistanceGating(t *testing.T) {
	planet := New("jupiter", 1.898e27, vector3.Zero, vector3.Zero)
	planet.Oblate = &Oblate{
		PlanetName: "jupiter",
		Params: oblate.Params{
			Mu:               planet.Mu,
			EquatorialRadius: 7.1492e7,
			Zonal:            []float64{0, 0, 0.01469643, 0, -0.00090772},
		},
		Pole:      oblate.Pole{EpochJD: 2451545.0},
		Obliquity: oblate.DefaultObliquity,
	}

	far := New("test", 0, vector3.New(6e9, 0, 0), vector3.Zero)
	gotFar := far.AccelerationFrom(planet, 2451545.0)

	wantFar := far.Pos.Sub(planet.Pos).Scale(-1)
	wantFar, _ = wantFar.Normalize()
	wantFarAcc := wantFar.Scale(planet.Mu / far.Pos.DistanceSquared(planet.Pos))

	if gotFar.Distance(wantFarAcc)/wantFarAcc.Magnitude() > 1e-9 {
		t.Fatalf("beyond shell radius: got %+v, want pure Newton %+v", gotFar, wantFarAcc)
	}
}

func TestPostNewtonianRequiresAttractorNotSelf(t *testing.T) {
	sun := New("sun", 1.989e30, vector3.Zero, vector3.Zero)
	mercury := New("mercury", 3.3e23, vector3.New(5.79e10, 0, 0), vector3.New(0, 47000, 0))

	newtonAcc := mercury.NewtonAcceleration([]*Particle{sun, mercury}, 2451545.0)
	pn := mercury.PostNewtonianCorrection(newtonAcc, []*Particle{sun, mercury})

	if !pn.IsFinite() {
		t.Fatalf("PN correction not finite: %+v", pn)
	}
	// The correction should be many orders of magnitude smaller than
	// the Newtonian term for a solar-system orbit.
	if pn.Magnitude() >= newtonAcc.Magnitude() {
		t.Fatalf("PN correction %v >= Newtonian %v", pn.Magnitude(), newtonAcc.Magnitude())
	}
}

func TestRK4ScratchRoundTrip(t *testing.T) {
	p := New("p", 1, vector3.New(1, 2, 3), vector3.New(0.1, 0.2, 0.3))
	p.SnapshotOrigin()

	p.Acc = vector3.New(1, 0, 0)
	p.RecordStage(1)
	v, a := p.Stage(1)
	if v != p.Vel || a != p.Acc {
		t.Fatalf("Stage(1) = (%+v, %+v), want (%+v, %+v)", v, a, p.Vel, p.Acc)
	}

	p.RecordStage(2)
	p.RecordStage(3)
	p.RecordStage(4)

	p.Combine(0)
	pos, vel := p.Origin()
	if p.Pos != pos || p.Vel != vel {
		t.Fatalf("Combine with h=0 should return to origin, got pos=%+v vel=%+v", p.Pos, p.Vel)
	}
}

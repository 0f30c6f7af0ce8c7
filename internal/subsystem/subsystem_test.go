package subsystem

import (
	"math"
	"testing"

	"solarsim/internal/body"
	"solarsim/internal/oblate"
	"solarsim/internal/system"
	"solarsim/internal/vector3"
)

func jupiterSystem() (*system.System, *body.Particle) {
	jupiterMu := body.G * 1.898e27
	host := body.New("jupiter", 1.898e27, vector3.Zero, vector3.Zero)
	host.Oblate = &body.Oblate{
		PlanetName: "jupiter",
		Params: oblate.Params{
			Mu:               jupiterMu,
			EquatorialRadius: 7.1492e7,
			Zonal:            []float64{0, 0, 0.01469643, 0, -0.00090772},
		},
		Pole:      oblate.Pole{EpochJD: 2451545.0, Alpha0: 4.678, Delta0: 1.126},
		Obliquity: oblate.DefaultObliquity,
	}

	ioDist := 4.217e8
	ioSpeed := math.Sqrt(jupiterMu / ioDist)
	io := body.New("io", 8.93e22, vector3.New(ioDist, 0, 0), vector3.New(0, ioSpeed, 0))

	sys := system.New(nil)
	sys.Insert("jupiter", host)
	sys.Insert("io", io)
	return sys, host
}

func noExternalLookup() map[string]External {
	return map[string]External{}
}

func TestHostFeelsOnlyInternalNewton(t *testing.T) {
	sys, host := jupiterSystem()
	provider := NewProvider("jupiter", noExternalLookup, host.Oblate)
	sys.SetProvider(provider)

	sys.Step(60, 2451545.0)

	if !host.Pos.IsFinite() {
		t.Fatalf("host position not finite: %+v", host.Pos)
	}
	// Jupiter is ~10,000x Io's mass: one 60s step should barely move it.
	if host.Pos.Magnitude() > 1e3 {
		t.Fatalf("host moved implausibly far in one step: %v m", host.Pos.Magnitude())
	}
}

func TestMoonOrbitsViaOblateHostTerm(t *testing.T) {
	sys, host := jupiterSystem()
	provider := NewProvider("jupiter", noExternalLookup, host.Oblate)
	sys.SetProvider(provider)

	io := sys.Get("io")
	startDist := io.Pos.Magnitude()

	const h = 3600.0
	for i := 0; i < 24; i++ {
		sys.Step(h, 2451545.0+float64(i)*h/86400)
	}

	// Over one day Io (period ~1.77 days) should still be in a bound
	// orbit at roughly the same distance, not flung out or collapsed.
	d := io.Pos.Magnitude()
	if d < startDist*0.5 || d > startDist*1.5 {
		t.Fatalf("Io distance drifted from %v to %v after 24h", startDist, d)
	}
}

func TestTidalTermUsesDifference(t *testing.T) {
	sys, host := jupiterSystem()

	sunPos := vector3.New(7.78e11, 0, 0)
	sunMu := body.G * 1.989e30
	lookup := func() map[string]External {
		return map[string]External{"sun": {Mu: sunMu, Pos: sunPos}}
	}
	provider := NewProvider("jupiter", lookup, host.Oblate)
	sys.SetProvider(provider)

	sys.Step(60, 2451545.0)

	io := sys.Get("io")
	hostExt := externalAccel(host.Pos, lookup())
	ioExt := externalAccel(io.Pos, lookup())
	if hostExt.Distance(ioExt) == 0 {
		t.Fatal("expected host and moon to see different external tidal acceleration")
	}
}

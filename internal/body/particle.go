// Package body implements the massive point particle the integrator
// operates on (§3 "Particle"), its Newtonian and post-Newtonian
// acceleration (§4.2), and the oblate-or-Newton acceleration dispatch
// that replaces a separate "Oblate Planet Particle" type with a
// Particle carrying an attached strategy (Design Note 9a).
package body

import (
	"math"

	"solarsim/internal/oblate"
	"solarsim/internal/vector3"
)

// G is the Newtonian constant of gravitation, m^3 kg^-1 s^-2.
const G = 6.6743e-11

// SpeedOfLight is the IAU-recommended value, m/s.
const SpeedOfLight = 299792458.0

// OblateShellRadius is the distance from the planet within which the
// oblate gravity model is used instead of plain Newton (§4.3).
const OblateShellRadius = 5e9

// Oblate attaches the zonal-harmonic gravity model and pole
// orientation to a Particle that represents an oblate planet. A
// Particle with a nil Oblate behaves as a plain point mass.
type Oblate struct {
	PlanetName string
	Params     oblate.Params
	Pole       oblate.Pole
	Obliquity  float64 // ecliptic-to-equatorial frame constant, radians
}

// state is one (position, velocity) sample: the origin of a
// Runge-Kutta step, saved in stateO (§3). The stage buffers k1..k4
// hold (velocity, acceleration) pairs instead; see derivative.
type state struct {
	Pos vector3.Vector3
	Vel vector3.Vector3
}

// Particle is a massive point with position, velocity, acceleration,
// mass and gravitational parameter mu = G*mass. Mass may be zero for
// a test particle that still feels gravity through an independently
// set Mu.
type Particle struct {
	Name string
	Mass float64
	Mu   float64

	Pos vector3.Vector3
	Vel vector3.Vector3
	Acc vector3.Vector3

	// Oblate is non-nil when this particle is an oblate planet whose
	// acceleration on nearby targets should use the zonal harmonic
	// model instead of a bare point mass (§4.3 switching rule).
	Oblate *Oblate

	// k1..k4 are scratch buffers for one Runge-Kutta step (§4.5); they
	// carry no meaning between steps.
	k1, k2, k3, k4 derivative
	stateO         state // (posO, velO) saved at the start of a step
}

// New builds a Particle with mass and derives Mu = G*mass.
func New(name string, mass float64, pos, vel vector3.Vector3) *Particle {
	p := &Particle{Name: name, Pos: pos, Vel: vel}
	p.SetMass(mass)
	return p
}

// SetMass sets the particle's mass and, when mass > 0, recomputes
// Mu = G*mass. A zero or negative mass leaves Mu unchanged (§3
// invariant: mu is independent of mass for massless test particles).
func (p *Particle) SetMass(mass float64) {
	p.Mass = mass
	if mass > 0 {
		p.Mu = G * mass
	}
}

// SetMu sets mu explicitly without touching the recorded mass (§3
// invariant).
func (p *Particle) SetMu(mu float64) {
	p.Mu = mu
}

// NewtonAcceleration returns the vector sum of the Newtonian
// acceleration contributions of every attractor in attractors, except
// p itself, at the given Julian date (needed only to evaluate the
// pole orientation of any oblate attractor; §4.2, §4.4).
func (p *Particle) NewtonAcceleration(attractors []*Particle, julianDate float64) vector3.Vector3 {
	var total vector3.Vector3
	for _, q := range attractors {
		if q == p {
			continue
		}
		total = total.Add(p.AccelerationFrom(q, julianDate))
	}
	return total
}

// AccelerationFrom returns the acceleration p feels from a single
// attractor q: the oblate zonal-harmonic model plus point mass when q
// is an oblate planet and p lies within OblateShellRadius of it,
// otherwise plain Newton (§4.3). julianDate positions the attractor's
// pole via its linear drift (§4.4) and is ignored when q is not an
// oblate planet.
func (p *Particle) AccelerationFrom(q *Particle, julianDate float64) vector3.Vector3 {
	diff := q.Pos.Sub(p.Pos)
	r2 := diff.MagnitudeSquared()
	if r2 == 0 {
		return vector3.Zero
	}
	r := math.Sqrt(r2)

	pointMass := diff.Scale(q.Mu / (r * r * r))

	if q.Oblate == nil || r > OblateShellRadius {
		return pointMass
	}

	// Express the target's position relative to the planet in the
	// planet's equatorial frame, evaluate the perturbation there, and
	// rotate the result back to the ecliptic frame the integrator
	// works in.
	alpha, delta := q.Oblate.Pole.At(julianDate)
	equatorial := oblate.EclipticToEquatorial(diff, alpha, delta, q.Oblate.Obliquity)
	perturbEq := oblate.Perturbation(equatorial, q.Oblate.Params)
	perturbEcl := oblate.EquatorialToEcliptic(perturbEq, alpha, delta, q.Oblate.Obliquity)

	return pointMass.Add(perturbEcl)
}

// PostNewtonianCorrection returns the first-order post-Newtonian
// two-body acceleration correction for p, given the Newtonian
// acceleration already computed for every particle this step (§4.2).
// It must only be called after every particle's Newtonian
// acceleration has been assigned.
func (p *Particle) PostNewtonianCorrection(newtonAcc vector3.Vector3, attractors []*Particle) vector3.Vector3 {
	var total vector3.Vector3
	c2 := SpeedOfLight * SpeedOfLight

	for _, q := range attractors {
		if q == p {
			continue
		}
		diff := p.Pos.Sub(q.Pos) // from the attractor to p
		r2 := diff.MagnitudeSquared()
		if r2 == 0 {
			continue
		}
		r := math.Sqrt(r2)
		rHat := diff.Scale(1 / r)

		relVel := p.Vel.Sub(q.Vel)
		v2 := relVel.Dot(relVel)
		rDotV := rHat.Dot(relVel)

		muOverR := q.Mu / r

		// Standard EIH/Schwarzschild first-order PN term for the
		// acceleration of a test body under one massive attractor.
		term := rHat.Scale(4*muOverR - v2)
		term = term.Add(relVel.Scale(4 * rDotV))
		term = term.Scale(muOverR / (r * c2))

		total = total.Add(term)
	}
	return total
}

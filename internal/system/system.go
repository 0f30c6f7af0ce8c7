// Package system implements the generic N-body particle container
// (§3 "Particle System"): an ordered name-to-Particle map with
// massive/massless sub-views, the fixed-step RK4 integrator (§4.5),
// and post-step drift correction (§4.6). The acceleration law used at
// each step is supplied by a pluggable Provider (Design Note 9b), so
// the same stepper drives both the top-level Newtonian/GR model and a
// planet sub-system's tidal model.
package system

import (
	"errors"

	"solarsim/internal/body"
)

// ErrGRChangeAfterStep is returned by SetGR when the flag is changed
// after the system has already taken at least one step (Open
// Question #3: behavior of switching GR mid-run is unspecified by the
// source; changes are only allowed before the first Step, and nothing
// clears that once a Step has run, so a reset to ephemeris does not
// re-allow them).
var ErrGRChangeAfterStep = errors.New("system: general relativity flag can only be changed before the first step")

// Provider computes and assigns the Acc field of every particle in
// sys, given the particles' current (possibly trial) positions and
// velocities, at the given Julian date. It is called once per
// Runge-Kutta stage (§4.5).
type Provider interface {
	Accelerate(sys *System, julianDate float64)
}

// System is an ordered mapping from body name to Particle (§3).
type System struct {
	order   []string
	byName  map[string]*body.Particle
	massive []string // names with Mass > 0, insertion order

	useGR    bool
	stepTake bool // true once at least one Step has run

	provider Provider
}

// New creates an empty system using provider for acceleration
// evaluation. A nil provider defaults to NewtonGR{}.
func New(provider Provider) *System {
	if provider == nil {
		provider = NewtonGR{}
	}
	return &System{
		byName:   make(map[string]*body.Particle),
		provider: provider,
	}
}

// Insert adds p to the system under name, preserving insertion order.
// Re-inserting an existing name replaces the particle but keeps its
// original position in the iteration order.
func (s *System) Insert(name string, p *body.Particle) {
	if _, exists := s.byName[name]; !exists {
		s.order = append(s.order, name)
		if p.Mass > 0 {
			s.massive = append(s.massive, name)
		}
	}
	s.byName[name] = p
}

// Get returns the particle stored under name, or nil if absent.
func (s *System) Get(name string) *body.Particle {
	return s.byName[name]
}

// Order returns the names of every particle in insertion order. The
// returned slice must not be mutated by the caller.
func (s *System) Order() []string {
	return s.order
}

// MassiveOrder returns the names of every particle with Mass > 0, in
// insertion order. The returned slice must not be mutated by the
// caller.
func (s *System) MassiveOrder() []string {
	return s.massive
}

// Massive returns the particles with Mass > 0, in insertion order.
func (s *System) Massive() []*body.Particle {
	out := make([]*body.Particle, 0, len(s.massive))
	for _, name := range s.massive {
		out = append(out, s.byName[name])
	}
	return out
}

// Len returns the number of particles in the system.
func (s *System) Len() int {
	return len(s.order)
}

// UseGR reports whether post-Newtonian correction is enabled.
func (s *System) UseGR() bool {
	return s.useGR
}

// SetGR enables or disables the post-Newtonian correction (§4.2).
// Per Open Question #3 it may only be changed before the system's
// first Step.
func (s *System) SetGR(enabled bool) error {
	if s.stepTake && enabled != s.useGR {
		return ErrGRChangeAfterStep
	}
	s.useGR = enabled
	return nil
}

// SetProvider replaces the acceleration Provider. Like SetGR, this is
// only meaningful before the first Step in general, but no invariant
// in the spec forbids it, so it is unguarded.
func (s *System) SetProvider(p Provider) {
	s.provider = p
}

// DriftCorrect subtracts the named reference particle's position and
// velocity from every particle in the system, re-centring the
// cluster on it (§4.6).
func (s *System) DriftCorrect(reference string) {
	ref, ok := s.byName[reference]
	if !ok {
		return
	}
	refPos, refVel := ref.Pos, ref.Vel
	for _, name := range s.order {
		p := s.byName[name]
		p.Pos = p.Pos.Sub(refPos)
		p.Vel = p.Vel.Sub(refVel)
	}
}

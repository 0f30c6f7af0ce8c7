// Package solarsystem is the top-level driver (§4.7): it builds the
// Sun/planet/moon Particle System from the ephemeris and parameter
// catalogue, owns the planet sub-systems for the four giants'
// regular moons, and exposes initialise/advance/single-step/save/load.
//
// It generalizes the teacher's top-level wiring in main.go (init →
// serve loop → periodic recomputation) to a synchronous, I/O-free
// driver: construction queries the ephemeris once, and every advance
// operation is a pure function of the current particle state plus
// elapsed time, matching §5's "single-threaded and synchronous" core.
package solarsystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/time/rate"

	"solarsim/internal/body"
	"solarsim/internal/dateconv"
	"solarsim/internal/ephemeris"
	"solarsim/internal/metrics"
	"solarsim/internal/oblate"
	"solarsim/internal/params"
	"solarsim/internal/persist"
	"solarsim/internal/subsystem"
	"solarsim/internal/system"
	"solarsim/internal/vector3"
)

// Step is the fixed integration step of §4.7, seconds.
const Step = 3600.0

// singleStepClamp bounds SingleStep's argument (§4.7).
const singleStepClamp = 3600.0

// orbitSamples is the number of points sampled per orbit polyline
// (§5 of SPEC_FULL.md's supplemented-features section).
const orbitSamples = 64

// ErrDateOutOfRange is returned by Initialise and Construct when the
// requested instant falls outside the ephemeris validity window (§9
// failure kind "out-of-range date").
var ErrDateOutOfRange = errors.New("solarsystem: date outside ephemeris validity window")

// giantSubsystems lists the planets whose regular moons are modeled
// as a Planet Sub-System rather than as ordinary top-level particles
// (§3, §4.8): the Galilean, Saturnian, Uranian and Neptunian systems.
var giantSubsystems = []string{"Jupiter", "Saturn", "Uranus", "Neptune"}

// subsystemHandle bundles a planet sub-system's own Particle System
// with the name of its host planet, so stepAll can Step it and
// re-centre it on the host each Δt.
type subsystemHandle struct {
	host string
	sys  *system.System
}

// SolarSystem is the top-level driver: a Particle System of the Sun,
// planets and dwarf planets, plus one sub-system per giant planet for
// its regular moons.
type SolarSystem struct {
	clock float64 // current Julian date

	top  *system.System
	subs map[string]*subsystemHandle // host planet name -> its sub-system

	ephemeris ephemeris.Provider
	metrics   *metrics.Collector
	limiter   *rate.Limiter

	orbits map[string][]vector3.Vector3 // body name -> sampled polyline, ecliptic frame relative to its center
}

// Construct builds a SolarSystem at the given instant (§4.7): for
// every planet, dwarf planet and moon it queries eph for position and
// velocity, creates a Particle with mass/mu from the catalogue, and
// wires the four giant planets' regular moons into sub-systems. metr
// may be nil (no instrumentation).
func Construct(eph ephemeris.Provider, at time.Time, metr *metrics.Collector) (*SolarSystem, error) {
	jd := dateconv.JulianDate(at)
	if jd < eph.FirstValidDate() || jd > eph.LastValidDate() {
		return nil, fmt.Errorf("%w: %v", ErrDateOutOfRange, at)
	}

	ss := &SolarSystem{
		top:       system.New(nil),
		subs:      make(map[string]*subsystemHandle),
		ephemeris: eph,
		metrics:   metr,
		limiter:   rate.NewLimiter(rate.Inf, 1),
		orbits:    make(map[string][]vector3.Vector3),
	}

	sun, ok := params.Lookup("Sun")
	if !ok {
		return nil, fmt.Errorf("solarsystem: construct: %w: Sun", ephemeris.ErrUnknownBody)
	}
	ss.top.Insert("Sun", body.New("Sun", sun.MassKg, vector3.Zero, vector3.Zero))

	for _, planet := range params.Planets() {
		if err := ss.insertHeliocentric(planet, jd); err != nil {
			return nil, err
		}
		if isGiant(planet) {
			if err := ss.buildSubsystem(planet, jd); err != nil {
				return nil, err
			}
			continue
		}
		for _, moon := range params.MoonsOf(planet) {
			if err := ss.insertMoonDirect(moon, planet, jd); err != nil {
				return nil, err
			}
		}
	}

	ss.clock = jd
	ss.recomputeOrbits()
	return ss, nil
}

func isGiant(name string) bool {
	for _, g := range giantSubsystems {
		if g == name {
			return true
		}
	}
	return false
}

// insertHeliocentric queries the ephemeris for name and inserts it
// into the top-level system, attaching an Oblate strategy when the
// catalogue carries zonal coefficients for it.
func (ss *SolarSystem) insertHeliocentric(name string, jd float64) error {
	b, ok := params.Lookup(name)
	if !ok {
		return fmt.Errorf("solarsystem: construct: %w: %s", ephemeris.ErrUnknownBody, name)
	}
	pos, vel, err := ss.ephemeris.Query(name, jd)
	if err != nil {
		return fmt.Errorf("solarsystem: construct: %w", err)
	}

	p := body.New(name, b.MassKg, pos, vel)
	if b.Zonal != nil {
		p.Oblate = oblateStrategyOf(name, b)
	}
	ss.top.Insert(name, p)
	return nil
}

// insertMoonDirect inserts a non-giant planet's moon (Earth's Moon,
// Mars's Phobos/Deimos) directly into the top-level system rather
// than a sub-system: its parent's Oblate strategy (when present, as
// for Earth) already makes body.Particle.AccelerationFrom route
// through the zonal harmonic model for it, so no separate sub-system
// machinery is needed (§3 supplemented-features note).
func (ss *SolarSystem) insertMoonDirect(name, parent string, jd float64) error {
	b, ok := params.Lookup(name)
	if !ok {
		return fmt.Errorf("solarsystem: construct: %w: %s", ephemeris.ErrUnknownBody, name)
	}
	localPos, localVel, err := ss.ephemeris.Query(name, jd)
	if err != nil {
		return fmt.Errorf("solarsystem: construct: %w", err)
	}
	host := ss.top.Get(parent)
	if host == nil {
		return fmt.Errorf("solarsystem: construct: moon %s references unknown parent %s", name, parent)
	}

	p := body.New(name, b.MassKg, host.Pos.Add(localPos), host.Vel.Add(localVel))
	ss.top.Insert(name, p)
	return nil
}

// buildSubsystem wires up a giant planet's regular-moon Planet
// Sub-System (§3, §4.8): a separate, host-centered Particle System
// stepped by stepAll alongside the top-level system on the same
// clock, coupled to the top-level
// system only through subsystem.Lookup's read of Sun/other-giant
// positions.
func (ss *SolarSystem) buildSubsystem(planet string, jd float64) error {
	b, ok := params.Lookup(planet)
	if !ok {
		return fmt.Errorf("solarsystem: construct: %w: %s", ephemeris.ErrUnknownBody, planet)
	}
	hostOblate := oblateStrategyOf(planet, b)

	host := body.New(planet, b.MassKg, vector3.Zero, vector3.Zero)
	host.Oblate = hostOblate

	sys := system.New(nil)
	sys.Insert(planet, host)

	for _, moon := range params.MoonsOf(planet) {
		mb, ok := params.Lookup(moon)
		if !ok {
			return fmt.Errorf("solarsystem: construct: %w: %s", ephemeris.ErrUnknownBody, moon)
		}
		pos, vel, err := ss.ephemeris.Query(moon, jd)
		if err != nil {
			return fmt.Errorf("solarsystem: construct: %w", err)
		}
		sys.Insert(moon, body.New(moon, mb.MassKg, pos, vel))
	}

	provider := subsystem.NewProvider(planet, ss.externalLookupFor(planet), hostOblate)
	sys.SetProvider(provider)

	ss.subs[planet] = &subsystemHandle{host: planet, sys: sys}
	return nil
}

// externalLookupFor returns a subsystem.Lookup reading the current
// (post-drift-correction) top-level positions of the Sun and the
// three giants other than host (§4.8). The closure reads ss.top at
// call time, so it always reflects the top-level system's latest
// state without the sub-system driving it.
func (ss *SolarSystem) externalLookupFor(host string) subsystem.Lookup {
	return func() map[string]subsystem.External {
		out := make(map[string]subsystem.External, len(giantSubsystems))
		for _, name := range append([]string{"Sun"}, giantSubsystems...) {
			if name == host {
				continue
			}
			p := ss.top.Get(name)
			if p == nil {
				continue
			}
			out[name] = subsystem.External{Mu: p.Mu, Pos: p.Pos}
		}
		return out
	}
}

// oblateStrategyOf builds a *body.Oblate from a catalogue entry's
// zonal/pole fields (§4.3, §4.4), converting the catalogue's degrees
// to the radians internal/oblate works in.
func oblateStrategyOf(name string, b params.Body) *body.Oblate {
	return &body.Oblate{
		PlanetName: name,
		Params: oblate.Params{
			Mu:               b.OblateMu,
			EquatorialRadius: b.EquatorialKm * 1000,
			Zonal:            b.Zonal,
		},
		Pole: oblate.Pole{
			EpochJD:   b.Pole.EpochJD,
			Alpha0:    degToRad(b.Pole.Alpha0Deg),
			Delta0:    degToRad(b.Pole.Delta0Deg),
			AlphaRate: degToRad(b.Pole.AlphaRate),
			DeltaRate: degToRad(b.Pole.DeltaRate),
		},
		Obliquity: oblate.DefaultObliquity,
	}
}

func degToRad(deg float64) float64 { return deg * 3.141592653589793 / 180.0 }

// ClockJulianDate returns the driver's current simulated instant.
func (ss *SolarSystem) ClockJulianDate() float64 { return ss.clock }

// Top returns the top-level Particle System (Sun, planets, dwarf
// planets, and non-giant moons), for read-only inspection by callers
// such as cmd/simulate's status endpoint.
func (ss *SolarSystem) Top() *system.System { return ss.top }

// Subsystem returns the Planet Sub-System rooted at host, or nil if
// host is not one of the four giants.
func (ss *SolarSystem) Subsystem(host string) *system.System {
	h, ok := ss.subs[host]
	if !ok {
		return nil
	}
	return h.sys
}

// SetGR enables or disables general relativity on the top-level
// system (§4.2, §9 Open Question #3).
func (ss *SolarSystem) SetGR(enabled bool) error {
	return ss.top.SetGR(enabled)
}

// Initialise resets the driver to the ephemeris state at date (§4.7):
// fails when date is outside the validity window, leaving the prior
// timestamp and particle state unchanged; otherwise every particle's
// position/velocity is overwritten and orbit polylines recomputed.
func (ss *SolarSystem) Initialise(date time.Time) error {
	jd := dateconv.JulianDate(date)
	if jd < ss.ephemeris.FirstValidDate() || jd > ss.ephemeris.LastValidDate() {
		return fmt.Errorf("%w: %v", ErrDateOutOfRange, date)
	}

	for _, planet := range params.Planets() {
		pos, vel, err := ss.ephemeris.Query(planet, jd)
		if err != nil {
			return fmt.Errorf("solarsystem: initialise: %w", err)
		}
		p := ss.top.Get(planet)
		p.Pos, p.Vel = pos, vel

		if isGiant(planet) {
			h := ss.subs[planet]
			h.sys.Get(planet).Pos, h.sys.Get(planet).Vel = vector3.Zero, vector3.Zero
			for _, moon := range params.MoonsOf(planet) {
				mpos, mvel, err := ss.ephemeris.Query(moon, jd)
				if err != nil {
					return fmt.Errorf("solarsystem: initialise: %w", err)
				}
				mp := h.sys.Get(moon)
				mp.Pos, mp.Vel = mpos, mvel
			}
			continue
		}
		for _, moon := range params.MoonsOf(planet) {
			mpos, mvel, err := ss.ephemeris.Query(moon, jd)
			if err != nil {
				return fmt.Errorf("solarsystem: initialise: %w", err)
			}
			mp := ss.top.Get(moon)
			mp.Pos, mp.Vel = pos.Add(mpos), vel.Add(mvel)
		}
	}

	ss.clock = jd
	ss.recomputeOrbits()
	return nil
}

// SingleStep clamps s to [-3600, 3600] seconds, takes one Runge-Kutta
// step of exactly that magnitude on the top-level system and every
// sub-system, applies drift correction, and advances the clock (§4.7).
func (ss *SolarSystem) SingleStep(s float64) {
	if s > singleStepClamp {
		s = singleStepClamp
	}
	if s < -singleStepClamp {
		s = -singleStepClamp
	}
	start := time.Now()
	ss.stepAll(s)
	ss.clock += s / 86400.0
	if ss.metrics != nil {
		ss.metrics.RecordStep("single", time.Since(start).Seconds())
		ss.metrics.SetSimulatedClock(ss.clock)
	}
}

// AdvanceForward performs n forward steps of Δt=3600s (§4.7),
// cooperatively cancellable between (not within) steps via ctx
// (§5). Each step is paced through a rate.Limiter so a live server
// driving this from a timer cannot starve other goroutines; the
// permissive rate.Inf limiter (the default from Construct) makes this
// equivalent to an unpaced loop.
func (ss *SolarSystem) AdvanceForward(ctx context.Context, n int) error {
	return ss.advance(ctx, n, Step, "forward")
}

// AdvanceBackward performs n backward steps of Δt=-3600s (§4.7), with
// the same cancellation and pacing contract as AdvanceForward.
func (ss *SolarSystem) AdvanceBackward(ctx context.Context, n int) error {
	return ss.advance(ctx, n, -Step, "backward")
}

func (ss *SolarSystem) advance(ctx context.Context, n int, h float64, direction string) error {
	for i := 0; i < n; i++ {
		if err := ss.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("solarsystem: %s: %w", direction, err)
		}
		start := time.Now()
		ss.stepAll(h)
		ss.clock += h / 86400.0
		if ss.metrics != nil {
			ss.metrics.RecordStep(direction, time.Since(start).Seconds())
			ss.metrics.SetSimulatedClock(ss.clock)
		}
	}
	ss.recomputeOrbits()
	return nil
}

// SetRateLimit configures the pacing rate.Limiter used by
// AdvanceForward/AdvanceBackward (§5's cooperative-cancellation
// contract, concretely realized via golang.org/x/time/rate). A zero
// or negative stepsPerSecond disables pacing (rate.Inf).
func (ss *SolarSystem) SetRateLimit(stepsPerSecond float64) {
	if stepsPerSecond <= 0 {
		ss.limiter = rate.NewLimiter(rate.Inf, 1)
		return
	}
	ss.limiter = rate.NewLimiter(rate.Limit(stepsPerSecond), 1)
}

// stepAll integrates the top-level system and every sub-system by h
// seconds, then re-centres each on its reference body (§4.6): the Sun
// for the top-level system, the host planet for each sub-system.
func (ss *SolarSystem) stepAll(h float64) {
	ss.top.Step(h, ss.clock)
	ss.top.DriftCorrect("Sun")

	if ss.metrics != nil {
		sun := ss.top.Get("Sun")
		ss.metrics.SetDriftResidual("solar", sun.Pos.Magnitude())
	}

	for host, handle := range ss.subs {
		handle.sys.Step(h, ss.clock)
		handle.sys.DriftCorrect(host)
		if ss.metrics != nil {
			hostP := handle.sys.Get(host)
			ss.metrics.SetDriftResidual(host, hostP.Pos.Magnitude())
		}
	}
}

// recomputeOrbits resamples a Keplerian-ellipse-like polyline for
// every body relative to its center (Sun for planets/dwarf planets,
// host planet for moons), for the out-of-scope visualization
// collaborator (§4.7, SPEC_FULL.md supplemented features). It derives
// the instantaneous osculating two-body ellipse from each relative
// state vector and samples it at evenly spaced eccentric anomalies
// (sampleOrbit), not the full N-body field, since the polyline is a
// display aid and not part of the physics under test.
func (ss *SolarSystem) recomputeOrbits() {
	ss.orbits = make(map[string][]vector3.Vector3)

	for _, planet := range params.Planets() {
		p := ss.top.Get(planet)
		sun := ss.top.Get("Sun")
		ss.orbits[planet] = sampleOrbit(p.Pos.Sub(sun.Pos), p.Vel.Sub(sun.Vel), sun.Mu)

		if isGiant(planet) {
			host := ss.subs[planet].sys.Get(planet)
			for _, moon := range params.MoonsOf(planet) {
				m := ss.subs[planet].sys.Get(moon)
				ss.orbits[moon] = sampleOrbit(m.Pos.Sub(host.Pos), m.Vel.Sub(host.Vel), p.Mu)
			}
			continue
		}
		for _, moon := range params.MoonsOf(planet) {
			m := ss.top.Get(moon)
			ss.orbits[moon] = sampleOrbit(m.Pos.Sub(p.Pos), m.Vel.Sub(p.Vel), p.Mu)
		}
	}
}

// Orbit returns the last-sampled orbit polyline for name, relative to
// its center body, or nil if name is unknown.
func (ss *SolarSystem) Orbit(name string) []vector3.Vector3 {
	return ss.orbits[name]
}

// SaveState writes the driver's full state to w (§4.7, §6): timestamp,
// every particle (top-level and every sub-system), and the
// planet/moon/center-body structure needed to reconstruct sub-system
// wiring on load.
func (ss *SolarSystem) SaveState(w io.Writer) error {
	state := persist.State{
		JulianDate: ss.clock,
		UseGR:      ss.top.UseGR(),
		Sun:        "Sun",
		Planets:    params.Planets(),
		CenterOf:   make(map[string]string),
	}

	for _, name := range ss.top.Order() {
		state.Particles = append(state.Particles, particleState(ss.top.Get(name)))
	}
	for planet, h := range ss.subs {
		for _, name := range h.sys.Order() {
			if name == planet {
				continue
			}
			state.Particles = append(state.Particles, particleState(h.sys.Get(name)))
			state.Moons = append(state.Moons, name)
			state.CenterOf[name] = planet
		}
	}
	for _, planet := range params.Planets() {
		if isGiant(planet) {
			continue
		}
		for _, moon := range params.MoonsOf(planet) {
			state.Moons = append(state.Moons, moon)
			state.CenterOf[moon] = planet
		}
	}

	return persist.Save(w, state)
}

func particleState(p *body.Particle) persist.ParticleState {
	return persist.ParticleState{
		Name: p.Name,
		Mass: p.Mass,
		Mu:   p.Mu,
		Pos:  [3]float64{p.Pos.X, p.Pos.Y, p.Pos.Z},
		Vel:  [3]float64{p.Vel.X, p.Vel.Y, p.Vel.Z},
	}
}

// LoadState replaces ss's particle state with what r contains (§4.7,
// §9): malformed input leaves ss unchanged. LoadState assumes ss was
// Construct-ed against the same body catalogue the saved state came
// from; it restores positions/velocities but does not rebuild
// sub-system topology from scratch.
func (ss *SolarSystem) LoadState(r io.Reader) error {
	state, err := persist.Load(r)
	if err != nil {
		return fmt.Errorf("solarsystem: load: %w", err)
	}

	byName := make(map[string]persist.ParticleState, len(state.Particles))
	for _, ps := range state.Particles {
		byName[ps.Name] = ps
	}

	// Resolve every particle's saved state before mutating anything, so
	// a missing name fails atomically and leaves ss untouched (§7(c)).
	type pending struct {
		p  *body.Particle
		ps persist.ParticleState
	}
	var applies []pending

	for _, name := range ss.top.Order() {
		ps, ok := byName[name]
		if !ok {
			return fmt.Errorf("%w: top-level particle %s missing from saved state", persist.ErrMalformedState, name)
		}
		applies = append(applies, pending{ss.top.Get(name), ps})
	}
	for _, h := range ss.subs {
		for _, name := range h.sys.Order() {
			if name == h.host {
				continue // host stays at the sub-system origin; SaveState does not save it
			}
			ps, ok := byName[name]
			if !ok {
				return fmt.Errorf("%w: sub-system particle %s missing from saved state", persist.ErrMalformedState, name)
			}
			applies = append(applies, pending{h.sys.Get(name), ps})
		}
	}
	if err := ss.top.SetGR(state.UseGR); err != nil {
		return fmt.Errorf("solarsystem: load: %w", err)
	}

	for _, a := range applies {
		applyParticleState(a.p, a.ps)
	}
	ss.clock = state.JulianDate
	ss.recomputeOrbits()
	return nil
}

func applyParticleState(p *body.Particle, ps persist.ParticleState) {
	p.Pos = vector3.New(ps.Pos[0], ps.Pos[1], ps.Pos[2])
	p.Vel = vector3.New(ps.Vel[0], ps.Vel[1], ps.Vel[2])
}

// Package subsystem implements the Planet Sub-System acceleration
// model (§3, §4.5, §4.8): a Particle System rooted at a host planet,
// where the host feels standard Newton from its moons, each moon
// feels the host through the analytic oblate model (never the
// Newtonian point force, to avoid double counting), standard Newton
// from the other moons, and the tidal difference of each external
// perturber (Sun and the three other giants) relative to the host.
//
// The sub-system holds only a non-owning, read-only view of the
// enclosing Solar System (Design Note 9): it observes external
// positions but never drives them.
package subsystem

import (
	"solarsim/internal/body"
	"solarsim/internal/system"
	"solarsim/internal/vector3"
)

// External is one external perturber as seen from the sub-system:
// just enough to evaluate a point-mass acceleration contribution.
type External struct {
	Mu  float64
	Pos vector3.Vector3
}

// Lookup returns the current position and mu of the Sun and the
// three giant planets other than the sub-system's host, read from the
// enclosing Solar System (§4.8). It must not mutate anything it
// reads.
type Lookup func() map[string]External

// Provider implements system.Provider for a planet sub-system.
type Provider struct {
	Host     string       // name of the host planet particle
	External Lookup       // external-perturber snapshot accessor
	hostBody *body.Oblate // set by NewProvider
}

// NewProvider builds a sub-system Provider for the given host and
// external-perturber lookup. hostOblate supplies the zonal-harmonic
// model used for the host-to-moon acceleration; it may be nil, in
// which case moons feel the host as a plain point mass.
func NewProvider(host string, external Lookup, hostOblate *body.Oblate) *Provider {
	return &Provider{Host: host, External: external, hostBody: hostOblate}
}

// externalAccel returns the point-mass acceleration a target at pos
// feels from every body in ext, summed (§4.2 form, reused for the
// tidal difference of §4.5/§4.8).
func externalAccel(pos vector3.Vector3, ext map[string]External) vector3.Vector3 {
	var total vector3.Vector3
	target := &body.Particle{Pos: pos}
	for _, e := range ext {
		attractor := &body.Particle{Mu: e.Mu, Pos: e.Pos}
		total = total.Add(target.AccelerationFrom(attractor, 0))
	}
	return total
}

// Accelerate implements system.Provider.
func (p *Provider) Accelerate(sys *system.System, julianDate float64) {
	host := sys.Get(p.Host)
	if host == nil {
		return
	}
	host.Oblate = p.hostBody

	massive := sys.MassiveOrder()

	// The host feels standard Newton from the moons; it receives no
	// external-perturber contribution inside the sub-system (Open
	// Question #1 in DESIGN.md — its true motion is resynchronized by
	// the top-level advance and drift correction).
	var hostAcc vector3.Vector3
	for _, name := range massive {
		if name == p.Host {
			continue
		}
		hostAcc = hostAcc.Add(host.AccelerationFrom(sys.Get(name), julianDate))
	}
	host.Acc = hostAcc

	ext := p.External()
	hostExtAcc := externalAccel(host.Pos, ext)

	for _, name := range sys.Order() {
		if name == p.Host {
			continue
		}
		moon := sys.Get(name)

		// (a) analytic oblate acceleration from the host, not the
		// Newtonian point force (host.Oblate, when set, makes
		// AccelerationFrom route through the zonal harmonic model).
		fromHost := moon.AccelerationFrom(host, julianDate)

		// (b) standard Newton from the other moons.
		var fromMoons vector3.Vector3
		for _, other := range massive {
			if other == p.Host || other == name {
				continue
			}
			fromMoons = fromMoons.Add(moon.AccelerationFrom(sys.Get(other), julianDate))
		}

		// (c) tidal difference from each external attractor.
		moonExtAcc := externalAccel(moon.Pos, ext)
		tidal := moonExtAcc.Sub(hostExtAcc)

		moon.Acc = fromHost.Add(fromMoons).Add(tidal)
	}
}

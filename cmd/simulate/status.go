package main

import (
	"time"

	"solarsim/internal/solarsystem"
	"solarsim/internal/vector3"
)

// particleStatus is one body's entry in the /api/status snapshot, the
// domain equivalent of the teacher's StatusEntry (main.go): it names
// the body and reports the data the out-of-scope visualizer needs.
type particleStatus struct {
	Name  string       `json:"name"`
	Pos   [3]float64   `json:"pos"`
	Vel   [3]float64   `json:"vel"`
	Orbit [][3]float64 `json:"orbit,omitempty"`
}

// statusResponse is the /api/status payload, the domain equivalent of
// the teacher's ApiResponse.
type statusResponse struct {
	Timestamp  time.Time        `json:"timestamp"`
	JulianDate float64          `json:"julian_date"`
	Particles  []particleStatus `json:"particles"`
}

func snapshot(ss *solarsystem.SolarSystem) statusResponse {
	resp := statusResponse{
		Timestamp:  time.Now(),
		JulianDate: ss.ClockJulianDate(),
	}

	appendSystem := func(names []string, get func(string) *particleStatus) {
		for _, name := range names {
			if ps := get(name); ps != nil {
				resp.Particles = append(resp.Particles, *ps)
			}
		}
	}

	appendSystem(ss.Top().Order(), func(name string) *particleStatus {
		p := ss.Top().Get(name)
		if p == nil {
			return nil
		}
		return &particleStatus{
			Name:  name,
			Pos:   [3]float64{p.Pos.X, p.Pos.Y, p.Pos.Z},
			Vel:   [3]float64{p.Vel.X, p.Vel.Y, p.Vel.Z},
			Orbit: polyline(ss.Orbit(name)),
		}
	})

	for _, host := range []string{"Jupiter", "Saturn", "Uranus", "Neptune"} {
		sub := ss.Subsystem(host)
		if sub == nil {
			continue
		}
		appendSystem(sub.Order(), func(name string) *particleStatus {
			if name == host {
				return nil // host already reported from the top-level system
			}
			p := sub.Get(name)
			if p == nil {
				return nil
			}
			return &particleStatus{
				Name:  name,
				Pos:   [3]float64{p.Pos.X, p.Pos.Y, p.Pos.Z},
				Vel:   [3]float64{p.Vel.X, p.Vel.Y, p.Vel.Z},
				Orbit: polyline(ss.Orbit(name)),
			}
		})
	}

	return resp
}

func polyline(points []vector3.Vector3) [][3]float64 {
	out := make([][3]float64, len(points))
	for i, p := range points {
		out[i] = [3]float64{p.X, p.Y, p.Z}
	}
	return out
}

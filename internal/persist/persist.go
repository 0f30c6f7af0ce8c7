// Package persist implements the Solar System driver's save/load
// format (§4.7, §6, §9): a versioned, self-describing JSON document,
// in the spirit of the teacher's ApiResponse/json.MarshalIndent
// pattern (main.go) for the one other wire shape it serializes.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Version is the current save-format version. Bumped whenever the
// State shape changes incompatibly.
const Version = 1

// ErrMalformedState is returned by Load when source's shape does not
// match what Save produces (§9 failure kind "state-file malformed").
var ErrMalformedState = errors.New("persist: malformed state")

// ParticleState is one saved particle: name, mass/mu, and the
// position/velocity state the integrator mutates. Acceleration and
// the RK4 scratch buffers are not persisted; they are scratch data
// recomputed by the next step.
type ParticleState struct {
	Name string     `json:"name"`
	Mass float64    `json:"mass"`
	Mu   float64    `json:"mu"`
	Pos  [3]float64 `json:"pos"`
	Vel  [3]float64 `json:"vel"`
}

// State is the full round-trippable snapshot §6 requires: simulation
// timestamp, every particle, and the planet/moon/center-body
// structure needed to reconstruct sub-system wiring on load.
type State struct {
	Version    int             `json:"version"`
	JulianDate float64         `json:"julian_date"`
	UseGR      bool            `json:"use_gr"`
	Particles  []ParticleState `json:"particles"`

	// Sun is named explicitly because it is always the top-level
	// reference body (§4.6); Planets/Moons/CenterOf round-trip the
	// catalogue-derived structure so load can rebuild sub-systems
	// without re-consulting internal/params.
	Sun      string            `json:"sun"`
	Planets  []string          `json:"planets"`
	Moons    []string          `json:"moons"`
	CenterOf map[string]string `json:"center_of"` // moon/planet name -> its center body
}

// Save writes state to w as indented, versioned JSON.
func Save(w io.Writer, state State) error {
	state.Version = Version
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(state); err != nil {
		return fmt.Errorf("persist: save: %w", err)
	}
	return nil
}

// Load reads a State from r, rejecting anything whose shape does not
// match what Save produces (unknown fields) or whose version this
// package does not recognize.
func Load(r io.Reader) (State, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var state State
	if err := dec.Decode(&state); err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrMalformedState, err)
	}
	if state.Version != Version {
		return State{}, fmt.Errorf("%w: version %d, want %d", ErrMalformedState, state.Version, Version)
	}
	if dec.More() {
		return State{}, fmt.Errorf("%w: trailing data after document", ErrMalformedState)
	}
	return state, nil
}

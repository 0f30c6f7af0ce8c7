package main

import (
	"testing"
	"time"

	"solarsim/internal/ephemeris"
	"solarsim/internal/solarsystem"
)

func TestSnapshotIncludesTopLevelAndSubsystemBodies(t *testing.T) {
	ss, err := solarsystem.Construct(ephemeris.NewKeplerian(), time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), nil)
	if err != nil {
		t.Fatalf("Construct: %v", err)
	}

	resp := snapshot(ss)
	names := make(map[string]bool, len(resp.Particles))
	for _, p := range resp.Particles {
		names[p.Name] = true
	}

	for _, want := range []string{"Sun", "Earth", "Jupiter", "Io"} {
		if !names[want] {
			t.Errorf("snapshot missing %s, got %v", want, names)
		}
	}
	if names["Jupiter"] && len(resp.Particles) == 0 {
		t.Fatal("snapshot unexpectedly empty")
	}
}

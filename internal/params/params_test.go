package params

import "testing"

func TestLookupKnownBodies(t *testing.T) {
	for _, name := range []string{"Sun", "Earth", "Jupiter", "Moon", "Io"} {
		if _, ok := Lookup(name); !ok {
			t.Errorf("Lookup(%q) missing from catalogue", name)
		}
	}
	if _, ok := Lookup("Nibiru"); ok {
		t.Error("Lookup(\"Nibiru\") unexpectedly found")
	}
}

func TestMuDerivedFromMass(t *testing.T) {
	earth, _ := Lookup("Earth")
	want := G * earth.MassKg
	if got := earth.Mu(); got != want {
		t.Fatalf("Earth.Mu() = %v, want %v", got, want)
	}
}

func TestGiantsCarryOblateModel(t *testing.T) {
	for _, name := range []string{"Jupiter", "Saturn", "Uranus", "Neptune", "Earth"} {
		b, ok := Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) missing", name)
		}
		if len(b.Zonal) < 3 {
			t.Errorf("%s: zonal vector length %d, want >= 3", name, len(b.Zonal))
		}
		if b.OblateMu <= 0 {
			t.Errorf("%s: OblateMu = %v, want > 0", name, b.OblateMu)
		}
	}
}

func TestNonOblateBodiesCarryNoZonalVector(t *testing.T) {
	for _, name := range []string{"Mercury", "Venus", "Mars", "Pluto", "Moon"} {
		b, ok := Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) missing", name)
		}
		if b.Zonal != nil {
			t.Errorf("%s: expected no zonal vector, got %v", name, b.Zonal)
		}
	}
}

func TestPlanetsOrderAndMoonNesting(t *testing.T) {
	ps := Planets()
	if len(ps) == 0 || ps[0] != "Mercury" {
		t.Fatalf("Planets()[0] = %v, want Mercury first", ps)
	}

	moons := MoonsOf("Jupiter")
	want := []string{"Io", "Europa", "Ganymede", "Callisto"}
	if len(moons) != len(want) {
		t.Fatalf("MoonsOf(Jupiter) = %v, want %v", moons, want)
	}
	for i, m := range want {
		if moons[i] != m {
			t.Errorf("MoonsOf(Jupiter)[%d] = %v, want %v", i, moons[i], m)
		}
	}

	if got := MoonsOf("Venus"); len(got) != 0 {
		t.Errorf("MoonsOf(Venus) = %v, want empty", got)
	}
}

func TestMoonParentNameMatchesNesting(t *testing.T) {
	for _, planet := range Planets() {
		for _, moon := range MoonsOf(planet) {
			b, ok := Lookup(moon)
			if !ok {
				t.Fatalf("moon %q missing from catalogue", moon)
			}
			if b.ParentName != planet {
				t.Errorf("%s.ParentName = %v, want %v", moon, b.ParentName, planet)
			}
		}
	}
}

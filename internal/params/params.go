// Package params holds the immutable physical-body catalogue the rest
// of the simulator is built from (§6): mass, μ, diameter, flattening,
// equatorial radius, oblate μ, zonal coefficients, pole orientation,
// and the planet/moon nesting. The table shape generalizes the
// teacher's solarSystem/Moons nesting in config.go and the orbital
// element rows of objects_data.go, replacing the network fields
// (bandwidth, rate limit) with the physical fields §6 names.
//
// The catalogue is built once at package init and never mutated
// afterward; callers that need a body's parameters look it up by name.
package params

import "math"

// Pole describes a body's rotation-axis orientation at epoch T0 and
// its linear drift, in degrees and degrees per Julian century (§4.4).
type Pole struct {
	EpochJD   float64 // T0, Julian date
	Alpha0Deg float64 // right ascension at T0, degrees
	Delta0Deg float64 // declination at T0, degrees
	AlphaRate float64 // degrees per Julian century
	DeltaRate float64 // degrees per Julian century
}

// Body is one entry of the catalogue: everything the physics layer
// needs to build a Particle (and, for oblate bodies, an Oblate
// strategy) for a named solar-system object.
type Body struct {
	Name       string
	ParentName string // "" for the Sun, "Sun" for planets, planet name for moons

	MassKg         float64
	DiameterKm     float64
	Flattening     float64 // (equatorial - polar radius) / equatorial radius
	EquatorialKm   float64 // equatorial radius, km

	// Oblate gravity model parameters (§4.3, §4.4). Zonal[0] and
	// Zonal[1] are unused placeholders (§3 invariant: the vector is
	// indexed by harmonic degree starting at J0); Zonal is nil for
	// bodies with no oblate model (everything except the four giants
	// and Earth).
	OblateMu float64
	Zonal    []float64
	Pole     Pole
}

// Mu returns G*MassKg, the point-mass gravitational parameter.
func (b Body) Mu() float64 { return G * b.MassKg }

// G is Newton's gravitational constant, duplicated here (rather than
// imported from internal/body) to keep the catalogue free of a
// dependency on the physics packages it feeds.
const G = 6.6743e-11

// EarthAxialTiltDeg is Earth's obliquity in degrees, the one tilt
// value §6 calls out by name. It is the same angle as
// internal/oblate.DefaultObliquity, which the frame transforms use.
const EarthAxialTiltDeg = 23.43929

var bodies = map[string]Body{}

// planets preserves catalogue insertion/display order independent of
// Go's randomized map iteration, mirroring the teacher's top-to-bottom
// objects_data.go listing.
var planets []string

// moonsOf maps a planet name to its moon names, in catalogue order.
var moonsOf = map[string][]string{}

func register(b Body) {
	bodies[b.Name] = b
	if b.ParentName == "Sun" {
		planets = append(planets, b.Name)
	} else if b.ParentName != "" {
		moonsOf[b.ParentName] = append(moonsOf[b.ParentName], b.Name)
	}
}

// Lookup returns the catalogue entry for name and whether it exists.
func Lookup(name string) (Body, bool) {
	b, ok := bodies[name]
	return b, ok
}

// Planets returns the planet names in catalogue order.
func Planets() []string {
	out := make([]string, len(planets))
	copy(out, planets)
	return out
}

// MoonsOf returns the moon names of planet, in catalogue order, or an
// empty slice if planet has none.
func MoonsOf(planet string) []string {
	m := moonsOf[planet]
	out := make([]string, len(m))
	copy(out, m)
	return out
}

func init() {
	register(Body{Name: "Sun", MassKg: 1.989e30, DiameterKm: 1392700, EquatorialKm: 696340})

	register(Body{Name: "Mercury", ParentName: "Sun", MassKg: 3.301e23, DiameterKm: 4879.4, EquatorialKm: 2439.7})
	register(Body{Name: "Venus", ParentName: "Sun", MassKg: 4.867e24, DiameterKm: 12104, EquatorialKm: 6051.8})

	register(Body{
		Name: "Earth", ParentName: "Sun",
		MassKg: 5.972e24, DiameterKm: 12742, Flattening: 0.0033528, EquatorialKm: 6378.137,
		// The Moon orbits well inside the 5e9 m oblate shell radius,
		// so it feels Earth's zonal field through the ordinary
		// distance-gated dispatch.
		OblateMu: G * 5.972e24,
		Zonal:    []float64{0, 0, 1.08263e-3, -2.54e-6, -1.61e-6},
		Pole:     Pole{EpochJD: 2451545.0, Alpha0Deg: 0.00, Delta0Deg: 90.00, AlphaRate: -0.641, DeltaRate: -0.557},
	})
	register(Body{Name: "Mars", ParentName: "Sun", MassKg: 6.417e23, DiameterKm: 6779, EquatorialKm: 3396.2})

	register(Body{
		Name: "Jupiter", ParentName: "Sun",
		MassKg: 1.898e27, DiameterKm: 139820, Flattening: 0.06487, EquatorialKm: 71492.0,
		OblateMu: G * 1.898e27,
		Zonal:    []float64{0, 0, 0.014736, 0, -0.000587, 0, 0.000031},
		Pole:     Pole{EpochJD: 2451545.0, Alpha0Deg: 268.057, Delta0Deg: 64.495, AlphaRate: -0.006, DeltaRate: 0.002},
	})
	register(Body{
		Name: "Saturn", ParentName: "Sun",
		MassKg: 5.683e26, DiameterKm: 116460, Flattening: 0.09796, EquatorialKm: 60268.0,
		OblateMu: G * 5.683e26,
		Zonal:    []float64{0, 0, 0.016298, 0, -0.000915, 0, 0.000103},
		Pole:     Pole{EpochJD: 2451545.0, Alpha0Deg: 40.589, Delta0Deg: 83.537, AlphaRate: -0.036, DeltaRate: -0.004},
	})
	register(Body{
		Name: "Uranus", ParentName: "Sun",
		MassKg: 8.681e25, DiameterKm: 50724, Flattening: 0.02293, EquatorialKm: 25559.0,
		OblateMu: G * 8.681e25,
		Zonal:    []float64{0, 0, 0.003343, 0, -0.000029},
		Pole:     Pole{EpochJD: 2451545.0, Alpha0Deg: 257.311, Delta0Deg: -15.175, AlphaRate: 0, DeltaRate: 0},
	})
	register(Body{
		Name: "Neptune", ParentName: "Sun",
		MassKg: 1.024e26, DiameterKm: 49244, Flattening: 0.01708, EquatorialKm: 24764.0,
		OblateMu: G * 1.024e26,
		Zonal:    []float64{0, 0, 0.003411, 0, -0.000035},
		Pole:     Pole{EpochJD: 2451545.0, Alpha0Deg: 299.36, Delta0Deg: 43.46, AlphaRate: 0, DeltaRate: 0},
	})

	register(Body{Name: "Pluto", ParentName: "Sun", MassKg: 1.303e22, DiameterKm: 2376.6, EquatorialKm: 1188.3})

	register(Body{Name: "Moon", ParentName: "Earth", MassKg: 7.342e22, DiameterKm: 3474.8, EquatorialKm: 1737.4})

	register(Body{Name: "Phobos", ParentName: "Mars", MassKg: 1.08e16, DiameterKm: 22.2, EquatorialKm: 11.1})
	register(Body{Name: "Deimos", ParentName: "Mars", MassKg: 1.8e15, DiameterKm: 12.4, EquatorialKm: 6.2})

	register(Body{Name: "Io", ParentName: "Jupiter", MassKg: 8.932e22, DiameterKm: 3643.2, EquatorialKm: 1821.6})
	register(Body{Name: "Europa", ParentName: "Jupiter", MassKg: 4.8e22, DiameterKm: 3121.6, EquatorialKm: 1560.8})
	register(Body{Name: "Ganymede", ParentName: "Jupiter", MassKg: 1.4819e23, DiameterKm: 5268.2, EquatorialKm: 2634.1})
	register(Body{Name: "Callisto", ParentName: "Jupiter", MassKg: 1.0759e23, DiameterKm: 4820.6, EquatorialKm: 2410.3})

	register(Body{Name: "Mimas", ParentName: "Saturn", MassKg: 3.75e19, DiameterKm: 396.4, EquatorialKm: 198.2})
	register(Body{Name: "Enceladus", ParentName: "Saturn", MassKg: 1.08e20, DiameterKm: 504.2, EquatorialKm: 252.1})
	register(Body{Name: "Tethys", ParentName: "Saturn", MassKg: 6.17e20, DiameterKm: 1062.2, EquatorialKm: 531.1})
	register(Body{Name: "Dione", ParentName: "Saturn", MassKg: 1.095e21, DiameterKm: 1122.8, EquatorialKm: 561.4})
	register(Body{Name: "Rhea", ParentName: "Saturn", MassKg: 2.307e21, DiameterKm: 1527.6, EquatorialKm: 763.8})
	register(Body{Name: "Titan", ParentName: "Saturn", MassKg: 1.3452e23, DiameterKm: 5149.5, EquatorialKm: 2574.7})
	register(Body{Name: "Iapetus", ParentName: "Saturn", MassKg: 1.805e21, DiameterKm: 1468.6, EquatorialKm: 734.3})

	register(Body{Name: "Miranda", ParentName: "Uranus", MassKg: 6.59e19, DiameterKm: 471.6, EquatorialKm: 235.8})
	register(Body{Name: "Ariel", ParentName: "Uranus", MassKg: 1.353e21, DiameterKm: 1157.8, EquatorialKm: 578.9})
	register(Body{Name: "Umbriel", ParentName: "Uranus", MassKg: 1.172e21, DiameterKm: 1169.4, EquatorialKm: 584.7})
	register(Body{Name: "Titania", ParentName: "Uranus", MassKg: 3.4e21, DiameterKm: 1576.8, EquatorialKm: 788.4})
	register(Body{Name: "Oberon", ParentName: "Uranus", MassKg: 3.076e21, DiameterKm: 1522.8, EquatorialKm: 761.4})

	register(Body{Name: "Triton", ParentName: "Neptune", MassKg: 2.14e22, DiameterKm: 2706.8, EquatorialKm: 1353.4})

	// Sanity-check every registered oblate body's zonal vector against
	// the §3 invariant (length >= 3) rather than trusting the literals
	// above; a catalogue bug here would silently degrade to a no-op
	// perturbation (internal/oblate.Perturbation returns zero for
	// nmax < 2).
	for name, b := range bodies {
		if b.Zonal != nil && len(b.Zonal) < 3 {
			panic("params: " + name + " zonal vector shorter than invariant minimum of 3")
		}
		if b.OblateMu != 0 && math.IsNaN(b.OblateMu) {
			panic("params: " + name + " has NaN oblate mu")
		}
	}
}

package solarsystem

import (
	"math"

	"solarsim/internal/vector3"
)

// sampleOrbit returns orbitSamples points of the osculating Keplerian
// ellipse implied by the instantaneous relative state (rel, vel)
// around a center of gravitational parameter mu, for the orbit
// polyline of §4.7. It degrades gracefully (returns the current
// position repeated) for the near-degenerate cases a near-circular or
// near-equatorial orbit can hit, since this is a display aid and must
// never panic.
func sampleOrbit(rel, vel vector3.Vector3, mu float64) []vector3.Vector3 {
	r := rel.Magnitude()
	if r == 0 || mu <= 0 {
		return repeat(rel, orbitSamples)
	}

	v2 := vel.Dot(vel)
	energy := v2/2 - mu/r
	if energy >= 0 {
		// Unbound (hyperbolic/parabolic) osculating orbit: no closed
		// ellipse to sample. Fall back to the current relative
		// position so the polyline degenerates to a point rather than
		// diverging.
		return repeat(rel, orbitSamples)
	}
	a := -mu / (2 * energy)

	h := rel.Cross(vel)
	hMag := h.Magnitude()
	if hMag == 0 {
		return repeat(rel, orbitSamples)
	}

	eVec := vel.Cross(h).Scale(1 / mu).Sub(rel.Scale(1 / r))
	e := eVec.Magnitude()
	if e >= 1 {
		return repeat(rel, orbitSamples)
	}

	i := math.Acos(clamp(h.Z/hMag, -1, 1))

	node := vector3.New(-h.Y, h.X, 0) // z x h
	nodeMag := node.Magnitude()

	var raan, argp float64
	if nodeMag > 1e-12 {
		raan = math.Atan2(node.Y, node.X)
		if e > 1e-9 {
			cosArgp := clamp(node.Dot(eVec)/(nodeMag*e), -1, 1)
			argp = math.Acos(cosArgp)
			if eVec.Z < 0 {
				argp = 2*math.Pi - argp
			}
		}
	} else if e > 1e-9 {
		// Equatorial orbit: argument of periapsis measured from x-axis.
		argp = math.Atan2(eVec.Y, eVec.X)
	}

	points := make([]vector3.Vector3, orbitSamples)
	for k := 0; k < orbitSamples; k++ {
		eccAnom := 2 * math.Pi * float64(k) / float64(orbitSamples)
		xOrbit := a * (math.Cos(eccAnom) - e)
		yOrbit := a * math.Sqrt(1-e*e) * math.Sin(eccAnom)
		points[k] = rotatePerifocal(xOrbit, yOrbit, argp, i, raan)
	}
	return points
}

func rotatePerifocal(x, y, argp, i, raan float64) vector3.Vector3 {
	xw := x*math.Cos(argp) - y*math.Sin(argp)
	yw := x*math.Sin(argp) + y*math.Cos(argp)

	xi := xw
	yi := yw * math.Cos(i)
	zi := yw * math.Sin(i)

	return vector3.New(
		xi*math.Cos(raan)-yi*math.Sin(raan),
		xi*math.Sin(raan)+yi*math.Cos(raan),
		zi,
	)
}

func repeat(v vector3.Vector3, n int) []vector3.Vector3 {
	out := make([]vector3.Vector3, n)
	for k := range out {
		out[k] = v
	}
	return out
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

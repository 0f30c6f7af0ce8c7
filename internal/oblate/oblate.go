// Package oblate implements the zonal-harmonic gravity perturbation
// of an oblate body (§4.3), the time-varying pole orientation of that
// body (§4.4), and the ecliptic/body-equatorial frame transforms
// (§4.1) the perturbation needs.
//
// The rotation rule follows Emelyanov & Samorodov (2015), eq. 1.
package oblate

import (
	"math"

	"solarsim/internal/vector3"
)

type Vec3 = vector3.Vector3

// DefaultObliquity is the Earth's axial tilt at J2000, in radians.
const DefaultObliquity = 23.43929 * math.Pi / 180.0

// cosLatEpsilon is the threshold below which cosLat is treated as
// zero to avoid a division-by-zero longitude computation at the
// poles (§4.3 edge case).
const cosLatEpsilon = 1e-12

// Legendre returns P[0..nmax] and Pd[0..nmax], the Legendre
// polynomials and their derivatives at xi, using the standard
// recurrences:
//
//	P0 = 1, P1 = xi, n*Pn = (2n-1)*xi*Pn-1 - (n-1)*Pn-2
//	P0' = 0, P1' = 1, (xi^2-1)*Pn' = n*(xi*Pn - Pn-1)
func Legendre(nmax int, xi float64) (p, pd []float64) {
	p = make([]float64, nmax+1)
	pd = make([]float64, nmax+1)
	if nmax < 1 {
		if nmax == 0 {
			p[0] = 1
		}
		return p, pd
	}

	p[0], p[1] = 1, xi
	pd[0], pd[1] = 0, 1

	for n := 2; n <= nmax; n++ {
		fn := float64(n)
		p[n] = ((2*fn-1)*xi*p[n-1] - (fn-1)*p[n-2]) / fn
	}

	denom := xi*xi - 1
	for n := 2; n <= nmax; n++ {
		fn := float64(n)
		if math.Abs(denom) < cosLatEpsilon {
			// At xi = ±1 the closed form divides by zero; the
			// derivative there is finite, so use its endpoint value
			// P_n'(±1) = (±1)^(n-1) * n(n+1)/2 instead of propagating
			// a NaN. Perturbation scales this term by cosLat ≈ 0.
			pd[n] = fn * (fn + 1) / 2 * math.Pow(xi, fn-1)
			continue
		}
		pd[n] = fn * (xi*p[n] - p[n-1]) / denom
	}
	return p, pd
}

// Params holds the zonal-harmonic model of one oblate body: its
// gravitational parameter, equatorial radius and coefficients J2..Jn
// (index 0 and 1 of Zonal are unused placeholders per the data model).
type Params struct {
	Mu               float64   // m^3/s^2
	EquatorialRadius float64   // m
	Zonal            []float64 // Zonal[0], Zonal[1] unused; physical from Zonal[2]
}

// Perturbation computes the oblate gravity perturbation at position r
// (expressed in the body's equatorial frame), excluding the central
// point-mass term: the caller is responsible for adding
// Mu*unit(r)/|r|^2 separately (§4.3 step 7).
func Perturbation(r Vec3, p Params) Vec3 {
	radius := math.Sqrt(r.X*r.X + r.Y*r.Y + r.Z*r.Z)
	if radius == 0 {
		return Vec3{}
	}

	nmax := len(p.Zonal) - 1
	if nmax < 2 {
		return Vec3{}
	}

	xi := r.Z / radius // cosine of colatitude
	legendreP, legendrePd := Legendre(nmax, xi)

	sinLat := xi
	cosLat := math.Sqrt(math.Max(0, 1-xi*xi))

	var cosLon, sinLon float64
	if cosLat < cosLatEpsilon {
		cosLon, sinLon = 1, 0
	} else {
		cosLon = r.X / (cosLat * radius)
		sinLon = r.Y / (cosLat * radius)
	}

	var radial, latitudinal float64
	ratio := p.EquatorialRadius / radius
	ratioN := ratio * ratio // (a/r)^2, building up per n below
	for n := 2; n <= nmax; n++ {
		j := p.Zonal[n]
		if n > 2 {
			ratioN *= ratio
		}
		radial += ratioN * j * float64(n+1) * legendreP[n]
		latitudinal += -ratioN * cosLat * j * legendrePd[n]
	}
	radial /= radius * radius
	latitudinal /= radius * radius

	// Rotate from local (radial, east, north) to Cartesian equatorial.
	x := radial*cosLat*cosLon - latitudinal*sinLat*cosLon
	y := radial*cosLat*sinLon - latitudinal*sinLat*sinLon
	z := radial*sinLat + latitudinal*cosLat

	// The n=2..nmax sum above already excludes the n=0 (J0) monopole
	// term by construction, so the result is already perturbation-only
	// (§4.3 step 7): nothing further to subtract. The caller owns
	// adding the point-mass term back (Open Question #2 in DESIGN.md).
	return Vec3{X: x * p.Mu, Y: y * p.Mu, Z: z * p.Mu}
}

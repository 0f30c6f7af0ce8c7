package oblate

import "math"

// DaysPerJulianCentury is the number of days in a Julian century,
// used to scale the pole-motion rates of §4.4.
const DaysPerJulianCentury = 36525.0

// Pole describes a body's pole orientation at a reference epoch and
// its linear drift, all in radians / radians-per-Julian-century.
type Pole struct {
	EpochJD   float64 // T0, Julian date
	Alpha0    float64 // right ascension of the pole at T0, radians
	Delta0    float64 // declination of the pole at T0, radians
	AlphaRate float64 // radians per Julian century
	DeltaRate float64 // radians per Julian century
}

// At returns the pole's (alpha, delta) at Julian date t (§4.4).
func (p Pole) At(t float64) (alpha, delta float64) {
	nc := (t - p.EpochJD) / DaysPerJulianCentury
	return p.Alpha0 + nc*p.AlphaRate, p.Delta0 + nc*p.DeltaRate
}

// poleMatrix returns R(alpha, delta) as defined in §4.1:
//
//	[ -sin(a),        cos(a),       0      ]
//	[ -cos(a)sin(d), -sin(a)sin(d), cos(d) ]
//	[  cos(a)cos(d),  sin(a)cos(d), sin(d) ]
func poleMatrix(alpha, delta float64) [3][3]float64 {
	sa, ca := math.Sincos(alpha)
	sd, cd := math.Sincos(delta)
	return [3][3]float64{
		{-sa, ca, 0},
		{-ca * sd, -sa * sd, cd},
		{ca * cd, sa * cd, sd},
	}
}

func matTransposeApply(m [3][3]float64, v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[1][0]*v.Y + m[2][0]*v.Z,
		Y: m[0][1]*v.X + m[1][1]*v.Y + m[2][1]*v.Z,
		Z: m[0][2]*v.X + m[1][2]*v.Y + m[2][2]*v.Z,
	}
}

func matApply(m [3][3]float64, v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// EclipticToEquatorial transforms v from the ecliptic frame to the
// body's equatorial frame: first rotate by -obliquity about X to
// reach the Earth equatorial frame, then apply the transpose of
// R(alpha, delta) (§4.1).
func EclipticToEquatorial(v Vec3, alpha, delta, obliquity float64) Vec3 {
	earthEquatorial := v.RotateX(-obliquity)
	m := poleMatrix(alpha, delta)
	return matTransposeApply(m, earthEquatorial)
}

// EquatorialToEcliptic is the inverse of EclipticToEquatorial: apply
// R(alpha, delta) directly, then rotate by +obliquity about X.
func EquatorialToEcliptic(v Vec3, alpha, delta, obliquity float64) Vec3 {
	earthEquatorial := matApply(poleMatrix(alpha, delta), v)
	return earthEquatorial.RotateX(obliquity)
}

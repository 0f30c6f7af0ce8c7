package ephemeris

// keplerElements holds the mean orbital elements of a body at the
// J2000.0 epoch together with their linear secular rates, in the same
// layout as the teacher's CelestialObject orbital-element fields
// (objects_data.go): semi-major axis A (AU for heliocentric bodies, km
// for moons), eccentricity E, inclination I (deg), mean longitude L
// (deg), longitude of perihelion LP (deg, heliocentric bodies) or
// argument of periapsis W (deg, moons), longitude of ascending node N
// (deg), and their "d"-prefixed rates per Julian century.
type keplerElements struct {
	name       string
	parentName string

	a, da   float64 // semi-major axis, rate/century
	e, de   float64 // eccentricity, rate/century
	i, di   float64 // inclination deg, rate deg/century
	l, dl   float64 // mean longitude deg, rate deg/century
	lp, dlp float64 // longitude of perihelion deg, rate deg/century (heliocentric bodies)
	w, dw   float64 // argument of periapsis deg, rate deg/century (moons; zero for heliocentric bodies)
	n, dn   float64 // longitude of ascending node deg, rate deg/century

	heliocentric bool // true: orbit given in AU around the Sun; false: km around parent
}

// elementsTable mirrors objects_data.go's literal orbital-element rows
// (VSOP87/JPL-style mean elements for the planets, approximate
// elements for the major moons), extended with dl for every body so
// Query never needs a fallback mean-motion estimate.
var elementsTable = map[string]keplerElements{
	"Mercury": {name: "Mercury", parentName: "Sun", heliocentric: true,
		a: 0.38709843, da: 0.00000000, e: 0.20563661, de: 0.00002123,
		i: 7.00559432, di: -0.00590158, l: 252.25166724, dl: 149472.67486623,
		lp: 77.45771895, dlp: 0.15940013, n: 48.33961819, dn: -0.12214182},
	"Venus": {name: "Venus", parentName: "Sun", heliocentric: true,
		a: 0.72333566, da: 0.00000390, e: 0.00677672, de: -0.00004107,
		i: 3.39467605, di: -0.00078890, l: 181.97970850, dl: 58517.81538729,
		lp: 131.76755713, dlp: 0.05679648, n: 76.67984255, dn: -0.27769418},
	"Earth": {name: "Earth", parentName: "Sun", heliocentric: true,
		a: 1.00000261, da: 0.00000562, e: 0.01671123, de: -0.00004392,
		i: -0.00001531, di: -0.01294668, l: 100.46457166, dl: 35999.37306329,
		lp: 102.93768193, dlp: 0.32327364, n: 0.0, dn: 0.0},
	"Mars": {name: "Mars", parentName: "Sun", heliocentric: true,
		a: 1.52371034, da: 0.00001847, e: 0.09339410, de: 0.00007882,
		i: 1.84969142, di: -0.00813131, l: -4.55343205, dl: 19140.30268499,
		lp: -23.94362959, dlp: 0.44441088, n: 49.55953891, dn: -0.29257343},
	"Jupiter": {name: "Jupiter", parentName: "Sun", heliocentric: true,
		a: 5.20288700, da: -0.00011607, e: 0.04838624, de: -0.00013253,
		i: 1.30439695, di: -0.00183714, l: 34.39644051, dl: 3034.74612775,
		lp: 14.72847983, dlp: 0.21252668, n: 100.47390909, dn: 0.20469106},
	"Saturn": {name: "Saturn", parentName: "Sun", heliocentric: true,
		a: 9.53667594, da: -0.00125060, e: 0.05386179, de: -0.00050991,
		i: 2.48599187, di: 0.00193609, l: 49.95424423, dl: 1222.49362201,
		lp: 92.59887831, dlp: -0.41897216, n: 113.66242448, dn: -0.28867794},
	"Uranus": {name: "Uranus", parentName: "Sun", heliocentric: true,
		a: 19.18916464, da: -0.00196176, e: 0.04725744, de: -0.00004397,
		i: 0.77263783, di: -0.00242939, l: 313.23810451, dl: 428.48202785,
		lp: 170.95427630, dlp: 0.40805281, n: 74.01692503, dn: 0.04240589},
	"Neptune": {name: "Neptune", parentName: "Sun", heliocentric: true,
		a: 30.06992276, da: 0.00026291, e: 0.00859048, de: 0.00005105,
		i: 1.77004347, di: 0.00035372, l: -55.12002969, dl: 218.45945325,
		lp: 44.96476227, dlp: -0.32241464, n: 131.78422574, dn: -0.00508664},
	"Pluto": {name: "Pluto", parentName: "Sun", heliocentric: true,
		a: 39.48211675, da: -0.00031596, e: 0.24882730, de: 0.00005170,
		i: 17.14001206, di: 0.00004818, l: 238.92881780, dl: 145.20780515,
		lp: 224.06891629, dlp: -0.04062942, n: 110.30393684, dn: -0.01183482},

	"Moon": {name: "Moon", parentName: "Earth", heliocentric: false,
		a: 384399.0, e: 0.0549, i: 5.145,
		l: 375.7, dl: 13.176358 * daysPerJulianCentury,
		n: 125.08, dn: -0.05295 * daysPerJulianCentury,
		w: 318.15, dw: 0.11140 * daysPerJulianCentury},

	"Phobos": {name: "Phobos", parentName: "Mars", heliocentric: false,
		a: 9376.0, e: 0.0151, i: 1.093,
		l: 165.8, dl: 1128.8 * 360.0 / 365.25 * daysPerJulianCentury,
		n: 208.2, w: 157.1},
	"Deimos": {name: "Deimos", parentName: "Mars", heliocentric: false,
		a: 23458.0, e: 0.00033, i: 1.791,
		l: 286.5, dl: 285.16 * 360.0 / 365.25 * daysPerJulianCentury,
		n: 24.5, w: 260.7},

	"Io": {name: "Io", parentName: "Jupiter", heliocentric: false,
		a: 421800.0, e: 0.0041, i: 0.05,
		l: 342.02, dl: 203.4889538 * 360.0 / 365.25 * daysPerJulianCentury,
		n: 43.977, w: 84.129},
	"Europa": {name: "Europa", parentName: "Jupiter", heliocentric: false,
		a: 671100.0, e: 0.0094, i: 0.47,
		l: 171.02, dl: 101.3747235 * 360.0 / 365.25 * daysPerJulianCentury,
		n: 219.106, w: 88.970},
	"Ganymede": {name: "Ganymede", parentName: "Jupiter", heliocentric: false,
		a: 1070400.0, e: 0.0013, i: 0.20,
		l: 317.54, dl: 50.3176081 * 360.0 / 365.25 * daysPerJulianCentury,
		n: 63.552, w: 192.417},
	"Callisto": {name: "Callisto", parentName: "Jupiter", heliocentric: false,
		a: 1882700.0, e: 0.0074, i: 0.19,
		l: 181.408, dl: 21.5710715 * 360.0 / 365.25 * daysPerJulianCentury,
		n: 298.848, w: 52.643},

	"Titan": {name: "Titan", parentName: "Saturn", heliocentric: false,
		a: 1221870.0, e: 0.0288, i: 0.33,
		l: 161.223, dl: 22.577 * 360.0 / 365.25 * daysPerJulianCentury,
		n: 28.06, w: 180.63},
	"Mimas": {name: "Mimas", parentName: "Saturn", heliocentric: false,
		a: 185540.0, e: 0.0196, i: 1.574,
		l: 14.8, dl: 381.9944943 * 360.0 / 365.25 * daysPerJulianCentury,
		n: 173.03, w: 332.96},
	"Enceladus": {name: "Enceladus", parentName: "Saturn", heliocentric: false,
		a: 238040.0, e: 0.0047, i: 0.009,
		l: 199.5, dl: 262.7318996 * 360.0 / 365.25 * daysPerJulianCentury,
		n: 342.51, w: 0.0},
	"Tethys": {name: "Tethys", parentName: "Saturn", heliocentric: false,
		a: 294670.0, e: 0.0001, i: 1.091,
		l: 243.37, dl: 190.6979085 * 360.0 / 365.25 * daysPerJulianCentury,
		n: 273.01, w: 0.0},
	"Dione": {name: "Dione", parentName: "Saturn", heliocentric: false,
		a: 377420.0, e: 0.0022, i: 0.028,
		l: 322.38, dl: 131.5349316 * 360.0 / 365.25 * daysPerJulianCentury,
		n: 10.4, w: 0.0},
	"Rhea": {name: "Rhea", parentName: "Saturn", heliocentric: false,
		a: 527070.0, e: 0.001, i: 0.333,
		l: 121.02, dl: 79.6900478 * 360.0 / 365.25 * daysPerJulianCentury,
		n: 133.71, w: 0.0},
	"Iapetus": {name: "Iapetus", parentName: "Saturn", heliocentric: false,
		a: 3560820.0, e: 0.0286, i: 15.47,
		l: 75.83, dl: 4.5375313 * 360.0 / 365.25 * daysPerJulianCentury,
		n: 81.1, w: 0.0},

	"Miranda": {name: "Miranda", parentName: "Uranus", heliocentric: false,
		a: 129390.0, e: 0.0013, i: 4.232,
		l: 68.312, dl: 254.6906892 * 360.0 / 365.25 * daysPerJulianCentury,
		n: 100.58, w: 155.6},
	"Ariel": {name: "Ariel", parentName: "Uranus", heliocentric: false,
		a: 191020.0, e: 0.0012, i: 0.260,
		l: 39.481, dl: 142.8356681 * 360.0 / 365.25 * daysPerJulianCentury,
		n: 22.394, w: 83.39},
	"Umbriel": {name: "Umbriel", parentName: "Uranus", heliocentric: false,
		a: 266000.0, e: 0.0039, i: 0.205,
		l: 12.697, dl: 86.8688923 * 360.0 / 365.25 * daysPerJulianCentury,
		n: 33.485, w: 157.5},
	"Titania": {name: "Titania", parentName: "Uranus", heliocentric: false,
		a: 435910.0, e: 0.0011, i: 0.340,
		l: 22.574, dl: 41.351431 * 360.0 / 365.25 * daysPerJulianCentury,
		n: 99.771, w: 202.0},
	"Oberon": {name: "Oberon", parentName: "Uranus", heliocentric: false,
		a: 583520.0, e: 0.0014, i: 0.058,
		l: 68.588, dl: 26.7394932 * 360.0 / 365.25 * daysPerJulianCentury,
		n: 279.771, w: 182.4},

	"Triton": {name: "Triton", parentName: "Neptune", heliocentric: false,
		a: 354759.0, e: 0.000016, i: 156.885,
		l: 210.0, dl: -61.2572637 * 360.0 / 365.25 * daysPerJulianCentury,
		n: 177.26, w: 67.7},
}

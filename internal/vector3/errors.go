package vector3

import "errors"

// errZeroMagnitude is returned by operations that divide by a
// vector's magnitude (Normalize, Direction, AngleDegrees) when that
// magnitude is zero.
var errZeroMagnitude = errors.New("vector3: zero-magnitude vector")

package community

import "errors"

// ErrInvalidCoordinates is returned for map queries outside WGS84 bounds or
// with a non-positive radius
var ErrInvalidCoordinates = errors.New("invalid coordinates")

package field

import "errors"

// ErrInvalidParameter is the single validation error kind for the
// simulation core. Non-positive spacing or diffusivity, a non-positive
// timestep, and fields shorter than two nodes all unwrap to it.
var ErrInvalidParameter = errors.New("field: invalid parameter")

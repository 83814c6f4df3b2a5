// Package field defines the concentration field type shared by the
// diffusion core and its collaborators.
//
//   - [Field]: ordered node values at the current time
//   - [ErrInvalidParameter]: the core's single validation error kind
//
// A Field is plain data; the diffusion package owns all update logic.
package field

// Package diffusion implements explicit time integration of the 1D
// diffusion equation on a regular grid with fixed Dirichlet boundaries.
//
// The scheme is forward-time centered-space (FTCS): each interior node
// is updated from the previous step's three-point neighborhood, then
// the two endpoints are clamped to their boundary values. Stability
// requires the diffusion number D*dt/dx^2 to stay at or below 0.5;
// [StableDt] returns the maximal stable timestep and [Integrator]
// derives it automatically unless a timestep is supplied.
//
// # Example
//
//	integ, _ := diffusion.New(diffusion.Params{Diffusivity: 100, Dx: 0.5, Left: 500, Right: 0})
//	result, _ := integ.Run(ctx, initial, diffusion.RunConfig{Steps: 5000})
//
// An unstable caller-supplied timestep is not an error: the scheme
// then oscillates or diverges exactly as the mathematics says it must.
//
// # Thread Safety
//
// Integrator instances are NOT thread-safe. Within a step the interior
// update is data-parallel and fans out over goroutines for large
// fields; across steps execution is strictly sequential.
package diffusion

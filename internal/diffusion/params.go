package diffusion

import (
	"fmt"
	"math"

	"github.com/san-kum/diffuse1d/internal/field"
)

// Params holds every numeric constant of a run. It replaces ad-hoc
// globals: the integrator takes one validated Params and nothing else.
type Params struct {
	Diffusivity float64 // D, uniform in space and time
	Dx          float64 // grid spacing
	Left        float64 // Dirichlet value clamped at node 0
	Right       float64 // Dirichlet value clamped at the last node
	Dt          float64 // timestep; 0 means derive via StableDt
}

func (p Params) Validate() error {
	if p.Dx <= 0 || math.IsNaN(p.Dx) || math.IsInf(p.Dx, 0) {
		return fmt.Errorf("diffusion: dx must be positive and finite, got %g: %w", p.Dx, field.ErrInvalidParameter)
	}
	if p.Diffusivity <= 0 || math.IsNaN(p.Diffusivity) || math.IsInf(p.Diffusivity, 0) {
		return fmt.Errorf("diffusion: diffusivity must be positive and finite, got %g: %w", p.Diffusivity, field.ErrInvalidParameter)
	}
	if p.Dt < 0 || math.IsNaN(p.Dt) || math.IsInf(p.Dt, 0) {
		return fmt.Errorf("diffusion: dt must be positive and finite, got %g: %w", p.Dt, field.ErrInvalidParameter)
	}
	return nil
}

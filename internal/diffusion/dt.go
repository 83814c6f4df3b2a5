package diffusion

import (
	"fmt"
	"math"

	"github.com/san-kum/diffuse1d/internal/field"
)

// stabilityFactor is the maximal-stability choice for the 1D explicit
// scheme: the scheme is stable while D*dt/dx^2 <= 0.5.
const stabilityFactor = 0.5

// StableDt returns the largest stable timestep for the explicit
// forward-time centered-space update, dt = 0.5 * dx^2 / D.
func StableDt(dx, diffusivity float64) (float64, error) {
	if dx <= 0 || math.IsNaN(dx) || math.IsInf(dx, 0) {
		return 0, fmt.Errorf("diffusion: dx must be positive and finite, got %g: %w", dx, field.ErrInvalidParameter)
	}
	if diffusivity <= 0 || math.IsNaN(diffusivity) || math.IsInf(diffusivity, 0) {
		return 0, fmt.Errorf("diffusion: diffusivity must be positive and finite, got %g: %w", diffusivity, field.ErrInvalidParameter)
	}
	return stabilityFactor * dx * dx / diffusivity, nil
}

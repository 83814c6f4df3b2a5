package metrics

import (
	"math"

	"github.com/san-kum/diffuse1d/internal/field"
)

// SteadyStateResidual measures how far the latest field is from the
// linear steady state of the Dirichlet problem: the maximum absolute
// deviation from the straight line between the two endpoint values.
// Zero means the run has fully relaxed.
type SteadyStateResidual struct {
	name     string
	residual float64
	samples  int
}

func NewSteadyStateResidual() *SteadyStateResidual {
	return &SteadyStateResidual{name: "steady_state_residual"}
}

func (r *SteadyStateResidual) Name() string { return r.name }

func (r *SteadyStateResidual) Observe(f field.Field, t float64) {
	n := len(f)
	if n < 2 {
		return
	}

	left, right := f[0], f[n-1]
	max := 0.0
	for i := 1; i < n-1; i++ {
		frac := float64(i) / float64(n-1)
		lerp := left + (right-left)*frac
		dev := math.Abs(f[i] - lerp)
		if dev > max {
			max = dev
		}
	}

	r.residual = max
	r.samples++
}

func (r *SteadyStateResidual) Value() float64 {
	return r.residual
}

func (r *SteadyStateResidual) Reset() {
	r.residual = 0
	r.samples = 0
}

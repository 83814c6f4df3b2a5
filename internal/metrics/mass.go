package metrics

import (
	"math"

	"github.com/san-kum/diffuse1d/internal/field"
)

// Mass tracks the total amount of the diffusing quantity, sum(C)*dx.
// With Dirichlet boundaries mass is not conserved in general; the
// metric reports the relative drift between the first and last
// observed fields.
type Mass struct {
	name        string
	dx          float64
	initialMass float64
	currentMass float64
	samples     int
}

func NewMass(dx float64) *Mass {
	return &Mass{name: "mass_drift", dx: dx}
}

func (m *Mass) Name() string { return m.name }

func (m *Mass) Observe(f field.Field, t float64) {
	mass := f.Sum() * m.dx

	if m.samples == 0 {
		m.initialMass = mass
	}
	m.currentMass = mass
	m.samples++
}

func (m *Mass) Value() float64 {
	if m.samples == 0 || m.initialMass == 0 {
		return 0
	}
	return math.Abs(m.currentMass-m.initialMass) / math.Abs(m.initialMass)
}

func (m *Mass) Reset() {
	m.initialMass = 0
	m.currentMass = 0
	m.samples = 0
}

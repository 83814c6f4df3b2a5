package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/diffuse1d/internal/field"
)

func TestMassDrift(t *testing.T) {
	m := NewMass(0.5)

	m.Observe(field.Field{2, 2, 2, 2}, 0) // mass 4
	if m.Value() != 0 {
		t.Errorf("single observation should have zero drift, got %g", m.Value())
	}

	m.Observe(field.Field{1, 1, 1, 1}, 1) // mass 2
	if math.Abs(m.Value()-0.5) > 1e-12 {
		t.Errorf("expected drift 0.5, got %g", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Errorf("expected 0 after reset, got %g", m.Value())
	}
}

func TestSteadyStateResidual(t *testing.T) {
	r := NewSteadyStateResidual()

	// Exactly linear: zero residual.
	r.Observe(field.Field{10, 7.5, 5, 2.5, 0}, 0)
	if r.Value() != 0 {
		t.Errorf("linear field should have zero residual, got %g", r.Value())
	}

	// A bump of 3 above the line at the middle node.
	r.Observe(field.Field{10, 7.5, 8, 2.5, 0}, 1)
	if math.Abs(r.Value()-3) > 1e-12 {
		t.Errorf("expected residual 3, got %g", r.Value())
	}
}

func TestSpan(t *testing.T) {
	s := NewSpan()

	s.Observe(field.Field{0, 5, 2}, 0)
	if s.Value() != 5 {
		t.Errorf("expected span 5, got %g", s.Value())
	}

	s.Observe(field.Field{1, 2, 3}, 1)
	if s.Value() != 2 {
		t.Errorf("expected span 2, got %g", s.Value())
	}
	if s.MaxValue() != 5 {
		t.Errorf("expected max span 5, got %g", s.MaxValue())
	}

	s.Reset()
	if s.Value() != 0 || s.MaxValue() != 0 {
		t.Error("expected zero spans after reset")
	}
}

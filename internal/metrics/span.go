package metrics

import "github.com/san-kum/diffuse1d/internal/field"

// Span reports the value range max-min of the latest observed field.
// For a stable explicit run the span never grows past the initial
// range; growth is the signature of an unstable timestep.
type Span struct {
	name    string
	span    float64
	maxSpan float64
	samples int
}

func NewSpan() *Span {
	return &Span{name: "span"}
}

func (s *Span) Name() string { return s.name }

func (s *Span) Observe(f field.Field, t float64) {
	span := f.Max() - f.Min()
	s.span = span
	if span > s.maxSpan {
		s.maxSpan = span
	}
	s.samples++
}

func (s *Span) Value() float64 { return s.span }

// MaxValue returns the largest span seen over the run.
func (s *Span) MaxValue() float64 { return s.maxSpan }

func (s *Span) Reset() {
	s.span = 0
	s.maxSpan = 0
	s.samples = 0
}

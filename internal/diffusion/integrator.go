package diffusion

import (
	"context"
	"fmt"

	"github.com/san-kum/diffuse1d/internal/field"
)

// Metric accumulates a scalar observation over the run. Observe is
// called once on the initial field and once after every step.
type Metric interface {
	Name() string
	Observe(f field.Field, t float64)
	Value() float64
	Reset()
}

// RunConfig controls a single Run invocation.
type RunConfig struct {
	Steps       int // number of explicit updates, >= 0
	FrameStride int // record every k-th field into Result.Frames; 0 records none
}

// Result is the outcome of a completed run.
type Result struct {
	Final      field.Field
	Frames     []field.Field
	Times      []float64
	Metrics    map[string]float64
	StepsTaken int
}

// Integrator advances a concentration field with the explicit
// forward-time centered-space scheme under fixed Dirichlet boundaries.
// Not safe for concurrent use.
type Integrator struct {
	params  Params
	dt      float64
	coeff   float64 // D*dt/dx^2, the diffusion number
	metrics []Metric
}

// New validates params eagerly and derives the timestep. A zero
// Params.Dt selects the stability-limited timestep; a positive Dt is
// taken as given, stable or not.
func New(p Params) (*Integrator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	dt := p.Dt
	if dt == 0 {
		var err error
		dt, err = StableDt(p.Dx, p.Diffusivity)
		if err != nil {
			return nil, err
		}
	}

	return &Integrator{
		params: p,
		dt:     dt,
		coeff:  p.Diffusivity * dt / (p.Dx * p.Dx),
	}, nil
}

func (it *Integrator) Dt() float64    { return it.dt }
func (it *Integrator) Params() Params { return it.params }

func (it *Integrator) AddMetric(m Metric) {
	it.metrics = append(it.metrics, m)
}

// Run applies cfg.Steps explicit updates to initial and returns the
// final field. Step t+1 consumes step t's output; within a step all
// stencil reads come from the previous field (double buffer). With
// Steps == 0 the initial field is returned with only the boundary
// values enforced. Cancellation of ctx aborts between steps.
func (it *Integrator) Run(ctx context.Context, initial field.Field, cfg RunConfig) (*Result, error) {
	if err := it.validateRun(initial, cfg.Steps); err != nil {
		return nil, err
	}

	for _, m := range it.metrics {
		m.Reset()
	}

	n := len(initial)
	cur := initial.Clone()
	next := make(field.Field, n)

	// The boundary invariant holds from step 0 onward, including the
	// degenerate zero-step run.
	cur[0] = it.params.Left
	cur[n-1] = it.params.Right

	result := &Result{Metrics: make(map[string]float64)}

	t := 0.0
	it.observe(cur, t)
	it.record(result, cur, t, cfg.FrameStride, 0, cfg.Steps)

	for i := 0; i < cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		it.stepInto(next, cur)
		cur, next = next, cur
		t += it.dt
		result.StepsTaken++

		it.observe(cur, t)
		it.record(result, cur, t, cfg.FrameStride, i+1, cfg.Steps)
	}

	result.Final = cur
	for _, m := range it.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}

// RunWithCallback applies steps updates, invoking fn with each
// successive field (starting from the boundary-enforced initial one)
// and its time. Returning false from fn stops the run early. The field
// passed to fn is a live buffer; callers must clone to retain it.
func (it *Integrator) RunWithCallback(ctx context.Context, initial field.Field, steps int, fn func(f field.Field, t float64) bool) error {
	if err := it.validateRun(initial, steps); err != nil {
		return err
	}

	n := len(initial)
	cur := initial.Clone()
	next := make(field.Field, n)
	cur[0] = it.params.Left
	cur[n-1] = it.params.Right

	t := 0.0
	if !fn(cur, t) {
		return nil
	}

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		it.stepInto(next, cur)
		cur, next = next, cur
		t += it.dt

		if !fn(cur, t) {
			return nil
		}
	}
	return nil
}

// StepOnce advances f by a single update and returns the new field.
// It allocates per call; the batch Run path reuses buffers instead.
func (it *Integrator) StepOnce(f field.Field) (field.Field, error) {
	if len(f) < 2 {
		return nil, fmt.Errorf("diffusion: field needs at least 2 nodes, got %d: %w", len(f), field.ErrInvalidParameter)
	}
	next := make(field.Field, len(f))
	it.stepInto(next, f)
	return next, nil
}

func (it *Integrator) stepInto(dst, src field.Field) {
	if len(src) >= parallelThreshold {
		stepParallel(dst, src, it.coeff, it.params.Left, it.params.Right)
		return
	}
	step(dst, src, it.coeff, it.params.Left, it.params.Right)
}

func (it *Integrator) validateRun(initial field.Field, steps int) error {
	if len(initial) < 2 {
		return fmt.Errorf("diffusion: field needs at least 2 nodes, got %d: %w", len(initial), field.ErrInvalidParameter)
	}
	if steps < 0 {
		return fmt.Errorf("diffusion: steps must be non-negative, got %d: %w", steps, field.ErrInvalidParameter)
	}
	return nil
}

func (it *Integrator) observe(f field.Field, t float64) {
	for _, m := range it.metrics {
		m.Observe(f, t)
	}
}

func (it *Integrator) record(result *Result, f field.Field, t float64, stride, step, total int) {
	if stride <= 0 {
		return
	}
	if step%stride == 0 || step == total {
		result.Frames = append(result.Frames, f.Clone())
		result.Times = append(result.Times, t)
	}
}

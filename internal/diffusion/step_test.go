package diffusion

import (
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/diffuse1d/internal/field"
)

func TestStepReadsSnapshot(t *testing.T) {
	// Every right-hand side must see the pre-update field. With an
	// in-place sequential sweep node 2 would read the already-updated
	// node 1; the double buffer forbids that.
	src := field.Field{0, 100, 0, 0, 0}
	dst := make(field.Field, len(src))

	step(dst, src, 0.25, 0, 0)

	// Node 2 reads the OLD node 1 (100), not its updated value (50).
	if dst[1] != 100+0.25*(0-200+0) {
		t.Errorf("node 1: got %g", dst[1])
	}
	if dst[2] != 0+0.25*(0-0+100) {
		t.Errorf("node 2 read updated neighbor: got %g, want 25", dst[2])
	}
}

func TestStepNoWraparound(t *testing.T) {
	// The endpoints feed the stencil but are never stencilled
	// themselves, and node 1 must not see the far end of the array.
	src := field.Field{1, 0, 0, 1000}
	dst := make(field.Field, len(src))

	step(dst, src, 0.5, 7, 9)

	if dst[0] != 7 || dst[3] != 9 {
		t.Fatalf("boundaries not clamped: %g, %g", dst[0], dst[3])
	}
	if dst[1] != 0+0.5*(0-0+1) {
		t.Errorf("node 1 polluted: got %g, want 0.5", dst[1])
	}
	if dst[2] != 0+0.5*(1000-0+0) {
		t.Errorf("node 2: got %g, want 500", dst[2])
	}
}

func TestStepMinimalField(t *testing.T) {
	// Two nodes: no interior, only the clamp.
	src := field.Field{3, 4}
	dst := make(field.Field, 2)

	step(dst, src, 0.5, 1, 2)

	if dst[0] != 1 || dst[1] != 2 {
		t.Errorf("expected [1 2], got %v", dst)
	}
}

func TestStepParallelMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, n := range []int{2, 3, 17, 1024, 20000} {
		src := make(field.Field, n)
		for i := range src {
			src[i] = rng.NormFloat64() * 100
		}

		seq := make(field.Field, n)
		par := make(field.Field, n)

		step(seq, src, 0.37, 12, -4)
		stepParallel(par, src, 0.37, 12, -4)

		for i := range seq {
			if seq[i] != par[i] {
				t.Fatalf("n=%d: node %d differs: %g vs %g", n, i, seq[i], par[i])
			}
		}
	}
}

func TestStableDt(t *testing.T) {
	dt, err := StableDt(0.5, 100)
	if err != nil {
		t.Fatalf("StableDt failed: %v", err)
	}
	if dt != 0.00125 {
		t.Errorf("expected 0.00125, got %g", dt)
	}

	dt, err = StableDt(1, 1)
	if err != nil {
		t.Fatalf("StableDt failed: %v", err)
	}
	if dt != 0.5 {
		t.Errorf("expected 0.5, got %g", dt)
	}
}

func TestStableDtInvalid(t *testing.T) {
	cases := []struct {
		name  string
		dx, d float64
	}{
		{"zero dx", 0, 1},
		{"negative dx", -1, 1},
		{"zero diffusivity", 1, 0},
		{"negative diffusivity", 1, -5},
		{"nan", math.NaN(), 1},
		{"inf", 1, math.Inf(1)},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := StableDt(tt.dx, tt.d); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

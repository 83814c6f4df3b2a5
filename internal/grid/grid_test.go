package grid

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/diffuse1d/internal/field"
)

func TestNewGrid(t *testing.T) {
	g, err := New(300, 0.5)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if g.NumNodes() != 601 {
		t.Errorf("expected 601 nodes, got %d", g.NumNodes())
	}
	if g.Coords[0] != 0 {
		t.Errorf("first coord = %g, want 0", g.Coords[0])
	}
	if math.Abs(g.Coords[600]-300) > 1e-9 {
		t.Errorf("last coord = %g, want 300", g.Coords[600])
	}
}

func TestNewGridMinimal(t *testing.T) {
	g, err := New(1, 1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if g.NumNodes() != 2 {
		t.Errorf("expected 2 nodes, got %d", g.NumNodes())
	}
}

func TestNewGridInvalid(t *testing.T) {
	cases := []struct {
		name       string
		length, dx float64
	}{
		{"zero length", 0, 1},
		{"negative length", -10, 1},
		{"zero dx", 10, 0},
		{"negative dx", 10, -1},
		{"dx exceeds length", 1, 2},
		{"nan length", math.NaN(), 1},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.length, tt.dx)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, field.ErrInvalidParameter) {
				t.Errorf("expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestStepProfile(t *testing.T) {
	g, err := New(10, 1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	f := Step(g, 500, 0)

	for i, x := range g.Coords {
		want := 0.0
		if x <= 5 {
			want = 500
		}
		if f[i] != want {
			t.Errorf("node %d (x=%g): got %g, want %g", i, x, f[i], want)
		}
	}
}

func TestLinearProfile(t *testing.T) {
	g, err := New(10, 1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	f := Linear(g, 100, 0)

	if f[0] != 100 || math.Abs(f[10]) > 1e-12 {
		t.Errorf("endpoints wrong: %g, %g", f[0], f[10])
	}
	if math.Abs(f[5]-50) > 1e-9 {
		t.Errorf("midpoint = %g, want 50", f[5])
	}
}

func TestGaussianProfile(t *testing.T) {
	g, err := New(100, 1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	f := Gaussian(g, 10, 0)

	if math.Abs(f[50]-10) > 1e-9 {
		t.Errorf("peak = %g, want 10", f[50])
	}
	// Symmetric about the midpoint.
	for i := 0; i <= 50; i++ {
		if math.Abs(f[i]-f[100-i]) > 1e-12 {
			t.Errorf("asymmetric at %d: %g vs %g", i, f[i], f[100-i])
		}
	}
	// Decays toward the base value at the ends.
	if f[0] > 0.01 {
		t.Errorf("edge value %g too large", f[0])
	}
}

func TestProfileRegistry(t *testing.T) {
	names := ProfileNames()
	if len(names) != 3 {
		t.Fatalf("expected 3 profiles, got %v", names)
	}

	for _, name := range names {
		if _, err := GetProfile(name); err != nil {
			t.Errorf("GetProfile(%s) failed: %v", name, err)
		}
	}

	if _, err := GetProfile("sawtooth"); err == nil {
		t.Error("expected error for unknown profile")
	}
}

package grid

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/diffuse1d/internal/field"
)

// Profile builds an initial concentration field over a grid from the
// two boundary values.
type Profile func(g *Grid, left, right float64) field.Field

var profiles = map[string]Profile{
	"step":     Step,
	"linear":   Linear,
	"gaussian": Gaussian,
}

// GetProfile returns the named profile constructor.
func GetProfile(name string) (Profile, error) {
	p, ok := profiles[name]
	if !ok {
		return nil, fmt.Errorf("grid: unknown profile: %s", name)
	}
	return p, nil
}

// ProfileNames lists the available profiles, sorted.
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Step holds the left value up to the domain midpoint and the right
// value beyond it.
func Step(g *Grid, left, right float64) field.Field {
	f := make(field.Field, len(g.Coords))
	mid := g.Length / 2
	for i, x := range g.Coords {
		if x <= mid {
			f[i] = left
		} else {
			f[i] = right
		}
	}
	return f
}

// Linear interpolates between the boundary values; this is already the
// steady state of the Dirichlet problem.
func Linear(g *Grid, left, right float64) field.Field {
	f := make(field.Field, len(g.Coords))
	for i, x := range g.Coords {
		f[i] = left + (right-left)*x/g.Length
	}
	return f
}

// Gaussian is the right value plus a bump of height left-right
// centered on the domain midpoint, width a tenth of the domain.
func Gaussian(g *Grid, left, right float64) field.Field {
	f := make(field.Field, len(g.Coords))
	mid := g.Length / 2
	sigma := g.Length / 10
	for i, x := range g.Coords {
		d := x - mid
		f[i] = right + (left-right)*math.Exp(-d*d/(2*sigma*sigma))
	}
	return f
}

package grid

import (
	"fmt"
	"math"

	"github.com/san-kum/diffuse1d/internal/field"
)

// Grid is a regular 1D grid from 0 to Length inclusive.
type Grid struct {
	Coords []float64
	Length float64
	Dx     float64
}

// New builds a regular grid covering [0, length] with spacing dx. The
// endpoint is always included, so the grid has at least two nodes.
func New(length, dx float64) (*Grid, error) {
	if length <= 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return nil, fmt.Errorf("grid: length must be positive and finite, got %g: %w", length, field.ErrInvalidParameter)
	}
	if dx <= 0 || math.IsNaN(dx) || math.IsInf(dx, 0) {
		return nil, fmt.Errorf("grid: dx must be positive and finite, got %g: %w", dx, field.ErrInvalidParameter)
	}
	if dx > length {
		return nil, fmt.Errorf("grid: dx %g exceeds length %g: %w", dx, length, field.ErrInvalidParameter)
	}

	n := int(math.Round(length/dx)) + 1
	coords := make([]float64, n)
	for i := range coords {
		coords[i] = float64(i) * dx
	}

	return &Grid{Coords: coords, Length: length, Dx: dx}, nil
}

func (g *Grid) NumNodes() int { return len(g.Coords) }

package field

import "math"

// Field is a 1D concentration profile, one value per grid node.
// Index 0 and index len-1 are the boundary nodes.
type Field []float64

func (f Field) Clone() Field {
	c := make(Field, len(f))
	copy(c, f)
	return c
}

func (f Field) IsValid() bool {
	for _, v := range f {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (f Field) Min() float64 {
	if len(f) == 0 {
		return 0
	}
	min := f[0]
	for _, v := range f[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

func (f Field) Max() float64 {
	if len(f) == 0 {
		return 0
	}
	max := f[0]
	for _, v := range f[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

func (f Field) Sum() float64 {
	sum := 0.0
	for _, v := range f {
		sum += v
	}
	return sum
}

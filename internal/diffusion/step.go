package diffusion

import "github.com/san-kum/diffuse1d/internal/field"

// step writes one explicit update of src into dst. Interior nodes
// [1, n-2] get the centered three-point stencil
//
//	dst[i] = src[i] + coeff*(src[i+1] - 2*src[i] + src[i-1])
//
// reading only from src, so every right-hand side sees the same
// pre-update snapshot. The two boundary nodes are not stencilled;
// they are clamped to the Dirichlet values. No wraparound: the
// stencil never reaches past the interior.
func step(dst, src field.Field, coeff, left, right float64) {
	n := len(src)
	for i := 1; i < n-1; i++ {
		dst[i] = src[i] + coeff*(src[i+1]-2*src[i]+src[i-1])
	}
	dst[0] = left
	dst[n-1] = right
}

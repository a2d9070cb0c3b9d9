package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/RyanBlaney/eigentone/algorithms/random"
)

// randomNormalMatrix fills a dim x dim matrix with standard normal draws
// in row-major order so a seeded source always produces the same matrix.
func randomNormalMatrix(dim int, src *random.Source) *mat.Dense {
	a := mat.NewDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			a.Set(i, j, src.Normal())
		}
	}
	return a
}

// RandomSPD generates a random symmetric positive semi-definite matrix
// A * A^T from iid standard normal entries. With probability one the
// result is strictly positive definite.
func RandomSPD(dim int, src *random.Source) (*mat.Dense, error) {
	if dim < 1 {
		return nil, fmt.Errorf("tensor: dimension must be positive, got %d", dim)
	}

	a := randomNormalMatrix(dim, src)

	var spd mat.Dense
	spd.Mul(a, a.T())
	return &spd, nil
}

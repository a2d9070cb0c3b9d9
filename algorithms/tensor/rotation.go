package tensor

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/RyanBlaney/eigentone/algorithms/random"
)

// ErrDimensionMismatch indicates that a rotation cannot be applied to a
// tensor because the shapes do not line up.
var ErrDimensionMismatch = errors.New("tensor: dimension mismatch")

// RandomRotation generates a random proper orthogonal matrix (det = +1)
// by orthonormalizing an iid normal matrix with a QR factorization. When
// the Q factor comes out as a reflection its first column is negated,
// which flips the determinant without disturbing orthonormality.
func RandomRotation(dim int, src *random.Source) (*mat.Dense, error) {
	if dim < 1 {
		return nil, fmt.Errorf("tensor: dimension must be positive, got %d", dim)
	}

	a := randomNormalMatrix(dim, src)

	var qr mat.QR
	qr.Factorize(a)

	var q mat.Dense
	qr.QTo(&q)

	if mat.Det(&q) < 0 {
		for i := 0; i < dim; i++ {
			q.Set(i, 0, -q.At(i, 0))
		}
	}

	return &q, nil
}

// Rotate applies the orthogonal congruence R * T * R^T, expressing the
// tensor in the rotated frame. Frobenius norm and eigenvalues of the
// symmetric part are preserved.
func Rotate(t, r mat.Matrix) (*mat.Dense, error) {
	tRows, tCols := t.Dims()
	rRows, rCols := r.Dims()

	if tRows != tCols || rRows != rCols || rCols != tRows {
		return nil, fmt.Errorf("%w: tensor %dx%d, rotation %dx%d",
			ErrDimensionMismatch, tRows, tCols, rRows, rCols)
	}

	var rotated mat.Dense
	rotated.Product(r, t, r.T())
	return &rotated, nil
}

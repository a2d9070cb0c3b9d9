package tensor

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Invariants holds the quantities of a tensor that orthogonal rotation
// leaves unchanged.
type Invariants struct {
	// Frobenius is the Frobenius norm of the symmetrized tensor
	Frobenius float64
	// Eigenvalues are the eigenvalues of the symmetrized tensor in
	// ascending order
	Eigenvalues []float64
}

// InvariantsOf extracts rotation invariants from a tensor. The tensor is
// symmetrized as (T + T^T)/2 first so that slightly asymmetric inputs,
// typically the result of accumulated floating point error, still land in
// the real symmetric eigensolver.
func InvariantsOf(t mat.Matrix) (*Invariants, error) {
	rows, cols := t.Dims()
	if rows != cols {
		return nil, fmt.Errorf("tensor: invariants need a square matrix, got %dx%d", rows, cols)
	}
	if rows < 1 {
		return nil, errors.New("tensor: invariants need a non-empty matrix")
	}

	sym := mat.NewSymDense(rows, nil)
	for i := 0; i < rows; i++ {
		for j := i; j < cols; j++ {
			sym.SetSym(i, j, 0.5*(t.At(i, j)+t.At(j, i)))
		}
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(sym, false); !ok {
		return nil, errors.New("tensor: eigendecomposition failed to converge")
	}

	return &Invariants{
		Frobenius:   mat.Norm(sym, 2),
		Eigenvalues: eig.Values(nil),
	}, nil
}

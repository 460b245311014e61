package rhf

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Eigensystem holds the eigenvalues and corresponding eigenvectors
// (columns of Vectors) of a real symmetric matrix.
type Eigensystem struct {
	Values  []float64
	Vectors *Matrix
}

// SymmetricEigendecompose diagonalises a real symmetric matrix, delegating
// to gonum's EigenSym: no corpus dependency offers a complex-eigenvalue
// solver for the non-symmetric case this engine never needs, but gonum's
// symmetric solver is exactly the floating-point linear-algebra primitive
// the overlap-orthogonalization and Fock-diagonalization steps are built
// around.
func SymmetricEigendecompose(a *Matrix) (*Eigensystem, error) {
	n := a.Rows()
	if a.Cols() != n {
		return nil, domainErrorf("eigendecompose: matrix must be square, got %dx%d", a.Rows(), a.Cols())
	}

	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, a.At(i, j))
		}
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(sym, true); !ok {
		return nil, numericErrorf("eigendecompose", "gonum EigenSym factorization did not converge")
	}

	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	out := &Matrix{rows: n, cols: n, data: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.Set(i, j, vectors.At(i, j))
		}
	}

	return &Eigensystem{Values: eig.Values(nil), Vectors: out}, nil
}

// sortIndices returns the indices that would stably sort values ascending.
func sortIndices(values []float64) []int {
	indices := make([]int, len(values))
	for i := range indices {
		indices[i] = i
	}
	for i := 1; i < len(indices); i++ {
		for j := i; j > 0 && values[indices[j-1]] > values[indices[j]]; j-- {
			indices[j-1], indices[j] = indices[j], indices[j-1]
		}
	}
	return indices
}

// matrixWithSortedColumns returns a copy of m whose columns are permuted
// according to indices, so that column i of the result is column
// indices[i] of m.
func matrixWithSortedColumns(m *Matrix, indices []int) (*Matrix, error) {
	n := m.Cols()
	if n != len(indices) {
		return nil, domainErrorf("matrix with sorted columns: got %d indices for %d columns", len(indices), n)
	}
	out := NewMatrix(m.Rows(), n)
	for col, src := range indices {
		for row := 0; row < m.Rows(); row++ {
			out.Set(row, col, m.At(row, src))
		}
	}
	return out, nil
}

// OrthogonalizationMatrix returns the basis transformation X = U Lambda^(-1/2)
// built from the overlap matrix S's eigendecomposition S = U Lambda U^T,
// with every column's sign fixed so its first row is non-negative. That
// canonicalization doesn't change the physics (it's still a valid
// orthogonalizing transform) but makes the transform -- and everything
// downstream of it -- deterministic across runs and implementations.
func OrthogonalizationMatrix(s *Matrix) (*Matrix, error) {
	eig, err := SymmetricEigendecompose(s)
	if err != nil {
		return nil, err
	}

	n := s.Rows()
	invSqrt := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		if eig.Values[i] <= 0 {
			return nil, numericErrorf("overlap matrix", "orthogonalization: non-positive eigenvalue %g encountered; basis may be linearly dependent", eig.Values[i])
		}
		invSqrt.Set(i, i, math.Pow(eig.Values[i], -0.5))
	}

	transform, err := eig.Vectors.Mul(invSqrt)
	if err != nil {
		return nil, err
	}

	for col := 0; col < n; col++ {
		if transform.At(0, col) < 0.0 {
			for row := 0; row < n; row++ {
				transform.Set(row, col, -transform.At(row, col))
			}
		}
	}

	return transform, nil
}

package rhf

import (
	"math"
	"testing"
)

func columnEqualWithinSign(m *Matrix, col int, want [2]float64, tolerance float64) bool {
	a0, a1 := m.At(0, col), m.At(1, col)
	matchesPlus := math.Abs(a0-want[0]) < tolerance && math.Abs(a1-want[1]) < tolerance
	matchesMinus := math.Abs(a0+want[0]) < tolerance && math.Abs(a1+want[1]) < tolerance
	return matchesPlus || matchesMinus
}

func TestOrthogonalizationMatrixTextbookExample(t *testing.T) {
	s := NewMatrix(2, 2)
	s.Set(0, 0, 5.0)
	s.Set(1, 0, 1.0)
	s.Set(0, 1, 1.0)
	s.Set(1, 1, 4.0)

	transform, err := OrthogonalizationMatrix(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tolerance := 1.0e-5
	if !columnEqualWithinSign(transform, 0, [2]float64{-0.2858769, 0.46255854}, tolerance) {
		t.Fatalf("column 0 = (%g, %g), want +-(-0.2858769, 0.46255854)", transform.At(0, 0), transform.At(1, 0))
	}
	if !columnEqualWithinSign(transform, 1, [2]float64{0.35888817, 0.22180508}, tolerance) {
		t.Fatalf("column 1 = (%g, %g), want +-(0.35888817, 0.22180508)", transform.At(0, 1), transform.At(1, 1))
	}
}

func TestOrthogonalizationMatrixDiagonalizesOverlap(t *testing.T) {
	s := NewMatrix(3, 3)
	values := [3][3]float64{
		{1.0, 0.2, 0.3},
		{0.2, 1.0, 0.1},
		{0.3, 0.1, 1.0},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s.Set(i, j, values[i][j])
		}
	}

	transform, err := OrthogonalizationMatrix(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	transformT := transform.Transpose()
	step, err := transformT.Mul(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := step.Mul(transform)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(result.At(i, j)-want) > 1.0e-6 {
				t.Fatalf("X^T S X [%d][%d] = %g, want %g", i, j, result.At(i, j), want)
			}
		}
	}
}

func TestOrthogonalizationMatrixTopRowSignCanonical(t *testing.T) {
	s := NewMatrix(2, 2)
	s.Set(0, 0, 2.0)
	s.Set(1, 1, 3.0)
	s.Set(0, 1, -0.5)
	s.Set(1, 0, -0.5)

	transform, err := OrthogonalizationMatrix(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for col := 0; col < 2; col++ {
		if transform.At(0, col) < 0 {
			t.Fatalf("column %d has negative top-row entry %g, expected sign-canonicalized", col, transform.At(0, col))
		}
	}
}

func TestSymmetricEigendecomposeReproducesMatrix(t *testing.T) {
	a := NewMatrix(3, 3)
	values := [3][3]float64{
		{2.0, -1.0, 0.0},
		{-1.0, 2.0, -1.0},
		{0.0, -1.0, 2.0},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a.Set(i, j, values[i][j])
		}
	}

	eig, err := SymmetricEigendecompose(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Reconstruct A from V diag(values) V^T and compare.
	n := 3
	diag := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		diag.Set(i, i, eig.Values[i])
	}
	step, err := eig.Vectors.Mul(diag)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	reconstructed, err := step.Mul(eig.Vectors.Transpose())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if math.Abs(reconstructed.At(i, j)-a.At(i, j)) > 1.0e-8 {
				t.Fatalf("reconstructed[%d][%d] = %g, want %g", i, j, reconstructed.At(i, j), a.At(i, j))
			}
		}
	}
}

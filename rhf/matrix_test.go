package rhf

import (
	"math"
	"testing"
)

func TestMatrixMulIdentity(t *testing.T) {
	m := NewMatrix(2, 2)
	m.Set(0, 0, 1)
	m.Set(0, 1, 2)
	m.Set(1, 0, 3)
	m.Set(1, 1, 4)

	id := Identity(2)
	result, err := m.Mul(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if result.At(i, j) != m.At(i, j) {
				t.Fatalf("m * I differs from m at (%d,%d): %g vs %g", i, j, result.At(i, j), m.At(i, j))
			}
		}
	}
}

func TestMatrixMulDimensionMismatch(t *testing.T) {
	a := NewMatrix(2, 3)
	b := NewMatrix(2, 2)
	if _, err := a.Mul(b); err == nil {
		t.Fatalf("expected dimension-mismatch error")
	}
}

func TestMatrixTransposeTwice(t *testing.T) {
	m := NewMatrix(2, 3)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			m.Set(i, j, float64(i*3+j))
		}
	}
	back := m.Transpose().Transpose()
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if back.At(i, j) != m.At(i, j) {
				t.Fatalf("double transpose changed (%d,%d)", i, j)
			}
		}
	}
}

func TestMatrixFrobeniusDeltaZeroForIdenticalMatrices(t *testing.T) {
	m := Identity(3)
	delta, err := m.FrobeniusDelta(m.Clone())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(delta) > 1e-15 {
		t.Fatalf("FrobeniusDelta of identical matrices = %g, want 0", delta)
	}
}

func TestMatrixFrobeniusDeltaShapeMismatch(t *testing.T) {
	a := NewMatrix(2, 2)
	b := NewMatrix(3, 3)
	if _, err := a.FrobeniusDelta(b); err == nil {
		t.Fatalf("expected shape-mismatch error")
	}
}

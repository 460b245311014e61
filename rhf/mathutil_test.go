package rhf

import "testing"

func TestDoubleFactorialBaseCases(t *testing.T) {
	cases := []struct {
		n    int64
		want int64
	}{
		{-1, 1},
		{0, 1},
		{1, 1},
		{2, 2},
		{5, 15},
		{6, 48},
	}
	for _, c := range cases {
		if got := doubleFactorial(c.n); got != c.want {
			t.Fatalf("doubleFactorial(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestFactorial(t *testing.T) {
	cases := []struct {
		n    int64
		want int64
	}{
		{0, 1},
		{1, 1},
		{5, 120},
		{10, 3628800},
	}
	for _, c := range cases {
		if got := factorial(c.n); got != c.want {
			t.Fatalf("factorial(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestBinomialMatchesPascalsTriangle(t *testing.T) {
	cases := []struct {
		n, k int64
		want int64
	}{
		{5, 2, 10},
		{10, 0, 1},
		{10, 10, 1},
		{4, 5, 0},
		{3, -1, 0},
	}
	for _, c := range cases {
		got, err := binomial(c.n, c.k)
		if err != nil {
			t.Fatalf("binomial(%d, %d): unexpected error: %v", c.n, c.k, err)
		}
		if got != c.want {
			t.Fatalf("binomial(%d, %d) = %d, want %d", c.n, c.k, got, c.want)
		}
	}
}

func TestBinomialOutsideTableRanges(t *testing.T) {
	if _, err := binomial(11, 3); err == nil {
		t.Fatalf("expected range error for n beyond table bounds")
	}
}

func TestNegOnePow(t *testing.T) {
	if negOnePow(0) != 1.0 {
		t.Fatalf("negOnePow(0) should be +1")
	}
	if negOnePow(3) != -1.0 {
		t.Fatalf("negOnePow(3) should be -1")
	}
}

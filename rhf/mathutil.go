package rhf

// factorial returns n! for 0 <= n <= 20 as a signed 64-bit integer.
func factorial(n int64) int64 {
	result := int64(1)
	for v := int64(2); v <= n; v++ {
		result *= v
	}
	return result
}

// doubleFactorial returns n!! for n >= -1, using the convention
// (-1)!! = 1 and 0!! = 1.
func doubleFactorial(n int64) int64 {
	if n <= 0 {
		return 1
	}
	result := int64(1)
	for v := n; v >= 2; v -= 2 {
		result *= v
	}
	return result
}

// negOnePow returns +1 if n is even, -1 if n is odd.
func negOnePow(n int64) float64 {
	if n%2 == 0 {
		return 1.0
	}
	return -1.0
}

// binomialTableSize is the bound of the precomputed Pascal table: angular
// momenta in this core never exceed a total of 10 (spec.math primitives),
// so rows/columns 0..10 are enough.
const binomialTableSize = 11

// binomialTable[n][k] = C(n,k) for 0 <= n,k <= 10.
var binomialTable = [binomialTableSize][binomialTableSize]int64{
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{1, 2, 1, 0, 0, 0, 0, 0, 0, 0, 0},
	{1, 3, 3, 1, 0, 0, 0, 0, 0, 0, 0},
	{1, 4, 6, 4, 1, 0, 0, 0, 0, 0, 0},
	{1, 5, 10, 10, 5, 1, 0, 0, 0, 0, 0},
	{1, 6, 15, 20, 15, 6, 1, 0, 0, 0, 0},
	{1, 7, 21, 35, 35, 21, 7, 1, 0, 0, 0},
	{1, 8, 28, 56, 70, 56, 28, 8, 1, 0, 0},
	{1, 9, 36, 84, 126, 126, 84, 36, 9, 1, 0},
	{1, 10, 45, 120, 210, 252, 210, 120, 45, 10, 1},
}

// binomial returns C(n, k) for 0 <= k <= n <= 10. Negative k (which arises
// naturally in the kernels' shifted-angular-momentum expressions) and k > n
// return 0 rather than erroring, whatever the table bound; otherwise an n
// beyond 10 fails with a RangeError.
func binomial(n, k int64) (int64, error) {
	if k < 0 || n < k {
		return 0, nil
	}
	if n < 0 || n >= binomialTableSize || k >= binomialTableSize {
		return 0, rangeErrorf("binomial(%d, %d) outside precomputed table bounds [0, %d)", n, k, binomialTableSize)
	}
	return binomialTable[n][k], nil
}

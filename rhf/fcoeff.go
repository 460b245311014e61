package rhf

import "math"

// fCoefficient is the expansion coefficient of (x-A)^l (x-B)^m used by every
// integral kernel (Cook, "Handbook of Computational Quantum Chemistry"):
//
//	f_j(l, m, a, b) = sum_k C(l,k) C(m, j-k) a^(l-k) b^(m-j+k)
//
// summed over k in [max(0, j-m), min(j, l)].
func fCoefficient(j, l, m int64, a, b float64) (float64, error) {
	lo := int64(0)
	if j-m > 0 {
		lo = j - m
	}
	hi := l
	if j < hi {
		hi = j
	}

	result := 0.0
	for k := lo; k <= hi; k++ {
		c0, err := binomial(l, k)
		if err != nil {
			return 0, err
		}
		c1, err := binomial(m, j-k)
		if err != nil {
			return 0, err
		}
		if c0 == 0 || c1 == 0 {
			continue
		}
		result += float64(c0*c1) * math.Pow(a, float64(l-k)) * math.Pow(b, float64(m-j+k))
	}
	return result, nil
}

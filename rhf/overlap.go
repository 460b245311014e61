package rhf

import (
	"math"

	"hartreefock/measureutil"
)

// overlapNorm3D is the exponent-dependent part of the 3-D overlap
// normalisation, common to the kinetic-energy integral as well:
// (pi / (a+b))^(3/2).
func overlapNorm3D(exponent0, exponent1 float64) float64 {
	arg := math.Pi / (exponent0 + exponent1)
	return math.Sqrt(arg * arg * arg)
}

// gaussProductCoeff1D returns (2(a+b))^((angmom0+angmom1)/2), the
// denominator shared by every term of the 1-D overlap sum.
func gaussProductCoeff1D(exponent0, exponent1 float64, angmom0, angmom1 int64) float64 {
	arg := 2.0 * (exponent0 + exponent1)
	power := 0.5 * float64(angmom0+angmom1)
	return math.Pow(arg, power)
}

// unnormalizedOverlap1D is the 1-D overlap integral between two
// un-normalised Gaussian factors (x-centre0)^angmom0 exp(-a(x-centre0)^2)
// and (x-centre1)^angmom1 exp(-b(x-centre1)^2), evaluated at the
// Gaussian-product centre totalCentre. A negative angular momentum (which
// arises from the kinetic-energy recursion's "minus one" terms) makes both
// nested sums vacuous and the result is defined to be zero.
func unnormalizedOverlap1D(angmom0, angmom1 int64, exponent0, exponent1, centre0, centre1, totalCentre float64) (float64, error) {
	if angmom0 < 0 || angmom1 < 0 {
		return 0, nil
	}

	sum := 0.0
	for i0 := int64(0); i0 <= angmom0; i0++ {
		for i1 := int64(0); i1 <= angmom1; i1++ {
			if (i0+i1)%2 != 0 {
				continue
			}
			c0, err := binomial(angmom0, i0)
			if err != nil {
				return 0, err
			}
			c1, err := binomial(angmom1, i1)
			if err != nil {
				return 0, err
			}

			factorialTerm := doubleFactorial(i0 + i1 - 1)
			gauss0 := math.Pow(totalCentre-centre0, float64(angmom0-i0))
			gauss1 := math.Pow(totalCentre-centre1, float64(angmom1-i1))
			coeff := gaussProductCoeff1D(exponent0, exponent1, i0, i1)

			combinatoric := float64(c0 * c1 * factorialTerm)
			sum += combinatoric * gauss0 * gauss1 / coeff
		}
	}
	return sum, nil
}

// overlapContraction returns the overlap integral between two normalised
// primitive Cartesian Gaussians.
func overlapContraction(angmom0, angmom1 AngularMomentum, position0, position1 Vec3, exponent0, exponent1 float64) (float64, error) {
	measureutil.Inc(measureutil.PrimitiveIntegrals)
	productCentre, coeffProduct := gaussianProduct(position0, position1, exponent0, exponent1)

	norm0 := gaussianNorm(angmom0, exponent0)
	norm1 := gaussianNorm(angmom1, exponent1)
	totalNorm := norm0 * norm1 * overlapNorm3D(exponent0, exponent1)

	ox, err := unnormalizedOverlap1D(angmom0.X, angmom1.X, exponent0, exponent1, position0.X, position1.X, productCentre.X)
	if err != nil {
		return 0, err
	}
	oy, err := unnormalizedOverlap1D(angmom0.Y, angmom1.Y, exponent0, exponent1, position0.Y, position1.Y, productCentre.Y)
	if err != nil {
		return 0, err
	}
	oz, err := unnormalizedOverlap1D(angmom0.Z, angmom1.Z, exponent0, exponent1, position0.Z, position1.Z, productCentre.Z)
	if err != nil {
		return 0, err
	}

	return coeffProduct * ox * oy * oz * totalNorm, nil
}

// OverlapMatrix builds the basis-function overlap matrix S, S_ij = <i|j>.
// The diagonal is set to 1 exactly rather than recomputed -- a normalised
// basis function always has unit self-overlap, and forcing the literal
// value avoids letting floating-point normalisation error leak into S's
// diagonal. Only the strict upper triangle is computed and mirrored, since
// every off-diagonal entry is symmetric in i and j.
func OverlapMatrix(basis Basis) (*Matrix, error) {
	n := basis.Len()
	s := NewMatrix(n, n)

	for i := 0; i < n; i++ {
		s.Set(i, i, 1.0)
		for j := i + 1; j < n; j++ {
			value, err := contractedOverlap(basis[i], basis[j])
			if err != nil {
				return nil, err
			}
			s.Set(i, j, value)
			s.Set(j, i, value)
		}
	}
	return s, nil
}

// contractedOverlap sums the primitive overlap integral over every pair of
// primitives in the two contractions.
func contractedOverlap(bf0, bf1 BasisFunction) (float64, error) {
	total := 0.0
	for _, p0 := range bf0.Primitives {
		for _, p1 := range bf1.Primitives {
			v, err := overlapContraction(bf0.AngMom, bf1.AngMom, bf0.Centre, bf1.Centre, p0.Alpha, p1.Alpha)
			if err != nil {
				return 0, err
			}
			total += p0.Coefficient * p1.Coefficient * v
		}
	}
	return total, nil
}

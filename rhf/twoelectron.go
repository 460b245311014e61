package rhf

import (
	"math"

	"hartreefock/measureutil"
)

// bFactorSmallTolerance marks a theta-factor or position-difference power
// small enough that its contribution is treated as exactly zero rather than
// risking a zero-power-of-zero or catastrophic-cancellation artifact.
const bFactorSmallTolerance = 1.0e-8

// thetaFactor is Cook's Handbook (p. 229) theta-factor, shared by both
// electron pairs of the two-electron repulsion integral.
func thetaFactor(idxLTot, idxL0, idxL1, idxR int64, separation0, separation1, gaussExponent float64) (float64, error) {
	f, err := fCoefficient(idxLTot, idxL0, idxL1, separation0, separation1)
	if err != nil {
		return 0, err
	}
	ltotFact := float64(factorial(idxLTot))
	rFact := float64(factorial(idxR))
	ltotRFact := float64(factorial(idxLTot - 2*idxR))
	expon := math.Pow(gaussExponent, float64(idxR-idxLTot))

	return f * ltotFact * expon / (rFact * ltotRFact), nil
}

// bFactorResult is the outcome of one B-factor evaluation: either a value,
// or a signal that the term is negligible and the caller should skip it
// without evaluating the (possibly ill-defined) Boys-function call it would
// otherwise feed.
type bFactorResult struct {
	value    float64
	skipTerm bool
}

// electronElectronBFactor is Cook's Handbook B-factor, with the book's own
// erratum applied per the Beylkin-Sharma reference implementation: the
// first theta-factor call's idx_r argument uses idx_r_01, not idx_r_23.
func electronElectronBFactor(idx TwoElectronIndex, angmom0, angmom1, angmom2, angmom3 int64, diff0, diff1, diff2, diff3, diffProd, g01, g23, delta float64) (bFactorResult, error) {
	idxK := idx.L01 + idx.L23 - 2*(idx.R01+idx.R23)

	theta01, err := thetaFactor(idx.L01, angmom0, angmom1, idx.R01, diff0, diff1, g01)
	if err != nil {
		return bFactorResult{}, err
	}
	if math.Abs(theta01) < bFactorSmallTolerance {
		return bFactorResult{skipTerm: true}, nil
	}

	theta23, err := thetaFactor(idx.L23, angmom2, angmom3, idx.R23, diff2, diff3, g23)
	if err != nil {
		return bFactorResult{}, err
	}
	if math.Abs(theta23) < bFactorSmallTolerance {
		return bFactorResult{skipTerm: true}, nil
	}

	exponPosition := math.Pow(diffProd, float64(idxK-2*idx.I))
	if math.Abs(exponPosition) < bFactorSmallTolerance {
		return bFactorResult{skipTerm: true}, nil
	}

	sign := negOnePow(idx.L01 + idx.I)
	kFactorial := float64(factorial(idxK))
	iFactorial := float64(factorial(idx.I))
	k2iFactorial := float64(factorial(idxK - 2*idx.I))
	deltaFactor := math.Pow(delta, float64(idxK-idx.I))
	pow2Factor := math.Pow(2.0, float64(idxK+idx.L01+idx.L23))

	numerator := sign * theta01 * theta23 * kFactorial * exponPosition
	denominator := pow2Factor * deltaFactor * iFactorial * k2iFactorial
	return bFactorResult{value: numerator / denominator}, nil
}

// twoElectronContraction returns the electron-repulsion integral
// (ab|cd) between four normalised primitive Cartesian Gaussians.
func twoElectronContraction(angmom0, angmom1, angmom2, angmom3 AngularMomentum, position0, position1, position2, position3 Vec3, exponent0, exponent1, exponent2, exponent3 float64) (float64, error) {
	measureutil.Inc(measureutil.PrimitiveIntegrals)
	productCentre01, coeffProduct01 := gaussianProduct(position0, position1, exponent0, exponent1)
	productCentre23, coeffProduct23 := gaussianProduct(position2, position3, exponent2, exponent3)

	norm0 := gaussianNorm(angmom0, exponent0)
	norm1 := gaussianNorm(angmom1, exponent1)
	norm2 := gaussianNorm(angmom2, exponent2)
	norm3 := gaussianNorm(angmom3, exponent3)

	g01 := exponent0 + exponent1
	g23 := exponent2 + exponent3
	delta := 0.25 * (1.0/g01 + 1.0/g23)

	integral := 0.0
	for ix := range TwoElectronIndices(angmom0.X, angmom1.X, angmom2.X, angmom3.X) {
		bx, skip, err := axisBFactor(ix, angmom0, angmom1, angmom2, angmom3, 0, position0, position1, position2, position3, productCentre01, productCentre23, g01, g23, delta)
		if err != nil {
			return 0, err
		}
		if skip {
			continue
		}
		for iy := range TwoElectronIndices(angmom0.Y, angmom1.Y, angmom2.Y, angmom3.Y) {
			by, skip, err := axisBFactor(iy, angmom0, angmom1, angmom2, angmom3, 1, position0, position1, position2, position3, productCentre01, productCentre23, g01, g23, delta)
			if err != nil {
				return 0, err
			}
			if skip {
				continue
			}
			for iz := range TwoElectronIndices(angmom0.Z, angmom1.Z, angmom2.Z, angmom3.Z) {
				bz, skip, err := axisBFactor(iz, angmom0, angmom1, angmom2, angmom3, 2, position0, position1, position2, position3, productCentre01, productCentre23, g01, g23, delta)
				if err != nil {
					return 0, err
				}
				if skip {
					continue
				}

				idxLSum := ix.L01 + ix.L23 + iy.L01 + iy.L23 + iz.L01 + iz.L23
				idxRSum := ix.R01 + ix.R23 + iy.R01 + iy.R23 + iz.R01 + iz.R23
				idxISum := ix.I + iy.I + iz.I
				boysOrder := idxLSum - 2*idxRSum - idxISum

				diffProdVec := productCentre01.sub(productCentre23)
				boysArg := 0.25 * diffProdVec.normSquared() / delta
				boysValue, err := boys(boysOrder, boysArg)
				if err != nil {
					return 0, err
				}

				integral += bx * by * bz * boysValue
			}
		}
	}

	normTot := norm0 * norm1 * norm2 * norm3
	coeffTot := coeffProduct01 * coeffProduct23
	exponTot := 2.0 * math.Pi * math.Pi / (g01 * g23) * math.Sqrt(math.Pi/(g01+g23))

	return integral * coeffTot * normTot * exponTot, nil
}

// axisBFactor evaluates the B-factor for one Cartesian axis, extracting the
// position differences that factor needs from the four centres and the two
// Gaussian-product centres.
func axisBFactor(idx TwoElectronIndex, angmom0, angmom1, angmom2, angmom3 AngularMomentum, axis int, position0, position1, position2, position3, productCentre01, productCentre23 Vec3, g01, g23, delta float64) (float64, bool, error) {
	diff0 := component(productCentre01, axis) - component(position0, axis)
	diff1 := component(productCentre01, axis) - component(position1, axis)
	diff2 := component(productCentre23, axis) - component(position2, axis)
	diff3 := component(productCentre23, axis) - component(position3, axis)
	diffProd := component(productCentre01, axis) - component(productCentre23, axis)

	result, err := electronElectronBFactor(
		idx,
		angmomComponent(angmom0, axis), angmomComponent(angmom1, axis), angmomComponent(angmom2, axis), angmomComponent(angmom3, axis),
		diff0, diff1, diff2, diff3, diffProd, g01, g23, delta,
	)
	if err != nil {
		return 0, false, err
	}
	if result.skipTerm {
		return 0, true, nil
	}
	return result.value, false, nil
}

package rhf

import "hartreefock/measureutil"

// component returns the X/Y/Z component of v selected by axis (0, 1, 2).
func component(v Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// angmomComponent returns the angular-momentum component of l selected by
// axis (0, 1, 2).
func angmomComponent(l AngularMomentum, axis int) int64 {
	switch axis {
	case 0:
		return l.X
	case 1:
		return l.Y
	default:
		return l.Z
	}
}

// otherAxes returns the two axis indices other than axis, in cyclic order.
func otherAxes(axis int) (int, int) {
	return (axis + 1) % 3, (axis + 2) % 3
}

// unnormalizedKinetic1D is the kinetic-energy contribution along one
// Cartesian axis, built from four shifted overlap integrals (Cook's
// Handbook, via the standard McMurchie-Davidson-style decomposition of
// d^2/dx^2 acting on a Cartesian Gaussian), multiplied by the unshifted
// overlap integrals along the other two axes.
func unnormalizedKinetic1D(axis int, angmom0, angmom1 AngularMomentum, position0, position1, productCentre Vec3, exponent0, exponent1, centreCoefficient float64) (float64, error) {
	l0 := angmomComponent(angmom0, axis)
	l1 := angmomComponent(angmom1, axis)
	a0 := component(position0, axis)
	a1 := component(position1, axis)
	ac := component(productCentre, axis)

	termMM, err := unnormalizedOverlap1D(l0-1, l1-1, exponent0, exponent1, a0, a1, ac)
	if err != nil {
		return 0, err
	}
	termPM, err := unnormalizedOverlap1D(l0+1, l1-1, exponent0, exponent1, a0, a1, ac)
	if err != nil {
		return 0, err
	}
	termMP, err := unnormalizedOverlap1D(l0-1, l1+1, exponent0, exponent1, a0, a1, ac)
	if err != nil {
		return 0, err
	}
	termPP, err := unnormalizedOverlap1D(l0+1, l1+1, exponent0, exponent1, a0, a1, ac)
	if err != nil {
		return 0, err
	}

	contribMM := 0.5 * float64(l0*l1) * termMM
	contribPM := -exponent0 * float64(l1) * termPM
	contribMP := -float64(l0) * exponent1 * termMP
	contribPP := 2.0 * exponent0 * exponent1 * termPP

	o0axis, o1axis := otherAxes(axis)
	other0, err := unnormalizedOverlap1D(angmomComponent(angmom0, o0axis), angmomComponent(angmom1, o0axis), exponent0, exponent1, component(position0, o0axis), component(position1, o0axis), component(productCentre, o0axis))
	if err != nil {
		return 0, err
	}
	other1, err := unnormalizedOverlap1D(angmomComponent(angmom0, o1axis), angmomComponent(angmom1, o1axis), exponent0, exponent1, component(position0, o1axis), component(position1, o1axis), component(productCentre, o1axis))
	if err != nil {
		return 0, err
	}

	coefficient := centreCoefficient * overlapNorm3D(exponent0, exponent1)
	return coefficient * other0 * other1 * (contribMM + contribPM + contribMP + contribPP), nil
}

// kineticContraction returns the kinetic-energy integral between two
// normalised primitive Cartesian Gaussians.
func kineticContraction(angmom0, angmom1 AngularMomentum, position0, position1 Vec3, exponent0, exponent1 float64) (float64, error) {
	measureutil.Inc(measureutil.PrimitiveIntegrals)
	productCentre, coeffProduct := gaussianProduct(position0, position1, exponent0, exponent1)

	sum := 0.0
	for axis := 0; axis < 3; axis++ {
		t, err := unnormalizedKinetic1D(axis, angmom0, angmom1, position0, position1, productCentre, exponent0, exponent1, coeffProduct)
		if err != nil {
			return 0, err
		}
		sum += t
	}

	norm0 := gaussianNorm(angmom0, exponent0)
	norm1 := gaussianNorm(angmom1, exponent1)
	return norm0 * norm1 * sum, nil
}

// KineticMatrix builds the kinetic-energy matrix T.
func KineticMatrix(basis Basis) (*Matrix, error) {
	n := basis.Len()
	t := NewMatrix(n, n)

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			value, err := contractedKinetic(basis[i], basis[j])
			if err != nil {
				return nil, err
			}
			t.Set(i, j, value)
			t.Set(j, i, value)
		}
	}
	return t, nil
}

func contractedKinetic(bf0, bf1 BasisFunction) (float64, error) {
	total := 0.0
	for _, p0 := range bf0.Primitives {
		for _, p1 := range bf1.Primitives {
			v, err := kineticContraction(bf0.AngMom, bf1.AngMom, bf0.Centre, bf1.Centre, p0.Alpha, p1.Alpha)
			if err != nil {
				return 0, err
			}
			total += p0.Coefficient * p1.Coefficient * v
		}
	}
	return total, nil
}

package rhf

import (
	"math"

	"hartreefock/measureutil"
)

// nuclearAFactor is the "A-factor" of Cook's Handbook of Computational
// Quantum Chemistry (p. 227) for one Cartesian direction of the
// nuclear-attraction integral.
func nuclearAFactor(idxL, idxR, idxI, angmom0, angmom1 int64, diff0, diff1, diffNuclear, epsilon float64) (float64, error) {
	idxN := idxL - 2*(idxR+idxI)

	sign := negOnePow(idxL + idxI)
	expansion, err := fCoefficient(idxL, angmom0, angmom1, diff0, diff1)
	if err != nil {
		return 0, err
	}
	epsilonExp := math.Pow(epsilon, float64(idxR+idxI))
	diffNExp := math.Pow(diffNuclear, float64(idxN))

	numerator := sign * float64(factorial(idxL)) * expansion * epsilonExp * diffNExp
	denominator := float64(factorial(idxR) * factorial(idxI) * factorial(idxN))
	return numerator / denominator, nil
}

// nuclearContraction returns the nuclear-attraction integral between two
// normalised primitive Cartesian Gaussians and a point charge, following
// Cook's A-factor expansion with the Boys function folded in as the radial
// part of the Coulomb kernel.
func nuclearContraction(angmom0, angmom1 AngularMomentum, position0, position1, positionNuclear Vec3, exponent0, exponent1, nuclearCharge float64) (float64, error) {
	measureutil.Inc(measureutil.PrimitiveIntegrals)
	productCentre, coeffProduct := gaussianProduct(position0, position1, exponent0, exponent1)

	norm0 := gaussianNorm(angmom0, exponent0)
	norm1 := gaussianNorm(angmom1, exponent1)

	g := exponent0 + exponent1
	epsilon := 0.25 / g
	diffToNuclear := productCentre.sub(positionNuclear)
	boysArg := g * diffToNuclear.normSquared()

	diff0 := Vec3{productCentre.X - position0.X, productCentre.Y - position0.Y, productCentre.Z - position0.Z}
	diff1 := Vec3{productCentre.X - position1.X, productCentre.Y - position1.Y, productCentre.Z - position1.Z}
	diffN := Vec3{productCentre.X - positionNuclear.X, productCentre.Y - positionNuclear.Y, productCentre.Z - positionNuclear.Z}

	integral := 0.0
	for ix := range NuclearIndices(angmom0.X, angmom1.X) {
		aX, err := nuclearAFactor(ix.L, ix.R, ix.I, angmom0.X, angmom1.X, diff0.X, diff1.X, diffN.X, epsilon)
		if err != nil {
			return 0, err
		}
		for iy := range NuclearIndices(angmom0.Y, angmom1.Y) {
			aY, err := nuclearAFactor(iy.L, iy.R, iy.I, angmom0.Y, angmom1.Y, diff0.Y, diff1.Y, diffN.Y, epsilon)
			if err != nil {
				return 0, err
			}
			for iz := range NuclearIndices(angmom0.Z, angmom1.Z) {
				aZ, err := nuclearAFactor(iz.L, iz.R, iz.I, angmom0.Z, angmom1.Z, diff0.Z, diff1.Z, diffN.Z, epsilon)
				if err != nil {
					return 0, err
				}

				boysOrder := ix.L + iy.L + iz.L - 2*(ix.R+iy.R+iz.R) - (ix.I + iy.I + iz.I)
				boysValue, err := boys(boysOrder, boysArg)
				if err != nil {
					return 0, err
				}

				integral += aX * aY * aZ * boysValue
			}
		}
	}

	return -(2.0 * math.Pi / g) * coeffProduct * nuclearCharge * norm0 * norm1 * integral, nil
}

// NuclearAttractionMatrix builds V, the sum over every nucleus of the
// nuclear-attraction contribution to the core Hamiltonian.
func NuclearAttractionMatrix(basis Basis, atoms []Atom) (*Matrix, error) {
	n := basis.Len()
	v := NewMatrix(n, n)

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			value := 0.0
			for _, atom := range atoms {
				contribution, err := contractedNuclear(basis[i], basis[j], atom)
				if err != nil {
					return nil, err
				}
				value += contribution
			}
			v.Set(i, j, value)
			v.Set(j, i, value)
		}
	}
	return v, nil
}

func contractedNuclear(bf0, bf1 BasisFunction, atom Atom) (float64, error) {
	total := 0.0
	for _, p0 := range bf0.Primitives {
		for _, p1 := range bf1.Primitives {
			v, err := nuclearContraction(bf0.AngMom, bf1.AngMom, bf0.Centre, bf1.Centre, atom.Position, p0.Alpha, p1.Alpha, float64(atom.AtomicNumber))
			if err != nil {
				return 0, err
			}
			total += p0.Coefficient * p1.Coefficient * v
		}
	}
	return total, nil
}

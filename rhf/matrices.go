package rhf

import (
	"time"

	"hartreefock/prof"
)

// CoreHamiltonianMatrix returns H_core = T + sum_atoms V_atom.
func CoreHamiltonianMatrix(basis Basis, atoms []Atom) (*Matrix, error) {
	defer prof.Track(time.Now(), "core_hamiltonian_matrix")

	t, err := KineticMatrix(basis)
	if err != nil {
		return nil, err
	}
	v, err := NuclearAttractionMatrix(basis, atoms)
	if err != nil {
		return nil, err
	}

	n := basis.Len()
	h := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			h.Set(i, j, t.At(i, j)+v.At(i, j))
		}
	}
	return h, nil
}

// BuildTwoElectronStore evaluates and caches every distinct two-electron
// integral (ij|kl) needed over the given basis, deduplicated across the
// integral's eight-fold permutational symmetry.
func BuildTwoElectronStore(basis Basis) (*TwoElectronStore, error) {
	defer prof.Track(time.Now(), "two_electron_integral_grid")

	store := NewTwoElectronStore()
	n := basis.Len()

	for i0 := 0; i0 < n; i0++ {
		for i1 := 0; i1 < n; i1++ {
			for i2 := 0; i2 < n; i2++ {
				for i3 := 0; i3 < n; i3++ {
					_, err := store.GetOrCompute(i0, i1, i2, i3, func() (float64, error) {
						return contractedTwoElectron(basis[i0], basis[i1], basis[i2], basis[i3])
					})
					if err != nil {
						return nil, err
					}
				}
			}
		}
	}
	return store, nil
}

func contractedTwoElectron(bf0, bf1, bf2, bf3 BasisFunction) (float64, error) {
	total := 0.0
	for _, p0 := range bf0.Primitives {
		for _, p1 := range bf1.Primitives {
			for _, p2 := range bf2.Primitives {
				for _, p3 := range bf3.Primitives {
					coeff := p0.Coefficient * p1.Coefficient * p2.Coefficient * p3.Coefficient
					v, err := twoElectronContraction(
						bf0.AngMom, bf1.AngMom, bf2.AngMom, bf3.AngMom,
						bf0.Centre, bf1.Centre, bf2.Centre, bf3.Centre,
						p0.Alpha, p1.Alpha, p2.Alpha, p3.Alpha,
					)
					if err != nil {
						return 0, err
					}
					total += coeff * v
				}
			}
		}
	}
	return total, nil
}

// electronRepulsionMatrix builds G, the two-electron contribution to the
// Fock matrix, from the current density matrix and the cached two-electron
// integrals: G_ij = sum_kl P_kl [(ij|kl) - 0.5(il|kj)].
func electronRepulsionMatrix(basis Basis, density *Matrix, store *TwoElectronStore) (*Matrix, error) {
	n := basis.Len()
	g := NewMatrix(n, n)

	for i0 := 0; i0 < n; i0++ {
		for i1 := 0; i1 < n; i1++ {
			element := 0.0
			for i2 := 0; i2 < n; i2++ {
				for i3 := 0; i3 < n; i3++ {
					densityPart := density.At(i2, i3)

					coulomb, err := store.GetOrCompute(i0, i1, i2, i3, func() (float64, error) {
						return contractedTwoElectron(basis[i0], basis[i1], basis[i2], basis[i3])
					})
					if err != nil {
						return nil, err
					}
					exchange, err := store.GetOrCompute(i0, i3, i2, i1, func() (float64, error) {
						return contractedTwoElectron(basis[i0], basis[i3], basis[i2], basis[i1])
					})
					if err != nil {
						return nil, err
					}

					element += densityPart * (coulomb - 0.5*exchange)
				}
			}
			g.Set(i0, i1, element)
		}
	}
	return g, nil
}

// FockMatrix returns F = H_core + G(P), built from the current density.
func FockMatrix(basis Basis, density, coreHamiltonian *Matrix, store *TwoElectronStore) (*Matrix, error) {
	defer prof.Track(time.Now(), "fock_matrix")

	g, err := electronRepulsionMatrix(basis, density, store)
	if err != nil {
		return nil, err
	}

	n := basis.Len()
	f := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			f.Set(i, j, coreHamiltonian.At(i, j)+g.At(i, j))
		}
	}
	return f, nil
}

// RestrictedDensityMatrix builds P from the occupied columns (the lowest
// nElectrons/2) of a coefficient matrix, P_ij = 2 sum_{occ} C_i,occ C_j,occ.
func RestrictedDensityMatrix(coefficients *Matrix, nElectrons int) (*Matrix, error) {
	if nElectrons%2 != 0 {
		return nil, domainErrorf("restricted density matrix: electron count %d must be even for a closed-shell reference", nElectrons)
	}

	n := coefficients.Cols()
	half := nElectrons / 2
	density := NewMatrix(n, n)

	for i0 := 0; i0 < n; i0++ {
		for i1 := i0; i1 < n; i1++ {
			element := 0.0
			for j := 0; j < half; j++ {
				element += coefficients.At(i0, j) * coefficients.At(i1, j)
			}
			result := 2.0 * element
			density.Set(i0, i1, result)
			density.Set(i1, i0, result)
		}
	}
	return density, nil
}

package rhf

import (
	"math"
)

// InitialGuess selects how the first density matrix of an SCF run is
// produced.
type InitialGuess int

const (
	// ZeroGuess starts from the zero density matrix.
	ZeroGuess InitialGuess = iota
	// CoreHamiltonianGuess starts from the density built by diagonalizing
	// the core Hamiltonian directly, ignoring electron-electron repulsion.
	CoreHamiltonianGuess
	// ExtendedHuckelGuess starts from a density built by diagonalizing an
	// extended-Huckel approximation to the Fock matrix.
	ExtendedHuckelGuess
)

// SCFConfig parameters one self-consistent-field run.
type SCFConfig struct {
	Guess          InitialGuess
	HuckelConstant float64
	Tolerance      float64
	MaxIterations  int
}

// DefaultHuckelConstant is the conventional extended-Huckel scaling factor
// (Wolfsberg-Helmholz K), used when SCFConfig.HuckelConstant is left zero.
const DefaultHuckelConstant = 1.75

// DefaultTolerance is the ||dP|| convergence threshold used when
// SCFConfig.Tolerance is left zero.
const DefaultTolerance = 1.0e-6

// DefaultMaxIterations bounds the SCF loop when SCFConfig.MaxIterations is
// left zero.
const DefaultMaxIterations = 100

// IterationRecord captures the state of one SCF iteration, kept so the full
// convergence history can be inspected or plotted after a run.
type IterationRecord struct {
	Index        int
	DeltaP       float64
	ElectronicE  float64
	TotalE       float64
}

// Result is the outcome of a converged SCF run.
type Result struct {
	Density         *Matrix
	Fock            *Matrix
	CoreHamiltonian *Matrix
	Coefficients    *Matrix
	OrbitalEnergies []float64
	ElectronicEnergy float64
	NuclearEnergy    float64
	TotalEnergy      float64
	Iterations       []IterationRecord
}

func (c SCFConfig) withDefaults() SCFConfig {
	if c.HuckelConstant == 0 {
		c.HuckelConstant = DefaultHuckelConstant
	}
	if c.Tolerance == 0 {
		c.Tolerance = DefaultTolerance
	}
	if c.MaxIterations == 0 {
		c.MaxIterations = DefaultMaxIterations
	}
	return c
}

// initialDensity builds the starting density matrix for the configured
// guess strategy.
func initialDensity(cfg SCFConfig, basis Basis, overlap, coreHamiltonian, transform *Matrix, nElectrons int) (*Matrix, error) {
	n := basis.Len()

	switch cfg.Guess {
	case ZeroGuess:
		return NewMatrix(n, n), nil

	case CoreHamiltonianGuess:
		return densityFromFock(coreHamiltonian, transform, nElectrons)

	case ExtendedHuckelGuess:
		huckelFock := extendedHuckelGuess(overlap, coreHamiltonian, cfg.HuckelConstant)
		return densityFromFock(huckelFock, transform, nElectrons)

	default:
		return nil, configErrorf("initial density: unrecognized guess strategy %d", cfg.Guess)
	}
}

// extendedHuckelGuess builds the Wolfsberg-Helmholz approximate Fock matrix
// F_ij = K * S_ij * (H_ii + H_jj) / 2.
func extendedHuckelGuess(overlap, coreHamiltonian *Matrix, huckelConstant float64) *Matrix {
	n := overlap.Rows()
	f := NewMatrix(n, n)
	for i0 := 0; i0 < n; i0++ {
		for i1 := 0; i1 < n; i1++ {
			avg := 0.5 * (coreHamiltonian.At(i0, i0) + coreHamiltonian.At(i1, i1))
			f.Set(i0, i1, huckelConstant*overlap.At(i0, i1)*avg)
		}
	}
	return f
}

// densityFromFock diagonalizes a Fock-like matrix in the orthogonalized
// basis and returns the resulting restricted density matrix, following the
// same transform-diagonalize-sort-backtransform path as every SCF step.
func densityFromFock(fock, transform *Matrix, nElectrons int) (*Matrix, error) {
	coefficients, _, err := diagonalizeFock(fock, transform)
	if err != nil {
		return nil, err
	}
	return RestrictedDensityMatrix(coefficients, nElectrons)
}

// diagonalizeFock transforms fock into the orthogonalized basis, diagonalizes
// it, sorts the resulting eigenpairs by ascending orbital energy, and
// back-transforms the eigenvectors into the original AO basis.
func diagonalizeFock(fock, transform *Matrix) (coefficients *Matrix, orbitalEnergies []float64, err error) {
	transformT := transform.Transpose()
	step1, err := transformT.Mul(fock)
	if err != nil {
		return nil, nil, err
	}
	fockOrtho, err := step1.Mul(transform)
	if err != nil {
		return nil, nil, err
	}

	eig, err := SymmetricEigendecompose(fockOrtho)
	if err != nil {
		return nil, nil, err
	}

	order := sortIndices(eig.Values)
	sortedVectors, err := matrixWithSortedColumns(eig.Vectors, order)
	if err != nil {
		return nil, nil, err
	}

	sortedValues := make([]float64, len(order))
	for i, idx := range order {
		sortedValues[i] = eig.Values[idx]
	}

	coefficients, err = transform.Mul(sortedVectors)
	if err != nil {
		return nil, nil, err
	}
	return coefficients, sortedValues, nil
}

// densityDifference returns the half-root-sum-square difference between two
// density matrices, the SCF driver's convergence measure.
func densityDifference(oldDensity, newDensity *Matrix) (float64, error) {
	sumSq, err := oldDensity.FrobeniusDelta(newDensity)
	if err != nil {
		return 0, err
	}
	return 0.5 * math.Sqrt(sumSq), nil
}

// ElectronicEnergy returns 0.5 * sum_ij P_ij (F_ij + H_ij).
func ElectronicEnergy(density, fock, coreHamiltonian *Matrix) float64 {
	n := density.Rows()
	energy := 0.0
	for i0 := 0; i0 < n; i0++ {
		for i1 := 0; i1 < n; i1++ {
			energy += 0.5 * density.At(i0, i1) * (fock.At(i0, i1) + coreHamiltonian.At(i0, i1))
		}
	}
	return energy
}

// NuclearRepulsionEnergy returns the classical point-charge repulsion
// energy summed over every distinct pair of nuclei.
func NuclearRepulsionEnergy(atoms []Atom) float64 {
	energy := 0.0
	for i0 := 0; i0 < len(atoms)-1; i0++ {
		for i1 := i0 + 1; i1 < len(atoms); i1++ {
			d := atoms[i0].Position.distance(atoms[i1].Position)
			energy += float64(atoms[i0].AtomicNumber*atoms[i1].AtomicNumber) / d
		}
	}
	return energy
}

// RunSCF runs the restricted Hartree-Fock self-consistent-field loop to
// convergence over the given basis, atoms, and electron count, returning a
// NonConvergenceError (not a panic) if MaxIterations is reached first.
func RunSCF(basis Basis, atoms []Atom, nElectrons int, cfg SCFConfig) (*Result, error) {
	cfg = cfg.withDefaults()

	if nElectrons < 0 {
		return nil, domainErrorf("run scf: electron count %d must be non-negative", nElectrons)
	}
	for i, bf := range basis {
		if bf.AngMom.X < 0 || bf.AngMom.Y < 0 || bf.AngMom.Z < 0 || bf.AngMom.Total() >= binomialTableSize {
			return nil, domainErrorf("run scf: basis function %d angular momentum %+v outside supported range", i, bf.AngMom)
		}
		for _, p := range bf.Primitives {
			if p.Alpha <= 0 {
				return nil, domainErrorf("run scf: basis function %d has non-positive exponent %g", i, p.Alpha)
			}
		}
	}

	overlap, err := OverlapMatrix(basis)
	if err != nil {
		return nil, err
	}
	transform, err := OrthogonalizationMatrix(overlap)
	if err != nil {
		return nil, err
	}
	coreHamiltonian, err := CoreHamiltonianMatrix(basis, atoms)
	if err != nil {
		return nil, err
	}
	store, err := BuildTwoElectronStore(basis)
	if err != nil {
		return nil, err
	}

	density, err := initialDensity(cfg, basis, overlap, coreHamiltonian, transform, nElectrons)
	if err != nil {
		return nil, err
	}

	nuclearEnergy := NuclearRepulsionEnergy(atoms)

	var fock *Matrix
	var coefficients *Matrix
	var orbitalEnergies []float64
	var history []IterationRecord

	for iteration := 1; iteration <= cfg.MaxIterations; iteration++ {
		fock, err = FockMatrix(basis, density, coreHamiltonian, store)
		if err != nil {
			return nil, err
		}

		coefficients, orbitalEnergies, err = diagonalizeFock(fock, transform)
		if err != nil {
			return nil, err
		}

		newDensity, err := RestrictedDensityMatrix(coefficients, nElectrons)
		if err != nil {
			return nil, err
		}

		deltaP, err := densityDifference(density, newDensity)
		if err != nil {
			return nil, err
		}

		electronicEnergy := ElectronicEnergy(newDensity, fock, coreHamiltonian)
		record := IterationRecord{
			Index:       iteration,
			DeltaP:      deltaP,
			ElectronicE: electronicEnergy,
			TotalE:      electronicEnergy + nuclearEnergy,
		}
		history = append(history, record)
		dbg(debugWriter, "iteration %3d: dP=%.3e E_elec=%.8f E_tot=%.8f\n", iteration, deltaP, electronicEnergy, record.TotalE)

		density = newDensity

		if deltaP < cfg.Tolerance {
			return &Result{
				Density:          density,
				Fock:             fock,
				CoreHamiltonian:  coreHamiltonian,
				Coefficients:     coefficients,
				OrbitalEnergies:  orbitalEnergies,
				ElectronicEnergy: electronicEnergy,
				NuclearEnergy:    nuclearEnergy,
				TotalEnergy:      record.TotalE,
				Iterations:       history,
			}, nil
		}
	}

	last := history[len(history)-1]
	return nil, &NonConvergenceError{
		Iterations: cfg.MaxIterations,
		DeltaP:     last.DeltaP,
		Tolerance:  cfg.Tolerance,
	}
}

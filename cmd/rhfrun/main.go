// Command rhfrun runs a restricted Hartree-Fock self-consistent-field
// calculation from a JSON molecule/configuration file and prints the
// iteration count, the resulting energies, and the run's work counters and
// timings.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"hartreefock/internal/sto3g"
	"hartreefock/measureutil"
	"hartreefock/prof"
	"hartreefock/rhf"
)

const (
	exitOK             = 0
	exitConfigError    = 1
	exitNonConvergence = 2
	exitNumericError   = 3
)

type atomInput struct {
	Symbol string  `json:"symbol"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Z      float64 `json:"z"`
}

type runInput struct {
	Atoms          []atomInput `json:"atoms"`
	Electrons      int         `json:"electrons"`
	Guess          string      `json:"guess"`
	Tolerance      float64     `json:"tolerance"`
	MaxIterations  int         `json:"max_iterations"`
	HuckelConstant float64     `json:"huckel_constant"`
}

func guessFromName(name string) (rhf.InitialGuess, error) {
	switch name {
	case "", "zero":
		return rhf.ZeroGuess, nil
	case "core_hamiltonian":
		return rhf.CoreHamiltonianGuess, nil
	case "extended_huckel":
		return rhf.ExtendedHuckelGuess, nil
	default:
		return 0, fmt.Errorf("unrecognized guess strategy %q", name)
	}
}

func run(path string) (*rhf.Result, rhf.Fingerprint, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, rhf.Fingerprint{}, fmt.Errorf("read config: %w", err)
	}

	var input runInput
	if err := json.Unmarshal(raw, &input); err != nil {
		return nil, rhf.Fingerprint{}, fmt.Errorf("parse config: %w", err)
	}

	specs := make([]sto3g.AtomSpec, len(input.Atoms))
	for i, a := range input.Atoms {
		specs[i] = sto3g.AtomSpec{Symbol: a.Symbol, Position: rhf.Vec3{X: a.X, Y: a.Y, Z: a.Z}}
	}

	atoms, basis, err := sto3g.Build(specs)
	if err != nil {
		return nil, rhf.Fingerprint{}, fmt.Errorf("build basis: %w", err)
	}

	guess, err := guessFromName(input.Guess)
	if err != nil {
		return nil, rhf.Fingerprint{}, err
	}

	cfg := rhf.SCFConfig{
		Guess:          guess,
		Tolerance:      input.Tolerance,
		MaxIterations:  input.MaxIterations,
		HuckelConstant: input.HuckelConstant,
	}

	fingerprint := rhf.RunFingerprint(atoms, basis, input.Electrons, cfg)
	log.Printf("[fp=%s] starting run: %d atoms, %d basis functions, %d electrons", fingerprint, len(atoms), basis.Len(), input.Electrons)

	result, err := rhf.RunSCF(basis, atoms, input.Electrons, cfg)
	return result, fingerprint, err
}

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: rhfrun <config.json>")
		os.Exit(exitConfigError)
	}

	result, fingerprint, err := run(flag.Arg(0))
	if err != nil {
		var nonConv *rhf.NonConvergenceError
		if errors.As(err, &nonConv) {
			log.Printf("[fp=%s] SCF did not converge: %v", fingerprint, nonConv)
			os.Exit(exitNonConvergence)
		}

		var numeric *rhf.NumericError
		var domain *rhf.DomainError
		var rng *rhf.RangeError
		if errors.As(err, &numeric) || errors.As(err, &domain) || errors.As(err, &rng) {
			log.Printf("[fp=%s] numerical failure: %v", fingerprint, err)
			os.Exit(exitNumericError)
		}

		log.Printf("[fp=%s] configuration error: %v", fingerprint, err)
		os.Exit(exitConfigError)
	}

	fmt.Printf("fingerprint:       %s\n", fingerprint)
	fmt.Printf("converged in %d iterations\n", len(result.Iterations))
	fmt.Printf("electronic energy: %.8f Hartree\n", result.ElectronicEnergy)
	fmt.Printf("nuclear repulsion: %.8f Hartree\n", result.NuclearEnergy)
	fmt.Printf("total energy:      %.8f Hartree\n", result.TotalEnergy)

	reportWork()
	os.Exit(exitOK)
}

// reportWork prints how much integral-evaluation and timing work the run
// actually did, draining the package-level counters and timing entries that
// measureutil and prof accumulated during the run.
func reportWork() {
	counts := measureutil.SnapshotAndReset()
	fmt.Printf("boys evaluations:       %d\n", counts[measureutil.BoysEvaluations])
	fmt.Printf("primitive integrals:    %d\n", counts[measureutil.PrimitiveIntegrals])
	fmt.Printf("two-electron cache hit: %d\n", counts[measureutil.TwoElectronCacheHit])
	fmt.Printf("two-electron cache miss:%d\n", counts[measureutil.TwoElectronCacheMiss])

	for _, entry := range prof.SnapshotAndReset() {
		fmt.Printf("timing: %-24s %v\n", entry.Label, entry.Dur)
	}
}

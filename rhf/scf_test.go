package rhf

import "testing"

func TestRestrictedDensityMatrixRejectsOddElectronCount(t *testing.T) {
	c := Identity(2)
	if _, err := RestrictedDensityMatrix(c, 3); err == nil {
		t.Fatalf("expected domain error for odd electron count")
	}
}

func TestRunSCFReportsNonConvergence(t *testing.T) {
	// A single s-function basis on one hydrogen atom, run with an
	// artificially tiny iteration cap, must report non-convergence rather
	// than silently returning a partially-converged result.
	basis := Basis{
		{AtomIndex: 0, AngMom: AngularMomentum{}, Centre: Vec3{}, Primitives: []Primitive{
			{Coefficient: 0.4446345422, Alpha: 0.168856},
			{Coefficient: 0.5353281423, Alpha: 0.623913},
			{Coefficient: 0.1543289673, Alpha: 3.42525},
		}},
	}
	atoms := []Atom{{AtomicNumber: 1, Position: Vec3{}}}

	_, err := RunSCF(basis, atoms, 2, SCFConfig{MaxIterations: 0 + 1, Tolerance: 1e-14})
	if err == nil {
		t.Fatalf("expected non-convergence with a single-iteration budget and an impossibly tight tolerance")
	}
	var nonConv *NonConvergenceError
	if ok := asNonConvergence(err, &nonConv); !ok {
		t.Fatalf("expected *NonConvergenceError, got %T: %v", err, err)
	}
}

func asNonConvergence(err error, target **NonConvergenceError) bool {
	if nc, ok := err.(*NonConvergenceError); ok {
		*target = nc
		return true
	}
	return false
}

func TestInitialDensityRejectsUnknownGuess(t *testing.T) {
	basis := Basis{
		{AtomIndex: 0, AngMom: AngularMomentum{}, Centre: Vec3{}, Primitives: []Primitive{{Coefficient: 1.0, Alpha: 1.0}}},
	}
	overlap, err := OverlapMatrix(basis)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	transform, err := OrthogonalizationMatrix(overlap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h := NewMatrix(1, 1)

	_, err = initialDensity(SCFConfig{Guess: InitialGuess(99)}.withDefaults(), basis, overlap, h, transform, 2)
	if err == nil {
		t.Fatalf("expected config error for unrecognized guess strategy")
	}
}

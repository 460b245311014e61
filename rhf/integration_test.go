package rhf_test

import (
	"math"
	"testing"

	"hartreefock/internal/sto3g"
	"hartreefock/rhf"
)

func h2Basis(t *testing.T, separation float64) ([]rhf.Atom, rhf.Basis) {
	t.Helper()
	atoms, basis, err := sto3g.Build([]sto3g.AtomSpec{
		{Symbol: "H", Position: rhf.Vec3{X: 0, Y: 0, Z: 0}},
		{Symbol: "H", Position: rhf.Vec3{X: 0, Y: 0, Z: separation}},
	})
	if err != nil {
		t.Fatalf("build H2 basis: %v", err)
	}
	return atoms, basis
}

func TestH2TwoElectronIntegralTable(t *testing.T) {
	_, basis := h2Basis(t, 1.4)

	store, err := rhf.BuildTwoElectronStore(basis)
	if err != nil {
		t.Fatalf("build two-electron store: %v", err)
	}

	want := map[[4]int]float64{
		{0, 0, 0, 0}: 0.774608,
		{0, 0, 0, 1}: 0.444109,
		{0, 0, 1, 1}: 0.569678,
		{0, 1, 0, 1}: 0.297029,
		{1, 1, 1, 1}: 0.774608,
	}

	cacheSizeBefore := store.Len()

	for key, expected := range want {
		got, err := store.GetOrCompute(key[0], key[1], key[2], key[3], func() (float64, error) {
			t.Fatalf("value for %v should already be cached by BuildTwoElectronStore", key)
			return 0, nil
		})
		if err != nil {
			t.Fatalf("GetOrCompute(%v): %v", key, err)
		}
		if math.Abs(got-expected) > 1e-4 {
			t.Fatalf("(%d%d|%d%d) = %g, want %g", key[0], key[1], key[2], key[3], got, expected)
		}
	}

	if store.Len() != cacheSizeBefore {
		t.Fatalf("lookups of already-cached integrals should not grow the store")
	}
}

func TestH2OverlapMatrixNormalizedDiagonal(t *testing.T) {
	_, basis := h2Basis(t, 1.4)
	s, err := rhf.OverlapMatrix(basis)
	if err != nil {
		t.Fatalf("overlap matrix: %v", err)
	}
	for i := 0; i < basis.Len(); i++ {
		if s.At(i, i) != 1.0 {
			t.Fatalf("S[%d][%d] = %g, want exactly 1 (set, not recomputed)", i, i, s.At(i, i))
		}
	}
}

func TestH2SCFConvergesToKnownEnergy(t *testing.T) {
	atoms, basis := h2Basis(t, 1.4)

	result, err := rhf.RunSCF(basis, atoms, 2, rhf.SCFConfig{
		Guess:         rhf.ZeroGuess,
		Tolerance:     1e-8,
		MaxIterations: 100,
	})
	if err != nil {
		t.Fatalf("SCF did not converge: %v", err)
	}

	want := -1.1167
	if math.Abs(result.TotalEnergy-want) > 1e-3 {
		t.Fatalf("H2 total energy = %g, want approximately %g", result.TotalEnergy, want)
	}
}

func TestHeHPlusSCFConverges(t *testing.T) {
	atoms, basis, err := sto3g.Build([]sto3g.AtomSpec{
		{Symbol: "He", Position: rhf.Vec3{X: 0, Y: 0, Z: 0}},
		{Symbol: "H", Position: rhf.Vec3{X: 0, Y: 0, Z: 1.4632}},
	})
	if err != nil {
		t.Fatalf("build HeH+ basis: %v", err)
	}

	result, err := rhf.RunSCF(basis, atoms, 2, rhf.SCFConfig{
		Guess:         rhf.ZeroGuess,
		Tolerance:     1e-8,
		MaxIterations: 100,
	})
	if err != nil {
		t.Fatalf("SCF did not converge: %v", err)
	}
	if math.IsNaN(result.TotalEnergy) || math.IsInf(result.TotalEnergy, 0) {
		t.Fatalf("HeH+ total energy is not finite: %g", result.TotalEnergy)
	}

	density := result.Density
	eig, err := rhf.SymmetricEigendecompose(density)
	if err != nil {
		t.Fatalf("density eigendecompose: %v", err)
	}
	for i, v := range eig.Values {
		if v < -1e-8 {
			t.Fatalf("density eigenvalue %d is negative: %g", i, v)
		}
	}
}

func TestWaterSCFConvergesWithExtendedHuckelGuess(t *testing.T) {
	const bohrPerAngstrom = 1.0 / 0.529177
	yH := 0.751155 / 0.529177
	zH := 0.465285 / 0.529177
	zO := 0.116321 / 0.529177
	_ = bohrPerAngstrom

	atoms, basis, err := sto3g.Build([]sto3g.AtomSpec{
		{Symbol: "O", Position: rhf.Vec3{X: 0, Y: 0, Z: zO}},
		{Symbol: "H", Position: rhf.Vec3{X: 0, Y: yH, Z: zH}},
		{Symbol: "H", Position: rhf.Vec3{X: 0, Y: -yH, Z: zH}},
	})
	if err != nil {
		t.Fatalf("build water basis: %v", err)
	}

	result, err := rhf.RunSCF(basis, atoms, 10, rhf.SCFConfig{
		Guess:         rhf.ExtendedHuckelGuess,
		Tolerance:     1e-8,
		MaxIterations: 30,
	})
	if err != nil {
		t.Fatalf("water SCF did not converge within 30 iterations: %v", err)
	}

	want := -74.942
	if math.Abs(result.TotalEnergy-want) > 5e-2 {
		t.Fatalf("water total energy = %g, want approximately %g (Szabo-Ostlund)", result.TotalEnergy, want)
	}
}

func TestFingerprintDeterministic(t *testing.T) {
	atoms, basis := h2Basis(t, 1.4)
	cfg := rhf.SCFConfig{Guess: rhf.ZeroGuess, Tolerance: 1e-8, MaxIterations: 100}

	f1 := rhf.RunFingerprint(atoms, basis, 2, cfg)
	f2 := rhf.RunFingerprint(atoms, basis, 2, cfg)
	if f1 != f2 {
		t.Fatalf("fingerprint not deterministic: %s vs %s", f1, f2)
	}

	atomsOther, basisOther := h2Basis(t, 1.5)
	f3 := rhf.RunFingerprint(atomsOther, basisOther, 2, cfg)
	if f1 == f3 {
		t.Fatalf("fingerprint did not change with geometry")
	}
}

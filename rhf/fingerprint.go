package rhf

import (
	"encoding/binary"
	"fmt"
	"math"

	"golang.org/x/crypto/sha3"
)

// Fingerprint is a content hash over a run's atoms, basis, and SCF
// configuration. Two runs with identical Fingerprints are defined to
// produce identical Results, which makes it useful as a cache key or a
// reproducibility check when comparing runs across machines.
type Fingerprint [32]byte

// String renders the fingerprint as a hex string.
func (f Fingerprint) String() string {
	return fmt.Sprintf("%x", f[:])
}

// RunFingerprint hashes the atoms, basis, and configuration of an SCF run
// with SHAKE-256, squeezing a 32-byte digest. Every float64 is written in
// its raw IEEE-754 bit pattern rather than a formatted string, so the
// fingerprint is sensitive to the exact numeric input rather than to
// incidental formatting choices.
func RunFingerprint(atoms []Atom, basis Basis, nElectrons int, cfg SCFConfig) Fingerprint {
	h := sha3.NewShake256()

	writeInt64(h, int64(len(atoms)))
	for _, atom := range atoms {
		writeInt64(h, atom.AtomicNumber)
		writeFloat64(h, atom.Position.X)
		writeFloat64(h, atom.Position.Y)
		writeFloat64(h, atom.Position.Z)
	}

	writeInt64(h, int64(len(basis)))
	for _, bf := range basis {
		writeInt64(h, int64(bf.AtomIndex))
		writeInt64(h, bf.AngMom.X)
		writeInt64(h, bf.AngMom.Y)
		writeInt64(h, bf.AngMom.Z)
		writeFloat64(h, bf.Centre.X)
		writeFloat64(h, bf.Centre.Y)
		writeFloat64(h, bf.Centre.Z)
		writeInt64(h, int64(len(bf.Primitives)))
		for _, p := range bf.Primitives {
			writeFloat64(h, p.Coefficient)
			writeFloat64(h, p.Alpha)
		}
	}

	writeInt64(h, int64(nElectrons))
	writeInt64(h, int64(cfg.Guess))
	writeFloat64(h, cfg.HuckelConstant)
	writeFloat64(h, cfg.Tolerance)
	writeInt64(h, int64(cfg.MaxIterations))

	var digest Fingerprint
	if _, err := h.Read(digest[:]); err != nil {
		panic(fmt.Errorf("rhf: fingerprint squeeze failed: %w", err))
	}
	return digest
}

func writeInt64(h sha3.ShakeHash, v int64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	if _, err := h.Write(buf[:]); err != nil {
		panic(fmt.Errorf("rhf: fingerprint write: %w", err))
	}
}

func writeFloat64(h sha3.ShakeHash, v float64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
	if _, err := h.Write(buf[:]); err != nil {
		panic(fmt.Errorf("rhf: fingerprint write: %w", err))
	}
}

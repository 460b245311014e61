package rhf

import "iter"

// NuclearIndex is one (L, R, I) tuple yielded by NuclearIndices, matching
// the nested-loop index space of the nuclear-attraction A-factor.
type NuclearIndex struct {
	L, R, I int64
}

// NuclearIndices enumerates the index space used by the nuclear-attraction
// A-factor for one Cartesian direction: 0 <= L <= angmom0+angmom1,
// 0 <= R <= L/2, 0 <= I <= (L-2R)/2. Expressing this as a lazy forward
// sequence flattens what would otherwise be a triple-nested loop at every
// call site into a single range-over-func loop.
func NuclearIndices(angmom0, angmom1 int64) iter.Seq[NuclearIndex] {
	lMax := angmom0 + angmom1
	return func(yield func(NuclearIndex) bool) {
		for l := int64(0); l <= lMax; l++ {
			rMax := l / 2
			for r := int64(0); r <= rMax; r++ {
				iMax := (l - 2*r) / 2
				for i := int64(0); i <= iMax; i++ {
					if !yield(NuclearIndex{L: l, R: r, I: i}) {
						return
					}
				}
			}
		}
	}
}

// TwoElectronIndex is one 5-tuple (L01, R01, L23, R23, I) yielded by
// TwoElectronIndices, matching the nested-loop index space of the
// electron-repulsion B-factor.
type TwoElectronIndex struct {
	L01, R01, L23, R23, I int64
}

// TwoElectronIndices enumerates the index space used by the two-electron
// B-factor for one Cartesian direction: 0 <= L01 <= angmomA+angmomB,
// 0 <= R01 <= L01/2; mirrored bounds for the (23) pair; and
// 0 <= I <= (L01+L23)/2 - R01 - R23. This replaces what would otherwise be
// a five-deep nested loop with a single range-over-func loop.
func TwoElectronIndices(angmomA, angmomB, angmomC, angmomD int64) iter.Seq[TwoElectronIndex] {
	l01Max := angmomA + angmomB
	l23Max := angmomC + angmomD
	return func(yield func(TwoElectronIndex) bool) {
		for l01 := int64(0); l01 <= l01Max; l01++ {
			r01Max := l01 / 2
			for r01 := int64(0); r01 <= r01Max; r01++ {
				for l23 := int64(0); l23 <= l23Max; l23++ {
					r23Max := l23 / 2
					for r23 := int64(0); r23 <= r23Max; r23++ {
						iMax := (l01+l23)/2 - r01 - r23
						for i := int64(0); i <= iMax; i++ {
							idx := TwoElectronIndex{L01: l01, R01: r01, L23: l23, R23: r23, I: i}
							if !yield(idx) {
								return
							}
						}
					}
				}
			}
		}
	}
}

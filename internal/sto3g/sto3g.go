// Package sto3g supplies the STO-3G minimal-basis contraction constants
// (Hehre, Stewart, Pople 1969) for the first two rows of the periodic
// table up to fluorine. It is example data for building inputs to the rhf
// package from a list of elements and positions, not part of the core
// numerical engine.
package sto3g

import (
	"fmt"

	"hartreefock/rhf"
)

// Element identifies a supported atom by symbol and atomic number.
type Element struct {
	Symbol       string
	AtomicNumber int64
}

var elements = map[string]Element{
	"H":  {"H", 1},
	"He": {"He", 2},
	"Li": {"Li", 3},
	"Be": {"Be", 4},
	"B":  {"B", 5},
	"C":  {"C", 6},
	"N":  {"N", 7},
	"O":  {"O", 8},
	"F":  {"F", 9},
}

// zetaOrbital1 is the Slater exponent used for every element's 1s orbital.
var zetaOrbital1 = map[string]float64{
	"H": 1.24, "He": 2.0925, "Li": 2.69, "Be": 3.68,
	"B": 4.68, "C": 5.67, "N": 6.67, "O": 7.66, "F": 8.65,
}

// zetaOrbital2 is the Slater exponent used for every element's valence
// (2s, 2p) shell; unset for H and He, which have no valence shell in the
// minimal basis.
var zetaOrbital2 = map[string]float64{
	"Li": 0.75, "Be": 1.10, "B": 1.45, "C": 1.72, "N": 1.95, "O": 2.25, "F": 2.55,
}

// gaussianConstants holds the three contraction coefficients and three
// unscaled exponents shared by every element for a given orbital shape;
// the actual primitive exponents are these unscaled values times zeta^2.
type gaussianConstants struct {
	coeff [3]float64
	expon [3]float64
}

var constantsS1 = gaussianConstants{
	coeff: [3]float64{0.4446345422e+00, 0.5353281423e+00, 0.1543289673e+00},
	expon: [3]float64{0.109818e+00, 0.405771e+00, 0.222766e+01},
}

var constantsS2 = gaussianConstants{
	coeff: [3]float64{0.7001154689e+00, 0.3995128261e+00, -0.9996722919e-01},
	expon: [3]float64{0.751386e-01, 0.231031e+00, 0.994203e+00},
}

var constantsP2 = gaussianConstants{
	coeff: [3]float64{0.3919573931e+00, 0.6076837186e+00, 0.1559162750e+00},
	expon: [3]float64{0.751386e-01, 0.231031e+00, 0.994203e+00},
}

func primitivesFrom(c gaussianConstants, zeta float64) []rhf.Primitive {
	out := make([]rhf.Primitive, 3)
	for i := range out {
		out[i] = rhf.Primitive{Coefficient: c.coeff[i], Alpha: c.expon[i] * zeta * zeta}
	}
	return out
}

// AtomSpec is one atom of a molecule to build a basis for: an element
// symbol and a position in Bohr.
type AtomSpec struct {
	Symbol   string
	Position rhf.Vec3
}

// Build returns the rhf.Atom list and STO-3G rhf.Basis for the given atoms,
// in the conventional minimal-basis shell order (1s, then 2s, then the
// three 2p Cartesian components) per atom, in input order.
func Build(specs []AtomSpec) ([]rhf.Atom, rhf.Basis, error) {
	atoms := make([]rhf.Atom, len(specs))
	var basis rhf.Basis

	for atomIndex, spec := range specs {
		element, ok := elements[spec.Symbol]
		if !ok {
			return nil, nil, &rhf.ConfigError{Msg: fmt.Sprintf("sto3g: unsupported element %q", spec.Symbol)}
		}
		atoms[atomIndex] = rhf.Atom{AtomicNumber: element.AtomicNumber, Position: spec.Position}

		zeta1 := zetaOrbital1[spec.Symbol]
		basis = append(basis, rhf.BasisFunction{
			AtomIndex:  atomIndex,
			AngMom:     rhf.AngularMomentum{X: 0, Y: 0, Z: 0},
			Centre:     spec.Position,
			Primitives: primitivesFrom(constantsS1, zeta1),
		})

		zeta2, hasValence := zetaOrbital2[spec.Symbol]
		if !hasValence {
			continue
		}

		basis = append(basis, rhf.BasisFunction{
			AtomIndex:  atomIndex,
			AngMom:     rhf.AngularMomentum{X: 0, Y: 0, Z: 0},
			Centre:     spec.Position,
			Primitives: primitivesFrom(constantsS2, zeta2),
		})

		for _, p := range []rhf.AngularMomentum{{X: 1}, {Y: 1}, {Z: 1}} {
			basis = append(basis, rhf.BasisFunction{
				AtomIndex:  atomIndex,
				AngMom:     p,
				Centre:     spec.Position,
				Primitives: primitivesFrom(constantsP2, zeta2),
			})
		}
	}

	return atoms, basis, nil
}

package rhf

// Atom is a nucleus: an atomic number and a position in Bohr.
type Atom struct {
	AtomicNumber int64
	Position     Vec3
}

// Primitive is one Gaussian primitive in a contraction: coefficient d and
// exponent Alpha, combined as d * exp(-Alpha * r^2) after normalisation.
type Primitive struct {
	Coefficient float64
	Alpha       float64
}

// BasisFunction is one contracted Cartesian-Gaussian basis function, centred
// on a named atom with a fixed angular-momentum triple and an ordered list
// of primitives.
type BasisFunction struct {
	AtomIndex int
	AngMom    AngularMomentum
	Centre    Vec3
	Primitives []Primitive
}

// Basis is an ordered sequence of basis functions. Matrix and integral
// routines index into it positionally, so the order fixes the row/column
// order of every matrix the core builds.
type Basis []BasisFunction

// Len returns the number of basis functions, i.e. the dimension of every
// matrix built over this basis.
func (b Basis) Len() int { return len(b) }

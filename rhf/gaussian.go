package rhf

import "math"

// Vec3 is a point or displacement in Bohr.
type Vec3 struct {
	X, Y, Z float64
}

func (a Vec3) sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func (a Vec3) normSquared() float64 {
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z
}

func (a Vec3) distance(b Vec3) float64 {
	return math.Sqrt(a.sub(b).normSquared())
}

// gaussianProduct applies the 3-D Gaussian product rule: the product of two
// unit-coefficient Gaussians centred at centre0/centre1 with exponents
// exponent0/exponent1 is a scalar times a single Gaussian at a new centre
// with the summed exponent.
func gaussianProduct(centre0, centre1 Vec3, exponent0, exponent1 float64) (centre Vec3, scalar float64) {
	g := exponent0 + exponent1
	centre = Vec3{
		X: (exponent0*centre0.X + exponent1*centre1.X) / g,
		Y: (exponent0*centre0.Y + exponent1*centre1.Y) / g,
		Z: (exponent0*centre0.Z + exponent1*centre1.Z) / g,
	}
	diff := centre0.sub(centre1)
	scalar = math.Exp(-exponent0 * exponent1 / g * diff.normSquared())
	return centre, scalar
}

// AngularMomentum is a Cartesian angular-momentum triple (lx, ly, lz).
// Intermediate kernel expressions subtract from these, so they are stored
// signed; a negative component marks a 1-D kernel contribution that is
// defined to vanish rather than being evaluated.
type AngularMomentum struct {
	X, Y, Z int64
}

// Total returns lx + ly + lz.
func (l AngularMomentum) Total() int64 { return l.X + l.Y + l.Z }

// gaussianNorm returns the Cartesian-Gaussian normalisation constant for the
// given angular-momentum triple and exponent:
//
//	N = (2a/pi)^(3/4) * (4a)^(L/2) / sqrt((2lx-1)!! (2ly-1)!! (2lz-1)!!)
//
// using the (-1)!! = 1 convention so an s-function (L=0) contributes a
// denominator of 1.
func gaussianNorm(l AngularMomentum, alpha float64) float64 {
	prefactor := math.Pow(2.0*alpha/math.Pi, 0.75)
	total := l.Total()
	numerator := math.Pow(4.0*alpha, float64(total)/2.0)
	denom := doubleFactorial(2*l.X-1) * doubleFactorial(2*l.Y-1) * doubleFactorial(2*l.Z-1)
	return prefactor * numerator / math.Sqrt(float64(denom))
}

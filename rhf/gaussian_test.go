package rhf

import (
	"math"
	"testing"
)

func TestGaussianProductAtIdenticalCentres(t *testing.T) {
	c := Vec3{X: 1, Y: 2, Z: 3}
	centre, scalar := gaussianProduct(c, c, 1.0, 2.0)
	if centre != c {
		t.Fatalf("product centre = %v, want %v", centre, c)
	}
	if math.Abs(scalar-1.0) > 1e-12 {
		t.Fatalf("product scalar = %g, want 1 for coincident centres", scalar)
	}
}

func TestGaussianProductMidpointEqualExponents(t *testing.T) {
	c0 := Vec3{X: 0, Y: 0, Z: 0}
	c1 := Vec3{X: 2, Y: 0, Z: 0}
	centre, _ := gaussianProduct(c0, c1, 1.0, 1.0)
	want := Vec3{X: 1, Y: 0, Z: 0}
	if math.Abs(centre.X-want.X) > 1e-12 || math.Abs(centre.Y-want.Y) > 1e-12 || math.Abs(centre.Z-want.Z) > 1e-12 {
		t.Fatalf("midpoint centre = %v, want %v", centre, want)
	}
}

func TestGaussianNormSPositive(t *testing.T) {
	n := gaussianNorm(AngularMomentum{}, 1.0)
	if n <= 0 {
		t.Fatalf("s-orbital norm = %g, want positive", n)
	}
}

func TestVec3DistanceSymmetric(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: 4, Y: 0, Z: -1}
	if math.Abs(a.distance(b)-b.distance(a)) > 1e-12 {
		t.Fatalf("distance is not symmetric")
	}
}

package geom

import (
	"math"
	"testing"
)

func TestTriangleNormal(t *testing.T) {
	a := Point{X: 0, Y: 0, Z: 0}
	b := Point{X: 1, Y: 0, Z: 0}
	c := Point{X: 0, Y: 1, Z: 0}

	n := TriangleNormal(a, b, c)
	if n.X != 0 || n.Y != 0 || n.Z != 1 {
		t.Errorf("normal = %v, want +Z under the right-hand rule", n)
	}
	// Swapping two vertices reverses the winding and the normal.
	n = TriangleNormal(a, c, b)
	if n.Z != -1 {
		t.Errorf("reversed winding normal = %v, want -Z", n)
	}
}

func TestTriangleArea(t *testing.T) {
	a := Point{X: 0, Y: 0, Z: 0}
	b := Point{X: 2, Y: 0, Z: 0}
	c := Point{X: 0, Y: 2, Z: 0}
	if area := TriangleArea(a, b, c); math.Abs(area-2) > 1e-12 {
		t.Errorf("area = %v, want 2", area)
	}
}

func TestCentroid(t *testing.T) {
	pts := []Point{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}
	got := Centroid(pts)
	want := Point{X: 0.25, Y: 0.25, Z: 0.25}
	if got != want {
		t.Errorf("centroid = %v, want %v", got, want)
	}
}

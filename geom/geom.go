package geom

import "gonum.org/v1/gonum/spatial/r3"

/* Data structures */

// Point is one scanned surface coordinate. STL stores float32, so points
// are kept in float32 and compared by exact value match: scan records reuse
// bit-identical coordinates for shared corners, no tolerance merging needed.
type Point struct {
	X, Y, Z float32
}

// Vec converts the point to a float64 vector for r3 math.
func (p Point) Vec() r3.Vec {
	return r3.Vec{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
}

// FromVec narrows an r3 vector back to a point.
func FromVec(v r3.Vec) Point {
	return Point{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

/* Triangle operations */

// TriangleNormal returns the unit normal of the triangle a, b, c under the
// right-hand rule over the vertex order.
func TriangleNormal(a, b, c Point) r3.Vec {
	return r3.Unit(r3.Cross(r3.Sub(b.Vec(), a.Vec()), r3.Sub(c.Vec(), a.Vec())))
}

// TriangleArea returns the area of the triangle a, b, c.
func TriangleArea(a, b, c Point) float64 {
	return 0.5 * r3.Norm(r3.Cross(r3.Sub(b.Vec(), a.Vec()), r3.Sub(c.Vec(), a.Vec())))
}

// Centroid returns the average of the given points.
func Centroid(pts []Point) Point {
	var sum r3.Vec
	for _, p := range pts {
		sum = r3.Add(sum, p.Vec())
	}
	return FromVec(r3.Scale(1/float64(len(pts)), sum))
}

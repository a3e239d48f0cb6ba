package geometry

import (
	"fmt"
	"math"

	"honnef.co/go/curve"
)

// XY is a point in the logical drawing plane.
//
// The origin is the centre of the canvas, X grows to the east and Y grows to the north.
type XY struct {
	X, Y float64
}

func (xy XY) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", xy.X, xy.Y)
}

// Point converts xy to a curve.Point in the same coordinate system.
func (xy XY) Point() curve.Point {
	return curve.Pt(xy.X, xy.Y)
}

// FromPoint is the inverse of XY.Point.
func FromPoint(pt curve.Point) XY {
	return XY{X: pt.X, Y: pt.Y}
}

func (xy XY) Add(o XY) XY {
	return XY{X: xy.X + o.X, Y: xy.Y + o.Y}
}

func (xy XY) Sub(o XY) XY {
	return XY{X: xy.X - o.X, Y: xy.Y - o.Y}
}

func (xy XY) Scale(s float64) XY {
	return XY{X: xy.X * s, Y: xy.Y * s}
}

// Distance is the euclidean distance between xy and o.
func (xy XY) Distance(o XY) float64 {
	return xy.Point().Distance(o.Point())
}

// Near reports whether xy and o are within eps of each other.
func (xy XY) Near(o XY, eps float64) bool {
	return xy.Distance(o) <= eps
}

// Angle is the direction of xy seen from the origin, in degrees.
func (xy XY) Angle() float64 {
	return Degrees(curve.Vec(xy.X, xy.Y).Angle())
}

// Radians converts an angle in degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Degrees converts an angle in radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// Direction returns the unit vector pointing along heading, measured in degrees
// counter-clockwise from east.
func Direction(heading float64) XY {
	v := curve.VecFromAngle(Radians(heading))
	return XY{X: v.X, Y: v.Y}
}

// NormalizeDegrees maps deg into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360.0)
	if deg < 0 {
		deg += 360.0
	}
	// -0.0 and values that round up to 360 both map to 0.
	if deg == 0 || deg >= 360.0 {
		return 0
	}
	return deg
}

// AngleDiff is the smallest signed difference a-b in degrees, in (-180, 180].
func AngleDiff(a, b float64) float64 {
	d := NormalizeDegrees(a - b)
	if d > 180.0 {
		d -= 360.0
	}
	return d
}

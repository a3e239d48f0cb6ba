// Package butterfly draws a pink butterfly with a black body, antennae and wing spots.
package butterfly

import (
	"github.com/willbeason/turtle-fractal/pkg/geometry"
)

const (
	Wing = "#FF8181"
	Body = "black"

	// Heading is the direction of the butterfly's body axis, in degrees.
	Heading = 90 + 30
)

// Pen is the part of a turtle the butterfly is drawn with.
type Pen interface {
	Forward(dist float64)
	Left(deg float64)
	Right(deg float64)
	SetHeading(deg float64)
	Goto(xy geometry.XY)
	PenUp()
	PenDown()
	Color(spec string)
	Width(w float64)
	Speed(s int)
	Circle(radius, extent float64)
	Dot(size float64, spec string)
	BeginFill()
	EndFill()
	Hide()
}

// Options are the parameters of the butterfly.
type Options struct {
	// Size scales the wings.
	Size float64
}

var DefaultOptions = Options{Size: 1}

// Draw draws the butterfly below the centre of the canvas and hides the pen.
func Draw(p Pen, opts Options) {
	s := opts.Size
	origin := geometry.XY{X: 0, Y: -40 * s}

	p.SetHeading(0)
	p.Speed(5)
	p.Width(1)
	p.Speed(7)

	p.PenUp()
	p.Goto(origin)
	p.PenDown()

	wings(p, s)
	antennae(p, origin)
	body(p, origin)
	spots(p, origin, 45, -5, 30)
	spots(p, origin, -45, -8, 35)

	p.Hide()
}

// wings draws the left wing, steps over and mirrors it for the right one.
func wings(p Pen, s float64) {
	p.Color(Wing)

	p.BeginFill()
	p.Left(90 + 30)
	p.Forward(50 * s)
	p.Circle(50*s, 250)
	p.Right(80)
	p.Circle(34*s, 196)
	p.EndFill()

	p.Right(95)
	p.Forward(5 * s)

	p.BeginFill()
	p.Left(90)
	p.Forward(50 * s)
	p.Circle(-50*s, 250)
	p.Left(80)
	p.Circle(-34*s, 196)
	p.EndFill()
}

func antennae(p Pen, origin geometry.XY) {
	start(p, origin)
	p.Width(3)
	p.Right(90)
	p.Forward(2)
	p.Left(90)
	p.Forward(50)
	p.PenDown()

	p.Circle(100, 40)
	p.Dot(12, Body)

	// Walk back along the first antenna without drawing, then draw the second.
	p.PenUp()
	p.Left(180)
	p.Circle(-100, 40)
	p.PenDown()
	p.Left(180)
	p.Circle(-100, 40)
	p.Dot(12, Body)
}

func body(p Pen, origin geometry.XY) {
	start(p, origin)
	p.Forward(-10)
	p.Right(90)
	p.Forward(11)
	p.Left(90)
	p.Right(10)
	p.PenDown()

	p.BeginFill()
	p.Circle(150, 30)
	p.Circle(2, 140)
	p.Circle(150, 30)
	p.Circle(9, 160)
	p.EndFill()
}

// spots draws a small spot 60 out along a line turned left by angle from the body, then a
// large one a further reach away after turning left by bend.
func spots(p Pen, origin geometry.XY, angle, bend, reach float64) {
	start(p, origin)
	p.Left(angle)
	p.Forward(60)
	p.Dot(15, Body)
	p.Left(bend)
	p.Forward(reach)
	p.Dot(30, Body)
}

// start lifts the pen and returns to origin facing along the body.
func start(p Pen, origin geometry.XY) {
	p.PenUp()
	p.Color(Body)
	p.Goto(origin)
	p.SetHeading(Heading)
}

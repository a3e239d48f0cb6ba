// Package turtle implements a turtle-graphics cursor that records what it draws.
//
// A Turtle moves over a logical plane whose origin is the centre of the canvas, with y
// pointing north and headings measured in degrees counter-clockwise from east. Every
// visible effect is appended to a Drawing, which the render and screen packages turn into
// pixels.
package turtle

import (
	"image/color"
	"math"

	"github.com/willbeason/turtle-fractal/pkg/geometry"
	"github.com/willbeason/turtle-fractal/pkg/palette"
	"honnef.co/go/curve"
)

const (
	// ArcTolerance is the maximum distance between a recorded arc and the true circle.
	ArcTolerance = 0.1

	MaxSpeed = 10
)

// State is everything that describes the cursor.
type State struct {
	Position geometry.XY
	Heading  float64

	Down      bool
	PenColor  color.RGBA
	FillColor color.RGBA
	Width     float64

	Filling bool
	Visible bool
}

// A Turtle is a cursor that draws into a Drawing.
//
// Colour arguments that cannot be resolved do not interrupt drawing: the colour is left
// unchanged and the first such error is kept for Err.
type Turtle struct {
	state State
	d     *Drawing

	fill   curve.BezPath
	fillAt int

	err error
}

// New returns a turtle at the origin facing east, pen down, black, width 1.
func New(d *Drawing) *Turtle {
	black := color.RGBA{A: 0xff}
	return &Turtle{
		d: d,
		state: State{
			Down:      true,
			PenColor:  black,
			FillColor: black,
			Width:     1,
			Visible:   true,
		},
	}
}

// Err returns the first colour error encountered, if any.
func (t *Turtle) Err() error {
	return t.err
}

// Drawing returns the display list, with Cursor set to the current state.
func (t *Turtle) Drawing() *Drawing {
	t.d.Cursor = t.state
	return t.d
}

// Snapshot returns a copy of the cursor state.
func (t *Turtle) Snapshot() State {
	return t.state
}

// Position is where the turtle stands in the logical plane.
func (t *Turtle) Position() geometry.XY {
	return t.state.Position
}

// Heading is the direction the turtle faces, in degrees in [0, 360).
func (t *Turtle) Heading() float64 {
	return t.state.Heading
}

// SetHeading turns the turtle to face deg degrees counter-clockwise from east.
func (t *Turtle) SetHeading(deg float64) {
	t.state.Heading = geometry.NormalizeDegrees(deg)
}

// Left turns counter-clockwise by deg degrees.
func (t *Turtle) Left(deg float64) {
	t.SetHeading(t.state.Heading + deg)
}

// Right turns clockwise by deg degrees.
func (t *Turtle) Right(deg float64) {
	t.SetHeading(t.state.Heading - deg)
}

// Forward moves dist along the heading, stroking if the pen is down.
func (t *Turtle) Forward(dist float64) {
	t.moveTo(t.state.Position.Add(geometry.Direction(t.state.Heading).Scale(dist)))
}

// Backward moves dist against the heading without turning.
func (t *Turtle) Backward(dist float64) {
	t.Forward(-dist)
}

// Goto moves straight to xy without changing the heading.
func (t *Turtle) Goto(xy geometry.XY) {
	t.moveTo(xy)
}

// PenUp stops movement from drawing.
func (t *Turtle) PenUp() {
	t.state.Down = false
}

// PenDown makes movement draw.
func (t *Turtle) PenDown() {
	t.state.Down = true
}

// IsDown reports whether movement draws.
func (t *Turtle) IsDown() bool {
	return t.state.Down
}

// Color sets both the pen and the fill colour.
func (t *Turtle) Color(spec string) {
	c, ok := t.parse(spec)
	if !ok {
		return
	}
	t.state.PenColor = c
	t.state.FillColor = c
}

func (t *Turtle) PenColor(spec string) {
	if c, ok := t.parse(spec); ok {
		t.state.PenColor = c
	}
}

func (t *Turtle) FillColor(spec string) {
	if c, ok := t.parse(spec); ok {
		t.state.FillColor = c
	}
}

// Width sets the pen width. Negative widths are treated as zero.
func (t *Turtle) Width(w float64) {
	t.state.Width = math.Max(w, 0)
}

// Speed sets the animation speed, clamped to [0, MaxSpeed]. 0 means draw instantly.
func (t *Turtle) Speed(s int) {
	t.d.Speed = min(max(s, 0), MaxSpeed)
}

func (t *Turtle) Hide() {
	t.state.Visible = false
}

func (t *Turtle) Show() {
	t.state.Visible = true
}

// Circle draws an arc of extent degrees along a circle of the given radius.
//
// The centre lies radius units to the left of the turtle. A positive radius runs
// counter-clockwise and a negative one clockwise; the heading turns with the arc.
func (t *Turtle) Circle(radius, extent float64) {
	if radius == 0 {
		t.Left(extent)
		return
	}

	h := t.state.Heading
	center := t.state.Position.Add(geometry.Direction(h + 90).Scale(radius))
	start := t.state.Position.Sub(center).Angle()

	sweep := extent
	if radius < 0 {
		sweep = -extent
	}
	r := math.Abs(radius)

	arc := curve.Arc{
		Center:     center.Point(),
		Radii:      curve.Vec(r, r),
		StartAngle: geometry.Radians(start),
		SweepAngle: geometry.Radians(sweep),
	}
	var path curve.BezPath
	for el := range arc.PathElements(ArcTolerance) {
		path.Push(el)
	}
	// Pin the first point to the cursor so consecutive strokes join exactly.
	if len(path) > 0 {
		path[0] = curve.MoveTo(t.state.Position.Point())
	}

	end := center.Add(geometry.Direction(start + sweep).Scale(r))

	if t.state.Down && len(path) > 1 {
		t.d.add(Op{Kind: Stroke, Path: path, Size: t.state.Width, Color: t.state.PenColor})
	}
	if t.state.Filling && len(path) > 1 {
		t.fill = append(t.fill, path[1:]...)
	}

	t.state.Position = end
	t.SetHeading(h + sweep)
}

// Dot draws a filled circle of diameter size at the cursor, whether or not the pen is
// down. A size of zero or less picks max(width+4, 2*width); an empty spec uses the pen
// colour.
func (t *Turtle) Dot(size float64, spec string) {
	if size <= 0 {
		size = math.Max(t.state.Width+4, 2*t.state.Width)
	}

	c := t.state.PenColor
	if spec != "" {
		var ok bool
		if c, ok = t.parse(spec); !ok {
			return
		}
	}

	t.d.add(Op{Kind: Dot, Center: t.state.Position, Size: size, Color: c})
}

// BeginFill starts capturing the outline of a region. Calling it again restarts the
// capture from the current position.
func (t *Turtle) BeginFill() {
	t.state.Filling = true
	t.fill = curve.BezPath{curve.MoveTo(t.state.Position.Point())}
	t.fillAt = len(t.d.Ops)
}

// EndFill closes the captured outline and fills it with the fill colour.
//
// The fill is placed beneath everything drawn since BeginFill.
func (t *Turtle) EndFill() {
	if !t.state.Filling {
		return
	}
	t.state.Filling = false

	if len(t.fill) > 1 {
		path := append(t.fill, curve.ClosePath())
		t.d.insert(t.fillAt, Op{Kind: Fill, Path: path, Color: t.state.FillColor})
	}
	t.fill = nil
}

func (t *Turtle) moveTo(to geometry.XY) {
	from := t.state.Position
	t.state.Position = to
	if from == to {
		return
	}

	if t.state.Down {
		t.d.add(Op{
			Kind:  Stroke,
			Path:  curve.BezPath{curve.MoveTo(from.Point()), curve.LineTo(to.Point())},
			Size:  t.state.Width,
			Color: t.state.PenColor,
		})
	}
	if t.state.Filling {
		t.fill.LineTo(to.Point())
	}
}

func (t *Turtle) parse(spec string) (color.RGBA, bool) {
	c, err := palette.Parse(spec)
	if err != nil {
		if t.err == nil {
			t.err = err
		}
		return color.RGBA{}, false
	}
	return c, true
}

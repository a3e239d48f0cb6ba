package turtle

import (
	"image/color"
	"slices"

	"github.com/willbeason/turtle-fractal/pkg/geometry"
	"honnef.co/go/curve"
)

type OpKind int

const (
	// Stroke draws Path with a pen of width Size.
	Stroke OpKind = iota
	// Dot draws a filled circle of diameter Size at Center.
	Dot
	// Fill fills the closed Path.
	Fill
)

func (k OpKind) String() string {
	switch k {
	case Stroke:
		return "stroke"
	case Dot:
		return "dot"
	case Fill:
		return "fill"
	default:
		return "unknown"
	}
}

// Op is one entry in a Drawing's display list.
type Op struct {
	Kind OpKind

	// Path is set for Stroke and Fill, in logical coordinates.
	Path curve.BezPath

	// Center is set for Dot.
	Center geometry.XY

	// Size is the pen width of a Stroke or the diameter of a Dot.
	Size float64

	Color color.RGBA
}

// Bounds is the area in the logical plane the operation may paint.
func (op Op) Bounds() curve.Rect {
	switch op.Kind {
	case Dot:
		r := op.Size / 2
		return curve.Rect{
			X0: op.Center.X - r, Y0: op.Center.Y - r,
			X1: op.Center.X + r, Y1: op.Center.Y + r,
		}
	case Stroke:
		return op.Path.ControlBox().Inflate(op.Size/2, op.Size/2)
	default:
		return op.Path.ControlBox()
	}
}

// A Drawing is the display list a Turtle produces.
//
// Operations are painted in order, so later operations cover earlier ones.
type Drawing struct {
	Background color.RGBA

	Ops []Op

	// Speed is the animation speed requested by the script, 0 (instant) through 10.
	Speed int

	// Cursor is the turtle's state when the drawing was last retrieved from it.
	Cursor State
}

// NewDrawing returns an empty drawing on the given background.
func NewDrawing(background color.RGBA) *Drawing {
	return &Drawing{Background: background}
}

// Count returns how many operations of kind the drawing holds.
func (d *Drawing) Count(kind OpKind) int {
	n := 0
	for _, op := range d.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Bounds returns the extent of everything painted, and false if nothing is.
func (d *Drawing) Bounds() (curve.Rect, bool) {
	if len(d.Ops) == 0 {
		return curve.Rect{}, false
	}

	r := d.Ops[0].Bounds()
	for _, op := range d.Ops[1:] {
		r = r.Union(op.Bounds())
	}
	return r, true
}

func (d *Drawing) add(op Op) {
	d.Ops = append(d.Ops, op)
}

func (d *Drawing) insert(i int, op Op) {
	d.Ops = slices.Insert(d.Ops, i, op)
}

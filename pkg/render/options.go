package render

import (
	"github.com/willbeason/turtle-fractal/pkg/turtle"
	"honnef.co/go/curve"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 800

	// minLineWidth keeps hairline strokes visible.
	minLineWidth = 1.0
)

// Option configures rendering.
type Option func(*options)

type options struct {
	width, height int
	scale         float64
	fit           bool
	margin        float64
	cursor        bool
}

// WithSize sets the canvas size in pixels.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithScale sets how many pixels one logical unit covers. Ignored when fitting.
func WithScale(s float64) Option {
	return func(o *options) { o.scale = s }
}

// WithFit scales and centres the drawing to fill the canvas, leaving margin pixels free
// on every side.
func WithFit(margin float64) Option {
	return func(o *options) {
		o.fit = true
		o.margin = margin
	}
}

// WithCursor sets whether a visible cursor is drawn at its final position.
func WithCursor(show bool) Option {
	return func(o *options) { o.cursor = show }
}

func newOptions(opts ...Option) options {
	o := options{
		width:  DefaultWidth,
		height: DefaultHeight,
		scale:  1,
		cursor: true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	o.width = max(o.width, 1)
	o.height = max(o.height, 1)
	if o.scale <= 0 {
		o.scale = 1
	}
	return o
}

// viewport maps the logical plane onto the pixel grid.
type viewport struct {
	toPixels curve.Affine
	// scale is the number of pixels per logical unit.
	scale float64
}

func (o options) viewport(d *turtle.Drawing) viewport {
	w, h := float64(o.width), float64(o.height)
	center := curve.Pt(0, 0)
	scale := o.scale

	if b, ok := d.Bounds(); o.fit && ok && b.Width() > 0 && b.Height() > 0 {
		sx := (w - 2*o.margin) / b.Width()
		sy := (h - 2*o.margin) / b.Height()
		if s := min(sx, sy); s > 0 {
			scale = s
			center = b.Center()
		}
	}

	aff := curve.Translate(curve.Vec(w/2, h/2)).
		Mul(curve.Scale(scale, -scale)).
		Mul(curve.Translate(curve.Vec(-center.X, -center.Y)))
	return viewport{toPixels: aff, scale: scale}
}

// Package render turns a turtle.Drawing into pixels or SVG.
package render

import (
	"image"
	"image/png"
	"io"
	"iter"

	"github.com/fogleman/gg"
	"github.com/willbeason/turtle-fractal/pkg/turtle"
	"honnef.co/go/curve"
)

// Raster paints the drawing onto a new image.
func Raster(d *turtle.Drawing, opts ...Option) image.Image {
	r := newRasterizer(d, opts...)
	r.draw(d.Ops)
	r.drawCursor(d.Cursor)
	return r.dc.Image()
}

// WritePNG encodes Raster(d, opts...) as PNG.
func WritePNG(w io.Writer, d *turtle.Drawing, opts ...Option) error {
	return png.Encode(w, Raster(d, opts...))
}

// Frames paints the drawing batch operations at a time, yielding the canvas after each
// batch. The last frame is identical to Raster's result.
//
// Every frame is the same image, updated in place; consumers must finish with a frame
// before asking for the next.
func Frames(d *turtle.Drawing, batch int, opts ...Option) iter.Seq[image.Image] {
	batch = max(batch, 1)
	return func(yield func(image.Image) bool) {
		r := newRasterizer(d, opts...)

		for start := 0; start < len(d.Ops); start += batch {
			end := min(start+batch, len(d.Ops))
			r.draw(d.Ops[start:end])
			if end == len(d.Ops) {
				break
			}
			if !yield(r.dc.Image()) {
				return
			}
		}

		r.drawCursor(d.Cursor)
		yield(r.dc.Image())
	}
}

type rasterizer struct {
	dc     *gg.Context
	view   viewport
	cursor bool
}

func newRasterizer(d *turtle.Drawing, opts ...Option) *rasterizer {
	o := newOptions(opts...)

	dc := gg.NewContext(o.width, o.height)
	dc.SetColor(d.Background)
	dc.Clear()
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	return &rasterizer{dc: dc, view: o.viewport(d), cursor: o.cursor}
}

func (r *rasterizer) draw(ops []turtle.Op) {
	for _, op := range ops {
		switch op.Kind {
		case turtle.Stroke:
			r.path(op.Path)
			r.dc.SetColor(op.Color)
			r.dc.SetLineWidth(max(op.Size*r.view.scale, minLineWidth))
			r.dc.Stroke()
		case turtle.Fill:
			r.path(op.Path)
			r.dc.SetColor(op.Color)
			r.dc.Fill()
		case turtle.Dot:
			c := op.Center.Point().Transform(r.view.toPixels)
			r.dc.DrawCircle(c.X, c.Y, op.Size*r.view.scale/2)
			r.dc.SetColor(op.Color)
			r.dc.Fill()
		}
	}
}

func (r *rasterizer) drawCursor(s turtle.State) {
	if !r.cursor || !s.Visible {
		return
	}

	r.path(cursorPath(s, r.view))
	r.dc.SetColor(s.FillColor)
	r.dc.FillPreserve()
	r.dc.SetColor(s.PenColor)
	r.dc.SetLineWidth(minLineWidth)
	r.dc.Stroke()
}

// path replaces the context's current path with p, mapped to pixels.
func (r *rasterizer) path(p curve.BezPath) {
	r.dc.ClearPath()
	for _, el := range p.Transform(r.view.toPixels) {
		switch el.Kind {
		case curve.MoveToKind:
			r.dc.MoveTo(el.P0.X, el.P0.Y)
		case curve.LineToKind:
			r.dc.LineTo(el.P0.X, el.P0.Y)
		case curve.QuadToKind:
			r.dc.QuadraticTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y)
		case curve.CubicToKind:
			r.dc.CubicTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y, el.P2.X, el.P2.Y)
		case curve.ClosePathKind:
			r.dc.ClosePath()
		}
	}
}

package render

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/willbeason/turtle-fractal/pkg/palette"
	"github.com/willbeason/turtle-fractal/pkg/turtle"
	"honnef.co/go/curve"
)

// svgPrecision is the number of decimals kept in SVG coordinates.
const svgPrecision = 2

// RenderSVG returns the drawing as an SVG document using the same canvas as Raster.
func RenderSVG(d *turtle.Drawing, opts ...Option) []byte {
	o := newOptions(opts...)
	view := o.viewport(d)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		o.width, o.height, o.width, o.height)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", palette.Hex(d.Background))

	for _, op := range d.Ops {
		switch op.Kind {
		case turtle.Stroke:
			fmt.Fprintf(&buf, `  <path d="%s" fill="none" stroke="%s" stroke-width="%s" stroke-linecap="round" stroke-linejoin="round"/>`+"\n",
				pathData(op.Path, view), palette.Hex(op.Color), number(max(op.Size*view.scale, minLineWidth)))
		case turtle.Fill:
			fmt.Fprintf(&buf, `  <path d="%s" fill="%s"/>`+"\n", pathData(op.Path, view), palette.Hex(op.Color))
		case turtle.Dot:
			c := op.Center.Point().Transform(view.toPixels)
			fmt.Fprintf(&buf, `  <circle cx="%s" cy="%s" r="%s" fill="%s"/>`+"\n",
				number(c.X), number(c.Y), number(op.Size*view.scale/2), palette.Hex(op.Color))
		}
	}

	if s := d.Cursor; o.cursor && s.Visible {
		fmt.Fprintf(&buf, `  <path d="%s" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
			pathData(cursorPath(s, view), view), palette.Hex(s.FillColor), palette.Hex(s.PenColor))
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// WriteSVG writes RenderSVG(d, opts...) to w.
func WriteSVG(w io.Writer, d *turtle.Drawing, opts ...Option) error {
	_, err := w.Write(RenderSVG(d, opts...))
	return err
}

func pathData(p curve.BezPath, v viewport) string {
	return p.Transform(v.toPixels).SVG(curve.SVGOptions{MaxPrecision: svgPrecision})
}

func number(f float64) string {
	return strconv.FormatFloat(f, 'f', svgPrecision, 64)
}

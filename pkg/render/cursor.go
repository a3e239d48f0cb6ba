package render

import (
	"github.com/willbeason/turtle-fractal/pkg/geometry"
	"github.com/willbeason/turtle-fractal/pkg/turtle"
	"honnef.co/go/curve"
)

// arrow is the classic turtle shape in pixels, pointing along +x with its tip at the
// origin.
var arrow = curve.BezPath{
	curve.MoveTo(curve.Pt(0, 0)),
	curve.LineTo(curve.Pt(-9, 5)),
	curve.LineTo(curve.Pt(-7, 0)),
	curve.LineTo(curve.Pt(-9, -5)),
	curve.ClosePath(),
}

// cursorPath returns the arrow for s in logical coordinates, sized so it renders at a
// constant pixel size.
func cursorPath(s turtle.State, v viewport) curve.BezPath {
	pos := s.Position.Point()
	aff := curve.Translate(curve.Vec(pos.X, pos.Y)).
		Mul(curve.Rotate(geometry.Radians(s.Heading))).
		Mul(curve.Scale(1/v.scale, 1/v.scale))
	return arrow.Transform(aff)
}

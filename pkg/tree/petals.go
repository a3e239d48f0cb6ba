package tree

const (
	// PetalSpread bounds how far across the heading a petal may land.
	PetalSpread = 200.0
	// PetalJitter bounds how far along the heading a petal may land.
	PetalJitter = 10.0
	// PetalSize is the diameter of a petal.
	PetalSize = 4.0
)

// Petals scatters count petals around the pen without moving it.
//
// Each petal is offset by up to PetalJitter along the heading and up to PetalSpread
// across it. The pen is left up.
func Petals(count int, p Pen, r Rand) {
	for range count {
		across := PetalSpread - 2*PetalSpread*r.Float64()
		ahead := PetalJitter - 2*PetalJitter*r.Float64()

		p.PenUp()
		p.Forward(ahead)
		p.Left(90)
		p.Forward(across)
		p.PenDown()
		p.Color(Blossom)
		p.Dot(PetalSize, "")
		p.PenUp()
		p.Backward(across)
		p.Right(90)
		p.Backward(ahead)
	}
}

// Package tree draws blossom trees: a recursively branching trunk whose limbs thin into
// pink and white blossoms, with petals scattered around its base.
package tree

import "math"

const (
	// MinLength is the length at or below which a branch is not drawn.
	MinLength = 3.0
	// MaxLength is the longest trunk worth drawing. The number of branches roughly doubles
	// for every 7.5 units of length.
	MaxLength = 120.0

	// Branches with lengths in [BlossomMin, BlossomMax] are blossoms, shorter ones twigs,
	// longer ones bark.
	BlossomMin = 8.0
	BlossomMax = 12.0

	// MaxSpread bounds the two deviation factors sampled per branch.
	MaxSpread = 1.5
	// SpreadAngle is how far, in degrees, each child turns per unit of spread.
	SpreadAngle = 20.0
	// ShrinkStep is how much shorter children are per unit of shrink.
	ShrinkStep = 10.0
	// MinShrink is the least a child can be shorter than its parent.
	MinShrink = 0.25
)

// Colours of the tree.
const (
	Bark      = "sienna"
	Highlight = "snow"
	Blossom   = "lightcoral"
)

// Pen is the part of a turtle the tree draws with.
type Pen interface {
	Forward(dist float64)
	Backward(dist float64)
	Left(deg float64)
	Right(deg float64)
	PenUp()
	PenDown()
	Color(spec string)
	Width(w float64)
	Dot(size float64, spec string)
}

// Rand is a source of uniform values in [0, 1). *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Branch draws a branch of the given length from the pen's position along its heading,
// then two randomly deviated, shorter children from its tip.
//
// Children are ShrinkStep times the second deviation factor shorter than their parent, but
// never less than MinShrink shorter. Lengths at or below MinLength, infinities and NaN
// draw nothing.
//
// The pen ends where it started, facing the same way. The way back retraces the branch
// with the pen still down, in whatever colour the last child used.
func Branch(length float64, p Pen, r Rand) {
	if length <= MinLength || math.IsInf(length, 0) || math.IsNaN(length) {
		return
	}

	c, w := Band(length, r)
	p.Color(c)
	p.Width(w)
	p.Forward(length)

	spread := MaxSpread * r.Float64()
	p.Right(SpreadAngle * spread)

	shrink := MaxSpread * r.Float64()
	child := length - max(ShrinkStep*shrink, MinShrink)

	Branch(child, p, r)
	p.Left(2 * SpreadAngle * spread)
	Branch(child, p, r)
	p.Right(SpreadAngle * spread)

	p.Backward(length)
}

// Band returns the colour and pen width of a branch of the given length.
//
// Blossoms are the highlight colour one time in three, twigs one time in two. Bark
// consumes no randomness.
func Band(length float64, r Rand) (string, float64) {
	switch {
	case length >= BlossomMin && length <= BlossomMax:
		return pick(r, 3), length / 3
	case length < BlossomMin:
		return pick(r, 2), length / 2
	default:
		return Bark, length / 10
	}
}

// pick returns Highlight when a uniform integer in [0, n) is zero.
func pick(r Rand, n int) string {
	if intn(r, n) == 0 {
		return Highlight
	}
	return Blossom
}

func intn(r Rand, n int) int {
	return min(int(r.Float64()*float64(n)), n-1)
}

package tree

// Options are the parameters of a blossom tree scene.
type Options struct {
	// Length of the trunk.
	Length float64
	// Petals is how many petals to scatter.
	Petals int
	// TrunkOffset is how far below the centre the trunk starts.
	TrunkOffset float64
}

// DefaultOptions draws the classic tree.
var DefaultOptions = Options{
	Length:      60,
	Petals:      100,
	TrunkOffset: 150,
}

// Scene is a Pen that also controls the animation speed.
type Scene interface {
	Pen
	Speed(s int)
}

// Draw grows a tree upwards from TrunkOffset below the pen, then scatters petals around
// its base. The pen is expected to start at the centre, facing east.
func Draw(s Scene, opts Options, r Rand) {
	s.Speed(0)
	s.Left(90)
	s.PenUp()
	s.Backward(opts.TrunkOffset)
	s.PenDown()
	s.Color(Bark)

	Branch(opts.Length, s, r)
	Petals(opts.Petals, s, r)
}

// Package config loads the TOML settings shared by the tree and butterfly commands.
//
// Every field has a default, so an empty file (or none at all) draws the classic tree and
// butterfly.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/willbeason/turtle-fractal/pkg/palette"
	"github.com/willbeason/turtle-fractal/pkg/tree"
)

// MaxCanvas bounds both canvas dimensions, in pixels.
const MaxCanvas = 16384

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Canvas    Canvas    `toml:"canvas"`
	Output    Output    `toml:"output"`
	Tree      Tree      `toml:"tree"`
	Butterfly Butterfly `toml:"butterfly"`
}

// Canvas describes the pixel grid drawings are rendered onto.
type Canvas struct {
	Width  int     `toml:"width"`
	Height int     `toml:"height"`
	Scale  float64 `toml:"scale"`
	// Fit scales the drawing to the canvas, ignoring Scale.
	Fit    bool    `toml:"fit"`
	Margin float64 `toml:"margin"`
}

// Output selects where the finished drawing goes. Empty paths are skipped.
type Output struct {
	PNG    string `toml:"png"`
	SVG    string `toml:"svg"`
	Window bool   `toml:"window"`
}

type Tree struct {
	// Seed for the random source. 0 picks one from the clock.
	Seed        int64   `toml:"seed"`
	Length      float64 `toml:"length"`
	Petals      int     `toml:"petals"`
	TrunkOffset float64 `toml:"trunk_offset"`
	Background  string  `toml:"background"`
}

type Butterfly struct {
	Size       float64 `toml:"size"`
	Background string  `toml:"background"`
}

// Default returns the settings of the classic pictures.
func Default() Config {
	return Config{
		Canvas: Canvas{
			Width:  800,
			Height: 800,
			Scale:  1,
			Margin: 20,
		},
		Output: Output{
			Window: true,
		},
		Tree: Tree{
			Length:      60,
			Petals:      100,
			TrunkOffset: 150,
			Background:  "wheat",
		},
		Butterfly: Butterfly{
			Size:       1,
			Background: "white",
		},
	}
}

// Load reads the file at path over Default. An empty path returns Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	c, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes data over Default and validates the result. Keys that do not belong to
// any setting are rejected.
func Parse(data []byte) (Config, error) {
	c := Default()

	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports every out-of-range setting.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	for _, f := range []struct {
		key string
		val float64
	}{
		{"canvas.scale", c.Canvas.Scale},
		{"canvas.margin", c.Canvas.Margin},
		{"tree.length", c.Tree.Length},
		{"tree.trunk_offset", c.Tree.TrunkOffset},
		{"butterfly.size", c.Butterfly.Size},
	} {
		check(!math.IsInf(f.val, 0) && !math.IsNaN(f.val), "%s must be finite, got %v", f.key, f.val)
	}

	check(c.Canvas.Width > 0 && c.Canvas.Width <= MaxCanvas,
		"canvas.width must be in [1, %d], got %d", MaxCanvas, c.Canvas.Width)
	check(c.Canvas.Height > 0 && c.Canvas.Height <= MaxCanvas,
		"canvas.height must be in [1, %d], got %d", MaxCanvas, c.Canvas.Height)
	check(c.Canvas.Scale > 0, "canvas.scale must be positive, got %v", c.Canvas.Scale)
	check(c.Canvas.Margin >= 0, "canvas.margin must not be negative, got %v", c.Canvas.Margin)

	check(c.Tree.Length >= 0 && c.Tree.Length <= tree.MaxLength,
		"tree.length must be in [0, %v], got %v", tree.MaxLength, c.Tree.Length)
	check(c.Tree.Petals >= 0, "tree.petals must not be negative, got %d", c.Tree.Petals)
	check(c.Butterfly.Size > 0, "butterfly.size must be positive, got %v", c.Butterfly.Size)

	for _, bg := range []struct{ key, spec string }{
		{"tree.background", c.Tree.Background},
		{"butterfly.background", c.Butterfly.Background},
	} {
		_, err := palette.Parse(bg.spec)
		check(err == nil, "%s: %v", bg.key, err)
	}

	return errors.Join(errs...)
}

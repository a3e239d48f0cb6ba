package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/willbeason/turtle-fractal/pkg/config"
	"github.com/willbeason/turtle-fractal/pkg/render"
	"github.com/willbeason/turtle-fractal/pkg/screen"
	"github.com/willbeason/turtle-fractal/pkg/turtle"
)

// slowestDelay is how long each frame stays up at speed 1.
const slowestDelay = 50 * time.Millisecond

// Present sends a finished drawing to the outputs cfg names: image files first, then the
// terminal window, which stays open until the user dismisses it.
//
// s is the terminal to draw on; nil means the real one.
func Present(ctx context.Context, d *turtle.Drawing, cfg config.Config, s tcell.Screen) error {
	logger := LoggerFromContext(ctx)
	opts := renderOptions(cfg.Canvas)
	logger.Debug("Drawing complete", "ops", len(d.Ops), "strokes", d.Count(turtle.Stroke),
		"dots", d.Count(turtle.Dot), "fills", d.Count(turtle.Fill))

	if path := cfg.Output.PNG; path != "" {
		prog := newProgress(logger)
		if err := writeFile(path, func(w io.Writer) error { return render.WritePNG(w, d, opts...) }); err != nil {
			return err
		}
		prog.done("Wrote PNG", "path", path)
	}

	if path := cfg.Output.SVG; path != "" {
		prog := newProgress(logger)
		if err := writeFile(path, func(w io.Writer) error { return render.WriteSVG(w, d, opts...) }); err != nil {
			return err
		}
		prog.done("Wrote SVG", "path", path)
	}

	if !cfg.Output.Window {
		return nil
	}

	win, err := screen.Open(s)
	if err != nil {
		return err
	}
	defer win.Close()

	if d.Speed == 0 {
		win.Show(render.Raster(d, opts...))
	} else {
		batch, delay := pace(d.Speed)
		logger.Debug("Animating", "speed", d.Speed, "batch", batch, "delay", delay)
		if err := win.Animate(ctx, render.Frames(d, batch, opts...), delay); err != nil {
			return err
		}
	}

	return win.WaitForClick(ctx)
}

// pace returns how many operations each animation frame adds and how long it stays up.
// Faster speeds draw more per frame and wait less.
func pace(speed int) (batch int, delay time.Duration) {
	speed = min(max(speed, 1), turtle.MaxSpeed)
	return speed, slowestDelay / time.Duration(speed)
}

func renderOptions(c config.Canvas) []render.Option {
	opts := []render.Option{
		render.WithSize(c.Width, c.Height),
		render.WithScale(c.Scale),
	}
	if c.Fit {
		opts = append(opts, render.WithFit(c.Margin))
	}
	return opts
}

// writeFile creates path and fills it with write, overwriting any existing file.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

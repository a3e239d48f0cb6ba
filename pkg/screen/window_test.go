package screen

import (
	"context"
	"errors"
	"image"
	"image/color"
	"iter"
	"slices"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/draw"
)

var (
	red  = color.RGBA{R: 0xff, A: 0xff}
	blue = color.RGBA{B: 0xff, A: 0xff}
)

func solid(c color.RGBA, w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

func open(t *testing.T) (*Window, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	w, err := Open(sim)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(w.Close)
	return w, sim
}

func withTimeout(t *testing.T, d time.Duration) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), d)
	t.Cleanup(cancel)
	return ctx
}

func assertCell(t *testing.T, sim tcell.SimulationScreen, x, y int, want color.RGBA) {
	t.Helper()
	cells, width, _ := sim.GetContents()
	cell := cells[y*width+x]

	if len(cell.Runes) == 0 || cell.Runes[0] != halfBlock {
		t.Fatalf("cell (%d, %d) = %q, want %q", x, y, cell.Runes, halfBlock)
	}
	fg, bg, _ := cell.Style.Decompose()
	for _, c := range []tcell.Color{fg, bg} {
		r, g, b := c.RGB()
		if r != int32(want.R) || g != int32(want.G) || b != int32(want.B) {
			t.Errorf("cell (%d, %d) colour = (%d, %d, %d), want %v", x, y, r, g, b, want)
		}
	}
}

func TestFit(t *testing.T) {
	tcs := []struct {
		name          string
		bounds        image.Rectangle
		width, height int
		want          image.Rectangle
	}{
		{name: "square into wide", bounds: image.Rect(0, 0, 40, 40), width: 80, height: 50, want: image.Rect(0, 0, 50, 50)},
		{name: "wide into square", bounds: image.Rect(0, 0, 200, 100), width: 50, height: 50, want: image.Rect(0, 0, 50, 25)},
		{name: "offset bounds", bounds: image.Rect(10, 10, 30, 50), width: 10, height: 10, want: image.Rect(0, 0, 5, 10)},
		{name: "tiny target", bounds: image.Rect(0, 0, 1000, 10), width: 4, height: 4, want: image.Rect(0, 0, 4, 1)},
		{name: "empty image", bounds: image.Rectangle{}, width: 10, height: 10, want: image.Rectangle{}},
		{name: "no room", bounds: image.Rect(0, 0, 10, 10), width: 0, height: 10, want: image.Rectangle{}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := fit(tc.bounds, tc.width, tc.height); got != tc.want {
				t.Errorf("fit(%v, %d, %d) = %v, want %v", tc.bounds, tc.width, tc.height, got, tc.want)
			}
		})
	}
}

func TestShow(t *testing.T) {
	w, sim := open(t)

	// 80x25 cells hold 80x50 pixels, so the image becomes 50x50 centred at column 15.
	w.Show(solid(red, 40, 40))

	assertCell(t, sim, 15, 0, red)
	assertCell(t, sim, 40, 12, red)
	assertCell(t, sim, 64, 24, red)

	cells, width, _ := sim.GetContents()
	if r := cells[12*width+5].Runes; len(r) > 0 && r[0] == halfBlock {
		t.Error("margin cell was drawn")
	}
}

func TestWaitForClick(t *testing.T) {
	tcs := []struct {
		name   string
		inject func(tcell.SimulationScreen)
	}{
		{name: "left click", inject: func(s tcell.SimulationScreen) { s.InjectMouse(3, 4, tcell.Button1, tcell.ModNone) }},
		{name: "right click", inject: func(s tcell.SimulationScreen) { s.InjectMouse(3, 4, tcell.Button2, tcell.ModNone) }},
		{name: "escape", inject: func(s tcell.SimulationScreen) { s.InjectKey(tcell.KeyEscape, 0, tcell.ModNone) }},
		{name: "ctrl-c", inject: func(s tcell.SimulationScreen) { s.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl) }},
		{name: "q", inject: func(s tcell.SimulationScreen) { s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone) }},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			w, sim := open(t)
			tc.inject(sim)

			if err := w.WaitForClick(withTimeout(t, 5*time.Second)); err != nil {
				t.Errorf("WaitForClick() error: %v", err)
			}
		})
	}
}

func TestWaitForClick_IgnoresOtherInput(t *testing.T) {
	w, sim := open(t)
	sim.InjectMouse(3, 4, tcell.ButtonNone, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	err := w.WaitForClick(withTimeout(t, 50*time.Millisecond))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("WaitForClick() error = %v, want %v", err, context.DeadlineExceeded)
	}
}

func TestWaitForClick_Resize(t *testing.T) {
	w, sim := open(t)
	w.Show(solid(red, 40, 40))

	sim.SetSize(40, 10)
	if err := sim.PostEvent(tcell.NewEventResize(40, 10)); err != nil {
		t.Fatalf("PostEvent() error: %v", err)
	}
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	if err := w.WaitForClick(withTimeout(t, 5*time.Second)); err != nil {
		t.Fatalf("WaitForClick() error: %v", err)
	}

	// 40x10 cells hold 40x20 pixels, so the image becomes 20x20 centred at column 10.
	assertCell(t, sim, 10, 0, red)
	assertCell(t, sim, 29, 9, red)
}

func TestAnimate(t *testing.T) {
	w, sim := open(t)
	frames := slices.Values([]image.Image{solid(red, 8, 8), solid(red, 8, 8), solid(blue, 8, 8)})

	if err := w.Animate(withTimeout(t, 5*time.Second), frames, time.Millisecond); err != nil {
		t.Fatalf("Animate() error: %v", err)
	}
	assertCell(t, sim, 40, 12, blue)
}

func TestAnimate_Dismissed(t *testing.T) {
	w, sim := open(t)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	shown := 0
	var frames iter.Seq[image.Image] = func(yield func(image.Image) bool) {
		for range 3 {
			shown++
			if !yield(solid(red, 8, 8)) {
				return
			}
		}
	}

	ctx := withTimeout(t, 5*time.Second)
	if err := w.Animate(ctx, frames, time.Hour); err != nil {
		t.Fatalf("Animate() error: %v", err)
	}
	if shown != 1 {
		t.Errorf("showed %d frames after dismissal, want 1", shown)
	}
	if err := w.WaitForClick(ctx); err != nil {
		t.Errorf("WaitForClick() after dismissal error: %v", err)
	}
}

func TestAnimate_Cancelled(t *testing.T) {
	w, _ := open(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := w.Animate(ctx, slices.Values([]image.Image{solid(red, 8, 8)}), time.Hour)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Animate() error = %v, want %v", err, context.Canceled)
	}
}

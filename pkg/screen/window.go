// Package screen shows rendered drawings in a true-colour terminal.
//
// Each terminal cell holds two pixels: the upper half block takes the top pixel as its
// foreground and the bottom pixel as its background.
package screen

import (
	"context"
	"fmt"
	"image"
	"iter"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/draw"
)

const halfBlock = '▀'

// Window is a terminal view that displays one image at a time.
type Window struct {
	s      tcell.Screen
	events chan tcell.Event
	quit   chan struct{}

	img       image.Image
	dismissed bool
}

// Open takes over s, or the real terminal when s is nil.
func Open(s tcell.Screen) (*Window, error) {
	if s == nil {
		var err error
		s, err = tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("opening terminal: %w", err)
		}
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("initializing terminal: %w", err)
	}

	s.EnableMouse()
	s.HideCursor()
	s.Clear()

	w := &Window{
		s:      s,
		events: make(chan tcell.Event, 16),
		quit:   make(chan struct{}),
	}
	go s.ChannelEvents(w.events, w.quit)

	return w, nil
}

// Close restores the terminal. It is safe to call more than once.
func (w *Window) Close() {
	if w.quit == nil {
		return
	}
	close(w.quit)
	w.quit = nil
	w.s.Fini()
}

// Show replaces the displayed image.
func (w *Window) Show(img image.Image) {
	w.img = img
	w.draw()
}

// Animate shows each frame for delay. It stops early, without error, if the window is
// dismissed; a later WaitForClick then returns at once.
func (w *Window) Animate(ctx context.Context, frames iter.Seq[image.Image], delay time.Duration) error {
	for img := range frames {
		w.Show(img)

		timer := time.NewTimer(delay)
		for waiting := true; waiting; {
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case ev, ok := <-w.events:
				if !ok || w.handle(ev) {
					timer.Stop()
					w.dismissed = true
					return nil
				}
			case <-timer.C:
				waiting = false
			}
		}
	}
	return nil
}

// WaitForClick blocks until a mouse button is pressed, Esc, q or Ctrl-C is typed, or ctx
// is done.
func (w *Window) WaitForClick(ctx context.Context) error {
	if w.dismissed {
		return nil
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.events:
			if !ok || w.handle(ev) {
				w.dismissed = true
				return nil
			}
		}
	}
}

// handle reacts to ev and reports whether it dismisses the window.
func (w *Window) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		return ev.Buttons()&(tcell.Button1|tcell.Button2|tcell.Button3) != 0
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			return ev.Rune() == 'q' || ev.Rune() == 'Q'
		}
	case *tcell.EventResize:
		w.s.Sync()
		w.draw()
	}
	return false
}

func (w *Window) draw() {
	w.s.Clear()
	if w.img == nil {
		w.s.Show()
		return
	}

	cols, rows := w.s.Size()
	px := fit(w.img.Bounds(), cols, rows*2)
	if px.Empty() {
		w.s.Show()
		return
	}

	dst := image.NewRGBA(px)
	draw.ApproxBiLinear.Scale(dst, px, w.img, w.img.Bounds(), draw.Src, nil)

	ox := (cols - px.Dx()) / 2
	oy := (rows - (px.Dy()+1)/2) / 2
	for y := 0; y < px.Dy(); y += 2 {
		for x := 0; x < px.Dx(); x++ {
			top := dst.RGBAAt(x, y)
			bottom := top
			if y+1 < px.Dy() {
				bottom = dst.RGBAAt(x, y+1)
			}
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			w.s.SetContent(ox+x, oy+y/2, halfBlock, nil, style)
		}
	}
	w.s.Show()
}

// fit returns the largest rectangle at the origin with b's aspect ratio that fits in
// width x height.
func fit(b image.Rectangle, width, height int) image.Rectangle {
	if b.Empty() || width <= 0 || height <= 0 {
		return image.Rectangle{}
	}
	k := min(float64(width)/float64(b.Dx()), float64(height)/float64(b.Dy()))
	dw := min(max(int(float64(b.Dx())*k), 1), width)
	dh := min(max(int(float64(b.Dy())*k), 1), height)
	return image.Rect(0, 0, dw, dh)
}

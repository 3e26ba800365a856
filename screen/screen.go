//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package screen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
	"golang.org/x/term"

	gott "github.com/timburks/barn/types"
)

// Rows below the text area: the status bar and the message bar.
const reservedRows = 2

var ErrNotTerminal = errors.New("screen: stdin and stdout must be terminals")

// The Screen owns the terminal. It reads events with termbox and writes
// frames assembled in a Buffer to out.
type Screen struct {
	out     io.Writer
	frame   *Buffer
	size    gott.Size // screen size
	events  chan termbox.Event
	done    chan struct{}
	stopped chan struct{}
}

func NewScreen(out io.Writer) (*Screen, error) {
	if err := checkTerminal(out, term.IsTerminal); err != nil {
		return nil, err
	}
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	s := &Screen{
		out:     out,
		frame:   NewBuffer(),
		events:  make(chan termbox.Event),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	s.size.Cols, s.size.Rows = termbox.Size()
	if s.size.Cols == 0 || s.size.Rows == 0 {
		cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			termbox.Close()
			return nil, fmt.Errorf("get terminal size: %w", err)
		}
		s.size = gott.Size{Rows: rows, Cols: cols}
	}
	go s.pump()
	return s, nil
}

// Frames are written to out while termbox reads keys from the tty, so both
// stdin and out must be terminals.
func checkTerminal(out io.Writer, isTerminal func(fd int) bool) error {
	if !isTerminal(int(os.Stdin.Fd())) {
		return ErrNotTerminal
	}
	f, ok := out.(interface{ Fd() uintptr })
	if !ok || !isTerminal(int(f.Fd())) {
		return ErrNotTerminal
	}
	return nil
}

// pump forwards termbox events until Close interrupts it.
func (s *Screen) pump() {
	defer close(s.stopped)
	for {
		event := termbox.PollEvent()
		if event.Type == termbox.EventInterrupt {
			return
		}
		select {
		case s.events <- event:
		case <-s.done:
		}
	}
}

func (s *Screen) Close() {
	select {
	case <-s.done:
		return
	default:
	}
	close(s.done)
	select {
	case <-s.stopped:
	default:
		termbox.Interrupt()
		<-s.stopped
	}
	termbox.Close()
}

// TextSize is the part of the screen available to a window.
func (s *Screen) TextSize() gott.Size {
	return TextSize(s.size)
}

func TextSize(screenSize gott.Size) gott.Size {
	size := screenSize
	size.Rows -= reservedRows
	if size.Rows < 1 {
		size.Rows = 1
	}
	return size
}

// Render draws and flushes one frame.
func (s *Screen) Render(w gott.Window, m gott.Message, c gott.Commander) error {
	Compose(s.frame, w, m, c)
	return s.frame.Flush(s.out)
}

// Compose assembles a complete frame in frame without writing it anywhere.
func Compose(frame *Buffer, w gott.Window, m gott.Message, c gott.Commander) {
	frame.HideCursor()
	frame.Home()
	w.Scroll()
	w.DrawRows(frame)
	w.DrawStatusBar(frame)
	DrawMessageBar(frame, messageLine(m, c), w.GetSize().Cols)
	position := w.ScreenPosition()
	frame.MoveCursorTo(position.Col, position.Row)
	frame.ShowCursor()
}

func messageLine(m gott.Message, c gott.Commander) string {
	if c != nil {
		switch c.GetMode() {
		case gott.ModeCommand:
			return ":" + c.GetPrompt()
		case gott.ModeSearch:
			return "/" + c.GetPrompt()
		case gott.ModeLisp:
			return c.GetPrompt()
		}
	}
	if m != nil {
		if text, ok := m.Current(); ok {
			return text
		}
	}
	return ""
}

// GetNextEvent blocks until the terminal reports an event or ctx is done.
func (s *Screen) GetNextEvent(ctx context.Context) (*gott.Event, error) {
	select {
	case event := <-s.events:
		if event.Type == termbox.EventError {
			return nil, fmt.Errorf("read terminal event: %w", event.Err)
		}
		if event.Type == termbox.EventResize {
			s.size = gott.Size{Rows: event.Height, Cols: event.Width}
		}
		return convertEvent(event), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func convertEvent(event termbox.Event) *gott.Event {
	e := &gott.Event{
		Key:    key(event.Key),
		Ch:     event.Ch,
		Width:  event.Width,
		Height: event.Height,
	}
	switch event.Type {
	case termbox.EventKey:
		e.Type = gott.EventKey
	case termbox.EventResize:
		e.Type = gott.EventResize
	case termbox.EventInterrupt:
		e.Type = gott.EventInterrupt
	default:
		e.Type = gott.EventError
	}
	if event.Ch != 0 {
		e.Key = gott.KeyUnsupported
	}
	return e
}

func key(k termbox.Key) gott.Key {
	switch k {
	case termbox.KeyArrowDown:
		return gott.KeyArrowDown
	case termbox.KeyArrowLeft:
		return gott.KeyArrowLeft
	case termbox.KeyArrowRight:
		return gott.KeyArrowRight
	case termbox.KeyArrowUp:
		return gott.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return gott.KeyBackspace
	case termbox.KeyCtrlA:
		return gott.KeyCtrlA
	case termbox.KeyCtrlB:
		return gott.KeyCtrlB
	case termbox.KeyCtrlE:
		return gott.KeyCtrlE
	case termbox.KeyCtrlF:
		return gott.KeyCtrlF
	case termbox.KeyCtrlQ:
		return gott.KeyCtrlQ
	case termbox.KeyEnd:
		return gott.KeyEnd
	case termbox.KeyEnter:
		return gott.KeyEnter
	case termbox.KeyEsc:
		return gott.KeyEsc
	case termbox.KeyHome:
		return gott.KeyHome
	case termbox.KeyPgdn:
		return gott.KeyPgdn
	case termbox.KeyPgup:
		return gott.KeyPgup
	case termbox.KeySpace:
		return gott.KeySpace
	case termbox.KeyTab:
		return gott.KeyTab
	default:
		return gott.KeyUnsupported
	}
}

// DrawMessageBar clears the message line and draws text truncated to cols.
func DrawMessageBar(d gott.Display, text string, cols int) {
	d.ClearToEndOfLine()
	if text == "" || cols <= 0 {
		return
	}
	d.AppendString(runewidth.Truncate(text, cols, ""))
}

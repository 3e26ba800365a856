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
package commander

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/timburks/barn/config"
	"github.com/timburks/barn/editor"
	gott "github.com/timburks/barn/types"
)

// The Commander converts user input into commands for a Window.
type Commander struct {
	window     *editor.Window
	message    *editor.StatusMessage
	logger     *slog.Logger
	up         rune
	down       rune
	left       rune
	right      rune
	mode       int    // editor mode
	prompt     []rune // command, search or lisp text as it is being typed
	searchText string // last search, repeated with n
	multiplier string // multiplier string as it is being entered
}

func NewCommander(w *editor.Window, m *editor.StatusMessage, keymaps config.CursorKeymaps, logger *slog.Logger) *Commander {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &Commander{window: w, message: m, logger: logger, mode: gott.ModeEdit}
	c.up, c.down, c.left, c.right = keymaps.Runes()
	c.bindPrimitives()
	return c
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) SetMode(m int) {
	c.mode = m
}

func (c *Commander) IsRunning() bool {
	return c.mode != gott.ModeQuit
}

// GetPrompt returns the text typed so far in a prompt mode.
func (c *Commander) GetPrompt() string {
	return string(c.prompt)
}

func (c *Commander) ProcessEvent(event *gott.Event) error {
	switch event.Type {
	case gott.EventKey:
		return c.ProcessKey(event)
	case gott.EventResize:
		return nil
	case gott.EventError:
		return fmt.Errorf("unexpected terminal event %+v", *event)
	default:
		return nil
	}
}

func (c *Commander) ProcessKey(event *gott.Event) error {
	switch c.mode {
	case gott.ModeEdit:
		c.ProcessKeyEditMode(event)
	case gott.ModeCommand, gott.ModeSearch, gott.ModeLisp:
		c.ProcessKeyPromptMode(event)
	}
	return nil
}

func (c *Commander) ProcessKeyEditMode(event *gott.Event) {
	w := c.window

	if event.Ch == 0 {
		switch event.Key {
		case gott.KeyCtrlQ:
			c.mode = gott.ModeQuit
		case gott.KeyArrowUp:
			c.move(gott.MoveUp)
		case gott.KeyArrowDown:
			c.move(gott.MoveDown)
		case gott.KeyArrowLeft:
			c.move(gott.MoveLeft)
		case gott.KeyArrowRight:
			c.move(gott.MoveRight)
		case gott.KeyHome, gott.KeyCtrlA:
			w.MoveCursor(gott.MoveHome)
		case gott.KeyEnd, gott.KeyCtrlE:
			w.MoveCursor(gott.MoveEnd)
		case gott.KeyPgup, gott.KeyCtrlB:
			for i := c.Multiplier(); i > 0; i-- {
				w.PageUp()
			}
		case gott.KeyPgdn, gott.KeyCtrlF:
			for i := c.Multiplier(); i > 0; i-- {
				w.PageDown()
			}
		}
		// a count only applies to the key that follows it
		c.multiplier = ""
		return
	}

	ch := event.Ch
	if ch < '0' || ch > '9' {
		defer func() { c.multiplier = "" }()
	}
	// configured movement keys take precedence over commands
	switch ch {
	case c.up:
		c.move(gott.MoveUp)
		return
	case c.down:
		c.move(gott.MoveDown)
		return
	case c.left:
		c.move(gott.MoveLeft)
		return
	case c.right:
		c.move(gott.MoveRight)
		return
	}
	switch ch {
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		c.multiplier += string(ch)
	case '0':
		if c.multiplier == "" {
			w.MoveCursor(gott.MoveHome)
		} else {
			c.multiplier += string(ch)
		}
	case '$':
		w.MoveCursor(gott.MoveEnd)
	case 'G':
		if c.multiplier == "" {
			w.GotoLine(w.GetBuffer().GetRowCount())
		} else {
			w.GotoLine(c.Multiplier())
		}
	case ':':
		c.openPrompt(gott.ModeCommand, "")
	case '/':
		c.openPrompt(gott.ModeSearch, "")
	case 'n':
		c.search(c.searchText)
	case '(':
		c.openPrompt(gott.ModeLisp, "(")
	}
}

func (c *Commander) move(direction gott.Direction) {
	for i := c.Multiplier(); i > 0; i-- {
		c.window.MoveCursor(direction)
	}
}

func (c *Commander) openPrompt(mode int, initial string) {
	c.mode = mode
	c.prompt = []rune(initial)
	c.multiplier = ""
}

func (c *Commander) ProcessKeyPromptMode(event *gott.Event) {
	if event.Ch != 0 {
		c.prompt = append(c.prompt, event.Ch)
		return
	}
	switch event.Key {
	case gott.KeyEsc:
		c.mode = gott.ModeEdit
	case gott.KeyEnter:
		mode := c.mode
		text := string(c.prompt)
		c.mode = gott.ModeEdit
		switch mode {
		case gott.ModeCommand:
			c.PerformCommand(text)
		case gott.ModeSearch:
			c.searchText = text
			c.search(text)
		case gott.ModeLisp:
			c.message.Set(c.ParseEval(text))
		}
	case gott.KeyBackspace:
		if len(c.prompt) > 0 {
			c.prompt = c.prompt[:len(c.prompt)-1]
		}
	case gott.KeySpace:
		c.prompt = append(c.prompt, ' ')
	case gott.KeyCtrlQ:
		c.mode = gott.ModeQuit
	}
}

func (c *Commander) search(text string) {
	if text == "" {
		return
	}
	if !c.window.Find(text) {
		c.message.Setf("Pattern not found: %s", text)
	}
}

func (c *Commander) PerformCommand(command string) {
	w := c.window
	c.logger.Debug("command", "text", command)

	parts := strings.Fields(command)
	if len(parts) == 0 {
		return
	}
	if line, err := strconv.Atoi(parts[0]); err == nil {
		w.GotoLine(line)
		return
	}
	switch parts[0] {
	case "q", "quit":
		c.mode = gott.ModeQuit
	case "$":
		w.GotoLine(w.GetBuffer().GetRowCount())
	default:
		c.message.Setf("Not an editor command: %s", parts[0])
	}
}

// Multiplier returns the pending count, or 1, and clears it.
func (c *Commander) Multiplier() int {
	if c.multiplier == "" {
		return 1
	}
	i, err := strconv.Atoi(c.multiplier)
	c.multiplier = ""
	if err != nil || i < 1 {
		return 1
	}
	return i
}

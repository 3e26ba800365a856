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
package editor

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	gott "github.com/timburks/barn/types"
)

const Version = "0.1.0"

// A Window is a view of a buffer. It owns the cursor and the display
// offset; Scroll is the only method that changes the offset.
type Window struct {
	buffer    *Buffer
	size      gott.Size  // rows and columns available for text
	cursor    gott.Point // cursor position in the buffer
	renderCol int        // cursor column after tab expansion
	offset    gott.Size  // display offset
}

func NewWindow(b *Buffer, size gott.Size) *Window {
	if b == nil {
		b = NewBuffer()
	}
	return &Window{buffer: b, size: size}
}

func (w *Window) GetBuffer() *Buffer {
	return w.buffer
}

func (w *Window) GetCursor() gott.Point {
	return w.cursor
}

// SetCursor moves the cursor, keeping it inside the buffer.
func (w *Window) SetCursor(cursor gott.Point) {
	w.cursor.Row = clipToRange(cursor.Row, 0, w.buffer.GetRowCount())
	w.cursor.Col = clipToRange(cursor.Col, 0, w.currentRowLength())
}

func (w *Window) GetOffset() gott.Size {
	return w.offset
}

func (w *Window) GetSize() gott.Size {
	return w.size
}

// Resize changes the text area. The offset catches up on the next Scroll.
func (w *Window) Resize(size gott.Size) {
	w.size = size
}

// Length of the row under the cursor, 0 below the last row.
func (w *Window) currentRowLength() int {
	if w.cursor.Row < w.buffer.GetRowCount() {
		return w.buffer.GetRowLength(w.cursor.Row)
	}
	return 0
}

func (w *Window) MoveCursor(direction gott.Direction) {
	rowCount := w.buffer.GetRowCount()
	switch direction {
	case gott.MoveUp:
		if w.cursor.Row > 0 {
			w.cursor.Row--
		}
	case gott.MoveDown:
		if w.cursor.Row < rowCount {
			w.cursor.Row++
		}
	case gott.MoveLeft:
		if w.cursor.Col > 0 {
			w.cursor.Col--
		} else if w.cursor.Row > 0 {
			// wrap to the end of the previous line
			w.cursor.Row--
			w.cursor.Col = w.buffer.GetRowLength(w.cursor.Row)
		}
	case gott.MoveRight:
		if w.cursor.Row < rowCount {
			if w.cursor.Col < w.buffer.GetRowLength(w.cursor.Row) {
				w.cursor.Col++
			} else {
				// wrap to the start of the next line
				w.cursor.Row++
				w.cursor.Col = 0
			}
		}
	case gott.MoveHome:
		w.cursor.Col = 0
	case gott.MoveEnd:
		if w.cursor.Row < rowCount {
			w.cursor.Col = w.buffer.GetRowLength(w.cursor.Row)
		}
	}
	// a vertical move can land on a shorter row
	if rowLength := w.currentRowLength(); w.cursor.Col > rowLength {
		w.cursor.Col = rowLength
	}
}

func (w *Window) PageUp() {
	for i := 0; i < w.size.Rows; i++ {
		w.MoveCursor(gott.MoveUp)
	}
}

func (w *Window) PageDown() {
	for i := 0; i < w.size.Rows; i++ {
		w.MoveCursor(gott.MoveDown)
	}
}

// GotoLine moves the cursor to the start of a 1-based line number.
func (w *Window) GotoLine(line int) {
	w.SetCursor(gott.Point{Row: clipToRange(line-1, 0, w.buffer.GetRowCount()-1)})
}

// Find moves the cursor to the next occurrence of text after the cursor,
// wrapping around at the end of the buffer.
func (w *Window) Find(text string) bool {
	rowCount := w.buffer.GetRowCount()
	if text == "" || rowCount == 0 {
		return false
	}
	needle := []rune(text)
	row, col := w.cursor.Row, w.cursor.Col+1
	if row >= rowCount {
		row, col = 0, 0
	}
	for i := 0; i <= rowCount; i++ {
		line := w.buffer.row(row).Text
		if col <= len(line) {
			if j := indexRunes(line[col:], needle); j != -1 {
				w.cursor = gott.Point{Row: row, Col: col + j}
				return true
			}
		}
		col = 0
		row++
		if row == rowCount {
			row = 0
		}
	}
	return false
}

func indexRunes(haystack, needle []rune) int {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j, c := range needle {
			if haystack[i+j] != c {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// RenderColumn returns the visual column of the cursor.
func (w *Window) RenderColumn() int {
	if w.cursor.Row >= w.buffer.GetRowCount() {
		return 0
	}
	return w.buffer.row(w.cursor.Row).RenderColumn(w.cursor.Col)
}

// Recompute the display offset to keep the cursor onscreen.
func (w *Window) Scroll() {
	w.renderCol = w.RenderColumn()
	if w.cursor.Row < w.offset.Rows {
		// scroll up
		w.offset.Rows = w.cursor.Row
	}
	if w.cursor.Row >= w.offset.Rows+w.size.Rows {
		// scroll down
		w.offset.Rows = w.cursor.Row - w.size.Rows + 1
	}
	if w.renderCol < w.offset.Cols {
		// scroll left
		w.offset.Cols = w.renderCol
	}
	if w.renderCol >= w.offset.Cols+w.size.Cols {
		// scroll right
		w.offset.Cols = w.renderCol - w.size.Cols + 1
	}
}

// ScreenPosition is where the terminal cursor goes. Call Scroll first.
func (w *Window) ScreenPosition() gott.Point {
	return gott.Point{
		Col: w.renderCol - w.offset.Cols,
		Row: w.cursor.Row - w.offset.Rows,
	}
}

// DrawRows draws the visible part of the buffer, one line per screen row.
func (w *Window) DrawRows(d gott.Display) {
	rowCount := w.buffer.GetRowCount()
	for i := 0; i < w.size.Rows; i++ {
		fileRow := i + w.offset.Rows
		if fileRow >= rowCount {
			if rowCount == 0 && i == w.size.Rows/3 {
				w.drawWelcome(d)
			} else {
				d.AppendChar('~')
			}
		} else {
			line := w.buffer.row(fileRow).Render
			if w.offset.Cols < len(line) {
				line = line[w.offset.Cols:]
				if len(line) > w.size.Cols {
					line = line[:w.size.Cols]
				}
				d.AppendString(string(line))
			}
		}
		d.ClearToEndOfLine()
		d.AppendString("\r\n")
	}
}

func (w *Window) drawWelcome(d gott.Display) {
	welcome := []rune(fmt.Sprintf("the barn editor -- version %s", Version))
	if len(welcome) > w.size.Cols {
		welcome = welcome[:w.size.Cols]
	}
	padding := (w.size.Cols - len(welcome)) / 2
	if padding > 0 {
		d.AppendChar('~')
		d.AppendString(strings.Repeat(" ", padding-1))
	}
	d.AppendString(string(welcome))
}

// DrawStatusBar draws a single reverse-video line of exactly size.Cols cells.
func (w *Window) DrawStatusBar(d gott.Display) {
	d.SetReverse(true)
	d.AppendString(w.computeInfoBarText(w.size.Cols))
	d.SetReverse(false)
	d.AppendString("\r\n")
}

// Compute the text to display on the info bar.
func (w *Window) computeInfoBarText(length int) string {
	if length <= 0 {
		return ""
	}
	b := w.buffer
	finalText := fmt.Sprintf("%d/%d", w.cursor.Row+1, b.GetRowCount())
	text := fmt.Sprintf("%s - %d lines", b.GetName(), b.GetRowCount())
	finalWidth := runewidth.StringWidth(finalText)
	if finalWidth >= length {
		return runewidth.FillRight(runewidth.Truncate(finalText, length, ""), length)
	}
	textWidth := length - finalWidth
	text = runewidth.FillRight(runewidth.Truncate(text, textWidth, ""), textWidth)
	return text + finalText
}

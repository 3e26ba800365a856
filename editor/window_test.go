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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gott "github.com/timburks/barn/types"
)

func setup(t *testing.T, text string, size gott.Size) *Window {
	t.Helper()
	b := NewBuffer()
	b.LoadBytes([]byte(text))
	return NewWindow(b, size)
}

func TestScenario(t *testing.T) {
	w := setup(t, "Hello World\n\n\tTabbed\n", gott.Size{Rows: 24, Cols: 80})
	assert.Equal(t, gott.Point{Row: 0, Col: 0}, w.GetCursor())

	w.MoveCursor(gott.MoveEnd)
	assert.Equal(t, gott.Point{Row: 0, Col: 11}, w.GetCursor())

	w.MoveCursor(gott.MoveDown)
	assert.Equal(t, gott.Point{Row: 1, Col: 0}, w.GetCursor())
	w.MoveCursor(gott.MoveDown)
	assert.Equal(t, gott.Point{Row: 2, Col: 0}, w.GetCursor())

	// one step right passes the tab, which renders to column 8
	w.MoveCursor(gott.MoveHome)
	w.MoveCursor(gott.MoveRight)
	w.Scroll()
	assert.Equal(t, 8, w.RenderColumn())
	assert.Equal(t, gott.Size{}, w.GetOffset())
	assert.Equal(t, gott.Point{Row: 2, Col: 8}, w.ScreenPosition())
}

func TestMoveUpDown(t *testing.T) {
	w := setup(t, "one\ntwo\nthree\n", gott.Size{Rows: 10, Cols: 10})
	w.MoveCursor(gott.MoveUp)
	assert.Equal(t, 0, w.GetCursor().Row)
	for i := 0; i < 10; i++ {
		w.MoveCursor(gott.MoveDown)
	}
	// the row below the last line is reachable and is the limit
	assert.Equal(t, 3, w.GetCursor().Row)
	assert.Equal(t, 0, w.GetCursor().Col)
}

func TestVerticalMoveClampsColumn(t *testing.T) {
	w := setup(t, "a long line\nab\n", gott.Size{Rows: 10, Cols: 80})
	w.MoveCursor(gott.MoveEnd)
	require.Equal(t, 11, w.GetCursor().Col)
	w.MoveCursor(gott.MoveDown)
	assert.Equal(t, gott.Point{Row: 1, Col: 2}, w.GetCursor())
	w.MoveCursor(gott.MoveDown)
	assert.Equal(t, gott.Point{Row: 2, Col: 0}, w.GetCursor())
}

func TestMoveLeftWraps(t *testing.T) {
	w := setup(t, "first\nsecond\n", gott.Size{Rows: 10, Cols: 80})
	w.SetCursor(gott.Point{Row: 1, Col: 0})
	w.MoveCursor(gott.MoveLeft)
	assert.Equal(t, gott.Point{Row: 0, Col: 5}, w.GetCursor())

	w.SetCursor(gott.Point{Row: 0, Col: 0})
	w.MoveCursor(gott.MoveLeft)
	assert.Equal(t, gott.Point{Row: 0, Col: 0}, w.GetCursor())
}

func TestMoveRightWraps(t *testing.T) {
	w := setup(t, "ab\ncd\n", gott.Size{Rows: 10, Cols: 80})
	w.MoveCursor(gott.MoveRight)
	w.MoveCursor(gott.MoveRight)
	assert.Equal(t, gott.Point{Row: 0, Col: 2}, w.GetCursor())
	w.MoveCursor(gott.MoveRight)
	assert.Equal(t, gott.Point{Row: 1, Col: 0}, w.GetCursor())

	w.MoveCursor(gott.MoveEnd)
	w.MoveCursor(gott.MoveRight)
	assert.Equal(t, gott.Point{Row: 2, Col: 0}, w.GetCursor())
	// nothing beyond the row below the last line
	w.MoveCursor(gott.MoveRight)
	assert.Equal(t, gott.Point{Row: 2, Col: 0}, w.GetCursor())
}

func TestMoveEndBelowLastRow(t *testing.T) {
	w := setup(t, "abc\n", gott.Size{Rows: 10, Cols: 80})
	w.MoveCursor(gott.MoveDown)
	w.MoveCursor(gott.MoveEnd)
	assert.Equal(t, gott.Point{Row: 1, Col: 0}, w.GetCursor())
	assert.Equal(t, 0, w.RenderColumn())
}

func TestEmptyBuffer(t *testing.T) {
	w := setup(t, "", gott.Size{Rows: 10, Cols: 80})
	for _, d := range []gott.Direction{gott.MoveUp, gott.MoveDown, gott.MoveLeft, gott.MoveRight, gott.MoveHome, gott.MoveEnd} {
		w.MoveCursor(d)
		assert.Equal(t, gott.Point{}, w.GetCursor(), "after %s", d)
	}
	w.Scroll()
	assert.Equal(t, gott.Point{}, w.ScreenPosition())
}

func TestPageUpDown(t *testing.T) {
	w := setup(t, strings.Repeat("line\n", 50), gott.Size{Rows: 10, Cols: 80})
	w.PageDown()
	assert.Equal(t, 10, w.GetCursor().Row)
	w.PageDown()
	w.PageDown()
	w.PageDown()
	w.PageDown()
	assert.Equal(t, 50, w.GetCursor().Row)
	w.PageDown()
	assert.Equal(t, 50, w.GetCursor().Row)
	w.PageUp()
	assert.Equal(t, 40, w.GetCursor().Row)
	for i := 0; i < 5; i++ {
		w.PageUp()
	}
	assert.Equal(t, 0, w.GetCursor().Row)
}

func TestScrollKeepsCursorVisible(t *testing.T) {
	size := gott.Size{Rows: 5, Cols: 10}
	w := setup(t, strings.Repeat("0123456789abcdefghij\n", 30), size)
	moves := []gott.Direction{}
	for i := 0; i < 40; i++ {
		moves = append(moves, gott.MoveDown, gott.MoveRight)
	}
	for i := 0; i < 40; i++ {
		moves = append(moves, gott.MoveUp, gott.MoveLeft, gott.MoveLeft)
	}
	for _, d := range moves {
		before := w.GetOffset()
		renderCol := w.renderCol
		w.MoveCursor(d)
		w.Scroll()
		cursor, offset := w.GetCursor(), w.GetOffset()
		require.LessOrEqual(t, offset.Rows, cursor.Row)
		require.Less(t, cursor.Row, offset.Rows+size.Rows)
		require.LessOrEqual(t, offset.Cols, w.renderCol)
		require.Less(t, w.renderCol, offset.Cols+size.Cols)
		// one step per one-cell move
		assert.LessOrEqual(t, abs(offset.Rows-before.Rows), 1)
		if abs(w.renderCol-renderCol) <= 1 {
			assert.LessOrEqual(t, abs(offset.Cols-before.Cols), 1)
		}
	}
}

func TestScrollRight(t *testing.T) {
	w := setup(t, strings.Repeat("x", 30)+"\n", gott.Size{Rows: 5, Cols: 10})
	w.MoveCursor(gott.MoveEnd)
	w.Scroll()
	assert.Equal(t, 21, w.GetOffset().Cols)
	assert.Equal(t, gott.Point{Row: 0, Col: 9}, w.ScreenPosition())
	w.MoveCursor(gott.MoveHome)
	w.Scroll()
	assert.Equal(t, 0, w.GetOffset().Cols)
}

func TestScrollAfterResize(t *testing.T) {
	w := setup(t, strings.Repeat("line\n", 50), gott.Size{Rows: 20, Cols: 80})
	w.GotoLine(20)
	w.Scroll()
	assert.Equal(t, 0, w.GetOffset().Rows)
	w.Resize(gott.Size{Rows: 10, Cols: 80})
	w.Scroll()
	assert.Equal(t, 10, w.GetOffset().Rows)
	assert.Equal(t, gott.Point{Row: 9, Col: 0}, w.ScreenPosition())
}

func TestGotoLine(t *testing.T) {
	w := setup(t, "a\nb\nc\n", gott.Size{Rows: 10, Cols: 80})
	w.GotoLine(2)
	assert.Equal(t, gott.Point{Row: 1, Col: 0}, w.GetCursor())
	w.GotoLine(99)
	assert.Equal(t, 2, w.GetCursor().Row)
	w.GotoLine(-3)
	assert.Equal(t, 0, w.GetCursor().Row)
}

func TestFind(t *testing.T) {
	w := setup(t, "alpha beta\ngamma\nbeta delta\n", gott.Size{Rows: 10, Cols: 80})
	require.True(t, w.Find("beta"))
	assert.Equal(t, gott.Point{Row: 0, Col: 6}, w.GetCursor())
	require.True(t, w.Find("beta"))
	assert.Equal(t, gott.Point{Row: 2, Col: 0}, w.GetCursor())
	// wraps around to the top
	require.True(t, w.Find("beta"))
	assert.Equal(t, gott.Point{Row: 0, Col: 6}, w.GetCursor())
	assert.False(t, w.Find("omega"))
	assert.Equal(t, gott.Point{Row: 0, Col: 6}, w.GetCursor())
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

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
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct {
	writes int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	return 0, errors.New("disk on fire")
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) {
	return len(p) / 2, nil
}

type countingWriter struct {
	bytes.Buffer
	writes int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return w.Buffer.Write(p)
}

// io.WriteString would otherwise use the promoted bytes.Buffer method.
func (w *countingWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

func TestFlushWritesOnce(t *testing.T) {
	b := NewBuffer()
	b.AppendString("abc")
	b.AppendChar('d')
	b.AppendChar('é')
	b.ClearToEndOfLine()

	var out countingWriter
	require.NoError(t, b.Flush(&out))
	assert.Equal(t, 1, out.writes)
	assert.Equal(t, "abcdé\x1b[K", out.String())
	assert.Equal(t, 0, b.Len())
}

func TestFlushEmpty(t *testing.T) {
	var out countingWriter
	require.NoError(t, NewBuffer().Flush(&out))
	assert.Equal(t, 0, out.writes)
}

func TestFlushFailureDiscardsFrame(t *testing.T) {
	b := NewBuffer()
	b.AppendString("lost")
	w := &failingWriter{}
	err := b.Flush(w)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
	assert.Equal(t, 1, w.writes)
	assert.Equal(t, 0, b.Len())

	// the next frame starts clean
	b.AppendString("next")
	var out bytes.Buffer
	require.NoError(t, b.Flush(&out))
	assert.Equal(t, "next", out.String())
}

func TestFlushShortWrite(t *testing.T) {
	b := NewBuffer()
	b.AppendString("half a frame")
	err := b.Flush(shortWriter{})
	assert.ErrorIs(t, err, io.ErrShortWrite)
	assert.Equal(t, 0, b.Len())
}

func TestTerminalControls(t *testing.T) {
	b := NewBuffer()
	b.HideCursor()
	b.Home()
	b.SetReverse(true)
	b.SetReverse(false)
	b.MoveCursorTo(4, 2)
	b.ShowCursor()
	b.ClearScreen()
	assert.Equal(t, "\x1b[?25l\x1b[H\x1b[7m\x1b[m\x1b[3;5H\x1b[?25h\x1b[2J", b.String())

	b.Discard()
	assert.Equal(t, "", b.String())
}

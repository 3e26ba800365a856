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
	"fmt"
	"io"
	"strings"
)

// A Buffer collects one frame of output. Nothing reaches the terminal
// until Flush.
type Buffer struct {
	b strings.Builder
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

func (b *Buffer) AppendChar(c rune) {
	b.b.WriteRune(c)
}

func (b *Buffer) AppendString(s string) {
	b.b.WriteString(s)
}

func (b *Buffer) ClearToEndOfLine() {
	b.b.WriteString("\x1b[K")
}

func (b *Buffer) SetReverse(on bool) {
	if on {
		b.b.WriteString("\x1b[7m")
	} else {
		b.b.WriteString("\x1b[m")
	}
}

func (b *Buffer) HideCursor() {
	b.b.WriteString("\x1b[?25l")
}

func (b *Buffer) ShowCursor() {
	b.b.WriteString("\x1b[?25h")
}

// Home moves the terminal cursor to the top left corner.
func (b *Buffer) Home() {
	b.b.WriteString("\x1b[H")
}

func (b *Buffer) ClearScreen() {
	b.b.WriteString("\x1b[2J")
}

// MoveCursorTo positions the terminal cursor at a 0-based screen position.
func (b *Buffer) MoveCursorTo(col, row int) {
	fmt.Fprintf(&b.b, "\x1b[%d;%dH", row+1, col+1)
}

func (b *Buffer) Len() int {
	return b.b.Len()
}

func (b *Buffer) String() string {
	return b.b.String()
}

// Discard drops everything appended since the last flush.
func (b *Buffer) Discard() {
	b.b.Reset()
}

// Flush writes the frame with a single Write and empties the buffer.
// The frame is dropped even if the write fails.
func (b *Buffer) Flush(w io.Writer) error {
	defer b.b.Reset()
	if b.b.Len() == 0 {
		return nil
	}
	n, err := io.WriteString(w, b.b.String())
	if err != nil {
		return fmt.Errorf("flush frame: %w", err)
	}
	if n < b.b.Len() {
		return fmt.Errorf("flush frame: %w", io.ErrShortWrite)
	}
	return nil
}

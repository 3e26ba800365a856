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
	"os"
	"strings"
)

// Shown in place of a file name for buffers that were not read from a file.
const NoName = "[No Name]"

// A Buffer holds the rows of a file being viewed.
type Buffer struct {
	rows     []*Row
	fileName string
}

func NewBuffer() *Buffer {
	b := &Buffer{}
	b.rows = make([]*Row, 0)
	return b
}

// ReadFile replaces the contents of the buffer with the file at path.
// An empty path leaves the buffer empty and unnamed.
func (b *Buffer) ReadFile(path string) error {
	if path == "" {
		b.rows = make([]*Row, 0)
		b.fileName = ""
		return nil
	}
	bytes, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	b.LoadBytes(bytes)
	b.fileName = path
	return nil
}

// LoadBytes splits bytes into rows. A trailing newline does not start
// another row, and carriage returns before a newline are dropped.
func (b *Buffer) LoadBytes(bytes []byte) {
	b.rows = make([]*Row, 0)
	s := string(bytes)
	if s == "" {
		return
	}
	s = strings.TrimSuffix(s, "\n")
	for _, line := range strings.Split(s, "\n") {
		b.rows = append(b.rows, NewRow(strings.TrimSuffix(line, "\r")))
	}
}

func (b *Buffer) GetFileName() string {
	return b.fileName
}

// GetName returns the name to display for the buffer.
func (b *Buffer) GetName() string {
	if b.fileName == "" {
		return NoName
	}
	return b.fileName
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

func (b *Buffer) Row(i int) string {
	return string(b.row(i).Text)
}

func (b *Buffer) RenderedRow(i int) string {
	return b.row(i).DisplayText()
}

func (b *Buffer) GetRowLength(i int) int {
	return b.row(i).Length()
}

func (b *Buffer) GetRenderedRowLength(i int) int {
	return b.row(i).RenderLength()
}

// Callers check i against GetRowCount first; anything else is a bug.
func (b *Buffer) row(i int) *Row {
	if i < 0 || i >= len(b.rows) {
		panic(fmt.Sprintf("editor: row %d out of range [0,%d)", i, len(b.rows)))
	}
	return b.rows[i]
}

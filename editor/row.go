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

// Tabs are expanded to the next multiple of TabStop.
const TabStop = 8

// A row of text in the editor
type Row struct {
	Text   []rune // raw characters, no trailing newline
	Render []rune // Text with tabs expanded
}

func NewRow(text string) *Row {
	r := &Row{Text: []rune(text)}
	r.Update()
	return r
}

// Update recomputes the rendered form from Text.
func (r *Row) Update() {
	r.Render = ExpandTabs(r.Text)
}

func (r *Row) DisplayText() string {
	return string(r.Render)
}

func (r *Row) Length() int {
	return len(r.Text)
}

func (r *Row) RenderLength() int {
	return len(r.Render)
}

// RenderColumn returns the visual column of col after tab expansion.
func (r *Row) RenderColumn(col int) int {
	return RenderColumn(r.Text, col)
}

// ExpandTabs replaces each tab with the spaces needed to reach the next tab stop.
func ExpandTabs(text []rune) []rune {
	render := make([]rune, 0, len(text))
	for _, c := range text {
		if c == '\t' {
			render = append(render, ' ')
			for len(render)%TabStop != 0 {
				render = append(render, ' ')
			}
		} else {
			render = append(render, c)
		}
	}
	return render
}

// RenderColumn returns the visual column reached after the first col
// characters of text. col is clipped to the length of text.
func RenderColumn(text []rune, col int) int {
	col = clipToRange(col, 0, len(text))
	rx := 0
	for _, c := range text[:col] {
		if c == '\t' {
			rx += (TabStop - 1) - (rx % TabStop)
		}
		rx++
	}
	return rx
}

func clipToRange(v, low, high int) int {
	if v > high {
		v = high
	}
	if v < low {
		v = low
	}
	return v
}

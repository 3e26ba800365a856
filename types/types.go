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
package types

// Editor modes
const (
	ModeEdit    = 0
	ModeCommand = 2
	ModeSearch  = 3
	ModeLisp    = 4
	ModeQuit    = 9999
)

// A Direction is a single cursor movement.
type Direction int

// Move directions
const (
	MoveUp Direction = iota
	MoveDown
	MoveRight
	MoveLeft
	MoveHome
	MoveEnd
)

func (d Direction) String() string {
	switch d {
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveRight:
		return "right"
	case MoveLeft:
		return "left"
	case MoveHome:
		return "home"
	case MoveEnd:
		return "end"
	default:
		return "unknown"
	}
}

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// A Display accumulates the text and terminal controls of one frame.
type Display interface {
	AppendChar(c rune)
	AppendString(s string)
	ClearToEndOfLine()
	SetReverse(on bool)
}

// A Window is a scrolling view of a buffer.
type Window interface {
	Scroll()
	DrawRows(d Display)
	DrawStatusBar(d Display)
	ScreenPosition() Point
	GetSize() Size
	Resize(size Size)
}

// A Message is a transient line of text shown below the status bar.
type Message interface {
	Current() (string, bool)
}

type Commander interface {
	GetMode() int
	GetPrompt() string
}

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

// Event types
const (
	EventKey = iota
	EventResize
	EventError
	EventInterrupt
)

type Key int

// Keys that are not plain characters
const (
	KeyUnsupported Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPgup
	KeyPgdn
	KeyEnter
	KeyEsc
	KeyBackspace
	KeySpace
	KeyTab
	KeyCtrlA
	KeyCtrlB
	KeyCtrlE
	KeyCtrlF
	KeyCtrlQ
)

// An Event is a terminal input event. Ch is set for printable characters,
// Key for everything else.
type Event struct {
	Type   int
	Key    Key
	Ch     rune
	Width  int
	Height int
}

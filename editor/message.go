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
	"time"
)

// Messages disappear this long after they are set.
const MessageTimeout = 5 * time.Second

// A StatusMessage is a line of text that expires. Expiry is checked when the
// message is read; nothing runs in the background.
type StatusMessage struct {
	text  string
	setAt time.Time
	set   bool
	now   func() time.Time
}

// NewStatusMessage returns a message showing initial, if it is not empty.
func NewStatusMessage(initial string) *StatusMessage {
	m := &StatusMessage{now: time.Now}
	if initial != "" {
		m.Set(initial)
	}
	return m
}

func (m *StatusMessage) Set(text string) {
	m.text = text
	m.setAt = m.now()
	m.set = true
}

func (m *StatusMessage) Setf(format string, args ...interface{}) {
	m.Set(fmt.Sprintf(format, args...))
}

// Current returns the message text while it is fresh. Once it has expired
// it is cleared and stays cleared until the next Set.
func (m *StatusMessage) Current() (string, bool) {
	if !m.set {
		return "", false
	}
	if m.now().Sub(m.setAt) >= MessageTimeout {
		m.text = ""
		m.set = false
		return "", false
	}
	return m.text, true
}

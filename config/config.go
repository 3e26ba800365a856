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
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	toml "github.com/pelletier/go-toml/v2"
)

var ErrInvalidKeymap = errors.New("invalid cursor keymap")

// Characters the editor binds to commands. A keymap may not take them.
const commandKeys = "0123456789:/(nG$"

type Config struct {
	CursorKeymaps CursorKeymaps `toml:"cursor_keymaps"`
	Log           Log           `toml:"log"`
}

// CursorKeymaps are the characters that move the cursor, in addition to
// the arrow keys.
type CursorKeymaps struct {
	Up    string `toml:"up"`
	Down  string `toml:"down"`
	Left  string `toml:"left"`
	Right string `toml:"right"`
}

type Log struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

func Default() Config {
	return Config{
		CursorKeymaps: CursorKeymaps{Up: "k", Down: "j", Left: "h", Right: "l"},
		Log:           Log{File: defaultLogFile(), Level: "info"},
	}
}

func defaultLogFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".barnlog")
}

// Path is where the configuration is read from when no path is given.
func Path() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "barn", "config.toml")
}

// Load reads the configuration at path over the defaults. A missing file
// is not an error; a file that cannot be parsed is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	keys := map[string]string{
		"up":    c.CursorKeymaps.Up,
		"down":  c.CursorKeymaps.Down,
		"left":  c.CursorKeymaps.Left,
		"right": c.CursorKeymaps.Right,
	}
	seen := make(map[string]string, len(keys))
	for _, name := range []string{"up", "down", "left", "right"} {
		key := keys[name]
		if utf8.RuneCountInString(key) != 1 {
			return fmt.Errorf("%w: %s must be a single character, got %q", ErrInvalidKeymap, name, key)
		}
		if strings.Contains(commandKeys, key) {
			return fmt.Errorf("%w: %s is %q, which is an editor command", ErrInvalidKeymap, name, key)
		}
		if other, ok := seen[key]; ok {
			return fmt.Errorf("%w: %s and %s are both %q", ErrInvalidKeymap, other, name, key)
		}
		seen[key] = name
	}
	return nil
}

// Runes returns the keymap as characters, in up, down, left, right order.
func (k CursorKeymaps) Runes() (up, down, left, right rune) {
	first := func(s string) rune {
		r, _ := utf8.DecodeRuneInString(s)
		return r
	}
	return first(k.Up), first(k.Down), first(k.Left), first(k.Right)
}

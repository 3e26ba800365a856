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
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/timburks/barn/commander"
	"github.com/timburks/barn/config"
	"github.com/timburks/barn/editor"
	"github.com/timburks/barn/logging"
	"github.com/timburks/barn/screen"
	gott "github.com/timburks/barn/types"
)

const help = "HELP: Ctrl-Q = quit | / = find | : = command | ( = lisp"

func main() {
	var (
		configPath string
		logFile    string
		logLevel   string
		script     string
	)
	flag.StringVar(&configPath, "config", config.Path(), "Path to config.toml")
	flag.StringVar(&logFile, "log", "", "Append log output to this file (overrides config)")
	flag.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error (overrides config)")
	flag.StringVar(&script, "eval", "", "Evaluate a lisp expression against the file and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: barn [flags] [file]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(configPath, logFile, logLevel, script, flag.Arg(0)); err != nil {
		log.SetFlags(0)
		log.Fatalf("barn: %v", err)
	}
}

func run(configPath, logFile, logLevel, script, filename string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	logger, closer, err := logging.Open(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closer.Close()

	// The buffer manages the text of the file.
	b := editor.NewBuffer()
	if err := b.ReadFile(filename); err != nil {
		return err
	}
	logger.Info("loaded", "file", b.GetName(), "rows", b.GetRowCount())

	m := editor.NewStatusMessage(help)

	if script != "" {
		// Run a script against the buffer and exit.
		w := editor.NewWindow(b, screen.TextSize(gott.Size{Rows: 24, Cols: 80}))
		c := commander.NewCommander(w, m, cfg.CursorKeymaps, logger)
		fmt.Println(c.ParseEval(script))
		return nil
	}

	// The screen owns the terminal until it is closed.
	s, err := screen.NewScreen(os.Stdout)
	if err != nil {
		return err
	}
	defer s.Close()

	w := editor.NewWindow(b, s.TextSize())

	// The commander converts user inputs into commands for the window.
	c := commander.NewCommander(w, m, cfg.CursorKeymaps, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Run the main event loop.
	for c.IsRunning() {
		if err := s.Render(w, m, c); err != nil {
			logger.Error("render failed", "err", err)
			return err
		}
		event, err := s.GetNextEvent(ctx)
		if errors.Is(err, context.Canceled) {
			logger.Info("interrupted")
			return nil
		}
		if err != nil {
			logger.Error("event failed", "err", err)
			return err
		}
		if event.Type == gott.EventResize {
			w.Resize(screen.TextSize(gott.Size{Rows: event.Height, Cols: event.Width}))
		}
		if err := c.ProcessEvent(event); err != nil {
			logger.Warn("event not processed", "err", err)
		}
	}
	logger.Info("quit")
	return nil
}

// Copyright 2013 Google, Inc.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// teseq decodes a byte stream of terminal control sequences into a
// human-readable, line-oriented transcript: text runs, named controls,
// echoed escape bytes, and (optionally) English descriptions of what
// each sequence does.
//
// Usage:
//
//	teseq [flags] [FILE]
//
// With no FILE, teseq reads standard input. See -h for the full flag
// list.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/cloudwego/gopkg/bufiox"
	"gopkg.in/yaml.v3"

	"github.com/flw-cn/teseq"
	"github.com/flw-cn/teseq/internal/inputbuf"
	"github.com/flw-cn/teseq/internal/putter"
	"github.com/flw-cn/teseq/term"
	"github.com/flw-cn/teseq/termios"
)

// fileConfig is the YAML shape accepted by -config. Its keys (noesc,
// noDesc, caret, color, width) override the -E, -D, -C, -c and -w flags;
// there is no key for the timings file.
type fileConfig struct {
	NoEsc  *bool `yaml:"noesc"`
	NoDesc *bool `yaml:"noDesc"`
	Caret  *bool `yaml:"caret"`
	Color  *bool `yaml:"color"`
	Width  *int  `yaml:"width"`
}

func main() {
	var (
		noEsc       = flag.Bool("E", false, "suppress echoed-escape (\":\") lines")
		noEscLong   = flag.Bool("noesc", false, "alias for -E")
		noDesc      = flag.Bool("D", false, "suppress English description (\"\\\"\") lines")
		noDescLong  = flag.Bool("noDesc", false, "alias for -D")
		caret       = flag.Bool("C", false, "suffix control names with /^X")
		color       = flag.Bool("c", false, "colorize sigils")
		colorLong   = flag.Bool("color", false, "alias for -c")
		width       = flag.Int("w", 0, "putter line width (0 = default)")
		widthLong   = flag.Int("width", 0, "alias for -w")
		timings     = flag.String("t", "", "read a timings file and emit \"@\" delay lines")
		timingsLong = flag.String("timings", "", "alias for -t")
		configPath  = flag.String("config", "", "load a YAML config file overriding -E, -D, -C, -c and -w")
	)
	flag.Parse()

	cfg := teseq.DefaultConfig()
	cfg.EchoEscapes = !(*noEsc || *noEscLong)
	cfg.Describe = !(*noDesc || *noDescLong)
	cfg.CaretNames = *caret
	cfg.LineWidth = firstNonzero(*width, *widthLong)

	colorize := *color || *colorLong
	timingsPath := firstNonempty(*timings, *timingsLong)

	if *configPath != "" {
		var err error
		cfg, colorize, timingsPath, err = applyFileConfig(*configPath, cfg, colorize, timingsPath)
		if err != nil {
			log.Fatalf("config: %s", err)
		}
	}

	var src *os.File
	if path := flag.Arg(0); path != "" {
		f, err := os.Open(path)
		if err != nil {
			log.Fatalf("open: %s", err)
		}
		defer f.Close()
		src = f
	} else {
		src = os.Stdin
	}

	var tio *termios.TermSettings
	if fi, err := src.Stat(); err == nil && fi.Mode()&os.ModeCharDevice != 0 {
		tio, err = termios.NewTermSettings(int(src.Fd()))
		if err != nil {
			log.Fatalf("terminal: %s", err)
		}
		if err := tio.Raw(); err != nil {
			log.Fatalf("rawterm: %s", err)
		}
		defer tio.Reset()
	}

	reader := term.NewReader(src)

	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()
	defer signal.Stop(sigCh)

	out := putter.New(bufiox.NewDefaultWriter(os.Stdout), cfg.LineWidth)
	if colorize {
		out.SetColorizer(colorSigil)
	}

	ib := inputbuf.New(inputbuf.NewIOSource(reader), inputbuf.DefaultCapacity)
	proc := teseq.NewProcessor(cfg, ib, out, nil)

	if timingsPath != "" {
		tf, err := os.Open(timingsPath)
		if err != nil {
			log.Fatalf("timings: %s", err)
		}
		defer tf.Close()

		if err := proc.SkipPreamble(ctx); err != nil {
			log.Fatalf("teseq: %s", err)
		}
		proc.SetDelays(teseq.NewDelayReader(tf))
	}

	if err := proc.Run(ctx); err != nil {
		log.Fatalf("teseq: %s", err)
	}
}

// applyFileConfig loads a YAML document at path and overlays any fields
// it sets onto cfg/colorize/timingsPath, leaving unset fields untouched.
func applyFileConfig(path string, cfg teseq.Config, colorize bool, timingsPath string) (teseq.Config, bool, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, colorize, timingsPath, err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, colorize, timingsPath, fmt.Errorf("parse %s: %w", path, err)
	}

	if fc.NoEsc != nil {
		cfg.EchoEscapes = !*fc.NoEsc
	}
	if fc.NoDesc != nil {
		cfg.Describe = !*fc.NoDesc
	}
	if fc.Caret != nil {
		cfg.CaretNames = *fc.Caret
	}
	if fc.Color != nil {
		colorize = *fc.Color
	}
	if fc.Width != nil {
		cfg.LineWidth = *fc.Width
	}
	return cfg, colorize, timingsPath, nil
}

func firstNonzero(a, b int) int {
	if a != 0 {
		return a
	}
	return b
}

func firstNonempty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// sigilColors maps each putter role to an SGR parameter, grounded on
// teseq.c's parse_colors/color_setup and overridable per-role via
// TESEQ_COLORS (a comma-separated role=N list, e.g. "text=32,ctrl=33").
var sigilColors = map[string]string{
	"text":  "36",
	"ctrl":  "33",
	"esc":   "35",
	"label": "32",
	"desc":  "37",
	"delay": "34",
}

func init() {
	spec := os.Getenv("TESEQ_COLORS")
	if spec == "" {
		return
	}
	for _, entry := range strings.Split(spec, ",") {
		role, param, ok := strings.Cut(entry, "=")
		if ok {
			sigilColors[role] = param
		}
	}
}

func colorSigil(role, sigil string) string {
	param, ok := sigilColors[role]
	if !ok {
		return sigil
	}
	return "\x1b[" + param + "m" + sigil + "\x1b[0m"
}

// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/sgrcat/main.go
// Summary: Inspects ANSI-styled text: prints slices, plain text, lines, JSON,
// or pages it in the terminal.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/framegrace/sgrcat/config"
	"github.com/framegrace/sgrcat/internal/capture"
	"github.com/framegrace/sgrcat/internal/highlight"
	"github.com/framegrace/sgrcat/internal/lineindex"
	"github.com/framegrace/sgrcat/internal/view"
	"github.com/framegrace/sgrcat/sgr"
)

type options struct {
	mode       string
	exec       string
	highlight  bool
	language   string
	indexPath  string
	search     string
	configPath string
	logPath    string
}

func parseFlags(args []string) (options, []string, error) {
	var opts options
	fs := flag.NewFlagSet("sgrcat", flag.ContinueOnError)
	fs.StringVar(&opts.mode, "mode", "", "output mode: slices, strip, lines, json, view")
	fs.StringVar(&opts.exec, "exec", "", "run a shell command under a pty and read its output")
	fs.BoolVar(&opts.highlight, "highlight", false, "syntax highlight input before categorizing")
	fs.StringVar(&opts.language, "lang", "", "language for -highlight (default: detect)")
	fs.StringVar(&opts.indexPath, "index", "", "append categorized lines to this sqlite index")
	fs.StringVar(&opts.search, "search", "", "search the line index instead of reading input")
	fs.StringVar(&opts.configPath, "config", "", "config file path")
	fs.StringVar(&opts.logPath, "log", "", "write logs to this file")
	if err := fs.Parse(args); err != nil {
		return opts, nil, err
	}
	return opts, fs.Args(), nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("sgrcat: ")

	opts, files, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if opts.logPath != "" {
		logFile, err := os.OpenFile(opts.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
		log.SetFlags(log.LstdFlags)
	}
	if opts.configPath != "" {
		config.SetPath(opts.configPath)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, files, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context, opts options, files []string, stdout io.Writer) error {
	cfg := config.System()
	if err := config.Err(); err != nil {
		log.Printf("Config: using defaults: %v", err)
	}

	mode := opts.mode
	if mode == "" {
		mode = cfg.GetString("", "mode", modeSlices)
	}
	if !validMode(mode) {
		return fmt.Errorf("unknown mode %q", mode)
	}

	if opts.search != "" {
		return search(opts, cfg, stdout)
	}

	inputs, err := readInputs(ctx, opts, cfg, files)
	if err != nil {
		return err
	}

	var all []sgr.Slice
	var idx *lineindex.Index
	if opts.indexPath != "" {
		idx, err = lineindex.Open(opts.indexPath)
		if err != nil {
			return err
		}
		defer idx.Close()
	}

	for _, in := range inputs {
		text := in.text
		if opts.highlight {
			h := highlight.New(cfg.GetString("highlight", "style", ""), cfg.GetString("highlight", "formatter", ""))
			h.Language = opts.language
			text, err = h.Highlight(in.name, []byte(text))
			if err != nil {
				return fmt.Errorf("highlight %s: %w", in.name, err)
			}
		}

		slices := sgr.Categorize(text)
		if idx != nil {
			if err := idx.AddLines(in.name, 1, sgr.SplitLines(slices)); err != nil {
				return fmt.Errorf("index %s: %w", in.name, err)
			}
		}
		if mode == modeView {
			all = append(all, slices...)
			continue
		}
		if err := writeOutput(stdout, mode, slices); err != nil {
			return err
		}
	}

	if mode == modeView {
		return page(all)
	}
	return nil
}

type input struct {
	name string
	text string
}

func readInputs(ctx context.Context, opts options, cfg config.Config, files []string) ([]input, error) {
	if opts.exec != "" {
		copts := capture.Options{
			Cols: cfg.GetInt("capture", "cols", 80),
			Rows: cfg.GetInt("capture", "rows", 24),
		}
		if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
			if w, h, err := term.GetSize(fd); err == nil {
				copts.Cols, copts.Rows = w, h
			}
		}
		out, err := capture.Run(ctx, "sh", []string{"-c", opts.exec}, copts)
		if err != nil {
			log.Printf("Capture: %q: %v", opts.exec, err)
			if len(out) == 0 {
				return nil, err
			}
		}
		return []input{{name: opts.exec, text: string(out)}}, nil
	}

	if len(files) == 0 {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, fmt.Errorf("no input: pass files, pipe text on stdin, or use -exec")
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return []input{{name: "-", text: string(data)}}, nil
	}

	inputs := make([]input, 0, len(files))
	for _, name := range files {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, input{name: name, text: string(data)})
	}
	return inputs, nil
}

func search(opts options, cfg config.Config, stdout io.Writer) error {
	path := opts.indexPath
	if path == "" {
		path = cfg.GetString("index", "path", "")
	}
	if path == "" {
		var err error
		if path, err = config.DataPath("lines.db"); err != nil {
			return err
		}
	}

	idx, err := lineindex.Open(path)
	if err != nil {
		return err
	}
	defer idx.Close()

	results, err := idx.Search(opts.search, cfg.GetInt("index", "limit", 50))
	if err != nil {
		return err
	}
	return writeResults(stdout, results)
}

func page(slices []sgr.Slice) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	return view.NewViewer(sgr.SplitLines(slices)).Run(screen)
}

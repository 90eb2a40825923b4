// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/capture/capture.go
// Summary: Runs a command under a pseudo-terminal and collects its output.
//
// Programs only colour their output when attached to a terminal, so the
// command is started on a pty sized like a real window.

package capture

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/term"
)

// Options configures the pseudo-terminal the command runs on.
type Options struct {
	Cols int
	Rows int
	// Env entries are appended to the current environment.
	Env []string
}

// DefaultOptions returns an 80x24 terminal.
func DefaultOptions() Options {
	return Options{Cols: 80, Rows: 24}
}

// Run starts name with args on a pty and returns everything it writes
// until it exits. Cancelling ctx kills the command.
func Run(ctx context.Context, name string, args []string, opts Options) ([]byte, error) {
	if opts.Cols <= 0 || opts.Rows <= 0 {
		d := DefaultOptions()
		opts.Cols, opts.Rows = d.Cols, d.Rows
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		fmt.Sprintf("COLUMNS=%d", opts.Cols),
		fmt.Sprintf("LINES=%d", opts.Rows),
	)
	cmd.Env = append(cmd.Env, opts.Env...)

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(opts.Rows),
		Cols: uint16(opts.Cols),
	})
	if err != nil {
		return nil, fmt.Errorf("start pty: %w", err)
	}
	defer ptmx.Close()

	// Raw mode keeps the line discipline from rewriting "\n" as "\r\n".
	if _, err := term.MakeRaw(int(ptmx.Fd())); err != nil {
		cmd.Process.Kill()
		cmd.Wait()
		return nil, fmt.Errorf("make pty raw: %w", err)
	}

	var out bytes.Buffer
	_, copyErr := io.Copy(&out, ptmx)
	waitErr := cmd.Wait()

	if copyErr != nil && !isClosedPTY(copyErr) {
		return out.Bytes(), fmt.Errorf("read pty: %w", copyErr)
	}
	if ctx.Err() != nil {
		return out.Bytes(), ctx.Err()
	}
	if waitErr != nil {
		return out.Bytes(), fmt.Errorf("%s: %w", name, waitErr)
	}
	return out.Bytes(), nil
}

// isClosedPTY reports whether err is the EIO Linux returns once the child
// side of the pty has closed.
func isClosedPTY(err error) bool {
	return errors.Is(err, syscall.EIO) || errors.Is(err, os.ErrClosed)
}

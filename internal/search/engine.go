// Package search implements the scan engine: it resolves the configured
// inputs into an ordered list of target files, reads each one line by line,
// applies the match/invert rule, and writes formatted output lines in
// file-then-line order.
package search

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/harrison/grep/internal/config"
)

// maxLineBytes bounds a single scanned line. The default bufio.Scanner
// limit of 64KB is too small for minified or generated text files.
const maxLineBytes = 1 << 20

// Engine scans the configured inputs and writes matching lines to out.
type Engine struct {
	cfg       *config.Config
	out       io.Writer
	highlight bool
}

// NewEngine creates an Engine for cfg writing to out. The terminal check
// happens once here, not per line: highlighting is active only when colored
// output was requested and out is an interactive terminal, so piped or
// redirected output never contains color codes.
func NewEngine(cfg *config.Config, out io.Writer) *Engine {
	return &Engine{
		cfg:       cfg,
		out:       out,
		highlight: cfg.Colored && isTerminal(out),
	}
}

// isTerminal reports whether w is an interactive terminal. Any writer that
// is not an *os.File (buffers in tests, pipes wrapped by the caller) is
// treated as non-interactive.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// Run scans every resolved target in resolution order. The first open or
// read failure aborts the whole run; lines already written stay written.
func (e *Engine) Run() error {
	for _, path := range collectTargets(e.cfg.Inputs, e.cfg.Recursive) {
		if err := e.scanFile(path); err != nil {
			return err
		}
	}
	return nil
}

// scanFile reads path line by line and writes every line selected by the
// match/invert rule. Lines are newline-delimited and 1-indexed; a final
// line without a trailing newline is still scanned. The file handle is
// released before the next target regardless of outcome.
func (e *Engine) scanFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()

		isMatch := e.cfg.Matcher.MatchString(line)
		if isMatch == e.cfg.InvertMatch {
			continue
		}

		display := line
		// Inverted matches are never highlighted: the matching substring is
		// not what the printed line is showing.
		if e.highlight && isMatch && !e.cfg.InvertMatch {
			display = highlightMatches(line, e.cfg.Matcher)
		}

		if prefix := e.buildPrefix(path, lineNumber); prefix != "" {
			fmt.Fprintf(e.out, "%s: %s\n", prefix, display)
		} else {
			fmt.Fprintln(e.out, display)
		}
	}
	return scanner.Err()
}

// buildPrefix composes the optional "path:line" prefix for a printed line.
// An empty result means the line prints bare.
func (e *Engine) buildPrefix(path string, lineNumber int) string {
	var parts []string
	if e.cfg.ShowFilenames {
		parts = append(parts, path)
	}
	if e.cfg.ShowLineNumbers {
		parts = append(parts, strconv.Itoa(lineNumber))
	}
	return strings.Join(parts, ":")
}

package dic

import (
	"bufio"
	"io"
	"strings"
)

// LineSource is the sequential cursor a bulk load consumes: the current
// line, whether the source is exhausted, and advancing to the next line.
type LineSource interface {
	Line() string
	Exhausted() bool
	Advance()
}

// ScannerSource adapts an io.Reader into a LineSource, one line per
// advance. A UTF-8 BOM on the first line is stripped.
type ScannerSource struct {
	sc   *bufio.Scanner
	line string
	done bool
}

// NewScannerSource primes the cursor on the first line of r.
func NewScannerSource(r io.Reader) *ScannerSource {
	s := &ScannerSource{sc: bufio.NewScanner(r)}
	s.Advance()
	s.line = strings.TrimPrefix(s.line, "\ufeff")
	return s
}

// Line returns the current line without its terminator.
func (s *ScannerSource) Line() string { return s.line }

// Exhausted reports whether the source has no current line.
func (s *ScannerSource) Exhausted() bool { return s.done }

// Advance moves the cursor to the next line.
func (s *ScannerSource) Advance() {
	if s.sc.Scan() {
		s.line = s.sc.Text()
		return
	}
	s.line = ""
	s.done = true
}

// SliceSource is a LineSource over an in-memory slice of lines.
type SliceSource struct {
	lines []string
	pos   int
}

// NewSliceSource wraps lines in a cursor.
func NewSliceSource(lines []string) *SliceSource {
	return &SliceSource{lines: lines}
}

func (s *SliceSource) Line() string {
	if s.Exhausted() {
		return ""
	}
	return s.lines[s.pos]
}

func (s *SliceSource) Exhausted() bool { return s.pos >= len(s.lines) }

func (s *SliceSource) Advance() { s.pos++ }

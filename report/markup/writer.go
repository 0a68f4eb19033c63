// Package markup provides the line oriented writer used to emit tagged
// documents. It performs no escaping.
package markup

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// MaxLineLength is the column after which free text is wrapped.
const MaxLineLength = 78

// ErrClosed is returned when a closed writer is used.
var ErrClosed = errors.New("markup: writer closed")

// Writer buffers text for a destination. Write errors are sticky and
// returned by Flush and Close.
type Writer struct {
	dst    io.Writer
	out    *bufio.Writer
	column int
	err    error
	closed bool
}

// NewWriter creates a writer for w. Close closes w when it is an io.Closer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{dst: w, out: bufio.NewWriter(w)}
}

// Write appends text. With preserveSpace the text is written verbatim,
// otherwise it is treated as free text and wrapped at word boundaries once
// a line exceeds MaxLineLength.
func (w *Writer) Write(text string, preserveSpace bool) {
	if w.err != nil {
		return
	}
	if w.closed {
		w.err = ErrClosed
		return
	}
	if preserveSpace {
		w.writeRaw(text)
		return
	}
	for i, word := range strings.Fields(text) {
		switch {
		case w.column > 0 && w.column+1+len(word) > MaxLineLength:
			w.writeRaw("\n")
		case i > 0 || (w.column > 0 && startsWithSpace(text)):
			w.writeRaw(" ")
		}
		w.writeRaw(word)
	}
	if w.column > 0 && endsWithSpace(text) && strings.TrimSpace(text) != "" {
		w.writeRaw(" ")
	}
}

func (w *Writer) writeRaw(s string) {
	if w.err != nil {
		return
	}
	if _, err := w.out.WriteString(s); err != nil {
		w.err = err
		return
	}
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		w.column = len(s) - i - 1
	} else {
		w.column += len(s)
	}
}

// Err returns the first error the writer ran into
func (w *Writer) Err() error {
	return w.err
}

// Flush writes the buffered text to the destination.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if w.closed {
		return ErrClosed
	}
	if err := w.out.Flush(); err != nil {
		w.err = err
	}
	return w.err
}

// Close closes the destination. Buffered text which was not flushed is
// dropped. Closing twice is a no-op.
func (w *Writer) Close() error {
	if w.closed {
		return w.err
	}
	w.closed = true
	if c, ok := w.dst.(io.Closer); ok {
		if err := c.Close(); err != nil && w.err == nil {
			w.err = err
		}
	}
	return w.err
}

func startsWithSpace(s string) bool {
	return s != "" && strings.ContainsRune(" \t\r\n", rune(s[0]))
}

func endsWithSpace(s string) bool {
	return s != "" && strings.ContainsRune(" \t\r\n", rune(s[len(s)-1]))
}

package testutils

import (
	"fmt"
	"strings"

	"github.com/securego/findbugs-report/report/sink"
)

// SpySink records the calls made to a document sink
type SpySink struct {
	Calls    []string
	Rows     [][]string
	Sections []string
	Opened   int
	Closed   int
	Flushed  int
	Shut     int
	FlushErr error
}

var _ sink.Sink = (*SpySink)(nil)

// NewSpySink creates an empty spy
func NewSpySink() *SpySink {
	return &SpySink{}
}

func (s *SpySink) call(format string, args ...any) {
	s.Calls = append(s.Calls, fmt.Sprintf(format, args...))
}

func (s *SpySink) Head(title string) { s.call("head(%s)", title) }
func (s *SpySink) Body() { s.call("body") }

func (s *SpySink) Section(level int, title, anchor string) {
	s.Opened++
	s.Sections = append(s.Sections, title)
	s.call("section%d(%s)", level, title)
}

func (s *SpySink) SectionEnd(level int) {
	s.Closed++
	s.call("section%d_", level)
}

func (s *SpySink) Paragraph(content ...sink.Inline) {
	parts := make([]string, 0, len(content))
	for _, c := range content {
		parts = append(parts, c.String())
	}
	s.call("paragraph(%s)", strings.Join(parts, ""))
}

func (s *SpySink) Table() { s.call("table") }

func (s *SpySink) TableHeader(headers ...string) {
	s.call("header(%s)", strings.Join(headers, "|"))
}

func (s *SpySink) TableRow(cells ...sink.Cell) {
	row := make([]string, 0, len(cells))
	for _, c := range cells {
		var text strings.Builder
		for _, in := range c {
			text.WriteString(in.String())
		}
		row = append(row, text.String())
	}
	s.Rows = append(s.Rows, row)
	s.call("row(%s)", strings.Join(row, "|"))
}

func (s *SpySink) TableEnd() { s.call("table_") }
func (s *SpySink) BodyEnd() { s.call("body_") }

func (s *SpySink) Flush() error {
	s.Flushed++
	return s.FlushErr
}

func (s *SpySink) Close() error {
	s.Shut++
	return nil
}

// Index returns the position of the first call with the given prefix or -1
func (s *SpySink) Index(prefix string) int {
	for i, c := range s.Calls {
		if strings.HasPrefix(c, prefix) {
			return i
		}
	}
	return -1
}

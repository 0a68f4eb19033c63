package sink

import (
	"bufio"
	"errors"
	"fmt"
	"html"
	"io"
	"strings"
)

// ErrClosed is returned when a closed sink is used.
var ErrClosed = errors.New("sink: closed")

// XHTML writes the document as XHTML.
type XHTML struct {
	dst    io.Writer
	out    *bufio.Writer
	err    error
	closed bool
}

var _ Sink = (*XHTML)(nil)

// NewXHTML creates a sink writing to w. Close closes w when it is an
// io.Closer.
func NewXHTML(w io.Writer) *XHTML {
	return &XHTML{dst: w, out: bufio.NewWriter(w)}
}

func (x *XHTML) write(parts ...string) {
	if x.err != nil {
		return
	}
	if x.closed {
		x.err = ErrClosed
		return
	}
	for _, p := range parts {
		if _, err := x.out.WriteString(p); err != nil {
			x.err = err
			return
		}
	}
}

func (x *XHTML) Head(title string) {
	x.write("<!DOCTYPE html PUBLIC \"-//W3C//DTD XHTML 1.0 Transitional//EN\" \"http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd\">\n",
		"<html xmlns=\"http://www.w3.org/1999/xhtml\">\n",
		"<head>\n<title>", html.EscapeString(title), "</title>\n</head>\n")
}

func (x *XHTML) Body() {
	x.write("<body>\n")
}

func (x *XHTML) Section(level int, title, anchor string) {
	x.write("<div class=\"section\">")
	if anchor != "" {
		x.write("<a name=\"", html.EscapeString(anchor), "\"></a>")
	}
	h := fmt.Sprintf("h%d", headingLevel(level))
	x.write("<", h, ">", html.EscapeString(title), "</", h, ">\n")
}

func (x *XHTML) SectionEnd(int) {
	x.write("</div>\n")
}

func (x *XHTML) Paragraph(content ...Inline) {
	x.write("<p>", renderInline(content), "</p>\n")
}

func (x *XHTML) Table() {
	x.write("<table class=\"bodyTable\">\n")
}

func (x *XHTML) TableHeader(headers ...string) {
	var b strings.Builder
	b.WriteString("<tr class=\"a\">")
	for _, h := range headers {
		b.WriteString("<th>")
		b.WriteString(html.EscapeString(h))
		b.WriteString("</th>")
	}
	b.WriteString("</tr>\n")
	x.write(b.String())
}

func (x *XHTML) TableRow(cells ...Cell) {
	var b strings.Builder
	b.WriteString("<tr class=\"b\">")
	for _, c := range cells {
		b.WriteString("<td>")
		b.WriteString(renderInline(c))
		b.WriteString("</td>")
	}
	b.WriteString("</tr>\n")
	x.write(b.String())
}

func (x *XHTML) TableEnd() {
	x.write("</table>\n")
}

func (x *XHTML) BodyEnd() {
	x.write("</body>\n</html>\n")
}

// Flush writes the buffered document to the destination.
func (x *XHTML) Flush() error {
	if x.err != nil {
		return x.err
	}
	if x.closed {
		return ErrClosed
	}
	if err := x.out.Flush(); err != nil {
		x.err = err
	}
	return x.err
}

// Close releases the destination. It does not flush.
func (x *XHTML) Close() error {
	if x.closed {
		return ErrClosed
	}
	x.closed = true
	if c, ok := x.dst.(io.Closer); ok {
		if err := c.Close(); err != nil && x.err == nil {
			x.err = err
		}
	}
	return x.err
}

func headingLevel(level int) int {
	switch {
	case level < 1:
		return 2
	case level > 5:
		return 6
	}
	return level + 1
}

func renderInline(content []Inline) string {
	var b strings.Builder
	for _, in := range content {
		switch in.kind {
		case inlineItalic:
			b.WriteString("<i>")
			b.WriteString(html.EscapeString(in.text))
			b.WriteString("</i>")
		case inlineLink:
			b.WriteString("<a href=\"")
			b.WriteString(html.EscapeString(in.href))
			b.WriteString("\">")
			b.WriteString(html.EscapeString(in.text))
			b.WriteString("</a>")
		default:
			b.WriteString(html.EscapeString(in.text))
		}
	}
	return b.String()
}

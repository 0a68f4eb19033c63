// Package sink provides the document model the site reports are written to.
package sink

// Sink receives the structure of a site document. Errors are sticky: the
// first write failure is returned by Flush and Close.
type Sink interface {
	Head(title string)
	Body()
	Section(level int, title, anchor string)
	SectionEnd(level int)
	Paragraph(content ...Inline)
	Table()
	TableHeader(headers ...string)
	TableRow(cells ...Cell)
	TableEnd()
	BodyEnd()
	Flush() error
	Close() error
}

type inlineKind int

const (
	inlineText inlineKind = iota
	inlineItalic
	inlineLink
)

// Inline is a piece of paragraph or cell content
type Inline struct {
	kind inlineKind
	text string
	href string
}

// Text is plain text
func Text(text string) Inline {
	return Inline{kind: inlineText, text: text}
}

// Italic is emphasized text
func Italic(text string) Inline {
	return Inline{kind: inlineItalic, text: text}
}

// Link is a hyperlink
func Link(href, text string) Inline {
	return Inline{kind: inlineLink, text: text, href: href}
}

// Cell is the content of a table cell
type Cell []Inline

// TextCell is a cell holding plain text
func TextCell(text string) Cell {
	return Cell{Text(text)}
}

// LinkCell is a cell holding a single link
func LinkCell(href, text string) Cell {
	return Cell{Link(href, text)}
}

// String returns the text of the inline content without markup.
func (i Inline) String() string {
	return i.text
}

// Href returns the link target, empty for text.
func (i Inline) Href() string {
	return i.href
}

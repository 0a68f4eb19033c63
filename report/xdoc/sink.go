package xdoc

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/securego/findbugs-report/report/markup"
)

const eol = "\n"

// Sink writes the tags of the structured document.
type Sink struct {
	out *markup.Writer
}

// NewSink creates a tag writer for w
func NewSink(w io.Writer) *Sink {
	return &Sink{out: markup.NewWriter(w)}
}

func (s *Sink) markup(text string) {
	s.out.Write(text, true)
}

// Head writes the XML declaration
func (s *Sink) Head() {
	s.markup(`<?xml version="1.0" encoding="UTF-8"?>` + eol)
}

// Body opens the document element
func (s *Sink) Body(version, threshold, effort string) {
	s.markup("<BugCollection")
	s.attr("version", version)
	s.attr("threshold", threshold)
	s.attr("effort", effort)
	s.markup(" >" + eol)
}

// BodyEnd closes the document element
func (s *Sink) BodyEnd() {
	s.markup("</BugCollection>" + eol)
}

// ClassTag opens the element of an analyzed class
func (s *Sink) ClassTag(className string) {
	s.markup("<file")
	s.attr("classname", className)
	s.markup(" >" + eol)
}

// ClassTagEnd closes the element of an analyzed class
func (s *Sink) ClassTagEnd() {
	s.markup("</file>" + eol)
}

// BugInstance writes a bug element
func (s *Sink) BugInstance(bugType, priority, category, message, lineNumber string) {
	s.markup("<BugInstance")
	s.attr("type", bugType)
	s.attr("priority", priority)
	s.attr("category", category)
	s.attr("message", message)
	s.attr("lineNumber", lineNumber)
	s.markup(" />" + eol)
}

// ErrorTag opens the error block
func (s *Sink) ErrorTag() {
	s.markup("<Errors>" + eol)
}

// ErrorTagEnd closes the error block
func (s *Sink) ErrorTagEnd() {
	s.markup("</Errors>" + eol)
}

// AnalysisErrorTag writes an analysis error element
func (s *Sink) AnalysisErrorTag(message string) {
	s.markup("<AnalysisError>" + escape(message) + " </AnalysisError>" + eol)
}

// MissingClassTag writes a missing class element
func (s *Sink) MissingClassTag(className string) {
	s.markup("<MissingClass>" + escape(className) + " </MissingClass>" + eol)
}

// Flush writes buffered tags to the destination
func (s *Sink) Flush() error {
	return s.out.Flush()
}

// Close releases the destination
func (s *Sink) Close() error {
	return s.out.Close()
}

func (s *Sink) attr(name, value string) {
	s.markup(" " + name + `="` + escape(value) + `"`)
}

func escape(text string) string {
	var b strings.Builder
	// strings.Builder never fails
	_ = xml.EscapeText(&b, []byte(text))
	return b.String()
}

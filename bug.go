// (c) Copyright 2016 Hewlett Packard Enterprise Development LP
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

// Package findbugs holds the result model and the aggregation logic used to
// turn the callbacks of a FindBugs analysis run into site reports.
package findbugs

import (
	"fmt"
	"strconv"
	"strings"
)

// NoLine is the line number used by the engine when no line is known.
const NoLine = -1

// SourceLine is the primary source range of a bug.
type SourceLine struct {
	Start int `json:"start" msgpack:"start"`
	End   int `json:"end" msgpack:"end"`
}

// NewSourceLine creates a source line range
func NewSourceLine(start, end int) *SourceLine {
	return &SourceLine{Start: start, End: end}
}

// Available reports whether the range points to an actual line.
func (l *SourceLine) Available() bool {
	return l != nil && l.Start >= 0
}

// LineValue renders a source line the way both reports show it: a single
// line as "5", a range as "3-7" and a missing line as the noLine label.
func LineValue(l *SourceLine, noLine string) string {
	if !l.Available() {
		return noLine
	}
	if l.End == l.Start || l.End < 0 {
		return strconv.Itoa(l.Start)
	}
	return fmt.Sprintf("%d-%d", l.Start, l.End)
}

// BugInstance is a single defect reported by the analysis engine.
type BugInstance struct {
	Type        string      `json:"type" msgpack:"type"`               // bug pattern identifier
	Abbrev      string      `json:"abbrev" msgpack:"abbrev"`           // short pattern code used as message prefix
	Category    string      `json:"category" msgpack:"category"`       // bug category, e.g. CORRECTNESS
	Priority    int         `json:"priority" msgpack:"priority"`       // engine priority, lower is more severe
	ClassName   string      `json:"class" msgpack:"class"`             // owning class, dotted form
	Description string      `json:"description" msgpack:"description"` // message without the pattern prefix
	Line        *SourceLine `json:"line,omitempty" msgpack:"line,omitempty"`
}

// Message returns the bug message including the pattern prefix.
func (b *BugInstance) Message() string {
	if b.Abbrev == "" {
		return b.Description
	}
	return b.Abbrev + ": " + b.Description
}

// MessageWithoutPrefix returns the bug message without the pattern prefix.
func (b *BugInstance) MessageWithoutPrefix() string {
	return b.Description
}

// BugKey identifies a bug instance. Two bugs with equal keys are the same
// finding reported twice.
type BugKey struct {
	ClassName string
	Category  string
	Priority  int
	Type      string
	Message   string
	Start     int
	End       int
}

// Key returns the identity of the bug.
func (b *BugInstance) Key() BugKey {
	k := BugKey{
		ClassName: b.ClassName,
		Category:  b.Category,
		Priority:  b.Priority,
		Type:      b.Type,
		Message:   b.Description,
		Start:     NoLine,
		End:       NoLine,
	}
	if b.Line != nil {
		k.Start, k.End = b.Line.Start, b.Line.End
	}
	return k
}

// Compare orders keys by class, category, priority, type, message and line.
func (k BugKey) Compare(o BugKey) int {
	if c := strings.Compare(k.ClassName, o.ClassName); c != 0 {
		return c
	}
	if c := strings.Compare(k.Category, o.Category); c != 0 {
		return c
	}
	if k.Priority != o.Priority {
		return cmpInt(k.Priority, o.Priority)
	}
	if c := strings.Compare(k.Type, o.Type); c != 0 {
		return c
	}
	if c := strings.Compare(k.Message, o.Message); c != 0 {
		return c
	}
	if k.Start != o.Start {
		return cmpInt(k.Start, o.Start)
	}
	return cmpInt(k.End, o.End)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// AnalysisError is a non fatal failure reported during the analysis.
type AnalysisError struct {
	Message string
	Cause   error
}

// NewAnalysisError creates an analysis error
func NewAnalysisError(message string, cause error) AnalysisError {
	return AnalysisError{Message: message, Cause: cause}
}

func (e AnalysisError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e AnalysisError) Unwrap() error {
	return e.Cause
}

// DottedClassName converts a class descriptor such as "pkg/A" or "Lpkg/A;"
// into its dotted form "pkg.A".
func DottedClassName(name string) string {
	name = strings.TrimSpace(name)
	if strings.HasPrefix(name, "L") && strings.HasSuffix(name, ";") {
		name = name[1 : len(name)-1]
	}
	return strings.ReplaceAll(name, "/", ".")
}

// Package engine models the callback stream of the analysis engine. A run
// is recorded as a sequence of events which can be replayed into a
// findbugs.BugReporter.
package engine

import (
	"github.com/securego/findbugs-report"
)

// Kind enumerates the events of a run
type Kind string

const (
	// KindStart carries the engine version, it is optional and only
	// allowed as first event
	KindStart Kind = "start"
	// KindObserve announces the class being analyzed
	KindObserve Kind = "observe"
	// KindBug reports a bug
	KindBug Kind = "bug"
	// KindError reports a non fatal analysis error
	KindError Kind = "error"
	// KindMissing reports a class which could not be resolved
	KindMissing Kind = "missing"
	// KindFinish ends the run
	KindFinish Kind = "finish"
)

// Event is a single callback of the engine
type Event struct {
	Kind    Kind                  `json:"event" msgpack:"event"`
	Class   string                `json:"class,omitempty" msgpack:"class,omitempty"`
	Message string                `json:"message,omitempty" msgpack:"message,omitempty"`
	Cause   string                `json:"cause,omitempty" msgpack:"cause,omitempty"`
	Version string                `json:"version,omitempty" msgpack:"version,omitempty"`
	Bug     *findbugs.BugInstance `json:"bug,omitempty" msgpack:"bug,omitempty"`
}

// Start creates the header event of a run
func Start(version string) Event {
	return Event{Kind: KindStart, Version: version}
}

// Observe creates a class observation event
func Observe(className string) Event {
	return Event{Kind: KindObserve, Class: className}
}

// Bug creates a bug event
func Bug(bug *findbugs.BugInstance) Event {
	return Event{Kind: KindBug, Bug: bug}
}

// Error creates an analysis error event
func Error(message, cause string) Event {
	return Event{Kind: KindError, Message: message, Cause: cause}
}

// Missing creates a missing class event
func Missing(className string) Event {
	return Event{Kind: KindMissing, Class: className}
}

// Finish creates the end of run event
func Finish() Event {
	return Event{Kind: KindFinish}
}

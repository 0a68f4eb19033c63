// Package xdoc renders the results of an analysis run as a structured XML
// document.
package xdoc

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/securego/findbugs-report"
)

// ErrNoOutput is returned when the document is written before an output
// writer was attached.
var ErrNoOutput = errors.New("xdoc: no output writer attached")

// DelegateReporter is the reporter the structured document is produced
// alongside. It filters the bugs and tells its observers which passed.
type DelegateReporter interface {
	findbugs.BugReporter
	findbugs.Observable
}

// Options tune the document header
type Options struct {
	// EngineVersion overrides the engine version of the message bundle
	EngineVersion string
}

// Reporter streams one element per class and bug. Errors and missing
// classes are collected and written in a block at the end of the document.
type Reporter struct {
	delegate  DelegateReporter
	msgs      *findbugs.Messages
	logger    *slog.Logger
	threshold findbugs.Threshold
	effort    findbugs.Effort
	opts      Options

	out          io.Writer
	sink         *Sink
	err          error
	bugs         *findbugs.BugCollection
	numClasses   int
	currentClass string
	classOpen    bool
	finished     bool
}

var _ findbugs.BugReporter = (*Reporter)(nil)

// NewReporter creates a reporter delegating to the given reporter. The
// output writer can be attached later with SetOutputWriter, nothing is
// written before the first callback.
func NewReporter(delegate DelegateReporter, msgs *findbugs.Messages, logger *slog.Logger, threshold findbugs.Threshold, effort findbugs.Effort, opts Options) (*Reporter, error) {
	switch {
	case delegate == nil:
		return nil, fmt.Errorf("%w: delegate not allowed to be nil", findbugs.ErrInvalidArgument)
	case msgs == nil:
		return nil, fmt.Errorf("%w: messages not allowed to be nil", findbugs.ErrInvalidArgument)
	case logger == nil:
		return nil, fmt.Errorf("%w: logger not allowed to be nil", findbugs.ErrInvalidArgument)
	case !threshold.Valid():
		return nil, fmt.Errorf("%w: threshold not allowed to be unset", findbugs.ErrInvalidArgument)
	case !effort.Valid():
		return nil, fmt.Errorf("%w: effort not allowed to be unset", findbugs.ErrInvalidArgument)
	}
	if opts.EngineVersion == "" {
		opts.EngineVersion = msgs.Get(findbugs.KeyVersion)
	}
	r := &Reporter{
		delegate:  delegate,
		msgs:      msgs,
		logger:    logger,
		threshold: threshold,
		effort:    effort,
		opts:      opts,
		bugs:      findbugs.NewBugCollection(),
	}
	// only bugs passing the delegate's filters make it into the document
	delegate.AddObserver(r.addBugReport)
	return r, nil
}

// SetOutputWriter attaches the destination of the document
func (r *Reporter) SetOutputWriter(w io.Writer) {
	r.out = w
}

func (r *Reporter) getSink() *Sink {
	if r.sink == nil {
		if r.out == nil {
			r.err = ErrNoOutput
			return nil
		}
		r.sink = NewSink(r.out)
		r.initialiseReport()
	}
	return r.sink
}

func (r *Reporter) initialiseReport() {
	r.sink.Head()
	r.sink.Body(r.opts.EngineVersion, r.threshold.Name(), r.effort.Name())
}

// ObserveClass opens the element of the class and forwards to the delegate.
func (r *Reporter) ObserveClass(className string) {
	className = findbugs.DottedClassName(className)
	r.numClasses++
	r.currentClass = className
	if s := r.getSink(); s != nil {
		if r.classOpen {
			s.ClassTagEnd()
		}
		s.ClassTag(className)
		r.classOpen = true
	}
	r.delegate.ObserveClass(className)
}

// ReportBug hands the bug to the delegate. It reaches the document through
// the observer once the delegate accepted it.
func (r *Reporter) ReportBug(bug *findbugs.BugInstance) {
	r.delegate.ReportBug(bug)
}

func (r *Reporter) addBugReport(bug *findbugs.BugInstance) {
	if !r.bugs.Add(bug) {
		return
	}
	s := r.getSink()
	if s == nil {
		return
	}
	if !r.classOpen {
		className := bug.ClassName
		if className == "" {
			className = r.currentClass
		}
		s.ClassTag(className)
		r.classOpen = true
	}
	s.BugInstance(
		bug.Type,
		findbugs.PriorityName(bug.Priority),
		bug.Category,
		bug.Message(),
		findbugs.LineValue(bug.Line, r.msgs.Get(findbugs.KeyNoLine)),
	)
}

// ReportAnalysisError records the error and forwards to the delegate
func (r *Reporter) ReportAnalysisError(e findbugs.AnalysisError) {
	r.bugs.AddError(e)
	r.delegate.ReportAnalysisError(e)
}

// LogError records the error and forwards to the delegate
func (r *Reporter) LogError(message string, cause error) {
	r.bugs.AddError(findbugs.NewAnalysisError(message, cause))
	r.delegate.LogError(message, cause)
}

// ReportMissingClass records the class and forwards to the delegate
func (r *Reporter) ReportMissingClass(name string) {
	r.bugs.AddMissingClass(name)
	r.delegate.ReportMissingClass(name)
}

// Metrics returns the counters of the document
func (r *Reporter) Metrics() findbugs.Metrics {
	return findbugs.Metrics{
		NumClasses:        r.numClasses,
		NumBugs:           r.bugs.BugCount(),
		NumErrors:         r.bugs.ErrorCount(),
		NumMissingClasses: r.bugs.MissingClassCount(),
	}
}

// Finish writes the error block, closes the document and finishes the
// delegate.
func (r *Reporter) Finish() error {
	if r.finished {
		return findbugs.ErrReportClosed
	}
	r.finished = true

	var docErr error
	if s := r.getSink(); s != nil {
		if r.classOpen {
			s.ClassTagEnd()
			r.classOpen = false
		}
		r.printErrors(s)
		s.BodyEnd()
		docErr = errors.Join(s.Flush(), s.Close())
	} else {
		docErr = r.err
	}
	if docErr != nil {
		docErr = fmt.Errorf("writing xml report: %w", docErr)
	}
	return errors.Join(docErr, r.delegate.Finish())
}

func (r *Reporter) printErrors(s *Sink) {
	r.logger.Info("Printing Errors", "errors", r.bugs.ErrorCount())
	s.ErrorTag()
	for e := range r.bugs.Errors() {
		s.AnalysisErrorTag(e.Message)
	}
	r.logger.Info("Printing Missing classes", "missingClasses", r.bugs.MissingClassCount())
	for name := range r.bugs.MissingClasses() {
		s.MissingClassTag(name)
	}
	s.ErrorTagEnd()
}

// Package html renders the results of an analysis run as a site document.
package html

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/securego/findbugs-report"
	"github.com/securego/findbugs-report/report/sink"
)

// DefaultXrefLocation is the relative location of the source cross reference.
const DefaultXrefLocation = "xref"

// Options tune the layout of the report
type Options struct {
	// LinkXref renders line numbers as links into the source cross reference
	LinkXref bool
	// XrefLocation is the relative location of the cross reference pages
	XrefLocation string
	// DetailsLink adds a column linking to the bug pattern description
	DetailsLink bool
	// EngineVersion overrides the engine version of the message bundle
	EngineVersion string
}

// Reporter writes the report while the engine reports bugs. The rows of
// each class are buffered, the summary preceding them is only known when the
// run finishes.
type Reporter struct {
	sink      sink.Sink
	details   map[string]*sink.Recorder
	msgs      *findbugs.Messages
	logger    *slog.Logger
	threshold findbugs.Threshold
	effort    findbugs.Effort
	opts      Options

	bugs         *findbugs.BugCollection
	numClasses   int
	currentClass string
	lastClass    string
	finished     bool
}

var _ findbugs.BugReporter = (*Reporter)(nil)

// NewReporter creates the reporter and writes the report header.
func NewReporter(s sink.Sink, msgs *findbugs.Messages, logger *slog.Logger, threshold findbugs.Threshold, effort findbugs.Effort, opts Options) (*Reporter, error) {
	switch {
	case s == nil:
		return nil, fmt.Errorf("%w: sink not allowed to be nil", findbugs.ErrInvalidArgument)
	case msgs == nil:
		return nil, fmt.Errorf("%w: messages not allowed to be nil", findbugs.ErrInvalidArgument)
	case logger == nil:
		return nil, fmt.Errorf("%w: logger not allowed to be nil", findbugs.ErrInvalidArgument)
	case !threshold.Valid():
		return nil, fmt.Errorf("%w: threshold not allowed to be unset", findbugs.ErrInvalidArgument)
	case !effort.Valid():
		return nil, fmt.Errorf("%w: effort not allowed to be unset", findbugs.ErrInvalidArgument)
	}
	if opts.XrefLocation == "" {
		opts.XrefLocation = DefaultXrefLocation
	}
	if opts.EngineVersion == "" {
		opts.EngineVersion = msgs.Get(findbugs.KeyVersion)
	}
	r := &Reporter{
		sink:      s,
		details:   make(map[string]*sink.Recorder),
		msgs:      msgs,
		logger:    logger,
		threshold: threshold,
		effort:    effort,
		opts:      opts,
		bugs:      findbugs.NewBugCollection(),
	}
	r.initialiseReport()
	return r, nil
}

func (r *Reporter) initialiseReport() {
	title := r.msgs.Get(findbugs.KeyReportTitle)
	r.sink.Head(title)
	r.sink.Body()

	r.sink.Section(1, title, "")
	r.sink.Paragraph(
		sink.Text(r.msgs.Get(findbugs.KeyLinkTitle)+" "),
		sink.Link(r.msgs.Get(findbugs.KeyLink), r.msgs.Get(findbugs.KeyName)),
	)
	r.sink.Paragraph(
		sink.Text(r.msgs.Get(findbugs.KeyVersionTitle)+" "),
		sink.Italic(r.opts.EngineVersion),
	)
	r.sink.Paragraph(
		sink.Text(r.msgs.Get(findbugs.KeyThreshold)+" "),
		sink.Italic(r.threshold.Name()),
	)
	r.sink.Paragraph(
		sink.Text(r.msgs.Get(findbugs.KeyEffort)+" "),
		sink.Italic(r.effort.Name()),
	)
	r.sink.SectionEnd(1)
}

// ObserveClass counts the class. Bugs without a class name belong to the
// class observed last.
func (r *Reporter) ObserveClass(className string) {
	r.logger.Debug("Observe class: " + className)
	r.numClasses++
	r.currentClass = className
}

// ReportBug adds a row for the bug to the section of its class. Bugs which
// were already reported are skipped. Rows are grouped by class, so a class
// gets a single section even when its bugs are not reported in one go.
func (r *Reporter) ReportBug(bug *findbugs.BugInstance) {
	if bug == nil {
		return
	}
	r.logger.Debug("  Found a bug: " + bug.Message())
	if bug.ClassName == "" {
		bug.ClassName = r.currentClass
	}
	if !r.bugs.Add(bug) {
		r.logger.Debug("  Skipping duplicate bug", "type", bug.Type, "class", bug.ClassName)
		return
	}
	className := bug.ClassName
	rows, found := r.details[className]
	if !found {
		rows = sink.NewRecorder()
		r.details[className] = rows
	} else if className != r.lastClass {
		r.logger.Debug("  Bugs of class reported again after another class", "class", className)
	}
	r.lastClass = className
	r.addBugReport(rows, bug)
}

// ReportAnalysisError records the error for the summary
func (r *Reporter) ReportAnalysisError(e findbugs.AnalysisError) {
	r.logger.Debug("  Found an analysisError: " + e.Error())
	r.bugs.AddError(e)
}

// LogError records the error for the summary
func (r *Reporter) LogError(message string, cause error) {
	r.ReportAnalysisError(findbugs.NewAnalysisError(message, cause))
}

// ReportMissingClass records the class for the summary
func (r *Reporter) ReportMissingClass(name string) {
	r.logger.Debug("  Found a missing class: " + name)
	r.bugs.AddMissingClass(name)
}

// Metrics returns the counters of the run so far
func (r *Reporter) Metrics() findbugs.Metrics {
	return findbugs.Metrics{
		NumClasses:        r.numClasses,
		NumBugs:           r.bugs.BugCount(),
		NumErrors:         r.bugs.ErrorCount(),
		NumMissingClasses: r.bugs.MissingClassCount(),
	}
}

// Collection returns the buffered results of the run
func (r *Reporter) Collection() *findbugs.BugCollection {
	return r.bugs
}

// Finish writes the summary, the file index and the class sections, then
// flushes and closes the sink.
func (r *Reporter) Finish() error {
	if r.finished {
		return findbugs.ErrReportClosed
	}
	r.finished = true
	r.logger.Debug("Finished searching for bugs!")

	r.printSummary()
	r.printFiles()
	r.sink.BodyEnd()

	flushErr := r.sink.Flush()
	closeErr := r.sink.Close()
	if err := errors.Join(flushErr, closeErr); err != nil {
		return fmt.Errorf("writing html report: %w", err)
	}
	return nil
}

func (r *Reporter) printSummary() {
	m := r.Metrics()
	r.sink.Section(1, r.msgs.Get(findbugs.KeySummary), "Summary")
	r.sink.Table()
	r.sink.TableHeader(
		r.msgs.Get(findbugs.KeyColumnClasses),
		r.msgs.Get(findbugs.KeyColumnBugs),
		r.msgs.Get(findbugs.KeyColumnErrors),
		r.msgs.Get(findbugs.KeyColumnMissingClasses),
	)
	r.sink.TableRow(
		sink.TextCell(strconv.Itoa(m.NumClasses)),
		sink.TextCell(strconv.Itoa(m.NumBugs)),
		sink.TextCell(strconv.Itoa(m.NumErrors)),
		sink.TextCell(strconv.Itoa(m.NumMissingClasses)),
	)
	r.sink.TableEnd()
	r.sink.SectionEnd(1)
}

func (r *Reporter) printFiles() {
	r.sink.Section(1, r.msgs.Get(findbugs.KeyFiles), "Files")
	r.sink.Table()
	r.sink.TableHeader(
		r.msgs.Get(findbugs.KeyColumnClass),
		r.msgs.Get(findbugs.KeyColumnBugs),
	)
	for className, count := range r.bugs.ByClass() {
		r.sink.TableRow(
			sink.LinkCell("#"+className, className),
			sink.TextCell(strconv.Itoa(count)),
		)
	}
	r.sink.TableEnd()
	for className := range r.bugs.ByClass() {
		r.printClassReportSection(className)
	}
	r.sink.SectionEnd(1)
}

func (r *Reporter) printClassReportSection(className string) {
	rows, found := r.details[className]
	if !found {
		return
	}
	r.sink.Section(2, className, className)
	r.sink.Table()
	headers := []string{
		r.msgs.Get(findbugs.KeyColumnBug),
		r.msgs.Get(findbugs.KeyColumnCategory),
	}
	if r.opts.DetailsLink {
		headers = append(headers, r.msgs.Get(findbugs.KeyColumnDetails))
	}
	headers = append(headers, r.msgs.Get(findbugs.KeyColumnLine))
	r.sink.TableHeader(headers...)
	rows.ReplayTo(r.sink)
	r.sink.TableEnd()
	r.sink.SectionEnd(2)
}

func (r *Reporter) addBugReport(rows *sink.Recorder, bug *findbugs.BugInstance) {
	cells := []sink.Cell{
		sink.TextCell(bug.MessageWithoutPrefix()),
		sink.TextCell(bug.Category),
	}
	if r.opts.DetailsLink {
		cells = append(cells, sink.LinkCell(r.msgs.Get(findbugs.KeyDetailsLink)+"#"+bug.Type, bug.Type))
	}
	cells = append(cells, r.lineCell(bug))
	rows.TableRow(cells...)
}

func (r *Reporter) lineCell(bug *findbugs.BugInstance) sink.Cell {
	value := findbugs.LineValue(bug.Line, r.msgs.Get(findbugs.KeyNoLine))
	if !r.opts.LinkXref || !bug.Line.Available() {
		return sink.TextCell(value)
	}
	return sink.LinkCell(XrefLink(r.opts.XrefLocation, bug.ClassName, bug.Line.Start), value)
}

// XrefLink returns the link to a line of a class in the source cross
// reference. Inner classes link into the page of their outer class.
func XrefLink(location, className string, line int) string {
	outer, _, _ := strings.Cut(className, "$")
	return fmt.Sprintf("%s/%s.html#%d", strings.TrimSuffix(location, "/"), strings.ReplaceAll(outer, ".", "/"), line)
}

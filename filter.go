package findbugs

import (
	"fmt"
	"log/slog"
)

// FilterReporter drops bugs below the priority threshold before handing
// them to the real reporter. Observers are notified about every bug which
// was passed on, so they see exactly what the real report shows.
type FilterReporter struct {
	real      BugReporter
	threshold Threshold
	observers []BugObserver
	logger    *slog.Logger
	finished  bool
}

var (
	_ BugReporter = (*FilterReporter)(nil)
	_ Observable  = (*FilterReporter)(nil)
)

// NewFilterReporter wraps the real reporter with a priority filter
func NewFilterReporter(real BugReporter, threshold Threshold, logger *slog.Logger) (*FilterReporter, error) {
	if real == nil {
		return nil, fmt.Errorf("%w: real reporter is required", ErrInvalidArgument)
	}
	if !threshold.Valid() {
		return nil, fmt.Errorf("%w: threshold %d", ErrInvalidArgument, int(threshold))
	}
	if logger == nil {
		return nil, fmt.Errorf("%w: logger is required", ErrInvalidArgument)
	}
	return &FilterReporter{
		real:      real,
		threshold: threshold,
		logger:    logger,
	}, nil
}

// Threshold returns the priority threshold of the filter
func (f *FilterReporter) Threshold() Threshold {
	return f.threshold
}

// SetPriorityThreshold changes the threshold used for later bugs.
func (f *FilterReporter) SetPriorityThreshold(t Threshold) {
	if t.Valid() {
		f.threshold = t
	}
}

// AddObserver registers an observer for bugs passing the filter.
func (f *FilterReporter) AddObserver(o BugObserver) {
	if o != nil {
		f.observers = append(f.observers, o)
	}
}

// ObserveClass forwards to the real reporter
func (f *FilterReporter) ObserveClass(className string) {
	f.real.ObserveClass(DottedClassName(className))
}

// ReportBug passes the bug on when its priority is within the threshold.
// The class name of the bug is converted to its dotted form first.
func (f *FilterReporter) ReportBug(bug *BugInstance) {
	if bug == nil {
		return
	}
	bug.ClassName = DottedClassName(bug.ClassName)
	if bug.Priority > f.threshold.Value() {
		f.logger.Debug("  Bug below threshold", "type", bug.Type, "priority", bug.Priority, "threshold", f.threshold.Name())
		return
	}
	f.real.ReportBug(bug)
	for _, o := range f.observers {
		o(bug)
	}
}

// ReportAnalysisError forwards to the real reporter
func (f *FilterReporter) ReportAnalysisError(e AnalysisError) {
	f.real.ReportAnalysisError(e)
}

// LogError forwards to the real reporter
func (f *FilterReporter) LogError(message string, cause error) {
	f.real.LogError(message, cause)
}

// ReportMissingClass forwards to the real reporter
func (f *FilterReporter) ReportMissingClass(name string) {
	f.real.ReportMissingClass(DottedClassName(name))
}

// Finish finishes the real reporter once.
func (f *FilterReporter) Finish() error {
	if f.finished {
		return ErrReportClosed
	}
	f.finished = true
	return f.real.Finish()
}

package findbugs

// BugReporter receives the callbacks of one analysis run. The engine calls
// the methods sequentially from a single goroutine and calls Finish once
// after the last class was analyzed.
type BugReporter interface {
	// ObserveClass announces the class the engine is analyzing now.
	ObserveClass(className string)
	// ReportBug reports a candidate bug.
	ReportBug(bug *BugInstance)
	// ReportAnalysisError reports a non fatal analysis failure.
	ReportAnalysisError(e AnalysisError)
	// LogError reports a non fatal failure with an optional cause.
	LogError(message string, cause error)
	// ReportMissingClass reports a class which could not be resolved,
	// either by dotted name or by descriptor.
	ReportMissingClass(name string)
	// Finish ends the run and releases the report destination.
	Finish() error
}

// BugObserver is notified about every bug which passed all filters.
type BugObserver func(bug *BugInstance)

// Observable is implemented by reporters which filter bugs and can tell
// others which bugs made it through.
type Observable interface {
	AddObserver(o BugObserver)
}

// NopReporter ignores all callbacks.
type NopReporter struct{}

var _ BugReporter = NopReporter{}

func (NopReporter) ObserveClass(string) {}
func (NopReporter) ReportBug(*BugInstance) {}
func (NopReporter) ReportAnalysisError(AnalysisError) {}
func (NopReporter) LogError(string, error) {}
func (NopReporter) ReportMissingClass(string) {}
func (NopReporter) Finish() error { return nil }

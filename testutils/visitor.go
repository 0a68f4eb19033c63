package testutils

import (
	"github.com/securego/findbugs-report"
)

// MockReporter records the callbacks it receives. It can act as the
// filtering delegate of another reporter: every bug it receives is passed
// to the registered observers unless Filter rejects it.
type MockReporter struct {
	Classes   []string
	Bugs      []*findbugs.BugInstance
	Errors    []findbugs.AnalysisError
	Missing   []string
	Finished  int
	FinishErr error
	Filter    func(bug *findbugs.BugInstance) bool

	observers []findbugs.BugObserver
}

var (
	_ findbugs.BugReporter = (*MockReporter)(nil)
	_ findbugs.Observable  = (*MockReporter)(nil)
)

// NewMockReporter creates a reporter accepting every bug
func NewMockReporter() *MockReporter {
	return &MockReporter{}
}

func (m *MockReporter) AddObserver(o findbugs.BugObserver) {
	m.observers = append(m.observers, o)
}

func (m *MockReporter) ObserveClass(className string) {
	m.Classes = append(m.Classes, className)
}

func (m *MockReporter) ReportBug(bug *findbugs.BugInstance) {
	if m.Filter != nil && !m.Filter(bug) {
		return
	}
	m.Bugs = append(m.Bugs, bug)
	for _, o := range m.observers {
		o(bug)
	}
}

func (m *MockReporter) ReportAnalysisError(e findbugs.AnalysisError) {
	m.Errors = append(m.Errors, e)
}

func (m *MockReporter) LogError(message string, cause error) {
	m.Errors = append(m.Errors, findbugs.NewAnalysisError(message, cause))
}

func (m *MockReporter) ReportMissingClass(name string) {
	m.Missing = append(m.Missing, name)
}

func (m *MockReporter) Finish() error {
	m.Finished++
	return m.FinishErr
}

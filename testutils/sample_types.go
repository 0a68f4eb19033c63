package testutils

import (
	"github.com/securego/findbugs-report"
	"github.com/securego/findbugs-report/engine"
)

// RunSample encapsulates a recorded analysis run and the counters the
// reports should show for it
type RunSample struct {
	Events  []engine.Event
	Metrics findbugs.Metrics
}

// NewBug creates a bug of class with a single line
func NewBug(class, bugType, category string, priority, line int) *findbugs.BugInstance {
	return &findbugs.BugInstance{
		Type:        bugType,
		Abbrev:      "NP",
		Category:    category,
		Priority:    priority,
		ClassName:   class,
		Description: "Possible null pointer dereference in " + class,
		Line:        findbugs.NewSourceLine(line, line),
	}
}

var (
	// SampleSingleBug observes one class with one bug
	SampleSingleBug = RunSample{
		Events: []engine.Event{
			engine.Observe("pkg.A"),
			engine.Bug(NewBug("pkg.A", "X", "CORRECTNESS", 2, 10)),
			engine.Finish(),
		},
		Metrics: findbugs.Metrics{NumClasses: 1, NumBugs: 1},
	}

	// SampleDuplicateBug reports the same bug twice
	SampleDuplicateBug = RunSample{
		Events: []engine.Event{
			engine.Observe("pkg.A"),
			engine.Bug(NewBug("pkg.A", "X", "CORRECTNESS", 2, 10)),
			engine.Bug(NewBug("pkg.A", "X", "CORRECTNESS", 2, 10)),
			engine.Finish(),
		},
		Metrics: findbugs.Metrics{NumClasses: 1, NumBugs: 1},
	}

	// SampleMixedRun covers several classes, errors and missing classes
	SampleMixedRun = RunSample{
		Events: []engine.Event{
			engine.Start("1.3.9"),
			engine.Observe("pkg.A"),
			engine.Bug(NewBug("pkg.A", "NP_NULL", "CORRECTNESS", 1, 12)),
			engine.Bug(NewBug("pkg.A", "DM_STRING", "PERFORMANCE", 3, 20)),
			engine.Observe("pkg.B"),
			engine.Missing("org/example/Gone"),
			engine.Missing("org.example.Gone"),
			engine.Observe("pkg/C"),
			engine.Bug(NewBug("pkg.C", "SE_BAD", "BAD_PRACTICE", 2, 7)),
			engine.Bug(NewBug("pkg.C", "EXP_ONLY", "EXPERIMENTAL", 4, 9)),
			engine.Error("cannot analyze pkg.D", ""),
			engine.Error("cannot analyze pkg.D", "class format error"),
			engine.Finish(),
		},
		Metrics: findbugs.Metrics{NumClasses: 3, NumBugs: 3, NumErrors: 2, NumMissingClasses: 1},
	}
)

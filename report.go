package findbugs

// Metrics used when reporting information about an analysis run.
type Metrics struct {
	NumClasses        int `json:"classes" yaml:"classes"`
	NumBugs           int `json:"bugs" yaml:"bugs"`
	NumErrors         int `json:"errors" yaml:"errors"`
	NumMissingClasses int `json:"missingClasses" yaml:"missingClasses"`
}

// Merge returns the metrics of a run whose counters are split between
// reporters, taking the larger value of each counter.
func (m Metrics) Merge(o Metrics) Metrics {
	return Metrics{
		NumClasses:        max(m.NumClasses, o.NumClasses),
		NumBugs:           max(m.NumBugs, o.NumBugs),
		NumErrors:         max(m.NumErrors, o.NumErrors),
		NumMissingClasses: max(m.NumMissingClasses, o.NumMissingClasses),
	}
}

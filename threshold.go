package findbugs

import "log/slog"

// Threshold is the minimum priority a bug needs to make it into the report.
// The numeric value is the engine priority constant, lower is more severe.
type Threshold int

const (
	// High reports only high priority bugs
	High Threshold = iota + 1
	// Normal reports normal and high priority bugs
	Normal
	// Low reports low, normal and high priority bugs
	Low
	// Exp also reports experimental bug patterns
	Exp
	// Ignore reports every bug
	Ignore
)

// DefaultThreshold is used when no or an unknown threshold is configured.
const DefaultThreshold = Low

// InvalidPriority is the name used for priorities outside the known range.
const InvalidPriority = "Invalid Priority"

var thresholdNames = map[Threshold]string{
	High:   "High",
	Normal: "Normal",
	Low:    "Low",
	Exp:    "Exp",
	Ignore: "Ignore",
}

// Thresholds lists all thresholds ordered by their engine priority.
func Thresholds() []Threshold {
	return []Threshold{High, Normal, Low, Exp, Ignore}
}

// Valid reports whether t is one of the defined thresholds.
func (t Threshold) Valid() bool {
	_, ok := thresholdNames[t]
	return ok
}

// Name returns the configuration name of the threshold.
func (t Threshold) Name() string {
	return thresholdNames[t]
}

// Value returns the engine priority of the threshold.
func (t Threshold) Value() int {
	return int(t)
}

func (t Threshold) String() string {
	if !t.Valid() {
		return InvalidPriority
	}
	return t.Name()
}

// ParseThreshold looks up a threshold by its exact name.
func ParseThreshold(name string) (Threshold, bool) {
	for _, t := range Thresholds() {
		if t.Name() == name {
			return t, true
		}
	}
	return 0, false
}

// ThresholdFor resolves a user supplied threshold name. Unknown names are
// not an error, the default threshold is used instead.
func ThresholdFor(name string, logger *slog.Logger) Threshold {
	if name == "" {
		logger.Info("No threshold provided, using default threshold.")
		return DefaultThreshold
	}
	t, ok := ParseThreshold(name)
	if !ok {
		logger.Info("Threshold not recognised, using default threshold", "threshold", name)
		return DefaultThreshold
	}
	logger.Info("Using " + name + " threshold.")
	return t
}

// PriorityName maps an engine priority back to the threshold name.
func PriorityName(priority int) string {
	t := Threshold(priority)
	if !t.Valid() {
		return InvalidPriority
	}
	return t.Name()
}

package findbugs

import "log/slog"

// Effort is the amount of work the engine spends on the analysis.
type Effort int

const (
	// Min trades precision for memory and speed
	Min Effort = iota + 1
	// Default is the engine default
	Default
	// Max enables the interprocedural analyses
	Max
)

// DefaultEffort is used when no or an unknown effort is configured.
const DefaultEffort = Default

// AnalysisFeatureSetting toggles a named analysis feature of the engine.
type AnalysisFeatureSetting struct {
	Name    string
	Enabled bool
}

// Engine analysis feature names.
const (
	FeatureConserveSpace           = "ConserveSpace"
	FeatureAccurateExceptions      = "AccurateExceptions"
	FeatureModelInstanceof         = "ModelInstanceof"
	FeatureSkipHugeMethods         = "SkipHugeMethods"
	FeatureInterativeOpcodeStack   = "InterativeOpcodeStackAnalysis"
	FeatureTrackGuaranteedDerefs   = "TrackGuaranteedValueDerefsInNullPointerAnalysis"
	FeatureTrackValueNumbers       = "TrackValueNumbersInNullPointerAnalysis"
	FeatureInterprocedural         = "InterproceduralAnalysis"
	FeatureInterproceduralReferred = "InterproceduralAnalysisOfReferencedClasses"
)

type effortDef struct {
	name     string
	settings []AnalysisFeatureSetting
}

var efforts = map[Effort]effortDef{
	Min: {
		name: "Min",
		settings: []AnalysisFeatureSetting{
			{FeatureConserveSpace, true},
			{FeatureAccurateExceptions, false},
			{FeatureModelInstanceof, false},
			{FeatureSkipHugeMethods, true},
			{FeatureInterativeOpcodeStack, false},
			{FeatureTrackGuaranteedDerefs, false},
			{FeatureTrackValueNumbers, false},
			{FeatureInterprocedural, false},
			{FeatureInterproceduralReferred, false},
		},
	},
	Default: {
		name: "Default",
		settings: []AnalysisFeatureSetting{
			{FeatureConserveSpace, false},
			{FeatureAccurateExceptions, true},
			{FeatureModelInstanceof, true},
			{FeatureSkipHugeMethods, true},
			{FeatureInterativeOpcodeStack, true},
			{FeatureTrackGuaranteedDerefs, true},
			{FeatureTrackValueNumbers, true},
			{FeatureInterprocedural, false},
			{FeatureInterproceduralReferred, false},
		},
	},
	Max: {
		name: "Max",
		settings: []AnalysisFeatureSetting{
			{FeatureConserveSpace, false},
			{FeatureAccurateExceptions, true},
			{FeatureModelInstanceof, true},
			{FeatureSkipHugeMethods, false},
			{FeatureInterativeOpcodeStack, true},
			{FeatureTrackGuaranteedDerefs, true},
			{FeatureTrackValueNumbers, true},
			{FeatureInterprocedural, true},
			{FeatureInterproceduralReferred, true},
		},
	},
}

// Efforts lists all effort levels from the cheapest to the most expensive.
func Efforts() []Effort {
	return []Effort{Min, Default, Max}
}

// Valid reports whether e is one of the defined effort levels.
func (e Effort) Valid() bool {
	_, ok := efforts[e]
	return ok
}

// Name returns the configuration name of the effort level.
func (e Effort) Name() string {
	return efforts[e].name
}

// Settings returns a copy of the engine feature settings for the effort level.
func (e Effort) Settings() []AnalysisFeatureSetting {
	settings := efforts[e].settings
	out := make([]AnalysisFeatureSetting, len(settings))
	copy(out, settings)
	return out
}

func (e Effort) String() string {
	return e.Name()
}

// ParseEffort looks up an effort level by its exact name.
func ParseEffort(name string) (Effort, bool) {
	for _, e := range Efforts() {
		if e.Name() == name {
			return e, true
		}
	}
	return 0, false
}

// EffortFor resolves a user supplied effort name, falling back to the
// default effort for empty or unknown names.
func EffortFor(name string, logger *slog.Logger) Effort {
	if name == "" {
		logger.Info("No effort provided, using default effort.")
		return DefaultEffort
	}
	e, ok := ParseEffort(name)
	if !ok {
		logger.Info("Effort not recognised, using default effort", "effort", name)
		return DefaultEffort
	}
	logger.Info("Using " + name + " effort.")
	return e
}

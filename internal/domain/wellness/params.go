package wellness

// Params defines all configurable parameters for the derivation pipeline.
// The literal thresholds are tunable configuration, not hard-coded law;
// tests substitute their own values to exercise the evaluation algorithm.
type Params struct {
	// StressThreshold fires the stress_management rule when the mean stress
	// level is at or above it. Inclusive at the boundary.
	StressThreshold float64

	// WorkloadThreshold fires the workload rule when the mean workload level
	// is at or above it. Inclusive at the boundary.
	WorkloadThreshold float64

	// LowMoodThreshold fires the work_life_balance rule when the mean mood
	// level is at or below it. Inclusive at the boundary.
	LowMoodThreshold float64

	// LookbackDays is the length of the per-user recommendation window.
	LookbackDays int
}

// ParamsConfig allows overriding the default parameters when creating a new
// Params instance. Zero values keep the corresponding default.
type ParamsConfig struct {
	StressThreshold   float64
	WorkloadThreshold float64
	LowMoodThreshold  float64
	LookbackDays      int
}

// NewDefaultParams creates a new Params instance with default values.
func NewDefaultParams() *Params {
	return &Params{
		StressThreshold:   4.0,
		WorkloadThreshold: 4.0,
		LowMoodThreshold:  2.0,
		LookbackDays:      30,
	}
}

// NewParams creates a new Params instance with custom configuration.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.StressThreshold > 0 {
		params.StressThreshold = config.StressThreshold
	}
	if config.WorkloadThreshold > 0 {
		params.WorkloadThreshold = config.WorkloadThreshold
	}
	if config.LowMoodThreshold > 0 {
		params.LowMoodThreshold = config.LowMoodThreshold
	}
	if config.LookbackDays > 0 {
		params.LookbackDays = config.LookbackDays
	}

	return params
}

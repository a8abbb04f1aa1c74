package wellness

import (
	"math"

	"github.com/pulsecheck-app/pulsecheck-api/internal/domain"
)

// AggregateWindow is the statistical summary of a collection of assessments.
// Means are rounded half-up to two decimal places and are exactly 0 when
// Count is 0 (never NaN), because downstream rules and display logic assume
// a numeric zero. The level distributions map an ordinal level (1..5) to its
// occurrence count; only observed levels are present, absent levels are
// implicitly zero.
type AggregateWindow struct {
	Count          int         `json:"count"`
	MeanMood       float64     `json:"mean_mood"`
	MeanStress     float64     `json:"mean_stress"`
	MeanWorkload   float64     `json:"mean_workload"`
	MoodLevels     map[int]int `json:"mood_levels"`
	StressLevels   map[int]int `json:"stress_levels"`
	WorkloadLevels map[int]int `json:"workload_levels"`
}

// HasData reports whether the window was built from at least one assessment.
// A window over a real all-mid-range history has HasData true even though
// its means are unremarkable; only genuine absence of records is degenerate.
func (w AggregateWindow) HasData() bool {
	return w.Count > 0
}

// Aggregate reduces a collection of assessments into an AggregateWindow.
// An empty input is a valid, expected case (new user, quiet month) and
// yields a zeroed window with empty distributions. An ordinal value outside
// the 1..5 contract fails fast with an error naming the offending field.
func Aggregate(records []domain.Assessment) (AggregateWindow, error) {
	window := AggregateWindow{
		MoodLevels:     make(map[int]int),
		StressLevels:   make(map[int]int),
		WorkloadLevels: make(map[int]int),
	}

	if len(records) == 0 {
		return window, nil
	}

	var moodSum, stressSum, workloadSum int
	for _, r := range records {
		if err := domain.ValidateLevel("mood", r.Mood); err != nil {
			return AggregateWindow{}, err
		}
		if err := domain.ValidateLevel("stress", r.Stress); err != nil {
			return AggregateWindow{}, err
		}
		if err := domain.ValidateLevel("workload", r.Workload); err != nil {
			return AggregateWindow{}, err
		}

		moodSum += r.Mood
		stressSum += r.Stress
		workloadSum += r.Workload
		window.MoodLevels[r.Mood]++
		window.StressLevels[r.Stress]++
		window.WorkloadLevels[r.Workload]++
	}

	n := float64(len(records))
	window.Count = len(records)
	window.MeanMood = round2(float64(moodSum) / n)
	window.MeanStress = round2(float64(stressSum) / n)
	window.MeanWorkload = round2(float64(workloadSum) / n)

	return window, nil
}

// round2 rounds half-up to two decimal places. Inputs are means of values
// in [1,5], so the positive-only half-up form is sufficient.
func round2(x float64) float64 {
	return math.Floor(x*100+0.5) / 100
}

package wellness

// Category is a stable tag linking a fired rule to its user-facing text.
// The literal strings are consumed by other systems and must not change.
type Category string

const (
	CategoryOnboarding       Category = "onboarding"
	CategoryStressManagement Category = "stress_management"
	CategoryWorkload         Category = "workload"
	CategoryWorkLifeBalance  Category = "work_life_balance"
)

// Rule is a named, prioritized predicate over an aggregate window.
// Priority determines output ordering only (lower first); it does not
// short-circuit evaluation, since several rules can fire for the same
// window and all of them must surface.
//
// A rule with NoHistory set fires on the explicit "no records at all"
// signal instead of examining the window. The signal is supplied by the
// caller rather than inferred from zeroed means, because a real history
// of all-3s also produces unremarkable means but must not be mistaken
// for absence of data.
type Rule struct {
	Category  Category
	Priority  int
	NoHistory bool
	Predicate func(w AggregateWindow) bool
}

// DefaultRules builds the standard rule table from the given parameters.
// All thresholds are inclusive at the boundary.
func DefaultRules(params *Params) []Rule {
	return []Rule{
		{
			Category:  CategoryOnboarding,
			Priority:  0,
			NoHistory: true,
		},
		{
			Category: CategoryStressManagement,
			Priority: 1,
			Predicate: func(w AggregateWindow) bool {
				return w.MeanStress >= params.StressThreshold
			},
		},
		{
			Category: CategoryWorkload,
			Priority: 2,
			Predicate: func(w AggregateWindow) bool {
				return w.MeanWorkload >= params.WorkloadThreshold
			},
		},
		{
			Category: CategoryWorkLifeBalance,
			Priority: 3,
			Predicate: func(w AggregateWindow) bool {
				return w.MeanMood <= params.LowMoodThreshold
			},
		},
	}
}

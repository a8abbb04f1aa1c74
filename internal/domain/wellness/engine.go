package wellness

import "sort"

// Engine evaluates an ordered rule table against an AggregateWindow.
// The rule table is fixed at construction and never mutated afterwards,
// so a single Engine is safe to share across concurrent evaluations.
type Engine struct {
	rules []Rule
}

// NewEngine creates an Engine from the given rules. Rules are kept in a
// total order on (priority, category) so that output is reproducible
// regardless of the order the table was declared in.
func NewEngine(rules []Rule) *Engine {
	sorted := make([]Rule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority < sorted[j].Priority
		}
		return sorted[i].Category < sorted[j].Category
	})
	return &Engine{rules: sorted}
}

// NewDefaultEngine creates an Engine with the standard rule table and
// default parameters.
func NewDefaultEngine() *Engine {
	return NewEngine(DefaultRules(NewDefaultParams()))
}

// Evaluate runs every rule against the window and returns the categories of
// all matching rules, ordered by (priority, category). hasHistory is the
// caller-supplied "at least one real observation exists" signal.
//
// When hasHistory is false, only the no-history rules fire and no data
// rule is evaluated: a user with zero records receives the onboarding
// category and nothing else, even if the (zeroed) window would satisfy a
// data predicate.
func (e *Engine) Evaluate(window AggregateWindow, hasHistory bool) []Category {
	var matched []Category

	if !hasHistory {
		for _, r := range e.rules {
			if r.NoHistory {
				matched = append(matched, r.Category)
			}
		}
		return matched
	}

	for _, r := range e.rules {
		if r.NoHistory || r.Predicate == nil {
			continue
		}
		if r.Predicate(window) {
			matched = append(matched, r.Category)
		}
	}
	return matched
}

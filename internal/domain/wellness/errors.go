package wellness

import "errors"

// Common errors
var (
	// ErrMissingTemplate is returned when a matched category has no entry in
	// the recommendation template table. This is a deployment defect, not a
	// per-request condition: the whole synthesis call fails rather than
	// silently dropping the category.
	ErrMissingTemplate = errors.New("no recommendation template registered for category")

	// ErrMissingSentence is returned when a matched category has no entry in
	// the report sentence table. Same policy as ErrMissingTemplate.
	ErrMissingSentence = errors.New("no report sentence registered for category")

	// ErrInvalidYear is returned when a report year is not a positive integer.
	ErrInvalidYear = errors.New("year must be a positive integer")

	// ErrInvalidMonth is returned when a report month is outside 1..12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
)

// Package service wires the derivation pipeline to the storage layer and
// exposes the two entry points the API consumes: per-user recommendations
// and the organization-wide monthly report.
package service

import "errors"

// Common service errors
var (
	// ErrInvalidPeriod is returned when a report period fails bounds
	// validation (year < 1 or month outside 1..12). The period is rejected
	// before the derivation pipeline is invoked.
	ErrInvalidPeriod = errors.New("invalid report period")
)

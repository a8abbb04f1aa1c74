// Package wellness contains the derivation logic that turns raw
// self-assessments into personalized recommendations and monthly reports.
//
// The pipeline has three stages: Aggregate reduces a set of assessments to
// summary statistics over a window, the Engine evaluates an ordered rule
// table against those statistics, and the Synthesizer and Composer map the
// matched categories to user-facing text. Every stage is a pure function
// over immutable inputs: no I/O, no hidden clock, no shared mutable state,
// so concurrent invocations need no coordination.
package wellness

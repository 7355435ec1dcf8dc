package domain

import "errors"

// Sentinel errors for the analysis pipeline.
var (
	// ErrValidation rejects a whole request before any component runs.
	ErrValidation = errors.New("validation failed")
	// ErrComputation marks a failure scoped to a single feature.
	ErrComputation = errors.New("computation failed")
	// ErrDivisionByZero is returned by formulas over empty counts.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrUnknownFeature is returned when a feature name cannot be parsed.
	ErrUnknownFeature = errors.New("unknown feature")
	// ErrNoRenderer is reported on the word cloud slot when no renderer is wired.
	ErrNoRenderer = errors.New("no word cloud renderer configured")
)

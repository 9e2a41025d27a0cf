package sim

import "errors"

var (
	// ErrPredicateNotFound indicates the configured event name matches no model predicate.
	ErrPredicateNotFound = errors.New("sim: target predicate not found in model")

	// ErrInvalidDuration indicates a non-positive or non-finite simulation duration.
	ErrInvalidDuration = errors.New("sim: duration must be positive and finite")

	// ErrNoReactions indicates a model without any reactions.
	ErrNoReactions = errors.New("sim: model has no reactions")
)

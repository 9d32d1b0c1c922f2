// Package tax computes salary breakdowns under the old and new income tax
// regimes. Everything here is pure: the same input and rate card always
// produce the same breakdowns, and nothing is retained between calls.
package tax

import (
	"fmt"
	"math"
)

// Input is the user-provided context for one computation.
type Input struct {
	// Gross is the annual gross salary (CTC).
	Gross float64
	// Metro reports residence in a metro city. Only the old regime's HRA
	// exemption depends on it.
	Metro bool
	// IncludePF reports whether provident fund contributions are part of
	// the CTC.
	IncludePF bool
}

// InputError reports invalid user input. It is the only error kind the
// engine produces; no computation is attempted once one is raised.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate checks basic input sanity before any computation.
func (in Input) Validate() error {
	if math.IsNaN(in.Gross) || math.IsInf(in.Gross, 0) {
		return &InputError{Field: "salary", Reason: "must be a number"}
	}
	if in.Gross <= 0 {
		return &InputError{Field: "salary", Reason: fmt.Sprintf("must be positive, got %v", in.Gross)}
	}
	return nil
}

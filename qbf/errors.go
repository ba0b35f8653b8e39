// SPDX-License-Identifier: MIT

package qbf

import "errors"

var (
	// ErrEmptyDomain is returned when the coefficient matrix has no rows.
	ErrEmptyDomain = errors.New("qbf: empty domain")

	// ErrTripleRange indicates a triple member outside [0, n).
	ErrTripleRange = errors.New("qbf: triple member out of domain")

	// ErrNilEvaluator is returned by Inverse when wrapping nil.
	ErrNilEvaluator = errors.New("qbf: nil evaluator")
)

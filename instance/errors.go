// SPDX-License-Identifier: MIT

package instance

import "errors"

var (
	// ErrEmptyInstance is returned when the stream holds no tokens at all.
	ErrEmptyInstance = errors.New("instance: empty input")

	// ErrBadDimension is returned when the leading token is not an integer in [1, MaxDimension].
	ErrBadDimension = errors.New("instance: dimension must be an integer in [1, MaxDimension]")

	// ErrTruncated is returned when the stream ends before n(n+1)/2 coefficients were read.
	ErrTruncated = errors.New("instance: truncated coefficient list")

	// ErrBadToken is returned when a coefficient token is not a finite number.
	ErrBadToken = errors.New("instance: malformed coefficient")

	// ErrBadRange is returned by Generate when Min > Max.
	ErrBadRange = errors.New("instance: coefficient range min > max")
)

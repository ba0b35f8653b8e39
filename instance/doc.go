// SPDX-License-Identifier: MIT

// Package instance reads, writes and generates QBF instance files.
//
// File grammar (whitespace or newline separated tokens):
//
//	n
//	a[0][0] a[0][1] ... a[0][n-1]
//	        a[1][1] ... a[1][n-1]
//	                ...
//	                    a[n-1][n-1]
//
// The first token is the integer domain size n; it is followed by the upper
// triangle of the n×n coefficient matrix in row-major order, n(n+1)/2 values.
// Entries below the diagonal are always zero in the resulting matrix. Layout
// of the tokens across lines is irrelevant; anything after the last expected
// value is ignored.
//
// Errors are sentinels (ErrEmptyInstance, ErrBadDimension, ErrTruncated,
// ErrBadToken) wrapped with the token position; match them with errors.Is.
package instance

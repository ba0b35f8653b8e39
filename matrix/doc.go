// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric storage behind QBF coefficient
// matrices.
//
// The matrix package provides:
//
//   - Matrix, a bounds-checked interface over two-dimensional float64 arrays.
//   - Dense, a row-major implementation backed by a single flat slice.
//   - Validators (ValidateNotNil, ValidateSquare, ValidateFinite,
//     ValidateUpperTriangular) that return sentinel errors for errors.Is.
//
// Coefficient matrices for f(x) = xᵗAx are square and populated on and above
// the diagonal only; ValidateUpperTriangular checks that layout.
package matrix

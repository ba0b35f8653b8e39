// SPDX-License-Identifier: MIT

// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/tabuqbf/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	dense := func(r, c int) matrix.Matrix {
		m, err := matrix.NewDense(r, c)
		require.NoError(t, err)
		return m
	}
	var typedNil *matrix.Dense

	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"typed nil", typedNil, matrix.ErrNilMatrix},
		{"1x1", dense(1, 1), nil},
		{"3x3", dense(3, 3), nil},
		{"2x3", dense(2, 3), matrix.ErrNonSquare},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquare(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.Truef(t, errors.Is(err, tc.want), "expected errors.Is(%v, %v)", err, tc.want)
		})
	}
}

// TestValidateFinite rejects NaN and both infinities.
func TestValidateFinite(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		m, err := matrix.NewDense(2, 2)
		require.NoError(t, err)
		require.NoError(t, matrix.ValidateFinite(m))

		require.NoError(t, m.Set(1, 0, bad))
		require.ErrorIs(t, matrix.ValidateFinite(m), matrix.ErrNaNInf)
	}
}

// TestValidateUpperTriangular accepts diagonal and upper entries only.
func TestValidateUpperTriangular(t *testing.T) {
	m, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 2, -4))
	require.NoError(t, m.Set(2, 2, 5))
	require.NoError(t, matrix.ValidateUpperTriangular(m))

	require.NoError(t, m.Set(2, 1, 0.5))
	require.ErrorIs(t, matrix.ValidateUpperTriangular(m), matrix.ErrNotUpperTriangular)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateUpperTriangular(rect), matrix.ErrNonSquare)
}

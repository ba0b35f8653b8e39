// SPDX-License-Identifier: MIT

package instance

import (
	"bufio"
	"io"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/tabuqbf/matrix"
)

// Write serializes m in the instance grammar: n on the first line, then the
// upper triangle of row i on line i+1. A matrix with non-zero entries below
// the diagonal is rejected with matrix.ErrNotUpperTriangular.
func Write(w io.Writer, m matrix.Matrix) error {
	if err := matrix.ValidateUpperTriangular(m); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	n := m.Rows()

	var (
		i, j int
		v    float64
		err  error
		buf  []byte
	)
	buf = strconv.AppendInt(buf, int64(n), 10)
	buf = append(buf, '\n')
	if _, err = bw.Write(buf); err != nil {
		return err
	}
	for i = 0; i < n; i++ {
		buf = buf[:0]
		for j = i; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return err
			}
			if j > i {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
		}
		buf = append(buf, '\n')
		if _, err = bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// GenOptions configures Generate.
type GenOptions struct {
	// Min and Max bound the integer coefficients, inclusive.
	Min, Max int

	// Seed drives the generator; 0 uses a fixed default stream.
	Seed int64
}

// DefaultGenOptions mirrors the coefficient range of the classic qbfNNN instances.
func DefaultGenOptions() GenOptions {
	return GenOptions{Min: -10, Max: 10, Seed: 0}
}

// Generate builds a random n×n upper-triangular coefficient matrix with
// integer entries drawn uniformly from [opts.Min, opts.Max].
// Same seed ⇒ identical matrix.
//
// Complexity: O(n²).
func Generate(n int, opts GenOptions) (*matrix.Dense, error) {
	if n <= 0 || n > MaxDimension {
		return nil, ErrBadDimension
	}
	span := opts.Max - opts.Min + 1
	if opts.Min > opts.Max || span <= 0 {
		return nil, ErrBadRange
	}
	seed := opts.Seed
	if seed == 0 {
		seed = 1
	}
	rng := rand.New(rand.NewSource(seed))

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			_ = m.Set(i, j, float64(opts.Min+rng.Intn(span)))
		}
	}

	return m, nil
}

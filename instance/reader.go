// SPDX-License-Identifier: MIT

package instance

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/katalvlaran/tabuqbf/matrix"
)

// MaxDimension is the largest domain size Read and Generate accept.
// An n×n float64 matrix at this size takes 2 GiB.
const MaxDimension = 1 << 14

// Read parses an instance from r and returns its n×n coefficient matrix.
//
// Contract:
//   - first token: integer n in [1, MaxDimension] (a float token with an integral value is accepted);
//   - then n(n+1)/2 finite numbers for a[i][j], i in [0,n), j in [i,n);
//   - a[j][i] for j>i stays zero regardless of the stream contents.
//
// Complexity: O(n²) time and memory.
func Read(r io.Reader) (*matrix.Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, ErrEmptyInstance
	}
	n, err := parseDimension(sc.Text())
	if err != nil {
		return nil, err
	}

	// The matrix is allocated only after all n(n+1)/2 coefficients were read.
	var (
		total  = n * (n + 1) / 2
		values = make([]float64, 0, min(total, 4096))
		value  float64
		i, j   int
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			pos := len(values) + 1 // token position, 0 is the dimension
			if !sc.Scan() {
				if err = sc.Err(); err != nil {
					return nil, err
				}
				return nil, fmt.Errorf("instance: a[%d][%d] (token %d): %w", i, j, pos, ErrTruncated)
			}
			value, err = strconv.ParseFloat(sc.Text(), 64)
			if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
				return nil, fmt.Errorf("instance: a[%d][%d] (token %d) %q: %w", i, j, pos, sc.Text(), ErrBadToken)
			}
			values = append(values, value)
		}
	}

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("instance: n=%d: %w", n, err)
	}
	k := 0
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			if err = m.Set(i, j, values[k]); err != nil {
				return nil, err
			}
			k++
		}
	}

	return m, nil
}

// Load opens path and parses it with Read. Errors are wrapped with the path.
func Load(path string) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("instance: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// parseDimension accepts "40" as well as "40.0"; anything else, or a value
// outside [1, MaxDimension], is ErrBadDimension.
func parseDimension(tok string) (int, error) {
	if n, err := strconv.Atoi(tok); err == nil {
		if n <= 0 || n > MaxDimension {
			return 0, fmt.Errorf("instance: n=%d: %w", n, ErrBadDimension)
		}
		return n, nil
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil || f != math.Trunc(f) || f <= 0 || f > MaxDimension {
		return 0, fmt.Errorf("instance: n=%q: %w", tok, ErrBadDimension)
	}

	return int(f), nil
}

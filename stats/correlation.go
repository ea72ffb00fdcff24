// Package stats provides small statistical summaries used to compare ranker
// outputs: currently just Pearson correlation, wrapping gonum.org/v1/gonum/stat
// rather than hand-rolling covariance/variance arithmetic.
package stats

import (
	"errors"

	"gonum.org/v1/gonum/stat"
)

// ErrLengthMismatch indicates x and y are not the same length.
var ErrLengthMismatch = errors.New("stats: x and y must be the same length")

// ErrEmptyInput indicates x or y is empty.
var ErrEmptyInput = errors.New("stats: x and y must be non-empty")

// Correlation returns the Pearson correlation coefficient between x and y,
// with uniform (unweighted) sample weights.
func Correlation(x, y []float64) (float64, error) {
	if len(x) == 0 || len(y) == 0 {
		return 0, ErrEmptyInput
	}
	if len(x) != len(y) {
		return 0, ErrLengthMismatch
	}

	return stat.Correlation(x, y, nil), nil
}

// RankVector maps an ordered set of IDs to their scores under m, with a
// default of 0 for any ID m does not contain. Used to align two rankers'
// score maps over the same ID universe before calling Correlation.
func RankVector(ids []string, m map[string]float64) []float64 {
	out := make([]float64, len(ids))
	for i, id := range ids {
		out[i] = m[id]
	}

	return out
}

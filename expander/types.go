package expander

import (
	"context"
	"errors"
)

// Sentinel errors for expander.
var (
	// ErrInvalidInput indicates a missing seed id or an empty seed set.
	ErrInvalidInput = errors.New("expander: invalid input")

	// ErrCancelled indicates the supplied context was cancelled mid-expansion.
	ErrCancelled = errors.New("expander: cancelled")

	// ErrGraphNil indicates a nil graph view was passed.
	ErrGraphNil = errors.New("expander: graph is nil")
)

// N1Strategy decides single-seed termination, given the completed round
// count, the frontier's visited-set size and the graph's node count |V|.
type N1Strategy func(iteration int, visited, total int) bool

// CoverageThreshold returns an N1Strategy that terminates once coverage
// reaches threshold and iteration has reached at least minIterations.
func CoverageThreshold(threshold float64, minIterations int) N1Strategy {
	return func(iteration, visited, total int) bool {
		if total == 0 {
			return true
		}
		coverage := float64(visited) / float64(total)

		return coverage >= threshold && iteration >= minIterations
	}
}

// NodeWeightFunc supplies the optional per-call node-weight scalar used in
// the priority formula; default is a constant 1.
type NodeWeightFunc func(nodeID string) float64

// Config enumerates the expander's configuration knobs.
type Config struct {
	NodeWeight NodeWeightFunc
	N1         N1Strategy // single-seed termination strategy; nil means CoverageThreshold(0.8, 10)
	Epsilon    float64
	Ctx        context.Context
}

func (c Config) epsilon() float64 {
	if c.Epsilon > 0 {
		return c.Epsilon
	}
	return 1e-10
}

func (c Config) nodeWeight(id string) float64 {
	if c.NodeWeight != nil {
		return c.NodeWeight(id)
	}
	return 1
}

func (c Config) ctx() context.Context {
	if c.Ctx != nil {
		return c.Ctx
	}
	return context.Background()
}

// DefaultConfig returns a coverage-threshold single-seed strategy (80%
// coverage, 10 minimum iterations) and unit node weights.
func DefaultConfig() Config {
	return Config{Epsilon: 1e-10, N1: CoverageThreshold(0.8, 10)}
}

// Stats reports run diagnostics.
type Stats struct {
	Iterations int
}

// Result is the expander's output: the union of all frontiers' visited
// nodes, any reconstructed meeting paths between seed pairs (multi-seed
// only), and run statistics.
type Result struct {
	SampledNodes map[string]struct{}
	Paths        []MeetingPath
	Stats        Stats
}

// MeetingPath is a path reconstructed between two seeds through their
// frontiers' point of intersection.
type MeetingPath struct {
	SeedA, SeedB string
	Nodes        []string
	Edges        []string
}

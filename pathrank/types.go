package pathrank

import (
	"context"
	"errors"
)

// TraversalMode controls whether traversal may use an edge against its
// stored direction.
type TraversalMode int

const (
	// Undirected traverses an edge from its target to its source as well as
	// source to target, independent of the graph's own directedness.
	Undirected TraversalMode = iota
	// Directed only follows edges in their native source->target direction.
	Directed
)

// WeightMode controls how a path's edge weights contribute to its score.
type WeightMode int

const (
	// WeightNone ignores weights entirely.
	WeightNone WeightMode = iota
	// WeightDivide multiplies the score by 1/mean(weights).
	WeightDivide
	// WeightMultiplicative multiplies the score by exp(-mean(ln(weights))).
	WeightMultiplicative
)

// Sentinel errors for pathrank.
var (
	// ErrInvalidInput indicates a query endpoint id is absent from the graph.
	ErrInvalidInput = errors.New("pathrank: invalid input")

	// ErrCancelled indicates the supplied context was cancelled mid-enumeration.
	ErrCancelled = errors.New("pathrank: cancelled")

	// ErrGraphNil indicates a nil graph view was passed.
	ErrGraphNil = errors.New("pathrank: graph is nil")
)

// WeightExtractor returns the weight to use for an edge, given its id and
// stored weight. When no extractor is set, the stored weight is used and a
// stored weight of 0 (an unweighted edge) is read as 1.
type WeightExtractor func(edgeID string, weight float64) float64

// Config enumerates the path ranker's configuration knobs.
type Config struct {
	TraversalMode    TraversalMode
	Lambda           float64 // length-penalty factor; 0 disables
	WeightMode       WeightMode
	WeightExtractor  WeightExtractor
	MaxPaths         int // default 10
	MaxLength        int // default: unbounded (use <=0 for unbounded)
	ShortestOnly     bool
	Epsilon          float64
	MaxEnumerated    int // bounded-DFS cap; default 10000
	Ctx              context.Context
}

// DefaultConfig returns the documented default configuration.
func DefaultConfig() Config {
	return Config{
		TraversalMode: Undirected,
		Lambda:        0,
		WeightMode:    WeightNone,
		MaxPaths:      10,
		MaxLength:     0,
		ShortestOnly:  true,
		Epsilon:       1e-10,
		MaxEnumerated: 10000,
	}
}

func (c Config) epsilon() float64 {
	if c.Epsilon > 0 {
		return c.Epsilon
	}
	return 1e-10
}

func (c Config) maxPaths() int {
	if c.MaxPaths > 0 {
		return c.MaxPaths
	}
	return 10
}

func (c Config) maxEnumerated() int {
	if c.MaxEnumerated > 0 {
		return c.MaxEnumerated
	}
	return 10000
}

func (c Config) ctx() context.Context {
	if c.Ctx != nil {
		return c.Ctx
	}
	return context.Background()
}

func (c Config) weightOf(edgeID string, weight float64) float64 {
	if c.WeightExtractor != nil {
		return c.WeightExtractor(edgeID, weight)
	}
	if weight == 0 {
		return 1
	}
	return weight
}

// Path is an ordered alternating sequence of nodes and edge ids.
// len(Edges) == len(Nodes)-1 for any non-empty path.
type Path struct {
	Nodes []string
	Edges []string
}

// Len returns the edge count of the path.
func (p Path) Len() int { return len(p.Edges) }

// RankedPath is a Path plus its score and scoring inputs.
type RankedPath struct {
	Path            Path
	Score           float64
	GeometricMeanMI float64
	EdgeMIValues    []float64
	LengthPenalty   *float64
	WeightFactor    *float64
}

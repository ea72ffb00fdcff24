// Package builder provides internal configuration types for graph
// constructors. It centralizes common settings such as random number
// generator, vertex ID scheme, edge weight distribution, and bipartite
// partition prefixes to keep builder implementations DRY and consistent.
//
// The key type is builderConfig; BuilderOption (defined in options.go) is a
// function that mutates one. Use newBuilderConfig to obtain a config with
// sensible defaults, then apply any number of BuilderOption in order. Later
// options override earlier ones.
//
// Complexity: newBuilderConfig applies N options in O(N) time, O(1) extra space.
package builder

import (
	"math/rand"
)

// defaultLeftPrefix and defaultRightPrefix are the fallback bipartite
// partition labels when WithPartitionPrefix is not supplied or supplied empty.
const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// builderConfig holds the configurable parameters for graph builders:
//   - rng:         source of randomness (nil means deterministic).
//   - idFn:        function mapping index→vertex ID (IDFn).
//   - weightFn:    function mapping rng→edge weight (WeightFn).
//   - leftPrefix, rightPrefix: bipartite partition label prefixes.
//
// builderConfig is not safe for concurrent mutation; each builder invocation
// should create its own config via newBuilderConfig.
type builderConfig struct {
	rng         *rand.Rand // optional RNG; nil means deterministic behavior
	idFn        IDFn       // function to generate vertex IDs from indices
	weightFn    WeightFn   // function to generate edge weights
	leftPrefix  string     // bipartite left-partition prefix
	rightPrefix string     // bipartite right-partition prefix
}

// newBuilderConfig returns a builderConfig initialized with defaults, then
// applies each provided BuilderOption in order. If opts is empty, returns
// defaults: nil RNG, DefaultIDFn, DefaultWeightFn, "L"/"R" partition prefixes.
//
// Complexity: O(len(opts)) time, O(1) extra space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:         nil,             // no RNG → deterministic ID and weight functions
		idFn:        DefaultIDFn,     // decimal IDs "0","1",…
		weightFn:    DefaultWeightFn, // constant DefaultEdgeWeight
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	// Empty prefixes (e.g. from WithPartitionPrefix("", "")) fall back to defaults.
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

package config

import (
	"fmt"

	"github.com/quietflow/infopath/expander"
	"github.com/quietflow/infopath/miengine"
	"github.com/quietflow/infopath/pathrank"
)

// ToMIEngine translates the YAML-facing MIConfig into miengine.Config.
func (r Run) ToMIEngine() miengine.Config {
	cfg := miengine.DefaultConfig()
	cfg.UseEdgeTypes = r.MI.UseEdgeTypes
	cfg.UseAdamicAdar = r.MI.UseAdamicAdar
	cfg.UseDensityNormalization = r.MI.UseDensityNormalization
	cfg.TemporalDecay = r.MI.TemporalDecay
	cfg.ReferenceTime = r.MI.ReferenceTime
	cfg.NegativePenalty = r.MI.NegativePenalty
	cfg.CommunityBoost = r.MI.CommunityBoost
	cfg.UseDegreePenalty = r.MI.UseDegreePenalty
	cfg.DegreePenaltyAlpha = r.MI.DegreePenaltyAlpha
	cfg.UseIDFWeighting = r.MI.UseIDFWeighting
	cfg.UseEdgeTypeRarity = r.MI.UseEdgeTypeRarity
	cfg.UseClusteringPenalty = r.MI.UseClusteringPenalty

	return cfg
}

// ToPathRank translates the YAML-facing PathRankingConfig into pathrank.Config.
func (r Run) ToPathRank() (pathrank.Config, error) {
	cfg := pathrank.DefaultConfig()
	switch r.Ranking.TraversalMode {
	case "", "undirected":
		cfg.TraversalMode = pathrank.Undirected
	case "directed":
		cfg.TraversalMode = pathrank.Directed
	default:
		return cfg, fmt.Errorf("config: unknown traversal_mode %q", r.Ranking.TraversalMode)
	}
	switch r.Ranking.WeightMode {
	case "", "none":
		cfg.WeightMode = pathrank.WeightNone
	case "divide":
		cfg.WeightMode = pathrank.WeightDivide
	case "multiplicative":
		cfg.WeightMode = pathrank.WeightMultiplicative
	default:
		return cfg, fmt.Errorf("config: unknown weight_mode %q", r.Ranking.WeightMode)
	}
	cfg.Lambda = r.Ranking.Lambda
	if r.Ranking.MaxPaths > 0 {
		cfg.MaxPaths = r.Ranking.MaxPaths
	}
	cfg.MaxLength = r.Ranking.MaxLength
	cfg.ShortestOnly = r.Ranking.ShortestOnly
	if r.Ranking.MaxEnumerated > 0 {
		cfg.MaxEnumerated = r.Ranking.MaxEnumerated
	}

	return cfg, nil
}

// ToExpander translates the YAML-facing ExpanderConfig into expander.Config.
func (r Run) ToExpander() expander.Config {
	cfg := expander.DefaultConfig()
	threshold := r.Expander.CoverageThreshold
	if threshold <= 0 {
		threshold = 0.8
	}
	minIter := r.Expander.CoverageMinIteration
	cfg.N1 = expander.CoverageThreshold(threshold, minIter)

	return cfg
}

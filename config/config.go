// Package config loads a YAML run configuration bundling the MI engine,
// path ranking, and expander knobs so a cmd/pathrankctl invocation needs
// only a single file path.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MIConfig mirrors miengine.Config's YAML-facing subset.
type MIConfig struct {
	UseEdgeTypes            bool    `yaml:"use_edge_types,omitempty"`
	UseAdamicAdar           bool    `yaml:"use_adamic_adar,omitempty"`
	UseDensityNormalization bool    `yaml:"use_density_normalization,omitempty"`
	TemporalDecay           float64 `yaml:"temporal_decay,omitempty"`
	ReferenceTime           float64 `yaml:"reference_time,omitempty"`
	NegativePenalty         float64 `yaml:"negative_penalty,omitempty"`
	CommunityBoost          float64 `yaml:"community_boost,omitempty"`
	UseDegreePenalty        bool    `yaml:"use_degree_penalty,omitempty"`
	DegreePenaltyAlpha      float64 `yaml:"degree_penalty_alpha,omitempty"`
	UseIDFWeighting         bool    `yaml:"use_idf_weighting,omitempty"`
	UseEdgeTypeRarity       bool    `yaml:"use_edge_type_rarity,omitempty"`
	UseClusteringPenalty    bool    `yaml:"use_clustering_penalty,omitempty"`
}

// PathRankingConfig mirrors pathrank.Config's YAML-facing subset.
type PathRankingConfig struct {
	TraversalMode string  `yaml:"traversal_mode,omitempty"` // "undirected" or "directed"
	Lambda        float64 `yaml:"lambda,omitempty"`
	WeightMode    string  `yaml:"weight_mode,omitempty"` // "none", "divide", "multiplicative"
	MaxPaths      int     `yaml:"max_paths,omitempty"`
	MaxLength     int     `yaml:"max_length,omitempty"`
	ShortestOnly  bool    `yaml:"shortest_only,omitempty"`
	MaxEnumerated int     `yaml:"max_enumerated,omitempty"`
}

// ExpanderConfig mirrors expander.Config's YAML-facing subset.
type ExpanderConfig struct {
	CoverageThreshold    float64 `yaml:"coverage_threshold,omitempty"`
	CoverageMinIteration int     `yaml:"coverage_min_iterations,omitempty"`
}

// Run is the top-level, file-loadable configuration for one pathrankctl
// invocation.
type Run struct {
	MI       MIConfig          `yaml:"mi"`
	Ranking  PathRankingConfig `yaml:"ranking"`
	Expander ExpanderConfig    `yaml:"expander"`
}

// Default returns a Run populated with the same defaults as
// miengine.DefaultConfig / pathrank.DefaultConfig / expander.DefaultConfig,
// except MI.NegativePenalty, which is 0.5 here and 0 in miengine.DefaultConfig.
func Default() Run {
	return Run{
		MI: MIConfig{
			NegativePenalty: 0.5,
		},
		Ranking: PathRankingConfig{
			TraversalMode: "undirected",
			WeightMode:    "none",
			MaxPaths:      10,
			ShortestOnly:  true,
			MaxEnumerated: 10000,
		},
		Expander: ExpanderConfig{
			CoverageThreshold:    0.8,
			CoverageMinIteration: 10,
		},
	}
}

// Load reads and parses a Run from path. Missing fields keep Default's
// values since decoding starts from a pre-populated struct.
func Load(path string) (Run, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(cfg Run, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshaling: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: writing %s: %w", path, err)
	}

	return nil
}

package pathrank_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/quietflow/infopath/core"
	"github.com/quietflow/infopath/graphiface"
	"github.com/quietflow/infopath/miengine"
	"github.com/quietflow/infopath/pathrank"
)

// TestRankPaths_ScoresNonNegativeAndSorted checks two invariants that must
// hold for any random topology and any Lambda/MaxPaths combination: every
// reported score is non-negative, and the result is sorted descending.
func TestRankPaths_ScoresNonNegativeAndSorted(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ids := []string{"A", "B", "C", "D", "E"}
		g := core.NewGraph()
		for _, id := range ids {
			if err := g.AddVertex(id); err != nil {
				t.Fatalf("AddVertex: %v", err)
			}
		}
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				if rapid.Bool().Draw(t, "edge") {
					if _, err := g.AddEdge(ids[i], ids[j], 0); err != nil {
						t.Fatalf("AddEdge: %v", err)
					}
				}
			}
		}
		view := graphiface.FromCore(g)

		mi, err := miengine.Build(view, miengine.DefaultConfig())
		if err != nil {
			t.Fatalf("Build: %v", err)
		}

		cfg := pathrank.DefaultConfig()
		cfg.Lambda = rapid.Float64Range(0, 2).Draw(t, "lambda")
		cfg.ShortestOnly = rapid.Bool().Draw(t, "shortest_only")
		cfg.MaxPaths = rapid.IntRange(1, 20).Draw(t, "max_paths")

		start := rapid.SampledFrom(ids).Draw(t, "start")
		end := rapid.SampledFrom(ids).Draw(t, "end")

		ranked, err := pathrank.RankPaths(view, mi, start, end, cfg)
		if err != nil {
			t.Fatalf("RankPaths: %v", err)
		}

		for i, p := range ranked {
			if p.Score < 0 {
				t.Fatalf("negative score at index %d: %v", i, p.Score)
			}
			if i > 0 && ranked[i-1].Score < p.Score {
				t.Fatalf("ranked results not sorted descending at index %d: %v < %v", i, ranked[i-1].Score, p.Score)
			}
		}
		if len(ranked) > cfg.MaxPaths {
			t.Fatalf("returned %d paths, exceeding MaxPaths %d", len(ranked), cfg.MaxPaths)
		}
	})
}

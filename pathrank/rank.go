package pathrank

import (
	"fmt"
	"sort"

	"github.com/quietflow/infopath/graphiface"
	"github.com/quietflow/infopath/miengine"
)

// RankPaths returns ranked paths from start to end under cfg, sorted
// descending by score and truncated to cfg.MaxPaths. Returns ErrInvalidInput
// (wrapping the offending id) if start or end is absent from g. An
// unreachable end is not an error: it returns (nil, nil).
func RankPaths(g graphiface.View, mi *miengine.Cache, start, end string, cfg Config) ([]RankedPath, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if _, ok := g.Node(start); !ok {
		return nil, fmt.Errorf("pathrank: %w: node %q", ErrInvalidInput, start)
	}
	if _, ok := g.Node(end); !ok {
		return nil, fmt.Errorf("pathrank: %w: node %q", ErrInvalidInput, end)
	}

	select {
	case <-cfg.ctx().Done():
		return nil, fmt.Errorf("%w: %v", ErrCancelled, cfg.ctx().Err())
	default:
	}

	var paths []Path
	var err error
	if cfg.ShortestOnly {
		paths, err = shortestPaths(g, start, end, cfg.TraversalMode)
	} else {
		paths, err = boundedSimplePaths(g, start, end, cfg.TraversalMode, cfg.MaxLength, cfg.maxEnumerated())
	}
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, nil
	}

	weights := make(map[string]float64, len(g.Edges()))
	for _, e := range g.Edges() {
		weights[e.ID] = e.Weight
	}

	ranked := make([]RankedPath, 0, len(paths))
	for _, p := range paths {
		ranked = append(ranked, score(weights, p, mi, cfg))
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })

	if len(ranked) > cfg.maxPaths() {
		ranked = ranked[:cfg.maxPaths()]
	}

	return ranked, nil
}

// GetBestPath is RankPaths with MaxPaths forced to 1, returning the single
// top-scoring path, or (nil, nil) if end is unreachable from start.
func GetBestPath(g graphiface.View, mi *miengine.Cache, start, end string, cfg Config) (*RankedPath, error) {
	cfg.MaxPaths = 1
	ranked, err := RankPaths(g, mi, start, end, cfg)
	if err != nil {
		return nil, err
	}
	if len(ranked) == 0 {
		return nil, nil
	}

	return &ranked[0], nil
}

// Ranker is a reusable handle binding a graph plus a pre-built MI cache,
// so repeated queries against the same graph snapshot avoid rebuilding the
// cache each time.
type Ranker struct {
	g  graphiface.View
	mi *miengine.Cache
}

// NewRanker builds a Ranker, computing the MI cache via miengine.Build with
// miCfg if mi is nil.
func NewRanker(g graphiface.View, mi *miengine.Cache, miCfg miengine.Config) (*Ranker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if mi == nil {
		built, err := miengine.Build(g, miCfg)
		if err != nil {
			return nil, err
		}
		mi = built
	}

	return &Ranker{g: g, mi: mi}, nil
}

// Rank delegates to RankPaths using the bound graph and MI cache.
func (r *Ranker) Rank(start, end string, cfg Config) ([]RankedPath, error) {
	return RankPaths(r.g, r.mi, start, end, cfg)
}

// GetBest delegates to GetBestPath using the bound graph and MI cache.
func (r *Ranker) GetBest(start, end string, cfg Config) (*RankedPath, error) {
	return GetBestPath(r.g, r.mi, start, end, cfg)
}

// MICache returns the bound MI cache.
func (r *Ranker) MICache() *miengine.Cache {
	return r.mi
}

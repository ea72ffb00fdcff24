package miengine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/quietflow/infopath/cache"
	"github.com/quietflow/infopath/graphiface"
)

// Option configures a Build call (currently only cancellation, following the
// bfs/dfs WithContext idiom).
type Option func(*buildOptions)

type buildOptions struct {
	ctx context.Context
}

// WithContext allows cancellation of a Build in progress, checked once per
// edge batch.
func WithContext(ctx context.Context) Option {
	return func(o *buildOptions) { o.ctx = ctx }
}

// Build computes the MICache for every edge of g under cfg. Complexity:
// O(|E| + |V| + Σdeg(v)) plus O(|E|·avgDegree) if a structural strategy is
// in use.
func Build(g graphiface.View, cfg Config, opts ...Option) (*Cache, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if cfg.NegativePenalty < 0 || cfg.NegativePenalty > 1 {
		return nil, ErrInvalidConfig
	}

	o := buildOptions{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	c, err := cache.Build(g)
	if err != nil {
		return nil, err
	}

	in := cfg.Inputs
	if in == nil {
		in = newViewInputs(g)
	}

	nodes := g.Nodes()
	edges := g.Edges()
	numNodes := len(nodes)

	// Build-start detection: heterogeneous node types, edge-type frequencies.
	nodeTypes := make(map[string]struct{})
	for _, n := range nodes {
		if t, ok := in.TypeOf(n.ID); ok && t != "" {
			nodeTypes[t] = struct{}{}
		}
	}
	heterogeneousNodeTypes := len(nodeTypes) > 1

	edgeTypeFreq := make(map[string]int)
	nodeTypePairFreq := make(map[string]int)
	distinctEdgeTypes := make(map[string]struct{})
	for _, e := range edges {
		if t, ok := in.EdgeTypeOf(e.ID); ok && t != "" {
			edgeTypeFreq[t]++
			distinctEdgeTypes[t] = struct{}{}
		}
		tu, okU := in.TypeOf(e.From)
		tv, okV := in.TypeOf(e.To)
		if okU && okV {
			nodeTypePairFreq[typePairKey(tu, tv)]++
		}
	}
	useEdgeTypesEffective := cfg.UseEdgeTypes || len(distinctEdgeTypes) > 1
	totalEdges := len(edges)

	var density float64
	if cfg.UseDensityNormalization {
		if cfg.Density != nil {
			density = *cfg.Density
		} else {
			density = graphDensity(numNodes, totalEdges)
		}
	}

	eps := cfg.epsilon()
	values := make([]float64, len(edges))

	compute := func(idx int) error {
		e := edges[idx]
		values[idx] = computeEdgeMI(e, cfg, in, c, numNodes, heterogeneousNodeTypes,
			useEdgeTypesEffective, edgeTypeFreq, nodeTypePairFreq, totalEdges, density, eps)
		return nil
	}

	if len(edges) > 256 {
		grp, gctx := errgroup.WithContext(o.ctx)
		const batch = 64
		for start := 0; start < len(edges); start += batch {
			start := start
			end := start + batch
			if end > len(edges) {
				end = len(edges)
			}
			grp.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				for i := start; i < end; i++ {
					if err := compute(i); err != nil {
						return err
					}
				}
				return nil
			})
		}
		if err := grp.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i := range edges {
			select {
			case <-o.ctx.Done():
				return nil, o.ctx.Err()
			default:
			}
			if err := compute(i); err != nil {
				return nil, err
			}
		}
	}

	out := make(map[string]float64, len(edges))
	for i, e := range edges {
		out[e.ID] = values[i]
	}

	return &Cache{values: out}, nil
}

// computeEdgeMI selects a strategy per the precedence order, computes the
// base MI, and applies all configured modifiers.
func computeEdgeMI(
	e graphiface.Edge, cfg Config, in Inputs, c *cache.Cache,
	numNodes int, heterogeneousNodeTypes, useEdgeTypes bool,
	edgeTypeFreq, nodeTypePairFreq map[string]int, totalEdges int,
	density, eps float64,
) float64 {
	u, v := e.From, e.To

	// Missing endpoint (dangling edge) -> eps, skip all further work.
	if !hasNode(c, u) || !hasNode(c, v) {
		return eps
	}

	extras, hasExtras := in.HyperExtraOf(e.ID)
	au, okAU := in.AttributesOf(u)
	av, okAV := in.AttributesOf(v)
	tu, okTU := in.TypeOf(u)
	tv, okTV := in.TypeOf(v)
	et, okET := in.EdgeTypeOf(e.ID)

	var base float64
	switch {
	case hasExtras && len(extras) > 0:
		base = hyperedgeMI(c, append([]string{u, v}, extras...), eps)

	case okAU && okAV && len(au) > 0 && len(av) > 0:
		base = attributeMI(au, av, eps)

	case heterogeneousNodeTypes && okTU && okTV:
		count := nodeTypePairFreq[typePairKey(tu, tv)]
		base = pairRarity(count, totalEdges, eps)

	case useEdgeTypes && okET:
		base = pairRarity(edgeTypeFreq[et], totalEdges, eps)

	default:
		base = structuralMI(c, u, v, cfg, density, eps)
	}

	base = clampFinite(base, eps)

	return applyModifiers(base, cfg, in, c, numNodes, edgeTypeFreq, totalEdges, e.ID, u, v)
}

func structuralMI(c *cache.Cache, u, v string, cfg Config, density, eps float64) float64 {
	switch {
	case cfg.UseDensityNormalization:
		return densityNormalizedJaccard(c, u, v, density, eps)
	case cfg.UseAdamicAdar:
		return adamicAdar(c, u, v, eps)
	default:
		return jaccard(c, u, v, eps)
	}
}

// hasNode reports whether id was present at Cache build time. Cache.Build
// allocates a (possibly empty) neighbor set for every node it sees, and
// leaves the map entry absent (nil) for any id that never appeared —
// exactly the dangling-edge-endpoint signal this function exists to detect.
func hasNode(c *cache.Cache, id string) bool {
	return c.Neighbors(id) != nil
}

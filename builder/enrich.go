// File: enrich.go
// Role: Post-topology enrichment constructors assigning MI-surrogate
// annotations (node type/attributes/community; edge type/timestamp/sign/
// probability/layer) onto an already-built graph.
// Design contract: these are ordinary Constructors, composed in BuildGraph
// *after* a topology constructor (Grid, Cycle, Star, ...); they never create
// vertices or edges themselves, only annotate what already exists, via
// core.Graph.SetVertexAttrs / SetEdgeAttrs.
// Determinism: iterates g.Vertices()/g.Edges(), both already ID-sorted, so
// pick/sample callbacks see a stable index for a given cfg.rng seed.
package builder

import (
	"math/rand"

	"github.com/quietflow/infopath/core"
)

// NodeTypePicker chooses a type tag for the vertex at position idx from pool.
type NodeTypePicker func(rng *rand.Rand, idx int, pool []string) string

// AttributeSampler draws an attribute vector for a vertex.
type AttributeSampler func(rng *rand.Rand) []float64

// CommunityAssigner chooses a community label for the vertex at position idx.
type CommunityAssigner func(rng *rand.Rand, idx int, k int) string

// EdgeTypePicker chooses a type tag for e from pool.
type EdgeTypePicker func(rng *rand.Rand, e *core.Edge, pool []string) string

// FloatSampler draws a single real value (timestamp, probability, ...).
type FloatSampler func(rng *rand.Rand) float64

// WithNodeTypes annotates every vertex with a type tag chosen from pool.
func WithNodeTypes(pool []string, pick NodeTypePicker) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if len(pool) == 0 {
			return nil
		}
		for idx, id := range g.Vertices() {
			t := pick(cfg.rng, idx, pool)
			if err := g.SetVertexAttrs(id, core.WithVertexType(t)); err != nil {
				return err
			}
		}

		return nil
	}
}

// RoundRobinNodeType cycles through pool by index; deterministic without an RNG.
func RoundRobinNodeType(rng *rand.Rand, idx int, pool []string) string {
	return pool[idx%len(pool)]
}

// WithAttributes annotates every vertex with a dim-dimensional numeric vector.
func WithAttributes(sample AttributeSampler) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for _, id := range g.Vertices() {
			attrs := sample(cfg.rng)
			if err := g.SetVertexAttrs(id, core.WithVertexAttributes(attrs)); err != nil {
				return err
			}
		}

		return nil
	}
}

// WithCommunities annotates every vertex with one of k community labels.
func WithCommunities(k int, assign CommunityAssigner) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k <= 0 {
			return nil
		}
		for idx, id := range g.Vertices() {
			c := assign(cfg.rng, idx, k)
			if err := g.SetVertexAttrs(id, core.WithVertexCommunity(c)); err != nil {
				return err
			}
		}

		return nil
	}
}

// RoundRobinCommunity cycles community labels "0".."k-1" by index.
func RoundRobinCommunity(rng *rand.Rand, idx int, k int) string {
	return DefaultIDFn(idx % k)
}

// WithEdgeTypes annotates every edge with a type tag chosen from pool.
func WithEdgeTypes(pool []string, pick EdgeTypePicker) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if len(pool) == 0 {
			return nil
		}
		for _, e := range g.Edges() {
			t := pick(cfg.rng, e, pool)
			if err := g.SetEdgeAttrs(e.ID, core.WithEdgeType(t)); err != nil {
				return err
			}
		}

		return nil
	}
}

// WithTimestamps annotates every edge with a sampled timestamp.
func WithTimestamps(sample FloatSampler) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for _, e := range g.Edges() {
			ts := sample(cfg.rng)
			if err := g.SetEdgeAttrs(e.ID, core.WithEdgeTimestamp(ts)); err != nil {
				return err
			}
		}

		return nil
	}
}

// WithSigns annotates every edge with a sign, negative with probability p.
func WithSigns(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		rng := cfg.rng
		if rng == nil {
			rng = rand.New(rand.NewSource(1))
		}
		for _, e := range g.Edges() {
			sign := 1.0
			if rng.Float64() < p {
				sign = -1.0
			}
			if err := g.SetEdgeAttrs(e.ID, core.WithEdgeSign(sign)); err != nil {
				return err
			}
		}

		return nil
	}
}

// WithProbabilities annotates every edge with a sampled existence probability.
func WithProbabilities(sample FloatSampler) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for _, e := range g.Edges() {
			p := sample(cfg.rng)
			if err := g.SetEdgeAttrs(e.ID, core.WithEdgeProbability(p)); err != nil {
				return err
			}
		}

		return nil
	}
}

// WithLayers annotates every edge with a layer label chosen from pool.
func WithLayers(pool []string, pick EdgeTypePicker) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if len(pool) == 0 {
			return nil
		}
		for _, e := range g.Edges() {
			l := pick(cfg.rng, e, pool)
			if err := g.SetEdgeAttrs(e.ID, core.WithEdgeLayer(l)); err != nil {
				return err
			}
		}

		return nil
	}
}

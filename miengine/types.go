package miengine

import (
	"errors"

	"github.com/quietflow/infopath/core"
	"github.com/quietflow/infopath/graphiface"
)

// Epsilon is the default numeric floor used throughout strategy and modifier
// computations to keep logs finite and denominators non-zero.
const Epsilon = 1e-10

// Sentinel errors for miengine.
var (
	// ErrGraphNil indicates a nil graph view was passed to Build.
	ErrGraphNil = errors.New("miengine: graph is nil")

	// ErrInvalidConfig indicates a Config field was set outside its documented domain.
	ErrInvalidConfig = errors.New("miengine: invalid configuration")
)

// Inputs is the extractor-closure polymorphism surface named in the design
// notes: a small interface over "optional accessors", all defaulting to
// not-present. CoreInputs adapts a *core.Graph; callers backing data by
// other means (e.g. a side table keyed by node/edge id) may implement Inputs
// directly.
type Inputs interface {
	TypeOf(nodeID string) (string, bool)
	AttributesOf(nodeID string) ([]float64, bool)
	CommunityOf(nodeID string) (string, bool)
	EdgeTypeOf(edgeID string) (string, bool)
	TimestampOf(edgeID string) (float64, bool)
	SignOf(edgeID string) (float64, bool)
	ProbabilityOf(edgeID string) (float64, bool)
	LayerOf(edgeID string) (string, bool)
	HyperExtraOf(edgeID string) ([]string, bool)
}

// CoreInputs adapts a *core.Graph to Inputs using the accessor methods added
// to core for MI-surrogate annotations.
type CoreInputs struct {
	G *core.Graph
}

var _ Inputs = CoreInputs{}

func (c CoreInputs) TypeOf(id string) (string, bool)            { return c.G.TypeOf(id) }
func (c CoreInputs) AttributesOf(id string) ([]float64, bool)   { return c.G.AttributesOf(id) }
func (c CoreInputs) CommunityOf(id string) (string, bool)       { return c.G.CommunityOf(id) }
func (c CoreInputs) EdgeTypeOf(id string) (string, bool)        { return c.G.EdgeTypeOf(id) }
func (c CoreInputs) TimestampOf(id string) (float64, bool)      { return c.G.TimestampOf(id) }
func (c CoreInputs) SignOf(id string) (float64, bool)           { return c.G.SignOf(id) }
func (c CoreInputs) ProbabilityOf(id string) (float64, bool)    { return c.G.ProbabilityOf(id) }
func (c CoreInputs) LayerOf(id string) (string, bool)           { return c.G.LayerOf(id) }
func (c CoreInputs) HyperExtraOf(id string) ([]string, bool)    { return c.G.HyperExtraOf(id) }

// viewInputs adapts a graphiface.View's per-node/edge payloads to Inputs,
// used whenever Build is called without an explicit Config.Inputs.
type viewInputs struct {
	nodes map[string]graphiface.Node
	edges map[string]graphiface.Edge
}

func newViewInputs(g graphiface.View) viewInputs {
	nodes := make(map[string]graphiface.Node)
	for _, n := range g.Nodes() {
		nodes[n.ID] = n
	}
	edges := make(map[string]graphiface.Edge)
	for _, e := range g.Edges() {
		edges[e.ID] = e
	}

	return viewInputs{nodes: nodes, edges: edges}
}

func (v viewInputs) TypeOf(id string) (string, bool) {
	n, ok := v.nodes[id]
	if !ok || n.Type == "" {
		return "", false
	}
	return n.Type, true
}

func (v viewInputs) AttributesOf(id string) ([]float64, bool) {
	n, ok := v.nodes[id]
	if !ok || len(n.Attributes) == 0 {
		return nil, false
	}
	return n.Attributes, true
}

func (v viewInputs) CommunityOf(id string) (string, bool) {
	n, ok := v.nodes[id]
	if !ok || !n.HasCommunity {
		return "", false
	}
	return n.Community, true
}

func (v viewInputs) EdgeTypeOf(id string) (string, bool) {
	e, ok := v.edges[id]
	if !ok || e.Type == "" {
		return "", false
	}
	return e.Type, true
}

func (v viewInputs) TimestampOf(id string) (float64, bool) {
	e, ok := v.edges[id]
	if !ok || !e.HasTimestamp {
		return 0, false
	}
	return e.Timestamp, true
}

func (v viewInputs) SignOf(id string) (float64, bool) {
	e, ok := v.edges[id]
	if !ok || !e.HasSign {
		return 0, false
	}
	return e.Sign, true
}

func (v viewInputs) ProbabilityOf(id string) (float64, bool) {
	e, ok := v.edges[id]
	if !ok || !e.HasProbability {
		return 0, false
	}
	return e.Probability, true
}

func (v viewInputs) LayerOf(id string) (string, bool) {
	e, ok := v.edges[id]
	if !ok || e.Layer == "" {
		return "", false
	}
	return e.Layer, true
}

func (v viewInputs) HyperExtraOf(id string) ([]string, bool) {
	e, ok := v.edges[id]
	if !ok || len(e.HyperExtra) == 0 {
		return nil, false
	}
	return e.HyperExtra, true
}

// Config enumerates the MI engine's configuration knobs (see the package
// doc comment for the effect of each field).
type Config struct {
	// Strategy selection.
	UseEdgeTypes            bool
	UseAdamicAdar           bool
	UseDensityNormalization bool
	Density                 *float64 // caller-supplied graph density override

	// Modifiers.
	TemporalDecay    float64 // λ; 0 disables the temporal modifier
	ReferenceTime    float64
	NegativePenalty  float64 // p ∈ [0,1]
	CommunityBoost   float64 // b ≥ 0
	UseDegreePenalty bool
	DegreePenaltyAlpha float64
	UseIDFWeighting  bool
	UseEdgeTypeRarity bool
	UseClusteringPenalty bool

	// Numeric floor.
	Epsilon float64

	// Inputs, if nil, defaults to an Inputs derived from the View's own
	// Node and Edge payloads (for a View from graphiface.FromCore these carry
	// the same annotations CoreInputs reads).
	Inputs Inputs
}

// DefaultConfig returns the zero-modifier, Jaccard-fallback configuration.
func DefaultConfig() Config {
	return Config{Epsilon: Epsilon}
}

func (c Config) epsilon() float64 {
	if c.Epsilon > 0 {
		return c.Epsilon
	}
	return Epsilon
}

// Cache is the immutable, read-only EdgeId → f64 mapping built once per
// graph snapshot. Safe for concurrent readers.
type Cache struct {
	values map[string]float64
}

// Get returns the MI value for edgeID, or (0, false) if absent.
func (c *Cache) Get(edgeID string) (float64, bool) {
	v, ok := c.values[edgeID]
	return v, ok
}

// Keys returns all cached edge ids. Order is unspecified.
func (c *Cache) Keys() []string {
	out := make([]string, 0, len(c.values))
	for k := range c.values {
		out = append(out, k)
	}
	return out
}

// Size returns the number of cached edges.
func (c *Cache) Size() int {
	return len(c.values)
}

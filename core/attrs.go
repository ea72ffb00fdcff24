// File: attrs.go
// Role: Optional MI-surrogate annotations on Vertex/Edge — construction-time
// options, post-hoc mutators, and default accessor helpers consumed by the
// miengine package's strategy selection and modifier composition.
// AI-HINT (file):
//   - VertexOption/EdgeOption are applied in the order given; later options
//     override earlier ones for the same field.
//   - SetVertexAttrs/SetEdgeAttrs mutate an already-inserted vertex/edge under
//     the appropriate lock; both return ErrVertexNotFound/ErrEdgeNotFound.
//   - Accessor helpers return the zero value and ok=false when the signal is
//     absent, never an error — absence is a normal MI-engine input.

package core

// VertexOption configures optional annotations on a Vertex at AddVertex time.
type VertexOption func(v *Vertex)

// WithVertexType sets the vertex's type tag.
func WithVertexType(t string) VertexOption {
	return func(v *Vertex) { v.Type = t }
}

// WithVertexAttributes sets the vertex's numeric attribute vector.
func WithVertexAttributes(attrs []float64) VertexOption {
	return func(v *Vertex) { v.Attributes = attrs }
}

// WithVertexCommunity sets the vertex's community label.
func WithVertexCommunity(community string) VertexOption {
	return func(v *Vertex) { v.Community = community }
}

// WithEdgeType sets the edge's type tag.
func WithEdgeType(t string) EdgeOption {
	return func(e *Edge) { e.Type = t }
}

// WithEdgeTimestamp sets the edge's point-in-time value.
func WithEdgeTimestamp(ts float64) EdgeOption {
	return func(e *Edge) { e.Timestamp = &ts }
}

// WithEdgeSign sets the edge's sign; only sign(value) is meaningful downstream.
func WithEdgeSign(sign float64) EdgeOption {
	return func(e *Edge) { e.Sign = &sign }
}

// WithEdgeProbability sets the edge's existence probability. The MI engine
// clamps this to [0,1] at read time; out-of-range values are stored as given.
func WithEdgeProbability(p float64) EdgeOption {
	return func(e *Edge) { e.Probability = &p }
}

// WithEdgeLayer sets the edge's multiplex-layer label.
func WithEdgeLayer(layer string) EdgeOption {
	return func(e *Edge) { e.Layer = layer }
}

// WithEdgeHyperExtra attaches extra participant vertex IDs, turning a plain
// edge into a hyperedge surrogate for MI purposes.
func WithEdgeHyperExtra(extra ...string) EdgeOption {
	return func(e *Edge) { e.HyperExtra = extra }
}

// SetVertexAttrs applies opts to an already-inserted vertex identified by id.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
// Complexity: O(1) plus O(len(opts)).
func (g *Graph) SetVertexAttrs(id string, opts ...VertexOption) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	for _, opt := range opts {
		opt(v)
	}

	return nil
}

// SetEdgeAttrs applies opts to an already-inserted edge identified by id.
// Returns ErrEdgeNotFound if absent. Does not affect Directed routing or
// adjacency, since those are fixed at AddEdge time.
// Complexity: O(1) plus O(len(opts)).
func (g *Graph) SetEdgeAttrs(id string, opts ...EdgeOption) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}
	for _, opt := range opts {
		opt(e)
	}

	return nil
}

// TypeOf returns the vertex's type tag and whether the vertex exists.
func (g *Graph) TypeOf(id string) (string, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return "", false
	}

	return v.Type, true
}

// AttributesOf returns the vertex's attribute vector and whether it exists
// and carries attributes (a nil/empty vector reports ok=false).
func (g *Graph) AttributesOf(id string) ([]float64, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok || len(v.Attributes) == 0 {
		return nil, false
	}

	return v.Attributes, true
}

// CommunityOf returns the vertex's community label and whether it is set.
func (g *Graph) CommunityOf(id string) (string, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok || v.Community == "" {
		return "", false
	}

	return v.Community, true
}

// EdgeTypeOf returns the edge's type tag and whether it is set.
func (g *Graph) EdgeTypeOf(edgeID string) (string, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[edgeID]
	if !ok || e.Type == "" {
		return "", false
	}

	return e.Type, true
}

// TimestampOf returns the edge's timestamp and whether it is present.
func (g *Graph) TimestampOf(edgeID string) (float64, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[edgeID]
	if !ok || e.Timestamp == nil {
		return 0, false
	}

	return *e.Timestamp, true
}

// SignOf returns the edge's sign value and whether it is present.
func (g *Graph) SignOf(edgeID string) (float64, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[edgeID]
	if !ok || e.Sign == nil {
		return 0, false
	}

	return *e.Sign, true
}

// ProbabilityOf returns the edge's probability and whether it is present.
// The MI engine is responsible for clamping the result to [0,1].
func (g *Graph) ProbabilityOf(edgeID string) (float64, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[edgeID]
	if !ok || e.Probability == nil {
		return 0, false
	}

	return *e.Probability, true
}

// LayerOf returns the edge's layer label and whether it is set.
func (g *Graph) LayerOf(edgeID string) (string, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[edgeID]
	if !ok || e.Layer == "" {
		return "", false
	}

	return e.Layer, true
}

// HyperExtraOf returns the edge's extra hyperedge participant IDs and
// whether any are present.
func (g *Graph) HyperExtraOf(edgeID string) ([]string, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[edgeID]
	if !ok || len(e.HyperExtra) == 0 {
		return nil, false
	}

	return e.HyperExtra, true
}

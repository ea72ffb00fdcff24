package graphiface

import (
	"sort"

	"github.com/quietflow/infopath/core"
)

// FromCore adapts a *core.Graph to View.
func FromCore(g *core.Graph) View {
	return coreView{g: g}
}

type coreView struct {
	g *core.Graph
}

func toNode(g *core.Graph, id string) Node {
	n := Node{ID: id}
	n.Type, _ = g.TypeOf(id)
	n.Attributes, _ = g.AttributesOf(id)
	n.Community, n.HasCommunity = g.CommunityOf(id)

	return n
}

func toEdge(e *core.Edge) Edge {
	out := Edge{
		ID:       e.ID,
		From:     e.From,
		To:       e.To,
		Weight:   float64(e.Weight),
		Directed: e.Directed,
		Type:     e.Type,
		Layer:    e.Layer,
	}
	if e.Timestamp != nil {
		out.Timestamp = *e.Timestamp
		out.HasTimestamp = true
	}
	if e.Sign != nil {
		out.Sign = *e.Sign
		out.HasSign = true
	}
	if e.Probability != nil {
		out.Probability = *e.Probability
		out.HasProbability = true
	}
	if len(e.HyperExtra) > 0 {
		out.HyperExtra = e.HyperExtra
	}

	return out
}

func (c coreView) Node(id string) (Node, bool) {
	if !c.g.HasVertex(id) {
		return Node{}, false
	}

	return toNode(c.g, id), true
}

func (c coreView) Nodes() []Node {
	ids := c.g.Vertices() // already sorted ascending by ID
	out := make([]Node, 0, len(ids))
	for _, id := range ids {
		out = append(out, toNode(c.g, id))
	}

	return out
}

func (c coreView) Edges() []Edge {
	edges := c.g.Edges() // sorted by Edge.ID asc
	out := make([]Edge, 0, len(edges))
	for _, e := range edges {
		out = append(out, toEdge(e))
	}

	return out
}

func (c coreView) OutgoingEdges(id string) ([]Edge, error) {
	edges, err := c.g.Neighbors(id) // sorted by Edge.ID asc
	if err != nil {
		return nil, err
	}
	out := make([]Edge, 0, len(edges))
	for _, e := range edges {
		out = append(out, toEdge(e))
	}

	return out, nil
}

func (c coreView) NeighborIDs(id string) ([]string, error) {
	ids, err := c.g.NeighborIDs(id)
	if err != nil {
		return nil, err
	}
	sort.Strings(ids)

	return ids, nil
}

func (c coreView) NodeCount() int {
	return c.g.VertexCount()
}

func (c coreView) Degree(id string) int {
	in, out, undirected, err := c.g.Degree(id)
	if err != nil {
		return 0
	}

	return in + out + undirected
}

func (c coreView) Directed() bool {
	return c.g.Directed()
}

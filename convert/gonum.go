// Package convert adapts a graphiface.View onto gonum's graph.Graph, so the
// baseline package can hand a graph straight to gonum.org/v1/gonum/graph/network
// algorithms (PageRank and friends) without reimplementing them.
//
// Node identity: gonum nodes are int64; infopath vertices are strings. ToGonum
// assigns ids by sorted vertex ID order, so the mapping is deterministic for a
// given graph. Undirected input yields an *simple.WeightedUndirectedGraph;
// directed input yields an *simple.WeightedDirectedGraph.
package convert

import (
	"fmt"
	"sort"

	"github.com/quietflow/infopath/graphiface"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// IDMap holds the bidirectional mapping between infopath vertex IDs and the
// gonum int64 node ids assigned by ToGonum.
type IDMap struct {
	ToGonum map[string]int64
	ToView  map[int64]string
}

// ToGonum builds a gonum graph.Weighted mirroring g's topology and edge
// weights, plus the id mapping used to translate results back.
func ToGonum(g graphiface.View) (graph.Weighted, IDMap, error) {
	if g == nil {
		return nil, IDMap{}, fmt.Errorf("convert: graph is nil")
	}

	nodes := g.Nodes()
	ids := make([]string, 0, len(nodes))
	for _, n := range nodes {
		ids = append(ids, n.ID)
	}
	sort.Strings(ids)

	idMap := IDMap{
		ToGonum: make(map[string]int64, len(ids)),
		ToView:  make(map[int64]string, len(ids)),
	}
	for i, id := range ids {
		gid := int64(i)
		idMap.ToGonum[id] = gid
		idMap.ToView[gid] = id
	}

	if g.Directed() {
		dg := simple.NewWeightedDirectedGraph(0, 0)
		for _, id := range ids {
			dg.AddNode(simple.Node(idMap.ToGonum[id]))
		}
		for _, e := range g.Edges() {
			u, ok := idMap.ToGonum[e.From]
			if !ok {
				return nil, IDMap{}, fmt.Errorf("convert: edge %q references unknown node %q", e.ID, e.From)
			}
			v, ok := idMap.ToGonum[e.To]
			if !ok {
				return nil, IDMap{}, fmt.Errorf("convert: edge %q references unknown node %q", e.ID, e.To)
			}
			w := e.Weight
			if w == 0 {
				w = 1
			}
			dg.SetWeightedEdge(dg.NewWeightedEdge(simple.Node(u), simple.Node(v), w))
		}

		return dg, idMap, nil
	}

	ug := simple.NewWeightedUndirectedGraph(0, 0)
	for _, id := range ids {
		ug.AddNode(simple.Node(idMap.ToGonum[id]))
	}
	for _, e := range g.Edges() {
		u, ok := idMap.ToGonum[e.From]
		if !ok {
			return nil, IDMap{}, fmt.Errorf("convert: edge %q references unknown node %q", e.ID, e.From)
		}
		v, ok := idMap.ToGonum[e.To]
		if !ok {
			return nil, IDMap{}, fmt.Errorf("convert: edge %q references unknown node %q", e.ID, e.To)
		}
		w := e.Weight
		if w == 0 {
			w = 1
		}
		ug.SetWeightedEdge(ug.NewWeightedEdge(simple.Node(u), simple.Node(v), w))
	}

	return ug, idMap, nil
}

// Translate converts a gonum node-id-keyed score map back to view vertex IDs.
func Translate(idMap IDMap, scores map[int64]float64) map[string]float64 {
	out := make(map[string]float64, len(scores))
	for gid, score := range scores {
		if id, ok := idMap.ToView[gid]; ok {
			out[id] = score
		}
	}

	return out
}

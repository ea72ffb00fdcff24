package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/quietflow/infopath/core"
	"github.com/quietflow/infopath/graphiface"
)

// graphFile is the on-disk shape written by `generate` and read by every
// other subcommand; a flat node/edge list keeps it trivially diffable.
type graphFile struct {
	Directed bool             `json:"directed"`
	Nodes    []graphiface.Node `json:"nodes"`
	Edges    []graphiface.Edge `json:"edges"`
}

func saveGraph(path string, g graphiface.View) error {
	gf := graphFile{Directed: g.Directed(), Nodes: g.Nodes(), Edges: g.Edges()}
	data, err := json.MarshalIndent(gf, "", "  ")
	if err != nil {
		return fmt.Errorf("persist: marshal: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

func loadGraph(path string) (*core.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("persist: reading %s: %w", path, err)
	}
	var gf graphFile
	if err := json.Unmarshal(data, &gf); err != nil {
		return nil, fmt.Errorf("persist: parsing %s: %w", path, err)
	}

	gopts := []core.GraphOption{core.WithDirected(gf.Directed), core.WithWeighted()}
	g := core.NewGraph(gopts...)

	for _, n := range gf.Nodes {
		vopts := []core.VertexOption{}
		if n.Type != "" {
			vopts = append(vopts, core.WithVertexType(n.Type))
		}
		if len(n.Attributes) > 0 {
			vopts = append(vopts, core.WithVertexAttributes(n.Attributes))
		}
		if n.HasCommunity {
			vopts = append(vopts, core.WithVertexCommunity(n.Community))
		}
		if err := g.AddVertex(n.ID, vopts...); err != nil {
			return nil, fmt.Errorf("persist: AddVertex(%s): %w", n.ID, err)
		}
	}

	for _, e := range gf.Edges {
		eopts := []core.EdgeOption{}
		if e.Type != "" {
			eopts = append(eopts, core.WithEdgeType(e.Type))
		}
		if e.HasTimestamp {
			eopts = append(eopts, core.WithEdgeTimestamp(e.Timestamp))
		}
		if e.HasSign {
			eopts = append(eopts, core.WithEdgeSign(e.Sign))
		}
		if e.HasProbability {
			eopts = append(eopts, core.WithEdgeProbability(e.Probability))
		}
		if e.Layer != "" {
			eopts = append(eopts, core.WithEdgeLayer(e.Layer))
		}
		if len(e.HyperExtra) > 0 {
			eopts = append(eopts, core.WithEdgeHyperExtra(e.HyperExtra...))
		}
		if _, err := g.AddEdge(e.From, e.To, int64(e.Weight), eopts...); err != nil {
			return nil, fmt.Errorf("persist: AddEdge(%s,%s): %w", e.From, e.To, err)
		}
	}

	return g, nil
}

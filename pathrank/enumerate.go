package pathrank

import (
	"sort"

	"github.com/quietflow/infopath/graphiface"
)

// step is one traversal edge from a node: the neighbor reached and the edge
// id used to reach it, in the node sequence's natural direction.
type step struct {
	to     string
	edgeID string
}

// outSteps returns the deterministic, sorted list of traversal steps from id
// under mode. Directed mode only includes e.From==id; undirected mode
// includes both e.From==id and e.To==id (deduplicated by edge id).
func outSteps(g graphiface.View, id string, mode TraversalMode) ([]step, error) {
	edges, err := g.OutgoingEdges(id)
	if err != nil {
		return nil, err
	}
	if mode == Undirected && g.Directed() {
		// OutgoingEdges omits edges arriving at id on a directed graph; take them from the full edge list.
		edges = append(edges, g.Edges()...)
	}

	seen := make(map[string]struct{}, len(edges))
	out := make([]step, 0, len(edges))
	for _, e := range edges {
		if e.From == id {
			if _, dup := seen[e.ID]; !dup {
				seen[e.ID] = struct{}{}
				out = append(out, step{to: e.To, edgeID: e.ID})
			}
			continue
		}
		if mode == Undirected && e.To == id {
			if _, dup := seen[e.ID]; !dup {
				seen[e.ID] = struct{}{}
				out = append(out, step{to: e.From, edgeID: e.ID})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].edgeID < out[j].edgeID })

	return out, nil
}

// pred is one predecessor edge into a node at its minimum BFS distance.
type pred struct {
	from   string
	edgeID string
}

// shortestPaths enumerates every minimum-length path from start to end via
// layered BFS plus predecessor-DAG back-reconstruction.
func shortestPaths(g graphiface.View, start, end string, mode TraversalMode) ([]Path, error) {
	if start == end {
		return []Path{{Nodes: []string{start}}}, nil
	}

	dist := map[string]int{start: 0}
	preds := map[string][]pred{}
	order := []string{start}

	endDist := -1
	for i := 0; i < len(order); i++ {
		u := order[i]
		if endDist >= 0 && dist[u] >= endDist {
			continue
		}
		steps, err := outSteps(g, u, mode)
		if err != nil {
			return nil, err
		}
		for _, s := range steps {
			nd := dist[u] + 1
			existing, seen := dist[s.to]
			if !seen {
				dist[s.to] = nd
				preds[s.to] = []pred{{from: u, edgeID: s.edgeID}}
				order = append(order, s.to)
				if s.to == end && endDist < 0 {
					endDist = nd
				}
			} else if existing == nd {
				preds[s.to] = append(preds[s.to], pred{from: u, edgeID: s.edgeID})
			}
		}
	}

	if _, reached := dist[end]; !reached {
		return nil, nil
	}

	var paths []Path
	var walk func(node string, nodesRev []string, edgesRev []string)
	walk = func(node string, nodesRev []string, edgesRev []string) {
		nodesRev = append(nodesRev, node)
		if node == start {
			nodes := make([]string, len(nodesRev))
			edges := make([]string, len(edgesRev))
			for i, n := range nodesRev {
				nodes[len(nodes)-1-i] = n
			}
			for i, e := range edgesRev {
				edges[len(edges)-1-i] = e
			}
			paths = append(paths, Path{Nodes: nodes, Edges: edges})
			return
		}
		for _, p := range preds[node] {
			walk(p.from, nodesRev, append(edgesRev, p.edgeID))
		}
	}
	walk(end, nil, nil)

	return paths, nil
}

// boundedSimplePaths enumerates all simple paths from start to end with edge
// count <= maxLength (0 means unbounded), via DFS with a per-path visited
// set, up to cap total paths collected.
func boundedSimplePaths(g graphiface.View, start, end string, mode TraversalMode, maxLength, cap int) ([]Path, error) {
	if start == end {
		return []Path{{Nodes: []string{start}}}, nil
	}

	var results []Path
	visited := map[string]struct{}{start: {}}
	nodes := []string{start}
	var edges []string

	var dfs func(cur string) error
	dfs = func(cur string) error {
		if len(results) >= cap {
			return nil
		}
		if maxLength > 0 && len(edges) >= maxLength {
			return nil
		}
		steps, err := outSteps(g, cur, mode)
		if err != nil {
			return err
		}
		for _, s := range steps {
			if len(results) >= cap {
				return nil
			}
			if _, inPath := visited[s.to]; inPath {
				continue
			}
			nodes = append(nodes, s.to)
			edges = append(edges, s.edgeID)
			visited[s.to] = struct{}{}

			if s.to == end {
				pn := make([]string, len(nodes))
				pe := make([]string, len(edges))
				copy(pn, nodes)
				copy(pe, edges)
				results = append(results, Path{Nodes: pn, Edges: pe})
			} else {
				if err := dfs(s.to); err != nil {
					return err
				}
			}

			delete(visited, s.to)
			nodes = nodes[:len(nodes)-1]
			edges = edges[:len(edges)-1]
		}

		return nil
	}

	if err := dfs(start); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return len(results[i].Edges) < len(results[j].Edges)
	})

	return results, nil
}

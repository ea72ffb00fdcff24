// Package baseline implements the comparative rankers used to judge whether
// mutual-information path ranking beats simpler heuristics: shortest path,
// depth-first path, random walk, PageRank, raw degree, and raw edge weight.
//
// Each ranker produces a RankedPath for a single start/end pair, using the
// same Path/score shape as pathrank so results compare directly. ShortestPath
// and WeightRank are thin wrappers around bfs/dijkstra; DFSPath wraps dfs for
// a baseline that explores depth-first rather than breadth-first; RandomWalk
// and DegreeRank are self-contained; PageRank delegates to gonum's
// graph/network implementation via the convert adapter.
package baseline

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/quietflow/infopath/bfs"
	"github.com/quietflow/infopath/convert"
	"github.com/quietflow/infopath/core"
	"github.com/quietflow/infopath/dfs"
	"github.com/quietflow/infopath/dijkstra"
	"github.com/quietflow/infopath/graphiface"
	"github.com/quietflow/infopath/stats"
	"gonum.org/v1/gonum/graph/network"
)

// ErrGraphNil indicates a nil graph was passed to a ranker.
var ErrGraphNil = errors.New("baseline: graph is nil")

// ErrNodeNotFound indicates start or end does not exist in the graph.
var ErrNodeNotFound = errors.New("baseline: node not found")

// Ranked is the baseline analogue of pathrank.RankedPath: a node/edge
// sequence plus the scalar score the ranker assigned it.
type Ranked struct {
	Nodes []string
	Edges []string
	Score float64
}

// ShortestPath ranks the single unweighted BFS shortest path from start to
// end; Score is 1/(1+hops), so shorter paths score higher. Requires a
// *core.Graph because it delegates to the bfs package directly. Edge weights
// are ignored: a weighted graph is searched through core.UnweightedView.
func ShortestPath(g *core.Graph, start, end string) (*Ranked, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	src := g
	if g.Weighted() {
		src = core.UnweightedView(g)
	}
	res, err := bfs.BFS(src, start)
	if err != nil {
		return nil, fmt.Errorf("baseline: shortest path: %w", err)
	}
	if _, ok := res.Depth[end]; !ok {
		return nil, nil
	}

	nodes := reconstructBFS(res, start, end)
	hops := len(nodes) - 1
	if hops < 0 {
		hops = 0
	}

	return &Ranked{Nodes: nodes, Score: 1 / float64(1+hops)}, nil
}

func reconstructBFS(res *bfs.BFSResult, start, end string) []string {
	var rev []string
	cur := end
	for cur != start {
		rev = append(rev, cur)
		parent, ok := res.Parent[cur]
		if !ok {
			break
		}
		cur = parent
	}
	rev = append(rev, start)

	out := make([]string, len(rev))
	for i, v := range rev {
		out[len(out)-1-i] = v
	}

	return out
}

// DFSPath ranks the first path DFS finds from start to end by following
// each vertex's first-discovered neighbor; Score is 1/(1+hops), same shape
// as ShortestPath, so the two can be compared directly. Because DFS has no
// notion of shortest, this path is typically longer than BFS's and is
// meant as a "what if we explored greedily instead of level-by-level"
// baseline rather than a competitive ranker.
func DFSPath(g *core.Graph, start, end string) (*Ranked, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	res, err := dfs.DFS(g, start)
	if err != nil {
		return nil, fmt.Errorf("baseline: dfs path: %w", err)
	}
	if !res.Visited[end] {
		return nil, nil
	}

	nodes := reconstructDFS(res, start, end)
	hops := len(nodes) - 1
	if hops < 0 {
		hops = 0
	}

	return &Ranked{Nodes: nodes, Score: 1 / float64(1+hops)}, nil
}

func reconstructDFS(res *dfs.DFSResult, start, end string) []string {
	var rev []string
	cur := end
	for cur != start {
		rev = append(rev, cur)
		parent, ok := res.Parent[cur]
		if !ok {
			break
		}
		cur = parent
	}
	rev = append(rev, start)

	out := make([]string, len(rev))
	for i, v := range rev {
		out[len(out)-1-i] = v
	}

	return out
}

// WeightRank ranks the Dijkstra shortest weighted path from start to end;
// Score is 1/(1+distance). Requires a weighted *core.Graph.
func WeightRank(g *core.Graph, start, end string) (*Ranked, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(start), dijkstra.WithReturnPath())
	if err != nil {
		return nil, fmt.Errorf("baseline: weight rank: %w", err)
	}
	d, ok := dist[end]
	if !ok {
		return nil, nil
	}

	var nodes []string
	cur := end
	for cur != "" && cur != start {
		nodes = append(nodes, cur)
		cur = prev[cur]
	}
	nodes = append(nodes, start)
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	return &Ranked{Nodes: nodes, Score: 1 / (1 + float64(d))}, nil
}

// RandomWalk performs a uniform random walk of at most maxSteps hops starting
// at start, stopping early if it reaches end; Score is 1 if it reached end,
// 0 otherwise. Pass a seeded rng for reproducibility.
func RandomWalk(g graphiface.View, start, end string, maxSteps int, rng *rand.Rand) (*Ranked, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if _, ok := g.Node(start); !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, start)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	nodes := []string{start}
	cur := start
	for step := 0; step < maxSteps && cur != end; step++ {
		neighbors, err := g.NeighborIDs(cur)
		if err != nil {
			return nil, err
		}
		if len(neighbors) == 0 {
			break
		}
		next := neighbors[rng.Intn(len(neighbors))]
		nodes = append(nodes, next)
		cur = next
	}

	score := 0.0
	if cur == end {
		score = 1.0
	}

	return &Ranked{Nodes: nodes, Score: score}, nil
}

// DegreeRank ranks reachable neighbors of start by raw degree, descending.
// It does not pathfind; it answers "which of start's neighbors looks most
// structurally important" as a cheap structural baseline.
func DegreeRank(g graphiface.View, start string) ([]Ranked, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	neighbors, err := g.NeighborIDs(start)
	if err != nil {
		return nil, err
	}

	out := make([]Ranked, 0, len(neighbors))
	for _, n := range neighbors {
		out = append(out, Ranked{Nodes: []string{start, n}, Score: float64(g.Degree(n))})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })

	return out, nil
}

// PageRank computes gonum's PageRank over the whole graph and returns scores
// keyed by vertex ID, using damping 0.85 and tolerance 1e-6 (gonum defaults
// used throughout the pack).
func PageRank(g graphiface.View) (map[string]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	gg, idMap, err := convert.ToGonum(g)
	if err != nil {
		return nil, fmt.Errorf("baseline: page rank: %w", err)
	}
	scores := network.PageRank(gg, 0.85, 1e-6)

	return convert.Translate(idMap, scores), nil
}

// Compare reports the Pearson correlation between two score maps (e.g. an MI
// ranker's per-node scores and baseline.PageRank's) over the union of ids
// present in either map, missing entries treated as 0.
func Compare(a, b map[string]float64) (float64, error) {
	seen := make(map[string]struct{}, len(a)+len(b))
	ids := make([]string, 0, len(a)+len(b))
	for id := range a {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	for id := range b {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	return stats.Correlation(stats.RankVector(ids, a), stats.RankVector(ids, b))
}

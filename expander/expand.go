package expander

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/quietflow/infopath/graphiface"
)

// predEdge is one predecessor step within a single frontier's expansion tree.
type predEdge struct {
	from   string
	edgeID string
}

// frontierState tracks one seed's expansion: its visited set, the priority
// queue of discovered-but-not-yet-popped candidates, and the predecessor
// edge used to first reach each visited node (for path reconstruction).
type frontierState struct {
	seed    string
	visited map[string]struct{}
	queue   minHeap
	preds   map[string]predEdge // node -> predecessor edge within this tree
	nextSeq int
}

func newFrontier(seed string, priority float64) *frontierState {
	f := &frontierState{
		seed:    seed,
		visited: map[string]struct{}{seed: {}},
		preds:   map[string]predEdge{},
	}
	heap.Push(&f.queue, item{priority: priority, seq: f.nextSeq, nodeID: seed})
	f.nextSeq++

	return f
}

func priorityOf(g graphiface.View, cfg Config, id string) float64 {
	deg := float64(g.Degree(id))
	w := cfg.nodeWeight(id)

	return deg / (w + cfg.epsilon())
}

// Expand grows one frontier per seed until termination, per the package doc.
func Expand(g graphiface.View, seeds []string, cfg Config) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}
	if len(seeds) == 0 {
		return Result{}, fmt.Errorf("%w: empty seed set", ErrInvalidInput)
	}
	for _, s := range seeds {
		if _, ok := g.Node(s); !ok {
			return Result{}, fmt.Errorf("%w: seed %q not found", ErrInvalidInput, s)
		}
	}
	if len(seeds) == 1 && cfg.N1 == nil {
		cfg.N1 = CoverageThreshold(0.8, 10)
	}

	n := len(seeds)
	total := g.NodeCount()
	frontiers := make([]*frontierState, n)
	for i, s := range seeds {
		frontiers[i] = newFrontier(s, priorityOf(g, cfg, s))
	}

	hardCap := n * total
	iterations := 0

	var meeting *MeetingPath

	for iterations < hardCap {
		select {
		case <-cfg.ctx().Done():
			return partialResult(frontiers, iterations), fmt.Errorf("%w: %v", ErrCancelled, cfg.ctx().Err())
		default:
		}

		anyActive := false
		for _, f := range frontiers {
			if f.queue.Len() == 0 {
				continue
			}
			anyActive = true
			popped := heap.Pop(&f.queue).(item)

			neighborIDs, err := g.NeighborIDs(popped.nodeID)
			if err != nil {
				return partialResult(frontiers, iterations), err
			}
			edges, err := g.OutgoingEdges(popped.nodeID)
			if err != nil {
				return partialResult(frontiers, iterations), err
			}
			edgeTo := firstEdgeToEachNeighbor(edges, popped.nodeID)

			for _, nb := range neighborIDs {
				if _, seen := f.visited[nb]; seen {
					continue
				}
				f.visited[nb] = struct{}{}
				f.preds[nb] = predEdge{from: popped.nodeID, edgeID: edgeTo[nb]}
				heap.Push(&f.queue, item{priority: priorityOf(g, cfg, nb), seq: f.nextSeq, nodeID: nb})
				f.nextSeq++
			}
		}

		iterations++

		if n >= 2 {
			if m := findFirstIntersection(frontiers); m != nil {
				meeting = m
				break
			}
		} else {
			visited := len(frontiers[0].visited)
			if cfg.N1(iterations, visited, total) {
				break
			}
		}

		if !anyActive {
			break
		}
	}

	result := buildResult(frontiers, iterations)
	if meeting != nil {
		result.Paths = []MeetingPath{*meeting}
	}

	return result, nil
}

// firstEdgeToEachNeighbor maps each distinct neighbor id (in the outgoing
// direction honored by NeighborIDs) to the first (lowest-id) edge reaching it.
func firstEdgeToEachNeighbor(edges []graphiface.Edge, from string) map[string]string {
	out := make(map[string]string, len(edges))
	sorted := make([]graphiface.Edge, len(edges))
	copy(sorted, edges)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	for _, e := range sorted {
		var other string
		if e.From == from {
			other = e.To
		} else {
			other = e.From
		}
		if _, ok := out[other]; !ok {
			out[other] = e.ID
		}
	}

	return out
}

func findFirstIntersection(frontiers []*frontierState) *MeetingPath {
	for i := 0; i < len(frontiers); i++ {
		for j := i + 1; j < len(frontiers); j++ {
			common := make([]string, 0)
			for node := range frontiers[i].visited {
				if _, ok := frontiers[j].visited[node]; ok {
					common = append(common, node)
				}
			}
			if len(common) == 0 {
				continue
			}
			// Multiple intersection vertices can appear in the same round;
			// a map range over visited would pick one at random. Sort so
			// reconstruction is deterministic given deterministic traversal.
			sort.Strings(common)

			return reconstructMeeting(frontiers[i], frontiers[j], common[0])
		}
	}

	return nil
}

func reconstructMeeting(a, b *frontierState, meetNode string) *MeetingPath {
	nodesA, edgesA := walkToSeed(a, meetNode)
	nodesB, edgesB := walkToSeed(b, meetNode)

	// nodesA is seedA..meetNode; nodesB is seedB..meetNode. Reverse nodesB
	// (excluding meetNode) and its edges to append after meetNode.
	nodes := make([]string, 0, len(nodesA)+len(nodesB)-1)
	nodes = append(nodes, nodesA...)
	for i := len(nodesB) - 2; i >= 0; i-- {
		nodes = append(nodes, nodesB[i])
	}

	edges := make([]string, 0, len(edgesA)+len(edgesB))
	edges = append(edges, edgesA...)
	for i := len(edgesB) - 1; i >= 0; i-- {
		edges = append(edges, edgesB[i])
	}

	return &MeetingPath{SeedA: a.seed, SeedB: b.seed, Nodes: nodes, Edges: edges}
}

// walkToSeed returns the node sequence seed..target and the edge ids used,
// by following predecessor pointers backward from target.
func walkToSeed(f *frontierState, target string) (nodes, edges []string) {
	var revNodes, revEdges []string
	cur := target
	for cur != f.seed {
		revNodes = append(revNodes, cur)
		p := f.preds[cur]
		revEdges = append(revEdges, p.edgeID)
		cur = p.from
	}
	revNodes = append(revNodes, f.seed)

	nodes = make([]string, len(revNodes))
	for i, nd := range revNodes {
		nodes[len(nodes)-1-i] = nd
	}
	edges = make([]string, len(revEdges))
	for i, e := range revEdges {
		edges[len(edges)-1-i] = e
	}

	return nodes, edges
}

func buildResult(frontiers []*frontierState, iterations int) Result {
	sampled := make(map[string]struct{})
	for _, f := range frontiers {
		for id := range f.visited {
			sampled[id] = struct{}{}
		}
	}

	return Result{SampledNodes: sampled, Stats: Stats{Iterations: iterations}}
}

func partialResult(frontiers []*frontierState, iterations int) Result {
	return buildResult(frontiers, iterations)
}

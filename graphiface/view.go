// Package graphiface defines the narrow, read-only graph contract that
// miengine, pathrank, and expander depend on. None of those packages import
// core directly for traversal; they only ever see a View, so any graph
// container that implements View — core.Graph via FromCore, or a test
// double — can serve as a collaborator.
package graphiface

// Node is the minimal per-vertex payload the core subsystems read.
type Node struct {
	ID         string
	Type       string
	Attributes []float64
	Community  string
	HasCommunity bool
}

// Edge is the minimal per-edge payload the core subsystems read.
type Edge struct {
	ID          string
	From        string
	To          string
	Weight      float64
	Directed    bool
	Type        string
	Timestamp   float64
	HasTimestamp bool
	Sign        float64
	HasSign     bool
	Probability float64
	HasProbability bool
	Layer       string
	HyperExtra  []string
}

// View is the read-only graph contract consumed by miengine, pathrank, and
// expander. Implementations must return edges/neighbors in a deterministic
// order (the BFS/DFS enumerators and the expander rely on this for
// reproducible output).
type View interface {
	// Node looks up a single node by id.
	Node(id string) (Node, bool)
	// Nodes returns every node in the graph, in a stable, deterministic order.
	Nodes() []Node
	// Edges returns every edge in the graph, in a stable, deterministic order.
	Edges() []Edge
	// OutgoingEdges returns edges leaving id under directed semantics; for
	// undirected graphs, returns all edges incident to id.
	OutgoingEdges(id string) ([]Edge, error)
	// NeighborIDs returns the unique, sorted set of node ids adjacent to id.
	NeighborIDs(id string) ([]string, error)
	// NodeCount returns the total number of nodes.
	NodeCount() int
	// Degree returns the total incident-edge count for id (in+out for
	// directed graphs, single count for undirected).
	Degree(id string) int
	// Directed reports the graph's default directedness.
	Directed() bool
}

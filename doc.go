// Package graph (infopath) turns a plain graph into a ranked map of its most
// informative connections.
//
// 🚀 What is infopath?
//
//	A thread-safe Go toolkit that scores every edge and path in a graph by
//	how much mutual information it carries, then uses those scores to:
//
//	  • Rank paths between two nodes by a length-normalized MI geometric mean
//	  • Grow seed-bounded neighborhoods outward until frontiers meet or a
//	    coverage budget is reached
//	  • Compare against shortest-path, random-walk, PageRank, degree and
//	    weight baselines
//
// ✨ Why choose infopath?
//
//   - Deterministic      — same graph and config always rank the same way
//   - Pluggable          — Jaccard, Adamic-Adar, attribute correlation, or
//     hyperedge participation all feed the same MI surrogate
//   - Rock-solid         — built on core's R/W-locked Graph, safe under
//     concurrent MI computation
//   - Container-agnostic — algorithms consume graphs through graphiface.View,
//     not a concrete struct
//
// Under the hood, everything is organized under focused subpackages:
//
//	core/       — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	graphiface/ — narrow View interface algorithms consume instead of *core.Graph
//	miengine/   — mutual-information surrogate computation and caching
//	pathrank/   — shortest and bounded-simple path enumeration and scoring
//	expander/   — seed-bounded, degree-prioritized neighborhood growth
//	cache/      — shared neighbor/degree/Jaccard/clustering primitives
//	baseline/   — comparative rankers (shortest path, random walk, PageRank, ...)
//	convert/    — adapter from core.Graph to gonum's graph.Graph
//	builder/    — deterministic topology generators plus attribute enrichment
//	config/     — YAML-driven run configuration
//	cmd/pathrankctl/ — CLI: generate, rank, expand, compare
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	ranking A→D might prefer A-C-D over A-B-D if the A-C and C-D edges carry
//	more mutual information than A-B and B-D.
//
// Dive into DESIGN.md for the full component design and the rationale
// behind every dependency choice.
//
//	go get github.com/quietflow/infopath
package graph

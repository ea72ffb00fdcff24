// Package miengine computes a mutual-information (MI) surrogate for every
// edge of a graph: a scalar in [ε,1] summarising an edge's informativeness,
// selected from one of four base strategies and refined by up to seven
// multiplicative modifiers. The result is cached once per graph snapshot as
// an immutable EdgeId → f64 map.
//
// This is an engineering heuristic, not an estimator of Shannon mutual
// information: no training, no learned parameters, no persistence across
// process lifetimes, and no incremental update when the graph mutates.
//
// Strategy selection precedence (evaluated per edge):
//  1. Hyperedge (if the edge's extra participant list is non-empty).
//  2. Attribute (if both endpoints carry non-empty attribute vectors).
//  3. Node-type co-occurrence (if heterogeneous node types were detected at
//     build start).
//  4. Edge-type rarity (if UseEdgeTypes is set, or auto-detected by more
//     than one distinct edge type across the graph).
//  5. Structural (Jaccard by default; Adamic-Adar or density-normalised
//     Jaccard if requested).
//
// Modifier composition is multiplicative, in this exact order: temporal,
// sign, probability, community, degree-penalty, IDF, edge-type-rarity,
// clustering-penalty. A modifier whose inputs are undefined for an edge
// contributes a factor of 1.
//
// All base formulas are epsilon-smoothed to avoid log(0) and division by
// zero; epsilon defaults to 1e-10. A missing endpoint (dangling edge)
// stores epsilon for that edge without evaluating any strategy or modifier.
// Any non-finite intermediate result is replaced by epsilon before caching.
package miengine

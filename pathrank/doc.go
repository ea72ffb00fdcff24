// Package pathrank enumerates and scores simple paths between two query
// endpoints in a graph, using a length-normalised geometric mean of per-edge
// mutual-information values (see miengine) as the core salience score.
//
// Two enumeration modes are available:
//
//   - Shortest-only (default): layered BFS from start, recording for every
//     node its minimum distance and the set of (node, edge) predecessor
//     pairs reaching it at that distance, then back-reconstructing every
//     shortest path from end to start over the resulting predecessor DAG.
//   - Bounded simple paths: DFS from start with a per-path (not global)
//     visited set, so alternative branches may revisit nodes used
//     elsewhere, bounded by maxLength and a global enumeration cap.
//
// Scoring, for a path of length k with edge MI values m1..mk:
//
//	gm = exp((1/k) * sum(ln(mi + eps)))
//	lengthPenalty = exp(-lambda*k)          if lambda > 0
//	weightFactor  = 1/max(mean(w), eps)     if weightMode == divide
//	              = exp(-mean(ln(w)))       if weightMode == multiplicative
//	score = gm * (lengthPenalty ?? 1) * (weightFactor ?? 1)
//
// RankPaths(start, end) returns ErrInvalidInput if either id is absent from the
// graph; an unreachable endpoint is not an error — it is success with an
// empty result.
package pathrank

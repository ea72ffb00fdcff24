// Package expander grows N cooperating priority-queue frontiers from N seed
// vertices, in rounds, until either:
//
//   - multi-seed (N>=2): two frontiers' visited sets intersect, at which
//     point a meeting path between those two seeds is reconstructed through
//     the shared vertex; or
//   - single-seed (N=1): an N1Strategy's coverage criterion fires;
//   - in all cases, a hard cap of N*|V| iterations is reached.
//
// Priority function: priority(v) = deg(v) / (nodeWeight + eps), used as a
// min-heap key (lower expands first). Ties break FIFO: the candidate
// inserted earlier pops first.
//
// The expander consumes the graph through the narrow graphiface.View
// neighbor/degree interface and does not require an MI cache. It never
// mutates the graph. Missing seed id, or an empty seed set, is
// ErrInvalidInput; failing to find a path between two seeds in distinct
// components is not an error — that pair's path list is simply empty.
package expander

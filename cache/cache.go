// Package cache provides shared, read-mostly derived views over a
// graphiface.View that are expensive to recompute per-call: neighbor-ID
// sets, degree counts, and local clustering coefficients. miengine.Build
// builds one Cache per graph snapshot and shares it across all of its
// per-edge computations instead of re-deriving these views per edge.
//
// A Cache is a point-in-time snapshot: it does not observe later mutations
// of the underlying graph. Build a fresh Cache after structural changes.
package cache

import (
	"errors"
	"sync"

	"github.com/quietflow/infopath/graphiface"
)

// ErrGraphNil indicates a nil graph view was passed to Build.
var ErrGraphNil = errors.New("cache: graph is nil")

// Cache holds derived, read-only views over a single graph snapshot.
//
// neighborSets[id] is the set of unique neighbor IDs of id, used for
// Jaccard-style structural-MI computation. Clustering is memoized lazily and
// guarded by muClustering since miengine may evaluate edges concurrently.
type Cache struct {
	neighborSets map[string]map[string]struct{}
	degree       map[string]int

	muClustering sync.Mutex
	clustering   map[string]float64
}

// Build snapshots g into a Cache. Complexity: O(V + E) plus O(sum_deg^2)
// worst-case for clustering coefficients (computed lazily, see Clustering).
func Build(g graphiface.View) (*Cache, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	nodes := g.Nodes()
	c := &Cache{
		neighborSets: make(map[string]map[string]struct{}, len(nodes)),
		degree:       make(map[string]int, len(nodes)),
	}

	for _, n := range nodes {
		ids, err := g.NeighborIDs(n.ID)
		if err != nil {
			return nil, err
		}
		set := make(map[string]struct{}, len(ids))
		for _, nb := range ids {
			set[nb] = struct{}{}
		}
		c.neighborSets[n.ID] = set
		c.degree[n.ID] = len(ids)
	}

	return c, nil
}

// Neighbors returns the cached neighbor-ID set for id, or nil if id is
// unknown to the cache (never appeared in the graph at Build time).
func (c *Cache) Neighbors(id string) map[string]struct{} {
	return c.neighborSets[id]
}

// Degree returns the cached degree (unique neighbor count) for id.
func (c *Cache) Degree(id string) int {
	return c.degree[id]
}

// Jaccard returns |N(a) ∩ N(b)| / |N(a) ∪ N(b)| over the cached neighbor
// sets. Returns 0 if either vertex has no cached neighbors.
func (c *Cache) Jaccard(a, b string) float64 {
	na, nb := c.neighborSets[a], c.neighborSets[b]
	if len(na) == 0 || len(nb) == 0 {
		return 0
	}

	small, large := na, nb
	if len(small) > len(large) {
		small, large = large, small
	}

	var inter int
	for id := range small {
		if _, ok := large[id]; ok {
			inter++
		}
	}
	union := len(na) + len(nb) - inter
	if union == 0 {
		return 0
	}

	return float64(inter) / float64(union)
}

// Clustering returns the local clustering coefficient of id: the fraction of
// pairs among id's neighbors that are themselves connected. Computed lazily
// and memoized on first access. Returns 0 for degree < 2.
func (c *Cache) Clustering(id string) float64 {
	c.muClustering.Lock()
	defer c.muClustering.Unlock()

	if c.clustering == nil {
		c.clustering = make(map[string]float64, len(c.neighborSets))
	}
	if v, ok := c.clustering[id]; ok {
		return v
	}

	neighbors := c.neighborSets[id]
	k := len(neighbors)
	if k < 2 {
		c.clustering[id] = 0
		return 0
	}

	ids := make([]string, 0, k)
	for nb := range neighbors {
		ids = append(ids, nb)
	}

	var links int
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if _, ok := c.neighborSets[ids[i]][ids[j]]; ok {
				links++
			}
		}
	}

	total := k * (k - 1) / 2
	coeff := float64(links) / float64(total)
	c.clustering[id] = coeff

	return coeff
}

package miengine

import (
	"math"
	"sort"

	"github.com/quietflow/infopath/cache"
)

// clampFinite replaces a non-finite value with eps, per the hard invariant
// that no NaN/Inf may ever reach the cache.
func clampFinite(v, eps float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return eps
	}
	return v
}

// attributeMI returns |pearson(a,b)| + eps over the aligned prefixes of two
// attribute vectors (length = min(len(a), len(b))), clamped to (0, 1+eps].
func attributeMI(a, b []float64, eps float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n == 0 {
		return eps
	}
	a, b = a[:n], b[:n]

	var meanA, meanB float64
	for i := 0; i < n; i++ {
		meanA += a[i]
		meanB += b[i]
	}
	meanA /= float64(n)
	meanB /= float64(n)

	var cov, varA, varB float64
	for i := 0; i < n; i++ {
		da, db := a[i]-meanA, b[i]-meanB
		cov += da * db
		varA += da * da
		varB += db * db
	}
	denom := math.Sqrt(varA * varB)
	if denom <= 0 {
		return eps
	}
	rho := cov / denom
	v := math.Abs(rho) + eps
	if v > 1+eps {
		v = 1 + eps
	}

	return clampFinite(v, eps)
}

// pairRarity computes -ln(P)/-ln(eps/(total+eps)) where P=(count+eps)/(total+eps),
// mapping rarer pairs to values closer to 1. Shared by node-type and
// edge-type rarity strategies.
func pairRarity(count, total int, eps float64) float64 {
	p := (float64(count) + eps) / (float64(total) + eps)
	numer := -math.Log(p + eps)
	denom := -math.Log(eps/(float64(total)+eps) + eps)
	if denom == 0 {
		return eps
	}
	v := numer / denom
	if v <= 0 {
		v = eps
	}
	if v > 1 {
		v = 1
	}

	return clampFinite(v, eps)
}

// typePairKey orders two type tags lexicographically to form a symmetric key.
func typePairKey(a, b string) string {
	if a <= b {
		return a + "\x00" + b
	}
	return b + "\x00" + a
}

// jaccard returns |N(u)∩N(v)| / |N(u)∪N(v)| + eps.
func jaccard(c *cache.Cache, u, v string, eps float64) float64 {
	j := c.Jaccard(u, v)
	if j <= 0 {
		return eps
	}
	return clampFinite(j+eps, eps)
}

// adamicAdar returns the Adamic-Adar index normalised into [0,1], +eps.
func adamicAdar(c *cache.Cache, u, v string, eps float64) float64 {
	nu, nv := c.Neighbors(u), c.Neighbors(v)
	if len(nu) == 0 || len(nv) == 0 {
		return eps
	}

	small, large := nu, nv
	if len(small) > len(large) {
		small, large = large, small
	}

	var sum float64
	for w := range small {
		if _, ok := large[w]; !ok {
			continue
		}
		deg := c.Degree(w)
		sum += 1 / math.Log(float64(deg)+2)
	}

	minSize := len(nu)
	if len(nv) < minSize {
		minSize = len(nv)
	}
	norm := float64(minSize) / math.Log(4)
	if norm <= 0 {
		return eps
	}
	v := sum / norm
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}

	return clampFinite(v+eps, eps)
}

// densityNormalizedJaccard returns clamp((J-d^2)/(1-d^2), eps, 1) + eps.
func densityNormalizedJaccard(c *cache.Cache, u, v string, density, eps float64) float64 {
	d2 := density * density
	if d2 >= 1-eps {
		return eps
	}
	j := c.Jaccard(u, v)
	raw := (j - d2) / (1 - d2)
	if raw < eps {
		raw = eps
	}
	if raw > 1 {
		raw = 1
	}

	return clampFinite(raw+eps, eps)
}

// graphDensity computes |E|/(|V|(|V|-1)/2), treating the graph as undirected
// for density purposes; this is a deliberate approximation preserved even
// for directed graphs rather than branching on directedness.
func graphDensity(numNodes, numEdges int) float64 {
	if numNodes < 2 {
		return 0
	}
	maxEdges := float64(numNodes) * float64(numNodes-1) / 2
	if maxEdges <= 0 {
		return 0
	}

	return float64(numEdges) / maxEdges
}

// hyperedgeMI returns the geometric mean of pairwise Jaccard values across
// every unordered pair in participants (source, target, plus any extras).
func hyperedgeMI(c *cache.Cache, participants []string, eps float64) float64 {
	uniq := make([]string, 0, len(participants))
	seen := make(map[string]struct{}, len(participants))
	for _, p := range participants {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		uniq = append(uniq, p)
	}
	sort.Strings(uniq)

	if len(uniq) < 2 {
		return eps
	}

	var sumLog float64
	var pairs int
	for i := 0; i < len(uniq); i++ {
		for j := i + 1; j < len(uniq); j++ {
			j2 := jaccard(c, uniq[i], uniq[j], eps)
			sumLog += math.Log(j2 + eps)
			pairs++
		}
	}
	if pairs == 0 {
		return eps
	}
	gm := math.Exp(sumLog / float64(pairs))

	return clampFinite(gm, eps)
}

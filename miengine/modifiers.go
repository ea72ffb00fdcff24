package miengine

import (
	"math"

	"github.com/quietflow/infopath/cache"
)

// applyModifiers composes all configured modifiers onto base, in the fixed
// order: temporal, sign, probability, community, degree-penalty, IDF,
// edge-type-rarity, clustering-penalty. A modifier whose inputs are
// undefined for this edge contributes a factor of 1.
func applyModifiers(base float64, cfg Config, in Inputs, c *cache.Cache, numNodes int, edgeTypeFreq map[string]int, totalEdges int, edgeID, u, v string) float64 {
	eps := cfg.epsilon()
	m := base

	m *= temporalModifier(cfg, in, edgeID)
	m *= signModifier(cfg, in, edgeID)
	m *= probabilityModifier(in, edgeID)
	m *= communityModifier(cfg, in, u, v)
	m *= degreePenaltyModifier(cfg, c, u, v)
	m *= idfModifier(cfg, c, numNodes, u, v, eps)
	m *= edgeTypeRarityModifier(cfg, in, edgeTypeFreq, totalEdges, edgeID, eps)
	m *= clusteringPenaltyModifier(cfg, c, u, v, eps)

	return clampFinite(m, eps)
}

// temporalModifier: exp(-λ · max(0, referenceTime - t)).
func temporalModifier(cfg Config, in Inputs, edgeID string) float64 {
	if cfg.TemporalDecay <= 0 {
		return 1
	}
	t, ok := in.TimestampOf(edgeID)
	if !ok {
		return 1
	}
	age := cfg.ReferenceTime - t
	if age < 0 {
		age = 0
	}

	return math.Exp(-cfg.TemporalDecay * age)
}

// signModifier: 1 if sign >= 0, else 1-p.
func signModifier(cfg Config, in Inputs, edgeID string) float64 {
	s, ok := in.SignOf(edgeID)
	if !ok {
		return 1
	}
	if s >= 0 {
		return 1
	}
	p := cfg.NegativePenalty
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}

	return 1 - p
}

// probabilityModifier: probability clamped to [0,1], or 1 if absent.
func probabilityModifier(in Inputs, edgeID string) float64 {
	p, ok := in.ProbabilityOf(edgeID)
	if !ok {
		return 1
	}
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}

	return p
}

// communityModifier: 1+b if both endpoints share a defined community, else 1.
func communityModifier(cfg Config, in Inputs, u, v string) float64 {
	if cfg.CommunityBoost == 0 {
		return 1
	}
	cu, okU := in.CommunityOf(u)
	cv, okV := in.CommunityOf(v)
	if okU && okV && cu == cv {
		return 1 + cfg.CommunityBoost
	}

	return 1
}

// degreePenaltyModifier: exp(-α·(ln(deg(u)+1) + ln(deg(v)+1))).
func degreePenaltyModifier(cfg Config, c *cache.Cache, u, v string) float64 {
	if !cfg.UseDegreePenalty {
		return 1
	}
	alpha := cfg.DegreePenaltyAlpha
	du, dv := float64(c.Degree(u)), float64(c.Degree(v))

	return math.Exp(-alpha * (math.Log(du+1) + math.Log(dv+1)))
}

// idfModifier: ln(N/(deg(u)+1)+eps) · ln(N/(deg(v)+1)+eps).
func idfModifier(cfg Config, c *cache.Cache, numNodes int, u, v string, eps float64) float64 {
	if !cfg.UseIDFWeighting {
		return 1
	}
	n := float64(numNodes)
	du, dv := float64(c.Degree(u)), float64(c.Degree(v))
	idfU := math.Log(n/(du+1) + eps)
	idfV := math.Log(n/(dv+1) + eps)

	return idfU * idfV
}

// edgeTypeRarityModifier: -ln(P(edge_type)+eps).
func edgeTypeRarityModifier(cfg Config, in Inputs, freq map[string]int, total int, edgeID string, eps float64) float64 {
	if !cfg.UseEdgeTypeRarity {
		return 1
	}
	t, ok := in.EdgeTypeOf(edgeID)
	if !ok {
		return 1
	}
	p := float64(freq[t]) / float64(total)

	return -math.Log(p + eps)
}

// clusteringPenaltyModifier: 1 - max(cc(u), cc(v)) + eps.
func clusteringPenaltyModifier(cfg Config, c *cache.Cache, u, v string, eps float64) float64 {
	if !cfg.UseClusteringPenalty {
		return 1
	}
	ccu, ccv := c.Clustering(u), c.Clustering(v)
	maxCC := ccu
	if ccv > maxCC {
		maxCC = ccv
	}

	return 1 - maxCC + eps
}

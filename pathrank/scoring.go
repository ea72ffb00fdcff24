package pathrank

import (
	"math"

	"github.com/quietflow/infopath/miengine"
)

// score computes a RankedPath for p given the MI cache and a precomputed
// edgeID->weight lookup, per the formula in the package doc comment.
func score(weights map[string]float64, p Path, mi *miengine.Cache, cfg Config) RankedPath {
	k := p.Len()
	eps := cfg.epsilon()

	if k == 0 {
		return RankedPath{Path: p, Score: 1, GeometricMeanMI: 1, EdgeMIValues: []float64{}}
	}

	miValues := make([]float64, k)
	var sumLog float64
	for i, edgeID := range p.Edges {
		m, ok := mi.Get(edgeID)
		if !ok {
			m = eps
		}
		miValues[i] = m
		sumLog += math.Log(m + eps)
	}
	gm := math.Exp(sumLog / float64(k))

	result := RankedPath{
		Path:            p,
		GeometricMeanMI: gm,
		EdgeMIValues:    miValues,
	}

	total := gm

	if cfg.Lambda > 0 {
		lp := math.Exp(-cfg.Lambda * float64(k))
		result.LengthPenalty = &lp
		total *= lp
	}

	switch cfg.WeightMode {
	case WeightDivide:
		mean := meanWeight(weights, p, cfg, eps)
		wf := 1 / math.Max(mean, eps)
		result.WeightFactor = &wf
		total *= wf
	case WeightMultiplicative:
		meanLog := meanLogWeight(weights, p, cfg, eps)
		wf := math.Exp(-meanLog)
		result.WeightFactor = &wf
		total *= wf
	}

	result.Score = total

	return result
}

func meanWeight(weights map[string]float64, p Path, cfg Config, eps float64) float64 {
	if len(p.Edges) == 0 {
		return 1
	}
	var sum float64
	for _, edgeID := range p.Edges {
		w := math.Max(cfg.weightOf(edgeID, weights[edgeID]), eps)
		sum += w
	}
	return sum / float64(len(p.Edges))
}

func meanLogWeight(weights map[string]float64, p Path, cfg Config, eps float64) float64 {
	if len(p.Edges) == 0 {
		return 0
	}
	var sum float64
	for _, edgeID := range p.Edges {
		w := math.Max(cfg.weightOf(edgeID, weights[edgeID]), eps)
		sum += math.Log(w)
	}
	return sum / float64(len(p.Edges))
}

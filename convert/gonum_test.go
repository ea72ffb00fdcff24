package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quietflow/infopath/convert"
	"github.com/quietflow/infopath/core"
	"github.com/quietflow/infopath/graphiface"
)

func TestToGonum_NilGraph(t *testing.T) {
	_, _, err := convert.ToGonum(nil)
	assert.Error(t, err)
}

func TestToGonum_UndirectedPreservesWeights(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))
	_, err := g.AddEdge("A", "B", 5)
	require.NoError(t, err)

	view := graphiface.FromCore(g)
	gg, idMap, err := convert.ToGonum(view)
	require.NoError(t, err)

	a := idMap.ToGonum["A"]
	b := idMap.ToGonum["B"]
	edge := gg.WeightedEdge(a, b)
	require.NotNil(t, edge)
	assert.Equal(t, 5.0, edge.Weight())
}

func TestToGonum_ZeroWeightDefaultsToOne(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)

	view := graphiface.FromCore(g)
	gg, idMap, err := convert.ToGonum(view)
	require.NoError(t, err)

	edge := gg.WeightedEdge(idMap.ToGonum["A"], idMap.ToGonum["B"])
	require.NotNil(t, edge)
	assert.Equal(t, 1.0, edge.Weight())
}

func TestTranslate_MapsBackToViewIDs(t *testing.T) {
	idMap := convert.IDMap{
		ToGonum: map[string]int64{"A": 0, "B": 1},
		ToView:  map[int64]string{0: "A", 1: "B"},
	}
	scores := map[int64]float64{0: 0.25, 1: 0.75, 2: 99}
	out := convert.Translate(idMap, scores)
	assert.Equal(t, map[string]float64{"A": 0.25, "B": 0.75}, out)
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quietflow/infopath/config"
	"github.com/quietflow/infopath/pathrank"
)

func TestSaveLoad_RoundTrips(t *testing.T) {
	cfg := config.Default()
	cfg.MI.UseAdamicAdar = true
	cfg.Ranking.Lambda = 0.25
	cfg.Expander.CoverageThreshold = 0.9

	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, config.Save(cfg, path))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_MissingFieldsKeepDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ranking:\n  lambda: 0.7\n"), 0o644))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.7, loaded.Ranking.Lambda)
	assert.Equal(t, 0.5, loaded.MI.NegativePenalty) // default preserved
	assert.True(t, loaded.Ranking.ShortestOnly)      // default preserved
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestToPathRank_UnknownTraversalMode(t *testing.T) {
	cfg := config.Default()
	cfg.Ranking.TraversalMode = "sideways"
	_, err := cfg.ToPathRank()
	assert.Error(t, err)
}

func TestToPathRank_MapsModesCorrectly(t *testing.T) {
	cfg := config.Default()
	cfg.Ranking.TraversalMode = "directed"
	cfg.Ranking.WeightMode = "multiplicative"
	rc, err := cfg.ToPathRank()
	require.NoError(t, err)
	assert.Equal(t, pathrank.Directed, rc.TraversalMode)
	assert.Equal(t, pathrank.WeightMultiplicative, rc.WeightMode)
}

func TestToExpander_NonPositiveThresholdFallsBackToDefault(t *testing.T) {
	cfg := config.Default()
	cfg.Expander.CoverageThreshold = 0
	ec := cfg.ToExpander()
	require.NotNil(t, ec.N1)
	assert.True(t, ec.N1(10, 10, 10)) // 100% coverage at iteration 10 should terminate under the 0.8 fallback
}

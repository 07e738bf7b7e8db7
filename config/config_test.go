package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10, cfg.Tries)
	assert.Equal(t, 2048, cfg.QubitCount)
	assert.Equal(t, 0.1, cfg.MinOffsetRange)
}

func TestLoad_FileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qlp.yaml")
	body := `
machine: chimera-sim
tries: 3
policy: signedlinear
penalty: 4
settings:
  annealing_time: 20
store:
  in_memory: false
  path: /tmp/qlp
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "chimera-sim", cfg.Machine)
	assert.Equal(t, 3, cfg.Tries)
	assert.Equal(t, "signedlinear", cfg.Policy)
	assert.Equal(t, 4.0, cfg.Penalty)
	assert.Equal(t, 2.0, cfg.ChainStrength, "untouched field keeps default")
	assert.Equal(t, 20, cfg.Settings["annealing_time"])
	assert.Equal(t, "/tmp/qlp", cfg.Store.Path)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"QLP_TRIES":            "7",
		"QLP_POLICY":           "expr:hnorm*width",
		"QLP_MIN_OFFSET_RANGE": "0.05",
		"QLP_STORE_IN_MEMORY":  "true",
		"QLP_SEED":             "99",
	}
	lookup := func(k string) (string, bool) { v, ok := env[k]; return v, ok }

	cfg := Default()
	require.NoError(t, cfg.applyEnv(lookup))
	assert.Equal(t, 7, cfg.Tries)
	assert.Equal(t, "expr:hnorm*width", cfg.Policy)
	assert.Equal(t, 0.05, cfg.MinOffsetRange)
	assert.Equal(t, int64(99), cfg.Seed)
	require.NoError(t, cfg.Validate())

	env["QLP_NUM_READS"] = "many"
	assert.Error(t, cfg.applyEnv(lookup))
}

func TestValidate_Rejects(t *testing.T) {
	cases := map[string]func(*Config){
		"zero tries":      func(c *Config) { c.Tries = 0 },
		"unknown policy":  func(c *Config) { c.Policy = "quadratic" },
		"no penalty":      func(c *Config) { c.Penalty = 0 },
		"store path":      func(c *Config) { c.Store = Store{} },
		"negative width":  func(c *Config) { c.MinOffsetRange = -1 },
		"bad log format":  func(c *Config) { c.Log.Format = "xml" },
		"missing machine": func(c *Config) { c.Machine = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestSettingsMap(t *testing.T) {
	cfg := Default()
	cfg.Settings = map[string]any{"annealing_time": 20}
	m := cfg.SettingsMap()
	assert.Equal(t, 20, m["annealing_time"])
	assert.Equal(t, cfg.NumReads, m["num_reads"])
	assert.Equal(t, cfg.Policy, m["policy"])
	_, leaked := cfg.Settings["policy"]
	assert.False(t, leaked)
}

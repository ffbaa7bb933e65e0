package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		LogLevel:   "error",
		Seed:       42,
		Strategies: DefaultStrategies,
		Ops:        3000,
		KeySpace:   200,
		Workers:    3,
		BenchN:     500,
	}
}

func TestFuzz(t *testing.T) {
	results := fuzz(testConfig())
	require.Len(t, results, 2*len(DefaultStrategies)-2)
	for _, r := range results {
		require.NoError(t, r.err, r.String())
		assert.Equal(t, 3000, r.ops)
		assert.LessOrEqual(t, r.size, 200)
	}
	require.NoError(t, verdict(results))

	var out bytes.Buffer
	renderRun(&out, results)
	assert.Contains(t, out.String(), "avl/rank")
	assert.Contains(t, out.String(), "sb/rank")
	assert.Contains(t, out.String(), "rand/rank")
}

func TestVerdict(t *testing.T) {
	a := &result{job: job{"avl", true}, digest: 1}
	b := &result{job: job{"rb", true}, digest: 2}
	assert.Error(t, verdict([]*result{a, b}))
	b.digest = 1
	assert.NoError(t, verdict([]*result{a, b}))
	b.err = assert.AnError
	assert.Error(t, verdict([]*result{a, b}))
}

func TestBench(t *testing.T) {
	c := testConfig()
	c.Strategies = []string{"avl", "sb"}
	ts := bench(c)
	require.Len(t, ts, 6)
	var out bytes.Buffer
	renderBench(&out, c.BenchN, ts)
	assert.Contains(t, out.String(), "google/btree")
}

func TestLoadConfig(t *testing.T) {
	c, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultOps, c.Ops)
	assert.Equal(t, DefaultStrategies, c.Strategies)

	path := filepath.Join(t.TempDir(), "fuzz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ops: 10\nstrategies: [avl, rb]\n"), 0o600))
	t.Setenv("TREEFUZZ_KEYSPACE", "77")
	c, err = LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 10, c.Ops)
	assert.Equal(t, 77, c.KeySpace)
	assert.Equal(t, []string{"avl", "rb"}, c.Strategies)

	require.NoError(t, os.WriteFile(path, []byte("strategies: [skiplist]\n"), 0o600))
	_, err = LoadConfig(path, nil)
	assert.ErrorContains(t, err, "unknown strategy")

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

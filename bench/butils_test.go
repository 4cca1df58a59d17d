package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlaau/S_A_Exercises/internal/store"
)

func TestVerifySorted(t *testing.T) {
	assert.NoError(t, verifySorted([]int{3, 1, 2, 1}, []int{1, 1, 2, 3}))
	assert.NoError(t, verifySorted(nil, nil))
	assert.Error(t, verifySorted([]int{3, 1, 2}, []int{1, 3, 2}))
	assert.Error(t, verifySorted([]int{1, 1, 2}, []int{1, 2, 2}))
	assert.Error(t, verifySorted([]int{1, 2}, []int{1, 2, 3}))
	assert.Error(t, verifySorted([]int{1, 2}, []int{1}))
}

func TestMedianDuration(t *testing.T) {
	m, err := medianDuration([]time.Duration{5, 1, 3})
	require.NoError(t, err)
	assert.Equal(t, time.Duration(3), m)

	m, err = medianDuration([]time.Duration{4, 1, 3, 2})
	require.NoError(t, err)
	assert.Equal(t, time.Duration(3), m)

	m, err = medianDuration(nil)
	require.NoError(t, err)
	assert.Zero(t, m)
}

func TestDataFileRoundTrip(t *testing.T) {
	data := generateRandomData(500, 7)
	assert.Equal(t, data, generateRandomData(500, 7))

	filename := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, writeDataToFile(data, filename))

	got, err := readDataFromFile(filename)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestRunBenchmark(t *testing.T) {
	data := generateRandomData(2000, 1)
	for algo := range sorters {
		t.Run(algo, func(t *testing.T) {
			res, err := runBenchmark(algo, data, false)
			require.NoError(t, err)
			assert.Equal(t, algo, res.Algorithm)
			assert.Equal(t, 2000, res.DataSize)
			assert.Equal(t, "memory", res.StorageType)
		})
	}
	assert.False(t, sortsAscending(data), "runBenchmark must sort a copy")

	_, err := runBenchmark("bogosort", data, false)
	assert.Error(t, err)
}

func sortsAscending(a []int) bool {
	for i := 1; i < len(a); i++ {
		if a[i-1] > a[i] {
			return false
		}
	}
	return true
}

func testConfig(t *testing.T) Config {
	dir := t.TempDir()
	return Config{
		LogLevel:      "error",
		Store:         store.Bolt,
		DataDir:       dir,
		Out:           filepath.Join(dir, "report"),
		Seed:          42,
		Runs:          2,
		Sizes:         []int{100, 300},
		Algorithms:    []string{"quicksort", "mergesort"},
		FileThreshold: 300,
		Bounds:        []int{25, 1000},
		Items:         200,
		TestSize:      50,
	}
}

func TestRunSortBench(t *testing.T) {
	cfg := testConfig(t)
	results, err := runSortBench(cfg)
	require.NoError(t, err)
	require.Len(t, results, 2*2*2)

	var files int
	for _, r := range results {
		if r.StorageType == "file" {
			files++
			assert.Equal(t, 300, r.DataSize)
		}
	}
	assert.Equal(t, 4, files)

	doc, err := renderMarkdown(results, cfg.Algorithms, time.Now())
	require.NoError(t, err)
	assert.Contains(t, doc, "## 인메모리 - 100개 데이터")
	assert.Contains(t, doc, "## 파일 - 300개 데이터")
	assert.Contains(t, doc, "| 퀵소트 |")

	s, err := store.Open(cfg.Store, filepath.Join(cfg.DataDir, "results"))
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, storeResults(s, results))

	var got BenchmarkResult
	require.NoError(t, store.GetJSON(s, store.Key("result", "mergesort", "300", "file", "2"), &got))
	assert.Equal(t, "mergesort", got.Algorithm)
	assert.Equal(t, 2, got.TestRun)
}

func TestRunTripletBench(t *testing.T) {
	s, err := store.Open(store.Badger, filepath.Join(t.TempDir(), "counts"))
	require.NoError(t, err)
	defer s.Close()

	cache := store.NewCountCache(s, 8)
	runs, err := runTripletBench(cache, []int{25, 10, 25}, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Equal(t, 8, runs[0].Counts[25])
	assert.Equal(t, 2, runs[1].Counts[10])
	// 첫 실행: 25, 10 계산 후 세 번째 25는 적중. 두 번째 실행은 전부 적중.
	assert.Equal(t, uint64(4), runs[1].Cache.Hits)
	assert.Equal(t, uint64(2), runs[1].Cache.Misses)

	assert.Equal(t, uint64(2), runs[1].Filter.Items)
	assert.Positive(t, runs[1].Filter.FillRatio)

	var buf bytes.Buffer
	printTripletRuns(&buf, []int{25, 10}, runs)
	assert.Contains(t, buf.String(), "25")
	assert.Contains(t, buf.String(), "블룸 필터")
	assert.Contains(t, buf.String(), "항목 2 |")
}

func TestRunStoreBenchmark(t *testing.T) {
	kvs := buildCountTable(100)
	v, err := store.DecodeUint64(kvs[24].Value)
	require.NoError(t, err)
	assert.Equal(t, uint64(8), v)

	rand := [][]byte{store.Uint64Key(1), store.Uint64Key(50)}
	missing := [][]byte{store.Uint64Key(1000)}
	for _, backend := range store.Backends {
		res, err := runStoreBenchmark(backend, filepath.Join(t.TempDir(), backend), kvs, rand, missing, 10)
		require.NoError(t, err, backend)
		assert.Equal(t, backend, res.Name)
		assert.Positive(t, res.DBSize)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("EXBENCH_RUNS", "5")
	t.Setenv("EXBENCH_STORE", "PEBBLE")

	cmd := newRootCmd()
	sortCmd, _, err := cmd.Find([]string{"sort"})
	require.NoError(t, err)

	v := viper.New()
	require.NoError(t, bindFlags(v, sortCmd))
	cfg, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Runs)
	assert.Equal(t, store.Pebble, cfg.Store)
	assert.Equal(t, []int{1000, 10000, 100000}, cfg.Sizes)
}

func TestConfigValidate(t *testing.T) {
	cfg := testConfig(t)
	assert.NoError(t, cfg.validate())

	bad := cfg
	bad.Store = "leveldb"
	assert.ErrorIs(t, bad.validate(), store.ErrUnknownBackend)

	bad = cfg
	bad.Algorithms = []string{"bogosort"}
	assert.Error(t, bad.validate())

	bad = cfg
	bad.Runs = 0
	assert.Error(t, bad.validate())
}

func TestSortCommandEndToEnd(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "report")

	cmd := newRootCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{
		"sort",
		"--data-dir", dir,
		"--out", out,
		"--log-level", "error",
		"--runs", "1",
		"--sizes", "50,120",
		"--file-threshold", "100",
	})
	require.NoError(t, cmd.Execute())
	assert.True(t, strings.Contains(stdout.String(), "report.md"))

	raw, err := os.ReadFile(out + ".json")
	require.NoError(t, err)
	var results []BenchmarkResult
	require.NoError(t, json.Unmarshal(raw, &results))
	assert.Len(t, results, 2*4)

	md, err := os.ReadFile(out + ".md")
	require.NoError(t, err)
	assert.Contains(t, string(md), "## 요약 통계")
}

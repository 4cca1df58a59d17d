package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rlaau/S_A_Exercises/internal/pythag"
	"github.com/rlaau/S_A_Exercises/internal/store"
)

// StoreResult 백엔드 하나의 쓰기/읽기 측정값
type StoreResult struct {
	Name                string        `json:"name"`
	WriteTime           time.Duration `json:"write_time"`
	DBSize              int64         `json:"db_size"`
	SeqReadTime         time.Duration `json:"seq_read_time"`
	RandReadTime        time.Duration `json:"rand_read_time"`
	NonExistentReadTime time.Duration `json:"non_existent_read_time"`
}

func newStoresCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stores",
		Short: "삼조 개수 테이블로 bbolt/BadgerDB/PebbleDB 비교",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.Items < 1 || cfg.TestSize < 1 {
				return errors.Newf("items and test-size must be positive (items=%d, test-size=%d)", cfg.Items, cfg.TestSize)
			}

			kvs := buildCountTable(cfg.Items)
			r := rand.New(rand.NewSource(cfg.Seed))
			randKeys := make([][]byte, cfg.TestSize)
			for i := range randKeys {
				randKeys[i] = store.Uint64Key(uint64(r.Intn(cfg.Items) + 1))
			}
			missingKeys := make([][]byte, cfg.TestSize)
			for i := range missingKeys {
				missingKeys[i] = store.Uint64Key(uint64(cfg.Items + 1 + i))
			}

			dir, err := os.MkdirTemp(cfg.DataDir, "stores-")
			if err != nil {
				return errors.Wrap(err, "temp dir")
			}
			defer os.RemoveAll(dir)

			var results []StoreResult
			for _, backend := range store.Backends {
				res, err := runStoreBenchmark(backend, filepath.Join(dir, backend), kvs, randKeys, missingKeys, cfg.TestSize)
				if err != nil {
					return errors.Wrapf(err, "%s 실패", backend)
				}
				results = append(results, res)
			}

			printStoreResults(cmd.OutOrStdout(), cfg.Items, results)
			return saveResultsToJSON(results, cfg.Out+"_stores")
		},
	}

	f := cmd.Flags()
	f.Int("items", 2000, "테이블에 넣을 상한 N 개수 (1..items)")
	f.Int("test-size", 1000, "읽기 측정에 쓸 키 개수")
	return cmd
}

// buildCountTable N = 1..items 의 삼조 개수
func buildCountTable(items int) []store.KV {
	kvs := make([]store.KV, items)
	for n := 1; n <= items; n++ {
		kvs[n-1] = store.KV{
			Key:   store.Uint64Key(uint64(n)),
			Value: store.Uint64Key(uint64(pythag.CountTriplets(n))),
		}
	}
	return kvs
}

func runStoreBenchmark(backend, path string, kvs []store.KV, randKeys, missingKeys [][]byte, testSize int) (StoreResult, error) {
	logrus.WithField("backend", backend).Info("저장소 벤치마크 시작")
	result := StoreResult{Name: backend}

	start := time.Now()
	s, err := store.Open(backend, path)
	if err != nil {
		return result, err
	}
	if err := s.PutBatch(kvs); err != nil {
		s.Close()
		return result, err
	}
	if err := s.Close(); err != nil {
		return result, errors.Wrap(err, "close after write")
	}
	result.WriteTime = time.Since(start)

	if result.DBSize, err = store.DiskSize(path); err != nil {
		return result, err
	}

	s, err = store.Open(backend, path)
	if err != nil {
		return result, err
	}
	defer s.Close()

	// 순차: 테이블 마지막 testSize개
	from := kvs[max(len(kvs)-testSize, 0)].Key
	start = time.Now()
	seen := 0
	err = s.Scan(from, testSize, func(_, v []byte) error {
		_, err := store.DecodeUint64(v)
		seen++
		return err
	})
	if err != nil {
		return result, err
	}
	result.SeqReadTime = time.Since(start)
	if want := min(testSize, len(kvs)); seen != want {
		return result, errors.Newf("sequential scan saw %d keys, want %d", seen, want)
	}

	start = time.Now()
	for _, key := range randKeys {
		if _, err := s.Get(key); err != nil {
			return result, errors.Wrap(err, "random read")
		}
	}
	result.RandReadTime = time.Since(start)

	start = time.Now()
	for _, key := range missingKeys {
		if _, err := s.Get(key); !errors.Is(err, store.ErrNotFound) {
			return result, errors.Newf("missing key lookup returned %v", err)
		}
	}
	result.NonExistentReadTime = time.Since(start)

	return result, nil
}

func printStoreResults(w io.Writer, items int, results []StoreResult) {
	line := "=================================================================================="
	fmt.Fprintln(w, "\n--- 최종 저장소 벤치마크 결과 ---")
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "%-28s", "항목")
	for _, r := range results {
		fmt.Fprintf(w, " | %-16s", r.Name)
	}
	fmt.Fprintln(w)

	row := func(label string, cell func(StoreResult) string) {
		fmt.Fprintf(w, "%-28s", label)
		for _, r := range results {
			fmt.Fprintf(w, " | %-16s", cell(r))
		}
		fmt.Fprintln(w)
	}
	row(fmt.Sprintf("저장 시간 (%d건)", items), func(r StoreResult) string { return r.WriteTime.Round(time.Millisecond).String() })
	row("저장 공간", func(r StoreResult) string { return fmt.Sprintf("%.2f MB", float64(r.DBSize)/1024/1024) })
	row("순차 읽기", func(r StoreResult) string { return r.SeqReadTime.Round(time.Microsecond).String() })
	row("임의 읽기", func(r StoreResult) string { return r.RandReadTime.Round(time.Microsecond).String() })
	row("없는 키 조회", func(r StoreResult) string { return r.NonExistentReadTime.Round(time.Microsecond).String() })
	fmt.Fprintln(w, line)
}

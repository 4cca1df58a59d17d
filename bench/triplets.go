package main

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rlaau/S_A_Exercises/internal/pythag"
	"github.com/rlaau/S_A_Exercises/internal/store"
)

// TripletRun 한 번의 전체 상한 목록 평가
type TripletRun struct {
	Run      int               `json:"run"`
	Duration time.Duration     `json:"duration"`
	Counts   map[int]int       `json:"counts"`
	Cache    store.CacheStats  `json:"cache"`
	Filter   store.FilterStats `json:"filter"`
}

func newTripletsCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "triplets",
		Short: "삼조 개수 계산을 KV 캐시를 거쳐 반복 측정",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := store.Open(cfg.Store, filepath.Join(cfg.DataDir, "counts-"+cfg.Store))
			if err != nil {
				return err
			}
			defer s.Close()

			cache := store.NewCountCache(s, uint64(len(cfg.Bounds))+1)
			loaded, err := cache.Warm()
			if err != nil {
				return err
			}
			logrus.WithField("loaded", loaded).Info("캐시 준비")

			runs, err := runTripletBench(cache, cfg.Bounds, cfg.Runs)
			if err != nil {
				return err
			}
			printTripletRuns(cmd.OutOrStdout(), cfg.Bounds, runs)
			return saveResultsToJSON(runs, cfg.Out+"_triplets")
		},
	}

	cmd.Flags().IntSlice("bounds", []int{1000, 10000, 100000, 1000000}, "상한 N 목록")
	return cmd
}

// runTripletBench 첫 실행은 계산 후 저장, 이후 실행은 캐시에서 읽힌다
func runTripletBench(cache *store.CountCache, bounds []int, runs int) ([]TripletRun, error) {
	out := make([]TripletRun, 0, runs)
	for run := 1; run <= runs; run++ {
		tr := TripletRun{Run: run, Counts: make(map[int]int, len(bounds))}
		start := time.Now()
		for _, n := range bounds {
			count, err := cache.Resolve(n, pythag.CountTriplets)
			if err != nil {
				return out, err
			}
			tr.Counts[n] = count
		}
		tr.Duration = time.Since(start)
		tr.Cache = cache.Stats()
		tr.Filter = cache.FilterStats()
		out = append(out, tr)
	}
	return out, nil
}

func printTripletRuns(w io.Writer, bounds []int, runs []TripletRun) {
	fmt.Fprintln(w, "\n--- 삼조 개수 ---")
	for _, n := range bounds {
		if len(runs) > 0 {
			fmt.Fprintf(w, "%-12d | %d\n", n, runs[0].Counts[n])
		}
	}
	fmt.Fprintln(w, "\n--- 실행별 시간 ---")
	fmt.Fprintf(w, "%-6s | %-14s | %-8s | %-8s | %-8s\n", "실행", "시간", "적중", "미스", "필터")
	for _, r := range runs {
		fmt.Fprintf(w, "%-6d | %-14v | %-8d | %-8d | %-8d\n",
			r.Run, r.Duration.Round(time.Microsecond), r.Cache.Hits, r.Cache.Misses, r.Cache.Filtered)
	}
	if len(runs) > 0 {
		f := runs[len(runs)-1].Filter
		fmt.Fprintln(w, "\n--- 블룸 필터 ---")
		fmt.Fprintf(w, "항목 %d | 설정 비트 %d | 채움 %.4f | 추정 오탐률 %.6f\n",
			f.Items, f.SetBits, f.FillRatio, f.EstimatedFPR)
	}
}

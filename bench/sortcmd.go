package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rlaau/S_A_Exercises/internal/store"
)

func newSortCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "퀵소트/머지소트 (순차, 병렬) 실행 시간 비교",
		RunE: func(cmd *cobra.Command, _ []string) error {
			results, err := runSortBench(*cfg)
			if err != nil {
				return err
			}

			s, err := store.Open(cfg.Store, filepath.Join(cfg.DataDir, "results-"+cfg.Store))
			if err != nil {
				return err
			}
			defer s.Close()
			if err := storeResults(s, results); err != nil {
				return err
			}

			if err := saveResultsToMarkdown(results, cfg.Algorithms, cfg.Out); err != nil {
				return err
			}
			if err := saveResultsToJSON(results, cfg.Out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s.md, %s.json 파일이 생성되었습니다.\n", cfg.Out, cfg.Out)
			return nil
		},
	}

	f := cmd.Flags()
	f.IntSlice("sizes", []int{1000, 10000, 100000}, "데이터 크기 목록")
	f.StringSlice("algorithms", []string{"quicksort", "parallel_quicksort", "mergesort", "parallel_mergesort"}, "정렬 알고리즘 목록")
	f.Int("file-threshold", 100000, "이 크기 이상은 파일을 거쳐 읽는다")
	return cmd
}

// runSortBench 크기마다 데이터를 만들고 알고리즘별로 cfg.Runs번 잰다.
// 큰 데이터는 매 실행마다 파일에서 다시 읽는다.
func runSortBench(cfg Config) ([]BenchmarkResult, error) {
	var all []BenchmarkResult

	for _, size := range cfg.Sizes {
		data := generateRandomData(size, cfg.Seed)
		isFile := size >= cfg.FileThreshold
		log := logrus.WithFields(logrus.Fields{"size": size, "storage": storageNames[storageType(isFile)]})
		log.Info("데이터 테스트 중")

		var filename string
		if isFile {
			filename = filepath.Join(cfg.DataDir, fmt.Sprintf("test_data_%d.txt", size))
			if err := writeDataToFile(data, filename); err != nil {
				return all, err
			}
		}

		for _, algo := range cfg.Algorithms {
			for run := 1; run <= cfg.Runs; run++ {
				input := data
				if isFile {
					var err error
					if input, err = readDataFromFile(filename); err != nil {
						os.Remove(filename)
						return all, err
					}
				}

				result, err := runBenchmark(algo, input, isFile)
				if err != nil {
					os.Remove(filename)
					return all, err
				}
				result.TestRun = run
				all = append(all, result)
				log.WithFields(logrus.Fields{"algorithm": algo, "run": run, "duration": result.Duration}).Debug("완료")
			}
		}

		if isFile {
			os.Remove(filename)
		}
	}
	return all, nil
}

func storageType(isFile bool) string {
	if isFile {
		return "file"
	}
	return "memory"
}

// storeResults result/<algo>/<size>/<storage>/<run> 키로 JSON 저장
func storeResults(s store.Store, results []BenchmarkResult) error {
	for _, r := range results {
		key := store.Key("result", r.Algorithm, strconv.Itoa(r.DataSize), r.StorageType, strconv.Itoa(r.TestRun))
		if err := store.PutJSON(s, key, r); err != nil {
			return errors.Wrapf(err, "store %s", key)
		}
	}
	logrus.WithFields(logrus.Fields{"count": len(results), "store": s.Name()}).Info("결과 저장")
	return nil
}

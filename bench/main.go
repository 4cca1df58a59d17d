// bench 연습 문제 알고리즘의 실행 시간을 재고 결과를 KV 저장소와 보고서로 남긴다.
package main

import (
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfg Config

	root := &cobra.Command{
		Use:           "bench",
		Short:         "연습 문제 알고리즘 벤치마크",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := bindFlags(v, cmd); err != nil {
				return err
			}
			var err error
			if cfg, err = loadConfig(v); err != nil {
				return err
			}
			if err := setupLogging(cfg.LogLevel); err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{
				"cpus":       runtime.NumCPU(),
				"gomaxprocs": runtime.GOMAXPROCS(0),
				"store":      cfg.Store,
			}).Info("벤치마크 시작")
			return os.MkdirAll(cfg.DataDir, 0o755)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "설정 파일 (yaml/json/toml)")
	pf.String("log-level", "info", "로그 레벨")
	pf.String("store", "bbolt", "결과 저장소 백엔드 (bbolt|badger|pebble)")
	pf.String("data-dir", "benchdata", "데이터 파일과 저장소 디렉터리")
	pf.String("out", "benchmark_results", "보고서 파일 이름 접두사")
	pf.Int64("seed", 42, "랜덤 데이터 시드")
	pf.Int("runs", 3, "알고리즘별 반복 횟수")

	root.AddCommand(
		newSortCmd(&cfg),
		newTripletsCmd(&cfg),
		newStoresCmd(&cfg),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Fatalf("bench 실패: %+v", err)
	}
}

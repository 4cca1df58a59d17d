package main

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rlaau/S_A_Exercises/internal/store"
)

const envPrefix = "EXBENCH"

// Config 플래그, 환경 변수(EXBENCH_*), 설정 파일을 합친 실행 설정
type Config struct {
	LogLevel string
	Store    string
	DataDir  string
	Out      string
	Seed     int64
	Runs     int

	// sort
	Sizes         []int
	Algorithms    []string
	FileThreshold int

	// triplets
	Bounds []int

	// stores
	Items    int
	TestSize int
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for _, fs := range []*pflag.FlagSet{cmd.Flags(), cmd.InheritedFlags()} {
		if err := v.BindPFlags(fs); err != nil {
			return errors.Wrap(err, "bind flags")
		}
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config %s", file)
		}
	}
	return nil
}

func loadConfig(v *viper.Viper) (Config, error) {
	cfg := Config{
		LogLevel:      v.GetString("log-level"),
		Store:         strings.ToLower(v.GetString("store")),
		DataDir:       v.GetString("data-dir"),
		Out:           v.GetString("out"),
		Seed:          v.GetInt64("seed"),
		Runs:          v.GetInt("runs"),
		Sizes:         v.GetIntSlice("sizes"),
		Algorithms:    v.GetStringSlice("algorithms"),
		FileThreshold: v.GetInt("file-threshold"),
		Bounds:        v.GetIntSlice("bounds"),
		Items:         v.GetInt("items"),
		TestSize:      v.GetInt("test-size"),
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Runs < 1 {
		return errors.Newf("runs must be positive, got %d", c.Runs)
	}
	known := false
	for _, b := range store.Backends {
		known = known || b == c.Store
	}
	if !known {
		return errors.Wrapf(store.ErrUnknownBackend, "%q", c.Store)
	}
	for _, a := range c.Algorithms {
		if _, ok := sorters[a]; !ok {
			return errors.Newf("unknown algorithm %q", a)
		}
	}
	for _, s := range c.Sizes {
		if s < 0 {
			return errors.Newf("negative data size %d", s)
		}
	}
	return nil
}

func setupLogging(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "log level")
	}
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return nil
}

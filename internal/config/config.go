package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	embedded "github.com/goserg/teambalancer"
)

const (
	envSeed     = "TEAMBALANCER_SEED"
	envLogLevel = "TEAMBALANCER_LOG_LEVEL"
)

type Balancer struct {
	Seed int64 `toml:"seed"`
}

// RandSeed returns the configured seed, or a clock based one when unset.
func (b Balancer) RandSeed() int64 {
	if b.Seed != 0 {
		return b.Seed
	}
	return time.Now().UnixNano()
}

type Log struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
}

type Config struct {
	Balancer Balancer `toml:"balancer"`
	Log      Log      `toml:"log"`
}

// New reads the embedded defaults, then the file at path if one is given,
// then .env and environment overrides.
func New(path string) (Config, error) {
	var cfg Config
	if _, err := toml.Decode(string(embedded.DefaultConfig), &cfg); err != nil {
		return Config{}, fmt.Errorf("default config: %w", err)
	}
	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("%s: unknown key %s", path, undecoded[0])
		}
	}

	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf(".env: %w", err)
	}
	if seed := os.Getenv(envSeed); seed != "" {
		cfg.Balancer.Seed, err = strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("env %s: %w", envSeed, err)
		}
	}
	if level := os.Getenv(envLogLevel); level != "" {
		cfg.Log.Level = level
	}
	return cfg, nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var ErrInvalidConfig = errors.New("invalid config")

type Backend string

const (
	BackendMemory Backend = "memory"
	BackendSQLite Backend = "sqlite"
)

type Config struct {
	Debug bool
	Color bool
	Tally Backend
}

// Load reads an optional .env file from the working directory and then the
// environment. A missing .env is not an error.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Config{
		Debug: getbool("VOTE_DEBUG", false),
		Color: getbool("VOTE_COLOR", false),
		Tally: Backend(strings.ToLower(getenv("VOTE_TALLY", string(BackendMemory)))),
	}

	switch cfg.Tally {
	case BackendMemory, BackendSQLite:
	default:
		return Config{}, fmt.Errorf("%w: VOTE_TALLY=%q", ErrInvalidConfig, cfg.Tally)
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

package store

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Backend names a Persistence implementation.
type Backend string

const (
	BackendDiskv  Backend = "diskv"
	BackendBolt   Backend = "bolt"
	BackendSQLite Backend = "sqlite"
)

// ParseBackend validates a backend name; empty selects diskv.
func ParseBackend(raw string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(raw))); b {
	case "":
		return BackendDiskv, nil
	case BackendDiskv, BackendBolt, BackendSQLite:
		return b, nil
	default:
		return "", fmt.Errorf("store: unknown backend %q (expected diskv, bolt or sqlite)", raw)
	}
}

type Config interface {
	BasePath() string
	Backend() Backend
}

// LoadConfig reads .daybook(.yaml) from $DAYBOOK_CONFIG_PATH or the working
// directory, with DAYBOOK_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.daybook")
	viper.SetDefault("backend", string(BackendDiskv))
	viper.SetConfigName(".daybook") // .yaml is implicit
	viper.SetEnvPrefix("DAYBOOK")
	viper.AutomaticEnv()

	if override := os.Getenv("DAYBOOK_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	backend, err := ParseBackend(viper.GetString("backend"))
	if err != nil {
		return nil, err
	}
	return &fileConfig{Path: path, Kind: backend}, nil
}

// NewConfig builds a Config without consulting viper.
func NewConfig(path string, backend Backend) Config {
	return &fileConfig{Path: path, Kind: backend}
}

type fileConfig struct {
	Path string  `json:"path"`
	Kind Backend `json:"backend"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Backend() Backend {
	if f.Kind == "" {
		return BackendDiskv
	}
	return f.Kind
}

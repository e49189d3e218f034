package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/maelisc/stableroster/core/metrics"
	"github.com/maelisc/stableroster/core/roster"
)

type Config struct {
	Scheduling roster.Config  `json:"scheduling"`
	Metrics    metrics.Config `json:"metrics"`
}

// Load reads a JSON or YAML configuration file. Values can be
// overridden through SR_-prefixed environment variables, with "__"
// separating nested keys (SR_SCHEDULING__START_TIME=06:30).
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides. The callback rewrites keys to
	// dot notation, so the provider must unflatten on "." as well.
	if err := k.Load(env.Provider("SR_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "sr_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Scheduling.SetDefaults()
	if err := cfg.Scheduling.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Package yaml loads carscrape configuration from YAML files, with
// .env loading and environment-variable overrides.
package yaml

import (
	"os"
	"strconv"
	"strings"

	"carscrape"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads the configuration file at path, layered over the defaults
// and under any CARSCRAPE_* environment overrides. An empty path loads
// defaults and environment only. A .env file in the working directory
// is loaded first when present.
func Load(path string) (*carscrape.Config, error) {
	// Missing .env files are fine; explicit config errors are not.
	_ = godotenv.Load()

	cfg := carscrape.DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, carscrape.Errorf(carscrape.EINVALID, "failed to read config %s: %v", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, carscrape.Errorf(carscrape.EINVALID, "failed to parse config %s: %v", path, err)
		}
	}

	applyEnv(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *carscrape.Config) {
	if v := os.Getenv("CARSCRAPE_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("CARSCRAPE_OUT_DIR"); v != "" {
		cfg.OutDir = v
	}
	if v := os.Getenv("CARSCRAPE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("CARSCRAPE_TIE_BREAK"); v != "" {
		cfg.TieBreak = carscrape.TieBreak(v)
	}
	if v := os.Getenv("CARSCRAPE_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Concurrency = n
		}
	}
	if v := os.Getenv("CARSCRAPE_ALLOWED_DOMAINS"); v != "" {
		var domains []string
		for _, d := range strings.Split(v, ",") {
			if d = strings.TrimSpace(d); d != "" {
				domains = append(domains, d)
			}
		}
		cfg.AllowedDomains = domains
	}
}

func validate(cfg *carscrape.Config) error {
	switch cfg.TieBreak {
	case "", carscrape.TieBreakFields, carscrape.TieBreakOrder:
	default:
		return carscrape.Errorf(carscrape.EINVALID, "unknown tie_break %q", cfg.TieBreak)
	}
	if cfg.MaxCheckSegments < 0 {
		return carscrape.Errorf(carscrape.EINVALID, "max_check_segments must not be negative")
	}
	if cfg.MinSlugLength < 0 {
		return carscrape.Errorf(carscrape.EINVALID, "min_slug_length must not be negative")
	}
	return nil
}

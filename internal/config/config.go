package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv     = "AUDIT_SCANNER_CONFIG"
	databaseDSNEnv    = "DATABASE_DSN"
	guideURLEnv       = "CATALOG_GUIDE_URL"
	advisorURLEnv     = "ADVISOR_ENDPOINT"
	advisorAPIKeyEnv  = "ADVISOR_API_KEY"
	defaultQuietMs    = 2000
	defaultYTolerance = 2.5
)

// Config holds high-level settings required across the application.
type Config struct {
	Database    DatabaseConfig    `yaml:"database"`
	Logging     LoggingConfig     `yaml:"logging"`
	Catalog     CatalogConfig     `yaml:"catalog"`
	Advisor     AdvisorConfig     `yaml:"advisor"`
	Persistence PersistenceConfig `yaml:"persistence"`
	Layouts     []LayoutConfig    `yaml:"layouts"`
	Layout      string            `yaml:"layout"`
}

// DatabaseConfig describes Postgres connection details.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// LoggingConfig controls the slog level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// CatalogConfig points at the university guide used for manual course adds.
type CatalogConfig struct {
	GuideURL string `yaml:"guideUrl"`
}

// AdvisorConfig defines how to contact the advising inference service.
type AdvisorConfig struct {
	Endpoint string `yaml:"endpoint"`
	APIKey   string `yaml:"apiKey"`
}

// PersistenceConfig tunes the edit-driven write debounce.
type PersistenceConfig struct {
	DebounceQuietMs int `yaml:"debounceQuietMs"`
}

// Quiet resolves the debounce quiet period.
func (p PersistenceConfig) Quiet() time.Duration {
	ms := p.DebounceQuietMs
	if ms <= 0 {
		ms = defaultQuietMs
	}
	return time.Duration(ms) * time.Millisecond
}

// LayoutConfig declares one institution's report layout. The anchor phrase,
// stop phrases and clustering tolerance are tuned per report format, so they
// live in configuration rather than code.
type LayoutConfig struct {
	Name         string   `yaml:"name"`
	AnchorPhrase string   `yaml:"anchorPhrase"`
	StopPhrases  []string `yaml:"stopPhrases"`
	YTolerance   float64  `yaml:"yTolerance"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	if len(cfg.Layouts) == 0 {
		cfg.Layouts = defaultConfig().Layouts
	}
	if cfg.Layout == "" {
		cfg.Layout = defaultConfig().Layout
	}

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(databaseDSNEnv); v != "" {
		c.Database.DSN = v
	}

	if v := os.Getenv(guideURLEnv); v != "" {
		c.Catalog.GuideURL = v
	}

	if v := os.Getenv(advisorURLEnv); v != "" {
		c.Advisor.Endpoint = v
	}

	if v := os.Getenv(advisorAPIKeyEnv); v != "" {
		c.Advisor.APIKey = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Database.DSN != "" {
		base.Database = override.Database
	}

	if override.Logging.Level != "" {
		base.Logging = override.Logging
	}

	if override.Catalog.GuideURL != "" {
		base.Catalog = override.Catalog
	}

	if override.Advisor.Endpoint != "" {
		base.Advisor.Endpoint = override.Advisor.Endpoint
	}
	if override.Advisor.APIKey != "" {
		base.Advisor.APIKey = override.Advisor.APIKey
	}

	if override.Persistence.DebounceQuietMs > 0 {
		base.Persistence = override.Persistence
	}

	if len(override.Layouts) > 0 {
		base.Layouts = override.Layouts
	}
	if override.Layout != "" {
		base.Layout = override.Layout
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Database: DatabaseConfig{DSN: ""},
		Logging:  LoggingConfig{Level: "info"},
		Catalog:  CatalogConfig{GuideURL: "https://guide.wisc.edu/courses"},
		Advisor:  AdvisorConfig{Endpoint: "", APIKey: ""},
		Persistence: PersistenceConfig{
			DebounceQuietMs: defaultQuietMs,
		},
		Layout: "dars",
		Layouts: []LayoutConfig{
			{
				Name:         "dars",
				AnchorPhrase: "total credits for the degree",
				StopPhrases: []string{
					"degree requirements",
					"general education",
					"major requirements",
					"breadth",
					"communication",
					"ethnic studies",
					"quantitative reasoning",
					"requirements not met",
					"requirements met",
					"summary",
				},
				YTolerance: defaultYTolerance,
			},
		},
	}
}

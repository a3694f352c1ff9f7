package config

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/remarks-cli/internal/extract"
)

// Config holds the full application configuration.
type Config struct {
	Sheets    SheetsConfig    `yaml:"sheets" mapstructure:"sheets"`
	Calendar  CalendarConfig  `yaml:"calendar" mapstructure:"calendar"`
	Store     StoreConfig     `yaml:"store" mapstructure:"store"`
	Batch     BatchConfig     `yaml:"batch" mapstructure:"batch"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Overrides OverridesConfig `yaml:"overrides" mapstructure:"overrides"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// SheetsConfig configures the spreadsheet backend.
type SheetsConfig struct {
	SpreadsheetID     string  `yaml:"spreadsheet_id" mapstructure:"spreadsheet_id"`
	HitListWorksheet  string  `yaml:"hit_list_worksheet" mapstructure:"hit_list_worksheet"`
	RemarksWorksheet  string  `yaml:"remarks_worksheet" mapstructure:"remarks_worksheet"`
	CredentialsFile   string  `yaml:"credentials_file" mapstructure:"credentials_file"`
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
}

// CalendarConfig configures follow-up event creation.
type CalendarConfig struct {
	Enabled    bool   `yaml:"enabled" mapstructure:"enabled"`
	CalendarID string `yaml:"calendar_id" mapstructure:"calendar_id"`
	Timezone   string `yaml:"timezone" mapstructure:"timezone"`
}

// StoreConfig configures the run ledger database.
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// BatchConfig configures batch processing.
type BatchConfig struct {
	Limit             int     `yaml:"limit" mapstructure:"limit"`
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
}

// ServerConfig configures the intake webhook server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// OverridesConfig points at the contact-person override file.
type OverridesConfig struct {
	File string `yaml:"file" mapstructure:"file"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("REMARKS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("sheets.hit_list_worksheet", "Hit List")
	v.SetDefault("sheets.remarks_worksheet", "DApp Remarks")
	v.SetDefault("sheets.requests_per_second", 1.0)
	v.SetDefault("calendar.enabled", true)
	v.SetDefault("calendar.timezone", "America/Los_Angeles")
	v.SetDefault("store.path", "remarks.db")
	v.SetDefault("batch.limit", 0)
	v.SetDefault("batch.requests_per_second", 1.0)
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}

type overridesFile struct {
	ContactPerson []extract.PersonOverride `yaml:"contact_person"`
}

// LoadOverrides reads contact-person overrides from a YAML file. An empty
// path means no overrides.
func LoadOverrides(path string) ([]extract.PersonOverride, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "config: read overrides %s", path)
	}
	var f overridesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, eris.Wrapf(err, "config: parse overrides %s", path)
	}
	return f.ContactPerson, nil
}

// Google API scopes for the spreadsheet and calendar clients.
const (
	ScopeSheets   = "https://www.googleapis.com/auth/spreadsheets"
	ScopeCalendar = "https://www.googleapis.com/auth/calendar"
)

// GoogleHTTPClient builds an authenticated http.Client from a service
// account credentials file.
func GoogleHTTPClient(ctx context.Context, credentialsFile string, scopes ...string) (*http.Client, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, eris.Wrapf(err, "config: read credentials %s", credentialsFile)
	}
	creds, err := google.CredentialsFromJSON(ctx, data, scopes...)
	if err != nil {
		return nil, eris.Wrap(err, "config: parse credentials")
	}
	return oauth2.NewClient(ctx, creds.TokenSource), nil
}

// Package config loads run settings from flags, environment, .env and an
// optional YAML file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. CSSCATALOG_OUTPUT.
const EnvPrefix = "CSSCATALOG"

type Config struct {
	DownloadDir string `mapstructure:"download_dir"`
	Output      string `mapstructure:"output"`
	Compress    bool   `mapstructure:"compress"`
	TopicsFile  string `mapstructure:"topics_file"`

	MDNBase         string        `mapstructure:"mdn_base"`
	IndexPath       string        `mapstructure:"index_path"`
	WebPlatformBase string        `mapstructure:"webplatform_base"`
	UserAgent       string        `mapstructure:"user_agent"`
	RequestsPerHost float64       `mapstructure:"requests_per_host"`
	RobotsTimeout   time.Duration `mapstructure:"robots_timeout"`
	FetchTimeout    time.Duration `mapstructure:"fetch_timeout"`
	MaxItems        int           `mapstructure:"max_items"`

	MongoURI        string `mapstructure:"mongo_uri"`
	MongoDatabase   string `mapstructure:"mongo_database"`
	MongoCollection string `mapstructure:"mongo_collection"`

	MetricsAddr string `mapstructure:"metrics_addr"`
	LogLevel    string `mapstructure:"log_level"`
}

// SetDefaults registers every key so environment overrides are picked up.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("download_dir", "./downloaded")
	v.SetDefault("output", "css_properties.json")
	v.SetDefault("compress", true)
	v.SetDefault("topics_file", "")
	v.SetDefault("mdn_base", "https://developer.mozilla.org")
	v.SetDefault("index_path", "/en-US/docs/Web/CSS/Reference")
	v.SetDefault("webplatform_base", "http://docs.webplatform.org/wiki/css")
	v.SetDefault("user_agent", "csscatalog/1.0")
	v.SetDefault("requests_per_host", 1.0)
	v.SetDefault("robots_timeout", 5*time.Second)
	v.SetDefault("fetch_timeout", 15*time.Second)
	v.SetDefault("max_items", 0)
	v.SetDefault("mongo_uri", "")
	v.SetDefault("mongo_database", "cssCatalog")
	v.SetDefault("mongo_collection", "items")
	v.SetDefault("metrics_addr", "")
	v.SetDefault("log_level", "normal")
}

// Load reads .env (if present), then file (if set) and the environment into v.
func Load(v *viper.Viper, file string) (Config, error) {
	_ = godotenv.Load()

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	if err := v.BindEnv("mongo_uri", EnvPrefix+"_MONGO_URI", "MONGODB_URI"); err != nil {
		return Config{}, err
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.DownloadDir == "" {
		errs = append(errs, errors.New("download_dir must be set"))
	}
	if c.Output == "" {
		errs = append(errs, errors.New("output must be set"))
	}
	if c.MaxItems < 0 {
		errs = append(errs, errors.New("max_items must not be negative"))
	}
	switch c.LogLevel {
	case "none", "normal", "debug":
	default:
		errs = append(errs, fmt.Errorf("log_level %q is not one of none, normal, debug", c.LogLevel))
	}
	return errors.Join(errs...)
}

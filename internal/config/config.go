// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"kofamscan/internal/hitdetail"
)

// EnvPrefix namespaces environment overrides (KOFAM_FORMAT, KOFAM_KO_LIST, ...).
const EnvPrefix = "KOFAM"

// Config is the fully resolved run configuration.
type Config struct {
	// Input
	KOList  string   `mapstructure:"ko_list"`
	Tblout  []string `mapstructure:"tblout"`
	Queries string   `mapstructure:"queries"`

	// Filtering
	MaxEValue float64 `mapstructure:"max_evalue"`

	// Output
	Format            string `mapstructure:"format"`
	ReportUnannotated bool   `mapstructure:"report_unannotated"`
	ThresholdColumn   bool   `mapstructure:"threshold_column"`
	KeepLongNames     bool   `mapstructure:"keep_long_names"`
	NoHitExitCode     int    `mapstructure:"no_hit_exit_code"`

	// Performance
	Workers int `mapstructure:"workers"`

	// Misc
	Quiet   bool `mapstructure:"quiet"`
	Verbose bool `mapstructure:"verbose"`
}

// Keys are the viper keys, in flag registration order.
var Keys = []string{
	"ko_list", "tblout", "queries",
	"max_evalue",
	"format", "report_unannotated", "threshold_column", "keep_long_names", "no_hit_exit_code",
	"workers",
	"quiet", "verbose",
}

// FlagName maps a config key to its command-line flag.
func FlagName(key string) string { return strings.ReplaceAll(key, "_", "-") }

// SetDefaults installs the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("format", "detail")
	v.SetDefault("workers", 0)
	v.SetDefault("no_hit_exit_code", 0)
}

// BindFlags makes every flag in fs named after a key override that key.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, key := range Keys {
		f := fs.Lookup(FlagName(key))
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind --%s: %w", f.Name, err)
		}
	}
	return nil
}

// Load resolves v into a Config. Precedence: flags > KOFAM_* environment >
// config file > defaults. An explicit path must exist; otherwise a
// kofam.yaml in the working directory is used when present.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("kofam")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("error reading config file kofam.yaml: %w", err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return c, nil
}

// Validate applies the run invariants. known reports registered formats.
func Validate(c *Config, known func(string) bool) error {
	if c.KOList == "" {
		return errors.New("--ko-list is required")
	}
	if len(c.Tblout) == 0 {
		return errors.New("at least one hmmsearch --tblout file is required")
	}
	if known != nil && !known(c.Format) {
		return fmt.Errorf("invalid --format %q", c.Format)
	}
	if c.Workers < 0 {
		return errors.New("--workers must be ≥ 0")
	}
	if c.MaxEValue < 0 {
		return errors.New("--max-evalue must be ≥ 0")
	}
	if c.NoHitExitCode < 0 || c.NoHitExitCode > 255 {
		return errors.New("--no-hit-exit-code must be between 0 and 255")
	}
	if c.Quiet && c.Verbose {
		return errors.New("--quiet conflicts with --verbose")
	}
	return nil
}

// DetailOptions returns the hit-detail formatter settings.
func (c Config) DetailOptions() hitdetail.Options {
	return hitdetail.Options{
		ReportUnannotated: c.ReportUnannotated,
		ShowThreshold:     c.ThresholdColumn,
		KeepLongNames:     c.KeepLongNames,
		Workers:           c.Workers,
	}
}

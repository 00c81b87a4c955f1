package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration for Pixelproof.
type Config struct {
	Baselines BaselinesConfig `mapstructure:"baselines" yaml:"baselines"`
	Compare   CompareConfig   `mapstructure:"compare" yaml:"compare"`
	Stability StabilityConfig `mapstructure:"stability" yaml:"stability"`
	Analyze   AnalyzeConfig   `mapstructure:"analyze" yaml:"analyze"`
	LogFile   string          `mapstructure:"log_file" yaml:"log_file"`
}

// BaselinesConfig configures baseline and diff artifact storage.
type BaselinesConfig struct {
	Dir      string `mapstructure:"dir" yaml:"dir"`
	DiffsDir string `mapstructure:"diffs_dir" yaml:"diffs_dir"`
}

// CompareConfig configures the visual regression comparison.
type CompareConfig struct {
	Threshold          float64 `mapstructure:"threshold" yaml:"threshold"`
	BlurRadius         float64 `mapstructure:"blur_radius" yaml:"blur_radius"`
	IgnoreAntialiasing bool    `mapstructure:"ignore_antialiasing" yaml:"ignore_antialiasing"`
	AADistance         float64 `mapstructure:"aa_distance" yaml:"aa_distance"`
}

// StabilityConfig configures the screen stability waiter.
type StabilityConfig struct {
	Duration        time.Duration `mapstructure:"duration" yaml:"duration"`
	MaxWait         time.Duration `mapstructure:"max_wait" yaml:"max_wait"`
	PollInterval    time.Duration `mapstructure:"poll_interval" yaml:"poll_interval"`
	ChangeThreshold int64         `mapstructure:"change_threshold" yaml:"change_threshold"`
}

// AnalyzeConfig configures screen content analysis.
type AnalyzeConfig struct {
	ColorTolerance int     `mapstructure:"color_tolerance" yaml:"color_tolerance"`
	MinTextPixels  int     `mapstructure:"min_text_pixels" yaml:"min_text_pixels"`
	OCRThreshold   float64 `mapstructure:"ocr_threshold" yaml:"ocr_threshold"`
}

// Loader wraps Viper configuration loading for Pixelproof.
type Loader struct {
	v          *viper.Viper
	configFile string
}

// NewLoader initializes a Loader with standard defaults.
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix("PIXELPROOF")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/pixelproof")
	v.AddConfigPath("$HOME/.pixelproof")

	return &Loader{v: v}
}

// Viper exposes the underlying Viper instance for flag binding and defaults.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// SetConfigFile sets an explicit config file path.
func (l *Loader) SetConfigFile(path string) {
	l.configFile = strings.TrimSpace(path)
}

// ReadInConfig reads configuration from file if available.
func (l *Loader) ReadInConfig() error {
	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

// Load reads configuration and unmarshals it into a Config struct.
func (l *Loader) Load() (Config, error) {
	if err := l.ReadInConfig(); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

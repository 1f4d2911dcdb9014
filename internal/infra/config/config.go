package config

import (
	"errors"
	"fmt"
	"strings"

	"sample-report/internal/series"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "SAMPLE_REPORT"

// Config is the full tool configuration. Zero-config runs use the defaults below.
type Config struct {
	Chart  ChartConfig   `mapstructure:"chart"`
	Series series.Params `mapstructure:"series"`
	Log    LogConfig     `mapstructure:"log"`
}

type ChartConfig struct {
	OutputPath string  `mapstructure:"output_path"`
	Title      string  `mapstructure:"title"`
	DPI        float64 `mapstructure:"dpi"`
	WidthIn    float64 `mapstructure:"width_in"`  // figure width in inches
	HeightIn   float64 `mapstructure:"height_in"` // figure height in inches
}

type LogConfig struct {
	File  string `mapstructure:"file"` // empty = stderr only
	Level string `mapstructure:"level"`
}

// LoadConfig merges, lowest priority first:
// 1. defaults
// 2. config.yaml in the working dir, or the file given by --config
// 3. .env file
// 4. SAMPLE_REPORT_* env vars
// 5. flags from fs, when fs is not nil
func LoadConfig(fs *pflag.FlagSet) (*Config, error) {
	godotenv.Load(".env")

	v := viper.New()
	setDefaults(v)

	configFile := ""
	if fs != nil {
		if f := fs.Lookup("config"); f != nil {
			configFile = f.Value.String()
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config.yaml: %w", err)
			}
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := bindFlags(v, fs); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults holds the fixed report parameters
func setDefaults(v *viper.Viper) {
	v.SetDefault("chart.output_path", "images/sample-report-chart.png")
	v.SetDefault("chart.title", "Sample Trading Performance")
	v.SetDefault("chart.dpi", 150.0)
	v.SetDefault("chart.width_in", 8.0)
	v.SetDefault("chart.height_in", 4.5)

	v.SetDefault("series.samples", series.DefaultSamples)
	v.SetDefault("series.seed", series.DefaultSeed)
	v.SetDefault("series.mean", series.DefaultMean)
	v.SetDefault("series.stddev", series.DefaultStdDev)
	v.SetDefault("series.baseline", series.DefaultBaseline)

	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
}

// RegisterFlags adds the flags LoadConfig understands to fs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to a config file (default ./config.yaml if present)")
	fs.String("log.file", "", "Write logs to this file as well (env: SAMPLE_REPORT_LOG_FILE)")
	fs.String("log.level", "info", "Log level: debug, info, warn, error (env: SAMPLE_REPORT_LOG_LEVEL)")
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, name := range []string{"log.file", "log.level"} {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(name, f); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Chart.OutputPath) == "" {
		return fmt.Errorf("chart.output_path is required")
	}
	if c.Chart.DPI <= 0 {
		return fmt.Errorf("chart.dpi must be positive, got %g", c.Chart.DPI)
	}
	if c.Chart.WidthIn <= 0 || c.Chart.HeightIn <= 0 {
		return fmt.Errorf("chart size must be positive, got %gx%g in", c.Chart.WidthIn, c.Chart.HeightIn)
	}
	if err := c.Series.Validate(); err != nil {
		return err
	}
	return nil
}

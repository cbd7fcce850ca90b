package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/andareed/cohortline/cohort"
	"github.com/andareed/cohortline/markers"
)

// EnvPrefix is prepended to upper-cased keys, with dots as underscores:
// COHORTLINE_DATA_URL overrides data.url.
const EnvPrefix = "COHORTLINE"

// Settings is the typed view of the configuration handed to the app.
type Settings struct {
	LogLevel     string
	LogFile      string
	DataURL      string
	DataDir      string
	DataTimeout  time.Duration
	ShareBaseURL string
	Bounds       markers.Bounds
	AgeOffset    int
	Tolerance    int
	DefaultStats []string
	SVGStyle     string
}

// SetDefaults registers the default for every key.
func SetDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logFile", "")

	viper.SetDefault("data.url", "http://localhost:1313")
	viper.SetDefault("data.dir", "")
	viper.SetDefault("data.timeout", "10s")

	viper.SetDefault("share.baseUrl", "http://localhost:1313/timeline/")

	viper.SetDefault("timeline.minYear", markers.DefaultMinYear)
	viper.SetDefault("timeline.maxYear", markers.DefaultMaxYear)

	viper.SetDefault("cohort.ageOffset", cohort.DefaultAgeOffset)
	viper.SetDefault("cohort.tolerance", cohort.DefaultTolerance)

	viper.SetDefault("stats.defaults", []string{"literacy", "attainment"})

	viper.SetDefault("svg.style", "")
}

// Load sets defaults, binds the environment and reads cohortline.yaml from
// configDir. A missing file is not an error.
func Load(configDir string) error {
	SetDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("cohortline")
	viper.SetConfigType("yaml")
	if configDir != "" {
		viper.AddConfigPath(configDir)
	}

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// Current snapshots the loaded configuration.
func Current() (Settings, error) {
	s := Settings{
		LogLevel:     viper.GetString("logLevel"),
		LogFile:      viper.GetString("logFile"),
		DataURL:      viper.GetString("data.url"),
		DataDir:      viper.GetString("data.dir"),
		DataTimeout:  viper.GetDuration("data.timeout"),
		ShareBaseURL: viper.GetString("share.baseUrl"),
		Bounds: markers.Bounds{
			Min: viper.GetInt("timeline.minYear"),
			Max: viper.GetInt("timeline.maxYear"),
		},
		AgeOffset:    viper.GetInt("cohort.ageOffset"),
		Tolerance:    viper.GetInt("cohort.tolerance"),
		DefaultStats: viper.GetStringSlice("stats.defaults"),
		SVGStyle:     viper.GetString("svg.style"),
	}
	if s.Bounds.Min >= s.Bounds.Max {
		return Settings{}, fmt.Errorf("timeline.minYear %d must be below timeline.maxYear %d", s.Bounds.Min, s.Bounds.Max)
	}
	if s.Tolerance <= 0 {
		return Settings{}, fmt.Errorf("cohort.tolerance must be positive, got %d", s.Tolerance)
	}
	if s.DataTimeout <= 0 {
		s.DataTimeout = 10 * time.Second
	}
	return s, nil
}

// Resolver builds the cohort resolver from the settings. offsets carries per
// statistic overrides; a configured ageOffset other than the default wins
// over them.
func (s Settings) Resolver(offsets map[string]int) cohort.Resolver {
	r := cohort.Resolver{AgeOffset: s.AgeOffset, Tolerance: s.Tolerance}
	if s.AgeOffset == cohort.DefaultAgeOffset {
		r.Offsets = offsets
	}
	return r
}

// Package config loads and validates the options that parameterize an
// Ephemeris: ayanamsha selection, the oracle data path, concurrency
// tuning, dasha depth, transit resolution, and fringe policies.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"

	"github.com/ratreya/indic-ephemeris/model"
)

// Ayanamsha selects the sidereal reference frame subtracted from tropical
// longitude. Only Lahiri is implemented by ApproximateOracle; the others
// are catalogued so Validate accepts any of the 42 recognized names, as a
// real oracle binding would.
type Ayanamsha int

const (
	Lahiri Ayanamsha = iota
	Raman
	KP
	FaganBradley
	DeLuce
	Pushya
	Sassanian
	Aldebaran15Tau
	Hipparchos
	Sayana
	Galactic
	JNBhasin
	BabylonianKugler1
	BabylonianKugler2
	BabylonianKugler3
	BabylonianHuber
	BabylonianEtPSc
	Aldebaran15Tau2
	Hindu
	Sunil
	SuryaSiddhanta
	SuryaSiddhantaMeanSun
	Aryabhata
	AryabhataMeanSun
	SSRevati
	SSCitra
	TrueCitra
	TrueRevati
	TruePushya
	GalacticCenter0Sag
	GalacticEquatorIAU1958
	GalacticEquator
	GalacticEquatorMidMula
	Skydram
	TrueMula
	Dhruva
	Aryabhata522
	Britton
	GalacticCenterBrand
	GalacticEquatorOrionSurya
	Vettius
	UshaShashi
	YukteshwarZero
	maxAyanamsha
)

var ayanamshaNames = [maxAyanamsha]string{
	"Lahiri", "Raman", "KP", "FaganBradley", "DeLuce", "Pushya", "Sassanian",
	"Aldebaran15Tau", "Hipparchos", "Sayana", "Galactic", "JNBhasin",
	"BabylonianKugler1", "BabylonianKugler2", "BabylonianKugler3",
	"BabylonianHuber", "BabylonianEtPSc", "Aldebaran15Tau2", "Hindu", "Sunil",
	"SuryaSiddhanta", "SuryaSiddhantaMeanSun", "Aryabhata", "AryabhataMeanSun",
	"SSRevati", "SSCitra", "TrueCitra", "TrueRevati", "TruePushya",
	"GalacticCenter0Sag", "GalacticEquatorIAU1958", "GalacticEquator",
	"GalacticEquatorMidMula", "Skydram", "TrueMula", "Dhruva", "Aryabhata522",
	"Britton", "GalacticCenterBrand", "GalacticEquatorOrionSurya", "Vettius",
	"UshaShashi", "YukteshwarZero",
}

func (a Ayanamsha) String() string {
	if a < 0 || int(a) >= len(ayanamshaNames) {
		return "Unknown"
	}
	return ayanamshaNames[a]
}

// Valid reports whether a is one of the 42 catalogued ayanamshas.
func (a Ayanamsha) Valid() bool {
	return a >= 0 && a < maxAyanamsha
}

// FringePolicy governs how adjacent sub-intervals near the edge of a
// retrograde episode or transit are collapsed. Maximal, an older alias
// for Covering seen in some source trees, is intentionally not
// represented — Covering is the one true name.
type FringePolicy int

const (
	Strict FringePolicy = iota
	Largest
	Covering
)

func (p FringePolicy) String() string {
	switch p {
	case Strict:
		return "Strict"
	case Largest:
		return "Largest"
	case Covering:
		return "Covering"
	default:
		return "Unknown"
	}
}

// DashaDepth is the nesting level of a Vimshottari dasha node.
type DashaDepth int

const (
	Maha DashaDepth = iota
	Antar
	Pratyantar
)

func (d DashaDepth) String() string {
	switch d {
	case Maha:
		return "Maha"
	case Antar:
		return "Antar"
	case Pratyantar:
		return "Pratyantar"
	default:
		return "Unknown"
	}
}

// Next returns the next finer dasha depth, clamped at Pratyantar so
// recursive subdivision always terminates regardless of how deep a
// caller configures MaxDashaDepth.
func (d DashaDepth) Next() DashaDepth {
	if d >= Pratyantar {
		return Pratyantar
	}
	return d + 1
}

// Config holds every tunable option of an Ephemeris/TransitFinder/
// DashaCalculator triple. Zero value is meaningless; use Load or Default.
type Config struct {
	Ayanamsha             Ayanamsha    `mapstructure:"ayanamsha"`
	DataPath              string       `mapstructure:"data_path"`
	Concurrency           int          `mapstructure:"concurrency"`
	ConcurrencyThreshold  int64        `mapstructure:"concurrency_threshold"`
	MaxDashaDepth         DashaDepth   `mapstructure:"max_dasha_depth"`
	TransitResolution     model.Unit   `mapstructure:"transit_resolution"`
	TransitFringePolicy   FringePolicy `mapstructure:"transit_fringe_policy"`
	RetrogradeFringePolicy FringePolicy `mapstructure:"retrograde_fringe_policy"`
	LogLevel              string       `mapstructure:"log_level"`
}

// Default returns the configuration with every option at its documented
// default: Lahiri ayanamsha, CPU-count concurrency with a 10 000-sample
// threshold, Pratyantar dasha depth, minute transit resolution, Covering
// transit fringe policy, Largest retrograde fringe policy, Warning log
// level.
func Default() *Config {
	return &Config{
		Ayanamsha:              Lahiri,
		DataPath:               defaultDataPath(),
		Concurrency:            runtime.NumCPU(),
		ConcurrencyThreshold:   10000,
		MaxDashaDepth:          Pratyantar,
		TransitResolution:      model.Minute,
		TransitFringePolicy:    Covering,
		RetrogradeFringePolicy: Largest,
		LogLevel:               "warn",
	}
}

func defaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/indic-ephemeris"
	}
	return filepath.Join(home, ".config", "indic-ephemeris")
}

func defaultDataPath() string {
	return filepath.Join(defaultConfigDir(), "ephemeris-data")
}

// Load reads config.toml from configDir (the default config directory if
// empty), applies documented defaults for any unset option, overrides the
// data path and log level from environment variables, and validates the
// result. If no config file exists, a template is written and the default
// configuration is returned.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = defaultConfigDir()
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)
	setViperDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if err := writeTemplate(configDir); err != nil {
				return nil, &ConfigError{Msg: fmt.Sprintf("writing template config: %v", err)}
			}
		} else {
			return nil, &ConfigError{Msg: fmt.Sprintf("reading config.toml: %v", err)}
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, &ConfigError{Msg: fmt.Sprintf("parsing config.toml: %v", err)}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setViperDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("ayanamsha", int(def.Ayanamsha))
	v.SetDefault("data_path", def.DataPath)
	v.SetDefault("concurrency", def.Concurrency)
	v.SetDefault("concurrency_threshold", def.ConcurrencyThreshold)
	v.SetDefault("max_dasha_depth", int(def.MaxDashaDepth))
	v.SetDefault("transit_resolution", int(def.TransitResolution))
	v.SetDefault("transit_fringe_policy", int(def.TransitFringePolicy))
	v.SetDefault("retrograde_fringe_policy", int(def.RetrogradeFringePolicy))
	v.SetDefault("log_level", def.LogLevel)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("INDIC_EPHEMERIS_DATA_PATH"); v != "" {
		cfg.DataPath = v
	}
	if v := os.Getenv("INDIC_EPHEMERIS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// Validate checks that every option is in range, returning a
// *ConfigError describing the first problem found.
func (c *Config) Validate() error {
	if !c.Ayanamsha.Valid() {
		return &ConfigError{Msg: fmt.Sprintf("ayanamsha %d out of range", c.Ayanamsha)}
	}
	if c.Concurrency < 1 {
		return &ConfigError{Msg: "concurrency must be at least 1"}
	}
	if c.ConcurrencyThreshold < 1 {
		return &ConfigError{Msg: "concurrency_threshold must be at least 1"}
	}
	if c.MaxDashaDepth < Maha || c.MaxDashaDepth > Pratyantar {
		return &ConfigError{Msg: "max_dasha_depth out of range"}
	}
	if c.TransitResolution < model.Second || c.TransitResolution > model.Year {
		return &ConfigError{Msg: "transit_resolution out of range"}
	}
	if c.DataPath == "" {
		return &ConfigError{Msg: "data_path must not be empty"}
	}
	if _, err := os.Stat(c.DataPath); err != nil && !os.IsNotExist(err) {
		return &ConfigError{Msg: fmt.Sprintf("data_path unreadable: %v", err)}
	}
	return nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Load loads the configuration from file and environment. The
// conventional environment variables of the affiliate APIs (API_KEY,
// API_SECRET, AFFILIATE_TAG, COUNTRY_CODE, CREDENTIAL_ID,
// CREDENTIAL_SECRET, API_VERSION, MARKETPLACE) override file values.
// A config file is optional; environment alone is enough.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)
	bindEnv(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".amazonapi"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("country", "US")
	v.SetDefault("throttle", 1.0)
	v.SetDefault("creators.api_version", "2.1")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// bindEnv wires the conventional environment variable names onto the
// config keys.
func bindEnv(v *viper.Viper) {
	_ = v.BindEnv("legacy.access_key", "API_KEY")
	_ = v.BindEnv("legacy.secret_key", "API_SECRET")
	_ = v.BindEnv("creators.credential_id", "CREDENTIAL_ID")
	_ = v.BindEnv("creators.credential_secret", "CREDENTIAL_SECRET")
	_ = v.BindEnv("creators.api_version", "API_VERSION")
	_ = v.BindEnv("partner_tag", "AFFILIATE_TAG")
	_ = v.BindEnv("country", "COUNTRY_CODE")
	_ = v.BindEnv("marketplace", "MARKETPLACE")
}

// validate checks if the configuration is valid.
func validate(cfg *Config) error {
	if cfg.PartnerTag == "" {
		return fmt.Errorf("partner_tag is required (AFFILIATE_TAG)")
	}

	hasLegacy := cfg.Legacy.AccessKey != "" && cfg.Legacy.SecretKey != ""
	if !hasLegacy && !cfg.UseCreators() {
		return fmt.Errorf("either legacy (API_KEY/API_SECRET) or creators (CREDENTIAL_ID/CREDENTIAL_SECRET) credentials are required")
	}

	if cfg.Throttle < 0 {
		return fmt.Errorf("throttle must not be negative")
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}

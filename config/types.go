package config

// Config represents the complete configuration structure.
type Config struct {
	Legacy   LegacyConfig   `mapstructure:"legacy"`
	Creators CreatorsConfig `mapstructure:"creators"`

	PartnerTag  string  `mapstructure:"partner_tag"`
	Country     string  `mapstructure:"country"`
	Marketplace string  `mapstructure:"marketplace"`
	Throttle    float64 `mapstructure:"throttle"`

	Logging LoggingConfig `mapstructure:"logging"`
}

// LegacyConfig holds the PA-API v5 credential pair.
type LegacyConfig struct {
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// CreatorsConfig holds the Creators API credential set.
type CreatorsConfig struct {
	CredentialID     string `mapstructure:"credential_id"`
	CredentialSecret string `mapstructure:"credential_secret"`
	APIVersion       string `mapstructure:"api_version"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// UseCreators reports whether the modern credential set is configured.
// When both sets are present the modern backend wins.
func (c *Config) UseCreators() bool {
	return c.Creators.CredentialID != "" && c.Creators.CredentialSecret != ""
}

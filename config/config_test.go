package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
partner_tag: t-20
country: DE
throttle: 2.5
legacy:
  access_key: AKID
  secret_key: SECRET
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "t-20", cfg.PartnerTag)
	assert.Equal(t, "DE", cfg.Country)
	assert.Equal(t, 2.5, cfg.Throttle)
	assert.Equal(t, "AKID", cfg.Legacy.AccessKey)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.False(t, cfg.UseCreators())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("AFFILIATE_TAG", "env-20")
	t.Setenv("CREDENTIAL_ID", "id")
	t.Setenv("CREDENTIAL_SECRET", "secret")
	t.Setenv("COUNTRY_CODE", "JP")

	path := writeConfig(t, "")
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-20", cfg.PartnerTag)
	assert.Equal(t, "JP", cfg.Country)
	assert.True(t, cfg.UseCreators())
	assert.Equal(t, "2.1", cfg.Creators.APIVersion)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	t.Setenv("AFFILIATE_TAG", "env-20")
	t.Setenv("API_KEY", "ENVKEY")

	path := writeConfig(t, `
partner_tag: file-20
legacy:
  access_key: FILEKEY
  secret_key: SECRET
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-20", cfg.PartnerTag)
	assert.Equal(t, "ENVKEY", cfg.Legacy.AccessKey)
}

func TestDefaults(t *testing.T) {
	t.Setenv("AFFILIATE_TAG", "t-20")
	t.Setenv("API_KEY", "AKID")
	t.Setenv("API_SECRET", "SECRET")

	path := writeConfig(t, "")
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "US", cfg.Country)
	assert.Equal(t, 1.0, cfg.Throttle)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.Logging.Color)
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing partner tag",
			content: "legacy:\n  access_key: AKID\n  secret_key: SECRET\n",
			wantErr: "partner_tag is required",
		},
		{
			name:    "missing credentials",
			content: "partner_tag: t-20\n",
			wantErr: "credentials are required",
		},
		{
			name:    "negative throttle",
			content: "partner_tag: t-20\nthrottle: -1\nlegacy:\n  access_key: AKID\n  secret_key: SECRET\n",
			wantErr: "throttle must not be negative",
		},
		{
			name:    "bad logging level",
			content: "partner_tag: t-20\nlegacy:\n  access_key: AKID\n  secret_key: SECRET\nlogging:\n  level: loud\n",
			wantErr: "invalid logging level",
		},
		{
			name:    "bad logging format",
			content: "partner_tag: t-20\nlegacy:\n  access_key: AKID\n  secret_key: SECRET\nlogging:\n  format: xml\n",
			wantErr: "invalid logging format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestUseCreatorsPrecedence(t *testing.T) {
	// When both credential sets are present the modern backend wins.
	path := writeConfig(t, `
partner_tag: t-20
legacy:
  access_key: AKID
  secret_key: SECRET
creators:
  credential_id: id
  credential_secret: secret
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.UseCreators())
}

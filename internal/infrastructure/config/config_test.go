package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedConfig "github.com/lumenworks/backoffice/internal/shared/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")

	cfg, err := Load("", path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, sharedConfig.AddressingPath, cfg.Server.AddressingMode)
	assert.Equal(t, 30, cfg.Entitlement.StaleGrantDays)
	assert.Equal(t, 30, cfg.Entitlement.MaxSlugLength)
	assert.Equal(t, "backoffice.events", cfg.RabbitMQ.Exchange)
	assert.Same(t, cfg, Get())
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "entitlement:\n  stale_grant_days: 30\n")
	t.Setenv("BACKOFFICE_ENTITLEMENT_STALE_GRANT_DAYS", "7")

	cfg, err := Load("", path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Entitlement.StaleGrantDays)
}

func TestLoad_SubdomainModeRequiresRootDomain(t *testing.T) {
	path := writeConfig(t, "server:\n  addressing_mode: subdomain\n")

	_, err := Load("", path)
	assert.Error(t, err)
}

func TestLoad_RejectsOversizedSlug(t *testing.T) {
	path := writeConfig(t, "entitlement:\n  max_slug_length: 64\n")

	_, err := Load("", path)
	assert.Error(t, err)
}

func TestServerConfig_AccessURL(t *testing.T) {
	s := sharedConfig.ServerConfig{BaseURL: "https://office.example.com/", AddressingMode: sharedConfig.AddressingPath}
	assert.Equal(t, "https://office.example.com/products/access/acme-crm-1a2b3c4d", s.AccessURL("acme-crm-1a2b3c4d"))

	s.AddressingMode = sharedConfig.AddressingSubdomain
	s.RootDomain = "apps.example.com"
	assert.Equal(t, "https://acme-crm-1a2b3c4d.apps.example.com", s.AccessURL("acme-crm-1a2b3c4d"))
}

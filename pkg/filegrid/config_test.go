package filegrid

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, s string) string {
	t.Helper()
	dir := t.TempDir()
	p := path.Join(dir, "filegrid-config.json")
	require.NoError(t, os.WriteFile(p, []byte(s), 0644))
	return p
}

func TestLoadConfigFile(t *testing.T) {
	p := writeConfig(t, `{
    "version": 0,
    "siteName": "filegrid test",
    "hostName": "files.example.org",
    "bindAddress": "127.0.0.1",
    "bindPort": 8000,
    "database": { "type": "sqlite", "path": "main.db" },
    "session": { "type": "sqlite", "path": "session.db" }
}`)
	cfg, err := LoadConfigFile(p)
	require.NoError(t, err)
	assert.Equal(t, "filegrid test", cfg.SiteName)
	assert.Equal(t, "127.0.0.1:8000", cfg.ProperBindAddress())
	// relative db paths resolve against the config file's directory.
	assert.Equal(t, path.Join(path.Dir(p), "main.db"), cfg.ProperDatabasePath())
	assert.Equal(t, path.Join(path.Dir(p), "session.db"), cfg.ProperSessionPath())
	// a host name without a scheme gets http.
	assert.Equal(t, "http://files.example.org", cfg.ProperHTTPHostName())
}

func TestLoadConfigFileAbsolutePathKept(t *testing.T) {
	p := writeConfig(t, `{
    "version": 0,
    "database": { "type": "sqlite", "path": "/var/lib/filegrid/main.db" }
}`)
	cfg, err := LoadConfigFile(p)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/filegrid/main.db", cfg.ProperDatabasePath())
}

func TestLoadConfigFileRejectsUnknownVersion(t *testing.T) {
	p := writeConfig(t, `{ "version": 3 }`)
	_, err := LoadConfigFile(p)
	assert.Error(t, err)
}

func TestLoadConfigFileRejectsBadJSON(t *testing.T) {
	p := writeConfig(t, `{ "version": `)
	_, err := LoadConfigFile(p)
	assert.Error(t, err)
}

func TestDownloadTokenLifetimeDefault(t *testing.T) {
	cfg := &FilegridConfig{}
	assert.Equal(t, 30, cfg.DownloadTokenLifetimeMinute())
	cfg.DownloadTokenExpireMinute = 5
	assert.Equal(t, 5, cfg.DownloadTokenLifetimeMinute())
}

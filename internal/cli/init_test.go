package cli

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Boomerang-Apps/wave-sub012/internal/config"
	"github.com/Boomerang-Apps/wave-sub012/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePortalURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:  "plain http URL",
			input: "http://localhost:3000",
		},
		{
			name:  "https URL",
			input: "https://portal.example.com",
		},
		{
			name:  "URL with path",
			input: "http://localhost:3000/portal",
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: "required",
		},
		{
			name:    "whitespace only",
			input:   "   ",
			wantErr: "required",
		},
		{
			name:    "missing scheme",
			input:   "localhost:3000",
			wantErr: "http://",
		},
		{
			name:    "wrong scheme",
			input:   "ftp://example.com",
			wantErr: "http://",
		},
		{
			name:    "scheme without host",
			input:   "http://",
			wantErr: "host",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePortalURL(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestGetInitDefaults(t *testing.T) {
	// Save original env and restore after test
	origPortal := os.Getenv("WAVE_PORTAL_URL")
	origNonInteractive := os.Getenv("WAVE_NON_INTERACTIVE")
	origCI := os.Getenv("CI")

	defer func() {
		os.Setenv("WAVE_PORTAL_URL", origPortal)
		os.Setenv("WAVE_NON_INTERACTIVE", origNonInteractive)
		os.Setenv("CI", origCI)
	}()

	t.Run("env vars populated", func(t *testing.T) {
		os.Setenv("WAVE_PORTAL_URL", "http://portal.internal:3000")
		os.Setenv("WAVE_NON_INTERACTIVE", "true")
		os.Unsetenv("CI")

		defaults := getInitDefaults()
		assert.Equal(t, "http://portal.internal:3000", defaults.Portal)
		assert.True(t, defaults.NonInteractive)
	})

	t.Run("CI env triggers non-interactive", func(t *testing.T) {
		os.Unsetenv("WAVE_PORTAL_URL")
		os.Unsetenv("WAVE_NON_INTERACTIVE")
		os.Setenv("CI", "true")

		defaults := getInitDefaults()
		assert.True(t, defaults.NonInteractive)
	})

	t.Run("empty env vars", func(t *testing.T) {
		os.Unsetenv("WAVE_PORTAL_URL")
		os.Unsetenv("WAVE_NON_INTERACTIVE")
		os.Unsetenv("CI")

		defaults := getInitDefaults()
		assert.Empty(t, defaults.Portal)
		assert.False(t, defaults.NonInteractive)
	})
}

func TestMergeInitOptions(t *testing.T) {
	// Save original env and restore after test
	origPortal := os.Getenv("WAVE_PORTAL_URL")
	origNonInteractive := os.Getenv("WAVE_NON_INTERACTIVE")
	origCI := os.Getenv("CI")

	defer func() {
		os.Setenv("WAVE_PORTAL_URL", origPortal)
		os.Setenv("WAVE_NON_INTERACTIVE", origNonInteractive)
		os.Setenv("CI", origCI)
	}()

	t.Run("flag wins over env", func(t *testing.T) {
		os.Setenv("WAVE_PORTAL_URL", "http://env-portal:3000")
		os.Unsetenv("WAVE_NON_INTERACTIVE")
		os.Unsetenv("CI")

		merged := mergeInitOptions(InitOptions{Portal: "http://flag-portal:3000"})
		assert.Equal(t, "http://flag-portal:3000", merged.Portal)
	})

	t.Run("env fills missing portal", func(t *testing.T) {
		os.Setenv("WAVE_PORTAL_URL", "http://env-portal:3000")
		os.Unsetenv("WAVE_NON_INTERACTIVE")
		os.Unsetenv("CI")

		merged := mergeInitOptions(InitOptions{})
		assert.Equal(t, "http://env-portal:3000", merged.Portal)
	})

	t.Run("CI forces non-interactive", func(t *testing.T) {
		os.Unsetenv("WAVE_PORTAL_URL")
		os.Unsetenv("WAVE_NON_INTERACTIVE")
		os.Setenv("CI", "true")

		merged := mergeInitOptions(InitOptions{})
		assert.True(t, merged.NonInteractive)
	})

	t.Run("explicit non-interactive kept when env unset", func(t *testing.T) {
		os.Unsetenv("WAVE_PORTAL_URL")
		os.Unsetenv("WAVE_NON_INTERACTIVE")
		os.Unsetenv("CI")

		merged := mergeInitOptions(InitOptions{NonInteractive: true})
		assert.True(t, merged.NonInteractive)
	})
}

// startFakePortal serves 200 on every route, which Ping counts as reachable.
func startFakePortal(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

// useTempConfigPath points the global --config flag at a temp file.
func useTempConfigPath(t *testing.T) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), config.ConfigFileName)
	originalFlag := configFlag
	configFlag = configPath
	t.Cleanup(func() { configFlag = originalFlag })
	return configPath
}

func TestInit_NonInteractive_CreatesConfig(t *testing.T) {
	server := startFakePortal(t)
	defer server.Close()

	configPath := useTempConfigPath(t)

	err := Init(InitOptions{Portal: server.URL, NonInteractive: true})
	require.NoError(t, err)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	content := string(data)

	assert.True(t, strings.HasPrefix(content, "# Wave project configuration"),
		"generated config should start with the header comment")
	assert.Contains(t, content, "base_url: "+server.URL)
	assert.Contains(t, content, "poll_interval: 30s", "durations should be written in string form")

	// The generated file should load and validate cleanly
	cfg, err := config.Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, server.URL, cfg.Portal.BaseURL)
	assert.Equal(t, ".", cfg.Project.Path)
	assert.Equal(t, config.DefaultConfig().Panel.PollInterval, cfg.Panel.PollInterval)
	assert.NoError(t, config.Validate(cfg))
}

func TestInit_NonInteractive_ExistingConfig(t *testing.T) {
	server := startFakePortal(t)
	defer server.Close()

	configPath := useTempConfigPath(t)
	require.NoError(t, os.WriteFile(configPath, []byte("version: 1\n"), 0644))

	err := Init(InitOptions{Portal: server.URL, NonInteractive: true})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "already exists")
	assert.Contains(t, err.Error(), "--force")
}

func TestInit_NonInteractive_ForceOverwrite(t *testing.T) {
	server := startFakePortal(t)
	defer server.Close()

	configPath := useTempConfigPath(t)
	require.NoError(t, os.WriteFile(configPath, []byte("stale: content\n"), 0644))

	err := Init(InitOptions{Portal: server.URL, NonInteractive: true, Overwrite: true})
	require.NoError(t, err)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale", "old content should be replaced")
	assert.Contains(t, string(data), "base_url: "+server.URL)
}

func TestInit_NonInteractive_UnreachablePortal(t *testing.T) {
	// Grab a URL that refuses connections by closing the server first
	server := startFakePortal(t)
	portalURL := server.URL
	server.Close()

	configPath := useTempConfigPath(t)

	err := Init(InitOptions{Portal: portalURL, NonInteractive: true})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrAPI))
	assert.Contains(t, err.Error(), "unreachable")

	_, statErr := os.Stat(configPath)
	assert.True(t, os.IsNotExist(statErr), "no config should be written when the portal is unreachable")
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"TRIPMATE_API_KEY", "GEMINI_API_KEY", "TRIPMATE_MODEL", "TRIPMATE_WATCH_DIR"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestDefaults(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, "gemini-2.5-flash", cfg.Model.Name)
	require.Equal(t, "imagen-4.0-generate-001", cfg.Model.ImageModel)
	require.Equal(t, "gemini-2.5-flash-preview-tts", cfg.Model.SpeechModel)
	require.Equal(t, "Kore", cfg.Model.Voice)
	require.Equal(t, 60*time.Second, cfg.Timeout.Request)
	require.Equal(t, 30*time.Second, cfg.Timeout.StreamIdle)
	require.Equal(t, 10*time.Second, cfg.Timeout.Location)
	require.Equal(t, "+16199600598", cfg.Emergency.Helpline)
}

func TestValidateRequiresAPIKey(t *testing.T) {
	cfg := DefaultConfig()
	require.ErrorIs(t, cfg.Validate(), ErrMissingAuth)

	cfg.API.APIKey = "key"
	require.NoError(t, cfg.Validate())
}

func TestLoadAppliesFileOverDefaults(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api:
  api_key: from-file
model:
  name: gemini-2.5-pro
timeout:
  request: 90s
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "from-file", cfg.API.APIKey)
	require.Equal(t, "gemini-2.5-pro", cfg.Model.Name)
	require.Equal(t, 90*time.Second, cfg.Timeout.Request)
	// Untouched sections keep their defaults.
	require.Equal(t, "Kore", cfg.Model.Voice)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "from-gemini-env")
	t.Setenv("TRIPMATE_MODEL", "gemini-env-model")
	t.Setenv("TRIPMATE_WATCH_DIR", "/tmp/drops")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  api_key: from-file\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "from-gemini-env", cfg.API.APIKey)
	require.Equal(t, "gemini-env-model", cfg.Model.Name)
	require.Equal(t, "/tmp/drops", cfg.Picker.WatchDir)
}

func TestLoadTripmateKeyWinsOverGeminiKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRIPMATE_API_KEY", "tripmate-key")
	t.Setenv("GEMINI_API_KEY", "gemini-key")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.Equal(t, "tripmate-key", cfg.API.APIKey)
}

func TestLoadExpandsEnvInFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("TEST_TRIPMATE_SECRET", "expanded-key")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  api_key: ${TEST_TRIPMATE_SECRET}\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "expanded-key", cfg.API.APIKey)
}

func TestLoadMissingFileIsFine(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, "gemini-2.5-flash", cfg.Model.Name)
}

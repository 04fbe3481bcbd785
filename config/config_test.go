package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrianliechti/docread/config"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	return path
}

func TestParse(t *testing.T) {
	t.Setenv("TEST_OCR_TOKEN", "secret-token")

	path := writeConfig(t, `
address: :9090
url: https://docread.example.com

recognizer:
  url: https://vision.example.com
  token: ${TEST_OCR_TOKEN}
  mode: handwritten
  maxRetries: 5
  retrySeconds: 2
  graceSeconds: 1

storage:
  path: `+filepath.Join(t.TempDir(), "data")+`

ledger:
  path: `+filepath.Join(t.TempDir(), "docread.db")+`

output:
  zip: true
`)

	cfg, err := config.Parse(path)
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.Address)
	require.Equal(t, "https://docread.example.com", cfg.URL)
	require.NotNil(t, cfg.Recognizer)
	require.NotNil(t, cfg.Storage)
	require.NotNil(t, cfg.Ledger)
	require.NotNil(t, cfg.Pipeline)
	require.True(t, cfg.CreateZip)
}

func TestParseDefaults(t *testing.T) {
	path := writeConfig(t, `
recognizer:
  url: https://vision.example.com
  token: key
`)

	cfg, err := config.Parse(path)
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.Address)
	require.NotNil(t, cfg.Storage)
	require.Nil(t, cfg.Ledger)
	require.False(t, cfg.CreateZip)
}

func TestParseMissingToken(t *testing.T) {
	path := writeConfig(t, `
recognizer:
  url: https://vision.example.com
`)

	_, err := config.Parse(path)
	require.ErrorContains(t, err, "token")
}

func TestParseMissingURL(t *testing.T) {
	path := writeConfig(t, `
recognizer:
  token: key
`)

	_, err := config.Parse(path)
	require.ErrorContains(t, err, "url")
}

func TestParseInvalidMode(t *testing.T) {
	path := writeConfig(t, `
recognizer:
  url: https://vision.example.com
  token: key
  mode: cursive
`)

	_, err := config.Parse(path)
	require.ErrorContains(t, err, "mode")
}

func TestParseNegativeGrace(t *testing.T) {
	path := writeConfig(t, `
recognizer:
  url: https://vision.example.com
  token: key
  graceSeconds: -1
`)

	_, err := config.Parse(path)
	require.ErrorContains(t, err, "graceSeconds")
}

func TestParseUnknownField(t *testing.T) {
	path := writeConfig(t, `
recognizer:
  url: https://vision.example.com
  token: key
  retires: 3
`)

	_, err := config.Parse(path)
	require.Error(t, err)
}

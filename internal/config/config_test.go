package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/grocery-receipt/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "receipt.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMainConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.LoadMainConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "", cfg.LogFile)
	assert.Equal(t, config.PromptAuto, cfg.PromptStyle)
}

func TestLoadMainConfig(t *testing.T) {
	path := writeConfig(t, "log_level: DEBUG\nlog_file: ./receipt.log\nprompt_style: plain\n")

	cfg, err := config.LoadMainConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "./receipt.log", cfg.LogFile)
	assert.Equal(t, config.PromptPlain, cfg.PromptStyle)
}

func TestLoadMainConfigPartialFileGetsDefaults(t *testing.T) {
	cfg, err := config.LoadMainConfig(writeConfig(t, "log_file: out.log\n"))
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, config.PromptAuto, cfg.PromptStyle)
}

func TestLoadMainConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed yaml", content: "log_level: [unterminated\n"},
		{name: "unknown log level", content: "log_level: chatty\n"},
		{name: "unknown prompt style", content: "prompt_style: gui\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadMainConfig(writeConfig(t, tt.content))
			require.Error(t, err)
		})
	}
}

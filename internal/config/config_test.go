package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/vfsh/pkg/vfsh"
)

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	content := `prompt: "vfsh>"
history_size: 50
no_color: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "vfsh>", cfg.Prompt)
	assert.Equal(t, 50, cfg.HistorySize)
	assert.True(t, cfg.NoColor)
}

func TestLoad_MinimalYAML_AppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	content := `no_color: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, vfsh.DefaultPrompt, cfg.Prompt)
	assert.Equal(t, vfsh.DefaultHistorySize, cfg.HistorySize)
	assert.True(t, cfg.NoColor)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("prompt: [unclosed"), 0644))

	cfg, err := Load(dir)
	assert.ErrorIs(t, err, vfsh.ErrInvalidConfig)
	assert.Nil(t, cfg)
}

func TestLoad_NegativeHistorySize(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("history_size: -1"), 0644))

	cfg, err := Load(dir)
	assert.ErrorIs(t, err, vfsh.ErrInvalidConfig)
	assert.Nil(t, cfg)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, vfsh.DefaultPrompt, cfg.Prompt)
	assert.Equal(t, vfsh.DefaultHistorySize, cfg.HistorySize)
	assert.False(t, cfg.NoColor)
}

func TestApplyEnv_PromptOverride(t *testing.T) {
	t.Setenv("VFSH_PROMPT", "%")
	t.Setenv("NO_COLOR", "")

	cfg := Default()
	cfg.ApplyEnv()
	assert.Equal(t, "%", cfg.Prompt)
	assert.False(t, cfg.NoColor)
}

func TestApplyEnv_NoColor(t *testing.T) {
	t.Setenv("VFSH_PROMPT", "")
	t.Setenv("NO_COLOR", "1")

	cfg := Default()
	cfg.ApplyEnv()
	assert.Equal(t, vfsh.DefaultPrompt, cfg.Prompt)
	assert.True(t, cfg.NoColor)
}

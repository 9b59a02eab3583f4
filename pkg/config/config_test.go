package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Empty(t, config.CodeTable)
	assert.True(t, config.DefaultKeywords)
	assert.Empty(t, config.Keywords)
	assert.Equal(t, "info", config.Logging.Level)
}

func TestLoadConfig(t *testing.T) {
	t.Run("load existing config", func(t *testing.T) {
		tmpDir, err := os.MkdirTemp("", "messagetool_config_test")
		require.NoError(t, err)
		defer os.RemoveAll(tmpDir)

		configPath := filepath.Join(tmpDir, "config.yaml")
		expectedConfig := &Config{
			CodeTable:       "/custom/codes.yaml",
			DefaultKeywords: false,
			Keywords: []KeywordConfig{
				{Code: 0xC110, Name: "PURPLE"},
			},
			Logging: Logging{
				Level: "debug",
			},
		}

		err = SaveConfig(expectedConfig, configPath)
		require.NoError(t, err)

		loadedConfig, err := LoadConfig(configPath)
		require.NoError(t, err)
		assert.Equal(t, expectedConfig, loadedConfig)
	})

	t.Run("missing fields keep defaults", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.yaml")
		doc := "keywords:\n  - code: 0xC110\n    name: PURPLE\n"
		require.NoError(t, os.WriteFile(configPath, []byte(doc), 0644))

		config, err := LoadConfig(configPath)
		require.NoError(t, err)
		assert.True(t, config.DefaultKeywords)
		assert.Equal(t, "info", config.Logging.Level)
		assert.Equal(t, []KeywordConfig{{Code: 0xC110, Name: "PURPLE"}}, config.Keywords)
	})

	t.Run("load non-existent config", func(t *testing.T) {
		_, err := LoadConfig("/non/existent/config.yaml")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "config file does not exist")
	})

	t.Run("load invalid yaml", func(t *testing.T) {
		tmpDir, err := os.MkdirTemp("", "messagetool_config_test")
		require.NoError(t, err)
		defer os.RemoveAll(tmpDir)

		configPath := filepath.Join(tmpDir, "invalid.yaml")
		err = os.WriteFile(configPath, []byte("invalid: yaml: content: ["), 0644)
		require.NoError(t, err)

		_, err = LoadConfig(configPath)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestSaveConfig(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "messagetool_config_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "nested", "config.yaml")
	config := DefaultConfig()

	err = SaveConfig(config, configPath)
	require.NoError(t, err)

	// Verify file exists
	info, err := os.Stat(configPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	// Verify content
	loadedConfig, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, config, loadedConfig)
}

func TestSaveConfigErrorHandling(t *testing.T) {
	tmpDir := t.TempDir()

	// A regular file where the config directory should be
	blocker := filepath.Join(tmpDir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := SaveConfig(DefaultConfig(), filepath.Join(blocker, "config.yaml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create config directory")
}

func TestConfig_KeywordTable(t *testing.T) {
	t.Run("defaults with extension", func(t *testing.T) {
		config := DefaultConfig()
		config.Keywords = []KeywordConfig{
			{Code: 0xC110, Name: "PURPLE"},
			{Code: 0xC103, Name: "CRIMSON"},
		}

		kw, err := config.KeywordTable()
		require.NoError(t, err)

		code, ok := kw.Code("PURPLE")
		require.True(t, ok)
		assert.Equal(t, rune(0xC110), code)

		name, ok := kw.Name(0xC103)
		require.True(t, ok)
		assert.Equal(t, "CRIMSON", name)

		_, ok = kw.Code("BUTTONA")
		assert.True(t, ok)
	})

	t.Run("without defaults", func(t *testing.T) {
		config := &Config{Keywords: []KeywordConfig{{Code: 0xC110, Name: "PURPLE"}}}

		kw, err := config.KeywordTable()
		require.NoError(t, err)
		assert.Equal(t, 1, kw.Len())

		_, ok := kw.Code("RED")
		assert.False(t, ok)
	})

	tests := []struct {
		name     string
		keyword  KeywordConfig
		expected error
	}{
		{name: "zero code", keyword: KeywordConfig{Code: 0, Name: "NUL"}, expected: ErrInvalidKeywordCode},
		{name: "code above BMP", keyword: KeywordConfig{Code: 0x10000, Name: "BIG"}, expected: ErrInvalidKeywordCode},
		{name: "surrogate code", keyword: KeywordConfig{Code: 0xD800, Name: "HALF"}, expected: ErrInvalidKeywordCode},
		{name: "empty name", keyword: KeywordConfig{Code: 0xC110, Name: ""}, expected: ErrInvalidKeywordName},
		{name: "bracket in name", keyword: KeywordConfig{Code: 0xC110, Name: "A]B"}, expected: ErrInvalidKeywordName},
		{name: "backslash in name", keyword: KeywordConfig{Code: 0xC110, Name: `A\B`}, expected: ErrInvalidKeywordName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			config.Keywords = []KeywordConfig{tt.keyword}

			_, err := config.KeywordTable()
			assert.ErrorIs(t, err, tt.expected)
			assert.Contains(t, err.Error(), "keyword 0")
		})
	}
}

func TestGetDefaultConfigPath(t *testing.T) {
	path := GetDefaultConfigPath()
	assert.NotEmpty(t, path)
	assert.Contains(t, path, "messagetool")
	assert.Contains(t, path, "config.yaml")
}

func TestConfigExists(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "messagetool_config_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	existingPath := filepath.Join(tmpDir, "exists.yaml")
	nonExistentPath := filepath.Join(tmpDir, "does-not-exist.yaml")

	// Create a file
	err = os.WriteFile(existingPath, []byte("test"), 0644)
	require.NoError(t, err)

	assert.True(t, ConfigExists(existingPath))
	assert.False(t, ConfigExists(nonExistentPath))
}

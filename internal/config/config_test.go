package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	t.Run("Loads values from a yaml file", func(t *testing.T) {
		// Given: a config file on disk
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: \"debug\"\ndefaults:\n  rule-mode: \"reverse\"\n  difficulty: 2\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		conf := MustLoad(path)

		// Then: file values win and untouched fields keep their defaults
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "reverse", conf.Defaults.RuleMode)
		assert.Equal(t, 2, conf.Defaults.Difficulty)
		assert.Equal(t, "unlimited", conf.Defaults.EndingPolicy)
	})

	t.Run("Falls back to defaults when the file is missing", func(t *testing.T) {
		// Given: a path with no file behind it
		path := filepath.Join(t.TempDir(), "config.yml")

		// When: loading
		conf := MustLoad(path)

		// Then: the defaults apply
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "normal", conf.Defaults.RuleMode)
		assert.Equal(t, 4, conf.Defaults.Difficulty)
	})
}

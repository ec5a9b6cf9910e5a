package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/shortcut-maker/pkg/errors"
)

// isolate points the user config lookup at an empty directory and clears
// the environment layer.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, envPrefix) {
			t.Setenv(name, "")
			require.NoError(t, os.Unsetenv(name))
		}
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "symlink", cfg.Links.Type)
	assert.Equal(t, "", cfg.Links.Suffix)
	assert.Equal(t, "object", cfg.Links.Recognize)
	assert.True(t, cfg.Clean.Prune)
	assert.Equal(t, "auto", cfg.Output.Format)

	assert.Equal(t, cfg, Default())
}

func TestUserConfigFile(t *testing.T) {
	t.Run("toml_in_xdg_dir", func(t *testing.T) {
		dir := isolate(t)
		writeFile(t, filepath.Join(dir, appName, "config.toml"), `
[links]
type = "toml"
suffix = ".sc"
`)
		cfg, err := Load(LoadOptions{})
		require.NoError(t, err)
		assert.Equal(t, "toml", cfg.Links.Type)
		assert.Equal(t, ".sc", cfg.Links.Suffix)
		assert.Equal(t, "object", cfg.Links.Recognize, "unset keys keep defaults")
	})

	t.Run("yaml_in_xdg_dir", func(t *testing.T) {
		dir := isolate(t)
		writeFile(t, filepath.Join(dir, appName, "config.yaml"), "clean:\n  prune: false\noutput:\n  format: json\n")

		cfg, err := Load(LoadOptions{})
		require.NoError(t, err)
		assert.False(t, cfg.Clean.Prune)
		assert.Equal(t, "json", cfg.Output.Format)
	})

	t.Run("explicit_file", func(t *testing.T) {
		isolate(t)
		path := filepath.Join(t.TempDir(), "custom.toml")
		writeFile(t, path, "[links]\nrecognize = \"suffix\"\n")

		cfg, err := Load(LoadOptions{ConfigFile: path})
		require.NoError(t, err)
		assert.Equal(t, "suffix", cfg.Links.Recognize)
	})

	t.Run("explicit_file_missing", func(t *testing.T) {
		isolate(t)
		_, err := Load(LoadOptions{ConfigFile: "/nowhere/config.toml"})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("broken_file", func(t *testing.T) {
		dir := isolate(t)
		writeFile(t, filepath.Join(dir, appName, "config.toml"), "[links\n")

		_, err := Load(LoadOptions{})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})
}

func TestPrecedence(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, appName, "config.toml"), `
[links]
type = "toml"
recognize = "suffix"

[output]
format = "text"
`)
	t.Setenv("SHORTCUT_MAKER_LINKS_TYPE", "webloc")
	t.Setenv("SHORTCUT_MAKER_OUTPUT_FORMAT", " json ")

	cfg, err := Load(LoadOptions{Flags: map[string]interface{}{
		"links.type": "symlink",
	}})
	require.NoError(t, err)

	assert.Equal(t, "symlink", cfg.Links.Type, "flags win over env")
	assert.Equal(t, "json", cfg.Output.Format, "env wins over file")
	assert.Equal(t, "suffix", cfg.Links.Recognize, "file wins over defaults")
	assert.True(t, cfg.Clean.Prune)
}

func TestEnvBool(t *testing.T) {
	isolate(t)
	t.Setenv("SHORTCUT_MAKER_CLEAN_PRUNE", "false")

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.False(t, cfg.Clean.Prune)
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name  string
		flags map[string]interface{}
	}{
		{"link type", map[string]interface{}{"links.type": "hardlink"}},
		{"recognize", map[string]interface{}{"links.recognize": "magic"}},
		{"output", map[string]interface{}{"output.format": "xml"}},
		{"suffix with separator", map[string]interface{}{"links.suffix": "a/b"}},
		{"suffix with pipe", map[string]interface{}{"links.suffix": ".a|b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			_, err := Load(LoadOptions{Flags: tt.flags})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid), "got %v", err)
		})
	}
}

func TestTOMLDump(t *testing.T) {
	out, err := Default().TOML()
	require.NoError(t, err)
	assert.Contains(t, out, "[links]")
	assert.Contains(t, out, "symlink")
	assert.Contains(t, out, "prune = true")
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func missingFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "none.toml")
}

func unsetVerbose(t *testing.T) {
	t.Setenv("VERBOSE", "")
	os.Unsetenv("VERBOSE")
}

func TestLoadDefaults(t *testing.T) {
	unsetVerbose(t)
	cfg, err := Load(missingFile(t))
	require.NoError(t, err)

	assert.Equal(t, "clang", cfg.Compiler)
	assert.Equal(t, "../../configuration/configuration.txt", cfg.ConfigFile)
	assert.Equal(t, "llvm-link", cfg.Linker)
	assert.Equal(t, "objects/.compile.sh", cfg.Output)
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
	assert.False(t, cfg.IsVerbose())
}

func TestVerbose(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"0", false},
		{"true", false},
		{"yes", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("VERBOSE", tt.value)
			cfg, err := Load(missingFile(t))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.IsVerbose())
			assert.Equal(t, tt.want, cfg.ScriptOptions().Verbose)
		})
	}
}

func TestLoadFile(t *testing.T) {
	unsetVerbose(t)
	file := filepath.Join(t.TempDir(), "cproj.toml")
	require.NoError(t, os.WriteFile(file, []byte(`
verbose = "1"
compiler = "clang-15"

[log]
level = "debug"
`), 0644))

	cfg, err := Load(file)
	require.NoError(t, err)
	assert.True(t, cfg.IsVerbose())
	assert.Equal(t, "clang-15", cfg.Compiler)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())

	opts := cfg.ScriptOptions()
	assert.Equal(t, "clang-15", opts.Compiler)
	assert.Equal(t, "../$PRODUCT_NAME", opts.Product)
}

func TestEnvOverridesDefaults(t *testing.T) {
	t.Setenv("CPROJ_LINKER", "llvm-link-15")
	t.Setenv("CPROJ_LOG_LEVEL", "warn")

	cfg, err := Load(missingFile(t))
	require.NoError(t, err)
	assert.Equal(t, "llvm-link-15", cfg.Linker)
	assert.Equal(t, zerolog.WarnLevel, cfg.Level())
}

func TestValidate(t *testing.T) {
	cfg := &Config{Compiler: "clang", Linker: "llvm-link", Output: "x"}
	cfg.Log.Level = "loud"
	assert.Error(t, cfg.Validate())

	cfg.Log.Level = "error"
	assert.NoError(t, cfg.Validate())

	cfg.Compiler = ""
	assert.Error(t, cfg.Validate())
}

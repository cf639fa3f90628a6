package config

import (
	"strings"
	"testing"

	"github.com/amber-lang/amber-lsp-analyzer/ast"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithNoConfigFile(t *testing.T) {
	v := viper.New()

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "alpha040", cfg.GrammarVersion)
	assert.Equal(t, 50, cfg.RetentionWindow)
	assert.Equal(t, "", cfg.StdlibManifestPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_TOMLFileOverridesDefaults(t *testing.T) {
	v := viper.New()
	v.SetConfigType("toml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
grammar_version = "alpha034"
retention_window = 10
log_level = "debug"
`)))

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "alpha034", cfg.GrammarVersion)
	assert.Equal(t, 10, cfg.RetentionWindow)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat, "untouched keys keep their default")
}

func TestConfig_ParsedGrammarVersion(t *testing.T) {
	cases := []struct {
		name    string
		version string
		want    ast.GrammarVersion
		wantErr bool
	}{
		{"alpha034", "alpha034", ast.Alpha034, false},
		{"alpha035", "alpha035", ast.Alpha035, false},
		{"alpha040", "alpha040", ast.Alpha040, false},
		{"unknown", "alpha999", 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{GrammarVersion: tc.version}
			got, err := cfg.ParsedGrammarVersion()
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrUnknownGrammarVersion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

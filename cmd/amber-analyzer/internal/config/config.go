// Package config loads the amber-analyzer CLI's configuration: file,
// environment, and flag layers merged by viper, following the same
// defaults-then-override pattern as the teacher's lsp/cmd/yammm-lsp flags,
// but generalized to a TOML config file per SPEC_FULL's ambient stack.
package config

import (
	"fmt"

	"github.com/amber-lang/amber-lsp-analyzer/ast"
	"github.com/amber-lang/amber-lsp-analyzer/files"
	"github.com/spf13/viper"
)

// Config is the fully-resolved set of amber-analyzer's knobs. Of these, the
// driver and the AST decoder currently read none of GrammarVersion,
// RetentionWindow, or StdlibManifestPath; they are loaded and, for
// GrammarVersion, validated here only.
type Config struct {
	// GrammarVersion names a grammar revision (default "alpha040"). The AST
	// decoder does not consult it: an AST without its own version tag
	// decodes as Alpha040 regardless of this setting.
	GrammarVersion string `mapstructure:"grammar_version"`

	// RetentionWindow is a per-file version count, defaulting to
	// files.RetentionWindow. files.Registry does not read it; the registry
	// always uses the files.RetentionWindow constant.
	RetentionWindow int `mapstructure:"retention_window"`

	// StdlibManifestPath names a builtin-function manifest on disk. It is
	// not read anywhere: the stdlib package always loads the embedded
	// resources/builtins.jsonc.
	StdlibManifestPath string `mapstructure:"stdlib_manifest_path"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `mapstructure:"log_level"`

	// LogFormat is one of "json" or "text", selecting the log/slog handler.
	LogFormat string `mapstructure:"log_format"`
}

// ErrUnknownGrammarVersion is returned by ParsedGrammarVersion when
// GrammarVersion doesn't name a revision ast.GrammarVersion recognizes.
var ErrUnknownGrammarVersion = fmt.Errorf("config: unknown grammar version")

// ParsedGrammarVersion resolves GrammarVersion to its ast.GrammarVersion
// constant.
func (c Config) ParsedGrammarVersion() (ast.GrammarVersion, error) {
	switch c.GrammarVersion {
	case "alpha034":
		return ast.Alpha034, nil
	case "alpha035":
		return ast.Alpha035, nil
	case "alpha040":
		return ast.Alpha040, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownGrammarVersion, c.GrammarVersion)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("grammar_version", "alpha040")
	v.SetDefault("retention_window", files.RetentionWindow)
	v.SetDefault("stdlib_manifest_path", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
}

// Load resolves Config from (in ascending priority) defaults, a TOML
// config file discovered by v, and environment variables prefixed
// AMBER_ANALYZER_. v is expected to already have any --config file path
// and persistent flags bound by the caller (see internal/cmd.initConfig);
// Load only supplies defaults and performs the final unmarshal.
func Load(v *viper.Viper) (Config, error) {
	setDefaults(v)

	v.SetEnvPrefix("AMBER_ANALYZER")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Config{}, fmt.Errorf("config: reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}

// Package cmd builds the amber-analyzer command tree: analyze, version.
// Flag and config-file wiring follows the teacher's lsp/cmd/yammm-lsp
// flag set, generalized from stdlib flag to spf13/cobra + spf13/viper
// per SPEC_FULL's ambient stack.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/amber-lang/amber-lsp-analyzer/cmd/amber-analyzer/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	v       = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "amber-analyzer",
	Short: "Multi-version semantic analyzer for the Amber shell-scripting language",
	Long: "amber-analyzer walks Amber ASTs through the type lattice, symbol table, " +
		"and scope stack shared with the LSP integration, reporting diagnostics " +
		"without requiring an editor connection.",
}

// Execute runs the root command, printing any error to stderr and exiting
// non-zero on failure, matching the teacher's run/main split in
// yammm-lsp's main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default .amber-analyzer.toml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug|info|warn|error (overrides config)")
	rootCmd.PersistentFlags().String("log-format", "", "log output format: json|text (overrides config)")

	_ = v.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
}

func initConfig() {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".amber-analyzer")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}
}

// loadConfig resolves the merged Config for the current invocation. Flags
// bound in init take priority over any value read from the TOML file,
// which in turn takes priority over config's built-in defaults.
func loadConfig() (config.Config, error) {
	return config.Load(v)
}

// buildLogger constructs the slog.Logger described by cfg, following
// yammm-lsp's setupLogger: a JSON or text handler over stderr, since
// stdout is reserved for rendered diagnostic output.
func buildLogger(cfg config.Config) (*slog.Logger, error) {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info", "":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("cmd: invalid log level %q", cfg.LogLevel)
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch cfg.LogFormat {
	case "text":
		handler = slog.NewTextHandler(os.Stderr, opts)
	case "json", "":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		return nil, fmt.Errorf("cmd: invalid log format %q", cfg.LogFormat)
	}
	return slog.New(handler), nil
}

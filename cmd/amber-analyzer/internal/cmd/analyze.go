package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/amber-lang/amber-lsp-analyzer/cmd/amber-analyzer/internal/astio"
	"github.com/amber-lang/amber-lsp-analyzer/cmd/amber-analyzer/internal/driver"
	"github.com/amber-lang/amber-lsp-analyzer/diag"
	"github.com/amber-lang/amber-lsp-analyzer/files"
	"github.com/amber-lang/amber-lsp-analyzer/location"
	"github.com/fsnotify/fsnotify"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var watchFlag bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a single AST document and print its diagnostics",
	Long: "analyze reads the JSON AST document at <file> (the wire format an " +
		"external lexer/parser produces; amber-analyzer does not parse Amber " +
		"source text itself) and reports the diagnostics the semantic analyzer " +
		"finds walking it.",
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&watchFlag, "watch", false, "re-analyze whenever the input file changes")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := buildLogger(cfg)
	if err != nil {
		return err
	}

	path := args[0]
	renderer := diag.NewRenderer(
		diag.WithColors(isatty.IsTerminal(os.Stdout.Fd())),
		diag.WithModuleRoot(""),
	)
	d := driver.New(logger)

	run := func() (bool, error) {
		return analyzeOnce(d, renderer, path)
	}

	ok, err := run()
	if err != nil {
		return err
	}
	if !watchFlag {
		if !ok {
			os.Exit(1)
		}
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("cmd: starting file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("cmd: watching %s: %w", path, err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	logger.Info("watching for changes", "path", path)
	for {
		select {
		case event, open := <-watcher.Events:
			if !open {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if _, err := run(); err != nil {
				logger.Error("re-analysis failed", "error", err.Error())
			}
		case err, open := <-watcher.Errors:
			if !open {
				return nil
			}
			logger.Error("watcher error", "error", err.Error())
		case sig := <-sigCh:
			logger.Info("received signal, stopping watch", "signal", sig.String())
			return nil
		}
	}
}

// analyzeOnce decodes and analyzes path once, printing its diagnostics to
// stdout. The bool result reports whether analysis found no errors, for
// the caller to decide the process exit code.
func analyzeOnce(d *driver.Driver, renderer *diag.Renderer, path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("cmd: opening %s: %w", path, err)
	}
	defer f.Close()

	source := location.NewSourceID(path)
	file, err := astio.Decode(f, source)
	if err != nil {
		return false, fmt.Errorf("cmd: decoding %s: %w", path, err)
	}

	id := files.FileIDFromSourceID(source)
	analysis, err := d.Analyze(context.Background(), id, file, nil)
	if err != nil {
		return false, fmt.Errorf("cmd: analyzing %s: %w", path, err)
	}

	fmt.Print(renderer.FormatResult(analysis.Diagnostics))
	return !analysis.Diagnostics.HasErrors(), nil
}

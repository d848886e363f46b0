package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/scribe"
	"github.com/aretw0/scribe/pkg/core"
)

var (
	verbose    bool
	notesFile  string
	configFile string
	readOnly   bool

	cfg scribe.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "scribe",
	Short: "A small local note store",
	Long: `Scribe keeps short text notes in a single local file.
Every change rewrites the whole file, so the notes on disk always match what you last saw.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig()
		if err != nil {
			return err
		}

		level, _ := scribe.ParseLogLevel(cfg.LogLevel)
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&notesFile, "file", "f", "", "Notes file (.json, .yaml or .db)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: nearest scribe.yaml)")
	rootCmd.PersistentFlags().BoolVar(&readOnly, "read-only", false, "Refuse to write the notes file")
}

// loadConfig resolves the configuration: an explicit --config, otherwise the
// nearest scribe.yaml above the working directory, otherwise defaults.
func loadConfig() (scribe.Config, error) {
	path := configFile
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return scribe.Config{}, fmt.Errorf("failed to get working directory: %w", err)
		}
		found, err := scribe.FindConfig(wd)
		switch {
		case err == nil:
			path = found
		case !errors.Is(err, scribe.ErrConfigNotFound):
			return scribe.Config{}, err
		}
	}

	c, err := scribe.LoadConfig(path)
	if err != nil {
		return scribe.Config{}, err
	}
	if notesFile != "" {
		c.NotesFile = notesFile
	}
	if readOnly {
		c.ReadOnly = true
	}
	return c, nil
}

func openWorkspace(ctx context.Context) *core.Workspace {
	opts := append(cfg.Options(), scribe.WithLogger(slog.Default()))
	ws, err := scribe.New(ctx, opts...)
	if err != nil {
		fatal("opening notes", err)
	}
	return ws
}

func resolveRef(ws *core.Workspace, ref string) int {
	pos, err := ws.Resolve(ref)
	if err != nil {
		fatal("finding note", err)
	}
	return pos
}

// requireSaved exits when the preceding change could not be persisted.
// The change itself is lost with the process, so the user has to know.
func requireSaved(ws *core.Workspace) {
	if !ws.LastSaveOK() {
		fatal("saving notes", errors.New("changes were not written, see log above"))
	}
}

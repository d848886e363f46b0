package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	lifecycleadapter "github.com/aretw0/scribe/pkg/adapters/lifecycle"
	"github.com/aretw0/scribe/pkg/core"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reload and report whenever the notes file changes",
	Long: `Watch keeps running until interrupted. Each time the notes file is written,
by scribe or by anything else, the collection is reloaded and its size printed.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		ws := openWorkspace(ctx)
		watchable, ok := ws.Store().(core.Watchable)
		if !ok {
			fatal("watching notes", errors.New("this store does not support watching"))
		}

		events, err := watchable.Watch(ctx)
		if err != nil {
			fatal("watching notes", err)
		}

		source := lifecycleadapter.NewSource(events)
		if err := source.Start(ctx); err != nil {
			fatal("starting event source", err)
		}

		fmt.Printf("Watching %d notes. Press Ctrl+C to stop.\n", ws.Len())
		for e := range source.Events() {
			slog.Debug("notes file changed", "event", e.String())
			ws.Reload(ctx)
			fmt.Printf("%s: %d notes\n", e, ws.Len())
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

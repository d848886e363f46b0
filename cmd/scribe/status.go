package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"
)

type statusReport struct {
	Workspace any `json:"workspace"`
	Store     any `json:"store,omitempty"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the internal state of the workspace and its store",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ws := openWorkspace(context.Background())

		report := statusReport{Workspace: ws.State()}
		if intro, ok := ws.Store().(introspection.Introspectable); ok {
			report.Store = intro.State()
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			fatal("encoding JSON", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/scribe/pkg/core"
)

var (
	listJSON   bool
	listFilter string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, optionally filtered",
	Long: `List prints the position and title of each note in insertion order.
--filter keeps notes whose title or content contains the text, ignoring case.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ws := openWorkspace(context.Background())
		ws.SetFilter(listFilter)

		visible := ws.Visible()
		notes := ws.Notes()

		if listJSON {
			out := make([]core.Note, 0, len(visible))
			for _, pos := range visible {
				out = append(out, notes[pos])
			}
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(out); err != nil {
				fatal("encoding JSON", err)
			}
			return
		}

		for _, pos := range visible {
			n := notes[pos]
			fmt.Printf("%3d  %s  %s\n", pos, core.FormatTimestamp(n.Edited), n.Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listFilter, "filter", "", "Only list notes containing this text")
}

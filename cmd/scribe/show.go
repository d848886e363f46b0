package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/scribe"
	"github.com/aretw0/scribe/pkg/core"
)

var (
	showJSON bool
	showHTML bool
)

var showCmd = &cobra.Command{
	Use:   "show [ref]",
	Short: "Show a note",
	Long: `Show prints a note selected by position or ID.
Outputs a header and the raw content by default, the content rendered as HTML with --html,
or the full record with --json.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ws := openWorkspace(context.Background())
		note, err := ws.Select(resolveRef(ws, args[0]))
		if err != nil {
			fatal("reading note", err)
		}

		switch {
		case showJSON:
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(note); err != nil {
				fatal("encoding JSON", err)
			}
		case showHTML:
			html, err := scribe.RenderHTML(note.Content)
			if err != nil {
				fatal("rendering note", err)
			}
			fmt.Print(html)
		default:
			fmt.Printf("# %s\n", note.Title)
			fmt.Printf("created %s, edited %s, id %s\n\n",
				core.FormatTimestamp(note.Created), core.FormatTimestamp(note.Edited), note.ID)
			fmt.Println(note.Content)
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
	showCmd.Flags().BoolVar(&showHTML, "html", false, "Render the content as HTML")
}

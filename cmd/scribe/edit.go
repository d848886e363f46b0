package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	editTitle   string
	editContent string
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit [ref]",
	Short: "Edit a note's title or content",
	Long: `Edit replaces the title and/or content of a note selected by position or ID.
Flags that are not given keep their current value. The creation time never changes.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		ws := openWorkspace(ctx)

		pos := resolveRef(ws, args[0])
		current, err := ws.Get(pos)
		if err != nil {
			fatal("reading note", err)
		}

		title, content := current.Title, current.Content
		if cmd.Flags().Changed("title") {
			title = editTitle
		}
		if cmd.Flags().Changed("content") {
			content = editContent
		}

		note, err := ws.Update(ctx, pos, title, content)
		if err != nil {
			fatal("updating note", err)
		}
		requireSaved(ws)

		fmt.Printf("Note updated: %d %s\n", pos, note.Title)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "New title")
	editCmd.Flags().StringVarP(&editContent, "content", "c", "", "New content")
}

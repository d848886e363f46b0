package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var newContent string

var newCmd = &cobra.Command{
	Use:   "new [title]",
	Short: "Create a note",
	Long:  `New appends a note with the given title and saves the collection.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		ws := openWorkspace(ctx)

		note, err := ws.Create(ctx, args[0], newContent)
		if err != nil {
			fatal("creating note", err)
		}
		requireSaved(ws)

		fmt.Printf("Note created: %d %s\n", ws.Len()-1, note.ID)
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVarP(&newContent, "content", "c", "", "Note content")
}

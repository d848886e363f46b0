package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [ref]",
	Short: "Delete a note",
	Long: `Delete permanently removes a note selected by position or ID.
Notes after it move up by one position.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		ws := openWorkspace(ctx)

		removed, err := ws.Delete(ctx, resolveRef(ws, args[0]))
		if err != nil {
			fatal("deleting note", err)
		}
		requireSaved(ws)

		fmt.Printf("Note deleted: %s\n", removed.Title)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/scribe/pkg/adapters/fs"
)

var importRoot string

var importCmd = &cobra.Command{
	Use:   "import [glob]",
	Short: "Import Markdown or text files as notes",
	Long: `Import appends one note per matching .md or .txt file under --root.
The title comes from the file's frontmatter "title" or its name; the body becomes the content.
Patterns use doublestar syntax, e.g. "journal/**/*.md".`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		notes, err := fs.Import(importRoot, args[0])
		if err != nil {
			fatal("importing files", err)
		}
		if len(notes) == 0 {
			fmt.Println("No files matched.")
			return
		}

		ws := openWorkspace(ctx)
		added := ws.Import(ctx, notes)
		if added > 0 {
			requireSaved(ws)
		}

		fmt.Printf("Imported %d of %d files.\n", added, len(notes))
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVar(&importRoot, "root", ".", "Directory the pattern is relative to")
}

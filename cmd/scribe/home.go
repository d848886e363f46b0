package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/scribe"
)

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Print the home text",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(scribe.ReadHome(cfg.HomeFile))
	},
}

func init() {
	rootCmd.AddCommand(homeCmd)
}

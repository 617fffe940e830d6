package cmd

import (
	"fmt"
	"os"

	"github.com/ashphythian/bayscraper/logger"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "bayscraper",
	Short:         "bayscraper ranks eBay search results by price including postage.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

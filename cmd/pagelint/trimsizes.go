package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/pagelint/productspec"
)

var trimSizesCmd = &cobra.Command{
	Use:   "trim-sizes",
	Short: "List the named trim sizes accepted by --trim-size",
	RunE:  runTrimSizes,
}

func init() {
	rootCmd.AddCommand(trimSizesCmd)
}

func runTrimSizes(cmd *cobra.Command, _ []string) error {
	for _, name := range productspec.TrimSizeNames() {
		ts := productspec.TrimSizes[name]
		fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s (%.2f x %.2f in)\n", name, ts.Name, ts.Width, ts.Height)
	}
	return nil
}

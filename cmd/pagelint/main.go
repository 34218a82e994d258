// Package main provides the pagelint command line interface.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pagelint",
	Short: "Layout-quality checks for rendered book interiors",
	Long: "Pagelint inspects a PDF's extracted page geometry for professional-typesetting " +
		"defects: stranded headings, split tables, excessive whitespace, orphans and widows, " +
		"runts, rivers, and low-resolution or RGB source images.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// exitCode is set by the check command from the analysis outcome:
// 0 clean, 1 warnings only, 2 errors found.
var exitCode int

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(3)
	}
	os.Exit(exitCode)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/pagelint"
	"github.com/tsawler/pagelint/cssfix"
	"github.com/tsawler/pagelint/report"
)

var checkCmd = &cobra.Command{
	Use:   "check <geometry.json>",
	Short: "Analyze a page-geometry dump for layout defects",
	Long: "Check runs the full detector pipeline over a page-geometry dump (the JSON " +
		"produced by the PDF inspection step) and prints a report. The process exits 0 " +
		"when clean, 1 for warnings only, 2 when errors are found, and 3 on fatal input " +
		"errors.",
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

var (
	checkJSON       bool
	checkMarkdown   bool
	checkStrict     bool
	checkFixCSS     string
	checkImagesDir  string
	checkTargetSpec string
	checkTrimSize   string
	checkMinDPI     float64
)

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Output report as JSON")
	checkCmd.Flags().BoolVar(&checkMarkdown, "markdown", false, "Output report as Markdown")
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "Exit 2 when any issue is found, not just errors")
	checkCmd.Flags().StringVar(&checkFixCSS, "fix-css", "", "Write suggested CSS fixes to this file")
	checkCmd.Flags().StringVar(&checkImagesDir, "images-dir", "", "Directory of source images to preflight")
	checkCmd.Flags().StringVar(&checkTargetSpec, "target-spec", "", "JSON target-spec file with page/margin geometry in mm")
	checkCmd.Flags().StringVar(&checkTrimSize, "trim-size", "", "Named trim size to derive geometry from (see trim-sizes)")
	checkCmd.Flags().Float64Var(&checkMinDPI, "min-dpi", 0, "Minimum image DPI for the preflight (default 300)")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if checkJSON && checkMarkdown {
		return fmt.Errorf("cannot use --json with --markdown")
	}
	if checkTargetSpec != "" && checkTrimSize != "" {
		return fmt.Errorf("cannot use --target-spec with --trim-size")
	}

	runner := pagelint.Check(args[0])
	if checkTargetSpec != "" {
		runner = runner.WithTargetSpec(checkTargetSpec)
	}
	if checkTrimSize != "" {
		runner = runner.WithTrimSize(checkTrimSize)
	}
	if checkImagesDir != "" {
		runner = runner.ImagesDir(checkImagesDir)
	}
	if checkMinDPI > 0 {
		runner = runner.MinDPI(checkMinDPI)
	}
	if checkStrict {
		runner = runner.Strict()
	}

	result, err := runner.Run()
	if err != nil {
		return err
	}

	switch {
	case checkJSON:
		out, err := report.JSON(result.Document.Path, result.Issues)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
	case checkMarkdown:
		fmt.Fprintln(cmd.OutOrStdout(), report.Markdown(result.Document.Path, result.Issues))
	default:
		fmt.Fprintln(cmd.OutOrStdout(), report.Console(result.Document.Path, result.Issues))
	}

	if checkFixCSS != "" {
		css := cssfix.Generate(result.Issues)
		if err := os.WriteFile(checkFixCSS, []byte(css+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write CSS fixes: %w", err)
		}
	}

	exitCode = result.ExitCode
	return nil
}

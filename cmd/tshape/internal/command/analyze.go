package command

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/viant/tshape/analyzer"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		file    string
		verbose bool
		strict  bool
	)
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a single template and print its TemplateAnalysis as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return fmt.Errorf("--file is required")
			}
			src, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			if verbose {
				fmt.Fprintf(os.Stderr, "analyzing %s (%d bytes)\n", file, len(src))
			}
			a := analyzer.New(analyzer.WithStrict(strict))
			result, err := a.Analyze(string(src))
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "template file to analyze")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "print progress diagnostics to stderr")
	cmd.Flags().BoolVar(&strict, "strict", false, "record notes for non-canonicalizable loop iterables")
	return cmd
}

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/viant/tshape/harness"
)

// reportFormat is a pflag.Value restricting --format to a closed set of
// report encodings.
type reportFormat string

func (f *reportFormat) String() string { return string(*f) }
func (f *reportFormat) Type() string   { return "format" }
func (f *reportFormat) Set(v string) error {
	switch v {
	case "json", "yaml":
		*f = reportFormat(v)
		return nil
	default:
		return fmt.Errorf("unsupported --format %q (want json or yaml)", v)
	}
}

var _ pflag.Value = (*reportFormat)(nil)

func newScanCmd() *cobra.Command {
	var (
		dir     string
		format  = reportFormat("json")
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan a directory of templates and report synthesized shape frequency",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				return fmt.Errorf("--dir is required")
			}
			if verbose {
				module := harness.ModuleName(cmd.Context(), dir)
				fmt.Fprintf(os.Stderr, "scanning %s (module %s)\n", dir, module)
			}
			h := harness.New()
			report, err := h.ScanDir(context.Background(), dir)
			if err != nil {
				return err
			}
			switch format {
			case "yaml":
				return report.WriteYAML(cmd.OutOrStdout())
			default:
				return report.WriteJSON(cmd.OutOrStdout())
			}
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "directory to scan for templates")
	cmd.Flags().Var(&format, "format", "report format: json or yaml")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "print progress diagnostics to stderr")
	return cmd
}

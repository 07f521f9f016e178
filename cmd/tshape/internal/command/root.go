// Package command builds the tshape cobra command tree.
package command

import (
	"github.com/spf13/cobra"
)

// New builds the root tshape command.
func New() *cobra.Command {
	root := &cobra.Command{
		Use:           "tshape",
		Short:         "Static variable-usage analyzer for Jinja-style templates",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newScanCmd())
	return root
}

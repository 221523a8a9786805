package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the release tag reported by the version command.
const Version = "0.1.0"

const modulePath = "github.com/emreozcan/pymetheus"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the pymetheus version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "pymetheus v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}

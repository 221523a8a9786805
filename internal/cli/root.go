// Package cli implements the pymetheus command-line interface: library
// discovery and creation, collection management, and item management.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emreozcan/pymetheus/internal/paths"
	"github.com/emreozcan/pymetheus/internal/sqlite"
)

// exitError is the exit code for any failed command; a missing library is
// the only fatal startup condition.
const exitError = 1

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	library string
}

var flags rootFlags

// NewRootCmd creates the top-level "pymetheus" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pymetheus",
		Short: "A personal bibliographic reference manager",
		Long: "Pymetheus manages a personal library of bibliographic items,\n" +
			"grouped into collections, stored in a single SQLite file.",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&flags.library, "library", "L", "",
		"path to the library to use (file or containing directory)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newCollectionsCmd())
	root.AddCommand(newItemsCmd())

	return root
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitError)
	}
}

// openLibrary locates and opens the library following the precedence
// chain: --library flag, config.yaml, default data directory, CWD.
func openLibrary() (*sqlite.Library, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	path, err := paths.FindLibrary(flags.library, cfg.GetString(cfgKeyLibrary))
	if err != nil {
		return nil, fmt.Errorf("locate library: %w", err)
	}
	return sqlite.Open(path)
}

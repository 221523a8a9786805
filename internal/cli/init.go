package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/emreozcan/pymetheus/internal/paths"
	"github.com/emreozcan/pymetheus/internal/sqlite"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [PATH]",
		Short: "Create a new library",
		Long: "Create a new library database. PATH may name the database file or a\n" +
			"directory to place pymetheus.sqlite in; it defaults to the current\n" +
			"working directory. The location is recorded in config.yaml unless a\n" +
			"configuration already exists.",
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}

	path, err := resolveInitPath(target)
	if err != nil {
		return err
	}

	lib, err := sqlite.Create(path)
	if err != nil {
		return err
	}
	defer lib.Close()

	if err := writeConfigIfMissing(path); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created library %s\n", path)
	return nil
}

// resolveInitPath turns the init target into a database file path. A
// directory (existing or trailing-separator) gets pymetheus.sqlite
// appended.
func resolveInitPath(target string) (string, error) {
	abs, err := filepath.Abs(target)
	if err != nil {
		return "", err
	}
	if info, err := os.Stat(abs); err == nil && info.IsDir() {
		return filepath.Join(abs, paths.LibraryFileName), nil
	}
	return abs, nil
}

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mhr3/cstring/internal/logging"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the cstrcheck command tree.
func NewRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "cstrcheck",
		Short: "Exercise nul-terminated strings, pattern search and case folding",
		Long: `cstrcheck drives the cstr and ascii packages from the command line.

Commands:
  fold    - convert the case of stdin line by line
  search  - print every step of a pattern search
  verify  - check every lane width against the scalar case folding`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			service := cmd.Root().Name()
			logging.Init(service)
			if verbose {
				slog.SetDefault(logging.New(os.Stderr, false, slog.LevelDebug).With("service", service))
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging on stderr")

	root.AddCommand(newFoldCmd())
	root.AddCommand(newSearchCmd())
	root.AddCommand(newVerifyCmd())
	return root
}

func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

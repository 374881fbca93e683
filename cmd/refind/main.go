package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chazuruo/refind/internal/cli"
	xerrors "github.com/chazuruo/refind/internal/errors"
)

// Version is set at build time using ldflags
var Version = "dev"

// Commit is set at build time using ldflags
var Commit = "unknown"

// Date is set at build time using ldflags
var Date = "unknown"

// Exit statuses for the shell integration: 0 means a selection was
// printed, 1 means the search was canceled and the line buffer should be
// left untouched, 2 means refind could not run at all.
const (
	exitSelected = 0
	exitCanceled = 1
	exitError    = 2
)

func main() {
	searchOpts := &cli.SearchOptions{}

	rootCmd := &cobra.Command{
		Use:   "refind",
		Short: "Interactive fuzzy search over shell command history",
		Long: `refind is an incremental fuzzy finder for shell history, meant to be
bound to ctrl-r. It reads the shell's history store, ranks entries live
as you type, and prints the confirmed command to stdout so the shell
integration can splice it into the current line.

Run "refind hook <shell>" to print the key-binding script.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunSearch(searchOpts)
		},
	}

	// Add global flags
	cli.AddGlobalFlags(rootCmd)
	cli.AddSearchFlags(rootCmd, searchOpts)

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add subcommands
	rootCmd.AddCommand(cli.NewListCommand())
	rootCmd.AddCommand(cli.NewExportCommand())
	rootCmd.AddCommand(cli.NewHookCommand())
	rootCmd.AddCommand(cli.NewVersionCommand(Version, Commit, Date))

	if err := rootCmd.Execute(); err != nil {
		if xerrors.IsCanceled(err) {
			// Nothing was selected; not an error worth reporting.
			os.Exit(exitCanceled)
		}
		fmt.Fprintf(os.Stderr, "refind: %v\n", err)
		os.Exit(exitError)
	}
	os.Exit(exitSelected)
}

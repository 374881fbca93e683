// Package cli provides Cobra command definitions for refind.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/chazuruo/refind/internal/history"
	"github.com/chazuruo/refind/internal/shellhook"
)

// HookOptions contains the options for the hook command.
type HookOptions struct {
	Binary string
}

// NewHookCommand creates the hook command.
func NewHookCommand() *cobra.Command {
	opts := &HookOptions{}

	cmd := &cobra.Command{
		Use:   "hook [shell]",
		Short: "Print the shell key-binding integration script",
		Long: `Print the script that binds ctrl-r to refind for your shell.

The script reads the current line buffer, runs the interactive search
with it as the seed query, and splices the selection back into the line
only when a command was confirmed. Cancellation leaves the line
untouched.

Add to your shell startup file:

  bash:  eval "$(refind hook bash)"      # ~/.bashrc
  zsh:   eval "$(refind hook zsh)"       # ~/.zshrc
  fish:  refind hook fish | source       # ~/.config/fish/config.fish

With no argument, an interactive prompt asks which shell (or the shell
is detected from $SHELL with --no-tui).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := ""
			if len(args) == 1 {
				shell = args[0]
			}
			return runHook(opts, shell)
		},
	}

	cmd.Flags().StringVar(&opts.Binary, "binary", "refind", "refind executable name or path used inside the hook")

	return cmd
}

func runHook(opts *HookOptions, shell string) error {
	if shell == "" {
		selected, err := selectShell()
		if err != nil {
			return err
		}
		shell = selected
	}

	gen := shellhook.NewHookGenerator(opts.Binary)
	script, err := gen.Script(shell)
	if err != nil {
		return err
	}

	fmt.Print(script)
	return nil
}

// selectShell resolves the target shell when no argument was given:
// detection in scripted mode, a select form otherwise.
func selectShell() (string, error) {
	if IsNoTUI() || !term.IsTerminal(int(os.Stdin.Fd())) {
		shell := history.DetectShell()
		for _, supported := range shellhook.Shells() {
			if shell == supported {
				return shell, nil
			}
		}
		return "", fmt.Errorf("could not detect a supported shell from $SHELL (got %q)", shell)
	}

	var shell string
	options := make([]huh.Option[string], 0, len(shellhook.Shells()))
	for _, s := range shellhook.Shells() {
		options = append(options, huh.NewOption(s, s))
	}

	if err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which shell should the binding target?").
				Options(options...).
				Value(&shell),
		),
	).Run(); err != nil {
		return "", fmt.Errorf("form error: %w", err)
	}

	return shell, nil
}

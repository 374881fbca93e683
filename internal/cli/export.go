// Package cli provides Cobra command definitions for refind.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/chazuruo/refind/internal/history"
)

// ExportOptions contains the options for the export command.
type ExportOptions struct {
	ConfigPath string
	HistFile   string
	Shell      string
	Limit      int
	Format     string
	Out        string
}

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	opts := &ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export deduplicated history to YAML or JSON",
		Long: `Export the deduplicated command history in a structured format.

The history store itself is never written; export reads the same entry
list the interactive search uses and writes it to stdout or a file.

Supported formats:
- yaml (default)
- json

Examples:
  refind export                      # Export as YAML to stdout
  refind export --format json        # Export as JSON
  refind export --out history.yaml   # Export to file`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().StringVar(&opts.HistFile, "histfile", "", "history file path (default: auto-detect)")
	cmd.Flags().StringVar(&opts.Shell, "shell", "", "history format: bash, zsh, or fish (default: $SHELL)")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 0, "maximum number of entries (0 = all)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "yaml", "output format (yaml, json)")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "-", "output path (default: stdout)")

	return cmd
}

// exportEntry is the serialized form of a history entry.
type exportEntry struct {
	Rank      int        `json:"rank" yaml:"rank"`
	Command   string     `json:"command" yaml:"command"`
	Timestamp *time.Time `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
}

func runExport(opts *ExportOptions) error {
	entries, err := loadEntries(opts.ConfigPath, opts.HistFile, opts.Shell, opts.Limit)
	if err != nil {
		return err
	}

	data, err := marshalEntries(entries, opts.Format)
	if err != nil {
		return err
	}

	if opts.Out == "-" || opts.Out == "" {
		_, err = os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(opts.Out, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.Out, err)
	}
	return nil
}

// marshalEntries serializes entries in the requested format.
func marshalEntries(entries []history.Entry, format string) ([]byte, error) {
	out := make([]exportEntry, 0, len(entries))
	for _, entry := range entries {
		ee := exportEntry{Rank: entry.Rank, Command: entry.Command}
		if !entry.Timestamp.IsZero() {
			ts := entry.Timestamp
			ee.Timestamp = &ts
		}
		out = append(out, ee)
	}

	switch format {
	case "yaml":
		return yaml.Marshal(out)
	case "json":
		return json.MarshalIndent(out, "", "  ")
	default:
		return nil, fmt.Errorf("unknown format: %s (supported: yaml, json)", format)
	}
}

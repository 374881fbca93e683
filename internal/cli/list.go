// Package cli provides Cobra command definitions for refind.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/chazuruo/refind/internal/history"
)

// OutputFormat defines the output format for the list command.
type OutputFormat string

const (
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
	FormatPlain OutputFormat = "plain"
)

// ListOptions contains the options for the list command.
type ListOptions struct {
	ConfigPath string
	HistFile   string
	Shell      string
	Limit      int
	Format     string
}

// NewListCommand creates the list command for dumping the deduplicated history.
func NewListCommand() *cobra.Command {
	opts := &ListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List deduplicated history entries by recency",
		Long: `List the deduplicated command history, most recent first.

Each command appears once, at the recency of its most recent use. This is
the same entry list the interactive search ranks, useful for checking
what refind sees without entering the UI.

Examples:
  refind list                    # List all entries in table format
  refind list -n 20              # List the 20 most recent entries
  refind list --format plain     # One command per line
  refind list --format json      # JSON output`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().StringVar(&opts.HistFile, "histfile", "", "history file path (default: auto-detect)")
	cmd.Flags().StringVar(&opts.Shell, "shell", "", "history format: bash, zsh, or fish (default: $SHELL)")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 0, "maximum number of entries (0 = all)")
	cmd.Flags().StringVar(&opts.Format, "format", "table", "output format (table, json, plain)")

	return cmd
}

func runList(opts *ListOptions) error {
	entries, err := loadEntries(opts.ConfigPath, opts.HistFile, opts.Shell, opts.Limit)
	if err != nil {
		return err
	}

	switch OutputFormat(opts.Format) {
	case FormatTable:
		return listTable(entries)
	case FormatJSON:
		return listJSON(entries)
	case FormatPlain:
		return listPlain(entries)
	default:
		return fmt.Errorf("unknown format: %s (supported: table, json, plain)", opts.Format)
	}
}

// listTable prints entries as a rank/age/command table.
func listTable(entries []history.Entry) error {
	tbl := table.New("RANK", "AGE", "COMMAND")

	for _, entry := range entries {
		age := ""
		if !entry.Timestamp.IsZero() {
			age = humanize.Time(entry.Timestamp)
		}
		tbl.AddRow(entry.Rank, age, oneLine(entry.Command))
	}

	tbl.Print()
	return nil
}

// listJSON prints entries as a JSON array.
func listJSON(entries []history.Entry) error {
	type jsonEntry struct {
		Rank      int        `json:"rank"`
		Command   string     `json:"command"`
		Timestamp *time.Time `json:"timestamp,omitempty"`
	}

	out := make([]jsonEntry, 0, len(entries))
	for _, entry := range entries {
		je := jsonEntry{Rank: entry.Rank, Command: entry.Command}
		if !entry.Timestamp.IsZero() {
			ts := entry.Timestamp
			je.Timestamp = &ts
		}
		out = append(out, je)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// listPlain prints one command per line, most recent first.
func listPlain(entries []history.Entry) error {
	for _, entry := range entries {
		fmt.Println(oneLine(entry.Command))
	}
	return nil
}

// oneLine flattens multi-line commands for single-row display.
func oneLine(cmd string) string {
	return strings.ReplaceAll(cmd, "\n", " ")
}

// loadEntries is the shared non-interactive load path for list and export.
func loadEntries(configPath, histFile, shell string, limit int) ([]history.Entry, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	entries, err := history.Load(history.LoadOptions{
		Path:  firstNonEmpty(histFile, cfg.History.File),
		Shell: firstNonEmpty(shell, cfg.History.Shell),
		Filter: history.FilterOptions{
			SkipPrefixes: cfg.History.SkipPrefixes,
			MinLength:    cfg.History.MinLength,
		},
		Limit: cfg.History.Limit,
	})
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/tf1999tf/pdf-alert-processor/internal/journal"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent conversions from the journal",
	Long: `History lists the most recent entries of the conversion journal, newest
first. Each entry records the source PDF, the output file, and whether the
file was converted, skipped, or failed.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	format, _ := cmd.Flags().GetString("format")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if _, err := os.Stat(cfg.Journal.Path); err != nil {
		return fmt.Errorf("no journal at %s: %w", cfg.Journal.Path, err)
	}

	store, err := journal.Open(cfg.Journal.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Recent(context.Background(), limit)
	if err != nil {
		return err
	}
	return formatHistory(os.Stdout, entries, format)
}

func formatHistory(w io.Writer, entries []journal.Entry, format string) error {
	switch format {
	case "text", "":
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	default:
		return fmt.Errorf("unsupported format %q: use text, yaml, or json", format)
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "No conversions recorded.")
		return nil
	}

	fmt.Fprintf(w, "%-19s  %-9s  %-40s  %s\n", "Time", "Status", "Source", "Output")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for _, e := range entries {
		source := e.Source
		if len(source) > 40 {
			source = source[:37] + "..."
		}
		output := e.Output
		if output == "" {
			output = e.Reason
		}
		fmt.Fprintf(w, "%-19s  %-9s  %-40s  %s\n",
			e.RecordedAt.Local().Format("2006-01-02 15:04:05"), e.Status, source, output)
	}
	fmt.Fprintf(w, "\n%d entries\n", len(entries))
	return nil
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum entries to show")
	historyCmd.Flags().String("format", "text", "output format: text, yaml, or json")

	rootCmd.AddCommand(historyCmd)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/tf1999tf/pdf-alert-processor/internal/bulletin"
	"github.com/tf1999tf/pdf-alert-processor/internal/extract"
	"github.com/tf1999tf/pdf-alert-processor/internal/naming"
	"github.com/tf1999tf/pdf-alert-processor/pkg/types"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <pdf>",
	Short: "Parse one bulletin PDF and print the result without writing it",
	Long: `Inspect extracts the text of a single PDF, applies the bulletin rules and
prints the output filename together with the parsed record. Nothing is
written to the output folder and the journal is not touched.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

// inspection is the printable result of inspecting one PDF.
type inspection struct {
	Source string               `json:"source" yaml:"source"`
	Output string               `json:"output" yaml:"output"`
	Record types.BulletinRecord `json:"record" yaml:"record"`
	Empty  bool                 `json:"empty_body,omitempty" yaml:"empty_body,omitempty"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ex, err := extract.New(cfg.Extractor)
	if err != nil {
		return err
	}

	path := args[0]
	text, err := ex.Extract(path)
	if err != nil {
		return err
	}

	rec := bulletin.Parse(text)
	in := inspection{
		Source: filepath.Base(path),
		Output: naming.OutputName(filepath.Base(path), rec.WarningNumber),
		Record: rec,
		Empty:  rec.Body == "",
	}
	return formatInspection(os.Stdout, in, format)
}

func formatInspection(w io.Writer, in inspection, format string) error {
	switch format {
	case "text", "":
		fmt.Fprintf(w, "%s -> %s\n\n", in.Source, in.Output)
		if in.Empty {
			fmt.Fprintln(w, "no bulletin content found, would be skipped")
			return nil
		}
		fmt.Fprintln(w, in.Record.Text())
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(in); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(in)
	default:
		return fmt.Errorf("unsupported format %q: use text, yaml, or json", format)
	}
}

func init() {
	inspectCmd.Flags().String("format", "text", "output format: text, yaml, or json")

	rootCmd.AddCommand(inspectCmd)
}

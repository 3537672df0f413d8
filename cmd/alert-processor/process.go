// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Convert every unprocessed PDF in the input folder once",
	Long: `Process scans the input folder a single time, converts each bulletin PDF
into a ZUGY_<time>_<number>.txt file in the output folder, and exits.
Interrupting the command stops it between files.`,
	RunE: runProcess,
}

func runProcess(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := a.proc.ProcessAll(ctx)
	if err != nil {
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", result.Failed)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(processCmd)
}

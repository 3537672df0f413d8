// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tf1999tf/pdf-alert-processor/internal/monitor"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Watch the input folder and convert new bulletins as they arrive",
	Long: `Monitor converts the PDFs already in the input folder, then rescans it on a
fixed interval and converts each newly discovered bulletin. With file
notifications enabled a new PDF also ends the wait early.

SIGINT or SIGTERM requests a stop; the monitor finishes the current file
and exits.`,
	RunE: runMonitor,
}

func runMonitor(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	m := monitor.New(a.proc, monitor.Options{
		Config: a.cfg.Monitor,
		Log:    a.log,
		Status: func(s string) {
			a.zl.Debug("status", zap.String("status", s))
		},
	})

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-sig:
			m.Stop()
		case <-done:
		}
	}()

	return m.Run(cmd.Context())
}

func init() {
	monitorCmd.Flags().Duration("poll-step", 0, "granularity of stop checks while waiting (default 500ms)")
	monitorCmd.Flags().Int("poll-steps", 0, "number of steps per polling interval (default 5)")
	monitorCmd.Flags().Bool("notify", true, "end the wait early when a PDF appears in the folder")

	bindFlag("monitor.poll_step", monitorCmd.Flags().Lookup("poll-step"))
	bindFlag("monitor.poll_steps", monitorCmd.Flags().Lookup("poll-steps"))
	bindFlag("monitor.notify", monitorCmd.Flags().Lookup("notify"))

	rootCmd.AddCommand(monitorCmd)
}

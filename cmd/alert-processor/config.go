// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tf1999tf/pdf-alert-processor/pkg/types"
)

// bindFlag ties a viper key to a command-line flag.
func bindFlag(key string, f *pflag.Flag) {
	if err := viper.BindPFlag(key, f); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", key, err))
	}
}

// setDefaults registers every config key so that environment variables
// and config files can override it.
func setDefaults(d types.Config) {
	viper.SetDefault("input_dir", d.InputDir)
	viper.SetDefault("output_dir", d.OutputDir)
	viper.SetDefault("extractor.backend", string(d.Extractor.Backend))
	viper.SetDefault("extractor.pdftotext", d.Extractor.Pdftotext)
	viper.SetDefault("monitor.poll_step", d.Monitor.PollStep)
	viper.SetDefault("monitor.poll_steps", d.Monitor.PollSteps)
	viper.SetDefault("monitor.notify", d.Monitor.Notify)
	viper.SetDefault("journal.enabled", d.Journal.Enabled)
	viper.SetDefault("journal.path", d.Journal.Path)
	viper.SetDefault("log.level", d.Log.Level)
	viper.SetDefault("log.format", d.Log.Format)
}

// loadConfig decodes the merged flag, environment, file and default values.
func loadConfig() (types.Config, error) {
	cfg := types.DefaultConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding configuration: %w", err)
	}
	return cfg, nil
}

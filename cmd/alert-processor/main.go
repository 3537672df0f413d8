// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the alert-processor CLI, which turns
// ZUGY weather-warning bulletin PDFs into plain-text artifacts.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tf1999tf/pdf-alert-processor/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// configName is the base name of the config file searched in the working
// directory and in ~/.config/alert-processor.
const configName = "alert-processor"

// rootCmd is the base command for the alert-processor CLI.
var rootCmd = &cobra.Command{
	Use:   "alert-processor",
	Short: "Convert Guiyang Longdongbao airport weather-warning PDFs to text",
	Long: `alert-processor reads weather-warning bulletins issued for ZUGY from a PDF
folder, extracts the title, bureau, sequence number, issue time and body, and
writes one ZUGY_<time>_<number>.txt file per bulletin into a TXT folder.

Use "process" for a single pass over the folder and "monitor" to keep
watching it for new bulletins.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", fmt.Sprintf("config file (default: ./%[1]s.yaml or ~/.config/%[1]s/%[1]s.yaml)", configName))
	flags.String("input-dir", types.DefaultInputDir, "folder scanned for bulletin PDFs")
	flags.String("output-dir", types.DefaultOutputDir, "folder receiving the text artifacts")
	flags.String("backend", string(types.BackendNative), "text extraction backend: native or pdftotext")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-format", "console", "log format: console or json")

	bindFlag("input_dir", flags.Lookup("input-dir"))
	bindFlag("output_dir", flags.Lookup("output-dir"))
	bindFlag("extractor.backend", flags.Lookup("backend"))
	bindFlag("log.level", flags.Lookup("log-level"))
	bindFlag("log.format", flags.Lookup("log-format"))
}

func initConfig() {
	setDefaults(types.DefaultConfig())

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(configName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", configName))
		}
	}

	viper.SetEnvPrefix("ALERT_PROCESSOR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

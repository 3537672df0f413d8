// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ExtractorBackend identifies the tool that pulls text out of a PDF.
type ExtractorBackend string

const (
	BackendNative    ExtractorBackend = "native"
	BackendPdftotext ExtractorBackend = "pdftotext"
)

// ExtractorConfig holds settings for the text extraction stage.
type ExtractorConfig struct {
	// Backend selects the extractor: native (pure Go) or pdftotext (poppler binary).
	Backend ExtractorBackend `json:"backend" yaml:"backend" mapstructure:"backend"`

	// Pdftotext is the binary name or absolute path used by the pdftotext backend.
	Pdftotext string `json:"pdftotext" yaml:"pdftotext" mapstructure:"pdftotext"`
}

// MonitorConfig holds settings for the folder monitor.
type MonitorConfig struct {
	// PollStep is the granularity at which a stop request is observed (default 500ms).
	PollStep time.Duration `json:"poll_step" yaml:"poll_step" mapstructure:"poll_step"`

	// PollSteps is the number of steps in one polling interval (default 5).
	PollSteps int `json:"poll_steps" yaml:"poll_steps" mapstructure:"poll_steps"`

	// Notify enables filesystem notifications that end a wait early when a PDF appears.
	Notify bool `json:"notify" yaml:"notify" mapstructure:"notify"`
}

// Interval returns the full wait between two folder scans.
func (c MonitorConfig) Interval() time.Duration {
	step, steps := c.PollStep, c.PollSteps
	if step <= 0 {
		step = DefaultPollStep
	}
	if steps <= 0 {
		steps = DefaultPollSteps
	}
	return step * time.Duration(steps)
}

// JournalConfig holds settings for the SQLite conversion journal.
type JournalConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled" mapstructure:"enabled"`
	Path    string `json:"path" yaml:"path" mapstructure:"path"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is console or json.
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// Config groups every setting of the processor.
type Config struct {
	// InputDir is the folder scanned for *.pdf bulletins.
	InputDir string `json:"input_dir" yaml:"input_dir" mapstructure:"input_dir"`

	// OutputDir is the folder receiving ZUGY_*.txt artifacts.
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	Extractor ExtractorConfig `json:"extractor" yaml:"extractor" mapstructure:"extractor"`
	Monitor   MonitorConfig   `json:"monitor" yaml:"monitor" mapstructure:"monitor"`
	Journal   JournalConfig   `json:"journal" yaml:"journal" mapstructure:"journal"`
	Log       LogConfig       `json:"log" yaml:"log" mapstructure:"log"`
}

const (
	DefaultInputDir  = "PDF"
	DefaultOutputDir = "TXT"
	DefaultPollStep  = 500 * time.Millisecond
	DefaultPollSteps = 5
)

// DefaultConfig returns the settings used when no config file, flag, or
// environment variable overrides them.
func DefaultConfig() Config {
	return Config{
		InputDir:  DefaultInputDir,
		OutputDir: DefaultOutputDir,
		Extractor: ExtractorConfig{
			Backend:   BackendNative,
			Pdftotext: "pdftotext",
		},
		Monitor: MonitorConfig{
			PollStep:  DefaultPollStep,
			PollSteps: DefaultPollSteps,
			Notify:    true,
		},
		Journal: JournalConfig{
			Enabled: true,
			Path:    "alert-journal.db",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

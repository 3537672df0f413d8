// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// DefaultWarningNumber is used when a bulletin states no sequence number.
const DefaultWarningNumber = "01"

// BulletinRecord is the normalized content of one weather-warning bulletin.
// Empty fields were not found in the source text and produce no output line.
type BulletinRecord struct {
	// Title is the fixed bulletin title phrase.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Bureau is the fixed issuing-bureau phrase.
	Bureau string `json:"bureau,omitempty" yaml:"bureau,omitempty"`

	// SequenceLine is the normalized "预警发布序号：N" line.
	SequenceLine string `json:"sequence_line,omitempty" yaml:"sequence_line,omitempty"`

	// IssueTimeLine is the normalized "发布时间：…" line.
	IssueTimeLine string `json:"issue_time_line,omitempty" yaml:"issue_time_line,omitempty"`

	// Body has no spaces or line breaks and ends with exactly one "。".
	Body string `json:"body,omitempty" yaml:"body,omitempty"`

	// WarningNumber is the captured sequence number, or DefaultWarningNumber.
	WarningNumber string `json:"warning_number" yaml:"warning_number"`
}

// Lines returns the non-empty output lines in their fixed order.
func (r BulletinRecord) Lines() []string {
	var lines []string
	for _, l := range []string{r.Title, r.Bureau, r.SequenceLine, r.IssueTimeLine, r.Body} {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// Text joins the output lines with a single line feed.
func (r BulletinRecord) Text() string {
	return strings.Join(r.Lines(), "\n")
}

// Reason classifies why a file was not converted. The zero value means it was.
type Reason string

const (
	ReasonNone             Reason = ""
	ReasonExtractionFailed Reason = "extraction-failed"
	ReasonEmptyBody        Reason = "empty-body"
	ReasonWriteFailed      Reason = "write-failed"
)

// Outcome is the result of processing one source PDF.
type Outcome struct {
	// Source is the basename of the input PDF.
	Source string `json:"source" yaml:"source"`

	// Output is the derived output filename; empty when nothing was written.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// Record is the parsed bulletin; nil when extraction failed.
	Record *BulletinRecord `json:"record,omitempty" yaml:"record,omitempty"`

	Reason Reason `json:"reason,omitempty" yaml:"reason,omitempty"`

	// Err carries the underlying failure for extraction and write failures.
	Err error `json:"-" yaml:"-"`
}

// OK reports whether the file was converted and written.
func (o Outcome) OK() bool {
	return o.Reason == ReasonNone
}

// MonitorState is the lifecycle state of a folder monitor.
type MonitorState int

const (
	MonitorIdle MonitorState = iota
	MonitorRunning
	MonitorStopRequested
	MonitorStopped
)

func (s MonitorState) String() string {
	switch s {
	case MonitorIdle:
		return "idle"
	case MonitorRunning:
		return "running"
	case MonitorStopRequested:
		return "stop-requested"
	case MonitorStopped:
		return "stopped"
	}
	return "unknown"
}

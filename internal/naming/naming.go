// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package naming derives the canonical output filename of a converted
// bulletin from its source filename and warning sequence number.
package naming

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"
)

const (
	// SourceMarker precedes the 14-digit issue timestamp in source filenames.
	SourceMarker = "9_FCST_C_ZUGY_"

	// UnknownTime replaces the timestamp when it is absent or invalid.
	UnknownTime = "unknown_time"

	sourceLayout = "20060102150405"
	outputLayout = "20060102_150405"
)

// \d is Unicode-aware here; non-ASCII digits match the shape but fail to
// parse and fall back to UnknownTime.
var timestampRe = regexp2.MustCompile(regexp2.Escape(SourceMarker)+`(\d{14})`, regexp2.None)

// TimestampToken returns the source timestamp reformatted as
// YYYYMMDD_HHMMSS, or UnknownTime. It never fails.
func TimestampToken(basename string) string {
	m, err := timestampRe.FindStringMatch(basename)
	if err != nil || m == nil {
		return UnknownTime
	}
	ts, err := time.Parse(sourceLayout, m.GroupByNumber(1).String())
	if err != nil {
		return UnknownTime
	}
	return ts.Format(outputLayout)
}

// OutputName returns ZUGY_<timestamp>_<warningNumber>.txt for a source file.
func OutputName(basename, warningNumber string) string {
	return fmt.Sprintf("ZUGY_%s_%s.txt", TimestampToken(basename), warningNumber)
}

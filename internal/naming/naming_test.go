// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimestampToken(t *testing.T) {
	tests := []struct {
		name     string
		basename string
		want     string
	}{
		{name: "valid timestamp", basename: "Z_9_FCST_C_ZUGY_20240115083000_P.pdf", want: "20240115_083000"},
		{name: "first match wins", basename: "9_FCST_C_ZUGY_20240601120000_9_FCST_C_ZUGY_20250101000000.pdf", want: "20240601_120000"},
		{name: "longer digit run uses first 14", basename: "9_FCST_C_ZUGY_2024060112000099.pdf", want: "20240601_120000"},
		{name: "missing marker", basename: "20240115083000.pdf", want: UnknownTime},
		{name: "too few digits", basename: "9_FCST_C_ZUGY_2024011508.pdf", want: UnknownTime},
		{name: "invalid calendar day", basename: "9_FCST_C_ZUGY_20240230120000.pdf", want: UnknownTime},
		{name: "invalid hour", basename: "9_FCST_C_ZUGY_20240115250000.pdf", want: UnknownTime},
		{name: "full-width digits", basename: "9_FCST_C_ZUGY_２０２４０１１５０８３０００.pdf", want: UnknownTime},
		{name: "empty", basename: "", want: UnknownTime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TimestampToken(tt.basename))
		})
	}
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "ZUGY_20240601_120000_03.txt", OutputName("9_FCST_C_ZUGY_20240601120000_test.pdf", "03"))
	assert.Equal(t, "ZUGY_unknown_time_01.txt", OutputName("bulletin.pdf", "01"))
}

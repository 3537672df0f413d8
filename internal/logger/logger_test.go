// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tf1999tf/pdf-alert-processor/pkg/types"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     types.LogConfig
		wantErr bool
	}{
		{name: "console default level", cfg: types.LogConfig{Format: "console"}},
		{name: "json debug", cfg: types.LogConfig{Format: "json", Level: "debug"}},
		{name: "bad level", cfg: types.LogConfig{Level: "loud"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestSink_MapsLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := Sink(zap.New(core))

	log("created folder", Info)
	log("no PDF files found", Warning)
	log("write failed", Error)

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "write failed", entries[2].Message)
}

func TestSink_NilLogger(t *testing.T) {
	log := Sink(nil)
	assert.NotPanics(t, func() { log("ignored", Error) })
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/doc-manager/pkg/types"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		cfg       types.LogConfig
		wantDebug bool
		wantWarn  bool
		errMsg    string
	}{
		{name: "default level is warn", cfg: types.LogConfig{}, wantWarn: true},
		{name: "debug level", cfg: types.LogConfig{Level: "debug"}, wantDebug: true, wantWarn: true},
		{name: "error level", cfg: types.LogConfig{Level: "error"}},
		{name: "invalid level", cfg: types.LogConfig{Level: "loud"}, errMsg: "parsing log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log, err := New(tt.cfg, &buf)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)

			log.Debug("debug-line")
			log.Warn("warn-line")
			require.NoError(t, log.Sync())

			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("debug-line")))
			assert.Equal(t, tt.wantWarn, bytes.Contains(buf.Bytes(), []byte("warn-line")))
		})
	}
}

func TestNewNilWriter(t *testing.T) {
	log, err := New(types.LogConfig{Level: "debug"}, nil)
	require.NoError(t, err)
	log.Info("dropped")
}

package logging

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommonLogger(t *testing.T) {
	l, err := CommonLogger(NewConfig(`tests`))
	require.NoError(t, err)
	require.NotNil(t, l)

	// Debug is the configured minimum level.
	require.True(t, l.Enabled(nil, slog.LevelDebug))
}

func TestCommonLoggerNilConfig(t *testing.T) {
	l, err := CommonLogger(nil)
	require.Error(t, err)
	require.Nil(t, l)
}

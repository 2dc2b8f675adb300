package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestNewParsesLevel(t *testing.T) {
	log, err := New(&Config{Level: "warn"})
	require.NoError(t, err)

	impl, ok := log.(*loggerImpl)
	require.True(t, ok)
	require.Equal(t, zerolog.WarnLevel, impl.logger.GetLevel())
}

func TestNewDebugOverridesLevel(t *testing.T) {
	log, err := New(&Config{Level: "error", Debug: true})
	require.NoError(t, err)

	impl, ok := log.(*loggerImpl)
	require.True(t, ok)
	require.Equal(t, zerolog.DebugLevel, impl.logger.GetLevel())
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(&Config{Level: "verbose"})
	require.Error(t, err)
}

func TestSetDebug(t *testing.T) {
	log, err := New(&Config{})
	require.NoError(t, err)

	log.SetDebug(true)

	impl, ok := log.(*loggerImpl)
	require.True(t, ok)
	require.Equal(t, zerolog.DebugLevel, impl.logger.GetLevel())

	log.SetDebug(false)
	require.Equal(t, zerolog.InfoLevel, impl.logger.GetLevel())
}

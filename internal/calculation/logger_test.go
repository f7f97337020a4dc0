package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_ImplementsLogger(t *testing.T) {
	var _ Logger = NewZapLogger(nil)
	var _ Logger = NopLogger{}
}

func TestZapLogger_WritesThroughToZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewZapLogger(zap.New(core))

	logger.Infof("scenario %q projected", "Kauf")
	logger.Warnf("stopped after %d years", 80)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, `scenario "Kauf" projected`, entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "stopped after 80 years", entries[1].Message)
}

package helpers

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSetupLoggerLevels(t *testing.T) {
	testcases := []struct {
		name     string
		level    config.LogLevel
		expected logrus.Level
	}{
		{name: "Debug", level: config.Debug, expected: logrus.DebugLevel},
		{name: "Trace", level: config.Trace, expected: logrus.TraceLevel},
		{name: "Info", level: config.Info, expected: logrus.InfoLevel},
		{name: "Invalid", level: config.LogLevel("verbose"), expected: logrus.GetLevel()},
		{name: "Unset", level: "", expected: logrus.GetLevel()},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			logger := SetupLogger(tc.level, "registry", "test")
			assert.Equal(t, tc.expected, logger.Logger.GetLevel())
			assert.Equal(t, "registry", logger.Data["service"])
			assert.Equal(t, "test", logger.Data["subsystem"])
		})
	}
}

func TestSetupLoggerNoneDiscardsOutput(t *testing.T) {
	logger := SetupLogger(config.None, "registry", "test")
	assert.Equal(t, io.Discard, logger.Logger.Out)
}

func TestConfigureLoggerAddsContextFields(t *testing.T) {
	logger := SetupLogger(config.Debug, "registry", "test")
	var buf bytes.Buffer
	logger.Logger.SetOutput(&buf)

	ctx := context.WithValue(context.Background(), RegistryContextKeySource, "cli")
	ctx = context.WithValue(ctx, RegistryContextKeyRequestID, "req-1")

	lFunc := ConfigureLogger(ctx, logger)
	assert.Equal(t, "cli", lFunc.Data["src"])
	assert.Equal(t, "req-1", lFunc.Data["req-id"])

	lFunc.Infof("hello")
	assert.True(t, strings.Contains(buf.String(), "hello"))
}

func TestConfigureLoggerGeneratesRequestID(t *testing.T) {
	logger := SetupLogger(config.Debug, "registry", "test")

	lFunc := ConfigureLogger(context.Background(), logger)
	reqID, ok := lFunc.Data["req-id"].(string)
	assert.True(t, ok)
	assert.True(t, strings.HasPrefix(reqID, "unset."))
}

func TestConfigureLoggerSkipsRequestIDBelowDebug(t *testing.T) {
	logger := SetupLogger(config.Info, "registry", "test")

	lFunc := ConfigureLogger(InitContext("cli"), logger)
	_, ok := lFunc.Data["req-id"]
	assert.False(t, ok)
	assert.Equal(t, "cli", lFunc.Data["src"])
}

func TestInitContext(t *testing.T) {
	ctx := InitContext("")
	reqID, ok := ctx.Value(RegistryContextKeyRequestID).(string)
	assert.True(t, ok)
	assert.True(t, strings.HasPrefix(reqID, "internal."))
	assert.Nil(t, ctx.Value(RegistryContextKeySource))
}

package helpers

import (
	"context"
	"fmt"
	"io"
	"path"
	"runtime"

	formatter "github.com/antonfisher/nested-logrus-formatter"
	"github.com/jakehl/goid"
	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/config"
	"github.com/sirupsen/logrus"
)

var LogFormatter = &formatter.Formatter{
	TimestampFormat: "2006-01-02 15:04:05",
	HideKeys:        true,
	FieldsOrder:     []string{"src", "req-id", "service", "subsystem"},
	CallerFirst:     true,
	CustomCallerFormatter: func(f *runtime.Frame) string {
		filename := path.Base(f.File)
		return fmt.Sprintf(" [%s %s():%d]", filename, f.Function, f.Line)
	},
}

func SetupLogger(currentLevel config.LogLevel, serviceID string, subsystem string) *logrus.Entry {
	var err error
	logger := logrus.New()
	logger.SetFormatter(LogFormatter)
	lSubsystem := logger.WithFields(logrus.Fields{
		"service":   serviceID,
		"subsystem": subsystem,
	})

	if currentLevel == config.None {
		lSubsystem.Logger.SetOutput(io.Discard)
		return lSubsystem
	}

	level := logrus.GetLevel()
	if currentLevel != "" {
		level, err = logrus.ParseLevel(string(currentLevel))
		if err != nil {
			level = logrus.GetLevel()
			logrus.Warnf("'%s' invalid '%s' log level. Defaulting to global log level", subsystem, currentLevel)
		}
	} else {
		logrus.Warnf("'%s' log level not set. Defaulting to global log level", subsystem)
	}

	lSubsystem.Logger.SetLevel(level)
	lSubsystem.Debugf("log level set to '%s'", lSubsystem.Logger.GetLevel())
	return lSubsystem
}

func ConfigureLogger(ctx context.Context, logger *logrus.Entry) *logrus.Entry {
	logger = configureLoggerWithSource(ctx, logger)
	logger = configureLoggerWithRequestID(ctx, logger)
	return logger
}

func configureLoggerWithSource(ctx context.Context, logger *logrus.Entry) *logrus.Entry {
	source := ""
	if src, ok := ctx.Value(RegistryContextKeySource).(string); ok {
		source = src
	}

	return logger.WithField("src", source)
}

func configureLoggerWithRequestID(ctx context.Context, logger *logrus.Entry) *logrus.Entry {
	if logger.Logger.Level < logrus.DebugLevel {
		return logger
	}

	if reqID, ok := ctx.Value(RegistryContextKeyRequestID).(string); ok {
		return logger.WithField("req-id", reqID)
	}

	return logger.WithField("req-id", fmt.Sprintf("unset.%s", goid.NewV4UUID()))
}

// InitContext returns a background context tagged with a fresh internal request id
// and, when given, the caller source.
func InitContext(source string) context.Context {
	ctx := context.Background()
	ctx = context.WithValue(ctx, RegistryContextKeyRequestID, fmt.Sprintf("internal.%s", goid.NewV4UUID()))
	if source != "" {
		ctx = context.WithValue(ctx, RegistryContextKeySource, source)
	}
	return ctx
}

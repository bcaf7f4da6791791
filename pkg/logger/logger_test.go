package logger_test

import (
	"context"
	"testing"
	"usermeta/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed(t *testing.T, lvl zapcore.Level) (context.Context, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(lvl)

	return logger.WithLogger(context.Background(), zap.New(core)), logs
}

func TestSetup(t *testing.T) {
	for _, env := range []string{logger.DevelopmentEnvironment, logger.ProductionEnvironment, "staging"} {
		t.Run(env, func(t *testing.T) {
			require.NotPanics(t, func() { logger.Setup(env) })
			require.NotNil(t, logger.Get(context.Background()))
		})
	}

	logger.Setup(logger.DevelopmentEnvironment)
	require.True(t, logger.IsDebug(context.Background()))

	logger.Setup(logger.ProductionEnvironment)
	require.False(t, logger.IsDebug(context.Background()))
}

func TestGet_FallsBackToDefault(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	def := logger.Get(context.Background())

	ctx, _ := observed(t, zapcore.InfoLevel)
	require.NotSame(t, def, logger.Get(ctx))
	require.Same(t, def, logger.Get(context.Background()))
}

func TestWithFields(t *testing.T) {
	ctx, logs := observed(t, zapcore.InfoLevel)

	ctx = logger.WithFields(ctx, zap.String("user_id", "u-1"))
	logger.Info(ctx, "fetched", zap.Int("count", 2))
	logger.Debug(ctx, "dropped below level")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "fetched", entries[0].Message)
	require.Equal(t, map[string]any{"user_id": "u-1", "count": int64(2)}, entries[0].ContextMap())
}

func TestLevelHelpers(t *testing.T) {
	ctx, logs := observed(t, zapcore.DebugLevel)

	logger.Debug(ctx, "d")
	logger.Info(ctx, "i")
	logger.Warn(ctx, "w")
	logger.Error(ctx, "e")

	var levels []zapcore.Level
	for _, e := range logs.All() {
		levels = append(levels, e.Level)
	}
	require.Equal(t, []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}, levels)
}

func TestSetLevel(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	ctx := context.Background()

	require.NoError(t, logger.SetLevel(""))
	require.True(t, logger.IsDebug(ctx), "empty level keeps the environment default")

	// loggers derived before the change follow it
	derived := logger.WithFields(ctx, zap.String("k", "v"))
	require.NoError(t, logger.SetLevel("warn"))
	require.False(t, logger.IsDebug(derived))
	require.Equal(t, zap.WarnLevel, logger.Get(ctx).Level())

	require.Error(t, logger.SetLevel("loud"))
}

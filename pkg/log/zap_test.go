package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"bogus":   zapcore.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLevel(in), "level %q", in)
	}
}

func TestRequestIDIsAttached(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := &zapLogger{sugar: zap.New(core).Sugar()}

	ctx := WithRequestID(context.Background(), "req-42")
	l.Infof(ctx, "hello %s", "world")
	l.Info(context.Background(), "no id")

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "hello world", entries[0].Message)
		assert.Equal(t, "req-42", entries[0].ContextMap()["request_id"])
		_, ok := entries[1].ContextMap()["request_id"]
		assert.False(t, ok)
	}
}

func TestInitDoesNotPanic(t *testing.T) {
	l := Init(ZapConfig{Level: "debug", Mode: ModeProduction, Encoding: EncodingJSON})
	l.Debug(context.Background(), "ok")

	l = Init(ZapConfig{Level: "info", Mode: ModeDevelopment, Encoding: EncodingConsole, ColorEnabled: true})
	l.Info(context.Background(), "ok")

	NewNop().Error(context.Background(), "dropped")
}

func TestRequestIDFromContext(t *testing.T) {
	assert.Equal(t, "", RequestIDFromContext(context.Background()))
	assert.Equal(t, "abc", RequestIDFromContext(WithRequestID(context.Background(), "abc")))
}

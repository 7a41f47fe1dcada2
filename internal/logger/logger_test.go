package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLogLevel(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      zapcore.Level
		valid       bool
	}{
		{description: "debug", input: "debug", expect: zapcore.DebugLevel, valid: true},
		{description: "upper case", input: "WARN", expect: zapcore.WarnLevel, valid: true},
		{description: "spaces", input: " error ", expect: zapcore.ErrorLevel, valid: true},
		{description: "fatal", input: "fatal", expect: zapcore.FatalLevel, valid: true},
		{description: "invalid", input: "verbose", expect: zapcore.InfoLevel},
		{description: "empty", input: "", expect: zapcore.InfoLevel},
	}
	for _, testCase := range testCases {
		actual, valid := ParseLogLevel(testCase.input)
		assert.Equal(t, testCase.expect, actual, testCase.description)
		assert.Equal(t, testCase.valid, valid, testCase.description)
	}
}

func TestSetLevel(t *testing.T) {
	original := Level()
	defer SetLevel(original)

	SetLevel(zapcore.ErrorLevel)
	assert.Equal(t, zapcore.ErrorLevel, Level())
	assert.False(t, Logger().Desugar().Core().Enabled(zapcore.InfoLevel))
}

func TestContextLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := ToContext(context.Background(), zap.New(core).Sugar())
	ctx = WithKV(ctx, "command", "convert")

	Debug(ctx, "debug")
	Infof(ctx, "converted %d", 2)
	WarnKV(ctx, "slow", "pattern", "yyyy")
	Error(ctx, "failed")

	entries := logs.All()
	if assert.Len(t, entries, 4) {
		assert.Equal(t, "converted 2", entries[1].Message)
		assert.Equal(t, "convert", entries[2].ContextMap()["command"])
		assert.Equal(t, "yyyy", entries[2].ContextMap()["pattern"])
		assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	}
}

func TestSetLogger(t *testing.T) {
	original := Logger()
	defer SetLogger(original)

	replacement := New(zapcore.DebugLevel)
	SetLogger(replacement)
	assert.Equal(t, replacement, Logger())
	assert.Equal(t, replacement, FromContext(context.Background()))
	assert.NotNil(t, New(nil))
}

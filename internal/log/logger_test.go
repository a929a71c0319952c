package log

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer, level slog.Level) *Logger {
	return New(Config{
		Component: ComponentMoney,
		Handler:   slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level}),
	})
}

func TestLogger_ComponentAttribute(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf, slog.LevelDebug)

	logger.Warn("unsupported exchange currency", FieldCurrency, "XYZ")

	out := buf.String()
	assert.Contains(t, out, "component=money")
	assert.Contains(t, out, "currency=XYZ")
	assert.Contains(t, out, "level=WARN")
}

func TestLogger_WithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf, slog.LevelDebug).WithComponent(ComponentPerson)

	logger.Debug("job assignment reverted")

	assert.Equal(t, ComponentPerson, logger.Component())
	assert.Contains(t, buf.String(), "component=person")
	assert.NotContains(t, buf.String(), "component=money")
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf, slog.LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden too")
	assert.Empty(t, buf.String())

	logger.Error("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_DefaultsComponent(t *testing.T) {
	logger := New(Config{Level: slog.LevelInfo})
	require.NotNil(t, logger)
	assert.Equal(t, ComponentApp, logger.Component())
}

func TestFields_ToSlice(t *testing.T) {
	fields := NewFields().
		WithOperation(OpConvert).
		WithMoney(100, "USD").
		WithTargetCurrency("XYZ").
		WithError(errors.New("boom")).
		WithError(nil)

	got := fields.ToSlice()
	want := []any{
		FieldAmount, int64(100),
		FieldCurrency, "USD",
		FieldError, "boom",
		FieldOperation, OpConvert,
		FieldTargetCurrency, "XYZ",
	}
	assert.Equal(t, want, got)
}

func TestFields_WithPerson(t *testing.T) {
	fields := NewFields().WithPerson("Ted", 10).WithMinAge(16)

	assert.Equal(t, "Ted", fields[FieldFirstName])
	assert.Equal(t, 10, fields[FieldAge])
	assert.Equal(t, 16, fields[FieldMinAge])
}

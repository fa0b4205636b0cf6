package gormlog

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"notekeeper/config"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return New(base, cfg), &buf
}

func sqlFn() (string, int64) {
	return `SELECT * FROM "users" WHERE username = $1`, 1
}

func TestTrace_LogsErrors(t *testing.T) {
	l, buf := newTestLogger(false)

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("connection reset"))

	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "connection reset")
}

func TestTrace_IgnoresRecordNotFound(t *testing.T) {
	l, buf := newTestLogger(false)

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestTrace_SlowQuery(t *testing.T) {
	l, buf := newTestLogger(false)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestTrace_FastQueryOnlyInDebug(t *testing.T) {
	quiet, quietBuf := newTestLogger(false)
	quiet.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Empty(t, quietBuf.String())

	verbose, verboseBuf := newTestLogger(true)
	verbose.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Contains(t, verboseBuf.String(), "GORM query")
}

func TestLogMode_Silent(t *testing.T) {
	l, buf := newTestLogger(true)

	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))

	assert.Empty(t, buf.String())
}

func TestParamsFilter(t *testing.T) {
	quiet, _ := newTestLogger(false)
	filter, ok := quiet.(gorm.ParamsFilter)
	if assert.True(t, ok) {
		_, params := filter.ParamsFilter(context.Background(), "SELECT 1", "secret-hash")
		assert.Nil(t, params)
	}

	verbose, _ := newTestLogger(true)
	filter, ok = verbose.(gorm.ParamsFilter)
	if assert.True(t, ok) {
		_, params := filter.ParamsFilter(context.Background(), "SELECT 1", "secret-hash")
		assert.Equal(t, []any{"secret-hash"}, params)
	}
}

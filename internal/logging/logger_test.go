package logging

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})
	return buf
}

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "abc123")
	assert.Equal(t, "abc123", RequestID(ctx))
	assert.Equal(t, "", RequestID(context.Background()))
}

func TestLogger_LogError(t *testing.T) {
	buf := captureLog(t)

	New(WithRequestID(context.Background(), "rid-1")).LogError("submit", errors.New("disk full"))
	assert.Equal(t, "[error] request_id=rid-1 operation=submit error=disk full\n", buf.String())
}

func TestLogger_UnknownRequestID(t *testing.T) {
	buf := captureLog(t)

	New(context.Background()).LogInfof("list", "count=%d", 3)
	assert.Equal(t, "[info] request_id=unknown operation=list count=3\n", buf.String())
}

func TestLogger_DebugLevel(t *testing.T) {
	buf := captureLog(t)
	t.Cleanup(func() { SetLevel("info") })

	l := New(context.Background())

	SetLevel("info")
	l.LogDebugf("op", "hidden")
	assert.Empty(t, buf.String())

	SetLevel("DEBUG")
	l.LogDebugf("op", "shown")
	assert.Contains(t, buf.String(), "[debug] request_id=unknown operation=op shown")
}

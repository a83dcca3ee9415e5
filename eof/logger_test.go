package eof

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerDefaultsToNop(t *testing.T) {
	if Logger() == nil {
		t.Fatal("Logger returned nil")
	}
}

func TestDecodeLogsFailure(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := Logger()
	SetLogger(zap.New(core))
	defer SetLogger(prev)

	if _, err := DecodeBytes([]byte{0x00, 0x00}); err == nil {
		t.Fatal("expected error")
	}

	entries := logs.FilterMessage("eof decode failed").All()
	if len(entries) != 1 {
		t.Fatalf("got %d failure entries, want 1", len(entries))
	}
	if _, ok := entries[0].ContextMap()["error"]; !ok {
		t.Error("failure entry has no error field")
	}
}

func TestDecodeLogsHeader(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := Logger()
	SetLogger(zap.New(core))
	defer SetLogger(prev)

	data := []byte{
		0xEF, 0x00, 0x01, 0x01, 0x04, 0x00, 0x02, 0x01, 0x00, 0x01, 0x00,
		0x03, 0x00, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00,
		0x00, 0x80, 0x00, 0x00,
		0x00,
	}
	if _, err := DecodeBytes(data); err != nil {
		t.Fatalf("DecodeBytes: %v", err)
	}

	entries := logs.FilterMessage("eof header decoded").All()
	if len(entries) != 1 {
		t.Fatalf("got %d header entries, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["code_size"]; got != uint16(1) {
		t.Errorf("code_size field = %v (%T), want 1", got, got)
	}
}

package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestInitDiscardsWithoutDirOrDebug(t *testing.T) {
	Init(Config{})
	defer Close()

	// Must not panic and must hand back a usable logger.
	Logger().Info("discarded")
	ForComponent(CompUI).Debug("also discarded")
}

func TestInitWritesJSONToLogDir(t *testing.T) {
	dir := t.TempDir()
	Init(Config{LogDir: dir, Level: "debug"})
	defer Close()

	log := ForComponent(CompCapture)
	log.Info("stream_eof", "process", "Foo")

	data, err := os.ReadFile(filepath.Join(dir, "debug.log"))
	if err != nil {
		t.Fatalf("reading debug.log: %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "stream_eof" {
		t.Errorf("msg = %v, want stream_eof", entry["msg"])
	}
	if entry["component"] != CompCapture {
		t.Errorf("component = %v, want %s", entry["component"], CompCapture)
	}
}

func TestForComponentBeforeInit(t *testing.T) {
	// Component loggers created before Init must pick up the real handler
	// once Init runs.
	globalMu.Lock()
	globalLogger = nil
	globalMu.Unlock()

	early := ForComponent(CompConfig)

	dir := t.TempDir()
	Init(Config{LogDir: dir})
	defer Close()

	early.Info("late_bound")

	data, err := os.ReadFile(filepath.Join(dir, "debug.log"))
	if err != nil {
		t.Fatalf("reading debug.log: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("early component logger wrote nothing after Init")
	}
}

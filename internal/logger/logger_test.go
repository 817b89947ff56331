package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "duskcrawl.log")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_FILE", path)
	t.Cleanup(func() { Log = newDiscard() })

	Init()
	if Log.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %s, want debug", Log.GetLevel())
	}
	Log.WithField("code", "AAAA").Debug("dungeon generated")

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(content), &entry); err != nil {
		t.Fatalf("log line %q is not JSON: %v", content, err)
	}
	if entry["msg"] != "dungeon generated" || entry["code"] != "AAAA" {
		t.Errorf("entry = %v", entry)
	}
}

func TestInitBadLevelFallsBackToInfo(t *testing.T) {
	t.Setenv("LOG_LEVEL", "chatty")
	t.Setenv("LOG_FILE", "")
	t.Cleanup(func() { Log = newDiscard() })

	Init()
	if Log.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %s, want info", Log.GetLevel())
	}
}

func TestSetOutput(t *testing.T) {
	t.Cleanup(func() { Log = newDiscard() })
	Log = newDiscard()

	var buf bytes.Buffer
	SetOutput(&buf)
	Log.Info("hello")
	if !bytes.Contains(buf.Bytes(), []byte("hello")) {
		t.Errorf("output %q missing message", buf.String())
	}
}

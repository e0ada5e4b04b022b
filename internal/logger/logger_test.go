package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "readquest.log")
	l, err := New("prod", path)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	l.With("book", "Programming").Info("quest resolved", "exp", 75)
	l.Debug("hidden at info level")
	l.Sync()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(b)
	if !strings.Contains(out, "quest resolved") || !strings.Contains(out, `"book":"Programming"`) {
		t.Errorf("log output = %q", out)
	}
	if strings.Contains(out, "hidden at info level") {
		t.Error("debug line written in prod mode")
	}
}

func TestNilAndNopAreSafe(t *testing.T) {
	var l *Logger
	l.Info("ignored")
	l.With("k", "v").Error("ignored")
	l.Sync()

	Nop().Warn("ignored", "k", 1)
}

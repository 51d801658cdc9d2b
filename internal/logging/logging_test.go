package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{" WARN ", logrus.WarnLevel},
		{"", logrus.InfoLevel},
		{"chatty", logrus.InfoLevel},
	}
	for _, tt := range tests {
		if got := New(tt.in, nil).GetLevel(); got != tt.want {
			t.Errorf("New(%q).GetLevel() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewWritesFields(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", &buf)
	log.WithField("wishlist_id", "w1").Info("opened")

	out := buf.String()
	if !strings.Contains(out, "level=info") || !strings.Contains(out, "wishlist_id=w1") {
		t.Fatalf("unexpected output %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("output should carry no color codes: %q", out)
	}
}

func TestNewFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "client.log")

	for i := 0; i < 2; i++ {
		log, closeFn, err := NewFile("info", path)
		if err != nil {
			t.Fatalf("NewFile: %v", err)
		}
		log.Info("hello")
		if err := closeFn(); err != nil {
			t.Fatalf("close: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if got := strings.Count(string(data), "msg=hello"); got != 2 {
		t.Fatalf("expected 2 lines, got %d in %q", got, data)
	}
}

func TestNewFileEmptyPathDiscards(t *testing.T) {
	log, closeFn, err := NewFile("info", "  ")
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	log.Info("dropped")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

package shared

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewLogger(t *testing.T) {
	t.Run("writes to provided writer", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf)

		logger.Info("hello")

		if !strings.Contains(buf.String(), "hello") {
			t.Errorf("expected log output to contain message, got %q", buf.String())
		}
	})

	t.Run("nil writer defaults to stderr", func(t *testing.T) {
		logger := NewLogger(nil)
		if logger == nil {
			t.Fatal("expected logger, got nil")
		}
	})
}

func TestNewFileLogger(t *testing.T) {
	t.Run("creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "rfx.log")

		logger, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("failed to create file logger: %v", err)
		}

		logger.Info("written to file")

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read log file: %v", err)
		}
		if !strings.Contains(string(content), "written to file") {
			t.Errorf("expected log file to contain message, got %q", string(content))
		}
	})
}

func TestGenerateID(t *testing.T) {
	id := GenerateID()

	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("expected valid UUID, got %q: %v", id, err)
	}

	if GenerateID() == id {
		t.Error("expected unique IDs across calls")
	}
}

func TestFormatDate(t *testing.T) {
	tc := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "single digit month and day",
			in:   time.Date(2024, time.January, 2, 15, 4, 5, 0, time.UTC),
			want: "01/02/24",
		},
		{
			name: "double digit month and day",
			in:   time.Date(2023, time.November, 28, 0, 0, 0, 0, time.UTC),
			want: "11/28/23",
		},
	}

	for _, c := range tc {
		t.Run(c.name, func(t *testing.T) {
			if got := FormatDate(c.in); got != c.want {
				t.Errorf("expected %q, got %q", c.want, got)
			}
		})
	}
}

package formatter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/rfx/internal/models"
	tu "github.com/desertthunder/rfx/internal/testing"
)

func sampleRecords() []models.RFP {
	return []models.RFP{
		tu.SampleRFP("abc", "Carrier A", 100),
		tu.SampleRFP("def", "Carrier B", 200),
	}
}

func TestExporters(t *testing.T) {
	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(sampleRecords())
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "ID,Carrier Name,Employee Count,Misc Data,Date Submitted") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "abc,Carrier A,100,sample,06/01/24") {
			t.Errorf("CSV missing first record, got: %s", output)
		}
		if !strings.Contains(output, "def,Carrier B,200,sample,06/01/24") {
			t.Errorf("CSV missing second record, got: %s", output)
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		data, err := ExportToMarkdown(sampleRecords())
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "# RFPs") {
			t.Errorf("Markdown missing heading, got: %s", output)
		}
		if !strings.Contains(output, "**Records**: 2") {
			t.Errorf("Markdown missing record count, got: %s", output)
		}
		if !strings.Contains(output, "| Carrier A | 100 | 06/01/24 |") {
			t.Errorf("Markdown missing table row, got: %s", output)
		}
	})

	t.Run("ExportToText", func(t *testing.T) {
		data, err := ExportToText(sampleRecords())
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "RFPs: 2") {
			t.Errorf("text missing record count, got: %s", output)
		}
		if !strings.Contains(output, "1. Carrier A - 100 employees, submitted 06/01/24") {
			t.Errorf("text missing first record, got: %s", output)
		}
	})

	t.Run("Export", func(t *testing.T) {
		t.Run("defaults to text", func(t *testing.T) {
			data, err := Export(sampleRecords(), "")
			if err != nil {
				t.Fatalf("Export failed: %v", err)
			}
			if !strings.Contains(string(data), "RFPs: 2") {
				t.Errorf("expected text output, got: %s", data)
			}
		})

		t.Run("rejects unknown formats", func(t *testing.T) {
			if _, err := Export(sampleRecords(), "yaml"); err == nil {
				t.Error("expected error for unknown format")
			}
		})
	})

	t.Run("WriteExport", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rfps.csv")

		if err := WriteExport(sampleRecords(), "csv", path); err != nil {
			t.Fatalf("WriteExport failed: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read export file: %v", err)
		}
		if !strings.Contains(string(data), "Carrier A") {
			t.Errorf("export file missing record, got: %s", data)
		}
	})
}

// package formatter provides functions to export RFP records to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/desertthunder/rfx/internal/models"
	"github.com/desertthunder/rfx/internal/shared"
)

// ExportToCSV converts records to CSV format with columns: ID, Carrier Name, Employee Count, Misc Data, Date Submitted
func ExportToCSV(rfps []models.RFP) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Carrier Name", "Employee Count", "Misc Data", "Date Submitted"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, rfp := range rfps {
		record := []string{
			rfp.ID,
			rfp.CarrierName,
			strconv.Itoa(rfp.EmployeeCount),
			models.MiscString(rfp.MiscData),
			shared.FormatDate(rfp.DateSubmitted),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts records to a Markdown table with a record count
func ExportToMarkdown(rfps []models.RFP) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# RFPs\n\n")
	buf.WriteString(fmt.Sprintf("**Records**: %d\n\n", len(rfps)))

	buf.WriteString("| Carrier Name | Employee Count | Date Submitted |\n")
	buf.WriteString("| --- | --- | --- |\n")
	for _, rfp := range rfps {
		buf.WriteString(fmt.Sprintf("| %s | %d | %s |\n", rfp.CarrierName, rfp.EmployeeCount, shared.FormatDate(rfp.DateSubmitted)))
	}

	return buf.Bytes(), nil
}

// ExportToText converts records to plain text format
func ExportToText(rfps []models.RFP) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("RFPs: %d\n\n", len(rfps)))

	for i, rfp := range rfps {
		buf.WriteString(fmt.Sprintf("%d. %s - %d employees, submitted %s\n", i+1, rfp.CarrierName, rfp.EmployeeCount, shared.FormatDate(rfp.DateSubmitted)))
	}

	return buf.Bytes(), nil
}

// Export renders records in the named format: "csv", "markdown" (or "md"), or "text"
func Export(rfps []models.RFP, format string) ([]byte, error) {
	switch format {
	case "csv":
		return ExportToCSV(rfps)
	case "markdown", "md":
		return ExportToMarkdown(rfps)
	case "text", "":
		return ExportToText(rfps)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}
}

// WriteExport renders records in the named format and writes them to path
func WriteExport(rfps []models.RFP, format, path string) error {
	data, err := Export(rfps, format)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	return nil
}

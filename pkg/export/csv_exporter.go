package export

import (
	"fmt"
	"strings"
	"time"
)

// MediaTypeCSV is the media type declared for CSV exports.
const MediaTypeCSV = "text/csv"

// MissingCell is rendered for absent values so the column count stays
// constant across rows.
const MissingCell = "N/A"

// Dataset defines tabular export content. Headers fix the column order; rows
// are looked up per header.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
}

// CSVExporter renders Dataset records into CSV bytes. Every cell is rendered
// double-quoted with embedded quotes doubled, columns comma-joined and rows
// newline-joined, so the output shape is stable regardless of cell content.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Render produces CSV encoded bytes for the dataset.
func (e *CSVExporter) Render(data Dataset) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("csv requires at least one header")
	}
	var builder strings.Builder
	writeRow(&builder, data.Headers)
	for _, row := range data.Rows {
		record := make([]string, len(data.Headers))
		for i, header := range data.Headers {
			value, ok := row[header]
			if !ok {
				value = MissingCell
			}
			record[i] = value
		}
		builder.WriteByte('\n')
		writeRow(&builder, record)
	}
	return []byte(builder.String()), nil
}

func writeRow(builder *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			builder.WriteByte(',')
		}
		builder.WriteByte('"')
		builder.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		builder.WriteByte('"')
	}
}

// Filename builds a timestamped download name for the given report and
// extension, e.g. attendance_report_20240131_120500.csv.
func Filename(report string, format string, now time.Time) string {
	timestamp := now.UTC().Format("20060102_150405")
	return fmt.Sprintf("%s_%s.%s", report, timestamp, format)
}

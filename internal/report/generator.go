// Package report renders engine results as JSON, YAML or CSV.
package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"fjacquet/ngtax/internal/logging"
	"fjacquet/ngtax/internal/models"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding.
type Format string

// Supported output formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatCSV}
}

// ParseFormat parses a format name. "yml" is accepted for YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unsupported report format: %s", name)
	}
}

// ReportGenerator renders values in the supported formats.
type ReportGenerator struct {
	logger logging.Logger
}

// NewReportGenerator creates a new instance of ReportGenerator.
func NewReportGenerator(logger logging.Logger) *ReportGenerator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &ReportGenerator{logger: logger.WithField("component", "ReportGenerator")}
}

// GenerateReport renders value in the given format. CSV is only available
// for the result types known to Rows.
func (g *ReportGenerator) GenerateReport(value interface{}, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return g.generateJSONReport(value)
	case FormatYAML:
		return g.generateYAMLReport(value)
	case FormatCSV:
		return g.generateCSVReport(value)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// Write renders value to w.
func (g *ReportGenerator) Write(w io.Writer, value interface{}, format Format) error {
	data, err := g.GenerateReport(value, format)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// WriteFile renders value to path, or to stdout when path is empty or "-".
func (g *ReportGenerator) WriteFile(path string, value interface{}, format Format) error {
	if path == "" || path == "-" {
		return g.Write(os.Stdout, value, format)
	}

	data, err := g.GenerateReport(value, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, models.PermissionReportFile); err != nil { // #nosec G306 -- reports are meant to be shared
		return fmt.Errorf("failed to write report: %w", err)
	}
	g.logger.Info("Report written",
		logging.F(logging.FieldOutputFile, path),
		logging.F(logging.FieldFormat, string(format)))
	return nil
}

// generateJSONReport generates a report in JSON format.
func (g *ReportGenerator) generateJSONReport(value interface{}) ([]byte, error) {
	jsonReport, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return append(jsonReport, '\n'), nil
}

// generateYAMLReport generates a report in YAML format.
func (g *ReportGenerator) generateYAMLReport(value interface{}) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(value); err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return buf.Bytes(), nil
}

// generateCSVReport flattens value into rows and writes them with a header.
func (g *ReportGenerator) generateCSVReport(value interface{}) ([]byte, error) {
	rows, err := Rows(value)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	csvWriter := csv.NewWriter(&buf)
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		g.logger.WithError(err).Error("Failed to marshal CSV report")
		return nil, fmt.Errorf("failed to marshal CSV report: %w", err)
	}
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return nil, fmt.Errorf("failed to marshal CSV report: %w", err)
	}
	return buf.Bytes(), nil
}

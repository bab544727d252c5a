package reporting

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"yamori/internal/runner"
)

// Report is the JSON document written for a run.
type Report struct {
	RunID      string              `json:"run_id"`
	ConfigPath string              `json:"config_path,omitempty"`
	Timestamp  time.Time           `json:"timestamp"`
	Release    bool                `json:"release"`
	Summary    runner.Summary      `json:"summary"`
	Results    []runner.TestResult `json:"results"`
}

// NewReport builds a report for a finished run.
func NewReport(configPath string, release bool, results []runner.TestResult) Report {
	return Report{
		RunID:      uuid.NewString(),
		ConfigPath: configPath,
		Timestamp:  time.Now(),
		Release:    release,
		Summary:    runner.Summarize(results),
		Results:    results,
	}
}

// ReportFileName is the name SaveReport uses for a report taken at ts.
func ReportFileName(ts time.Time) string {
	return fmt.Sprintf("yamori-report-%s.json", ts.Format("20060102-150405"))
}

// SaveReport writes r as indented JSON into dir, creating dir when needed,
// and returns the path of the new file.
func SaveReport(dir string, r Report) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report to JSON: %w", err)
	}

	path := filepath.Join(dir, ReportFileName(r.Timestamp))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}
	return path, nil
}

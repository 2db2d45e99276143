package htmlreport

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/AlexisDongMariano/aws-orphans/model"
)

// DefaultReportDir is the default directory for HTML reports
const DefaultReportDir = "reports"

// WriteHTMLReport renders the report and writes it to a file. An empty
// outputPath picks a timestamped file under the reports directory.
func WriteHTMLReport(outputPath string, input model.RenderScanInput) (string, error) {
	html, err := GenerateHTMLReport(input)
	if err != nil {
		return "", fmt.Errorf("failed to generate HTML report: %w", err)
	}

	if outputPath == "" {
		outputPath = GenerateReportPath()
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create reports directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("failed to write HTML file: %w", err)
	}

	return outputPath, nil
}

// GenerateReportPath generates a report path with datetime in the reports folder
func GenerateReportPath() string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	return filepath.Join(DefaultReportDir, fmt.Sprintf("orphan-report_%s.html", timestamp))
}

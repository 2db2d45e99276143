// Package output provides a service for rendering scan results.
package output

import (
	"fmt"

	"github.com/AlexisDongMariano/aws-orphans/model"
)

// NewService creates a new output service with the specified format.
// outputFile, when non-empty, redirects json and html output to a file.
func NewService(format, outputFile string) Service {
	f := FormatTable
	switch format {
	case "json":
		f = FormatJSON
	case "html":
		f = FormatHTML
	}

	return &service{
		format:     f,
		outputFile: outputFile,
		renderer:   &realRenderer{},
	}
}

func (s *service) RenderScan(input model.RenderScanInput) error {
	switch s.format {
	case FormatJSON:
		if s.outputFile != "" {
			return s.renderer.WriteOrphanJSONFile(input, s.outputFile)
		}
		return s.renderer.OutputOrphanJSON(input)
	case FormatHTML:
		path, err := s.renderer.WriteHTMLReport(s.outputFile, input)
		if err != nil {
			return err
		}
		fmt.Printf("📄 HTML report written to %s\n", path)
		return nil
	default:
		s.renderer.DrawOrphanTables(input)
		return nil
	}
}

func (s *service) StopSpinner() {
	s.renderer.StopSpinner()
}

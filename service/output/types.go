package output

import (
	"github.com/AlexisDongMariano/aws-orphans/model"
	"github.com/AlexisDongMariano/aws-orphans/shared/htmlreport"
	"github.com/AlexisDongMariano/aws-orphans/shared/jsonoutput"
	"github.com/AlexisDongMariano/aws-orphans/shared/orphantable"
	"github.com/AlexisDongMariano/aws-orphans/shared/spinner"
)

// Format represents the output format type
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatHTML  Format = "html"
)

// Renderer defines the interface for producing output
type Renderer interface {
	DrawOrphanTables(input model.RenderScanInput)
	OutputOrphanJSON(input model.RenderScanInput) error
	WriteOrphanJSONFile(input model.RenderScanInput, path string) error
	WriteHTMLReport(path string, input model.RenderScanInput) (string, error)
	StopSpinner()
}

type realRenderer struct{}

func (r *realRenderer) DrawOrphanTables(input model.RenderScanInput) {
	orphantable.DrawOrphanTables(input)
}

func (r *realRenderer) OutputOrphanJSON(input model.RenderScanInput) error {
	return jsonoutput.OutputOrphanJSON(input)
}

func (r *realRenderer) WriteOrphanJSONFile(input model.RenderScanInput, path string) error {
	return jsonoutput.WriteOrphanJSONFile(input, path)
}

func (r *realRenderer) WriteHTMLReport(path string, input model.RenderScanInput) (string, error) {
	return htmlreport.WriteHTMLReport(path, input)
}

func (r *realRenderer) StopSpinner() {
	spinner.StopSpinner()
}

// service is the internal implementation
type service struct {
	format     Format
	outputFile string
	renderer   Renderer
}

// Service defines the interface for output operations
type Service interface {
	RenderScan(input model.RenderScanInput) error
	StopSpinner()
}

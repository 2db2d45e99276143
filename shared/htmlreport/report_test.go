package htmlreport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AlexisDongMariano/aws-orphans/model"
	"github.com/AlexisDongMariano/aws-orphans/service/scan"
	"github.com/AlexisDongMariano/aws-orphans/service/sgscanner"
)

func sampleInput() model.RenderScanInput {
	return model.RenderScanInput{
		AccountID: "123456789012",
		SecurityGroups: &scan.Result[sgscanner.OrphanedGroup]{
			Records: []sgscanner.OrphanedGroup{
				{Region: "us-east-1", GroupID: "sg-123", GroupName: "stale-web", Description: "old web sg", VpcID: "vpc-1"},
			},
			Regions:  []string{"us-east-1", "us-west-2"},
			Failures: []scan.RegionFailure{{Region: "us-west-2", Reason: "UnauthorizedOperation: denied"}},
		},
	}
}

func TestBuildReportData(t *testing.T) {
	data := BuildReportData(sampleInput())

	if data.AccountID != "123456789012" {
		t.Fatalf("unexpected account id %q", data.AccountID)
	}
	if data.Summary.TotalOrphans != 1 || data.Summary.SecurityGroups != 1 {
		t.Fatalf("unexpected summary: %+v", data.Summary)
	}
	if data.Summary.FailedRegions != 1 {
		t.Fatalf("expected 1 failed region, got %d", data.Summary.FailedRegions)
	}
	if len(data.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(data.Sections))
	}

	section := data.Sections[0]
	if section.Status != "failed" {
		t.Fatalf("expected failed status, got %q", section.Status)
	}
	if len(section.Rows) != 1 || section.Rows[0].Cells[1] != "sg-123" {
		t.Fatalf("unexpected rows: %+v", section.Rows)
	}
	if section.Rows[0].ConsoleURL == "" {
		t.Fatal("expected console url")
	}
}

func TestGenerateHTMLReport(t *testing.T) {
	html, err := GenerateHTMLReport(sampleInput())
	if err != nil {
		t.Fatalf("GenerateHTMLReport failed: %v", err)
	}

	for _, want := range []string{
		"123456789012",
		"sg-123",
		"Unassociated Security Groups",
		"us-west-2",
		"UnauthorizedOperation",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("report missing %q", want)
		}
	}
}

func TestWriteHTMLReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")
	written, err := WriteHTMLReport(path, sampleInput())
	if err != nil {
		t.Fatalf("WriteHTMLReport failed: %v", err)
	}
	if written != path {
		t.Fatalf("unexpected written path %q", written)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	if !strings.Contains(string(data), "<!DOCTYPE html>") {
		t.Fatal("report does not look like HTML")
	}
}

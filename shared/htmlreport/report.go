// Package htmlreport provides HTML report generation for orphan scans.
package htmlreport

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/AlexisDongMariano/aws-orphans/model"
	"github.com/AlexisDongMariano/aws-orphans/service/scan"
)

// ReportData contains all data needed for HTML report generation.
type ReportData struct {
	AccountID   string
	GeneratedAt string
	Summary     Summary
	Sections    []Section
}

// Summary contains orphan count statistics.
type Summary struct {
	TotalOrphans   int
	SecurityGroups int
	ElasticIPs     int
	Volumes        int
	FailedRegions  int
}

// Section is one resource type in the report.
type Section struct {
	ID          string
	Title       string
	Description string
	Status      string // "clean", "orphans", "failed"
	Columns     []string
	Rows        []Row
	Failures    []Failure
}

// Row is one orphaned resource. ConsoleURL links the first cell to the
// AWS console.
type Row struct {
	Cells      []string
	ConsoleURL string
}

// Failure is a region that could not be scanned.
type Failure struct {
	Region string
	Reason string
}

// BuildReportData converts scan results into the HTML report model.
func BuildReportData(input model.RenderScanInput) ReportData {
	data := ReportData{
		AccountID:   input.AccountID,
		GeneratedAt: time.Now().Format("2006-01-02 15:04:05 MST"),
	}

	if input.SecurityGroups != nil {
		section := Section{
			ID:          "security-groups",
			Title:       "🛡 Unassociated Security Groups",
			Description: "Security groups not referenced by any network interface.",
			Columns:     []string{"Region", "Group ID", "Group Name", "Description", "VPC ID"},
		}
		for _, r := range input.SecurityGroups.Records {
			section.Rows = append(section.Rows, Row{
				Cells:      []string{r.Region, r.GroupID, r.GroupName, r.Description, r.VpcID},
				ConsoleURL: r.ConsoleURL(),
			})
		}
		section.Failures = mapFailures(input.SecurityGroups.Failures)
		section.Status = sectionStatus(len(section.Rows), len(section.Failures))
		data.Summary.SecurityGroups = len(section.Rows)
		data.Sections = append(data.Sections, section)
	}

	if input.ElasticIPs != nil {
		section := Section{
			ID:          "elastic-ips",
			Title:       "📡 Unattached Elastic IPs",
			Description: "Elastic IP allocations with no association.",
			Columns:     []string{"Region", "Allocation ID", "Public IP", "Domain"},
		}
		for _, r := range input.ElasticIPs.Records {
			section.Rows = append(section.Rows, Row{
				Cells:      []string{r.Region, r.AllocationID, r.PublicIP, r.Domain},
				ConsoleURL: r.ConsoleURL(),
			})
		}
		section.Failures = mapFailures(input.ElasticIPs.Failures)
		section.Status = sectionStatus(len(section.Rows), len(section.Failures))
		data.Summary.ElasticIPs = len(section.Rows)
		data.Sections = append(data.Sections, section)
	}

	if input.Volumes != nil {
		section := Section{
			ID:          "ebs-volumes",
			Title:       "💾 Unattached EBS Volumes",
			Description: "EBS volumes in the available state with no attachments.",
			Columns:     []string{"Region", "Volume ID", "Size (GiB)", "Type", "AZ", "Created"},
		}
		for _, r := range input.Volumes.Records {
			section.Rows = append(section.Rows, Row{
				Cells: []string{r.Region, r.VolumeID, strconv.Itoa(int(r.SizeGB)),
					r.VolumeType, r.AvailabilityZone, r.CreateTime},
				ConsoleURL: r.ConsoleURL(),
			})
		}
		section.Failures = mapFailures(input.Volumes.Failures)
		section.Status = sectionStatus(len(section.Rows), len(section.Failures))
		data.Summary.Volumes = len(section.Rows)
		data.Sections = append(data.Sections, section)
	}

	data.Summary.TotalOrphans = data.Summary.SecurityGroups +
		data.Summary.ElasticIPs + data.Summary.Volumes
	for _, s := range data.Sections {
		data.Summary.FailedRegions += len(s.Failures)
	}

	return data
}

func mapFailures(failures []scan.RegionFailure) []Failure {
	var out []Failure
	for _, f := range failures {
		out = append(out, Failure{Region: f.Region, Reason: f.Reason})
	}
	return out
}

func sectionStatus(rows, failures int) string {
	switch {
	case failures > 0:
		return "failed"
	case rows > 0:
		return "orphans"
	default:
		return "clean"
	}
}

// GenerateHTMLReport generates a complete HTML report from scan results.
func GenerateHTMLReport(input model.RenderScanInput) (string, error) {
	data := BuildReportData(input)

	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"lower": strings.ToLower,
	}).Parse(htmlTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

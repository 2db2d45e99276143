package flag

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/AlexisDongMariano/aws-orphans/model"
)

// NewService creates a new flag service.
func NewService() Service {
	return &service{}
}

// GetParsedFlags parses and returns the command-line flags.
func (s *service) GetParsedFlags() (model.Flags, error) {
	profile := pflag.StringP("profile", "p", "", "AWS profile to use")
	region := pflag.StringP("region", "r", "", "Single AWS region to scan")
	regions := pflag.String("regions", "", "Comma-separated AWS regions to scan")
	allRegions := pflag.Bool("all-regions", false, "Scan all enabled AWS regions")
	resources := pflag.String("resources", "", "Comma-separated resource types to scan (sg, eip, ebs)")
	includeDefaultSG := pflag.Bool("include-default-sg", false, "Include default security groups in results")
	version := pflag.BoolP("version", "v", false, "Show version information")
	output := pflag.StringP("output", "o", "table", "Output format (table, json, or html)")
	outputFile := pflag.StringP("output-file", "f", "", "Output file path for json or html output")
	exportXLSX := pflag.String("export-xlsx", "", "Export scan results as an Excel workbook to file path")
	store := pflag.Bool("store", false, "Persist scan results in local SQLite database")
	dbPath := pflag.String("db-path", "", "Custom SQLite database path (default ~/.aws-orphans/orphans.db)")
	maxParallel := pflag.Int("max-parallel", 4, "Maximum regions scanned concurrently")
	regionTimeout := pflag.Int("region-timeout", 60, "Per-region scan timeout in seconds")

	pflag.Parse()

	parsedRegions := splitCSV(*regions)
	parsedResources := splitCSV(*resources)
	for _, r := range parsedResources {
		switch r {
		case "sg", "eip", "ebs":
		default:
			return model.Flags{}, fmt.Errorf("unknown resource type %q (want sg, eip, or ebs)", r)
		}
	}

	flags := model.Flags{
		Profile:          *profile,
		Region:           *region,
		Regions:          parsedRegions,
		AllRegions:       *allRegions,
		Resources:        parsedResources,
		IncludeDefaultSG: *includeDefaultSG,
		Version:          *version,
		Output:           *output,
		OutputFile:       *outputFile,
		ExportXLSX:       *exportXLSX,
		Store:            *store,
		DBPath:           *dbPath,
		MaxParallel:      *maxParallel,
		RegionTimeoutSec: *regionTimeout,
	}

	return flags, nil
}

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

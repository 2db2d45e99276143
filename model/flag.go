package model

// Flags represents the command line flags for a scan invocation.
type Flags struct {
	Profile          string
	Region           string
	Regions          []string
	AllRegions       bool
	Resources        []string
	IncludeDefaultSG bool
	Version          bool
	Output           string
	OutputFile       string
	ExportXLSX       string
	Store            bool
	DBPath           string
	MaxParallel      int
	RegionTimeoutSec int
}

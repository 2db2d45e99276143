// Package jsonoutput builds and prints the machine-readable scan report.
package jsonoutput

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/AlexisDongMariano/aws-orphans/model"
	"github.com/AlexisDongMariano/aws-orphans/service/ebsscanner"
	"github.com/AlexisDongMariano/aws-orphans/service/eipscanner"
	"github.com/AlexisDongMariano/aws-orphans/service/scan"
	"github.com/AlexisDongMariano/aws-orphans/service/sgscanner"
)

// OutputOrphanJSON writes the scan report as JSON to stdout.
func OutputOrphanJSON(input model.RenderScanInput) error {
	output := BuildOrphanReport(input, time.Now().UTC().Format(time.RFC3339))
	return printJSON(output)
}

// WriteOrphanJSONFile writes the scan report as JSON to the given path.
func WriteOrphanJSONFile(input model.RenderScanInput, path string) error {
	output := BuildOrphanReport(input, time.Now().UTC().Format(time.RFC3339))
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}
	return nil
}

// BuildOrphanReport builds the JSON report model from scan results.
func BuildOrphanReport(input model.RenderScanInput, generatedAt string) model.OrphanReportJSON {
	report := model.OrphanReportJSON{
		AccountID:   input.AccountID,
		GeneratedAt: generatedAt,
	}

	if input.SecurityGroups != nil {
		report.SecurityGroups = mapSecurityGroups(input.SecurityGroups)
		report.Summary.SecurityGroups = len(input.SecurityGroups.Records)
		report.Summary.FailedRegions += len(input.SecurityGroups.Failures)
	}
	if input.ElasticIPs != nil {
		report.ElasticIPs = mapElasticIPs(input.ElasticIPs)
		report.Summary.ElasticIPs = len(input.ElasticIPs.Records)
		report.Summary.FailedRegions += len(input.ElasticIPs.Failures)
	}
	if input.Volumes != nil {
		report.Volumes = mapVolumes(input.Volumes)
		report.Summary.Volumes = len(input.Volumes.Records)
		report.Summary.FailedRegions += len(input.Volumes.Failures)
	}
	report.Summary.TotalOrphans = report.Summary.SecurityGroups +
		report.Summary.ElasticIPs + report.Summary.Volumes

	return report
}

func mapSecurityGroups(result *scan.Result[sgscanner.OrphanedGroup]) *model.SecurityGroupsJSON {
	section := &model.SecurityGroupsJSON{
		RegionsScanned: result.Regions,
		RegionFailures: mapFailures(result.Failures),
		Orphans:        []model.OrphanedGroupJSON{},
	}
	for _, r := range result.Records {
		section.Orphans = append(section.Orphans, model.OrphanedGroupJSON{
			Region:      r.Region,
			GroupID:     r.GroupID,
			GroupName:   r.GroupName,
			Description: r.Description,
			VpcID:       r.VpcID,
			ConsoleURL:  r.ConsoleURL(),
		})
	}
	return section
}

func mapElasticIPs(result *scan.Result[eipscanner.OrphanedAddress]) *model.ElasticIPsJSON {
	section := &model.ElasticIPsJSON{
		RegionsScanned: result.Regions,
		RegionFailures: mapFailures(result.Failures),
		Orphans:        []model.OrphanedEIPJSON{},
	}
	for _, r := range result.Records {
		section.Orphans = append(section.Orphans, model.OrphanedEIPJSON{
			Region:       r.Region,
			AllocationID: r.AllocationID,
			PublicIP:     r.PublicIP,
			Domain:       r.Domain,
			ConsoleURL:   r.ConsoleURL(),
		})
	}
	return section
}

func mapVolumes(result *scan.Result[ebsscanner.UnattachedVolume]) *model.VolumesJSON {
	section := &model.VolumesJSON{
		RegionsScanned: result.Regions,
		RegionFailures: mapFailures(result.Failures),
		Orphans:        []model.UnattachedEBSJSON{},
	}
	for _, r := range result.Records {
		section.Orphans = append(section.Orphans, model.UnattachedEBSJSON{
			Region:           r.Region,
			VolumeID:         r.VolumeID,
			SizeGB:           r.SizeGB,
			VolumeType:       r.VolumeType,
			AvailabilityZone: r.AvailabilityZone,
			CreateTime:       r.CreateTime,
			ConsoleURL:       r.ConsoleURL(),
		})
	}
	return section
}

func mapFailures(failures []scan.RegionFailure) []model.RegionFailureJSON {
	out := []model.RegionFailureJSON{}
	for _, f := range failures {
		out = append(out, model.RegionFailureJSON{Region: f.Region, Reason: f.Reason})
	}
	return out
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

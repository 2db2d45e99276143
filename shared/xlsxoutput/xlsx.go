// Package xlsxoutput exports orphan scan results as an Excel workbook.
package xlsxoutput

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/AlexisDongMariano/aws-orphans/model"
	"github.com/AlexisDongMariano/aws-orphans/service/scan"
)

const (
	sheetScanInfo       = "Scan Info"
	sheetSecurityGroups = "Security Groups"
	sheetElasticIPs     = "Elastic IPs"
	sheetVolumes        = "EBS Volumes"
)

// WriteXLSX builds the workbook and saves it to path.
func WriteXLSX(path string, input model.RenderScanInput) error {
	f, err := BuildWorkbook(input)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// BuildWorkbook builds an Excel workbook with one sheet per resource type
// plus a scan info sheet. Only requested resource types get a sheet.
func BuildWorkbook(input model.RenderScanInput) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeScanInfo(f, input); err != nil {
		_ = f.Close()
		return nil, err
	}

	if input.SecurityGroups != nil {
		rows := [][]any{{"Region", "Group ID", "Group Name", "Description", "VPC ID", "Console URL"}}
		for _, r := range input.SecurityGroups.Records {
			rows = append(rows, []any{r.Region, r.GroupID, r.GroupName, r.Description, r.VpcID, r.ConsoleURL()})
		}
		if err := writeSheet(f, sheetSecurityGroups, rows); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	if input.ElasticIPs != nil {
		rows := [][]any{{"Region", "Allocation ID", "Public IP", "Domain", "Console URL"}}
		for _, r := range input.ElasticIPs.Records {
			rows = append(rows, []any{r.Region, r.AllocationID, r.PublicIP, r.Domain, r.ConsoleURL()})
		}
		if err := writeSheet(f, sheetElasticIPs, rows); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	if input.Volumes != nil {
		rows := [][]any{{"Region", "Volume ID", "Size (GiB)", "Type", "AZ", "Created", "Console URL"}}
		for _, r := range input.Volumes.Records {
			rows = append(rows, []any{r.Region, r.VolumeID, int(r.SizeGB), r.VolumeType, r.AvailabilityZone, r.CreateTime, r.ConsoleURL()})
		}
		if err := writeSheet(f, sheetVolumes, rows); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	// The default sheet excelize creates is replaced by Scan Info.
	if idx, err := f.GetSheetIndex(sheetScanInfo); err == nil {
		f.SetActiveSheet(idx)
	}

	return f, nil
}

func writeScanInfo(f *excelize.File, input model.RenderScanInput) error {
	sgCount, eipCount, ebsCount, failedCount := 0, 0, 0, 0
	if input.SecurityGroups != nil {
		sgCount = len(input.SecurityGroups.Records)
		failedCount += len(input.SecurityGroups.Failures)
	}
	if input.ElasticIPs != nil {
		eipCount = len(input.ElasticIPs.Records)
		failedCount += len(input.ElasticIPs.Failures)
	}
	if input.Volumes != nil {
		ebsCount = len(input.Volumes.Records)
		failedCount += len(input.Volumes.Failures)
	}

	rows := [][]any{
		{"Account", input.AccountID},
		{"Generated", time.Now().UTC().Format(time.RFC3339)},
		{"Security Groups", sgCount},
		{"Elastic IPs", eipCount},
		{"EBS Volumes", ebsCount},
		{"Failed Regions", failedCount},
	}

	if err := writeSheet(f, sheetScanInfo, rows); err != nil {
		return err
	}

	if failedCount > 0 {
		failRows := [][]any{}
		appendFailures := func(resource string, failures []scan.RegionFailure) {
			for _, fail := range failures {
				failRows = append(failRows, []any{resource, fail.Region, fail.Reason})
			}
		}
		if input.SecurityGroups != nil {
			appendFailures("security-groups", input.SecurityGroups.Failures)
		}
		if input.ElasticIPs != nil {
			appendFailures("elastic-ips", input.ElasticIPs.Failures)
		}
		if input.Volumes != nil {
			appendFailures("ebs-volumes", input.Volumes.Failures)
		}

		start := len(rows) + 2
		if err := setRow(f, sheetScanInfo, start, []any{"Resource", "Region", "Reason"}); err != nil {
			return err
		}
		for i, row := range failRows {
			if err := setRow(f, sheetScanInfo, start+1+i, row); err != nil {
				return err
			}
		}
	}

	return nil
}

func writeSheet(f *excelize.File, name string, rows [][]any) error {
	if name == sheetScanInfo {
		// Rename the book's default sheet instead of adding a new one.
		if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
			return fmt.Errorf("failed to rename sheet: %w", err)
		}
	} else {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %q: %w", name, err)
		}
	}
	for i, row := range rows {
		if err := setRow(f, name, i+1, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d on %q: %w", rowNum, sheet, err)
	}
	return nil
}

package xlsxoutput

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/AlexisDongMariano/aws-orphans/model"
	"github.com/AlexisDongMariano/aws-orphans/service/ebsscanner"
	"github.com/AlexisDongMariano/aws-orphans/service/scan"
	"github.com/AlexisDongMariano/aws-orphans/service/sgscanner"
)

func sampleInput() model.RenderScanInput {
	return model.RenderScanInput{
		AccountID: "123456789012",
		SecurityGroups: &scan.Result[sgscanner.OrphanedGroup]{
			Records: []sgscanner.OrphanedGroup{
				{Region: "us-east-1", GroupID: "sg-123", GroupName: "stale-web", VpcID: "vpc-1"},
			},
			Regions:  []string{"us-east-1", "us-west-2"},
			Failures: []scan.RegionFailure{{Region: "us-west-2", Reason: "UnauthorizedOperation: denied"}},
		},
		Volumes: &scan.Result[ebsscanner.UnattachedVolume]{
			Records: []ebsscanner.UnattachedVolume{
				{Region: "eu-west-1", VolumeID: "vol-1", SizeGB: 50, VolumeType: "gp3", AvailabilityZone: "eu-west-1a"},
			},
			Regions: []string{"eu-west-1"},
		},
	}
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orphans.xlsx")
	if err := WriteXLSX(path, sampleInput()); err != nil {
		t.Fatalf("WriteXLSX failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := map[string]bool{"Scan Info": false, "Security Groups": false, "EBS Volumes": false}
	for _, s := range sheets {
		if _, ok := want[s]; ok {
			want[s] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("missing sheet %q in %v", name, sheets)
		}
	}
	if len(sheets) != 3 {
		t.Fatalf("expected 3 sheets, got %v", sheets)
	}

	account, err := f.GetCellValue("Scan Info", "B1")
	if err != nil || account != "123456789012" {
		t.Fatalf("unexpected account cell %q (err %v)", account, err)
	}

	groupID, err := f.GetCellValue("Security Groups", "B2")
	if err != nil || groupID != "sg-123" {
		t.Fatalf("unexpected group id cell %q (err %v)", groupID, err)
	}

	volumeID, err := f.GetCellValue("EBS Volumes", "B2")
	if err != nil || volumeID != "vol-1" {
		t.Fatalf("unexpected volume id cell %q (err %v)", volumeID, err)
	}
}

func TestBuildWorkbookFailureRows(t *testing.T) {
	f, err := BuildWorkbook(sampleInput())
	if err != nil {
		t.Fatalf("BuildWorkbook failed: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Scan Info")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}

	foundFailure := false
	for _, row := range rows {
		if len(row) >= 2 && row[0] == "security-groups" && row[1] == "us-west-2" {
			foundFailure = true
		}
	}
	if !foundFailure {
		t.Fatal("expected failed region row on the scan info sheet")
	}
}

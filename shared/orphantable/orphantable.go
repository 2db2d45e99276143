// Package orphantable renders orphaned resource findings as terminal tables.
package orphantable

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/AlexisDongMariano/aws-orphans/model"
	"github.com/AlexisDongMariano/aws-orphans/service/ebsscanner"
	"github.com/AlexisDongMariano/aws-orphans/service/eipscanner"
	"github.com/AlexisDongMariano/aws-orphans/service/scan"
	"github.com/AlexisDongMariano/aws-orphans/service/sgscanner"
)

// DrawOrphanTables renders the scan results in formatted tables.
func DrawOrphanTables(input model.RenderScanInput) {
	sgCount, eipCount, ebsCount, failedCount := countOrphans(input)
	total := sgCount + eipCount + ebsCount

	fmt.Printf("\n🧹 Orphaned Resources — account %s\n", input.AccountID)
	fmt.Printf("   ")
	if total == 0 {
		fmt.Printf("%s ", text.FgGreen.Sprint("✅ No orphans found"))
	}
	if sgCount > 0 {
		fmt.Printf("%s ", text.FgRed.Sprintf("%d Security Groups", sgCount))
	}
	if eipCount > 0 {
		fmt.Printf("%s ", text.FgYellow.Sprintf("%d Elastic IPs", eipCount))
	}
	if ebsCount > 0 {
		fmt.Printf("%s ", text.FgCyan.Sprintf("%d EBS Volumes", ebsCount))
	}
	if failedCount > 0 {
		fmt.Printf("%s ", text.FgHiRed.Sprintf("⚠ %d regions failed", failedCount))
	}
	fmt.Println()

	if input.SecurityGroups != nil {
		drawSecurityGroupTable(input.SecurityGroups)
	}
	if input.ElasticIPs != nil {
		drawElasticIPTable(input.ElasticIPs)
	}
	if input.Volumes != nil {
		drawVolumeTable(input.Volumes)
	}
}

func countOrphans(input model.RenderScanInput) (sg, eip, ebs, failed int) {
	if input.SecurityGroups != nil {
		sg = len(input.SecurityGroups.Records)
		failed += len(input.SecurityGroups.Failures)
	}
	if input.ElasticIPs != nil {
		eip = len(input.ElasticIPs.Records)
		failed += len(input.ElasticIPs.Failures)
	}
	if input.Volumes != nil {
		ebs = len(input.Volumes.Records)
		failed += len(input.Volumes.Failures)
	}
	return
}

func drawSecurityGroupTable(result *scan.Result[sgscanner.OrphanedGroup]) {
	fmt.Println("\n" + text.FgRed.Sprint("🛡  Unassociated Security Groups"))

	if len(result.Records) == 0 {
		fmt.Printf("   %s\n", text.FgGreen.Sprintf("none across %d regions", len(result.Regions)))
	} else {
		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Region", "Group ID", "Group Name", "Description", "VPC ID"})
		for _, r := range result.Records {
			t.AppendRow(table.Row{r.Region, r.GroupID, r.GroupName, truncate(r.Description, 40), r.VpcID})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	}

	drawRegionFailures(result.Failures)
}

func drawElasticIPTable(result *scan.Result[eipscanner.OrphanedAddress]) {
	fmt.Println("\n" + text.FgYellow.Sprint("📡 Unattached Elastic IPs"))

	if len(result.Records) == 0 {
		fmt.Printf("   %s\n", text.FgGreen.Sprintf("none across %d regions", len(result.Regions)))
	} else {
		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Region", "Allocation ID", "Public IP", "Domain"})
		for _, r := range result.Records {
			t.AppendRow(table.Row{r.Region, r.AllocationID, r.PublicIP, r.Domain})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	}

	drawRegionFailures(result.Failures)
}

func drawVolumeTable(result *scan.Result[ebsscanner.UnattachedVolume]) {
	fmt.Println("\n" + text.FgCyan.Sprint("💾 Unattached EBS Volumes"))

	if len(result.Records) == 0 {
		fmt.Printf("   %s\n", text.FgGreen.Sprintf("none across %d regions", len(result.Regions)))
	} else {
		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Region", "Volume ID", "Size (GiB)", "Type", "AZ", "Created"})
		for _, r := range result.Records {
			t.AppendRow(table.Row{r.Region, r.VolumeID, r.SizeGB, r.VolumeType, r.AvailabilityZone, r.CreateTime})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	}

	drawRegionFailures(result.Failures)
}

func drawRegionFailures(failures []scan.RegionFailure) {
	if len(failures) == 0 {
		return
	}

	fmt.Println("   " + text.FgHiRed.Sprint("⚠ Regions that could not be scanned"))

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Region", "Reason"})
	for _, f := range failures {
		t.AppendRow(table.Row{f.Region, truncate(f.Reason, 70)})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

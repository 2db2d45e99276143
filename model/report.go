package model

import (
	"github.com/AlexisDongMariano/aws-orphans/service/ebsscanner"
	"github.com/AlexisDongMariano/aws-orphans/service/eipscanner"
	"github.com/AlexisDongMariano/aws-orphans/service/scan"
	"github.com/AlexisDongMariano/aws-orphans/service/sgscanner"
)

// RenderScanInput carries the results of one scan invocation to the output
// layer. A nil section means the resource type was not requested.
type RenderScanInput struct {
	AccountID      string
	SecurityGroups *scan.Result[sgscanner.OrphanedGroup]
	ElasticIPs     *scan.Result[eipscanner.OrphanedAddress]
	Volumes        *scan.Result[ebsscanner.UnattachedVolume]
}

// OrphanReportJSON is the JSON output for a full orphan scan.
type OrphanReportJSON struct {
	AccountID      string              `json:"account_id"`
	GeneratedAt    string              `json:"generated_at"`
	Summary        OrphanSummaryJSON   `json:"summary"`
	SecurityGroups *SecurityGroupsJSON `json:"orphaned_security_groups,omitempty"`
	ElasticIPs     *ElasticIPsJSON     `json:"orphaned_elastic_ips,omitempty"`
	Volumes        *VolumesJSON        `json:"unattached_ebs_volumes,omitempty"`
}

// OrphanSummaryJSON provides per-type orphan counts.
type OrphanSummaryJSON struct {
	TotalOrphans   int `json:"total_orphans"`
	SecurityGroups int `json:"security_groups"`
	ElasticIPs     int `json:"elastic_ips"`
	Volumes        int `json:"ebs_volumes"`
	FailedRegions  int `json:"failed_regions"`
}

// SecurityGroupsJSON is the security group section of the report.
type SecurityGroupsJSON struct {
	RegionsScanned []string            `json:"regions_scanned"`
	RegionFailures []RegionFailureJSON `json:"region_failures"`
	Orphans        []OrphanedGroupJSON `json:"orphans"`
}

// ElasticIPsJSON is the Elastic IP section of the report.
type ElasticIPsJSON struct {
	RegionsScanned []string            `json:"regions_scanned"`
	RegionFailures []RegionFailureJSON `json:"region_failures"`
	Orphans        []OrphanedEIPJSON   `json:"orphans"`
}

// VolumesJSON is the EBS volume section of the report.
type VolumesJSON struct {
	RegionsScanned []string            `json:"regions_scanned"`
	RegionFailures []RegionFailureJSON `json:"region_failures"`
	Orphans        []UnattachedEBSJSON `json:"orphans"`
}

// RegionFailureJSON records a region whose scan failed and why.
type RegionFailureJSON struct {
	Region string `json:"region"`
	Reason string `json:"reason"`
}

// OrphanedGroupJSON is one orphaned security group.
type OrphanedGroupJSON struct {
	Region      string `json:"region"`
	GroupID     string `json:"group_id"`
	GroupName   string `json:"group_name"`
	Description string `json:"description"`
	VpcID       string `json:"vpc_id"`
	ConsoleURL  string `json:"console_url"`
}

// OrphanedEIPJSON is one unassociated Elastic IP.
type OrphanedEIPJSON struct {
	Region       string `json:"region"`
	AllocationID string `json:"allocation_id"`
	PublicIP     string `json:"public_ip"`
	Domain       string `json:"domain"`
	ConsoleURL   string `json:"console_url"`
}

// UnattachedEBSJSON is one unattached EBS volume.
type UnattachedEBSJSON struct {
	Region           string `json:"region"`
	VolumeID         string `json:"volume_id"`
	SizeGB           int32  `json:"size_gb"`
	VolumeType       string `json:"volume_type"`
	AvailabilityZone string `json:"availability_zone"`
	CreateTime       string `json:"create_time"`
	ConsoleURL       string `json:"console_url"`
}

package storage

import (
	"context"
	"time"
)

// Service defines persistence and query operations for orphan snapshots.
type Service interface {
	SaveScan(ctx context.Context, input SaveScanInput) (int64, error)
	ListSecurityGroups() ([]StoredSecurityGroup, error)
	ListElasticIPs() ([]StoredElasticIP, error)
	ListVolumes() ([]StoredVolume, error)
	GetLastScan() (*ScanSummary, error)
	GetRecentScans(limit int) ([]ScanSummary, error)
	ListRegionErrors(scanID int64) ([]RegionError, error)
	Vacuum(ctx context.Context) error
	PurgeOlderThan(ctx context.Context, days int) (int64, error)
	Close() error
}

// SaveScanInput is the payload saved for a completed scan. A nil resource
// section means that resource was not scanned and its snapshot is left alone.
type SaveScanInput struct {
	ScanUUID       string
	AccountID      string
	DurationSec    int64
	Version        string
	Profile        string
	FlagsJSON      string
	SecurityGroups *SecurityGroupSection
	ElasticIPs     *ElasticIPSection
	Volumes        *VolumeSection
}

// SecurityGroupSection is the security group portion of a scan result.
type SecurityGroupSection struct {
	Failures []RegionError
	Records  []StoredSecurityGroup
}

// ElasticIPSection is the Elastic IP portion of a scan result.
type ElasticIPSection struct {
	Failures []RegionError
	Records  []StoredElasticIP
}

// VolumeSection is the EBS volume portion of a scan result.
type VolumeSection struct {
	Failures []RegionError
	Records  []StoredVolume
}

// StoredSecurityGroup is a persisted unassociated security group.
type StoredSecurityGroup struct {
	Region      string
	GroupID     string
	GroupName   string
	Description string
	VpcID       string
}

// StoredElasticIP is a persisted unattached Elastic IP.
type StoredElasticIP struct {
	Region       string
	AllocationID string
	PublicIP     string
	Domain       string
}

// StoredVolume is a persisted unattached EBS volume.
type StoredVolume struct {
	Region           string
	VolumeID         string
	SizeGB           int32
	VolumeType       string
	AvailabilityZone string
	CreateTime       string
}

// ScanSummary provides compact scan metadata.
type ScanSummary struct {
	ScanID        int64
	ScanUUID      string
	AccountID     string
	ScanTimestamp time.Time
	DurationSec   int64
	SGCount       int
	EIPCount      int
	EBSCount      int
	FailedRegions int
	Version       string
	Profile       string
}

// RegionError records a region that could not be scanned for a resource.
type RegionError struct {
	Resource string `json:"resource"`
	Region   string `json:"region"`
	Reason   string `json:"reason"`
}

// Package ebsscanner finds EBS volumes in the unattached "available" state.
package ebsscanner

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// EC2ClientAPI defines the EC2 client methods used by this scanner.
type EC2ClientAPI interface {
	DescribeVolumes(ctx context.Context, params *ec2.DescribeVolumesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeVolumesOutput, error)
}

// ClientFactory returns an EC2 client scoped to the given region.
type ClientFactory func(region string) EC2ClientAPI

// Service scans one region at a time for unattached EBS volumes.
type Service interface {
	ScanRegion(ctx context.Context, region string) ([]UnattachedVolume, error)
}

// UnattachedVolume is an EBS volume with no attachment (state "available").
type UnattachedVolume struct {
	Region           string
	VolumeID         string
	SizeGB           int32
	VolumeType       string
	AvailabilityZone string
	CreateTime       string // RFC 3339, empty when the provider omits it
}

// ConsoleURL returns the AWS console deep link for this volume.
func (v UnattachedVolume) ConsoleURL() string {
	return fmt.Sprintf(
		"https://%s.console.aws.amazon.com/ec2/v2/home?region=%s#VolumeDetails:VolumeId=%s",
		v.Region, v.Region, v.VolumeID,
	)
}

type service struct {
	clients ClientFactory
}

// Package eipscanner finds Elastic IPs with no association.
package eipscanner

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// EC2ClientAPI defines the EC2 client methods used by this scanner.
type EC2ClientAPI interface {
	DescribeAddresses(ctx context.Context, params *ec2.DescribeAddressesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeAddressesOutput, error)
}

// ClientFactory returns an EC2 client scoped to the given region.
type ClientFactory func(region string) EC2ClientAPI

// Service scans one region at a time for unassociated Elastic IPs.
type Service interface {
	ScanRegion(ctx context.Context, region string) ([]OrphanedAddress, error)
}

// OrphanedAddress is an allocated Elastic IP not associated with any
// instance or network interface.
type OrphanedAddress struct {
	Region       string
	AllocationID string
	PublicIP     string
	Domain       string
}

// ConsoleURL returns the AWS console deep link for this Elastic IP.
func (a OrphanedAddress) ConsoleURL() string {
	return fmt.Sprintf(
		"https://%s.console.aws.amazon.com/ec2/home?region=%s#ElasticIpDetails:AllocationId=%s",
		a.Region, a.Region, a.AllocationID,
	)
}

type service struct {
	clients ClientFactory
}

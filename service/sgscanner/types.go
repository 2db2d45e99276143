// Package sgscanner finds security groups not attached to any network interface.
package sgscanner

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// EC2ClientAPI defines the EC2 client methods used by this scanner.
type EC2ClientAPI interface {
	DescribeSecurityGroups(ctx context.Context, params *ec2.DescribeSecurityGroupsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSecurityGroupsOutput, error)
	DescribeNetworkInterfaces(ctx context.Context, params *ec2.DescribeNetworkInterfacesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeNetworkInterfacesOutput, error)
}

// ClientFactory returns an EC2 client scoped to the given region.
type ClientFactory func(region string) EC2ClientAPI

// Options controls scanner behavior.
type Options struct {
	// IncludeDefault reports the per-VPC default security group as orphaned
	// when unused. Off by default: the default group cannot be deleted.
	IncludeDefault bool
}

// Service scans one region at a time for orphaned security groups.
type Service interface {
	ScanRegion(ctx context.Context, region string) ([]OrphanedGroup, error)
}

// OrphanedGroup is a security group with no network interface attachment.
type OrphanedGroup struct {
	Region      string
	GroupID     string
	GroupName   string
	Description string
	VpcID       string
}

// ConsoleURL returns the AWS console deep link for this security group.
func (g OrphanedGroup) ConsoleURL() string {
	return fmt.Sprintf(
		"https://%s.console.aws.amazon.com/ec2/home?region=%s#SecurityGroup:groupId=%s",
		g.Region, g.Region, g.GroupID,
	)
}

type service struct {
	clients ClientFactory
	opts    Options
}

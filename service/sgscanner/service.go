package sgscanner

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

const defaultGroupName = "default"

// NewService creates a security group scanner over the given client factory.
func NewService(clients ClientFactory, opts Options) Service {
	return &service{clients: clients, opts: opts}
}

// ScanRegion returns the security groups in region that no network interface
// references, in the order the provider returned them. Groups attached to any
// ENI (EC2, RDS, Lambda in VPC, ELB, etc.) count as in use.
func (s *service) ScanRegion(ctx context.Context, region string) ([]OrphanedGroup, error) {
	client := s.clients(region)

	var groups []OrphanedGroup

	sgPaginator := ec2.NewDescribeSecurityGroupsPaginator(client, &ec2.DescribeSecurityGroupsInput{})
	for sgPaginator.HasMorePages() {
		page, err := sgPaginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe security groups in %s: %w", region, err)
		}
		for _, sg := range page.SecurityGroups {
			groups = append(groups, OrphanedGroup{
				Region:      region,
				GroupID:     aws.ToString(sg.GroupId),
				GroupName:   aws.ToString(sg.GroupName),
				Description: aws.ToString(sg.Description),
				VpcID:       aws.ToString(sg.VpcId),
			})
		}
	}

	used, err := s.usedGroupIDs(ctx, client, region)
	if err != nil {
		return nil, err
	}

	var orphaned []OrphanedGroup
	for _, g := range groups {
		if used[g.GroupID] {
			continue
		}
		if !s.opts.IncludeDefault && g.GroupName == defaultGroupName {
			continue
		}
		orphaned = append(orphaned, g)
	}
	return orphaned, nil
}

// usedGroupIDs collects the ids of every security group referenced by at
// least one network interface in the region.
func (s *service) usedGroupIDs(ctx context.Context, client EC2ClientAPI, region string) (map[string]bool, error) {
	used := make(map[string]bool)

	paginator := ec2.NewDescribeNetworkInterfacesPaginator(client, &ec2.DescribeNetworkInterfacesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe network interfaces in %s: %w", region, err)
		}
		for _, eni := range page.NetworkInterfaces {
			for _, group := range eni.Groups {
				if id := aws.ToString(group.GroupId); id != "" {
					used[id] = true
				}
			}
		}
	}
	return used, nil
}

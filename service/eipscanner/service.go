package eipscanner

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// NewService creates an Elastic IP scanner over the given client factory.
func NewService(clients ClientFactory) Service {
	return &service{clients: clients}
}

// ScanRegion returns the Elastic IPs in region that carry no association id,
// in the order the provider returned them. DescribeAddresses is not
// paginated by the EC2 API.
func (s *service) ScanRegion(ctx context.Context, region string) ([]OrphanedAddress, error) {
	client := s.clients(region)

	out, err := client.DescribeAddresses(ctx, &ec2.DescribeAddressesInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to describe addresses in %s: %w", region, err)
	}

	var orphaned []OrphanedAddress
	for _, addr := range out.Addresses {
		if aws.ToString(addr.AssociationId) != "" {
			continue
		}
		domain := string(addr.Domain)
		if domain == "" {
			domain = "vpc"
		}
		orphaned = append(orphaned, OrphanedAddress{
			Region:       region,
			AllocationID: aws.ToString(addr.AllocationId),
			PublicIP:     aws.ToString(addr.PublicIp),
			Domain:       domain,
		})
	}
	return orphaned, nil
}

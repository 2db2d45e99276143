package ebsscanner

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// NewService creates an EBS volume scanner over the given client factory.
func NewService(clients ClientFactory) Service {
	return &service{clients: clients}
}

// ScanRegion returns the volumes in region whose attachment list is empty,
// in the order the provider returned them. The describe call is filtered
// server-side to status "available" so attached volumes never cross the wire.
func (s *service) ScanRegion(ctx context.Context, region string) ([]UnattachedVolume, error) {
	client := s.clients(region)

	input := &ec2.DescribeVolumesInput{
		Filters: []types.Filter{
			{Name: aws.String("status"), Values: []string{"available"}},
		},
	}

	var orphaned []UnattachedVolume

	paginator := ec2.NewDescribeVolumesPaginator(client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe volumes in %s: %w", region, err)
		}
		for _, v := range page.Volumes {
			if len(v.Attachments) > 0 {
				continue
			}
			createTime := ""
			if v.CreateTime != nil {
				createTime = v.CreateTime.UTC().Format(time.RFC3339)
			}
			orphaned = append(orphaned, UnattachedVolume{
				Region:           region,
				VolumeID:         aws.ToString(v.VolumeId),
				SizeGB:           aws.ToInt32(v.Size),
				VolumeType:       string(v.VolumeType),
				AvailabilityZone: aws.ToString(v.AvailabilityZone),
				CreateTime:       createTime,
			})
		}
	}
	return orphaned, nil
}

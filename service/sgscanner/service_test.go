package sgscanner

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

type fakeEC2 struct {
	groups     []types.SecurityGroup
	interfaces []types.NetworkInterface
	sgErr      error
	eniErr     error
}

func (f *fakeEC2) DescribeSecurityGroups(_ context.Context, _ *ec2.DescribeSecurityGroupsInput, _ ...func(*ec2.Options)) (*ec2.DescribeSecurityGroupsOutput, error) {
	if f.sgErr != nil {
		return nil, f.sgErr
	}
	return &ec2.DescribeSecurityGroupsOutput{SecurityGroups: f.groups}, nil
}

func (f *fakeEC2) DescribeNetworkInterfaces(_ context.Context, _ *ec2.DescribeNetworkInterfacesInput, _ ...func(*ec2.Options)) (*ec2.DescribeNetworkInterfacesOutput, error) {
	if f.eniErr != nil {
		return nil, f.eniErr
	}
	return &ec2.DescribeNetworkInterfacesOutput{NetworkInterfaces: f.interfaces}, nil
}

func factoryFor(client EC2ClientAPI) ClientFactory {
	return func(string) EC2ClientAPI { return client }
}

func sg(id, name, vpc string) types.SecurityGroup {
	return types.SecurityGroup{
		GroupId:     aws.String(id),
		GroupName:   aws.String(name),
		Description: aws.String("desc " + id),
		VpcId:       aws.String(vpc),
	}
}

func eniWith(groupIDs ...string) types.NetworkInterface {
	var groups []types.GroupIdentifier
	for _, id := range groupIDs {
		groups = append(groups, types.GroupIdentifier{GroupId: aws.String(id)})
	}
	return types.NetworkInterface{Groups: groups}
}

func TestScanRegionExcludesAttachedAndDefaultGroups(t *testing.T) {
	client := &fakeEC2{
		groups: []types.SecurityGroup{
			sg("sg-a", "default", "vpc-1"),
			sg("sg-b", "web", "vpc-1"),
			sg("sg-c", "stale", "vpc-1"),
		},
		interfaces: []types.NetworkInterface{eniWith("sg-b")},
	}

	svc := NewService(factoryFor(client), Options{})
	got, err := svc.ScanRegion(context.Background(), "us-east-1")
	if err != nil {
		t.Fatalf("ScanRegion failed: %v", err)
	}
	if len(got) != 1 || got[0].GroupID != "sg-c" {
		t.Fatalf("expected only sg-c, got %+v", got)
	}
	if got[0].Region != "us-east-1" || got[0].GroupName != "stale" {
		t.Fatalf("unexpected record fields: %+v", got[0])
	}
}

func TestScanRegionIncludeDefault(t *testing.T) {
	client := &fakeEC2{
		groups: []types.SecurityGroup{
			sg("sg-a", "default", "vpc-1"),
			sg("sg-b", "web", "vpc-1"),
			sg("sg-c", "stale", "vpc-1"),
		},
		interfaces: []types.NetworkInterface{eniWith("sg-b")},
	}

	svc := NewService(factoryFor(client), Options{IncludeDefault: true})
	got, err := svc.ScanRegion(context.Background(), "us-east-1")
	if err != nil {
		t.Fatalf("ScanRegion failed: %v", err)
	}
	ids := make([]string, 0, len(got))
	for _, g := range got {
		ids = append(ids, g.GroupID)
	}
	if !reflect.DeepEqual(ids, []string{"sg-a", "sg-c"}) {
		t.Fatalf("expected [sg-a sg-c], got %v", ids)
	}
}

func TestScanRegionPreservesProviderOrder(t *testing.T) {
	client := &fakeEC2{
		groups: []types.SecurityGroup{
			sg("sg-3", "c", "vpc-1"),
			sg("sg-1", "a", "vpc-1"),
			sg("sg-2", "b", "vpc-1"),
		},
	}

	svc := NewService(factoryFor(client), Options{})
	got, err := svc.ScanRegion(context.Background(), "eu-west-1")
	if err != nil {
		t.Fatalf("ScanRegion failed: %v", err)
	}
	ids := make([]string, 0, len(got))
	for _, g := range got {
		ids = append(ids, g.GroupID)
	}
	if !reflect.DeepEqual(ids, []string{"sg-3", "sg-1", "sg-2"}) {
		t.Fatalf("provider order not preserved: %v", ids)
	}
}

func TestScanRegionPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")

	svc := NewService(factoryFor(&fakeEC2{sgErr: boom}), Options{})
	if _, err := svc.ScanRegion(context.Background(), "us-east-1"); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped sg error, got %v", err)
	}

	svc = NewService(factoryFor(&fakeEC2{eniErr: boom}), Options{})
	if _, err := svc.ScanRegion(context.Background(), "us-east-1"); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped eni error, got %v", err)
	}
}

func TestConsoleURL(t *testing.T) {
	g := OrphanedGroup{Region: "eu-west-2", GroupID: "sg-123"}
	want := "https://eu-west-2.console.aws.amazon.com/ec2/home?region=eu-west-2#SecurityGroup:groupId=sg-123"
	if got := g.ConsoleURL(); got != want {
		t.Fatalf("ConsoleURL() = %q, want %q", got, want)
	}
}

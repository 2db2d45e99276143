package orchestrator

import (
	"context"
	"testing"

	"github.com/aws/smithy-go"

	"github.com/AlexisDongMariano/aws-orphans/model"
	"github.com/AlexisDongMariano/aws-orphans/service/ebsscanner"
	"github.com/AlexisDongMariano/aws-orphans/service/eipscanner"
	"github.com/AlexisDongMariano/aws-orphans/service/scan"
	"github.com/AlexisDongMariano/aws-orphans/service/sgscanner"
	"github.com/AlexisDongMariano/aws-orphans/service/storage"
)

type fakeSTSService struct {
	accountID string
	err       error
}

func (f *fakeSTSService) GetAccountID(context.Context) (string, error) {
	return f.accountID, f.err
}

type fakeSGScanner struct {
	groups map[string][]sgscanner.OrphanedGroup
}

func (f *fakeSGScanner) ScanRegion(_ context.Context, region string) ([]sgscanner.OrphanedGroup, error) {
	return f.groups[region], nil
}

type fakeEIPScanner struct {
	addrs map[string][]eipscanner.OrphanedAddress
	err   error
}

func (f *fakeEIPScanner) ScanRegion(_ context.Context, region string) ([]eipscanner.OrphanedAddress, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.addrs[region], nil
}

type fakeEBSScanner struct{}

func (f *fakeEBSScanner) ScanRegion(context.Context, string) ([]ebsscanner.UnattachedVolume, error) {
	return nil, nil
}

type fakeOutputService struct {
	rendered *model.RenderScanInput
	stopped  bool
}

func (f *fakeOutputService) RenderScan(input model.RenderScanInput) error {
	f.rendered = &input
	return nil
}

func (f *fakeOutputService) StopSpinner() { f.stopped = true }

type fakeStorage struct {
	saved *storage.SaveScanInput
}

func (f *fakeStorage) SaveScan(_ context.Context, input storage.SaveScanInput) (int64, error) {
	f.saved = &input
	return 1, nil
}

func (f *fakeStorage) ListSecurityGroups() ([]storage.StoredSecurityGroup, error) { return nil, nil }
func (f *fakeStorage) ListElasticIPs() ([]storage.StoredElasticIP, error)         { return nil, nil }
func (f *fakeStorage) ListVolumes() ([]storage.StoredVolume, error)               { return nil, nil }
func (f *fakeStorage) GetLastScan() (*storage.ScanSummary, error)                 { return nil, nil }
func (f *fakeStorage) GetRecentScans(int) ([]storage.ScanSummary, error)          { return nil, nil }
func (f *fakeStorage) ListRegionErrors(int64) ([]storage.RegionError, error)      { return nil, nil }
func (f *fakeStorage) Vacuum(context.Context) error                               { return nil }
func (f *fakeStorage) PurgeOlderThan(context.Context, int) (int64, error)         { return 0, nil }
func (f *fakeStorage) Close() error                                               { return nil }

func newTestService(outputSvc *fakeOutputService, storageSvc storage.Service, eipErr error) Service {
	return NewService(
		&fakeSTSService{accountID: "123456789012"},
		&fakeSGScanner{groups: map[string][]sgscanner.OrphanedGroup{
			"us-east-1": {{Region: "us-east-1", GroupID: "sg-1", GroupName: "stale"}},
		}},
		&fakeEIPScanner{addrs: map[string][]eipscanner.OrphanedAddress{
			"us-west-2": {{Region: "us-west-2", AllocationID: "eipalloc-1"}},
		}, err: eipErr},
		&fakeEBSScanner{},
		outputSvc,
		storageSvc,
		model.VersionInfo{Version: "test"},
		[]string{"us-east-1", "us-west-2"},
		scan.Options{MaxParallel: 2},
		nil,
	)
}

func TestOrchestrateFullScan(t *testing.T) {
	outputSvc := &fakeOutputService{}
	svc := newTestService(outputSvc, nil, nil)

	if err := svc.Orchestrate(model.Flags{}); err != nil {
		t.Fatalf("Orchestrate failed: %v", err)
	}
	if outputSvc.rendered == nil {
		t.Fatal("expected results to be rendered")
	}
	if !outputSvc.stopped {
		t.Fatal("expected spinner to be stopped")
	}

	input := outputSvc.rendered
	if input.AccountID != "123456789012" {
		t.Fatalf("unexpected account id %q", input.AccountID)
	}
	if input.SecurityGroups == nil || input.ElasticIPs == nil || input.Volumes == nil {
		t.Fatalf("expected all three sections, got %+v", input)
	}
	if len(input.SecurityGroups.Records) != 1 || input.SecurityGroups.Records[0].GroupID != "sg-1" {
		t.Fatalf("unexpected security groups: %+v", input.SecurityGroups.Records)
	}
	if len(input.ElasticIPs.Records) != 1 {
		t.Fatalf("unexpected elastic ips: %+v", input.ElasticIPs.Records)
	}
}

func TestOrchestrateResourceFilter(t *testing.T) {
	outputSvc := &fakeOutputService{}
	svc := newTestService(outputSvc, nil, nil)

	if err := svc.Orchestrate(model.Flags{Resources: []string{"eip"}}); err != nil {
		t.Fatalf("Orchestrate failed: %v", err)
	}

	input := outputSvc.rendered
	if input.SecurityGroups != nil || input.Volumes != nil {
		t.Fatalf("expected only the elastic ip section, got %+v", input)
	}
	if input.ElasticIPs == nil || len(input.ElasticIPs.Records) != 1 {
		t.Fatalf("unexpected elastic ips: %+v", input.ElasticIPs)
	}
}

func TestOrchestrateStoresResults(t *testing.T) {
	outputSvc := &fakeOutputService{}
	storageSvc := &fakeStorage{}
	svc := newTestService(outputSvc, storageSvc, nil)

	if err := svc.Orchestrate(model.Flags{Store: true, Profile: "prod"}); err != nil {
		t.Fatalf("Orchestrate failed: %v", err)
	}
	if storageSvc.saved == nil {
		t.Fatal("expected scan to be stored")
	}

	saved := storageSvc.saved
	if saved.AccountID != "123456789012" || saved.Profile != "prod" {
		t.Fatalf("unexpected saved metadata: %+v", saved)
	}
	if saved.ScanUUID == "" {
		t.Fatal("expected generated scan uuid")
	}
	if saved.SecurityGroups == nil || len(saved.SecurityGroups.Records) != 1 {
		t.Fatalf("unexpected saved security groups: %+v", saved.SecurityGroups)
	}
}

func TestOrchestrateSkipsStoreWithoutFlag(t *testing.T) {
	outputSvc := &fakeOutputService{}
	storageSvc := &fakeStorage{}
	svc := newTestService(outputSvc, storageSvc, nil)

	if err := svc.Orchestrate(model.Flags{}); err != nil {
		t.Fatalf("Orchestrate failed: %v", err)
	}
	if storageSvc.saved != nil {
		t.Fatal("expected no scan stored without --store")
	}
}

func TestOrchestrateFatalScannerError(t *testing.T) {
	outputSvc := &fakeOutputService{}
	fatal := &smithy.GenericAPIError{Code: "InvalidClientTokenId", Message: "token not valid"}
	svc := newTestService(outputSvc, nil, fatal)

	err := svc.Orchestrate(model.Flags{})
	if err == nil {
		t.Fatal("expected error from failing scanner")
	}
	if outputSvc.rendered != nil {
		t.Fatal("expected no partial results on fatal error")
	}
	if !outputSvc.stopped {
		t.Fatal("expected spinner to be stopped on error")
	}
}

func TestOrchestrateVersion(t *testing.T) {
	outputSvc := &fakeOutputService{}
	svc := newTestService(outputSvc, nil, nil)

	if err := svc.Orchestrate(model.Flags{Version: true}); err != nil {
		t.Fatalf("Orchestrate failed: %v", err)
	}
	if outputSvc.rendered != nil {
		t.Fatal("expected no scan for version workflow")
	}
}

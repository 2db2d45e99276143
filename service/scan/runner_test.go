package scan

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/aws/smithy-go"
)

func accessDenied() error {
	return &smithy.GenericAPIError{Code: "UnauthorizedOperation", Message: "not authorized"}
}

func badToken() error {
	return &smithy.GenericAPIError{Code: "InvalidClientTokenId", Message: "token not valid"}
}

func TestRunConcatenatesInRequestOrder(t *testing.T) {
	fn := func(_ context.Context, region string) ([]string, error) {
		switch region {
		case "eu-west-1":
			return []string{"eu-1", "eu-2"}, nil
		case "us-east-1":
			return []string{"us-1"}, nil
		}
		return nil, nil
	}

	res, err := Run(context.Background(), []string{"eu-west-1", "us-east-1"}, Options{}, fn)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !reflect.DeepEqual(res.Records, []string{"eu-1", "eu-2", "us-1"}) {
		t.Fatalf("unexpected record order: %v", res.Records)
	}
	if !reflect.DeepEqual(res.Regions, []string{"eu-west-1", "us-east-1"}) {
		t.Fatalf("unexpected regions: %v", res.Regions)
	}
}

func TestRunOrderIsDeterministicWhenParallel(t *testing.T) {
	regions := []string{"r1", "r2", "r3", "r4", "r5", "r6"}
	fn := func(_ context.Context, region string) ([]string, error) {
		// Finish in roughly reverse order to exercise the reassembly.
		time.Sleep(time.Duration(len(regions)-int(region[1]-'0')) * 2 * time.Millisecond)
		return []string{region + "-a", region + "-b"}, nil
	}

	res, err := Run(context.Background(), regions, Options{MaxParallel: 6}, fn)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	var want []string
	for _, r := range regions {
		want = append(want, r+"-a", r+"-b")
	}
	if !reflect.DeepEqual(res.Records, want) {
		t.Fatalf("parallel run broke ordering:\n got %v\nwant %v", res.Records, want)
	}
}

func TestRunIsolatesRegionFailures(t *testing.T) {
	fn := func(_ context.Context, region string) ([]string, error) {
		if region == "us-west-2" {
			return nil, accessDenied()
		}
		return []string{region + "-orphan"}, nil
	}

	res, err := Run(context.Background(), []string{"us-east-1", "us-west-2", "eu-west-1"}, Options{}, fn)
	if err != nil {
		t.Fatalf("Run should not fail on a recoverable region error: %v", err)
	}
	if !reflect.DeepEqual(res.Records, []string{"us-east-1-orphan", "eu-west-1-orphan"}) {
		t.Fatalf("unexpected records: %v", res.Records)
	}
	if len(res.Failures) != 1 || res.Failures[0].Region != "us-west-2" {
		t.Fatalf("unexpected failures: %+v", res.Failures)
	}
	if f, ok := res.FailureFor("us-west-2"); !ok || f.Reason == "" {
		t.Fatalf("expected a reason for us-west-2, got %+v ok=%v", f, ok)
	}
	if _, ok := res.FailureFor("us-east-1"); ok {
		t.Fatal("us-east-1 succeeded and must not be marked failed")
	}
}

func TestRunAbortsOnFatalError(t *testing.T) {
	calls := 0
	fn := func(_ context.Context, region string) ([]string, error) {
		calls++
		if region == "us-east-1" {
			return nil, fmt.Errorf("loading credentials: %w", badToken())
		}
		return []string{region}, nil
	}

	res, err := Run(context.Background(), []string{"us-east-1", "eu-west-1"}, Options{}, fn)
	if err == nil {
		t.Fatal("expected fatal credential error to abort the scan")
	}
	if len(res.Records) != 0 || len(res.Failures) != 0 {
		t.Fatalf("fatal abort must discard partial results, got %+v", res)
	}
	_ = calls
}

func TestRunEmptySucceedsAfterFailureElsewhere(t *testing.T) {
	fn := func(_ context.Context, region string) ([]string, error) {
		if region == "us-west-2" {
			return nil, accessDenied()
		}
		return nil, nil
	}

	res, err := Run(context.Background(), []string{"us-east-1", "us-west-2"}, Options{}, fn)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	// Zero orphans in us-east-1 is distinguishable from the us-west-2 failure.
	if _, ok := res.FailureFor("us-east-1"); ok {
		t.Fatal("us-east-1 must not be marked failed")
	}
	if _, ok := res.FailureFor("us-west-2"); !ok {
		t.Fatal("us-west-2 must be marked failed")
	}
}

func TestRunIsIdempotent(t *testing.T) {
	fn := func(_ context.Context, region string) ([]string, error) {
		return []string{region + "-1", region + "-2"}, nil
	}
	regions := []string{"eu-west-1", "us-east-1"}

	first, err := Run(context.Background(), regions, Options{}, fn)
	if err != nil {
		t.Fatalf("first Run failed: %v", err)
	}
	second, err := Run(context.Background(), regions, Options{}, fn)
	if err != nil {
		t.Fatalf("second Run failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("scans over unchanged state must match:\nfirst %+v\nsecond %+v", first, second)
	}
}

func TestRunRegionTimeoutIsRecoverable(t *testing.T) {
	fn := func(ctx context.Context, region string) ([]string, error) {
		if region == "ap-south-1" {
			<-ctx.Done()
			return nil, ctx.Err()
		}
		return []string{region}, nil
	}

	res, err := Run(context.Background(), []string{"ap-south-1", "us-east-1"},
		Options{RegionTimeout: 10 * time.Millisecond}, fn)
	if err != nil {
		t.Fatalf("a hung region must not abort the scan: %v", err)
	}
	if f, ok := res.FailureFor("ap-south-1"); !ok || f.Reason != "region scan timed out" {
		t.Fatalf("expected timeout failure for ap-south-1, got %+v ok=%v", f, ok)
	}
	if !reflect.DeepEqual(res.Records, []string{"us-east-1"}) {
		t.Fatalf("unexpected records: %v", res.Records)
	}
}

func TestDedupe(t *testing.T) {
	got := Dedupe([]string{" us-east-1 ", "", "eu-west-1", "us-east-1"})
	if !reflect.DeepEqual(got, []string{"us-east-1", "eu-west-1"}) {
		t.Fatalf("unexpected dedupe result: %v", got)
	}
}

func TestIsFatal(t *testing.T) {
	if !IsFatal(badToken()) {
		t.Fatal("InvalidClientTokenId must be fatal")
	}
	if !IsFatal(fmt.Errorf("wrapped: %w", &smithy.GenericAPIError{Code: "SignatureDoesNotMatch"})) {
		t.Fatal("wrapped SignatureDoesNotMatch must be fatal")
	}
	for _, code := range []string{"UnauthorizedOperation", "OptInRequired", "Throttling", "RequestLimitExceeded", "AuthFailure"} {
		if IsFatal(&smithy.GenericAPIError{Code: code}) {
			t.Fatalf("%s is region-scoped and must be recoverable", code)
		}
	}
	if IsFatal(errors.New("connection reset")) {
		t.Fatal("plain network errors must be recoverable")
	}
}

func TestFailureReason(t *testing.T) {
	if got := FailureReason(accessDenied()); got != "UnauthorizedOperation: not authorized" {
		t.Fatalf("unexpected reason: %q", got)
	}
	if got := FailureReason(context.DeadlineExceeded); got != "region scan timed out" {
		t.Fatalf("unexpected timeout reason: %q", got)
	}
	if got := FailureReason(errors.New("dial tcp: i/o timeout")); got != "dial tcp: i/o timeout" {
		t.Fatalf("unexpected plain reason: %q", got)
	}
}

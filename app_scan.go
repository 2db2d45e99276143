package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/rs/zerolog"

	"github.com/AlexisDongMariano/aws-orphans/model"
	awsconfig "github.com/AlexisDongMariano/aws-orphans/service/aws_config"
	"github.com/AlexisDongMariano/aws-orphans/service/ebsscanner"
	"github.com/AlexisDongMariano/aws-orphans/service/eipscanner"
	"github.com/AlexisDongMariano/aws-orphans/service/orchestrator"
	"github.com/AlexisDongMariano/aws-orphans/service/output"
	"github.com/AlexisDongMariano/aws-orphans/service/regions"
	"github.com/AlexisDongMariano/aws-orphans/service/scan"
	"github.com/AlexisDongMariano/aws-orphans/service/sgscanner"
	"github.com/AlexisDongMariano/aws-orphans/service/storage"
	awssts "github.com/AlexisDongMariano/aws-orphans/service/sts"
	"github.com/AlexisDongMariano/aws-orphans/shared/spinner"
)

func runOrphanScan(flags model.Flags, versionInfo model.VersionInfo, storageService storage.Service) error {
	ctx := context.Background()

	cfgService := awsconfig.NewService()
	awsCfg, err := cfgService.GetAWSCfg(ctx, flags.Region, flags.Profile, awsconfig.StaticCredentials{})
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}

	scanRegions, err := resolveRegions(ctx, flags, awsCfg)
	if err != nil {
		return err
	}

	if flags.Output == "table" && flags.OutputFile == "" {
		spinner.StartSpinner()
		defer spinner.StopSpinner()
	}

	logger := newLogger()

	clients := ec2ClientFactory(awsCfg)
	stsService := awssts.NewService(awsCfg)
	sgService := sgscanner.NewService(
		func(region string) sgscanner.EC2ClientAPI { return clients(region) },
		sgscanner.Options{IncludeDefault: flags.IncludeDefaultSG},
	)
	eipService := eipscanner.NewService(
		func(region string) eipscanner.EC2ClientAPI { return clients(region) },
	)
	ebsService := ebsscanner.NewService(
		func(region string) ebsscanner.EC2ClientAPI { return clients(region) },
	)
	outputService := output.NewService(flags.Output, flags.OutputFile)

	scanOpts := scan.Options{
		MaxParallel:   flags.MaxParallel,
		RegionTimeout: time.Duration(flags.RegionTimeoutSec) * time.Second,
		Logger:        &logger,
	}

	orchestratorService := orchestrator.NewService(
		stsService,
		sgService,
		eipService,
		ebsService,
		outputService,
		storageService,
		versionInfo,
		scanRegions,
		scanOpts,
		&logger,
	)

	if err := orchestratorService.Orchestrate(flags); err != nil {
		return fmt.Errorf("orphan scan failed: %w", err)
	}
	return nil
}

// ec2ClientFactory returns region-scoped EC2 clients off one shared config.
func ec2ClientFactory(cfg aws.Config) func(region string) *ec2.Client {
	return func(region string) *ec2.Client {
		return ec2.NewFromConfig(cfg, func(o *ec2.Options) {
			o.Region = region
		})
	}
}

// resolveRegions decides which regions the scan covers. A single --region
// wins over --regions, which wins over --all-regions; with none of the
// three the default catalog applies.
func resolveRegions(ctx context.Context, flags model.Flags, cfg aws.Config) ([]string, error) {
	if flags.Region != "" {
		return []string{flags.Region}, nil
	}
	if len(flags.Regions) > 0 {
		filtered := regions.Filter(flags.Regions)
		if len(filtered) == 0 {
			return nil, fmt.Errorf("none of the requested regions are known: %v", flags.Regions)
		}
		return filtered, nil
	}
	if flags.AllRegions {
		return discoverRegions(ctx, cfg)
	}
	return regions.Catalog(), nil
}

// discoverRegions asks EC2 for every region enabled on the account. Regions
// already in the catalog keep catalog order; extras follow alphabetically.
func discoverRegions(ctx context.Context, cfg aws.Config) ([]string, error) {
	client := ec2.NewFromConfig(cfg)
	out, err := client.DescribeRegions(ctx, &ec2.DescribeRegionsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to discover regions: %w", err)
	}

	enabled := make(map[string]bool, len(out.Regions))
	for _, r := range out.Regions {
		if r.RegionName != nil {
			enabled[*r.RegionName] = true
		}
	}

	var ordered []string
	for _, r := range regions.Catalog() {
		if enabled[r] {
			ordered = append(ordered, r)
			delete(enabled, r)
		}
	}
	var extras []string
	for r := range enabled {
		extras = append(extras, r)
	}
	sort.Strings(extras)
	ordered = append(ordered, extras...)

	if len(ordered) == 0 {
		return nil, fmt.Errorf("region discovery returned no regions")
	}
	return ordered, nil
}

func newLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger().Level(zerolog.WarnLevel)
}

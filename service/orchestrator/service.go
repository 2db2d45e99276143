// Package orchestrator coordinates the multi-region orphan scans.
package orchestrator

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/AlexisDongMariano/aws-orphans/model"
	"github.com/AlexisDongMariano/aws-orphans/service/ebsscanner"
	"github.com/AlexisDongMariano/aws-orphans/service/eipscanner"
	"github.com/AlexisDongMariano/aws-orphans/service/output"
	"github.com/AlexisDongMariano/aws-orphans/service/scan"
	"github.com/AlexisDongMariano/aws-orphans/service/sgscanner"
	"github.com/AlexisDongMariano/aws-orphans/service/storage"
	awssts "github.com/AlexisDongMariano/aws-orphans/service/sts"
	"github.com/AlexisDongMariano/aws-orphans/shared/xlsxoutput"
)

// NewService creates a new orchestrator service.
func NewService(
	stsService awssts.Service,
	sgService sgscanner.Service,
	eipService eipscanner.Service,
	ebsService ebsscanner.Service,
	outputService output.Service,
	storageService storage.Service,
	versionInfo model.VersionInfo,
	regions []string,
	scanOpts scan.Options,
	logger *zerolog.Logger,
) Service {
	return &service{
		stsService:     stsService,
		sgService:      sgService,
		eipService:     eipService,
		ebsService:     ebsService,
		outputService:  outputService,
		storageService: storageService,
		versionInfo:    versionInfo,
		regions:        regions,
		scanOpts:       scanOpts,
		logger:         logger,
	}
}

func (s *service) Orchestrate(flags model.Flags) error {
	if flags.Version {
		return s.versionWorkflow()
	}
	return s.scanWorkflow(flags)
}

func (s *service) versionWorkflow() error {
	s.outputService.StopSpinner()

	fmt.Printf("aws-orphans version %s\n", s.versionInfo.Version)
	fmt.Printf("commit: %s\n", s.versionInfo.Commit)
	fmt.Printf("built at: %s\n", s.versionInfo.Date)

	return nil
}

func wantResource(flags model.Flags, name string) bool {
	if len(flags.Resources) == 0 {
		return true
	}
	return slices.Contains(flags.Resources, name)
}

func (s *service) scanWorkflow(flags model.Flags) error {
	startedAt := time.Now()
	scanCtx := context.Background()
	g, groupCtx := errgroup.WithContext(scanCtx)

	var (
		accountID string
		sgResult  *scan.Result[sgscanner.OrphanedGroup]
		eipResult *scan.Result[eipscanner.OrphanedAddress]
		ebsResult *scan.Result[ebsscanner.UnattachedVolume]
	)

	g.Go(func() error {
		var err error
		accountID, err = s.stsService.GetAccountID(groupCtx)
		if err != nil {
			return fmt.Errorf("failed to resolve account: %w", err)
		}
		return nil
	})

	if wantResource(flags, "sg") {
		g.Go(func() error {
			result, err := scan.Run(groupCtx, s.regions, s.scanOpts, s.sgService.ScanRegion)
			if err != nil {
				return err
			}
			sgResult = &result
			return nil
		})
	}
	if wantResource(flags, "eip") {
		g.Go(func() error {
			result, err := scan.Run(groupCtx, s.regions, s.scanOpts, s.eipService.ScanRegion)
			if err != nil {
				return err
			}
			eipResult = &result
			return nil
		})
	}
	if wantResource(flags, "ebs") {
		g.Go(func() error {
			result, err := scan.Run(groupCtx, s.regions, s.scanOpts, s.ebsService.ScanRegion)
			if err != nil {
				return err
			}
			ebsResult = &result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.outputService.StopSpinner()
		return err
	}

	input := model.RenderScanInput{
		AccountID:      accountID,
		SecurityGroups: sgResult,
		ElasticIPs:     eipResult,
		Volumes:        ebsResult,
	}

	s.outputService.StopSpinner()

	if err := s.outputService.RenderScan(input); err != nil {
		return err
	}

	if flags.ExportXLSX != "" {
		if err := xlsxoutput.WriteXLSX(flags.ExportXLSX, input); err != nil {
			return err
		}
		fmt.Printf("📊 Excel workbook written to %s\n", flags.ExportXLSX)
	}

	if err := s.persistScanIfEnabled(scanCtx, flags, input, time.Since(startedAt)); err != nil {
		return fmt.Errorf("failed to store scan results: %w", err)
	}

	return nil
}

package orchestrator

import (
	"github.com/rs/zerolog"

	"github.com/AlexisDongMariano/aws-orphans/model"
	"github.com/AlexisDongMariano/aws-orphans/service/ebsscanner"
	"github.com/AlexisDongMariano/aws-orphans/service/eipscanner"
	"github.com/AlexisDongMariano/aws-orphans/service/output"
	"github.com/AlexisDongMariano/aws-orphans/service/scan"
	"github.com/AlexisDongMariano/aws-orphans/service/sgscanner"
	"github.com/AlexisDongMariano/aws-orphans/service/storage"
	awssts "github.com/AlexisDongMariano/aws-orphans/service/sts"
)

type service struct {
	stsService     awssts.Service
	sgService      sgscanner.Service
	eipService     eipscanner.Service
	ebsService     ebsscanner.Service
	outputService  output.Service
	storageService storage.Service
	versionInfo    model.VersionInfo
	regions        []string
	scanOpts       scan.Options
	logger         *zerolog.Logger
}

// Service is the interface for orchestrator service.
type Service interface {
	Orchestrate(flags model.Flags) error
}

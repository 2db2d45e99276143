// Package main is the entry point for the aws-orphans CLI.
package main

import (
	"fmt"
	"os"

	"github.com/AlexisDongMariano/aws-orphans/model"
	"github.com/AlexisDongMariano/aws-orphans/service/flag"
	"github.com/AlexisDongMariano/aws-orphans/service/orchestrator"
	"github.com/AlexisDongMariano/aws-orphans/service/output"
	"github.com/AlexisDongMariano/aws-orphans/service/scan"
	"github.com/AlexisDongMariano/aws-orphans/service/storage"
	"github.com/AlexisDongMariano/aws-orphans/utils/banner"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "serve", "db", "history":
			return runStorageCommand(os.Args[1], os.Args[2:])
		}
	}

	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	versionInfo := model.VersionInfo{Version: version, Commit: commit, Date: date}

	if flags.Version {
		outputService := output.NewService(flags.Output, flags.OutputFile)
		orchestratorService := orchestrator.NewService(
			nil, nil, nil, nil,
			outputService, nil, versionInfo,
			nil, scan.Options{}, nil,
		)
		return orchestratorService.Orchestrate(flags)
	}

	// The banner would corrupt machine-readable stdout.
	if flags.Output == "table" && flags.OutputFile == "" {
		banner.DrawBannerTitle()
	}

	var storageService storage.Service
	if flags.Store {
		storageService, err = storage.NewService(flags.DBPath)
		if err != nil {
			return fmt.Errorf("failed to initialize storage: %w", err)
		}
		defer storageService.Close()
	}

	return runOrphanScan(flags, versionInfo, storageService)
}

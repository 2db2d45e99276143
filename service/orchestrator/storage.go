package orchestrator

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/AlexisDongMariano/aws-orphans/model"
	"github.com/AlexisDongMariano/aws-orphans/service/scan"
	"github.com/AlexisDongMariano/aws-orphans/service/storage"
)

func (s *service) persistScanIfEnabled(ctx context.Context, flags model.Flags, input model.RenderScanInput, duration time.Duration) error {
	if s.storageService == nil || !flags.Store {
		return nil
	}

	flagsJSON, _ := json.Marshal(flags)
	saveInput := storage.SaveScanInput{
		ScanUUID:    uuid.NewString(),
		AccountID:   input.AccountID,
		DurationSec: int64(duration.Seconds()),
		Version:     s.versionInfo.Version,
		Profile:     flags.Profile,
		FlagsJSON:   string(flagsJSON),
	}

	if input.SecurityGroups != nil {
		section := &storage.SecurityGroupSection{Failures: toRegionErrors(input.SecurityGroups.Failures)}
		for _, r := range input.SecurityGroups.Records {
			section.Records = append(section.Records, storage.StoredSecurityGroup{
				Region:      r.Region,
				GroupID:     r.GroupID,
				GroupName:   r.GroupName,
				Description: r.Description,
				VpcID:       r.VpcID,
			})
		}
		saveInput.SecurityGroups = section
	}

	if input.ElasticIPs != nil {
		section := &storage.ElasticIPSection{Failures: toRegionErrors(input.ElasticIPs.Failures)}
		for _, r := range input.ElasticIPs.Records {
			section.Records = append(section.Records, storage.StoredElasticIP{
				Region:       r.Region,
				AllocationID: r.AllocationID,
				PublicIP:     r.PublicIP,
				Domain:       r.Domain,
			})
		}
		saveInput.ElasticIPs = section
	}

	if input.Volumes != nil {
		section := &storage.VolumeSection{Failures: toRegionErrors(input.Volumes.Failures)}
		for _, r := range input.Volumes.Records {
			section.Records = append(section.Records, storage.StoredVolume{
				Region:           r.Region,
				VolumeID:         r.VolumeID,
				SizeGB:           r.SizeGB,
				VolumeType:       r.VolumeType,
				AvailabilityZone: r.AvailabilityZone,
				CreateTime:       r.CreateTime,
			})
		}
		saveInput.Volumes = section
	}

	scanID, err := s.storageService.SaveScan(ctx, saveInput)
	if err != nil {
		return err
	}
	if s.logger != nil {
		s.logger.Info().Int64("scan_id", scanID).Str("scan_uuid", saveInput.ScanUUID).Msg("scan results stored")
	}
	return nil
}

func toRegionErrors(failures []scan.RegionFailure) []storage.RegionError {
	out := make([]storage.RegionError, 0, len(failures))
	for _, f := range failures {
		out = append(out, storage.RegionError{Region: f.Region, Reason: f.Reason})
	}
	return out
}

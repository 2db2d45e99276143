package web

import (
	"github.com/AlexisDongMariano/aws-orphans/model"
	"github.com/AlexisDongMariano/aws-orphans/service/ebsscanner"
	"github.com/AlexisDongMariano/aws-orphans/service/eipscanner"
	"github.com/AlexisDongMariano/aws-orphans/service/sgscanner"
	"github.com/AlexisDongMariano/aws-orphans/service/storage"
)

func toGroup(r storage.StoredSecurityGroup) sgscanner.OrphanedGroup {
	return sgscanner.OrphanedGroup{
		Region:      r.Region,
		GroupID:     r.GroupID,
		GroupName:   r.GroupName,
		Description: r.Description,
		VpcID:       r.VpcID,
	}
}

func toAddress(r storage.StoredElasticIP) eipscanner.OrphanedAddress {
	return eipscanner.OrphanedAddress{
		Region:       r.Region,
		AllocationID: r.AllocationID,
		PublicIP:     r.PublicIP,
		Domain:       r.Domain,
	}
}

func toVolume(r storage.StoredVolume) ebsscanner.UnattachedVolume {
	return ebsscanner.UnattachedVolume{
		Region:           r.Region,
		VolumeID:         r.VolumeID,
		SizeGB:           r.SizeGB,
		VolumeType:       r.VolumeType,
		AvailabilityZone: r.AvailabilityZone,
		CreateTime:       r.CreateTime,
	}
}

func toGroupJSON(records []storage.StoredSecurityGroup) []model.OrphanedGroupJSON {
	out := []model.OrphanedGroupJSON{}
	for _, r := range records {
		g := toGroup(r)
		out = append(out, model.OrphanedGroupJSON{
			Region:      g.Region,
			GroupID:     g.GroupID,
			GroupName:   g.GroupName,
			Description: g.Description,
			VpcID:       g.VpcID,
			ConsoleURL:  g.ConsoleURL(),
		})
	}
	return out
}

func toEIPJSON(records []storage.StoredElasticIP) []model.OrphanedEIPJSON {
	out := []model.OrphanedEIPJSON{}
	for _, r := range records {
		a := toAddress(r)
		out = append(out, model.OrphanedEIPJSON{
			Region:       a.Region,
			AllocationID: a.AllocationID,
			PublicIP:     a.PublicIP,
			Domain:       a.Domain,
			ConsoleURL:   a.ConsoleURL(),
		})
	}
	return out
}

func toVolumeJSON(records []storage.StoredVolume) []model.UnattachedEBSJSON {
	out := []model.UnattachedEBSJSON{}
	for _, r := range records {
		v := toVolume(r)
		out = append(out, model.UnattachedEBSJSON{
			Region:           v.Region,
			VolumeID:         v.VolumeID,
			SizeGB:           v.SizeGB,
			VolumeType:       v.VolumeType,
			AvailabilityZone: v.AvailabilityZone,
			CreateTime:       v.CreateTime,
			ConsoleURL:       v.ConsoleURL(),
		})
	}
	return out
}

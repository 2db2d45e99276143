package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/AlexisDongMariano/aws-orphans/model"
	"github.com/AlexisDongMariano/aws-orphans/service/ebsscanner"
	"github.com/AlexisDongMariano/aws-orphans/service/eipscanner"
	"github.com/AlexisDongMariano/aws-orphans/service/regions"
	"github.com/AlexisDongMariano/aws-orphans/service/scan"
	"github.com/AlexisDongMariano/aws-orphans/service/sgscanner"
	"github.com/AlexisDongMariano/aws-orphans/shared/xlsxoutput"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	counts := [3]int{}
	if sgs, err := s.store.ListSecurityGroups(); err == nil {
		counts[0] = len(sgs)
	}
	if eips, err := s.store.ListElasticIPs(); err == nil {
		counts[1] = len(eips)
	}
	if vols, err := s.store.ListVolumes(); err == nil {
		counts[2] = len(vols)
	}

	last, err := s.store.GetLastScan()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	page := indexPage{Total: counts[0] + counts[1] + counts[2]}
	for i, view := range resourceViews {
		page.Cards = append(page.Cards, indexCard{
			Title: view.Title,
			Path:  "/" + view.Path,
			Count: counts[i],
		})
	}
	if last != nil {
		page.LastScan = &lastScanView{
			AccountID:     last.AccountID,
			Timestamp:     last.ScanTimestamp.Format("2006-01-02 15:04:05 MST"),
			DurationSec:   last.DurationSec,
			FailedRegions: last.FailedRegions,
			Version:       last.Version,
		}
	}

	renderTemplate(w, indexTemplate, page)
}

func (s *Server) handleResourcePage(view resourceView) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := s.resourceRows(view)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		failures, err := s.lastScanErrors()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		page := resourcePage{
			Title:      view.Title,
			Columns:    view.Columns,
			Rows:       rows,
			ExportPath: "/api/" + view.Path + "/export",
		}
		for _, f := range failures {
			if f.Resource == view.Key {
				page.Failures = append(page.Failures, f)
			}
		}
		perRegion := map[string]int{}
		for _, row := range rows {
			if len(row.Cells) > 0 {
				perRegion[row.Cells[0]]++
			}
		}
		page.RegionCount = len(perRegion)

		renderTemplate(w, resourceTemplate, page)
	}
}

func (s *Server) handleResourceJSON(view resourceView) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		switch view.Key {
		case "security-groups":
			records, err := s.store.ListSecurityGroups()
			writeJSON(w, toGroupJSON(records), err)
		case "elastic-ips":
			records, err := s.store.ListElasticIPs()
			writeJSON(w, toEIPJSON(records), err)
		default:
			records, err := s.store.ListVolumes()
			writeJSON(w, toVolumeJSON(records), err)
		}
	}
}

func (s *Server) handleResourceExport(view resourceView) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		input, err := s.exportInput(view)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		f, err := xlsxoutput.BuildWorkbook(input)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer f.Close()

		filename := fmt.Sprintf("%s_%s.xlsx", view.Path, time.Now().Format("2006-01-02"))
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+strconv.Quote(filename))
		if err := f.Write(w); err != nil && s.logger != nil {
			s.logger.Error().Err(err).Msg("failed to stream workbook")
		}
	}
}

func (s *Server) handleRegions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, regions.Catalog(), nil)
}

func (s *Server) handleLastScan(w http.ResponseWriter, _ *http.Request) {
	last, err := s.store.GetLastScan()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if last == nil {
		writeJSON(w, map[string]any{"scanned": false}, nil)
		return
	}

	errs, err := s.store.ListRegionErrors(last.ScanID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{
		"scanned":         true,
		"scan_id":         last.ScanID,
		"scan_uuid":       last.ScanUUID,
		"account_id":      last.AccountID,
		"scan_timestamp":  last.ScanTimestamp,
		"duration_sec":    last.DurationSec,
		"security_groups": last.SGCount,
		"elastic_ips":     last.EIPCount,
		"ebs_volumes":     last.EBSCount,
		"failed_regions":  last.FailedRegions,
		"region_errors":   errs,
		"version":         last.Version,
	}, nil)
}

// resourceRows loads the stored snapshot for a view as display rows.
func (s *Server) resourceRows(view resourceView) ([]tableRow, error) {
	switch view.Key {
	case "security-groups":
		records, err := s.store.ListSecurityGroups()
		if err != nil {
			return nil, err
		}
		rows := make([]tableRow, 0, len(records))
		for _, r := range records {
			g := toGroup(r)
			rows = append(rows, tableRow{
				Cells:      []string{r.Region, r.GroupID, r.GroupName, r.Description, r.VpcID},
				ConsoleURL: g.ConsoleURL(),
			})
		}
		return rows, nil
	case "elastic-ips":
		records, err := s.store.ListElasticIPs()
		if err != nil {
			return nil, err
		}
		rows := make([]tableRow, 0, len(records))
		for _, r := range records {
			a := toAddress(r)
			rows = append(rows, tableRow{
				Cells:      []string{r.Region, r.AllocationID, r.PublicIP, r.Domain},
				ConsoleURL: a.ConsoleURL(),
			})
		}
		return rows, nil
	default:
		records, err := s.store.ListVolumes()
		if err != nil {
			return nil, err
		}
		rows := make([]tableRow, 0, len(records))
		for _, r := range records {
			v := toVolume(r)
			rows = append(rows, tableRow{
				Cells: []string{r.Region, r.VolumeID, strconv.Itoa(int(r.SizeGB)),
					r.VolumeType, r.AvailabilityZone, r.CreateTime},
				ConsoleURL: v.ConsoleURL(),
			})
		}
		return rows, nil
	}
}

// exportInput builds a single-section scan input from the stored snapshot.
func (s *Server) exportInput(view resourceView) (model.RenderScanInput, error) {
	last, err := s.store.GetLastScan()
	if err != nil {
		return model.RenderScanInput{}, err
	}

	input := model.RenderScanInput{}
	var failures []scan.RegionFailure
	if last != nil {
		input.AccountID = last.AccountID
		errs, err := s.store.ListRegionErrors(last.ScanID)
		if err != nil {
			return model.RenderScanInput{}, err
		}
		for _, e := range errs {
			if e.Resource == view.Key {
				failures = append(failures, scan.RegionFailure{Region: e.Region, Reason: e.Reason})
			}
		}
	}

	switch view.Key {
	case "security-groups":
		records, err := s.store.ListSecurityGroups()
		if err != nil {
			return model.RenderScanInput{}, err
		}
		result := &scan.Result[sgscanner.OrphanedGroup]{Failures: failures}
		for _, r := range records {
			result.Records = append(result.Records, toGroup(r))
		}
		input.SecurityGroups = result
	case "elastic-ips":
		records, err := s.store.ListElasticIPs()
		if err != nil {
			return model.RenderScanInput{}, err
		}
		result := &scan.Result[eipscanner.OrphanedAddress]{Failures: failures}
		for _, r := range records {
			result.Records = append(result.Records, toAddress(r))
		}
		input.ElasticIPs = result
	default:
		records, err := s.store.ListVolumes()
		if err != nil {
			return model.RenderScanInput{}, err
		}
		result := &scan.Result[ebsscanner.UnattachedVolume]{Failures: failures}
		for _, r := range records {
			result.Records = append(result.Records, toVolume(r))
		}
		input.Volumes = result
	}

	return input, nil
}

func writeJSON(w http.ResponseWriter, v any, err error) {
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

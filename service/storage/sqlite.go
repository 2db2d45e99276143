package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const defaultDBPath = "~/.aws-orphans/orphans.db"

// NewService creates a SQLite-backed storage service.
func NewService(dbPath string) (Service, error) {
	resolved, err := resolvePath(dbPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec(schemaV1); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &service{db: db, dbPath: resolved}, nil
}

type service struct {
	db     *sql.DB
	dbPath string
}

func resolvePath(p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		p = defaultDBPath
	}
	if strings.HasPrefix(p, "~/") || p == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home dir: %w", err)
		}
		if p == "~" {
			p = home
		} else {
			p = filepath.Join(home, p[2:])
		}
	}
	return filepath.Clean(p), nil
}

// SaveScan records scan metadata and replaces the snapshot tables of every
// resource section present in the input, all within a single transaction.
func (s *service) SaveScan(ctx context.Context, input SaveScanInput) (int64, error) {
	if input.AccountID == "" {
		return 0, errors.New("account id is required")
	}
	if input.ScanUUID == "" {
		input.ScanUUID = fmt.Sprintf("scan-%d", time.Now().UnixNano())
	}

	failed := 0
	if input.SecurityGroups != nil {
		failed += len(input.SecurityGroups.Failures)
	}
	if input.ElasticIPs != nil {
		failed += len(input.ElasticIPs.Failures)
	}
	if input.Volumes != nil {
		failed += len(input.Volumes.Failures)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO scans (
			scan_uuid, account_id, scan_duration, sg_count, eip_count, ebs_count,
			failed_regions, cli_version, scan_profile, scan_flags
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, input.ScanUUID, input.AccountID, input.DurationSec,
		sectionLen(input.SecurityGroups), eipLen(input.ElasticIPs), volLen(input.Volumes),
		failed, input.Version, input.Profile, input.FlagsJSON)
	if err != nil {
		return 0, err
	}
	scanID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if input.SecurityGroups != nil {
		if err = s.replaceSecurityGroupsTx(ctx, tx, input.SecurityGroups.Records); err != nil {
			return 0, err
		}
		if err = s.saveRegionErrorsTx(ctx, tx, scanID, "security-groups", input.SecurityGroups.Failures); err != nil {
			return 0, err
		}
	}
	if input.ElasticIPs != nil {
		if err = s.replaceElasticIPsTx(ctx, tx, input.ElasticIPs.Records); err != nil {
			return 0, err
		}
		if err = s.saveRegionErrorsTx(ctx, tx, scanID, "elastic-ips", input.ElasticIPs.Failures); err != nil {
			return 0, err
		}
	}
	if input.Volumes != nil {
		if err = s.replaceVolumesTx(ctx, tx, input.Volumes.Records); err != nil {
			return 0, err
		}
		if err = s.saveRegionErrorsTx(ctx, tx, scanID, "ebs-volumes", input.Volumes.Failures); err != nil {
			return 0, err
		}
	}

	err = tx.Commit()
	if err != nil {
		return 0, err
	}
	return scanID, nil
}

func sectionLen(s *SecurityGroupSection) int {
	if s == nil {
		return 0
	}
	return len(s.Records)
}

func eipLen(s *ElasticIPSection) int {
	if s == nil {
		return 0
	}
	return len(s.Records)
}

func volLen(s *VolumeSection) int {
	if s == nil {
		return 0
	}
	return len(s.Records)
}

func (s *service) replaceSecurityGroupsTx(ctx context.Context, tx *sql.Tx, records []StoredSecurityGroup) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM orphaned_sgs`); err != nil {
		return err
	}
	for _, r := range records {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO orphaned_sgs(region, group_id, group_name, description, vpc_id)
			VALUES (?, ?, ?, ?, ?)
		`, r.Region, r.GroupID, r.GroupName, r.Description, r.VpcID)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *service) replaceElasticIPsTx(ctx context.Context, tx *sql.Tx, records []StoredElasticIP) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM orphaned_eips`); err != nil {
		return err
	}
	for _, r := range records {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO orphaned_eips(region, allocation_id, public_ip, domain)
			VALUES (?, ?, ?, ?)
		`, r.Region, r.AllocationID, r.PublicIP, r.Domain)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *service) replaceVolumesTx(ctx context.Context, tx *sql.Tx, records []StoredVolume) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM unattached_ebs`); err != nil {
		return err
	}
	for _, r := range records {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO unattached_ebs(region, volume_id, size_gb, volume_type, availability_zone, volume_created_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, r.Region, r.VolumeID, r.SizeGB, r.VolumeType, r.AvailabilityZone, r.CreateTime)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *service) saveRegionErrorsTx(ctx context.Context, tx *sql.Tx, scanID int64, resource string, failures []RegionError) error {
	for _, f := range failures {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO scan_region_errors(scan_id, resource, region, reason)
			VALUES (?, ?, ?, ?)
		`, scanID, resource, f.Region, f.Reason)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *service) ListSecurityGroups() ([]StoredSecurityGroup, error) {
	rows, err := s.db.Query(`
		SELECT region, group_id, group_name, description, vpc_id
		FROM orphaned_sgs ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []StoredSecurityGroup{}
	for rows.Next() {
		var r StoredSecurityGroup
		if err := rows.Scan(&r.Region, &r.GroupID, &r.GroupName, &r.Description, &r.VpcID); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *service) ListElasticIPs() ([]StoredElasticIP, error) {
	rows, err := s.db.Query(`
		SELECT region, allocation_id, public_ip, domain
		FROM orphaned_eips ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []StoredElasticIP{}
	for rows.Next() {
		var r StoredElasticIP
		if err := rows.Scan(&r.Region, &r.AllocationID, &r.PublicIP, &r.Domain); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *service) ListVolumes() ([]StoredVolume, error) {
	rows, err := s.db.Query(`
		SELECT region, volume_id, size_gb, volume_type, availability_zone, volume_created_at
		FROM unattached_ebs ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []StoredVolume{}
	for rows.Next() {
		var r StoredVolume
		if err := rows.Scan(&r.Region, &r.VolumeID, &r.SizeGB, &r.VolumeType, &r.AvailabilityZone, &r.CreateTime); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *service) GetLastScan() (*ScanSummary, error) {
	scans, err := s.GetRecentScans(1)
	if err != nil {
		return nil, err
	}
	if len(scans) == 0 {
		return nil, nil
	}
	return &scans[0], nil
}

func (s *service) GetRecentScans(limit int) ([]ScanSummary, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(`
		SELECT scan_id, scan_uuid, account_id, scan_timestamp, scan_duration,
			sg_count, eip_count, ebs_count, failed_regions, cli_version, scan_profile
		FROM scans ORDER BY scan_timestamp DESC, scan_id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scans := []ScanSummary{}
	for rows.Next() {
		var ssum ScanSummary
		if err := rows.Scan(&ssum.ScanID, &ssum.ScanUUID, &ssum.AccountID, &ssum.ScanTimestamp,
			&ssum.DurationSec, &ssum.SGCount, &ssum.EIPCount, &ssum.EBSCount,
			&ssum.FailedRegions, &ssum.Version, &ssum.Profile); err != nil {
			return nil, err
		}
		scans = append(scans, ssum)
	}
	return scans, rows.Err()
}

func (s *service) ListRegionErrors(scanID int64) ([]RegionError, error) {
	rows, err := s.db.Query(`
		SELECT resource, region, reason FROM scan_region_errors
		WHERE scan_id=? ORDER BY id ASC
	`, scanID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []RegionError{}
	for rows.Next() {
		var e RegionError
		if err := rows.Scan(&e.Resource, &e.Region, &e.Reason); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *service) Vacuum(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "VACUUM")
	return err
}

func (s *service) PurgeOlderThan(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		return 0, errors.New("days must be > 0")
	}
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM scans WHERE scan_timestamp < DATETIME('now', ?)
	`, fmt.Sprintf("-%d day", days))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *service) Close() error {
	return s.db.Close()
}

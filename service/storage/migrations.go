package storage

const schemaV1 = `
CREATE TABLE IF NOT EXISTS scans (
    scan_id         INTEGER PRIMARY KEY AUTOINCREMENT,
    scan_uuid       TEXT UNIQUE NOT NULL,
    account_id      TEXT NOT NULL,
    scan_timestamp  DATETIME DEFAULT CURRENT_TIMESTAMP,
    scan_duration   INTEGER,
    sg_count        INTEGER DEFAULT 0,
    eip_count       INTEGER DEFAULT 0,
    ebs_count       INTEGER DEFAULT 0,
    failed_regions  INTEGER DEFAULT 0,
    cli_version     TEXT,
    scan_profile    TEXT,
    scan_flags      TEXT,
    created_at      DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_scans_account_timestamp
    ON scans(account_id, scan_timestamp);
CREATE INDEX IF NOT EXISTS idx_scans_timestamp
    ON scans(scan_timestamp DESC);

CREATE TABLE IF NOT EXISTS orphaned_sgs (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    region      TEXT NOT NULL,
    group_id    TEXT NOT NULL,
    group_name  TEXT,
    description TEXT,
    vpc_id      TEXT,
    created_at  DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_orphaned_sgs_region ON orphaned_sgs(region);

CREATE TABLE IF NOT EXISTS orphaned_eips (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    region        TEXT NOT NULL,
    allocation_id TEXT NOT NULL,
    public_ip     TEXT,
    domain        TEXT,
    created_at    DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_orphaned_eips_region ON orphaned_eips(region);

CREATE TABLE IF NOT EXISTS unattached_ebs (
    id                INTEGER PRIMARY KEY AUTOINCREMENT,
    region            TEXT NOT NULL,
    volume_id         TEXT NOT NULL,
    size_gb           INTEGER,
    volume_type       TEXT,
    availability_zone TEXT,
    volume_created_at TEXT,
    created_at        DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_unattached_ebs_region ON unattached_ebs(region);

CREATE TABLE IF NOT EXISTS scan_region_errors (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    scan_id     INTEGER NOT NULL,
    resource    TEXT NOT NULL,
    region      TEXT NOT NULL,
    reason      TEXT NOT NULL,
    created_at  DATETIME DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (scan_id) REFERENCES scans(scan_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_scan_region_errors_scan ON scan_region_errors(scan_id);
`

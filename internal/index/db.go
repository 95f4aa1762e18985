package index

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Zuo-Peng/hl7-viewer/internal/hl7"
	_ "modernc.org/sqlite"
)

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA busy_timeout = 5000;

CREATE TABLE IF NOT EXISTS files (
    path          TEXT PRIMARY KEY,
    segments      INTEGER NOT NULL DEFAULT 0,
    message_type  TEXT NOT NULL DEFAULT '',
    control_id    TEXT NOT NULL DEFAULT '',
    patient_id    TEXT NOT NULL DEFAULT '',
    patient_name  TEXT NOT NULL DEFAULT '',
    mtime         INTEGER NOT NULL DEFAULT 0,
    size          INTEGER NOT NULL DEFAULT 0,
    indexed_at    TEXT NOT NULL DEFAULT '',
    opened_at     TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS files_opened_at ON files(opened_at);

CREATE TABLE IF NOT EXISTS meta (key TEXT PRIMARY KEY, value TEXT);
`

const timeLayout = "2006-01-02T15:04:05Z"

type DB struct {
	db *sql.DB
}

func OpenDB(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	d := &DB{db: db}
	if err := d.migrateSchemaVersion(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return d, nil
}

// schemaVersion should be bumped whenever the summary extraction changes
// to force a full re-index.
const schemaVersion = "1"

func (d *DB) migrateSchemaVersion() error {
	var ver string
	err := d.db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&ver)
	if err == nil && ver == schemaVersion {
		return nil
	}
	// force re-index by resetting all mtime/size to 0
	if _, err := d.db.Exec("UPDATE files SET mtime = 0, size = 0"); err != nil {
		return err
	}
	_, err = d.db.Exec("INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)", schemaVersion)
	return err
}

func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) Raw() *sql.DB {
	return d.db
}

// FileRecord is one catalogued HL7 file.
type FileRecord struct {
	Path        string
	Segments    int
	MessageType string
	ControlID   string
	PatientID   string
	PatientName string
	Mtime       int64
	Size        int64
	IndexedAt   string
	OpenedAt    string
}

// NewFileRecord summarises a parsed message for the catalog.
func NewFileRecord(path string, msg *hl7.Message, header hl7.Header, patient hl7.Patient) FileRecord {
	return FileRecord{
		Path:        path,
		Segments:    msg.Len(),
		MessageType: header.MessageType,
		ControlID:   header.ControlID,
		PatientID:   patient.ID,
		PatientName: patient.Name,
	}
}

type FileInfo struct {
	Mtime int64
	Size  int64
}

func (d *DB) GetFileInfo(path string) (*FileInfo, error) {
	var info FileInfo
	err := d.db.QueryRow(
		"SELECT mtime, size FROM files WHERE path = ?",
		path,
	).Scan(&info.Mtime, &info.Size)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// Upsert stores r, keeping the opened_at of an existing row.
func (d *DB) Upsert(r FileRecord) error {
	if r.IndexedAt == "" {
		r.IndexedAt = time.Now().UTC().Format(timeLayout)
	}
	_, err := d.db.Exec(`
		INSERT INTO files (path, segments, message_type, control_id, patient_id, patient_name, mtime, size, indexed_at, opened_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			segments = excluded.segments,
			message_type = excluded.message_type,
			control_id = excluded.control_id,
			patient_id = excluded.patient_id,
			patient_name = excluded.patient_name,
			mtime = excluded.mtime,
			size = excluded.size,
			indexed_at = excluded.indexed_at,
			opened_at = CASE WHEN excluded.opened_at != '' THEN excluded.opened_at ELSE files.opened_at END`,
		r.Path, r.Segments, r.MessageType, r.ControlID, r.PatientID, r.PatientName,
		r.Mtime, r.Size, r.IndexedAt, r.OpenedAt,
	)
	return err
}

// RecordOpen notes that a file was opened in the viewer. The summary is
// refreshed but mtime/size are left for the indexer.
func (d *DB) RecordOpen(path string, msg *hl7.Message, header hl7.Header, patient hl7.Patient) error {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	now := time.Now().UTC().Format(timeLayout)
	r := NewFileRecord(path, msg, header, patient)
	_, err := d.db.Exec(`
		INSERT INTO files (path, segments, message_type, control_id, patient_id, patient_name, indexed_at, opened_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			segments = excluded.segments,
			message_type = excluded.message_type,
			control_id = excluded.control_id,
			patient_id = excluded.patient_id,
			patient_name = excluded.patient_name,
			opened_at = excluded.opened_at`,
		r.Path, r.Segments, r.MessageType, r.ControlID, r.PatientID, r.PatientName, now, now,
	)
	if err != nil {
		return fmt.Errorf("record open %s: %w", path, err)
	}
	return nil
}

// AllPaths maps every catalogued path to whether it was opened in the viewer.
func (d *DB) AllPaths() (map[string]bool, error) {
	rows, err := d.db.Query("SELECT path, opened_at != '' FROM files")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	paths := make(map[string]bool)
	for rows.Next() {
		var p string
		var opened bool
		if err := rows.Scan(&p, &opened); err != nil {
			return nil, err
		}
		paths[p] = opened
	}
	return paths, rows.Err()
}

func (d *DB) DeleteFile(path string) error {
	_, err := d.db.Exec("DELETE FROM files WHERE path = ?", path)
	return err
}

func (d *DB) FileCount() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM files").Scan(&n)
	return n, err
}

type ListOptions struct {
	Filter string // substring of path, patient or message type
	Recent bool   // only opened files, newest first
	Limit  int
}

func (d *DB) ListFiles(opts ListOptions) ([]FileRecord, error) {
	var conditions []string
	var args []interface{}

	if f := strings.TrimSpace(opts.Filter); f != "" {
		conditions = append(conditions,
			"(path LIKE ? OR patient_id LIKE ? OR patient_name LIKE ? OR message_type LIKE ? OR control_id LIKE ?)")
		like := "%" + f + "%"
		args = append(args, like, like, like, like, like)
	}

	order := "path"
	if opts.Recent {
		conditions = append(conditions, "opened_at != ''")
		order = "opened_at DESC"
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = -1 // sqlite: no limit
	}

	query := fmt.Sprintf(`
		SELECT path, segments, message_type, control_id, patient_id, patient_name, mtime, size, indexed_at, opened_at
		FROM files
		%s
		ORDER BY %s
		LIMIT ?`, where, order)
	args = append(args, limit)

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	defer rows.Close()

	var records []FileRecord
	for rows.Next() {
		var r FileRecord
		if err := rows.Scan(
			&r.Path, &r.Segments, &r.MessageType, &r.ControlID, &r.PatientID,
			&r.PatientName, &r.Mtime, &r.Size, &r.IndexedAt, &r.OpenedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

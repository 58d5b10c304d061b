// File: internal/joblog/joblog.go
package joblog

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrNotFound indicates the journal holds no job with the given id.
var ErrNotFound = errors.New("joblog: job not found")

// schemaSQL declares the journal table. Timestamps are RFC 3339 text.
const schemaSQL = `CREATE TABLE IF NOT EXISTS jobs (
    id         TEXT PRIMARY KEY,
    url        TEXT NOT NULL,
    device     TEXT NOT NULL,
    status     TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

// Job is one journal entry: a posted job, where it lives, and the status it
// had when the journal last saw it.
type Job struct {
	ID        string
	URL       string
	Device    string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store is the job journal, backed by a SQLite database file.
type Store struct {
	db *sql.DB
}

// Open opens the journal at path, creating the file and the schema when
// absent.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("joblog: open %s: %w", path, err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()

		return nil, fmt.Errorf("joblog: init schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// newID generates a UUID v7 string; v7 ids sort in creation order.
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Record journals a freshly posted job and returns the stored entry with its
// generated id.
func (s *Store) Record(url, device, status string) (Job, error) {
	now := time.Now().UTC().Truncate(time.Second)
	job := Job{
		ID:        newID(),
		URL:       url,
		Device:    device,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := s.db.Exec(
		"INSERT INTO jobs (id, url, device, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		job.ID, job.URL, job.Device, job.Status,
		job.CreatedAt.Format(time.RFC3339), job.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return Job{}, fmt.Errorf("joblog: record job: %w", err)
	}

	return job, nil
}

// UpdateStatus stores the status the server last reported for job id.
func (s *Store) UpdateStatus(id, status string) error {
	res, err := s.db.Exec(
		"UPDATE jobs SET status = ?, updated_at = ? WHERE id = ?",
		status, time.Now().UTC().Truncate(time.Second).Format(time.RFC3339), id,
	)
	if err != nil {
		return fmt.Errorf("joblog: update job %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("joblog: update job %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return nil
}

// Get retrieves one journal entry by id.
func (s *Store) Get(id string) (Job, error) {
	row := s.db.QueryRow(
		"SELECT id, url, device, status, created_at, updated_at FROM jobs WHERE id = ?", id,
	)

	job, err := hydrate(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return Job{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Job{}, fmt.Errorf("joblog: get job %s: %w", id, err)
	}

	return job, nil
}

// List returns every journal entry, newest first.
func (s *Store) List() ([]Job, error) {
	rows, err := s.db.Query(
		"SELECT id, url, device, status, created_at, updated_at FROM jobs ORDER BY created_at DESC, id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("joblog: list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []Job
	for rows.Next() {
		job, err := hydrate(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("joblog: list jobs: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("joblog: list jobs: %w", err)
	}

	return jobs, nil
}

// hydrate converts one row into a Job, parsing the timestamp columns.
func hydrate(scan func(...any) error) (Job, error) {
	var job Job
	var createdAt, updatedAt string
	if err := scan(&job.ID, &job.URL, &job.Device, &job.Status, &createdAt, &updatedAt); err != nil {
		return Job{}, err
	}

	var err error
	if job.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return Job{}, fmt.Errorf("parsing created_at: %w", err)
	}
	if job.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return Job{}, fmt.Errorf("parsing updated_at: %w", err)
	}

	return job, nil
}

package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/ksiska/prospekt"
)

// Compile-time interface verification.
var _ prospekt.RunService = (*RunService)(nil)

// RunService implements prospekt.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// HashDocument computes xxHash of the fetched markup and returns a hex
// string. Stored with each run so unchanged page content is visible in
// the history.
func HashDocument(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateRun records a run and its leaflets. The run ID and creation
// time are assigned here; leaflet rows keep their extraction order via
// an explicit position column.
func (s *RunService) CreateRun(ctx context.Context, run *prospekt.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.CreatedAt = time.Now().UTC()
	run.LeafletCount = len(run.Leaflets)

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, source_url, document_hash, leaflet_count, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, run.ID, run.SourceURL, run.DocumentHash, run.LeafletCount,
		run.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	for i, l := range run.Leaflets {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO leaflets (run_id, position, title, thumbnail, shop_name, valid_from, valid_to, parsed_time)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, run.ID, i, l.Title, l.Thumbnail, l.ShopName, l.ValidFrom, l.ValidTo, l.ParsedTime)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindRunByID retrieves a run by ID.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*prospekt.Run, error) {
	var run prospekt.Run
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, document_hash, leaflet_count, created_at
		FROM runs
		WHERE id = ?
	`, id).Scan(&run.ID, &run.SourceURL, &run.DocumentHash, &run.LeafletCount, &createdAt)

	if err == sql.ErrNoRows {
		return nil, prospekt.Errorf(prospekt.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}

	run.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &run, nil
}

// FindRuns retrieves runs matching the filter, newest first.
func (s *RunService) FindRuns(ctx context.Context, filter prospekt.RunFilter) ([]*prospekt.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, document_hash, leaflet_count, created_at FROM runs WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*prospekt.Run
	for rows.Next() {
		var run prospekt.Run
		var createdAt string
		if err := rows.Scan(&run.ID, &run.SourceURL, &run.DocumentHash, &run.LeafletCount, &createdAt); err != nil {
			return nil, err
		}
		run.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}
		runs = append(runs, &run)
	}

	return runs, rows.Err()
}

// FindLeafletsByRun retrieves a run's leaflets in extraction order.
func (s *RunService) FindLeafletsByRun(ctx context.Context, runID string) ([]*prospekt.Leaflet, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT title, thumbnail, shop_name, valid_from, valid_to, parsed_time
		FROM leaflets
		WHERE run_id = ?
		ORDER BY position ASC
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leaflets []*prospekt.Leaflet
	for rows.Next() {
		var l prospekt.Leaflet
		if err := rows.Scan(&l.Title, &l.Thumbnail, &l.ShopName, &l.ValidFrom, &l.ValidTo, &l.ParsedTime); err != nil {
			return nil, err
		}
		leaflets = append(leaflets, &l)
	}

	return leaflets, rows.Err()
}

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// appendPagination appends LIMIT and OFFSET clauses to a query builder if values are > 0.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}

// Package repository indexes parsed output in an embedded SQLite database
// so past runs can be queried without re-reading the workbooks.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/wegtools/minutes-tracker/internal/entity"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	started_at TEXT NOT NULL,
	document_count INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS agenda_items (
	run_id TEXT NOT NULL REFERENCES runs(id),
	meeting_date TEXT,
	source_file TEXT NOT NULL,
	top_number TEXT NOT NULL,
	top_title TEXT,
	approved INTEGER,
	explicit_decision INTEGER,
	votes_yes INTEGER,
	votes_no INTEGER,
	votes_abstain INTEGER,
	page_start INTEGER,
	page_end INTEGER,
	block_len INTEGER NOT NULL,
	raw_excerpt TEXT NOT NULL,
	PRIMARY KEY (run_id, source_file, top_number)
);
CREATE TABLE IF NOT EXISTS qa_summaries (
	run_id TEXT NOT NULL REFERENCES runs(id),
	file TEXT NOT NULL,
	meeting_date TEXT,
	item_count INTEGER NOT NULL,
	approved_count INTEGER NOT NULL,
	rejected_count INTEGER NOT NULL,
	unknown_count INTEGER NOT NULL,
	used_ocr INTEGER NOT NULL,
	used_layout INTEGER NOT NULL,
	avg_chars_per_page REAL NOT NULL,
	PRIMARY KEY (run_id, file)
);
`

// ResultsStore persists run results. One store handles many runs.
type ResultsStore struct {
	db *sql.DB
}

// OpenResultsStore opens (and if needed initializes) the database at path.
// Use ":memory:" for an ephemeral store.
func OpenResultsStore(path string) (*ResultsStore, error) {
	dsn := path
	if path != ":memory:" {
		dsn = path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open results db: %w", err)
	}
	// The modernc driver is happiest with a single writer connection.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init results schema: %w", err)
	}
	return &ResultsStore{db: db}, nil
}

func (s *ResultsStore) Close() error {
	return s.db.Close()
}

// CreateRun registers a new batch run and returns its id.
func (s *ResultsStore) CreateRun(ctx context.Context, startedAt time.Time, documentCount int) (uuid.UUID, error) {
	id := uuid.New()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, document_count) VALUES (?, ?, ?)`,
		id.String(), startedAt.UTC().Format(time.RFC3339), documentCount)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert run: %w", err)
	}
	return id, nil
}

// SaveItems stores all records of one run in a single transaction.
func (s *ResultsStore) SaveItems(ctx context.Context, runID uuid.UUID, items []entity.AgendaItem) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO agenda_items
		(run_id, meeting_date, source_file, top_number, top_title, approved,
		 explicit_decision, votes_yes, votes_no, votes_abstain,
		 page_start, page_end, block_len, raw_excerpt)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, it := range items {
		if _, err := stmt.ExecContext(ctx,
			runID.String(), it.MeetingDate, it.SourceFile, it.Number, it.Title,
			boolToNullInt(it.Approved), boolToNullInt(it.ExplicitDecision),
			it.VotesYes, it.VotesNo, it.VotesAbstain,
			it.PageStart, it.PageEnd, it.BlockLen, it.RawExcerpt,
		); err != nil {
			return fmt.Errorf("insert item %s/%s: %w", it.SourceFile, it.Number, err)
		}
	}
	return tx.Commit()
}

// SaveQASummaries stores the per-document QA rows of one run.
func (s *ResultsStore) SaveQASummaries(ctx context.Context, runID uuid.UUID, rows []entity.QASummary) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, qa := range rows {
		if _, err := tx.ExecContext(ctx, `INSERT INTO qa_summaries
			(run_id, file, meeting_date, item_count, approved_count,
			 rejected_count, unknown_count, used_ocr, used_layout, avg_chars_per_page)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID.String(), qa.File, qa.MeetingDate, qa.ItemCount, qa.ApprovedCount,
			qa.RejectedCount, qa.UnknownCount, qa.UsedOCR, qa.UsedLayout, qa.AvgCharsPerPage,
		); err != nil {
			return fmt.Errorf("insert qa row %s: %w", qa.File, err)
		}
	}
	return tx.Commit()
}

// ListItems returns a run's records in their stored order.
func (s *ResultsStore) ListItems(ctx context.Context, runID uuid.UUID) ([]entity.AgendaItem, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT
		meeting_date, source_file, top_number, top_title, approved,
		explicit_decision, votes_yes, votes_no, votes_abstain,
		page_start, page_end, block_len, raw_excerpt
		FROM agenda_items WHERE run_id = ?
		ORDER BY COALESCE(meeting_date, '9999-99-99'), source_file, top_number`,
		runID.String())
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []entity.AgendaItem
	for rows.Next() {
		var it entity.AgendaItem
		var approved, explicit sql.NullInt64
		if err := rows.Scan(
			&it.MeetingDate, &it.SourceFile, &it.Number, &it.Title, &approved,
			&explicit, &it.VotesYes, &it.VotesNo, &it.VotesAbstain,
			&it.PageStart, &it.PageEnd, &it.BlockLen, &it.RawExcerpt,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		it.Approved = nullIntToBool(approved)
		it.ExplicitDecision = nullIntToBool(explicit)
		items = append(items, it)
	}
	return items, rows.Err()
}

func boolToNullInt(b *bool) any {
	if b == nil {
		return nil
	}
	if *b {
		return int64(1)
	}
	return int64(0)
}

func nullIntToBool(v sql.NullInt64) *bool {
	if !v.Valid {
		return nil
	}
	b := v.Int64 != 0
	return &b
}

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// FileName is the database file created inside the database directory.
const FileName = "xwpuz.db"

// Dates and times are stored as fixed-width text so that they sort
// correctly as strings.
const (
	dateLayout    = "2006-01-02"
	savedAtLayout = "2006-01-02T15:04:05.000000000Z"
)

// ErrNotFound is returned by Open when the database file does not exist
// and CreateIfNotExists is false.
var ErrNotFound = errors.New("history database not found")

// HistoryDB stores one row per written puzzle file.
type HistoryDB struct {
	db     *sql.DB
	dbPath string
}

// Options configures HistoryDB behavior.
type Options struct {
	// CreateIfNotExists creates the directory and database file if missing.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates the history database in dbDir.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*HistoryDB, error) {
	dbPath := filepath.Join(dbDir, FileName)

	dsn := dbPath + "?mode=rwc"
	if opts.CreateIfNotExists {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	} else {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite only supports one writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &HistoryDB{db: db, dbPath: dbPath}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return hdb, nil
}

// Close closes the database connection.
func (h *HistoryDB) Close() error {
	return h.db.Close()
}

// Path returns the database file path.
func (h *HistoryDB) Path() string {
	return h.dbPath
}

func (h *HistoryDB) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS puzzles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		puzzle_date TEXT NOT NULL,
		date_text TEXT NOT NULL,
		filename TEXT NOT NULL,
		path TEXT NOT NULL UNIQUE,
		title TEXT,
		author TEXT,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		clue_count INTEGER NOT NULL,
		saved_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_puzzles_date ON puzzles(puzzle_date);
	CREATE INDEX IF NOT EXISTS idx_puzzles_saved ON puzzles(saved_at);
	`
	_, err := h.db.ExecContext(context.Background(), schema)
	return err
}

// Record is one saved puzzle file.
type Record struct {
	ID int64

	// PuzzleDate is the calendar date of the puzzle.
	PuzzleDate time.Time

	// DateText is the canonical date string sent to the API.
	DateText string

	Filename  string
	Path      string
	Title     string
	Author    string
	Width     int
	Height    int
	ClueCount int

	// SavedAt is when the file was written. Zero means now.
	SavedAt time.Time
}

// SaveRecord inserts a record, or updates the existing one for the same
// path. It returns the row id.
func (h *HistoryDB) SaveRecord(ctx context.Context, r *Record) (int64, error) {
	savedAt := r.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}

	query := `
	INSERT INTO puzzles (puzzle_date, date_text, filename, path, title, author, width, height, clue_count, saved_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(path) DO UPDATE SET
		puzzle_date = excluded.puzzle_date,
		date_text = excluded.date_text,
		filename = excluded.filename,
		title = excluded.title,
		author = excluded.author,
		width = excluded.width,
		height = excluded.height,
		clue_count = excluded.clue_count,
		saved_at = excluded.saved_at
	RETURNING id
	`

	var id int64
	err := h.db.QueryRowContext(ctx, query,
		r.PuzzleDate.Format(dateLayout),
		r.DateText,
		r.Filename,
		r.Path,
		r.Title,
		r.Author,
		r.Width,
		r.Height,
		r.ClueCount,
		savedAt.UTC().Format(savedAtLayout),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save history record: %w", err)
	}
	return id, nil
}

const selectColumns = `id, puzzle_date, date_text, filename, path, title, author, width, height, clue_count, saved_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(s rowScanner) (*Record, error) {
	var (
		r                 Record
		puzzleDate, saved string
		title, author     sql.NullString
	)
	if err := s.Scan(&r.ID, &puzzleDate, &r.DateText, &r.Filename, &r.Path,
		&title, &author, &r.Width, &r.Height, &r.ClueCount, &saved); err != nil {
		return nil, err
	}
	r.Title = title.String
	r.Author = author.String

	d, err := time.Parse(dateLayout, puzzleDate)
	if err != nil {
		return nil, fmt.Errorf("invalid puzzle date %q: %w", puzzleDate, err)
	}
	r.PuzzleDate = d
	r.SavedAt = parseTimestamp(saved)
	return &r, nil
}

// GetRecord returns the record for path, or nil if there is none.
func (h *HistoryDB) GetRecord(ctx context.Context, path string) (*Record, error) {
	row := h.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM puzzles WHERE path = ?`, path)
	r, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get history record: %w", err)
	}
	return r, nil
}

// LatestRecord returns the record with the most recent puzzle date, or nil
// if the history is empty.
func (h *HistoryDB) LatestRecord(ctx context.Context) (*Record, error) {
	row := h.db.QueryRowContext(ctx,
		`SELECT `+selectColumns+` FROM puzzles ORDER BY puzzle_date DESC, saved_at DESC LIMIT 1`)
	r, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest record: %w", err)
	}
	return r, nil
}

// ListRecords returns up to limit records, most recently saved first.
// A limit of zero or less returns every record.
func (h *HistoryDB) ListRecords(ctx context.Context, limit int) ([]Record, error) {
	query := `SELECT ` + selectColumns + ` FROM puzzles ORDER BY saved_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := h.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history record: %w", err)
		}
		records = append(records, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return records, nil
}

// DeleteRecord removes the record for path. Deleting a missing record is
// not an error.
func (h *HistoryDB) DeleteRecord(ctx context.Context, path string) error {
	if _, err := h.db.ExecContext(ctx, `DELETE FROM puzzles WHERE path = ?`, path); err != nil {
		return fmt.Errorf("failed to delete history record: %w", err)
	}
	return nil
}

// timestampFormats contains the timestamp formats that may be stored.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	savedAtLayout,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// parseTimestamp tries each of timestampFormats and returns the zero time
// if none match.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

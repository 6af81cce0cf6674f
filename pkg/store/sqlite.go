package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"tableflip.dev/daybook/pkg/note"
)

const sqliteFile = "daybook.sqlite"

type sqliteStore struct {
	db       *sql.DB
	basePath string
}

func openSQLite(basePath string) (*sqliteStore, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", filepath.Join(basePath, sqliteFile))
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite: %w", err)
	}
	ctx := context.Background()
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrateSQLite(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqliteStore{db: db, basePath: basePath}, nil
}

func migrateSQLite(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS notes (
			id TEXT PRIMARY KEY,
			day TEXT NOT NULL,
			user_id TEXT NOT NULL,
			project TEXT NOT NULL DEFAULT '',
			text TEXT NOT NULL DEFAULT '',
			bullet TEXT NOT NULL DEFAULT '',
			context TEXT NOT NULL DEFAULT '',
			created_unixms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_notes_day ON notes(day);`,
	}
	for _, st := range stmts {
		if _, err := db.ExecContext(ctx, st); err != nil {
			return fmt.Errorf("store: migrate sqlite: %w", err)
		}
	}
	return nil
}

const noteColumns = `id, day, user_id, project, text, bullet, context, created_unixms`

func (s *sqliteStore) List(ctx context.Context, day note.Day) ([]*note.Note, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE day = ? ORDER BY rowid`, day.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*note.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (s *sqliteStore) Get(ctx context.Context, id string) (*note.Note, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+noteColumns+` FROM notes WHERE id = ?`, id)
	n, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return n, err
}

func (s *sqliteStore) Create(ctx context.Context, n *note.Note) (*note.Note, error) {
	cp, err := prepareCreate(n)
	if err != nil {
		return nil, err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO notes (`+noteColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		cp.ID, cp.DateCreated.String(), cp.UserID, cp.ProjectTag, cp.Text,
		cp.BulletTag, cp.ContextTag, cp.Created.UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("store: insert note: %w", err)
	}
	return cp, nil
}

func (s *sqliteStore) Update(ctx context.Context, n *note.Note) (*note.Note, error) {
	cp, err := prepareUpdate(n)
	if err != nil {
		return nil, err
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE notes SET day = ?, user_id = ?, project = ?, text = ?, bullet = ?, context = ? WHERE id = ?`,
		cp.DateCreated.String(), cp.UserID, cp.ProjectTag, cp.Text, cp.BulletTag, cp.ContextTag, cp.ID)
	if err != nil {
		return nil, fmt.Errorf("store: update note: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return s.Get(ctx, cp.ID)
}

func (s *sqliteStore) Watch(ctx context.Context) (<-chan Event, error) {
	return watchTree(ctx, s.basePath, invalidateAll)
}

func (s *sqliteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(r rowScanner) (*note.Note, error) {
	var (
		n       note.Note
		day     string
		created int64
	)
	if err := r.Scan(&n.ID, &day, &n.UserID, &n.ProjectTag, &n.Text, &n.BulletTag, &n.ContextTag, &created); err != nil {
		return nil, err
	}
	n.DateCreated = note.Day(day)
	n.Created = time.UnixMilli(created).UTC()
	return &n, nil
}

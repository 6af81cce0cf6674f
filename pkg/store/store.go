package store

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/daybook/pkg/note"
)

// ErrNotFound is returned when an update or lookup names an unknown note.
var ErrNotFound = errors.New("store: note not found")

// Notes is the slice of the store contract consumed by the journal session.
type Notes interface {
	List(ctx context.Context, day note.Day) ([]*note.Note, error)
	Create(ctx context.Context, n *note.Note) (*note.Note, error)
	Update(ctx context.Context, n *note.Note) (*note.Note, error)
}

// Persistence defines the persistence contract for journal notes.
type Persistence interface {
	Notes
	Get(ctx context.Context, id string) (*note.Note, error)
	Watch(ctx context.Context) (<-chan Event, error)
	Close() error
}

// Open creates the Persistence selected by cfg, loading the config from viper
// when cfg is nil.
func Open(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(cfg.BasePath()) == "" {
		return nil, errors.New("store: base path required")
	}
	switch cfg.Backend() {
	case BackendBolt:
		return openBolt(cfg.BasePath())
	case BackendSQLite:
		return openSQLite(cfg.BasePath())
	default:
		return openDiskv(cfg.BasePath()), nil
	}
}

var now = time.Now

func prepareCreate(n *note.Note) (*note.Note, error) {
	if n == nil {
		return nil, errors.New("store: nil note")
	}
	if n.ID != "" {
		return nil, errors.New("store: create called for persisted note " + n.ID)
	}
	if n.DateCreated.IsZero() {
		return nil, errors.New("store: note day required")
	}
	cp := n.Clone()
	cp.ID = uuid.NewString()
	if cp.Created.IsZero() {
		cp.Created = now().UTC()
	}
	return cp, nil
}

func prepareUpdate(n *note.Note) (*note.Note, error) {
	if n == nil {
		return nil, errors.New("store: nil note")
	}
	if n.ID == "" {
		return nil, errors.New("store: update requires an id")
	}
	if n.DateCreated.IsZero() {
		return nil, errors.New("store: note day required")
	}
	return n.Clone(), nil
}

func sortNotes(notes []*note.Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		left := notes[i]
		right := notes[j]
		if left == nil || right == nil {
			return left != nil
		}
		lt := left.Created
		rt := right.Created
		switch {
		case lt.IsZero() && rt.IsZero():
			return left.ID < right.ID
		case lt.IsZero():
			return false
		case rt.IsZero():
			return true
		default:
			if lt.Equal(rt) {
				return left.ID < right.ID
			}
			return lt.Before(rt)
		}
	})
}

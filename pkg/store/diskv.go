package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/daybook/pkg/note"
)

// keySep separates the day from the note id. Days and UUIDs both contain
// dashes, so the separator cannot be one.
const keySep = "_"

type diskvStore struct {
	mu       sync.Mutex
	d        *diskv.Diskv
	basePath string
}

func openDiskv(basePath string) *diskvStore {
	return &diskvStore{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}
}

func (p *diskvStore) read(key string) (*note.Note, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	n := &note.Note{}
	if err := json.Unmarshal(val, n); err != nil {
		return nil, err
	}
	pk := keyToPathTransform(key)
	n.ID = pk.FileName
	return n, nil
}

func (p *diskvStore) List(ctx context.Context, day note.Day) ([]*note.Note, error) {
	all := make([]*note.Note, 0)
	for key := range p.d.KeysPrefix(day.String()+keySep, ctx.Done()) {
		n, err := p.read(key)
		if err != nil {
			slog.Warn("store: skip unreadable note", "key", key, "err", err)
			continue
		}
		all = append(all, n)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sortNotes(all)
	return all, nil
}

func (p *diskvStore) Get(ctx context.Context, id string) (*note.Note, error) {
	key, ok := p.findKey(ctx, id)
	if !ok {
		return nil, ErrNotFound
	}
	return p.read(key)
}

func (p *diskvStore) Create(_ context.Context, n *note.Note) (*note.Note, error) {
	cp, err := prepareCreate(n)
	if err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.write(cp); err != nil {
		return nil, err
	}
	return cp, nil
}

func (p *diskvStore) Update(ctx context.Context, n *note.Note) (*note.Note, error) {
	cp, err := prepareUpdate(n)
	if err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	key, ok := p.findKey(ctx, cp.ID)
	if !ok {
		return nil, ErrNotFound
	}
	prev, err := p.read(key)
	if err != nil {
		return nil, err
	}
	if cp.Created.IsZero() {
		cp.Created = prev.Created
	}
	// A day change writes the new key before erasing the old one, so a failed
	// write leaves the note where it was.
	if err := p.write(cp); err != nil {
		return nil, err
	}
	if newKey := toKey(cp); key != newKey {
		if err := p.d.Erase(key); err != nil {
			_ = p.d.Erase(newKey)
			return nil, fmt.Errorf("store: move note: %w", err)
		}
	}
	return cp, nil
}

func (p *diskvStore) Watch(ctx context.Context) (<-chan Event, error) {
	return watchTree(ctx, p.basePath, p.eventForPath)
}

func (p *diskvStore) Close() error {
	return nil
}

func (p *diskvStore) write(n *note.Note) error {
	data, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return p.d.Write(toKey(n), data)
}

func (p *diskvStore) findKey(ctx context.Context, id string) (string, bool) {
	if id == "" {
		return "", false
	}
	suffix := keySep + id
	for key := range p.d.Keys(ctx.Done()) {
		if strings.HasSuffix(key, suffix) {
			return key, true
		}
	}
	return "", false
}

// eventForPath maps a file under the base path to the day directory holding it.
func (p *diskvStore) eventForPath(path string) Event {
	rel, err := filepath.Rel(p.basePath, path)
	if err != nil || rel == "." {
		return Event{Type: EventInvalidated}
	}
	parts := strings.Split(rel, string(os.PathSeparator))
	day, err := note.ParseDay(parts[0])
	if err != nil {
		return Event{Type: EventInvalidated}
	}
	return Event{Type: EventDayChanged, Day: day}
}

func keyToPathTransform(s string) *diskv.PathKey {
	day, id, ok := strings.Cut(s, keySep)
	if !ok {
		return &diskv.PathKey{FileName: s}
	}
	return &diskv.PathKey{
		Path:     []string{day},
		FileName: id,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return pathKey.Path[0] + keySep + pathKey.FileName
}

// toKey makes `day_id`.
func toKey(n *note.Note) string {
	return n.DateCreated.String() + keySep + n.ID
}

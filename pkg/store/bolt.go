package store

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"tableflip.dev/daybook/pkg/note"
)

const boltFile = "daybook.db"

var (
	bucketDays  = []byte("days")
	bucketIndex = []byte("index")
)

// indexRef locates a note inside its day bucket.
type indexRef struct {
	Day note.Day `json:"day"`
	Seq uint64   `json:"seq"`
}

type boltStore struct {
	db       *bolt.DB
	basePath string
}

func openBolt(basePath string) (*boltStore, error) {
	if err := os.MkdirAll(basePath, 0o700); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	db, err := bolt.Open(filepath.Join(basePath, boltFile), 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("store: open bolt: %w", err)
	}
	if err := initBoltSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &boltStore{db: db, basePath: basePath}, nil
}

func initBoltSchema(db *bolt.DB) error {
	return db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketDays); err != nil {
			return err
		}
		if _, err := tx.CreateBucketIfNotExists(bucketIndex); err != nil {
			return err
		}
		return nil
	})
}

func (s *boltStore) List(_ context.Context, day note.Day) ([]*note.Note, error) {
	var out []*note.Note
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketDays).Bucket([]byte(day))
		if b == nil {
			return nil
		}
		// Sequence keys are big-endian, so cursor order is insertion order.
		return b.ForEach(func(_, v []byte) error {
			n := &note.Note{}
			if err := json.Unmarshal(v, n); err != nil {
				return err
			}
			out = append(out, n)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *boltStore) Get(_ context.Context, id string) (*note.Note, error) {
	var out *note.Note
	err := s.db.View(func(tx *bolt.Tx) error {
		ref, err := lookupRef(tx, id)
		if err != nil {
			return err
		}
		b := tx.Bucket(bucketDays).Bucket([]byte(ref.Day))
		if b == nil {
			return ErrNotFound
		}
		raw := b.Get(seqKey(ref.Seq))
		if raw == nil {
			return ErrNotFound
		}
		out = &note.Note{}
		return json.Unmarshal(raw, out)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *boltStore) Create(_ context.Context, n *note.Note) (*note.Note, error) {
	cp, err := prepareCreate(n)
	if err != nil {
		return nil, err
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return putNew(tx, cp)
	})
	if err != nil {
		return nil, err
	}
	return cp, nil
}

func (s *boltStore) Update(_ context.Context, n *note.Note) (*note.Note, error) {
	cp, err := prepareUpdate(n)
	if err != nil {
		return nil, err
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		ref, err := lookupRef(tx, cp.ID)
		if err != nil {
			return err
		}
		days := tx.Bucket(bucketDays)
		old := days.Bucket([]byte(ref.Day))
		if old == nil {
			return ErrNotFound
		}
		if cp.Created.IsZero() {
			prev := &note.Note{}
			if raw := old.Get(seqKey(ref.Seq)); raw != nil {
				if err := json.Unmarshal(raw, prev); err == nil {
					cp.Created = prev.Created
				}
			}
		}
		if ref.Day != cp.DateCreated {
			if err := old.Delete(seqKey(ref.Seq)); err != nil {
				return err
			}
			return putNew(tx, cp)
		}
		data, err := json.Marshal(cp)
		if err != nil {
			return err
		}
		return old.Put(seqKey(ref.Seq), data)
	})
	if err != nil {
		return nil, err
	}
	return cp, nil
}

func (s *boltStore) Watch(ctx context.Context) (<-chan Event, error) {
	return watchTree(ctx, s.basePath, invalidateAll)
}

func (s *boltStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func putNew(tx *bolt.Tx, n *note.Note) error {
	b, err := tx.Bucket(bucketDays).CreateBucketIfNotExists([]byte(n.DateCreated))
	if err != nil {
		return err
	}
	seq, err := b.NextSequence()
	if err != nil {
		return err
	}
	data, err := json.Marshal(n)
	if err != nil {
		return err
	}
	if err := b.Put(seqKey(seq), data); err != nil {
		return err
	}
	ref, err := json.Marshal(indexRef{Day: n.DateCreated, Seq: seq})
	if err != nil {
		return err
	}
	return tx.Bucket(bucketIndex).Put([]byte(n.ID), ref)
}

func lookupRef(tx *bolt.Tx, id string) (indexRef, error) {
	var ref indexRef
	if id == "" {
		return ref, ErrNotFound
	}
	raw := tx.Bucket(bucketIndex).Get([]byte(id))
	if raw == nil {
		return ref, ErrNotFound
	}
	if err := json.Unmarshal(raw, &ref); err != nil {
		return ref, errors.Join(ErrNotFound, err)
	}
	return ref, nil
}

func seqKey(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

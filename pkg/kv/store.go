package kv

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/dgraph-io/badger/v4"
)

var (
	ErrKeyNotFound   = errors.New("key not found")
	ErrUnknownEngine = errors.New("unknown kv engine")
)

const (
	EngineBadger = "badger"
	EnginePebble = "pebble"
)

// Store ordered byte key-value engine.
type Store interface {
	// Get copy of the value under key, ErrKeyNotFound if absent.
	Get(key []byte) ([]byte, error)
	NewBatch() Batch
	// IteratePrefix calls fn for every key with prefix in key order. key and val are only valid inside fn.
	IteratePrefix(prefix []byte, fn func(key, val []byte) error) error
	Close() error
}

type Batch interface {
	Set(key, val []byte) error
	Flush() error
	Cancel()
}

// OpenStore opens engine at dir. an empty dir keeps everything in memory.
func OpenStore(engine, dir string) (Store, error) {
	switch engine {
	case EngineBadger:
		return OpenBadgerStore(dir)
	case EnginePebble:
		return OpenPebbleStore(dir)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, engine)
	}
}

type badgerStore struct {
	db *badger.DB
}

func OpenBadgerStore(dir string) (Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &badgerStore{db: db}, nil
}

func (s *badgerStore) Get(key []byte) ([]byte, error) {
	var val []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}

		val, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrKeyNotFound
	}
	return val, err
}

func (s *badgerStore) NewBatch() Batch {
	return s.db.NewWriteBatch()
}

func (s *badgerStore) IteratePrefix(prefix []byte, fn func(key, val []byte) error) error {
	return s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				return fn(item.Key(), val)
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *badgerStore) Close() error {
	return s.db.Close()
}

type pebbleStore struct {
	db *pebble.DB
}

func OpenPebbleStore(dir string) (Store, error) {
	opts := &pebble.Options{}
	if dir == "" {
		opts.FS = vfs.NewMem()
		dir = "mapagent"
	}
	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, fmt.Errorf("open pebble: %w", err)
	}
	return &pebbleStore{db: db}, nil
}

func (s *pebbleStore) Get(key []byte) ([]byte, error) {
	val, closer, err := s.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (s *pebbleStore) NewBatch() Batch {
	return &pebbleBatch{db: s.db, batch: s.db.NewBatch()}
}

func (s *pebbleStore) IteratePrefix(prefix []byte, fn func(key, val []byte) error) error {
	it, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: prefixUpperBound(prefix),
	})
	if err != nil {
		return err
	}
	defer it.Close()

	for it.First(); it.Valid(); it.Next() {
		if err := fn(it.Key(), it.Value()); err != nil {
			return err
		}
	}
	return it.Error()
}

func (s *pebbleStore) Close() error {
	return s.db.Close()
}

type pebbleBatch struct {
	db    *pebble.DB
	batch *pebble.Batch
}

func (b *pebbleBatch) Set(key, val []byte) error {
	return b.batch.Set(key, val, nil)
}

func (b *pebbleBatch) Flush() error {
	return b.batch.Commit(pebble.Sync)
}

func (b *pebbleBatch) Cancel() {
	_ = b.batch.Close()
}

// prefixUpperBound smallest key greater than every key starting with prefix.
func prefixUpperBound(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}

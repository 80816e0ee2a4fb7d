package store

import (
	"context"
	"encoding/json"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/gmarchetti/rolodex/pkg/book"
)

// itemKeyPrefix namespaces item records in the key space.
var itemKeyPrefix = []byte("item:")

// BadgerStore persists items in a BadgerDB database, one JSON-encoded
// item per key. Item IDs are stable across reloads.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadgerStore opens (or creates) the database at path.
func OpenBadgerStore(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger store: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

func itemKey(id string) []byte {
	return append(append([]byte{}, itemKeyPrefix...), id...)
}

// Load reads every item in one read transaction.
func (s *BadgerStore) Load(ctx context.Context) ([]*book.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var items []*book.Item
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = itemKeyPrefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var item book.Item
				if err := json.Unmarshal(val, &item); err != nil {
					return fmt.Errorf("decode item %s: %w", it.Item().Key(), err)
				}
				items = append(items, &item)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Save replaces the persisted book: existing item keys are dropped and
// the new snapshot written in a single write batch.
func (s *BadgerStore) Save(ctx context.Context, items []*book.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Collect the keys to delete under a read transaction first; a
	// write batch cannot iterate.
	var stale [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = itemKeyPrefix
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			stale = append(stale, it.Item().KeyCopy(nil))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("scan stale items: %w", err)
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	for _, key := range stale {
		if err := wb.Delete(key); err != nil {
			return fmt.Errorf("delete stale item: %w", err)
		}
	}
	for _, item := range items {
		val, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("encode item %s: %w", item.ID, err)
		}
		if err := wb.Set(itemKey(item.ID), val); err != nil {
			return fmt.Errorf("write item %s: %w", item.ID, err)
		}
	}
	return wb.Flush()
}

// Close closes the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

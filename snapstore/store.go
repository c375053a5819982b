// Package snapstore persists model snapshots to badger, keyed by store id.
package snapstore

import (
	"bytes"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/protoless/protoless/statetree"
)

// Store saves and loads instance snapshots in a badger database.
type Store struct {
	db     *badger.DB
	prefix []byte
}

// New creates a new Store.
func New(db *badger.DB, opts ...func(*Store)) *Store {
	s := &Store{db: db}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithPrefix sets the key prefix for the Store.
func WithPrefix(prefix []byte) func(*Store) {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// Save writes the instance's current snapshot under the given id.
func (s *Store) Save(id uuid.UUID, inst *statetree.Instance) error {
	data, err := statetree.EncodeSnapshot(inst)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot %s: %w", id, err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(s.key(id), data)
	})
	if err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", id, err)
	}

	return nil
}

// Load reads the snapshot stored under the given id.
func (s *Store) Load(id uuid.UUID) (map[string]any, error) {
	var snap map[string]any
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(s.key(id))
		if err != nil {
			return fmt.Errorf("failed to get snapshot %s: %w", id, err)
		}

		return item.Value(func(val []byte) error {
			snap, err = statetree.DecodeSnapshot(val)
			return err
		})
	})
	if err != nil {
		return nil, err
	}

	return snap, nil
}

// Restore instantiates the model from the snapshot stored under the given id.
func (s *Store) Restore(id uuid.UUID, m *statetree.Model) (*statetree.Instance, error) {
	snap, err := s.Load(id)
	if err != nil {
		return nil, err
	}

	inst, err := m.Instantiate(snap)
	if err != nil {
		return nil, fmt.Errorf("failed to restore snapshot %s: %w", id, err)
	}

	return inst, nil
}

func (s *Store) key(id uuid.UUID) []byte {
	return bytes.Join([][]byte{s.prefix, id[:]}, nil)
}

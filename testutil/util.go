package testutil

import (
	"testing"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

// PrepareDB creates an in-memory BadgerDB for testing.
func PrepareDB(t testing.TB) *badger.DB {
	opt := badger.DefaultOptions("").WithInMemory(true)
	db, err := badger.Open(opt)
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

package repositories

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// Open opens the badger store at path. With inMemory set the path is
// ignored and nothing touches the disk.
func Open(path string, inMemory bool) (*badger.DB, error) {
	opts := badger.DefaultOptions(path)
	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts = opts.
		WithLogger(nil).
		WithNumVersionsToKeep(1)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger store %q: %w", path, err)
	}
	return db, nil
}

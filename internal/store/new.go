package store

import (
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
)

type implStore struct {
	db *badger.DB
}

// Options configures the Badger-backed store.
type Options struct {
	// Dir is the directory for database files. Required unless InMemory.
	Dir string

	// InMemory runs the database without disk persistence.
	// Used by tests to exercise the real engine.
	InMemory bool
}

// New opens the meeting store
func New(opts Options) (Store, error) {
	if !opts.InMemory && opts.Dir == "" {
		return nil, fmt.Errorf("store: Options.Dir is required for on-disk mode")
	}

	dbOpts := badger.DefaultOptions(opts.Dir).WithLogger(nil)
	if opts.InMemory {
		dbOpts = dbOpts.WithInMemory(true)
	}

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}

	return &implStore{db: db}, nil
}

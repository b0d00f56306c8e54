package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/luminameet/meetingflow/internal/meeting"
)

// Key layout: meetings live under "meeting/<id>"; an owner index under
// "owner/<ownerID>/<id>" enables prefix listing per owner.

func meetingKey(id string) []byte {
	return []byte("meeting/" + id)
}

func ownerKey(ownerID, id string) []byte {
	return []byte("owner/" + ownerID + "/" + id)
}

func (s *implStore) Create(ctx context.Context, a *meeting.Artifact) (string, error) {
	if a.OwnerID == "" {
		return "", fmt.Errorf("store: artifact owner id is required")
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	value, err := json.Marshal(a)
	if err != nil {
		return "", fmt.Errorf("store: encode artifact: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(meetingKey(a.ID), value); err != nil {
			return err
		}
		return txn.Set(ownerKey(a.OwnerID, a.ID), []byte(a.ID))
	})
	if err != nil {
		return "", fmt.Errorf("store: save artifact: %w", err)
	}

	return a.ID, nil
}

func (s *implStore) ListByOwner(ctx context.Context, ownerID string) ([]*meeting.Artifact, error) {
	prefix := []byte("owner/" + ownerID + "/")

	var artifacts []*meeting.Artifact
	err := s.db.View(func(txn *badger.Txn) error {
		iterOpts := badger.DefaultIteratorOptions
		iterOpts.Prefix = prefix
		it := txn.NewIterator(iterOpts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			id, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			item, err := txn.Get(meetingKey(string(id)))
			if err != nil {
				return err
			}
			var a meeting.Artifact
			if err := item.Value(func(v []byte) error {
				return json.Unmarshal(v, &a)
			}); err != nil {
				return err
			}
			artifacts = append(artifacts, &a)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("store: list by owner: %w", err)
	}

	sort.Slice(artifacts, func(i, j int) bool {
		return artifacts[i].CreatedAt.After(artifacts[j].CreatedAt)
	})

	return artifacts, nil
}

func (s *implStore) GetByID(ctx context.Context, id string) (*meeting.Artifact, error) {
	var a meeting.Artifact
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(meetingKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			return json.Unmarshal(v, &a)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: get %s: %w", id, err)
	}
	return &a, nil
}

func (s *implStore) Close() error {
	return s.db.Close()
}

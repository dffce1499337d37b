package badger

import (
	"context"
	"slices"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/searchit/core"
	"github.com/poiesic/searchit/storage"
)

// SessionRepository implements storage.SessionRepository for BadgerDB.
type SessionRepository struct {
	backend *Backend
}

var _ storage.SessionRepository = (*SessionRepository)(nil)

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(backend *Backend) (*SessionRepository, error) {
	return &SessionRepository{backend: backend}, nil
}

// Close is a no-op; the backend owns the database handle.
func (r *SessionRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *SessionRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddDocument records a document upload in a session.
func (r *SessionRepository) AddDocument(ctx context.Context, sessionID string, doc *core.SessionDocument) error {
	if sessionID == "" || doc == nil || doc.DocumentID == "" {
		return storage.ErrInvalidQuery
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeSessionDocKey(sessionID, doc.DocumentID)
		if err := tx.Set(key, storage.MarshalSessionDocument(doc)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetDocuments lists the documents of a session in upload order.
func (r *SessionRepository) GetDocuments(ctx context.Context, sessionID string) ([]*core.SessionDocument, error) {
	var docs []*core.SessionDocument

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialSessionDocKey(sessionID)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var doc *core.SessionDocument
			err := iter.Item().Value(func(val []byte) error {
				var err error
				doc, err = storage.UnmarshalSessionDocument(val)
				return err
			})
			if err != nil {
				return err
			}
			docs = append(docs, doc)
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}

	slices.SortFunc(docs, func(a, b *core.SessionDocument) int {
		return a.UploadTime.Compare(b.UploadTime)
	})
	return docs, nil
}

// HasDocuments reports whether the session has any documents.
func (r *SessionRepository) HasDocuments(ctx context.Context, sessionID string) (bool, error) {
	found := false

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialSessionDocKey(sessionID)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		iter.Rewind()
		found = iter.Valid()
		return nil
	}, false)

	return found, err
}

// ClearSession removes the session's document registry and returns the IDs
// of the documents that were registered.
func (r *SessionRepository) ClearSession(ctx context.Context, sessionID string) ([]string, error) {
	var documentIDs []string

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialSessionDocKey(sessionID)
		iter := tx.NewIterator(opts)

		var keys [][]byte
		for iter.Rewind(); iter.Valid(); iter.Next() {
			keys = append(keys, iter.Item().KeyCopy(nil))
			err := iter.Item().Value(func(val []byte) error {
				doc, err := storage.UnmarshalSessionDocument(val)
				if err != nil {
					return err
				}
				documentIDs = append(documentIDs, doc.DocumentID)
				return nil
			})
			if err != nil {
				iter.Close()
				return err
			}
		}
		iter.Close()

		for _, key := range keys {
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	if err != nil {
		return nil, err
	}
	return documentIDs, nil
}

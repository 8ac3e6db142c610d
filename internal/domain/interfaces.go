package domain

import "context"

// DocumentSource retrieves a named JSON document, bypassing any cache.
// Implementations return an error wrapping ErrUnexpectedStatus for
// non-success responses.
type DocumentSource interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
	Describe(name string) string
}

// HistoryStore persists recently viewed packages
type HistoryStore interface {
	Record(name string) error
	Recent(limit int) ([]HistoryEntry, error)
	Clear() error
	Close() error
}

package storage

import "context"

// DedupStore records webhook IDs that have already been processed.
// Seen and MarkSeen are separate calls so an ID is only recorded once
// processing succeeded; a failed delivery stays unmarked and the
// upstream redelivery is processed normally.
type DedupStore interface {
	// Seen reports whether id has already been marked processed.
	Seen(ctx context.Context, id string) (bool, error)

	// MarkSeen records id as processed.
	MarkSeen(ctx context.Context, id string) error

	Close() error
}

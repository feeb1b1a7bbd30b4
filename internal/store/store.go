// Package store provides the dismissal store: the only durable state in the
// system, remembering which insight ids the user has dismissed.
package store

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=store.go -destination=store_mock.go -package=store

// DismissalStore is the capability surface consumed by the serving layer.
// The generation pipeline itself never touches it; filtering against the
// dismissed set happens in the consumer.
//
// Concurrent callers get read-then-write semantics with no atomicity across
// processes; last writer wins. The store is scoped to a single local user
// session, so cross-process consistency is not provided.
type DismissalStore interface {
	// GetDismissedIDs returns the set of dismissed insight ids.
	GetDismissedIDs(ctx context.Context) (map[string]bool, error)
	// Dismiss marks one insight id as dismissed. Idempotent.
	Dismiss(ctx context.Context, id string) error
	// Clear removes all dismissed ids.
	Clear(ctx context.Context) error
}

// DismissedKey is the fixed key under which the dismissed-id list persists.
const DismissedKey = "dismissedInsights"

// ParseDismissedIDs decodes the persisted representation: a JSON array of
// strings. A missing value or anything that fails to parse as such is an
// empty set, never an error surfaced to the caller.
func ParseDismissedIDs(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil
	}
	return ids
}

// EncodeDismissedIDs encodes ids into the persisted representation.
func EncodeDismissedIDs(ids []string) []byte {
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return []byte("[]")
	}
	return data
}

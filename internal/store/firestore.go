package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// DefaultDismissalsCollection is where dismissals live unless overridden.
const DefaultDismissalsCollection = "dismissals"

// FirestoreStore persists dismissals in Firestore, one document per dismissed
// insight id, keyed by the id itself.
type FirestoreStore struct {
	client     *firestore.Client
	collection string
}

var _ DismissalStore = (*FirestoreStore)(nil)

// NewFirestoreStore creates a Firestore-backed dismissal store. An empty
// collection name selects the default.
func NewFirestoreStore(client *firestore.Client, collection string) *FirestoreStore {
	if collection == "" {
		collection = DefaultDismissalsCollection
	}
	return &FirestoreStore{client: client, collection: collection}
}

// GetDismissedIDs returns the set of dismissed insight ids.
func (s *FirestoreStore) GetDismissedIDs(ctx context.Context) (map[string]bool, error) {
	ids := make(map[string]bool)
	iter := s.client.Collection(s.collection).Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list dismissals: %w", err)
		}
		ids[doc.Ref.ID] = true
	}
	return ids, nil
}

// Dismiss marks one insight id as dismissed. Re-dismissing overwrites the
// existing document, so the operation is idempotent.
func (s *FirestoreStore) Dismiss(ctx context.Context, id string) error {
	_, err := s.client.Collection(s.collection).Doc(id).Set(ctx, map[string]interface{}{
		"dismissedAt": time.Now(),
	})
	if err != nil {
		return fmt.Errorf("dismiss %s: %w", id, err)
	}
	return nil
}

// Clear removes all dismissed ids.
func (s *FirestoreStore) Clear(ctx context.Context) error {
	iter := s.client.Collection(s.collection).Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return fmt.Errorf("list dismissals: %w", err)
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return fmt.Errorf("delete dismissal %s: %w", doc.Ref.ID, err)
		}
	}
}

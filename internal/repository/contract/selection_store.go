package contract

import "context"

// ISelectionStore persists the selection set under a single key as a JSON array
// of string identifiers.
type ISelectionStore interface {
	Save(ctx context.Context, ids []string) error
	Load(ctx context.Context) ([]string, error)
}

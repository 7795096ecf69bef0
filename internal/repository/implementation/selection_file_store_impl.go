package implementation

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"beauty-advisor-be/internal/repository/contract"
)

// selectionFileStore keeps the selection set in a single JSON file, the durable
// equivalent of the browser's local storage entry.
type selectionFileStore struct {
	path string
}

func NewSelectionFileStore(path string) contract.ISelectionStore {
	return &selectionFileStore{path: path}
}

func (s *selectionFileStore) Save(ctx context.Context, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	// Write-then-rename so a crash mid-write can't leave a torn file.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *selectionFileStore) Load(ctx context.Context) ([]string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("malformed selection file %s: %w", s.path, err)
	}
	return ids, nil
}

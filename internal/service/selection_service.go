package service

import (
	"context"
	"sync"

	"beauty-advisor-be/internal/pkg/logger"
	"beauty-advisor-be/internal/repository/contract"
)

// ISelectionService owns the selection set: membership is identifier-normalized
// (string compare), every mutation persists, and restore never fails the app.
type ISelectionService interface {
	Restore(ctx context.Context)
	Toggle(ctx context.Context, id string) (bool, error)
	Clear(ctx context.Context) (int, error)
	IDs() []string
	Set() map[string]bool
}

type selectionService struct {
	store  contract.ISelectionStore
	logger logger.ILogger

	mu      sync.RWMutex
	members map[string]bool
	order   []string // insertion order, preserved through persistence round-trips
}

func NewSelectionService(store contract.ISelectionStore, log logger.ILogger) ISelectionService {
	return &selectionService{
		store:   store,
		logger:  log,
		members: make(map[string]bool),
	}
}

// Restore rehydrates the set from the store. Malformed stored data resets the
// selection to empty with a warning instead of failing startup.
func (ss *selectionService) Restore(ctx context.Context) {
	ids, err := ss.store.Load(ctx)
	if err != nil {
		ss.logger.Warn("Selection", "Could not load selections", map[string]interface{}{"error": err.Error()})
		return
	}

	ss.mu.Lock()
	defer ss.mu.Unlock()
	for _, id := range ids {
		if ss.members[id] {
			continue
		}
		ss.members[id] = true
		ss.order = append(ss.order, id)
	}
}

// Toggle flips membership and persists. Toggling the same id twice restores
// the original membership state.
func (ss *selectionService) Toggle(ctx context.Context, id string) (bool, error) {
	ss.mu.Lock()
	var selected bool
	if ss.members[id] {
		delete(ss.members, id)
		for i, existing := range ss.order {
			if existing == id {
				ss.order = append(ss.order[:i], ss.order[i+1:]...)
				break
			}
		}
	} else {
		ss.members[id] = true
		ss.order = append(ss.order, id)
		selected = true
	}
	snapshot := ss.snapshotLocked()
	ss.mu.Unlock()

	if err := ss.store.Save(ctx, snapshot); err != nil {
		ss.logger.Error("Selection", "Failed to persist selection", map[string]interface{}{"error": err.Error(), "id": id})
		return selected, err
	}
	return selected, nil
}

// Clear empties the set. Clearing an already-empty set is a no-op and does not
// touch the store.
func (ss *selectionService) Clear(ctx context.Context) (int, error) {
	ss.mu.Lock()
	cleared := len(ss.order)
	if cleared == 0 {
		ss.mu.Unlock()
		return 0, nil
	}
	ss.members = make(map[string]bool)
	ss.order = nil
	ss.mu.Unlock()

	if err := ss.store.Save(ctx, []string{}); err != nil {
		ss.logger.Error("Selection", "Failed to persist cleared selection", map[string]interface{}{"error": err.Error()})
		return cleared, err
	}
	return cleared, nil
}

func (ss *selectionService) IDs() []string {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.snapshotLocked()
}

func (ss *selectionService) Set() map[string]bool {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	set := make(map[string]bool, len(ss.members))
	for id := range ss.members {
		set[id] = true
	}
	return set
}

func (ss *selectionService) snapshotLocked() []string {
	snapshot := make([]string, len(ss.order))
	copy(snapshot, ss.order)
	return snapshot
}

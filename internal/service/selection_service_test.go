package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"beauty-advisor-be/internal/repository/implementation"

	"github.com/stretchr/testify/assert"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

func newFileBackedSelection(t *testing.T) (ISelectionService, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "selected_products.json")
	return NewSelectionService(implementation.NewSelectionFileStore(path), noopLogger{}), path
}

func TestToggleAddsThenRemoves(t *testing.T) {
	svc, _ := newFileBackedSelection(t)
	ctx := context.Background()

	selected, err := svc.Toggle(ctx, "1")
	assert.NoError(t, err)
	assert.True(t, selected)
	assert.Equal(t, []string{"1"}, svc.IDs())

	selected, err = svc.Toggle(ctx, "1")
	assert.NoError(t, err)
	assert.False(t, selected)
	assert.Empty(t, svc.IDs())
}

func TestToggleKeepsInsertionOrder(t *testing.T) {
	svc, _ := newFileBackedSelection(t)
	ctx := context.Background()

	for _, id := range []string{"3", "1", "2"} {
		_, err := svc.Toggle(ctx, id)
		assert.NoError(t, err)
	}
	assert.Equal(t, []string{"3", "1", "2"}, svc.IDs())

	_, err := svc.Toggle(ctx, "1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"3", "2"}, svc.IDs())
}

func TestSelectionSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selected_products.json")
	store := implementation.NewSelectionFileStore(path)
	ctx := context.Background()

	first := NewSelectionService(store, noopLogger{})
	_, err := first.Toggle(ctx, "2")
	assert.NoError(t, err)
	_, err = first.Toggle(ctx, "5")
	assert.NoError(t, err)

	second := NewSelectionService(store, noopLogger{})
	second.Restore(ctx)
	assert.Equal(t, []string{"2", "5"}, second.IDs())
}

func TestRestoreMissingFileStartsEmpty(t *testing.T) {
	svc, _ := newFileBackedSelection(t)
	svc.Restore(context.Background())
	assert.Empty(t, svc.IDs())
}

func TestRestoreMalformedFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selected_products.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	svc := NewSelectionService(implementation.NewSelectionFileStore(path), noopLogger{})
	svc.Restore(context.Background())
	assert.Empty(t, svc.IDs())
}

func TestClearEmptiesSetAndReportsCount(t *testing.T) {
	svc, _ := newFileBackedSelection(t)
	ctx := context.Background()

	for _, id := range []string{"1", "2", "3"} {
		_, err := svc.Toggle(ctx, id)
		assert.NoError(t, err)
	}

	cleared, err := svc.Clear(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 3, cleared)
	assert.Empty(t, svc.IDs())
}

func TestClearOnEmptySetIsNoop(t *testing.T) {
	svc, path := newFileBackedSelection(t)

	cleared, err := svc.Clear(context.Background())
	assert.NoError(t, err)
	assert.Zero(t, cleared)

	// The store file was never touched.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSetReflectsMembership(t *testing.T) {
	svc, _ := newFileBackedSelection(t)
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "7")
	assert.NoError(t, err)

	set := svc.Set()
	assert.True(t, set["7"])
	assert.False(t, set["8"])
}

package service

import (
	"Drafty/internal/model"
	"Drafty/internal/repo"
	"context"
	"encoding/json"
	"sync"
	"testing"
)

// memRepo — in-memory реализация DocumentRepository для тестов сервисов.
// Документы копируются через JSON, как это делает настоящий стор, поэтому
// мутации после Save/Load не «протекают» между вызовами.
type memRepo struct {
	mu        sync.Mutex
	docs      map[string][]byte
	loadErr   error
	saveErr   error
	saveCalls int
}

func newMemRepo() *memRepo {
	return &memRepo{docs: map[string][]byte{}}
}

var _ repo.DocumentRepository = (*memRepo)(nil)

func (m *memRepo) Load(ctx context.Context, partition string) (*model.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	raw, ok := m.docs[partition]
	if !ok {
		return model.NewDocument(), nil
	}
	doc := &model.Document{}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, err
	}
	doc.Normalize()
	return doc, nil
}

func (m *memRepo) Save(ctx context.Context, doc *model.Document, partition string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveCalls++
	if m.saveErr != nil {
		return m.saveErr
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	m.docs[partition] = raw
	return nil
}

// newServices собирает все сервисы над общим in-memory стором.
func newServices(t *testing.T) (*memRepo, *UserService, *NoteService, *NotebookService, *FlashcardService, *WhiteboardService) {
	t.Helper()
	m := newMemRepo()
	locks := repo.NewPartitionLocks()
	return m,
		NewUserService(m, locks, ""),
		NewNoteService(m, locks, ""),
		NewNotebookService(m, locks, ""),
		NewFlashcardService(m, locks, ""),
		NewWhiteboardService(m, locks, "")
}

package service

import (
	"Drafty/internal/model"
	"Drafty/internal/repo"
	"context"
	"time"

	"github.com/google/uuid"
)

// NoteService — CRUD заметок. Все операции ограничены коллекцией владельца:
// ownerID приходит только из проверенного токена, не из запроса.
type NoteService struct {
	store docStore
}

func NewNoteService(r repo.DocumentRepository, locks *repo.PartitionLocks, partition string) *NoteService {
	return &NoteService{store: docStore{repo: r, locks: locks, partition: partition}}
}

// NoteFields — поля создания заметки.
type NoteFields struct {
	Title   string
	Content string
	Tags    []string
}

// NotePatch — частичное обновление; nil-поле означает «не трогать».
type NotePatch struct {
	Title   *string
	Content *string
	Tags    *[]string
}

func (s *NoteService) List(ctx context.Context, ownerID string) ([]model.Note, error) {
	doc, err := s.store.view(ctx)
	if err != nil {
		return nil, err
	}
	notes := doc.Notes[ownerID]
	if notes == nil {
		notes = []model.Note{}
	}
	return notes, nil
}

// Create добавляет заметку в конец коллекции владельца (порядок = порядок создания).
func (s *NoteService) Create(ctx context.Context, ownerID string, f NoteFields) (*model.Note, error) {
	now := time.Now().UTC()
	tags := f.Tags
	if tags == nil {
		tags = []string{}
	}
	note := model.Note{
		ID:        uuid.NewString(),
		Title:     f.Title,
		Content:   f.Content,
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.store.update(ctx, func(doc *model.Document) error {
		doc.Notes[ownerID] = append(doc.Notes[ownerID], note)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// Update накладывает patch на существующую запись и обновляет updatedAt.
func (s *NoteService) Update(ctx context.Context, ownerID, id string, p NotePatch) (*model.Note, error) {
	var updated model.Note
	err := s.store.update(ctx, func(doc *model.Document) error {
		notes := doc.Notes[ownerID]
		for i := range notes {
			if notes[i].ID != id {
				continue
			}
			if p.Title != nil {
				notes[i].Title = *p.Title
			}
			if p.Content != nil {
				notes[i].Content = *p.Content
			}
			if p.Tags != nil {
				notes[i].Tags = *p.Tags
			}
			notes[i].UpdatedAt = time.Now().UTC()
			updated = notes[i]
			return nil
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete удаляет заметку владельца. Удаление отсутствующего id — не ошибка.
func (s *NoteService) Delete(ctx context.Context, ownerID, id string) error {
	return s.store.update(ctx, func(doc *model.Document) error {
		notes := doc.Notes[ownerID]
		kept := notes[:0]
		for _, n := range notes {
			if n.ID != id {
				kept = append(kept, n)
			}
		}
		doc.Notes[ownerID] = kept
		return nil
	})
}

package service

import (
	"Drafty/internal/model"
	"Drafty/internal/repo"
	"context"
	"time"

	"github.com/google/uuid"
)

// WhiteboardService — CRUD досок.
type WhiteboardService struct {
	store docStore
}

func NewWhiteboardService(r repo.DocumentRepository, locks *repo.PartitionLocks, partition string) *WhiteboardService {
	return &WhiteboardService{store: docStore{repo: r, locks: locks, partition: partition}}
}

// WhiteboardPatch — частичное обновление доски.
type WhiteboardPatch struct {
	Title    *string
	Template *string
	Content  *string
}

func (s *WhiteboardService) List(ctx context.Context, ownerID string) ([]model.Whiteboard, error) {
	doc, err := s.store.view(ctx)
	if err != nil {
		return nil, err
	}
	boards := doc.Whiteboards[ownerID]
	if boards == nil {
		boards = []model.Whiteboard{}
	}
	return boards, nil
}

func (s *WhiteboardService) Create(ctx context.Context, ownerID, title, template string) (*model.Whiteboard, error) {
	if template == "" {
		template = "blank"
	}
	now := time.Now().UTC()
	wb := model.Whiteboard{
		ID:        uuid.NewString(),
		Title:     title,
		Template:  template,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.store.update(ctx, func(doc *model.Document) error {
		doc.Whiteboards[ownerID] = append(doc.Whiteboards[ownerID], wb)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &wb, nil
}

func (s *WhiteboardService) Update(ctx context.Context, ownerID, id string, p WhiteboardPatch) (*model.Whiteboard, error) {
	var updated model.Whiteboard
	err := s.store.update(ctx, func(doc *model.Document) error {
		boards := doc.Whiteboards[ownerID]
		for i := range boards {
			if boards[i].ID != id {
				continue
			}
			if p.Title != nil {
				boards[i].Title = *p.Title
			}
			if p.Template != nil {
				boards[i].Template = *p.Template
			}
			if p.Content != nil {
				boards[i].Content = *p.Content
			}
			boards[i].UpdatedAt = time.Now().UTC()
			updated = boards[i]
			return nil
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *WhiteboardService) Delete(ctx context.Context, ownerID, id string) error {
	return s.store.update(ctx, func(doc *model.Document) error {
		boards := doc.Whiteboards[ownerID]
		kept := boards[:0]
		for _, wb := range boards {
			if wb.ID != id {
				kept = append(kept, wb)
			}
		}
		doc.Whiteboards[ownerID] = kept
		return nil
	})
}

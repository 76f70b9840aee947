package service

import (
	"Drafty/internal/model"
	"Drafty/internal/repo"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NotebookService — CRUD блокнотов и операции над их страницами.
type NotebookService struct {
	store docStore
}

func NewNotebookService(r repo.DocumentRepository, locks *repo.PartitionLocks, partition string) *NotebookService {
	return &NotebookService{store: docStore{repo: r, locks: locks, partition: partition}}
}

// NotebookPatch — частичное обновление блокнота.
type NotebookPatch struct {
	Name   *string
	Folder *string
}

// PagePatch — частичное обновление страницы.
type PagePatch struct {
	Title   *string
	Content *string
}

func (s *NotebookService) List(ctx context.Context, ownerID string) ([]model.Notebook, error) {
	doc, err := s.store.view(ctx)
	if err != nil {
		return nil, err
	}
	nbs := doc.Notebooks[ownerID]
	if nbs == nil {
		nbs = []model.Notebook{}
	}
	return nbs, nil
}

// Create создаёт блокнот с единственной стартовой страницей number=1.
func (s *NotebookService) Create(ctx context.Context, ownerID, name, folder string) (*model.Notebook, error) {
	now := time.Now().UTC()
	nb := model.Notebook{
		ID:     uuid.NewString(),
		Name:   name,
		Folder: folder,
		Pages: []model.Page{{
			ID:     uuid.NewString(),
			Number: 1,
			Title:  "Page 1",
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.store.update(ctx, func(doc *model.Document) error {
		doc.Notebooks[ownerID] = append(doc.Notebooks[ownerID], nb)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &nb, nil
}

func (s *NotebookService) Update(ctx context.Context, ownerID, id string, p NotebookPatch) (*model.Notebook, error) {
	var updated model.Notebook
	err := s.store.update(ctx, func(doc *model.Document) error {
		nbs := doc.Notebooks[ownerID]
		for i := range nbs {
			if nbs[i].ID != id {
				continue
			}
			if p.Name != nil {
				nbs[i].Name = *p.Name
			}
			if p.Folder != nil {
				nbs[i].Folder = *p.Folder
			}
			nbs[i].UpdatedAt = time.Now().UTC()
			updated = nbs[i]
			return nil
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *NotebookService) Delete(ctx context.Context, ownerID, id string) error {
	return s.store.update(ctx, func(doc *model.Document) error {
		nbs := doc.Notebooks[ownerID]
		kept := nbs[:0]
		for _, nb := range nbs {
			if nb.ID != id {
				kept = append(kept, nb)
			}
		}
		doc.Notebooks[ownerID] = kept
		return nil
	})
}

// AddPage добавляет страницу в конец блокнота. Номер — max(number)+1,
// поэтому номера уникальны даже после удалений.
func (s *NotebookService) AddPage(ctx context.Context, ownerID, notebookID, title, content string) (*model.Page, error) {
	var page model.Page
	err := s.store.update(ctx, func(doc *model.Document) error {
		nbs := doc.Notebooks[ownerID]
		for i := range nbs {
			if nbs[i].ID != notebookID {
				continue
			}
			next := 0
			for _, pg := range nbs[i].Pages {
				if pg.Number > next {
					next = pg.Number
				}
			}
			next++
			if title == "" {
				title = fmt.Sprintf("Page %d", next)
			}
			page = model.Page{ID: uuid.NewString(), Number: next, Title: title, Content: content}
			nbs[i].Pages = append(nbs[i].Pages, page)
			nbs[i].UpdatedAt = time.Now().UTC()
			return nil
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *NotebookService) UpdatePage(ctx context.Context, ownerID, notebookID, pageID string, p PagePatch) (*model.Notebook, error) {
	var updated model.Notebook
	err := s.store.update(ctx, func(doc *model.Document) error {
		nbs := doc.Notebooks[ownerID]
		for i := range nbs {
			if nbs[i].ID != notebookID {
				continue
			}
			for j := range nbs[i].Pages {
				if nbs[i].Pages[j].ID != pageID {
					continue
				}
				if p.Title != nil {
					nbs[i].Pages[j].Title = *p.Title
				}
				if p.Content != nil {
					nbs[i].Pages[j].Content = *p.Content
				}
				nbs[i].UpdatedAt = time.Now().UTC()
				updated = nbs[i]
				return nil
			}
			return ErrNotFound
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeletePage убирает страницу из блокнота. Оставшиеся страницы сохраняют
// свои номера. Отсутствующая страница — не ошибка, отсутствующий блокнот — ошибка.
func (s *NotebookService) DeletePage(ctx context.Context, ownerID, notebookID, pageID string) error {
	return s.store.update(ctx, func(doc *model.Document) error {
		nbs := doc.Notebooks[ownerID]
		for i := range nbs {
			if nbs[i].ID != notebookID {
				continue
			}
			kept := nbs[i].Pages[:0]
			for _, pg := range nbs[i].Pages {
				if pg.ID != pageID {
					kept = append(kept, pg)
				}
			}
			nbs[i].Pages = kept
			nbs[i].UpdatedAt = time.Now().UTC()
			return nil
		}
		return ErrNotFound
	})
}

package service

import (
	"Drafty/internal/model"
	"Drafty/internal/repo"
	"context"
	"time"

	"github.com/google/uuid"
)

// FlashcardService — CRUD наборов карточек и папок наборов.
// Наборы хранятся по владельцу, как и остальные коллекции; папки
// персистентны в том же документе (а не в локальном хранилище клиента).
type FlashcardService struct {
	store docStore
}

func NewFlashcardService(r repo.DocumentRepository, locks *repo.PartitionLocks, partition string) *FlashcardService {
	return &FlashcardService{store: docStore{repo: r, locks: locks, partition: partition}}
}

// FlashcardPatch — частичное обновление набора. Cards заменяет список целиком:
// клиент всегда шлёт полный набор карточек.
type FlashcardPatch struct {
	Title    *string
	Cards    *[]model.Card
	FolderID *string
}

// FolderPatch — частичное обновление папки.
type FolderPatch struct {
	Name  *string
	Color *string
}

func (s *FlashcardService) List(ctx context.Context, ownerID string) ([]model.FlashcardSet, error) {
	doc, err := s.store.view(ctx)
	if err != nil {
		return nil, err
	}
	sets := doc.Flashcards[ownerID]
	if sets == nil {
		sets = []model.FlashcardSet{}
	}
	return sets, nil
}

func (s *FlashcardService) Create(ctx context.Context, ownerID, title string) (*model.FlashcardSet, error) {
	now := time.Now().UTC()
	set := model.FlashcardSet{
		ID:        uuid.NewString(),
		Title:     title,
		Cards:     []model.Card{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.store.update(ctx, func(doc *model.Document) error {
		doc.Flashcards[ownerID] = append(doc.Flashcards[ownerID], set)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &set, nil
}

func (s *FlashcardService) Update(ctx context.Context, ownerID, id string, p FlashcardPatch) (*model.FlashcardSet, error) {
	var updated model.FlashcardSet
	err := s.store.update(ctx, func(doc *model.Document) error {
		sets := doc.Flashcards[ownerID]
		for i := range sets {
			if sets[i].ID != id {
				continue
			}
			if p.Title != nil {
				sets[i].Title = *p.Title
			}
			if p.Cards != nil {
				sets[i].Cards = withCardIDs(*p.Cards)
			}
			if p.FolderID != nil {
				fid := *p.FolderID
				sets[i].FolderID = &fid
			}
			sets[i].UpdatedAt = time.Now().UTC()
			updated = sets[i]
			return nil
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *FlashcardService) Delete(ctx context.Context, ownerID, id string) error {
	return s.store.update(ctx, func(doc *model.Document) error {
		sets := doc.Flashcards[ownerID]
		kept := sets[:0]
		for _, set := range sets {
			if set.ID != id {
				kept = append(kept, set)
			}
		}
		doc.Flashcards[ownerID] = kept
		return nil
	})
}

func (s *FlashcardService) ListFolders(ctx context.Context, ownerID string) ([]model.FlashcardFolder, error) {
	doc, err := s.store.view(ctx)
	if err != nil {
		return nil, err
	}
	folders := doc.Folders[ownerID]
	if folders == nil {
		folders = []model.FlashcardFolder{}
	}
	return folders, nil
}

func (s *FlashcardService) CreateFolder(ctx context.Context, ownerID, name, color string) (*model.FlashcardFolder, error) {
	folder := model.FlashcardFolder{ID: uuid.NewString(), Name: name, Color: color}
	err := s.store.update(ctx, func(doc *model.Document) error {
		doc.Folders[ownerID] = append(doc.Folders[ownerID], folder)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &folder, nil
}

func (s *FlashcardService) UpdateFolder(ctx context.Context, ownerID, id string, p FolderPatch) (*model.FlashcardFolder, error) {
	var updated model.FlashcardFolder
	err := s.store.update(ctx, func(doc *model.Document) error {
		folders := doc.Folders[ownerID]
		for i := range folders {
			if folders[i].ID != id {
				continue
			}
			if p.Name != nil {
				folders[i].Name = *p.Name
			}
			if p.Color != nil {
				folders[i].Color = *p.Color
			}
			updated = folders[i]
			return nil
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteFolder удаляет папку и отвязывает от неё наборы владельца.
func (s *FlashcardService) DeleteFolder(ctx context.Context, ownerID, id string) error {
	return s.store.update(ctx, func(doc *model.Document) error {
		folders := doc.Folders[ownerID]
		kept := folders[:0]
		for _, f := range folders {
			if f.ID != id {
				kept = append(kept, f)
			}
		}
		doc.Folders[ownerID] = kept

		sets := doc.Flashcards[ownerID]
		for i := range sets {
			if sets[i].FolderID != nil && *sets[i].FolderID == id {
				sets[i].FolderID = nil
			}
		}
		return nil
	})
}

// withCardIDs присваивает id карточкам, пришедшим от клиента без id.
func withCardIDs(cards []model.Card) []model.Card {
	out := make([]model.Card, len(cards))
	for i, c := range cards {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		out[i] = c
	}
	return out
}

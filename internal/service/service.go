package service

import (
	"Drafty/internal/model"
	"Drafty/internal/repo"
	"context"
	"errors"
)

// Доменные ошибки уровня сервисов.
var (
	// ErrNotFound — у владельца нет сущности с таким id.
	ErrNotFound = errors.New("entity not found")
	// ErrEmailTaken — email уже зарегистрирован.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials — пара email/пароль не подошла.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// docStore — общая база сервисов: репозиторий документа, реестр блокировок
// и партиция, с которой работает сервис.
type docStore struct {
	repo      repo.DocumentRepository
	locks     *repo.PartitionLocks
	partition string
}

// view загружает документ для чтения. Блокировка не берётся: одиночное
// чтение консистентно само по себе.
func (s docStore) view(ctx context.Context) (*model.Document, error) {
	return s.repo.Load(ctx, s.partition)
}

// update выполняет цикл load→mutate→save под мьютексом партиции.
// Если fn вернула ошибку, запись не выполняется.
func (s docStore) update(ctx context.Context, fn func(doc *model.Document) error) error {
	mu := s.locks.Get(s.partition)
	mu.Lock()
	defer mu.Unlock()

	doc, err := s.repo.Load(ctx, s.partition)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.repo.Save(ctx, doc, s.partition)
}

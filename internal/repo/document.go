package repo

import (
	"Drafty/internal/model"
	"context"
	"errors"
)

// Ошибки стора документов. Сервисы и хендлеры матчат их через errors.Is.
var (
	// ErrUnconfigured — стор не сконфигурирован или идентификаторы не прошли валидацию.
	ErrUnconfigured = errors.New("document store is not configured")
	// ErrUnreachable — транспортная ошибка или неуспешный статус удалённого API.
	ErrUnreachable = errors.New("document store is unreachable")
	// ErrMalformed — удалённое содержимое не является валидным JSON-документом.
	ErrMalformed = errors.New("document store content is malformed")
)

// DocumentRepository — контракт доступа к документу-блобу.
// Партиция выбирает именованный файл внутри удалённого стора; пустая строка
// означает файл по умолчанию. Load по несуществующей партиции возвращает
// пустой документ (bootstrap), а не ошибку.
//
// Контракт конкурентности: сам по себе Save не защищён от гонок — два
// одновременных Save по одной партиции дают last-write-wins. Сериализацию
// цикла load→mutate→save обеспечивает вызывающая сторона через PartitionLocks.
type DocumentRepository interface {
	Load(ctx context.Context, partition string) (*model.Document, error)
	Save(ctx context.Context, doc *model.Document, partition string) error
}

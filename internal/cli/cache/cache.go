package cache

import (
	"Drafty/internal/model"
	"encoding/json"
	"time"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// CachedNote — строка локального кэша заметок. Tags хранятся JSON-строкой,
// чтобы не заводить отдельную таблицу под плоский список.
type CachedNote struct {
	ID        string `gorm:"primaryKey"`
	Title     string
	Content   string
	Tags      string
	CreatedAt time.Time
	UpdatedAt time.Time
	FetchedAt time.Time `gorm:"index"`
}

// Cache — локальный read-through кэш заметок для CLI: последний успешный
// ответ сервера доступен офлайн через notes -cached.
type Cache struct {
	db *gorm.DB
}

// Open открывает (и создаёт при необходимости) файл кэша.
// Драйвер — modernc (чистый Go), поверх него gorm.
func Open(path string) (*Cache, error) {
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: path}
	db, err := gorm.Open(dial, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&CachedNote{}); err != nil {
		return nil, err
	}
	return &Cache{db: db}, nil
}

// Close закрывает соединение с БД.
func (c *Cache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ReplaceAll атомарно заменяет содержимое кэша свежим списком с сервера.
func (c *Cache) ReplaceAll(notes []model.Note) error {
	now := time.Now().UTC()
	return c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&CachedNote{}).Error; err != nil {
			return err
		}
		for _, n := range notes {
			tags, err := json.Marshal(n.Tags)
			if err != nil {
				return err
			}
			row := CachedNote{
				ID:        n.ID,
				Title:     n.Title,
				Content:   n.Content,
				Tags:      string(tags),
				CreatedAt: n.CreatedAt,
				UpdatedAt: n.UpdatedAt,
				FetchedAt: now,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// List возвращает кэшированные заметки в порядке создания.
func (c *Cache) List() ([]model.Note, error) {
	var rows []CachedNote
	if err := c.db.Order("created_at asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	notes := make([]model.Note, 0, len(rows))
	for _, row := range rows {
		var tags []string
		if row.Tags != "" {
			if err := json.Unmarshal([]byte(row.Tags), &tags); err != nil {
				return nil, err
			}
		}
		notes = append(notes, model.Note{
			ID:        row.ID,
			Title:     row.Title,
			Content:   row.Content,
			Tags:      tags,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
	}
	return notes, nil
}

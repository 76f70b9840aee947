package model

import "time"

// Whiteboard — доска. Content хранит сериализованное содержимое полотна,
// сервер его не интерпретирует.
type Whiteboard struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Template  string    `json:"template"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

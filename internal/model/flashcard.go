package model

import "time"

// FlashcardSet — набор карточек. FolderID опционально ссылается на
// FlashcardFolder того же владельца.
type FlashcardSet struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Cards     []Card    `json:"cards"`
	FolderID  *string   `json:"folderId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Card — одна карточка вопрос/ответ.
type Card struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FlashcardFolder группирует наборы карточек. Хранится на сервере вместе
// с остальными коллекциями владельца.
type FlashcardFolder struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

package model

import "time"

// Notebook — блокнот со страницами. Новый блокнот всегда создаётся
// с одной страницей number=1.
type Notebook struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Folder    string    `json:"folder"`
	Pages     []Page    `json:"pages"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Page — страница блокнота. Номера страниц только растут: при удалении
// страницы оставшиеся не перенумеровываются.
type Page struct {
	ID      string `json:"id"`
	Number  int    `json:"number"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

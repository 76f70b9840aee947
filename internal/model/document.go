package model

// Document — всё персистентное состояние одного раздела хранилища.
// Документ является единицей атомарности: каждая запись заменяет весь блоб
// целиком, частичных обновлений в удалённом сторе нет.
type Document struct {
	Users       map[string]User              `json:"users"`
	Notes       map[string][]Note            `json:"notes"`
	Notebooks   map[string][]Notebook        `json:"notebooks"`
	Flashcards  map[string][]FlashcardSet    `json:"flashcards"`
	Folders     map[string][]FlashcardFolder `json:"folders"`
	Whiteboards map[string][]Whiteboard      `json:"whiteboards"`
}

// NewDocument возвращает пустой документ со всеми инициализированными коллекциями.
// Это же состояние считается bootstrap-состоянием стора без содержимого.
func NewDocument() *Document {
	return &Document{
		Users:       map[string]User{},
		Notes:       map[string][]Note{},
		Notebooks:   map[string][]Notebook{},
		Flashcards:  map[string][]FlashcardSet{},
		Folders:     map[string][]FlashcardFolder{},
		Whiteboards: map[string][]Whiteboard{},
	}
}

// Normalize инициализирует nil-коллекции после десериализации,
// чтобы код сервисов мог писать в мапы без проверок.
func (d *Document) Normalize() {
	if d.Users == nil {
		d.Users = map[string]User{}
	}
	if d.Notes == nil {
		d.Notes = map[string][]Note{}
	}
	if d.Notebooks == nil {
		d.Notebooks = map[string][]Notebook{}
	}
	if d.Flashcards == nil {
		d.Flashcards = map[string][]FlashcardSet{}
	}
	if d.Folders == nil {
		d.Folders = map[string][]FlashcardFolder{}
	}
	if d.Whiteboards == nil {
		d.Whiteboards = map[string][]Whiteboard{}
	}
}

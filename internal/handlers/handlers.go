package handlers

import (
	"Drafty/internal/config"
	"Drafty/internal/middleware"
	"Drafty/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	noteService *service.NoteService,
	notebookService *service.NotebookService,
	flashcardService *service.FlashcardService,
	whiteboardService *service.WhiteboardService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	noteHandler := NewNoteHandler(noteService, logger)
	notebookHandler := NewNotebookHandler(notebookService, logger)
	flashcardHandler := NewFlashcardHandler(flashcardService, logger)
	whiteboardHandler := NewWhiteboardHandler(whiteboardService, logger)

	// Auth routes
	r.Post("/api/auth/signup", userHandler.Signup)
	r.Post("/api/auth/login", userHandler.Login)
	r.Get("/api/auth/me", userHandler.Me)

	// Notes
	r.Get("/api/notes", noteHandler.List)
	r.Post("/api/notes", noteHandler.Create)
	r.Put("/api/notes/{id}", noteHandler.Update)
	r.Delete("/api/notes/{id}", noteHandler.Delete)

	// Notebooks + pages
	r.Get("/api/notebooks", notebookHandler.List)
	r.Post("/api/notebooks", notebookHandler.Create)
	r.Put("/api/notebooks/{id}", notebookHandler.Update)
	r.Delete("/api/notebooks/{id}", notebookHandler.Delete)
	r.Post("/api/notebooks/{id}/pages", notebookHandler.AddPage)
	r.Put("/api/notebooks/{id}/pages/{pageID}", notebookHandler.UpdatePage)
	r.Delete("/api/notebooks/{id}/pages/{pageID}", notebookHandler.DeletePage)

	// Flashcards + folders
	r.Get("/api/flashcards", flashcardHandler.List)
	r.Post("/api/flashcards", flashcardHandler.Create)
	r.Get("/api/flashcards/folders", flashcardHandler.ListFolders)
	r.Post("/api/flashcards/folders", flashcardHandler.CreateFolder)
	r.Put("/api/flashcards/folders/{id}", flashcardHandler.UpdateFolder)
	r.Delete("/api/flashcards/folders/{id}", flashcardHandler.DeleteFolder)
	r.Put("/api/flashcards/{id}", flashcardHandler.Update)
	r.Delete("/api/flashcards/{id}", flashcardHandler.Delete)

	// Whiteboards
	r.Get("/api/whiteboards", whiteboardHandler.List)
	r.Post("/api/whiteboards", whiteboardHandler.Create)
	r.Put("/api/whiteboards/{id}", whiteboardHandler.Update)
	r.Delete("/api/whiteboards/{id}", whiteboardHandler.Delete)

	return &Handler{Router: r}
}

package main

import (
	"Drafty/internal/config"
	"Drafty/internal/handlers"
	"Drafty/internal/middleware"
	"Drafty/internal/repo"
	"Drafty/internal/service"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	store, err := repo.NewGistStore(cfg.GistAPIURL, cfg.GistID, cfg.GistToken, cfg.GistFile)
	if err != nil {
		sugar.Fatalw("failed to initialize document store", "error", err)
	}
	locks := repo.NewPartitionLocks()

	userService := service.NewUserService(store, locks, "")
	noteService := service.NewNoteService(store, locks, "")
	notebookService := service.NewNotebookService(store, locks, "")
	flashcardService := service.NewFlashcardService(store, locks, "")
	whiteboardService := service.NewWhiteboardService(store, locks, "")

	h := handlers.NewHandler(
		userService,
		noteService,
		notebookService,
		flashcardService,
		whiteboardService,
		sugar,
		cfg,
	)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"GistAPIURL", cfg.GistAPIURL,
		"GistFile", cfg.GistFile,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}

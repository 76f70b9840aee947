package handlers

import (
	"Drafty/internal/model"
	"Drafty/internal/service"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// FlashcardHandler обрабатывает CRUD наборов карточек и папок.
type FlashcardHandler struct {
	Flashcards *service.FlashcardService
	Logger     *zap.SugaredLogger
}

func NewFlashcardHandler(flashcards *service.FlashcardService, logger *zap.SugaredLogger) *FlashcardHandler {
	return &FlashcardHandler{Flashcards: flashcards, Logger: logger}
}

type flashcardCreateRequest struct {
	Title string `json:"title"`
}

type flashcardPatchRequest struct {
	Title    *string       `json:"title"`
	Cards    *[]model.Card `json:"cards"`
	FolderID *string       `json:"folderId"`
}

type folderCreateRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type folderPatchRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

func (h *FlashcardHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	sets, err := h.Flashcards.List(r.Context(), uid)
	if err != nil {
		respondError(w, h.Logger, "Flashcards.List", err)
		return
	}
	writeJSON(w, http.StatusOK, sets)
}

func (h *FlashcardHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req flashcardCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Flashcards.Create: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}

	set, err := h.Flashcards.Create(r.Context(), uid, req.Title)
	if err != nil {
		respondError(w, h.Logger, "Flashcards.Create", err)
		return
	}
	writeJSON(w, http.StatusCreated, set)
}

func (h *FlashcardHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req flashcardPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Flashcards.Update: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	set, err := h.Flashcards.Update(r.Context(), uid, chi.URLParam(r, "id"), service.FlashcardPatch{
		Title:    req.Title,
		Cards:    req.Cards,
		FolderID: req.FolderID,
	})
	if err != nil {
		respondError(w, h.Logger, "Flashcards.Update", err)
		return
	}
	writeJSON(w, http.StatusOK, set)
}

func (h *FlashcardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.Flashcards.Delete(r.Context(), uid, chi.URLParam(r, "id")); err != nil {
		respondError(w, h.Logger, "Flashcards.Delete", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *FlashcardHandler) ListFolders(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	folders, err := h.Flashcards.ListFolders(r.Context(), uid)
	if err != nil {
		respondError(w, h.Logger, "Flashcards.ListFolders", err)
		return
	}
	writeJSON(w, http.StatusOK, folders)
}

func (h *FlashcardHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req folderCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Flashcards.CreateFolder: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	folder, err := h.Flashcards.CreateFolder(r.Context(), uid, req.Name, req.Color)
	if err != nil {
		respondError(w, h.Logger, "Flashcards.CreateFolder", err)
		return
	}
	writeJSON(w, http.StatusCreated, folder)
}

func (h *FlashcardHandler) UpdateFolder(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req folderPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Flashcards.UpdateFolder: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	folder, err := h.Flashcards.UpdateFolder(r.Context(), uid, chi.URLParam(r, "id"), service.FolderPatch{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		respondError(w, h.Logger, "Flashcards.UpdateFolder", err)
		return
	}
	writeJSON(w, http.StatusOK, folder)
}

func (h *FlashcardHandler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.Flashcards.DeleteFolder(r.Context(), uid, chi.URLParam(r, "id")); err != nil {
		respondError(w, h.Logger, "Flashcards.DeleteFolder", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

package handlers

import (
	"Drafty/internal/service"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NotebookHandler обрабатывает CRUD блокнотов и их страниц.
type NotebookHandler struct {
	Notebooks *service.NotebookService
	Logger    *zap.SugaredLogger
}

func NewNotebookHandler(notebooks *service.NotebookService, logger *zap.SugaredLogger) *NotebookHandler {
	return &NotebookHandler{Notebooks: notebooks, Logger: logger}
}

type notebookCreateRequest struct {
	Name   string `json:"name"`
	Folder string `json:"folder"`
}

type notebookPatchRequest struct {
	Name   *string `json:"name"`
	Folder *string `json:"folder"`
}

type pageCreateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type pagePatchRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (h *NotebookHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	nbs, err := h.Notebooks.List(r.Context(), uid)
	if err != nil {
		respondError(w, h.Logger, "Notebooks.List", err)
		return
	}
	writeJSON(w, http.StatusOK, nbs)
}

func (h *NotebookHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req notebookCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Notebooks.Create: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	nb, err := h.Notebooks.Create(r.Context(), uid, req.Name, req.Folder)
	if err != nil {
		respondError(w, h.Logger, "Notebooks.Create", err)
		return
	}
	writeJSON(w, http.StatusCreated, nb)
}

func (h *NotebookHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req notebookPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Notebooks.Update: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	nb, err := h.Notebooks.Update(r.Context(), uid, chi.URLParam(r, "id"), service.NotebookPatch{
		Name:   req.Name,
		Folder: req.Folder,
	})
	if err != nil {
		respondError(w, h.Logger, "Notebooks.Update", err)
		return
	}
	writeJSON(w, http.StatusOK, nb)
}

func (h *NotebookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.Notebooks.Delete(r.Context(), uid, chi.URLParam(r, "id")); err != nil {
		respondError(w, h.Logger, "Notebooks.Delete", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *NotebookHandler) AddPage(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req pageCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Notebooks.AddPage: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	page, err := h.Notebooks.AddPage(r.Context(), uid, chi.URLParam(r, "id"), req.Title, req.Content)
	if err != nil {
		respondError(w, h.Logger, "Notebooks.AddPage", err)
		return
	}
	writeJSON(w, http.StatusCreated, page)
}

func (h *NotebookHandler) UpdatePage(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req pagePatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Notebooks.UpdatePage: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	nb, err := h.Notebooks.UpdatePage(r.Context(), uid, chi.URLParam(r, "id"), chi.URLParam(r, "pageID"), service.PagePatch{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		respondError(w, h.Logger, "Notebooks.UpdatePage", err)
		return
	}
	writeJSON(w, http.StatusOK, nb)
}

func (h *NotebookHandler) DeletePage(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.Notebooks.DeletePage(r.Context(), uid, chi.URLParam(r, "id"), chi.URLParam(r, "pageID")); err != nil {
		respondError(w, h.Logger, "Notebooks.DeletePage", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

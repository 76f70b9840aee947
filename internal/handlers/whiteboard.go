package handlers

import (
	"Drafty/internal/service"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// WhiteboardHandler обрабатывает CRUD досок.
type WhiteboardHandler struct {
	Whiteboards *service.WhiteboardService
	Logger      *zap.SugaredLogger
}

func NewWhiteboardHandler(whiteboards *service.WhiteboardService, logger *zap.SugaredLogger) *WhiteboardHandler {
	return &WhiteboardHandler{Whiteboards: whiteboards, Logger: logger}
}

type whiteboardCreateRequest struct {
	Title    string `json:"title"`
	Template string `json:"template"`
}

type whiteboardPatchRequest struct {
	Title    *string `json:"title"`
	Template *string `json:"template"`
	Content  *string `json:"content"`
}

func (h *WhiteboardHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	boards, err := h.Whiteboards.List(r.Context(), uid)
	if err != nil {
		respondError(w, h.Logger, "Whiteboards.List", err)
		return
	}
	writeJSON(w, http.StatusOK, boards)
}

func (h *WhiteboardHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req whiteboardCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Whiteboards.Create: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}

	wb, err := h.Whiteboards.Create(r.Context(), uid, req.Title, req.Template)
	if err != nil {
		respondError(w, h.Logger, "Whiteboards.Create", err)
		return
	}
	writeJSON(w, http.StatusCreated, wb)
}

func (h *WhiteboardHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req whiteboardPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Whiteboards.Update: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	wb, err := h.Whiteboards.Update(r.Context(), uid, chi.URLParam(r, "id"), service.WhiteboardPatch{
		Title:    req.Title,
		Template: req.Template,
		Content:  req.Content,
	})
	if err != nil {
		respondError(w, h.Logger, "Whiteboards.Update", err)
		return
	}
	writeJSON(w, http.StatusOK, wb)
}

func (h *WhiteboardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.Whiteboards.Delete(r.Context(), uid, chi.URLParam(r, "id")); err != nil {
		respondError(w, h.Logger, "Whiteboards.Delete", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

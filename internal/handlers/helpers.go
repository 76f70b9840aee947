package handlers

import (
	"Drafty/internal/middleware"
	"Drafty/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// writeJSON сериализует ответ; ошибки энкодера уже не исправить — игнорируем.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// requireUser достаёт id пользователя из контекста; без него — 401.
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	uid, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return "", false
	}
	return uid, true
}

// respondError маппит доменные ошибки на HTTP-статусы. Неожиданные ошибки
// деградируют в generic 500 без деталей наружу; детали — только в лог.
func respondError(w http.ResponseWriter, logger *zap.SugaredLogger, op string, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, service.ErrEmailTaken):
		http.Error(w, "email already registered", http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidCredentials):
		http.Error(w, "invalid email or password", http.StatusUnauthorized)
	default:
		logger.Errorw(op+": store error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

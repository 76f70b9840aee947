package handlers

import (
	"Drafty/internal/config"
	"Drafty/internal/middleware"
	"Drafty/internal/model"
	"Drafty/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// UserHandler обрабатывает регистрацию, вход и /auth/me.
type UserHandler struct {
	Users  *service.UserService
	Logger *zap.SugaredLogger
	Config *config.Config
}

func NewUserHandler(users *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{Users: users, Logger: logger, Config: cfg}
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse — токен плюс публичная проекция пользователя.
type authResponse struct {
	Token string           `json:"token"`
	User  model.PublicUser `json:"user"`
}

// Signup регистрация нового пользователя
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Signup: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "email and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.Users.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		respondError(w, h.Logger, "Signup", err)
		return
	}

	h.respondWithToken(w, user)
}

// Login вход по email/паролю
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Login: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "email and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.Users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, h.Logger, "Login", err)
		return
	}

	h.respondWithToken(w, user)
}

// Me возвращает свежую запись пользователя по токену.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	user, err := h.Users.GetByID(r.Context(), uid)
	if err != nil {
		// пользователь из валидного токена исчез из стора — это тоже 401
		if errors.Is(err, service.ErrNotFound) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		respondError(w, h.Logger, "Me", err)
		return
	}

	writeJSON(w, http.StatusOK, user.Public())
}

func (h *UserHandler) respondWithToken(w http.ResponseWriter, user *model.User) {
	token, err := middleware.BuildToken(user.ID, user.Email, user.Name, h.Config.AuthSecret)
	if err != nil {
		h.Logger.Errorw("auth: failed to sign token", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, authResponse{Token: token, User: user.Public()})
}

package handlers_test

import (
	"Drafty/internal/config"
	"Drafty/internal/handlers"
	"Drafty/internal/middleware"
	"Drafty/internal/model"
	"Drafty/internal/repo"
	"Drafty/internal/service"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"go.uber.org/zap"
)

// memDocRepo — in-memory стор документов для роутерных тестов.
type memDocRepo struct {
	mu      sync.Mutex
	docs    map[string][]byte
	loadErr error
	saveErr error
}

func newMemDocRepo() *memDocRepo {
	return &memDocRepo{docs: map[string][]byte{}}
}

var _ repo.DocumentRepository = (*memDocRepo)(nil)

func (m *memDocRepo) Load(ctx context.Context, partition string) (*model.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	raw, ok := m.docs[partition]
	if !ok {
		return model.NewDocument(), nil
	}
	doc := &model.Document{}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, err
	}
	doc.Normalize()
	return doc, nil
}

func (m *memDocRepo) Save(ctx context.Context, doc *model.Document, partition string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	m.docs[partition] = raw
	return nil
}

// newTestRouter собирает роутер поверх in-memory стора.
func newTestRouter(t *testing.T) (http.Handler, *config.Config, *memDocRepo) {
	t.Helper()
	cfg := &config.Config{AuthSecret: "test-secret"}
	logger := zap.NewNop().Sugar()
	middleware.SetLogger(logger)

	m := newMemDocRepo()
	locks := repo.NewPartitionLocks()
	h := handlers.NewHandler(
		service.NewUserService(m, locks, ""),
		service.NewNoteService(m, locks, ""),
		service.NewNotebookService(m, locks, ""),
		service.NewFlashcardService(m, locks, ""),
		service.NewWhiteboardService(m, locks, ""),
		logger,
		cfg,
	)
	return h.Router, cfg, m
}

// addAuth выпускает токен и проставляет его в Authorization.
func addAuth(t *testing.T, req *http.Request, userID, secret string) {
	t.Helper()
	token, err := middleware.BuildToken(userID, "u@example.com", "U", secret)
	if err != nil {
		t.Fatalf("BuildToken: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
}

// doJSON выполняет запрос с JSON-телом против роутера.
func doJSON(t *testing.T, router http.Handler, method, path string, payload any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewBuffer(b)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// signupUser регистрирует пользователя через API и возвращает токен и id.
func signupUser(t *testing.T, router http.Handler, email string) (token, userID string) {
	t.Helper()
	rr := doJSON(t, router, http.MethodPost, "/api/auth/signup", map[string]string{
		"email":    email,
		"password": "secret",
		"name":     "Test",
	}, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("signup failed: %d %s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode signup response: %v", err)
	}
	return resp.Token, resp.User.ID
}

package repo

import (
	"Drafty/internal/model"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGist — минимальный gist-совместимый сервер: хранит файлы в памяти,
// отвечает на GET и PATCH так же, как настоящий API.
type fakeGist struct {
	mu       chan struct{}
	files    map[string]string
	lastAuth string
}

func newFakeGist() *fakeGist {
	fg := &fakeGist{mu: make(chan struct{}, 1), files: map[string]string{}}
	fg.mu <- struct{}{}
	return fg
}

func (fg *fakeGist) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		<-fg.mu
		defer func() { fg.mu <- struct{}{} }()
		fg.lastAuth = r.Header.Get("Authorization")
		switch r.Method {
		case http.MethodGet:
			files := map[string]map[string]any{}
			for name, content := range fg.files {
				files[name] = map[string]any{"content": content}
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{"files": files})
		case http.MethodPatch:
			var payload struct {
				Files map[string]struct {
					Content string `json:"content"`
				} `json:"files"`
			}
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			for name, f := range payload.Files {
				fg.files[name] = f.Content
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{}`))
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}
}

func newTestStore(t *testing.T, fg *fakeGist) *GistStore {
	t.Helper()
	srv := httptest.NewServer(fg.handler())
	t.Cleanup(srv.Close)
	s, err := NewGistStore(srv.URL, "deadbeef01", "test-token", "drafty.json")
	require.NoError(t, err)
	return s
}

func TestNewGistStore_Validation(t *testing.T) {
	// отсутствие конфигурации
	_, err := NewGistStore("", "", "", "")
	assert.ErrorIs(t, err, ErrUnconfigured)

	// идентификатор с неожиданными символами не должен попасть в URL
	_, err = NewGistStore("https://api.example.com", "../../etc", "tok", "")
	assert.ErrorIs(t, err, ErrUnconfigured)

	_, err = NewGistStore("https://api.example.com", "abc123", "tok", "bad/name.json")
	assert.ErrorIs(t, err, ErrUnconfigured)

	s, err := NewGistStore("https://api.example.com", "abc123", "tok", "")
	require.NoError(t, err)
	assert.Equal(t, "drafty.json", s.defaultFile)
}

func TestGistStore_LoadBootstrap(t *testing.T) {
	// пустой gist — это не ошибка, а свежий пустой документ
	s := newTestStore(t, newFakeGist())

	doc, err := s.Load(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, doc.Users)
	assert.Empty(t, doc.Notes)
	assert.NotNil(t, doc.Notebooks)
	assert.NotNil(t, doc.Whiteboards)
}

func TestGistStore_SaveThenLoadRoundTrip(t *testing.T) {
	fg := newFakeGist()
	s := newTestStore(t, fg)
	ctx := context.Background()

	doc := model.NewDocument()
	doc.Users["a@b.c"] = model.User{ID: "u1", Email: "a@b.c", Name: "A", Password: "hash"}
	doc.Notes["u1"] = []model.Note{{
		ID:        "n1",
		Title:     "T",
		Content:   "C",
		Tags:      []string{"x"},
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}}

	require.NoError(t, s.Save(ctx, doc, ""))
	assert.Equal(t, "Bearer test-token", fg.lastAuth)

	got, err := s.Load(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, doc.Users, got.Users)
	assert.Equal(t, doc.Notes, got.Notes)

	// save(load()) — no-op относительно последующего load
	require.NoError(t, s.Save(ctx, got, ""))
	again, err := s.Load(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestGistStore_Partitions(t *testing.T) {
	fg := newFakeGist()
	s := newTestStore(t, fg)
	ctx := context.Background()

	doc := model.NewDocument()
	doc.Users["p@q.r"] = model.User{ID: "u9", Email: "p@q.r"}
	require.NoError(t, s.Save(ctx, doc, "tenant-a.json"))

	// документ партиции по умолчанию не затронут
	def, err := s.Load(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, def.Users)

	part, err := s.Load(ctx, "tenant-a.json")
	require.NoError(t, err)
	assert.Contains(t, part.Users, "p@q.r")

	// имя партиции тоже валидируется
	_, err = s.Load(ctx, "../oops")
	assert.ErrorIs(t, err, ErrUnconfigured)
}

func TestGistStore_MalformedContent(t *testing.T) {
	fg := newFakeGist()
	fg.files["drafty.json"] = "{not json"
	s := newTestStore(t, fg)

	_, err := s.Load(context.Background(), "")
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestGistStore_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	s, err := NewGistStore(srv.URL, "abc123", "tok", "")
	require.NoError(t, err)

	_, err = s.Load(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnreachable)

	err = s.Save(context.Background(), model.NewDocument(), "")
	assert.ErrorIs(t, err, ErrUnreachable)

	// закрытый сервер — транспортная ошибка, а не зависание
	srv.Close()
	_, err = s.Load(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestGistStore_TruncatedFileFetchesRaw(t *testing.T) {
	// листинг отдаёт truncated=true и raw_url, полный текст — по raw_url
	doc := model.NewDocument()
	doc.Users["x@y.z"] = model.User{ID: "u2", Email: "x@y.z"}
	full, err := json.Marshal(doc)
	require.NoError(t, err)

	mux := http.NewServeMux()
	var rawURL string
	mux.HandleFunc("/raw", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(full)
	})
	mux.HandleFunc("/gists/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"files": map[string]any{
				"drafty.json": map[string]any{
					"content":   string(full[:10]),
					"truncated": true,
					"raw_url":   rawURL,
				},
			},
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	rawURL = srv.URL + "/raw"

	s, err := NewGistStore(srv.URL, "abc123", "tok", "")
	require.NoError(t, err)

	got, err := s.Load(context.Background(), "")
	require.NoError(t, err)
	assert.Contains(t, got.Users, "x@y.z")
}

func TestPartitionLocks_SameMutexPerPartition(t *testing.T) {
	locks := NewPartitionLocks()
	assert.Same(t, locks.Get("a"), locks.Get("a"))
	assert.NotSame(t, locks.Get("a"), locks.Get("b"))
}

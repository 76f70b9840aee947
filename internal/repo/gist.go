package repo

import (
	"Drafty/internal/model"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"
)

var (
	gistIDRe   = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	fileNameRe = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)
)

// GistStore — реализация DocumentRepository поверх gist-совместимого API:
// GET  {api}/gists/{id}                          — чтение всех файлов,
// PATCH {api}/gists/{id} {"files":{name:{...}}}  — замена содержимого одного файла.
type GistStore struct {
	apiURL      string
	gistID      string
	token       string
	defaultFile string
	client      *http.Client
}

// NewGistStore валидирует конфигурацию стора и возвращает клиент.
// Идентификатор gist подставляется в URL, поэтому формат проверяется заранее.
func NewGistStore(apiURL, gistID, token, defaultFile string) (*GistStore, error) {
	if apiURL == "" || gistID == "" || token == "" {
		return nil, fmt.Errorf("%w: api url, gist id and token are required", ErrUnconfigured)
	}
	if !gistIDRe.MatchString(gistID) {
		return nil, fmt.Errorf("%w: unexpected gist id format %q", ErrUnconfigured, gistID)
	}
	if defaultFile == "" {
		defaultFile = "drafty.json"
	}
	if !fileNameRe.MatchString(defaultFile) {
		return nil, fmt.Errorf("%w: unexpected file name %q", ErrUnconfigured, defaultFile)
	}
	return &GistStore{
		apiURL:      apiURL,
		gistID:      gistID,
		token:       token,
		defaultFile: defaultFile,
		client:      &http.Client{Timeout: 15 * time.Second},
	}, nil
}

var _ DocumentRepository = (*GistStore)(nil)

type gistFile struct {
	Content   string `json:"content"`
	Truncated bool   `json:"truncated,omitempty"`
	RawURL    string `json:"raw_url,omitempty"`
}

type gistPayload struct {
	Files map[string]gistFile `json:"files"`
}

// resolveFile возвращает имя файла для партиции (пустая — файл по умолчанию).
func (s *GistStore) resolveFile(partition string) (string, error) {
	if partition == "" {
		return s.defaultFile, nil
	}
	if !fileNameRe.MatchString(partition) {
		return "", fmt.Errorf("%w: unexpected partition name %q", ErrUnconfigured, partition)
	}
	return partition, nil
}

// Load читает документ партиции. Отсутствие файла или пустое содержимое —
// это bootstrap-состояние: возвращается свежий пустой документ.
func (s *GistStore) Load(ctx context.Context, partition string) (*model.Document, error) {
	name, err := s.resolveFile(partition)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.gistURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	s.authorize(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: gist read status %d", ErrUnreachable, resp.StatusCode)
	}

	var payload gistPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	f, ok := payload.Files[name]
	if !ok || f.Content == "" {
		return model.NewDocument(), nil
	}

	content := f.Content
	if f.Truncated {
		// Gist API обрезает крупные файлы в листинге; полный текст — по raw_url.
		content, err = s.fetchRaw(ctx, f.RawURL)
		if err != nil {
			return nil, err
		}
	}

	doc := &model.Document{}
	if err := json.Unmarshal([]byte(content), doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	doc.Normalize()
	return doc, nil
}

// Save сериализует документ и заменяет файл партиции целиком.
func (s *GistStore) Save(ctx context.Context, doc *model.Document, partition string) error {
	name, err := s.resolveFile(partition)
	if err != nil {
		return err
	}

	content, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	body, err := json.Marshal(gistPayload{Files: map[string]gistFile{
		name: {Content: string(content)},
	}})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, s.gistURL(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	s.authorize(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: gist write status %d", ErrUnreachable, resp.StatusCode)
	}
	// ответ PATCH не интересен, важен только статус
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (s *GistStore) fetchRaw(ctx context.Context, rawURL string) (string, error) {
	if rawURL == "" {
		return "", fmt.Errorf("%w: truncated file without raw_url", ErrMalformed)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	s.authorize(req)
	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: raw read status %d", ErrUnreachable, resp.StatusCode)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	return string(b), nil
}

func (s *GistStore) gistURL() string {
	return s.apiURL + "/gists/" + s.gistID
}

func (s *GistStore) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Accept", "application/vnd.github+json")
}

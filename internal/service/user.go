package service

import (
	"Drafty/internal/model"
	"Drafty/internal/repo"
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserService инкапсулирует регистрацию и аутентификацию. Учётные записи
// живут в том же документе, что и остальные коллекции (map email → User).
type UserService struct {
	store docStore
}

func NewUserService(r repo.DocumentRepository, locks *repo.PartitionLocks, partition string) *UserService {
	return &UserService{store: docStore{repo: r, locks: locks, partition: partition}}
}

// Register создаёт пользователя. Ключ уникальности — email (без учёта регистра).
func (s *UserService) Register(ctx context.Context, email, password, name string) (*model.User, error) {
	email = normalizeEmail(email)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := model.User{
		ID:       uuid.NewString(),
		Email:    email,
		Name:     name,
		Password: string(hash),
	}

	err = s.store.update(ctx, func(doc *model.Document) error {
		if _, exists := doc.Users[email]; exists {
			return ErrEmailTaken
		}
		doc.Users[email] = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Login возвращает пользователя при совпадении пары email/пароль.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	doc, err := s.store.view(ctx)
	if err != nil {
		return nil, err
	}
	user, ok := doc.Users[normalizeEmail(email)]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// GetByID ищет пользователя по id (для /auth/me — всегда свежая запись из стора).
func (s *UserService) GetByID(ctx context.Context, id string) (*model.User, error) {
	doc, err := s.store.view(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range doc.Users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

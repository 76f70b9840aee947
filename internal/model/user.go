package model

// User — учётная запись. Ключ уникальности — email (ключ в Document.Users).
type User struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	Name       string  `json:"name"`
	Password   string  `json:"password,omitempty"` // bcrypt-хеш; наружу не отдаётся
	BuildoneID *string `json:"buildoneId,omitempty"`
}

// PublicUser is the client-facing projection of User without credentials.
type PublicUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Public strips the password hash before a user record leaves the server.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, Name: u.Name}
}

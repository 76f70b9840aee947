package commands

import (
	"Drafty/internal/cli/api"
	"Drafty/internal/cli/auth"
	"Drafty/internal/config"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store the auth token" }
func (loginCmd) Usage() string       { return "login <email> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	req := LoginRequest{Email: args[0], Password: args[1]}

	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/auth/login"
	resp, body, err := api.PostJSON(ctx, endpoint, req, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusUnauthorized {
		return errors.New("invalid email or password")
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}

	var ar authResponse
	if err := json.Unmarshal(body, &ar); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if err := auth.SaveToken(ar.Token); err != nil {
		return fmt.Errorf("saving auth: %w", err)
	}
	_ = auth.SaveLastEmail(ar.User.Email)

	fmt.Fprintln(Out, "Logged in successfully")
	return nil
}

func init() { RegisterCmd(loginCmd{}) }

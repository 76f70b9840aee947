package commands

import (
	"Drafty/internal/cli/api"
	"Drafty/internal/cli/auth"
	"Drafty/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// authResponse — ответ сервера на signup/login.
type authResponse struct {
	Token string `json:"token"`
	User  struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"user"`
}

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Register a new account and store the auth token" }
func (registerCmd) Usage() string       { return "register <email> <password> [name]" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return ErrUsage
	}
	req := SignupRequest{Email: args[0], Password: args[1]}
	if len(args) == 3 {
		req.Name = args[2]
	}

	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/auth/signup"
	resp, body, err := api.PostJSON(ctx, endpoint, req, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
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

	fmt.Fprintf(Out, "Registered as %s\n", ar.User.Email)
	return nil
}

func init() { RegisterCmd(registerCmd{}) }

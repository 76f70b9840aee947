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

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show the currently authenticated user" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}

	token, err := auth.LoadToken()
	if err != nil {
		return errors.New("not logged in (no stored token)")
	}

	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/auth/me"
	resp, body, err := api.GetJSON(ctx, endpoint, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusUnauthorized {
		return errors.New("stored token is no longer valid, run login again")
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var user struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.Unmarshal(body, &user); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "Logged in as %s", user.Email)
	if user.Name != "" {
		fmt.Fprintf(Out, " (%s)", user.Name)
	}
	fmt.Fprintln(Out)
	return nil
}

func init() { RegisterCmd(statusCmd{}) }

package commands

import (
	"Drafty/internal/cli/api"
	"Drafty/internal/cli/auth"
	"Drafty/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type noteRmCmd struct{}

func (noteRmCmd) Name() string        { return "note-rm" }
func (noteRmCmd) Description() string { return "Delete a note by id" }
func (noteRmCmd) Usage() string       { return "note-rm <id>" }

func (noteRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return ErrUsage
	}
	id := args[0]

	token, err := auth.LoadToken()
	if err != nil {
		return errors.New("not logged in (no stored token)")
	}

	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/notes/" + id
	resp, body, err := api.DoJSON(ctx, http.MethodDelete, endpoint, nil, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
		fmt.Fprintf(Out, "Deleted note %s\n", id)
		return nil
	case http.StatusUnauthorized:
		return errors.New("stored token is no longer valid, run login again")
	default:
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
}

func init() { RegisterCmd(noteRmCmd{}) }

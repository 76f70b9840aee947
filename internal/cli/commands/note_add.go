package commands

import (
	"Drafty/internal/cli/api"
	"Drafty/internal/cli/auth"
	"Drafty/internal/config"
	"Drafty/internal/model"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"strings"
)

type noteAddCmd struct{}

func (noteAddCmd) Name() string        { return "note-add" }
func (noteAddCmd) Description() string { return "Create a note" }
func (noteAddCmd) Usage() string       { return "note-add <title> [-content <text>] [-tags a,b]" }

func (noteAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	title := args[0]
	if title == "" {
		return ErrUsage
	}

	fs := flag.NewFlagSet("note-add", flag.ContinueOnError)
	fs.SetOutput(Out)
	content := fs.String("content", "", "note content")
	tagsCSV := fs.String("tags", "", "comma-separated tags")
	if err := fs.Parse(args[1:]); err != nil {
		return ErrUsage
	}

	token, err := auth.LoadToken()
	if err != nil {
		return errors.New("not logged in (no stored token)")
	}

	payload := map[string]any{"title": title, "content": *content}
	if *tagsCSV != "" {
		payload["tags"] = strings.Split(*tagsCSV, ",")
	}

	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/notes"
	resp, body, err := api.PostJSON(ctx, endpoint, payload, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusUnauthorized {
		return errors.New("stored token is no longer valid, run login again")
	}
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var note model.Note
	if err := json.Unmarshal(body, &note); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintln(Out, "Created:")
	fmt.Fprintf(Out, "  id:    %s\n", note.ID)
	fmt.Fprintf(Out, "  title: %s\n", note.Title)
	return nil
}

func init() { RegisterCmd(noteAddCmd{}) }

package commands

import (
	"Drafty/internal/cli/api"
	"Drafty/internal/cli/auth"
	"Drafty/internal/cli/cache"
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

type notesCmd struct{}

func (notesCmd) Name() string        { return "notes" }
func (notesCmd) Description() string { return "List notes (use -cached to read the local cache)" }
func (notesCmd) Usage() string       { return "notes [-cached]" }

func (notesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("notes", flag.ContinueOnError)
	fs.SetOutput(Out)
	cached := fs.Bool("cached", false, "read notes from the local cache instead of the server")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	if fs.NArg() != 0 {
		return ErrUsage
	}

	if *cached {
		return printCachedNotes(cfg)
	}

	token, err := auth.LoadToken()
	if err != nil {
		return errors.New("not logged in (no stored token)")
	}

	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/notes"
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

	var notes []model.Note
	if err := json.Unmarshal(body, &notes); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	// обновляем локальный кэш; неудача кэша не должна ломать вывод
	if c, cerr := cache.Open(cfg.ClientDBPath); cerr == nil {
		if rerr := c.ReplaceAll(notes); rerr != nil {
			fmt.Fprintf(Out, "warning: cache refresh failed: %v\n", rerr)
		}
		_ = c.Close()
	}

	printNotes(notes)
	return nil
}

func printCachedNotes(cfg *config.Config) error {
	c, err := cache.Open(cfg.ClientDBPath)
	if err != nil {
		return err
	}
	defer c.Close()

	notes, err := c.List()
	if err != nil {
		return err
	}
	if email, eerr := auth.LoadLastEmail(); eerr == nil {
		fmt.Fprintf(Out, "Cached notes for %s:\n", email)
	}
	printNotes(notes)
	return nil
}

func printNotes(notes []model.Note) {
	if len(notes) == 0 {
		fmt.Fprintln(Out, "No notes")
		return
	}
	for _, n := range notes {
		tags := ""
		if len(n.Tags) > 0 {
			tags = "  [" + strings.Join(n.Tags, ", ") + "]"
		}
		fmt.Fprintf(Out, "- %s  %s%s\n", n.ID, n.Title, tags)
	}
	fmt.Fprintf(Out, "Total: %d\n", len(notes))
}

func init() { RegisterCmd(notesCmd{}) }

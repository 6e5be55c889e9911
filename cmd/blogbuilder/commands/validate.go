package commands

import (
	"fmt"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/blogbuilder/internal/config"
	"git.home.luguber.info/inful/blogbuilder/internal/content"
	"git.home.luguber.info/inful/blogbuilder/internal/logfields"
)

// ValidateCmd implements the 'validate' command. It runs the loader (schema
// validation plus slug uniqueness) and reports what a build would publish,
// without writing anything.
type ValidateCmd struct{}

func (v *ValidateCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	entries, err := content.NewLoader(os.DirFS(cfg.Content.Dir)).Load()
	if err != nil {
		return err
	}

	for _, e := range entries {
		slog.Info("Article validated",
			logfields.Document(e.SourceName),
			logfields.Slug(e.Slug),
			slog.String("date", e.Meta.Date))
	}

	fmt.Printf("Validated %d article(s), no problems found\n", len(entries))
	return nil
}

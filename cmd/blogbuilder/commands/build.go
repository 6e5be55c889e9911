package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/blogbuilder/internal/config"
	"git.home.luguber.info/inful/blogbuilder/internal/logfields"
	"git.home.luguber.info/inful/blogbuilder/internal/site"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output string `short:"o" help:"Output directory for the generated site (overrides config)"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if b.Output != "" {
		cfg.Output.Dir = b.Output
	}
	return RunBuild(cfg)
}

func RunBuild(cfg *config.Config) error {
	slog.Info("Starting build",
		logfields.Path(cfg.Content.Dir),
		logfields.Output(cfg.Output.Dir))

	result, err := site.NewGenerator(cfg).Build()
	if err != nil {
		return err
	}

	fmt.Printf("Built %d article(s) into %s\n", result.Entries, cfg.Output.Dir)
	return nil
}

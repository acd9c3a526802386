package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/jr-cho/backdrop/internal/config"
	"github.com/jr-cho/backdrop/internal/content"
	"github.com/jr-cho/backdrop/internal/game"
	"github.com/jr-cho/backdrop/internal/sound"
	"github.com/jr-cho/backdrop/internal/stats"
)

func main() {
	if err := run(); err != nil {
		slog.Error("startup failed", "error", err)
		// Desktop launches often have no console attached, so mirror the
		// failure into a dialog before exiting.
		_ = zenity.Error(err.Error(), zenity.Title("backdrop"))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	slog.Info("config loaded",
		"github_user", cfg.GitHubUser,
		"stats", cfg.StatsActive(),
		"sound", cfg.SoundEnabled,
		"content", cfg.ContentPath,
	)

	doc := content.Landing()
	if cfg.ContentPath != "" {
		doc, err = content.Load(cfg.ContentPath)
		if err != nil {
			return fmt.Errorf("loading article: %w", err)
		}
	}

	var fetcher game.Fetcher
	if cfg.StatsActive() {
		fetcher = stats.NewClient(cfg.GitHubUser, cfg.GitHubToken)
	} else {
		slog.Info("profile stats disabled")
	}

	sounds, err := sound.NewBank(cfg.SoundEnabled)
	if err != nil {
		// The page works fine without tones; keep going with a silent bank.
		slog.Warn("audio unavailable, tones disabled", "error", err)
	}

	g := game.New(cfg, doc, fetcher, sounds)

	title := doc.Title
	if title == "" {
		title = "backdrop"
	}
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(title + " - O: open article, M: sound, D: debug, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running page: %w", err)
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/modernzork/adventure-engine/internal/adventures/cave"
	"github.com/modernzork/adventure-engine/internal/config"
	"github.com/modernzork/adventure-engine/internal/loader"
	"github.com/modernzork/adventure-engine/internal/logger"
	redisstorage "github.com/modernzork/adventure-engine/internal/storage"
	"github.com/modernzork/adventure-engine/pkg/adventure"
	"github.com/modernzork/adventure-engine/pkg/session"
	"github.com/modernzork/adventure-engine/pkg/storage"
)

func main() {
	cfg := config.Load()

	// Log to stderr so the TUI owns stdout.
	log := logger.Setup(cfg, os.Stderr)
	ctx := context.Background()

	store := openStorage(ctx, cfg, log)
	defer func() {
		_ = store.Close() // Ignore error in defer
	}()

	adventures := loader.New(cfg.DataDir, log)
	if err := adventures.Register(cave.New); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to register built-in adventure: %v\n", err)
		os.Exit(1)
	}

	infos := adventures.List()
	if len(infos) == 0 {
		fmt.Fprintln(os.Stderr, "No adventures available.")
		os.Exit(1)
	}

	fmt.Println("Available Adventures:")
	for i, info := range infos {
		fmt.Printf("  %d - %s by %s\n", i+1, info.Title, info.Author)
	}
	fmt.Print("\nSelect an adventure by number: ")

	var choice int
	if _, err := fmt.Scanf("%d", &choice); err != nil || choice < 1 || choice > len(infos) {
		fmt.Fprintln(os.Stderr, "Invalid selection")
		os.Exit(1)
	}

	factory, err := adventures.Factory(infos[choice-1].ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load adventure: %v\n", err)
		os.Exit(1)
	}

	endMode := session.EndModeHalt
	if cfg.EndMode == "continue" {
		endMode = session.EndModeContinue
	}

	sess, err := session.New(ctx, func() *adventure.Adventure { return factory() }, session.Config{
		Store:   store,
		Logger:  log,
		EndMode: endMode,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start session: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(NewConsoleUI(sess),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

// openStorage picks the configured backend, falling back to in-memory
// storage when Redis is unavailable. Persistence problems never prevent
// play.
func openStorage(ctx context.Context, cfg *config.Config, log *slog.Logger) storage.Storage {
	if cfg.Storage != config.StorageRedis {
		return storage.NewMemoryStorage()
	}
	rs, err := redisstorage.NewRedisStorage(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Warn("redis unavailable, using in-memory storage", "error", err)
		return storage.NewMemoryStorage()
	}
	return rs
}

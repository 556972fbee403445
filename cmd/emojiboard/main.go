package main

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"

	"github.com/emojiboard/client/pkg/api"
	"github.com/emojiboard/client/pkg/catalog"
	"github.com/emojiboard/client/pkg/search"
	"github.com/emojiboard/client/pkg/session"
	"github.com/emojiboard/client/pkg/ui"
)

func main() {
	// Load dotenv
	godotenv.Load()

	// Init Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn: os.Getenv("SENTRY_DSN"),
	}); err != nil {
		panic(err)
	}

	baseURL := os.Getenv("EMOJIBOARD_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5000/api"
	}

	stateDir := os.Getenv("EMOJIBOARD_STATE_DIR")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			panic(err)
		}
		stateDir = filepath.Join(home, ".emojiboard")
	}

	sessions := session.NewStore(filepath.Join(stateDir, "session.json"))
	sessions.Load()

	client := api.NewClient(baseURL, sessions)
	loader := catalog.NewLoader(client, filepath.Join(stateDir, "catalog.msgpack"))

	debounce := search.DefaultQuiescence
	if ms, err := strconv.Atoi(os.Getenv("SEARCH_DEBOUNCE_MS")); err == nil && ms > 0 {
		debounce = time.Duration(ms) * time.Millisecond
	}

	app := ui.NewApp(ui.Config{
		Client:   client,
		Sessions: sessions,
		Loader:   loader,
		Mode:     search.ParseMode(os.Getenv("SEARCH_MODE")),
		Debounce: debounce,
	})

	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		sentry.CaptureException(err)
		sentry.Flush(time.Second * 5)
		log.Fatal(err)
	}

	// Wait for Sentry events to flush
	sentry.Flush(time.Second * 5)
}

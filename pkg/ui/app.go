// Package ui is the terminal front end: a bubbletea program wiring the
// session gate, the search engine and the optimistic controllers to
// views. All state mutation goes through the controllers; the UI only
// renders snapshots and dispatches commands.
package ui

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/getsentry/sentry-go"

	"github.com/emojiboard/client/pkg/api"
	"github.com/emojiboard/client/pkg/catalog"
	"github.com/emojiboard/client/pkg/favorites"
	"github.com/emojiboard/client/pkg/posts"
	"github.com/emojiboard/client/pkg/reactions"
	"github.com/emojiboard/client/pkg/search"
	"github.com/emojiboard/client/pkg/session"
	"github.com/emojiboard/client/pkg/structs"
)

type view int

const (
	viewLogin view = iota
	viewRegister
	viewBrowse
	viewFeed
)

type Config struct {
	Client   *api.Client
	Sessions *session.Store
	Loader   *catalog.Loader
	Mode     search.Mode
	Debounce time.Duration
}

type App struct {
	client   *api.Client
	sessions *session.Store
	gate     session.Gate
	loader   *catalog.Loader

	store        *posts.Store
	reactionCtl  *reactions.Controller
	favoritesCtl *favorites.Controller
	engine       *search.Engine

	view     view
	login    loginModel
	register registerModel
	browse   browseModel
	feed     feedModel

	loading   bool
	blockErr  error
	notice    string
	noticeErr bool
	width     int
	height    int
}

func NewApp(cfg Config) *App {
	store := posts.NewStore(cfg.Client)
	a := &App{
		client:       cfg.Client,
		sessions:     cfg.Sessions,
		gate:         session.NewGate(cfg.Sessions),
		loader:       cfg.Loader,
		store:        store,
		reactionCtl:  reactions.NewController(cfg.Client, store),
		favoritesCtl: favorites.NewController(cfg.Client),
		engine:       search.NewEngine(cfg.Mode),
	}
	a.login = newLoginModel()
	a.register = newRegisterModel()
	a.browse = newBrowseModel(cfg.Debounce)
	a.feed = newFeedModel()

	// Session gate: without a stored token only the login entry point
	// renders.
	if _, ok := a.gate.Check(); ok {
		a.view = viewBrowse
		a.loading = true
	} else {
		a.view = viewLogin
	}
	return a
}

// Messages.

type initialDataMsg struct {
	catalog []structs.EmojiItem
}

type blockingErrMsg struct{ err error }

type loggedInMsg struct{ sess session.Session }

type loggedOutMsg struct{}

type noticeMsg struct {
	text  string
	isErr bool
}

type favoritesChangedMsg struct{}

type postsChangedMsg struct{}

type queryEvalMsg string

func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.browse.listenQueries()}
	if a.loading {
		cmds = append(cmds, a.loadInitialData())
	}
	return tea.Batch(cmds...)
}

// loadInitialData fetches catalog, favorites and posts. A failure here is
// the blocking error view; mutation failures later are only notices.
func (a *App) loadInitialData() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		items, err := a.loader.Load(ctx)
		if err != nil {
			return blockingErrMsg{err}
		}
		if err := a.favoritesCtl.Load(ctx); err != nil {
			return blockingErrMsg{err}
		}
		if err := a.store.Load(ctx); err != nil {
			return blockingErrMsg{err}
		}
		return initialDataMsg{catalog: items}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.blockErr != nil {
			if msg.String() == "r" {
				a.blockErr = nil
				a.loading = true
				return a, a.loadInitialData()
			}
			return a, nil
		}

	case initialDataMsg:
		a.loading = false
		a.blockErr = nil
		a.browse.setCatalog(msg.catalog)
		a.browse.results = a.engine.Filter(msg.catalog, "", false, a.favoritesCtl)
		a.feed.picker = msg.catalog
		return a, nil

	case blockingErrMsg:
		a.loading = false
		a.blockErr = msg.err
		sentry.CaptureException(msg.err)
		log.Println("initial load failed:", msg.err)
		return a, nil

	case loggedInMsg:
		if err := a.sessions.Init(msg.sess); err != nil {
			log.Println("persisting session:", err)
		}
		a.view = viewBrowse
		a.loading = true
		a.notice = ""
		return a, a.loadInitialData()

	case loggedOutMsg:
		// Teardown is local-authoritative: the file is already cleared
		// even if the server call failed.
		a.view = viewLogin
		a.login = newLoginModel()
		return a, nil

	case noticeMsg:
		a.notice = msg.text
		a.noticeErr = msg.isErr
		return a, nil

	case queryEvalMsg:
		a.browse.results = a.engine.Filter(a.browse.catalog, string(msg), a.browse.favoritesOnly, a.favoritesCtl)
		a.browse.clampCursor()
		return a, a.browse.listenQueries()

	case favoritesChangedMsg:
		a.browse.results = a.engine.Filter(a.browse.catalog, a.browse.query(), a.browse.favoritesOnly, a.favoritesCtl)
		a.browse.clampCursor()
		return a, nil

	case postsChangedMsg:
		a.feed.clampCursor(len(a.store.Posts()))
		return a, nil
	}

	switch a.view {
	case viewLogin:
		return a.updateLogin(msg)
	case viewRegister:
		return a.updateRegister(msg)
	case viewBrowse:
		return a.updateBrowse(msg)
	case viewFeed:
		return a.updateFeed(msg)
	}
	return a, nil
}

func (a *App) View() string {
	if a.loading {
		return paneStyle.Render("Loading emojis...")
	}
	if a.blockErr != nil {
		return errorStyle.Render("Failed to load emojis. Press ctrl+c to quit, r to retry.\n\n" + a.blockErr.Error())
	}

	var body string
	switch a.view {
	case viewLogin:
		body = a.login.view()
	case viewRegister:
		body = a.register.view()
	case viewBrowse:
		// Protected view: without a session, render nothing but the
		// login entry point.
		if _, ok := a.gate.Check(); !ok {
			body = a.login.view()
		} else {
			body = a.browse.view(a.favoritesCtl)
		}
	case viewFeed:
		sess, ok := a.gate.Check()
		if !ok {
			body = a.login.view()
		} else {
			body = a.feed.view(a.store.Posts(), sess.User.Id)
		}
	}

	if a.notice != "" {
		style := noticeStyle
		if a.noticeErr {
			style = errorStyle
		}
		body += "\n" + style.Render(a.notice)
	}
	return body
}

func (a *App) logout() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := a.client.Logout(ctx); err != nil {
			log.Println("logout request failed:", err)
		}
		if err := a.sessions.Clear(); err != nil {
			log.Println("clearing session file:", err)
		}
		return loggedOutMsg{}
	}
}

package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/emojiboard/client/pkg/clipboard"
	"github.com/emojiboard/client/pkg/favorites"
	"github.com/emojiboard/client/pkg/search"
	"github.com/emojiboard/client/pkg/structs"
)

const browseColumns = 6

type browseModel struct {
	input         textinput.Model
	catalog       []structs.EmojiItem
	results       []structs.EmojiItem
	favoritesOnly bool
	cursor        int

	debouncer *search.Debouncer
	queryCh   chan string
}

func newBrowseModel(debounce time.Duration) browseModel {
	input := textinput.New()
	input.Placeholder = "Search emojis..."
	input.Focus()
	input.CharLimit = 60

	ch := make(chan string, 1)
	return browseModel{
		input:   input,
		queryCh: ch,
		debouncer: search.NewDebouncer(debounce, func(query string) {
			ch <- query
		}),
	}
}

// listenQueries bridges the debouncer into the event loop: each settled
// query value arrives as a queryEvalMsg.
func (m *browseModel) listenQueries() tea.Cmd {
	return func() tea.Msg {
		return queryEvalMsg(<-m.queryCh)
	}
}

func (m *browseModel) setCatalog(items []structs.EmojiItem) {
	m.catalog = items
	m.results = items
	m.cursor = 0
}

func (m *browseModel) query() string {
	return m.input.Value()
}

func (m *browseModel) clampCursor() {
	if m.cursor >= len(m.results) {
		m.cursor = len(m.results) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *browseModel) selected() (structs.EmojiItem, bool) {
	if m.cursor < 0 || m.cursor >= len(m.results) {
		return structs.EmojiItem{}, false
	}
	return m.results[m.cursor], true
}

func (a *App) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		a.browse.input, cmd = a.browse.input.Update(msg)
		return a, cmd
	}

	switch key.String() {
	case "ctrl+f":
		a.browse.favoritesOnly = !a.browse.favoritesOnly
		a.browse.results = a.engine.Filter(a.browse.catalog, a.browse.query(), a.browse.favoritesOnly, a.favoritesCtl)
		a.browse.clampCursor()
		return a, nil

	case "ctrl+p":
		a.view = viewFeed
		return a, nil

	case "ctrl+l":
		return a, a.logout()

	case "up":
		a.browse.cursor -= browseColumns
		a.browse.clampCursor()
		return a, nil
	case "down":
		a.browse.cursor += browseColumns
		a.browse.clampCursor()
		return a, nil
	case "left":
		a.browse.cursor--
		a.browse.clampCursor()
		return a, nil
	case "right":
		a.browse.cursor++
		a.browse.clampCursor()
		return a, nil

	case "enter":
		if item, ok := a.browse.selected(); ok {
			return a, copyGlyph(item)
		}
		return a, nil

	case "ctrl+s":
		if item, ok := a.browse.selected(); ok {
			return a, a.toggleFavorite(item.Slug)
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.browse.input, cmd = a.browse.input.Update(msg)
	a.browse.debouncer.Update(a.browse.input.Value())
	return a, cmd
}

func copyGlyph(item structs.EmojiItem) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.Copy(item.Glyph); err != nil {
			return noticeMsg{text: "Copy failed: " + err.Error(), isErr: true}
		}
		return noticeMsg{text: fmt.Sprintf("Copied %s to clipboard", item.Glyph)}
	}
}

func (a *App) toggleFavorite(slug string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := a.favoritesCtl.Toggle(ctx, slug); err != nil {
			// Local favorite state is untouched on failure.
			return noticeMsg{text: "Failed to update favorites. Please try again.", isErr: true}
		}
		return favoritesChangedMsg{}
	}
}

func (m browseModel) view(favs *favorites.Controller) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Emoji Search"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	toggle := "off"
	if m.favoritesOnly {
		toggle = "on"
	}
	b.WriteString(faintStyle.Render(fmt.Sprintf("Favorites only: %s (%d favorites)", toggle, favs.Len())))
	b.WriteString("\n\n")

	if len(m.results) == 0 {
		if m.favoritesOnly {
			b.WriteString(faintStyle.Render("No favorite emojis yet!"))
		} else {
			b.WriteString(faintStyle.Render("No emojis found"))
		}
	} else {
		for i, item := range m.results {
			label := fmt.Sprintf("%s %s", item.Glyph, item.Name)
			if favs.Contains(item.Slug) {
				label = favoriteStyle.Render("★") + " " + label
			} else {
				label = "  " + label
			}
			cell := fmt.Sprintf("%-24s", label)
			if i == m.cursor {
				cell = selectedStyle.Render(cell)
			}
			b.WriteString(cell)
			if (i+1)%browseColumns == 0 {
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter: copy • ctrl+s: favorite • ctrl+f: favorites only • ctrl+p: posts • ctrl+l: logout"))
	return paneStyle.Render(b.String())
}

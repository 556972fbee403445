package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/emojiboard/client/pkg/posts"
	"github.com/emojiboard/client/pkg/reactions"
	"github.com/emojiboard/client/pkg/structs"
)

type feedEditing int

const (
	editingNone feedEditing = iota
	editingNew
	editingExisting
)

type feedModel struct {
	cursor int

	editing feedEditing
	editId  string
	input   textinput.Model

	picking      bool
	picker       []structs.EmojiItem
	pickerCursor int
}

func newFeedModel() feedModel {
	input := textinput.New()
	input.Placeholder = "Write something..."
	input.CharLimit = 2000
	return feedModel{input: input}
}

func (m *feedModel) clampCursor(n int) {
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (a *App) updateFeed(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if a.feed.editing != editingNone {
			var cmd tea.Cmd
			a.feed.input, cmd = a.feed.input.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	if a.feed.editing != editingNone {
		switch key.String() {
		case "esc":
			a.feed.editing = editingNone
			a.feed.input.Reset()
			return a, nil
		case "enter":
			content := a.feed.input.Value()
			editing := a.feed.editing
			editId := a.feed.editId
			a.feed.editing = editingNone
			a.feed.input.Reset()
			if editing == editingNew {
				return a, a.createPost(content)
			}
			return a, a.updatePost(editId, content)
		}
		var cmd tea.Cmd
		a.feed.input, cmd = a.feed.input.Update(msg)
		return a, cmd
	}

	feedPosts := a.store.Posts()
	sess := a.sessions.Current()

	if a.feed.picking {
		switch key.String() {
		case "esc":
			a.feed.picking = false
			return a, nil
		case "left":
			if a.feed.pickerCursor > 0 {
				a.feed.pickerCursor--
			}
			return a, nil
		case "right":
			if a.feed.pickerCursor < len(a.feed.picker)-1 {
				a.feed.pickerCursor++
			}
			return a, nil
		case "enter":
			a.feed.picking = false
			if a.feed.cursor < len(feedPosts) && a.feed.pickerCursor < len(a.feed.picker) {
				post := feedPosts[a.feed.cursor]
				emoji := a.feed.picker[a.feed.pickerCursor].Glyph
				return a, a.react(post.Id, emoji, sess.User.Id)
			}
			return a, nil
		}
		return a, nil
	}

	switch key.String() {
	case "up", "k":
		a.feed.cursor--
		a.feed.clampCursor(len(feedPosts))
		return a, nil
	case "down", "j":
		a.feed.cursor++
		a.feed.clampCursor(len(feedPosts))
		return a, nil

	case "n":
		a.feed.editing = editingNew
		a.feed.input.Reset()
		a.feed.input.Focus()
		return a, nil

	case "e":
		if a.feed.cursor < len(feedPosts) {
			post := feedPosts[a.feed.cursor]
			if post.OwnedBy(sess.User.Id) {
				a.feed.editing = editingExisting
				a.feed.editId = post.Id
				a.feed.input.SetValue(post.Content)
				a.feed.input.Focus()
			}
		}
		return a, nil

	case "d":
		if a.feed.cursor < len(feedPosts) {
			post := feedPosts[a.feed.cursor]
			if post.OwnedBy(sess.User.Id) {
				return a, a.deletePost(post.Id)
			}
		}
		return a, nil

	case "r":
		if a.feed.cursor < len(feedPosts) && len(a.feed.picker) > 0 {
			a.feed.picking = true
			a.feed.pickerCursor = 0
		}
		return a, nil

	case "R":
		return a, a.reloadPosts()

	case "ctrl+b":
		a.view = viewBrowse
		return a, nil

	case "ctrl+l":
		return a, a.logout()
	}
	return a, nil
}

func (a *App) createPost(content string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if _, err := a.store.Create(ctx, content); err != nil {
			if errors.Is(err, posts.ErrEmptyContent) {
				return noticeMsg{text: "Post content must not be empty.", isErr: true}
			}
			return noticeMsg{text: "Error creating post: " + err.Error(), isErr: true}
		}
		return postsChangedMsg{}
	}
}

func (a *App) updatePost(id string, content string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if _, err := a.store.Update(ctx, id, content); err != nil {
			return noticeMsg{text: "Error updating post: " + err.Error(), isErr: true}
		}
		return postsChangedMsg{}
	}
}

func (a *App) deletePost(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := a.store.Delete(ctx, id); err != nil {
			return noticeMsg{text: "Error deleting post: " + err.Error(), isErr: true}
		}
		return postsChangedMsg{}
	}
}

// react runs the optimistic toggle off the event loop. On failure the
// optimistic state stays visible; the notice is the only feedback.
func (a *App) react(postId string, emoji string, userId string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		err := a.reactionCtl.Toggle(ctx, postId, emoji, userId)
		if errors.Is(err, reactions.ErrSignInRequired) {
			return noticeMsg{text: "Login to react", isErr: true}
		}
		if err != nil {
			return noticeMsg{text: "Error reacting to post: " + err.Error(), isErr: true}
		}
		return postsChangedMsg{}
	}
}

func (a *App) reloadPosts() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := a.store.Reload(ctx); err != nil {
			return noticeMsg{text: "Failed to reload posts: " + err.Error(), isErr: true}
		}
		return postsChangedMsg{}
	}
}

func (m feedModel) view(feedPosts []structs.Post, userId string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Posts"))
	b.WriteString("\n\n")

	if m.editing != editingNone {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter: save • esc: cancel"))
		return paneStyle.Render(b.String())
	}

	if len(feedPosts) == 0 {
		b.WriteString(faintStyle.Render("No posts yet. Press n to write one."))
	}

	for i, post := range feedPosts {
		author := post.CreatedBy.Username
		if author == "" {
			author = post.CreatedBy.Id
		}
		line := fmt.Sprintf("%s  %s", post.Content, faintStyle.Render("by "+author))
		if post.OwnedBy(userId) {
			line += faintStyle.Render(" (yours)")
		}
		if i == m.cursor {
			line = selectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")

		if len(post.Reactions) > 0 {
			var chips []string
			for _, rec := range post.Reactions {
				if len(rec.Users) == 0 {
					continue
				}
				chip := fmt.Sprintf("%s %d", rec.Emoji, len(rec.Users))
				if reactions.Has(post.Reactions, rec.Emoji, userId) {
					chip = favoriteStyle.Render(chip)
				}
				chips = append(chips, chip)
			}
			b.WriteString("    " + strings.Join(chips, "  "))
			b.WriteString("\n")
		}
	}

	if m.picking {
		b.WriteString("\n")
		for i, item := range m.picker {
			cell := item.Glyph
			if i == m.pickerCursor {
				cell = selectedStyle.Render(cell)
			}
			b.WriteString(cell + " ")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter: react • esc: close picker"))
		return paneStyle.Render(b.String())
	}

	b.WriteString(helpStyle.Render("n: new • e: edit • d: delete • r: react • R: reload • ctrl+b: emoji • ctrl+l: logout"))
	return paneStyle.Render(b.String())
}

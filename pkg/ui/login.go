package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/emojiboard/client/pkg/api"
	"github.com/emojiboard/client/pkg/session"
)

type loginModel struct {
	inputs  []textinput.Model // email, password
	focused int
}

func newLoginModel() loginModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.Focus()
	email.CharLimit = 120

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 72

	return loginModel{inputs: []textinput.Model{email, password}}
}

func (a *App) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			a.login.focus(a.login.focused + 1)
			return a, nil
		case "shift+tab", "up":
			a.login.focus(a.login.focused - 1)
			return a, nil
		case "ctrl+r":
			a.view = viewRegister
			a.register = newRegisterModel()
			return a, nil
		case "esc":
			return a, tea.Quit
		case "enter":
			req := api.LoginReq{
				Email:    strings.TrimSpace(a.login.inputs[0].Value()),
				Password: a.login.inputs[1].Value(),
			}
			return a, a.doLogin(req)
		}
	}

	var cmd tea.Cmd
	a.login.inputs[a.login.focused], cmd = a.login.inputs[a.login.focused].Update(msg)
	return a, cmd
}

func (a *App) doLogin(req api.LoginReq) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		resp, err := a.client.Login(ctx, req)
		if err != nil {
			return noticeMsg{text: "Login failed: " + err.Error(), isErr: true}
		}
		return loggedInMsg{sess: session.Session{Token: resp.Token, User: resp.User}}
	}
}

func (m *loginModel) focus(i int) {
	if i < 0 {
		i = len(m.inputs) - 1
	}
	if i >= len(m.inputs) {
		i = 0
	}
	m.inputs[m.focused].Blur()
	m.focused = i
	m.inputs[m.focused].Focus()
}

func (m loginModel) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Emojiboard · sign in"))
	b.WriteString("\n\n")
	for _, in := range m.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter: sign in • ctrl+r: register • esc: quit"))
	return paneStyle.Render(b.String())
}

type registerModel struct {
	inputs  []textinput.Model // username, email, password
	focused int
}

func newRegisterModel() registerModel {
	username := textinput.New()
	username.Placeholder = "username"
	username.Focus()
	username.CharLimit = 20

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 120

	password := textinput.New()
	password.Placeholder = "password (8+ chars)"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 72

	return registerModel{inputs: []textinput.Model{username, email, password}}
}

func (a *App) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			a.register.focus(a.register.focused + 1)
			return a, nil
		case "shift+tab", "up":
			a.register.focus(a.register.focused - 1)
			return a, nil
		case "esc":
			a.view = viewLogin
			return a, nil
		case "enter":
			req := api.RegisterReq{
				Username: strings.TrimSpace(a.register.inputs[0].Value()),
				Email:    strings.TrimSpace(a.register.inputs[1].Value()),
				Password: a.register.inputs[2].Value(),
			}
			return a, a.doRegister(req)
		}
	}

	var cmd tea.Cmd
	a.register.inputs[a.register.focused], cmd = a.register.inputs[a.register.focused].Update(msg)
	return a, cmd
}

func (a *App) doRegister(req api.RegisterReq) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		resp, err := a.client.Register(ctx, req)
		if err != nil {
			return noticeMsg{text: "Registration failed: " + err.Error(), isErr: true}
		}
		return loggedInMsg{sess: session.Session{Token: resp.Token, User: resp.User}}
	}
}

func (m *registerModel) focus(i int) {
	if i < 0 {
		i = len(m.inputs) - 1
	}
	if i >= len(m.inputs) {
		i = 0
	}
	m.inputs[m.focused].Blur()
	m.focused = i
	m.inputs[m.focused].Focus()
}

func (m registerModel) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Emojiboard · create account"))
	b.WriteString("\n\n")
	for _, in := range m.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter: register • esc: back to sign in"))
	return paneStyle.Render(b.String())
}

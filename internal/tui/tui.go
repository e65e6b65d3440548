// Package tui implements the interactive mode of the admin client: a masked
// login prompt and a service fee browser built on Bubble Tea.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/court-fund/internal/adapter"
	"github.com/MKhiriev/court-fund/internal/logger"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func New(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *TUI {
	return &TUI{adapter: serverAdapter, logger: logger}
}

// LoginPrompt asks for the password of login (and for the login itself when
// empty) without echoing it, and returns the bearer token issued by the
// server. It returns [ErrUserQuit] when the prompt is abandoned.
func (t *TUI) LoginPrompt(ctx context.Context, login string) (string, error) {
	root := newRootModel(ctx, t.adapter, login, true)

	final, err := tea.NewProgram(root, tea.WithContext(ctx)).Run()
	if err != nil {
		return "", fmt.Errorf("run login prompt: %w", err)
	}

	result, ok := final.(*rootModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.token == "" {
		return "", ErrUserQuit
	}
	return result.token, nil
}

// Browse opens the fee browser. It starts on the login screen when the
// adapter holds no token.
func (t *TUI) Browse(ctx context.Context) error {
	root := newRootModel(ctx, t.adapter, "", false)

	if _, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run fee browser: %w", err)
	}

	t.logger.Debug().Msg("fee browser closed")
	return nil
}

type screen int

const (
	screenLogin screen = iota
	screenFees
)

type rootModel struct {
	screen     screen
	promptOnly bool

	login *loginModel
	fees  *feesModel

	token string
}

func newRootModel(ctx context.Context, serverAdapter adapter.ServerAdapter, login string, promptOnly bool) *rootModel {
	m := &rootModel{
		promptOnly: promptOnly,
		login:      newLoginModel(ctx, serverAdapter, login),
		fees:       newFeesModel(ctx, serverAdapter),
	}
	if !promptOnly && serverAdapter.Token() != "" {
		m.screen = screenFees
	}
	return m
}

func (m *rootModel) Init() tea.Cmd {
	if m.screen == screenFees {
		return m.fees.Init()
	}
	return m.login.Init()
}

func (m *rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.interrupt) {
		return m, tea.Quit
	}

	if done, ok := msg.(loginDoneMsg); ok && done.err == nil {
		m.token = done.token
		if m.promptOnly {
			return m, tea.Quit
		}
		m.screen = screenFees
		return m, m.fees.Init()
	}

	if m.screen == screenFees {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.quit) {
			return m, tea.Quit
		}
		_, cmd := m.fees.Update(msg)
		return m, cmd
	}

	_, cmd := m.login.Update(msg)
	return m, cmd
}

func (m *rootModel) View() string {
	if m.screen == screenFees {
		return m.fees.View()
	}
	return m.login.View()
}

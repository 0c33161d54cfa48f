package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewHistory
)

// SessionModel manages the full flow of an SSH session in one program:
// menu -> game or history -> menu.
//
// Games are cached per variant so the high score survives trips back to
// the menu for the life of the session.
type SessionModel struct {
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	sessionID string
	view      sessionView
	menu      MenuModel
	history   HistoryModel
	gameModel Model
	games     map[string]registry.Game
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) SessionModel {
	sessionID := uuid.NewString()
	if logger == nil {
		logger = log.Default()
	}

	return SessionModel{
		store:     store,
		logger:    logger.With("session", sessionID[:shortIDLen]),
		config:    cfg,
		sessionID: sessionID,
		menu:      NewMenuModel(cfg, nil),
		games:     make(map[string]registry.Game),
	}
}

// SessionID returns the unique ID of this session.
func (m SessionModel) SessionID() string {
	return m.sessionID
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewHistory:
		return m.updateHistory(msg)
	default:
		return m.updateMenu(msg)
	}
}

// bestScores collects the process high score of every cached game.
func (m SessionModel) bestScores() map[string]int {
	best := make(map[string]int, len(m.games))
	for id, g := range m.games {
		best[id] = g.State().HighScore
	}
	return best
}

// backToMenu rebuilds the menu with fresh best scores.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.view = viewMenu
	m.menu = NewMenuModel(m.config, m.bestScores())
	return m, m.menu.Init()
}

// updateMenu handles updates when in menu mode. Transitions drop the
// menu's own quit command.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.WantsHistory() {
		m.view = viewHistory
		m.history = NewHistoryModel(m.store, m.config.ScreenW, m.config.ScreenH)
		return m, m.history.Init()
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.menu.Selected(); selected != nil {
		game, ok := m.games[selected.GameID]
		if !ok {
			var err error
			game, err = registry.Create(selected.GameID)
			if err != nil {
				// Shouldn't happen since menu only shows registered games
				m.logger.Error("cannot create game", "game", selected.GameID, "error", err)
				return m.backToMenu()
			}
			m.games[selected.GameID] = game
		}

		// A zero seed makes NewModel pick a time-based one
		m.config = m.menu.Config()
		m.gameModel = NewModel(game, m.store, m.logger, m.config)
		m.view = viewGame
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.gameModel = gameModel
	}

	if m.gameModel.BackToMenu() {
		return m.backToMenu()
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateHistory handles updates when showing the replay history.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.history.Update(msg)
	if historyModel, ok := newModel.(HistoryModel); ok {
		m.history = historyModel
	}

	if m.history.IsGoingBack() {
		return m.backToMenu()
	}

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.gameModel.View()
	case viewHistory:
		return m.history.View()
	default:
		return m.menu.View()
	}
}

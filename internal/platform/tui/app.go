package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/games/racer"
	"github.com/vovakirdan/tui-racer/internal/storage"
)

// AppModel manages the full racer flow: game <-> scoreboard.
// It is the top-level model for both local play and SSH sessions.
type AppModel struct {
	game     Model
	scores   ScoreboardModel
	store    *storage.Store
	width    int
	height   int
	inScores bool
	quitting bool
}

// NewAppModel creates the top-level model. renderer may be nil for the
// local terminal.
func NewAppModel(game *racer.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger, renderer *ScreenRenderer) AppModel {
	gm := NewModel(game, store, cfg, logger)
	if renderer != nil {
		gm.renderer = renderer
	}
	return AppModel{
		game:   gm,
		store:  store,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
}

// Init initializes the app.
func (m AppModel) Init() tea.Cmd {
	return m.game.Init()
}

// Update handles messages for the app.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.game = m.updateGame(msg)
		if m.inScores {
			m.scores = m.updateScores(msg)
		}
		return m, nil

	case TickMsg:
		// Stale ticks still have to reach the game to be discarded.
		var cmd tea.Cmd
		m.game, cmd = m.stepGame(msg)
		return m, cmd
	}

	if m.inScores {
		return m.handleScores(msg)
	}
	return m.handleGame(msg)
}

func (m AppModel) handleGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.game, cmd = m.stepGame(msg)

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.showScores {
		m.game.showScores = false
		g := m.game.Game()
		m.scores = NewScoreboardModel(m.store, g.ID(), g.Title(), m.width, m.height)
		m.scores.embedded = true
		m.inScores = true
	}

	return m, cmd
}

func (m AppModel) handleScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if sm, ok := newModel.(ScoreboardModel); ok {
		m.scores = sm
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.inScores = false
	}

	return m, cmd
}

func (m AppModel) stepGame(msg tea.Msg) (Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gm, ok := newModel.(Model); ok {
		return gm, cmd
	}
	return m.game, cmd
}

func (m AppModel) updateGame(msg tea.Msg) Model {
	gm, _ := m.stepGame(msg)
	return gm
}

func (m AppModel) updateScores(msg tea.Msg) ScoreboardModel {
	newModel, _ := m.scores.Update(msg)
	if sm, ok := newModel.(ScoreboardModel); ok {
		return sm
	}
	return m.scores
}

// View renders the current screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inScores {
		return m.scores.View()
	}
	return m.game.View()
}

// Run starts the Bubble Tea program for local play.
func Run(game *racer.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewAppModel(game, store, cfg, logger, nil),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	FinishRun(game, store, logger)
	return err
}

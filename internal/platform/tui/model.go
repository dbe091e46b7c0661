package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/games/racer"
	"github.com/vovakirdan/tui-racer/internal/storage"
)

// Model is the Bubble Tea model for a racer game.
//
// Ticks are only scheduled while the session is running. Every start,
// resume, pause, stop or game over bumps gen, so a tick already in flight
// from an earlier loop is dropped instead of doubling the frame rate.
type Model struct {
	game       *racer.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       KeyMap
	keyMapper  *KeyMapper
	help       help.Model
	renderer   *ScreenRenderer
	logger     *log.Logger
	gen        int
	recorded   bool // Whether the last finished run has been saved
	quitting   bool
	showScores bool // Set when the user asks for the scoreboard
}

// NewModel creates a new Bubble Tea model for the given game.
// store may be nil to play without a run history.
func NewModel(game *racer.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap(game.Session().Config().Player.Vertical)
	keys.describePolicy(game.Session().Input().Policy())
	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keys:      keys,
		keyMapper: NewKeyMapper(keys),
		help:      help.New(),
		renderer:  defaultScreenRenderer,
		logger:    logger,
	}
	m.help.Width = cfg.ScreenW
	m.resizeScreen()
	return m
}

// Init initializes the model. The session starts idle, so no tick loop
// runs until the player starts a race.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.resizeScreen()
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.game.Session()

	switch {
	case key.Matches(msg, m.keys.Quit):
		if s.Stop() {
			m.recordRun()
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizeScreen()
		return m, nil

	case key.Matches(msg, m.keys.Shot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Scores):
		if !s.Running() {
			m.showScores = true
		}
		return m, nil

	case key.Matches(msg, m.keys.Stop):
		wasRunning := s.Running()
		if s.Stop() {
			m.recordRun()
		}
		return m, m.syncLoop(wasRunning)
	}

	action, _ := m.keyMapper.MapKey(msg)
	if action == core.ActionNone {
		return m, nil
	}

	wasRunning := s.Running()
	m.game.Handle(action)
	return m, m.syncLoop(wasRunning)
}

// syncLoop starts or cancels the tick loop after a state change.
func (m *Model) syncLoop(wasRunning bool) tea.Cmd {
	running := m.game.Session().Running()
	switch {
	case running && !wasRunning:
		m.gen++
		if m.game.Session().Snapshot().Frame == 0 {
			m.recorded = false
		}
		return tickCmd(m.config.TickRate, m.gen)
	case !running && wasRunning:
		m.gen++
	}
	return nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || !m.game.Session().Running() {
		return m, nil
	}

	d := m.game.Step(core.NewInputFrame())
	if d.Over {
		m.gen++
		m.recordRun()
		if d.NewBest {
			m.logger.Info("new best score", "score", m.game.Session().Score())
		}
		return m, nil
	}

	return m, tickCmd(m.config.TickRate, m.gen)
}

// recordRun appends the finished run to the history once.
func (m *Model) recordRun() {
	if m.recorded {
		return
	}
	m.recorded = true
	saveRun(m.game, m.store, m.logger)
}

// FinishRun ends a run the program left behind, for example when an SSH
// client disconnects mid-race. The best score is persisted by Stop and the
// run is added to the history. Runs that already ended are left alone.
func FinishRun(game *racer.Game, store *storage.Store, logger *log.Logger) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if !game.Session().Stop() {
		return
	}
	logger.Info("unfinished run stopped", "score", game.Session().Score())
	saveRun(game, store, logger)
}

// saveRun writes the session's last run to the history. Empty runs and
// games without a store are skipped.
func saveRun(game *racer.Game, store *storage.Store, logger *log.Logger) {
	snap := game.Session().Snapshot()
	if store == nil || snap.Score == 0 {
		return
	}
	runID, err := store.ForGame(game.ID()).RecordRun(storage.Run{
		Score:      snap.Score,
		Coins:      snap.CoinCount,
		Frames:     snap.Frame,
		Difficulty: string(snap.Difficulty),
	})
	if err != nil {
		logger.Warn("could not record run", "error", err)
		return
	}
	logger.Debug("run recorded", "run", runID, "score", snap.Score)
}

// resizeScreen fits the game screen above the help bar.
func (m *Model) resizeScreen() {
	helpHeight := lipgloss.Height(m.help.View(m.keys))
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH-helpHeight)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".racer", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.renderer.Render(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Game returns the game driven by this model.
func (m Model) Game() *racer.Game {
	return m.game
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

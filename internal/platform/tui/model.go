package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockarcade/internal/clock"
	"github.com/vovakirdan/blockarcade/internal/config"
	"github.com/vovakirdan/blockarcade/internal/core"
	"github.com/vovakirdan/blockarcade/internal/loop"
	"github.com/vovakirdan/blockarcade/internal/registry"
)

// footerHeight is the blank line plus the help line under the surface.
const footerHeight = 2

// Outcome tells the caller how a game session ended.
type Outcome int

const (
	OutcomeQuit Outcome = iota // Quit key: leave the program
	OutcomeBack                // Back key: return to the menu
)

// Options configure a game session.
type Options struct {
	Loop     config.LoopConfig
	Runtime  core.RuntimeConfig
	Logger   *log.Logger
	Clock    clock.Clock // Defaults to the system clock
	FromMenu bool        // Whether esc returns to the menu
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	driver    *loop.Driver
	opts      Options
	keyMapper *KeyMapper
	keys      GameKeyMap
	help      help.Model
	input     core.InputFrame
	width     int
	height    int
	outcome   Outcome
	quitting  bool
}

// NewModel resets the game and prepares a session for it.
func NewModel(game registry.Game, opts Options) Model {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Clock == nil {
		opts.Clock = clock.System()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	game.Reset(opts.Runtime)
	opts.Logger.Info("session started", "game", game.ID(), "seed", opts.Runtime.Seed)

	return Model{
		driver:    loop.New(game, opts.Loop, opts.Clock.Now(), opts.Logger),
		opts:      opts,
		keyMapper: NewKeyMapper(),
		keys:      NewGameKeyMap(game.Controls(), opts.FromMenu),
		help:      help.New(),
		input:     core.NewInputFrame(),
		width:     opts.Runtime.ScreenW,
		height:    opts.Runtime.ScreenH,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.opts.Loop.FrameInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		// The surface is hidden behind the notice
		if !m.tooSmall() {
			m.keyMapper.MapMouseToFrame(msg, m.origin(), &m.input)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m.handleFrame()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		return m.finish(OutcomeQuit)
	case action == core.ActionBack:
		if m.opts.FromMenu {
			return m.finish(OutcomeBack)
		}
		return m, nil
	case action != core.ActionNone:
		m.input.Set(action)
	}
	return m, nil
}

func (m Model) finish(o Outcome) (tea.Model, tea.Cmd) {
	m.outcome = o
	m.quitting = true
	frames, ticks := m.driver.Counts()
	m.opts.Logger.Info("session ended",
		"game", m.driver.Game().ID(),
		"frames", frames,
		"ticks", ticks,
	)
	return m, tea.Quit
}

// handleFrame runs one loop iteration with the input gathered since the
// previous frame.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	m.driver.Frame(m.opts.Clock.Now(), m.input)
	m.input.Clear()
	return m, frameCmd(m.opts.Loop.FrameInterval())
}

// origin returns the terminal position of the surface's top-left cell.
func (m Model) origin() core.Point {
	w, h := m.driver.Game().Size()
	return core.Pt(
		core.Clamp((m.width-w)/2, 0, m.width),
		core.Clamp((m.height-h-footerHeight)/2, 0, m.height),
	)
}

// tooSmall reports whether the terminal cannot fit the surface and footer.
func (m Model) tooSmall() bool {
	w, h := m.driver.Game().Size()
	return m.width < w || m.height < h+footerHeight
}

var (
	noticeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w, h := m.driver.Game().Size()
	if m.tooSmall() {
		notice := lipgloss.JoinVertical(lipgloss.Center,
			noticeStyle.Render("Window too small"),
			hintStyle.Render(fmt.Sprintf("need %dx%d, have %dx%d", w, h+footerHeight, m.width, m.height)),
			hintStyle.Render("q: quit"),
		)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, notice)
	}

	o := m.origin()
	surface := lipgloss.NewStyle().
		PaddingLeft(o.X).
		PaddingTop(o.Y).
		Render(RenderScreen(m.driver.Draw()))

	footer := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.help.View(m.keys))
	return surface + "\n\n" + footer
}

// Outcome returns how the session ended.
func (m Model) Outcome() Outcome {
	return m.outcome
}

// Run plays game until the user quits or goes back to the menu.
func Run(game registry.Game, opts Options) (Outcome, error) {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover needs motion without a button held
	)

	final, err := p.Run()
	if err != nil {
		return OutcomeQuit, fmt.Errorf("tui: %w", err)
	}
	return final.(Model).Outcome(), nil
}

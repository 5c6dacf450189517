package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockarcade/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game input.
// This centralizes bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "esc":
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// MapMouseToFrame records a mouse message in the input frame. origin is the
// terminal position of the surface's top-left cell.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, origin core.Point, frame *core.InputFrame) {
	frame.Mouse = core.Pt(msg.X-origin.X, msg.Y-origin.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			frame.Press(core.ButtonDown)
		}
	case tea.MouseActionRelease:
		// Legacy mouse encodings do not report which button was released
		if msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonNone {
			frame.Press(core.ButtonUp)
		}
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	}
	return MenuActionNone
}

// GameKeyMap lists the bindings shown in the in-game help footer.
type GameKeyMap struct {
	Controls []key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp implements help.KeyMap.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return append(append([]key.Binding{}, k.Controls...), k.Back, k.Quit)
}

// FullHelp implements help.KeyMap.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.Controls, {k.Back, k.Quit}}
}

// NewGameKeyMap builds the help bindings for a game's controls. The back
// binding is only enabled when esc leads somewhere.
func NewGameKeyMap(controls []core.Control, canGoBack bool) GameKeyMap {
	km := GameKeyMap{
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
	km.Back.SetEnabled(canGoBack)

	for _, c := range controls {
		km.Controls = append(km.Controls, key.NewBinding(
			key.WithKeys(strings.Split(c.Keys, "/")...),
			key.WithHelp(c.Keys, c.Help),
		))
	}
	return km
}

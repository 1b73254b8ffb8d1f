package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	StepLeft  key.Binding
	StepRight key.Binding
	Toggle    key.Binding
	Save      key.Binding
	Copy      key.Binding
	Retry     key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func newKeyMap() keyMap {
	saveKey, saveDesc := helpLabel(Shortcuts.Save, "save")
	prevKey, prevDesc := helpLabel(Shortcuts.Prev, "prev field")

	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "shift+tab", "k"),
			key.WithHelp(prevKey, prevDesc),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "tab", "j"),
			key.WithHelp("↓/tab", "next field"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "less/prev"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "more/next"),
		),
		StepLeft: key.NewBinding(
			key.WithKeys("shift+left", "H"),
			key.WithHelp("shift+←", "-5 min"),
		),
		StepRight: key.NewBinding(
			key.WithKeys("shift+right", "L"),
			key.WithHelp("shift+→", "+5 min"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space", "enter"),
			key.WithHelp("space", "toggle"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp(saveKey, saveDesc),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy json"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
			key.WithDisabled(),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc/q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("^c", "force quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Toggle, k.Save, k.Retry, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.StepLeft, k.StepRight, k.Toggle},
		{k.Save, k.Copy, k.Retry, k.Quit, k.ForceQuit},
	}
}

// setLoaded enables the bindings that only apply to a loaded form
func (k *keyMap) setLoaded(loaded, failed bool) {
	k.Retry.SetEnabled(failed)
	for _, b := range []*key.Binding{&k.Up, &k.Down, &k.Left, &k.Right, &k.StepLeft, &k.StepRight, &k.Toggle, &k.Save, &k.Copy} {
		b.SetEnabled(loaded)
	}
}

package tui

import "github.com/charmbracelet/bubbles/key"

// PlayKeyMap defines the key bindings of the play screen.
type PlayKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Focus     key.Binding
	Select    key.Binding
	Attend    key.Binding
	Skip      key.Binding
	Exams     key.Binding
	NextBlock key.Binding
	Mark      key.Binding
	Forge     key.Binding
	Trash     key.Binding
	Buy       key.Binding
	Runs      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PlayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Attend, k.Skip, k.Select, k.Focus, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PlayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Attend, k.Skip, k.Exams, k.NextBlock},
		{k.Up, k.Down, k.Left, k.Right, k.Focus},
		{k.Select, k.Mark, k.Forge, k.Trash, k.Buy},
		{k.Runs, k.Help, k.Quit},
	}
}

// DefaultPlayKeyMap returns default key bindings.
func DefaultPlayKeyMap() PlayKeyMap {
	return PlayKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "right"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "items/quests"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "activate/fulfil"),
		),
		Attend: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "attend"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "skip"),
		),
		Exams: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "exams"),
		),
		NextBlock: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next block"),
		),
		Mark: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mark/move"),
		),
		Forge: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "forge marked"),
		),
		Trash: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "trash"),
		),
		Buy: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "buy item"),
		),
		Runs: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "runs"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

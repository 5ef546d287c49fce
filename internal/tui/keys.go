package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	Up        key.Binding
	Down      key.Binding
	Open      key.Binding
	Favorite  key.Binding
	Wallet    key.Binding
	Connect   key.Binding
	Back      key.Binding
	Search    key.Binding
	JumpHome  key.Binding
	JumpList  key.Binding
	JumpFavs  key.Binding
	JumpDash  key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		NextTab:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next page")),
		PrevTab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev page")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Favorite:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorite")),
		Wallet:    key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "wallet")),
		Connect:   key.NewBinding(key.WithKeys("enter", "c"), key.WithHelp("enter", "connect")),
		Back:      key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		JumpHome:  key.NewBinding(key.WithKeys("1")),
		JumpList:  key.NewBinding(key.WithKeys("2")),
		JumpFavs:  key.NewBinding(key.WithKeys("3")),
		JumpDash:  key.NewBinding(key.WithKeys("4")),
	}
}

// helpLine renders the given bindings as a single footer line.
func helpLine(bindings ...key.Binding) string {
	var out string
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		if out != "" {
			out += "  "
		}
		out += h.Key + " " + h.Desc
	}
	return out
}

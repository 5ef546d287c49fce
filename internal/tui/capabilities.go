package tui

// ConnectionStatus is the wallet status views may display.
type ConnectionStatus struct {
	Connected    bool
	ShortAddress string // empty while no address is known
}

// Capabilities is everything a view may read or trigger. It is rebuilt on
// every render so derived values never go stale; views never touch the
// session store directly.
type Capabilities struct {
	Favorites          []string
	ToggleFavorite     func(id string)
	GoToListing        func(id string)
	Connection         ConnectionStatus
	RequestWalletModal func()
}

// IsFavorite reports whether id is in the favorites set.
func (c Capabilities) IsFavorite(id string) bool {
	for _, f := range c.Favorites {
		if f == id {
			return true
		}
	}
	return false
}

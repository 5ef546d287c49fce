// Package tui is the composition root: it owns the session store, the
// wallet controller and the navigation history, and hands each view the
// capability set it renders from.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	slogctx "github.com/veqryn/slog-context"

	"github.com/jask/propchain/internal/catalog"
	"github.com/jask/propchain/internal/nav"
	"github.com/jask/propchain/internal/session"
	"github.com/jask/propchain/internal/wallet"
)

const featuredCount = 4

// tabOrder is the navbar order. The detail route is reached by clicking a
// listing, never by tab.
var tabOrder = []nav.RouteName{nav.RouteHome, nav.RouteListings, nav.RouteFavorites, nav.RouteDashboard}

func routeTitle(name nav.RouteName) string {
	for _, r := range nav.Routes {
		if r.Name == name {
			return r.Title
		}
	}
	return string(name)
}

// Options configures the composition root.
type Options struct {
	Seed       []string
	Slot       *wallet.Slot
	Catalog    *catalog.Catalog
	InstallURL string
	StartPath  string
}

// App implements tea.Model.
type App struct {
	ctx  context.Context
	opts Options

	store    *session.Store
	wallet   *wallet.Controller
	history  *nav.History
	dispatch *nav.Dispatcher
	catalog  *catalog.Catalog

	keys      keyMap
	spinner   spinner.Model
	search    textinput.Model
	searching bool
	cursors   map[nav.RouteName]int

	width  int
	height int
	status string
}

func New(ctx context.Context, opts Options) *App {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	store := session.New(opts.Seed)
	history := nav.NewHistory(opts.StartPath)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorBrand)

	si := textinput.New()
	si.Prompt = "/ "
	si.Placeholder = "city, title or type"
	si.CharLimit = 64

	return &App{
		ctx:      ctx,
		opts:     opts,
		store:    store,
		wallet:   wallet.NewController(ctx, store, opts.Slot),
		history:  history,
		dispatch: nav.NewDispatcher(history),
		catalog:  opts.Catalog,
		keys:     defaultKeyMap(),
		spinner:  sp,
		search:   si,
		cursors:  map[nav.RouteName]int{},
	}
}

func (a *App) Init() tea.Cmd { return nil }

// capabilities is rebuilt on every render and key press.
func (a *App) capabilities() Capabilities {
	st := a.store.Snapshot()
	short, _ := a.store.ShortAddress()
	return Capabilities{
		Favorites:          a.store.Favorites(),
		ToggleFavorite:     a.store.ToggleFavorite,
		GoToListing:        a.dispatch.GoToListing,
		Connection:         ConnectionStatus{Connected: st.Connected, ShortAddress: short},
		RequestWalletModal: a.wallet.OpenModal,
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
	case tea.KeyMsg:
		return a, a.handleKey(m)
	case wallet.ConnectResultMsg:
		a.wallet.Handle(m)
		if short, ok := a.store.ShortAddress(); ok && a.wallet.State() == wallet.Connected {
			a.status = "wallet connected " + short
		}
	case spinner.TickMsg:
		if a.wallet.State() != wallet.Connecting {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(m)
		return a, cmd
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) tea.Cmd {
	if key.Matches(m, a.keys.ForceQuit) {
		return tea.Quit
	}
	if a.store.Snapshot().ModalOpen {
		return a.handleModalKey(m)
	}
	if a.searching {
		return a.handleSearchKey(m)
	}

	caps := a.capabilities()
	switch {
	case key.Matches(m, a.keys.Quit):
		return tea.Quit
	case key.Matches(m, a.keys.NextTab):
		a.switchTab(1)
	case key.Matches(m, a.keys.PrevTab):
		a.switchTab(-1)
	case key.Matches(m, a.keys.JumpHome):
		a.history.Navigate(nav.PathFor(nav.RouteHome))
	case key.Matches(m, a.keys.JumpList):
		a.history.Navigate(nav.PathFor(nav.RouteListings))
	case key.Matches(m, a.keys.JumpFavs):
		a.history.Navigate(nav.PathFor(nav.RouteFavorites))
	case key.Matches(m, a.keys.JumpDash):
		a.history.Navigate(nav.PathFor(nav.RouteDashboard))
	case key.Matches(m, a.keys.Wallet):
		caps.RequestWalletModal()
	case key.Matches(m, a.keys.Back):
		a.history.Back()
	default:
		return a.handlePageKey(m, caps)
	}
	a.status = ""
	return nil
}

func (a *App) switchTab(delta int) {
	route, _, _ := nav.Match(a.history.Current())
	idx := 0
	for i, name := range tabOrder {
		if name == route.Name {
			idx = i
		}
	}
	next := (idx + delta + len(tabOrder)) % len(tabOrder)
	a.history.Navigate(nav.PathFor(tabOrder[next]))
}

func (a *App) handlePageKey(m tea.KeyMsg, caps Capabilities) tea.Cmd {
	route, params, ok := nav.Match(a.history.Current())
	if !ok {
		return nil
	}

	switch route.Name {
	case nav.RouteHome, nav.RouteListings, nav.RouteFavorites:
		if route.Name == nav.RouteListings && key.Matches(m, a.keys.Search) {
			a.searching = true
			return a.search.Focus()
		}
		list := a.pageListings(route.Name, caps)
		cur := clamp(a.cursors[route.Name], len(list))
		switch {
		case key.Matches(m, a.keys.Up):
			cur = clamp(cur-1, len(list))
		case key.Matches(m, a.keys.Down):
			cur = clamp(cur+1, len(list))
		case key.Matches(m, a.keys.Open) && len(list) > 0:
			caps.GoToListing(list[cur].ID)
		case key.Matches(m, a.keys.Favorite) && len(list) > 0:
			caps.ToggleFavorite(list[cur].ID)
			cur = clamp(cur, len(a.pageListings(route.Name, a.capabilities())))
		}
		a.cursors[route.Name] = cur

	case nav.RouteProperty:
		id := params["id"]
		if _, found := a.catalog.Get(id); found && key.Matches(m, a.keys.Favorite) {
			caps.ToggleFavorite(id)
		}

	case nav.RouteDashboard:
		if !caps.Connection.Connected && key.Matches(m, a.keys.Open) {
			caps.RequestWalletModal()
		}
	}
	return nil
}

func (a *App) handleModalKey(m tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(m, a.keys.Back):
		a.wallet.CloseModal()
	case key.Matches(m, a.keys.Connect):
		cmd := a.wallet.Connect()
		if cmd == nil {
			return nil
		}
		slogctx.Debug(a.ctx, "connect control activated")
		return tea.Batch(cmd, a.spinner.Tick)
	}
	return nil
}

func (a *App) handleSearchKey(m tea.KeyMsg) tea.Cmd {
	switch m.Type {
	case tea.KeyEsc:
		a.searching = false
		a.search.Blur()
		a.search.SetValue("")
		a.cursors[nav.RouteListings] = 0
		return nil
	case tea.KeyEnter:
		a.searching = false
		a.search.Blur()
		return nil
	}
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(m)
	a.cursors[nav.RouteListings] = 0
	return cmd
}

func (a *App) pageListings(route nav.RouteName, caps Capabilities) []catalog.Property {
	switch route {
	case nav.RouteHome:
		return a.catalog.Featured(featuredCount)
	case nav.RouteListings:
		return a.catalog.Search(a.search.Value())
	case nav.RouteFavorites:
		return a.catalog.Lookup(caps.Favorites)
	}
	return nil
}

func clamp(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func (a *App) View() string {
	caps := a.capabilities()
	route, params, ok := nav.Match(a.history.Current())

	header := renderNavbar(navbarProps{
		Active:          route.Name,
		WalletConnected: caps.Connection.Connected,
		Address:         caps.Connection.ShortAddress,
		Width:           a.width,
	})
	body := lipgloss.NewStyle().Padding(0, 1).Render(a.renderPage(route, params, ok, caps))
	view := header + "\n\n" + body + "\n\n" + a.renderFooter(route.Name)

	if !a.store.Snapshot().ModalOpen {
		return view
	}
	modal := a.renderWalletModal(caps)
	if a.width > 0 && a.height > 0 {
		return overlayCenter(view, modal, a.width, a.height)
	}
	return view + "\n\n" + modal
}

func (a *App) renderPage(route nav.Route, params nav.Params, ok bool, caps Capabilities) string {
	if !ok {
		return titleStyle.Render("Page not found") + "\n\n" + mutedStyle.Render(a.history.Current())
	}
	width := max(a.width-2, 0)
	switch route.Name {
	case nav.RouteHome:
		return renderListings(listingProps{
			Title:      "Featured properties",
			Subtitle:   "buy, rent and tokenize real estate",
			Empty:      "Nothing on the market right now.",
			Listings:   a.pageListings(route.Name, caps),
			Cursor:     a.cursors[route.Name],
			Width:      width,
			IsFavorite: caps.IsFavorite,
		})
	case nav.RouteListings:
		list := a.pageListings(route.Name, caps)
		sub := fmt.Sprintf("%d results", len(list))
		if a.searching || a.search.Value() != "" {
			sub = a.search.View() + "  " + sub
		}
		return renderListings(listingProps{
			Title:      "All listings",
			Subtitle:   sub,
			Empty:      "No listings match your search.",
			Listings:   list,
			Cursor:     a.cursors[route.Name],
			Width:      width,
			IsFavorite: caps.IsFavorite,
		})
	case nav.RouteFavorites:
		return renderListings(listingProps{
			Title:      "Favorites",
			Subtitle:   fmt.Sprintf("%d saved", len(caps.Favorites)),
			Empty:      "You have no favorites yet. Press f on a listing to save it.",
			Listings:   a.pageListings(route.Name, caps),
			Cursor:     a.cursors[route.Name],
			Width:      width,
			IsFavorite: caps.IsFavorite,
		})
	case nav.RouteProperty:
		id := params["id"]
		p, found := a.catalog.Get(id)
		return renderDetail(detailProps{ID: id, Property: p, Found: found, Favored: caps.IsFavorite(id)})
	case nav.RouteDashboard:
		var holdings []catalog.Property
		for _, p := range a.catalog.All() {
			if p.IsNFT {
				holdings = append(holdings, p)
			}
		}
		return renderDashboard(dashboardProps{WalletConnected: caps.Connection.Connected, Holdings: holdings, Width: width})
	}
	return ""
}

func (a *App) renderFooter(route nav.RouteName) string {
	k := a.keys
	var help string
	switch {
	case a.store.Snapshot().ModalOpen:
		help = helpLine(k.Connect, k.Back)
	case a.searching:
		help = "enter apply  esc clear"
	case route == nav.RouteProperty:
		help = helpLine(k.Favorite, k.Back, k.Wallet, k.Quit)
	case route == nav.RouteListings:
		help = helpLine(k.Up, k.Down, k.Open, k.Favorite, k.Search, k.NextTab, k.Wallet, k.Quit)
	case route == nav.RouteDashboard:
		help = helpLine(k.Open, k.NextTab, k.Wallet, k.Quit)
	default:
		help = helpLine(k.Up, k.Down, k.Open, k.Favorite, k.NextTab, k.Wallet, k.Quit)
	}
	line := footerStyle.Render(help)
	if a.status != "" {
		line += " " + statusStyle.Render(a.status)
	}
	return line
}

func (a *App) renderWalletModal(caps Capabilities) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Connect Wallet") + "  " + mutedStyle.Render("esc close") + "\n\n")

	state := a.wallet.State()
	switch {
	case state == wallet.Connecting:
		b.WriteString(a.spinner.View() + " Waiting for your wallet to respond…\n")
	case !a.wallet.ProviderPresent():
		b.WriteString(warningStyle.Render("Wallet provider not detected") + "\n")
		b.WriteString("Please install a wallet to continue.\n")
		b.WriteString(mutedStyle.Render("Get one at ") + a.opts.InstallURL + "\n")
	default:
		b.WriteString(walletButtonStyle.Render("enter  Connect with wallet") + "\n")
	}

	if state == wallet.Failed {
		b.WriteString("\n" + errorStyle.Render("Connection failed. Press enter to try again.") + "\n")
	}
	if caps.Connection.Connected {
		b.WriteString("\n" + successStyle.Render("Connected: "+caps.Connection.ShortAddress) + "\n")
	}
	return modalStyle.Render(strings.TrimRight(b.String(), "\n"))
}

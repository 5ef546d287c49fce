package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	slogctx "github.com/veqryn/slog-context"

	"github.com/jask/propchain/internal/session"
	"github.com/jask/propchain/internal/wallet"
)

const installURL = "https://metamask.io/download/"

func newTestApp(t *testing.T, p wallet.Provider) (*App, *wallet.Slot) {
	t.Helper()
	ctx := slogctx.NewCtx(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	slot := wallet.NewSlot(p)
	return New(ctx, Options{Seed: []string{"1", "4"}, Slot: slot, InstallURL: installURL}), slot
}

func keyRunes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
)

func press(a *App, msgs ...tea.KeyMsg) tea.Cmd {
	var last tea.Cmd
	for _, m := range msgs {
		_, last = a.Update(m)
	}
	return last
}

// deliver runs cmd and feeds the resulting messages back into the app.
func deliver(t *testing.T, a *App, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			deliver(t, a, c)
		}
	case spinner.TickMsg:
		// the spinner reschedules itself; one frame is enough here
	default:
		_, _ = a.Update(msg)
	}
}

func TestInitialCapabilities(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t, nil)
	caps := a.capabilities()
	require.Equal(t, []string{"1", "4"}, caps.Favorites)
	require.Equal(t, ConnectionStatus{}, caps.Connection)
	require.True(t, caps.IsFavorite("4"))
	require.Equal(t, "/", a.history.Current())
}

func TestToggleFavoriteFromListings(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t, nil)
	press(a, keyRunes("2"))
	require.Equal(t, "/listings", a.history.Current())

	press(a, keyRunes("f"))
	require.Equal(t, []string{"4"}, a.store.Favorites())
	press(a, keyRunes("f"))
	require.Equal(t, []string{"4", "1"}, a.store.Favorites())
}

func TestPropertyClickNavigates(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t, nil)
	before := a.store.Snapshot()
	press(a, keyEnter)

	require.Equal(t, "/property/1", a.history.Current())
	require.Equal(t, before, a.store.Snapshot())
	require.Equal(t, []string{"1", "4"}, a.store.Favorites())

	view := a.View()
	require.Contains(t, view, "Modern Downtown Penthouse")
	require.Contains(t, view, "♥ in favorites")

	press(a, keyRunes("f"))
	require.Contains(t, a.View(), "not in favorites")

	press(a, keyEsc)
	require.Equal(t, "/", a.history.Current())
}

func TestGoToListingUnknownID(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t, nil)
	a.capabilities().GoToListing("42")
	require.Equal(t, "/property/42", a.history.Current())
	require.Contains(t, a.View(), "Property not found")

	press(a, keyRunes("f"))
	require.Equal(t, []string{"1", "4"}, a.store.Favorites())
}

func TestFavoritesPageShowsSet(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t, nil)
	press(a, keyRunes("3"))
	view := a.View()
	require.Contains(t, view, "Modern Downtown Penthouse")
	require.Contains(t, view, "Historic Brownstone")
	require.NotContains(t, view, "Beachfront Condo")

	press(a, keyDown, keyRunes("f"))
	require.Equal(t, []string{"1"}, a.store.Favorites())
	require.Equal(t, 0, a.cursors["favorites"])
}

func TestTabCycles(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t, nil)
	press(a, keyTab)
	require.Equal(t, "/listings", a.history.Current())
	press(a, keyTab, keyTab)
	require.Equal(t, "/dashboard", a.history.Current())
	press(a, keyTab)
	require.Equal(t, "/", a.history.Current())
}

func TestWalletConnectFlow(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t, &wallet.Static{Result: []string{"0xABCDEF1234567890"}})
	press(a, keyRunes("w"))
	require.Equal(t, session.State{ModalOpen: true}, a.store.Snapshot())
	require.Contains(t, a.View(), "Connect with wallet")

	cmd := press(a, keyEnter)
	require.NotNil(t, cmd)
	require.Equal(t, wallet.Connecting, a.wallet.State())
	require.Contains(t, a.View(), "Waiting for your wallet")

	deliver(t, a, cmd)
	require.Equal(t, session.State{Connected: true, Address: "0xABCDEF1234567890"}, a.store.Snapshot())
	require.Equal(t, ConnectionStatus{Connected: true, ShortAddress: "0xABCD...7890"}, a.capabilities().Connection)
	require.Contains(t, a.View(), "0xABCD...7890")
}

func TestWalletModalWithoutProvider(t *testing.T) {
	t.Parallel()

	a, slot := newTestApp(t, nil)
	press(a, keyRunes("w"))
	view := a.View()
	require.Contains(t, view, "Wallet provider not detected")
	require.Contains(t, view, installURL)

	require.Nil(t, press(a, keyEnter))
	require.Equal(t, session.State{ModalOpen: true}, a.store.Snapshot())

	slot.Inject(&wallet.Static{Result: "0xABCDEF1234567890"})
	require.Contains(t, a.View(), "Connect with wallet")
	deliver(t, a, press(a, keyEnter))
	require.True(t, a.store.Snapshot().Connected)
}

func TestWalletRejectionKeepsModal(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t, &wallet.Static{Err: errors.New("user rejected")})
	press(a, keyRunes("w"))
	deliver(t, a, press(a, keyEnter))

	require.Equal(t, session.State{ModalOpen: true}, a.store.Snapshot())
	require.Equal(t, wallet.Failed, a.wallet.State())
	view := a.View()
	require.Contains(t, view, "Connection failed")
	require.Contains(t, view, "Connect with wallet")

	press(a, keyEsc)
	require.Equal(t, session.State{}, a.store.Snapshot())
}

func TestModalSwallowsPageKeys(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t, nil)
	press(a, keyRunes("w"), keyRunes("f"), keyRunes("2"))
	require.Equal(t, []string{"1", "4"}, a.store.Favorites())
	require.Equal(t, "/", a.history.Current())
}

func TestDashboardRequestsWallet(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t, nil)
	press(a, keyRunes("4"))
	require.Contains(t, a.View(), "Connect your wallet")

	press(a, keyEnter)
	require.True(t, a.store.Snapshot().ModalOpen)
}

func TestListingsSearch(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t, nil)
	press(a, keyRunes("2"), keyRunes("/"))
	require.True(t, a.searching)
	for _, r := range "miami" {
		press(a, keyRunes(string(r)))
	}
	press(a, keyEnter)
	require.False(t, a.searching)

	view := a.View()
	require.Contains(t, view, "Beachfront Condo")
	require.NotContains(t, view, "Historic Brownstone")

	press(a, keyEnter)
	require.Equal(t, "/property/3", a.history.Current())
}

func TestQuit(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t, nil)
	cmd := press(a, keyRunes("q"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModalOverlayKeepsCanvasSize(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t, nil)
	_, _ = a.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	press(a, keyRunes("w"))

	view := a.View()
	require.Len(t, strings.Split(view, "\n"), 30)
	require.Contains(t, view, "Wallet provider not detected")
}

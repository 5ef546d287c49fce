package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/propchain/internal/catalog"
	"github.com/jask/propchain/internal/nav"
)

// ---------------------------------------------------------------------------
// Navbar
// ---------------------------------------------------------------------------

type navbarProps struct {
	Active          nav.RouteName
	WalletConnected bool
	Address         string // short form; empty when absent
	Width           int
}

func renderNavbar(p navbarProps) string {
	tabs := []string{brandStyle.Render("PropChain")}
	for _, name := range tabOrder {
		label := routeTitle(name)
		if name == p.Active {
			tabs = append(tabs, tabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	left := strings.Join(tabs, " ")

	var right string
	if p.WalletConnected && p.Address != "" {
		right = walletChipStyle.Render("● " + p.Address)
	} else {
		right = walletButtonStyle.Render("w Connect Wallet")
	}

	gap := p.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return navbarStyle.Render(left + strings.Repeat(" ", gap) + right)
}

// ---------------------------------------------------------------------------
// Listing grids (home, listings, favorites)
// ---------------------------------------------------------------------------

type listingProps struct {
	Title    string
	Subtitle string
	Empty    string
	Listings []catalog.Property
	Cursor   int
	Width    int
	// IsFavorite reflects the favorites set the view was handed.
	IsFavorite func(id string) bool
}

func renderListings(p listingProps) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(p.Title))
	if p.Subtitle != "" {
		b.WriteString("  " + mutedStyle.Render(p.Subtitle))
	}
	b.WriteString("\n\n")

	if len(p.Listings) == 0 {
		b.WriteString(mutedStyle.Render(p.Empty))
		return b.String()
	}
	for i, l := range p.Listings {
		b.WriteString(renderListingRow(l, i == p.Cursor, p.IsFavorite(l.ID), p.Width))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderListingRow(l catalog.Property, selected, favored bool, width int) string {
	prefix := "  "
	if selected {
		prefix = cursorStyle.Render("> ")
	}
	heart := mutedStyle.Render("♡")
	if favored {
		heart = favoredStyle.Render("♥")
	}
	badge := ""
	if l.IsNFT {
		badge = " " + nftStyle.Render("[NFT]")
	}
	meta := mutedStyle.Render(fmt.Sprintf("%s · %dbd %dba · %s sqft", l.Location, l.Bedrooms, l.Bathrooms, groupInt(l.Sqft)))
	line := fmt.Sprintf("%s%s %-28s %12s%s  %s", prefix, heart, truncate(l.Title, 28), priceStyle.Render(l.PriceLabel()), badge, meta)
	if width > 0 {
		line = truncate(line, width)
	}
	return line
}

func groupInt(n int) string { return catalog.FormatThousands(int64(n)) }

// ---------------------------------------------------------------------------
// Property detail
// ---------------------------------------------------------------------------

type detailProps struct {
	ID       string
	Property catalog.Property
	Found    bool
	Favored  bool
}

func renderDetail(p detailProps) string {
	if !p.Found {
		return titleStyle.Render("Property not found") + "\n\n" +
			mutedStyle.Render(fmt.Sprintf("No listing with id %q. Press esc to go back.", p.ID))
	}
	l := p.Property
	heart := mutedStyle.Render("♡ not in favorites")
	if p.Favored {
		heart = favoredStyle.Render("♥ in favorites")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(l.Title) + "  " + heart + "\n")
	b.WriteString(mutedStyle.Render(l.Location) + "\n\n")
	b.WriteString(priceStyle.Render(l.PriceLabel()) + "  " + mutedStyle.Render(strings.ReplaceAll(string(l.Status), "-", " ")) + "\n\n")
	fmt.Fprintf(&b, "%d bedrooms · %d bathrooms · %s sqft · %s\n", l.Bedrooms, l.Bathrooms, groupInt(l.Sqft), l.Type)
	fmt.Fprintf(&b, "Built %d · %d parking\n\n", l.YearBuilt, l.Parking)
	b.WriteString(l.Description + "\n")
	if len(l.Features) > 0 {
		b.WriteString("\n" + mutedStyle.Render("Features: ") + strings.Join(l.Features, ", ") + "\n")
	}
	if l.IsNFT {
		b.WriteString("\n" + nftStyle.Render("Tokenized listing") + mutedStyle.Render(" owner "+l.Owner) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// ---------------------------------------------------------------------------
// Dashboard
// ---------------------------------------------------------------------------

type dashboardProps struct {
	WalletConnected bool
	Holdings        []catalog.Property
	Width           int
}

func renderDashboard(p dashboardProps) string {
	if !p.WalletConnected {
		return titleStyle.Render("Dashboard") + "\n\n" +
			"Connect your wallet to see your portfolio and offers.\n\n" +
			walletButtonStyle.Render("enter Connect Wallet")
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Dashboard") + "  " + successStyle.Render("wallet connected") + "\n\n")
	b.WriteString(mutedStyle.Render("Tokenized listings on the market") + "\n")
	for _, l := range p.Holdings {
		b.WriteString(renderListingRow(l, false, false, p.Width) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

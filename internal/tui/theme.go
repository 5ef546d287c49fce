package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorSapphire lipgloss.Color = "#74c7ec"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPink     lipgloss.Color = "#f5c2e7"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	colorBrand   = colorBlue
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorTeal
	colorFavored = colorPink
)

// AllPaletteColors returns the palette colors in use, for testing.
func AllPaletteColors() []lipgloss.Color {
	return []lipgloss.Color{
		colorPeach, colorYellow, colorGreen, colorTeal, colorSapphire,
		colorBlue, colorLavender, colorRed, colorPink,
		colorText, colorSubtext0, colorOverlay1,
		colorSurface1, colorSurface0, colorBase, colorMantle,
	}
}

var (
	brandStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorBrand)
	navbarStyle    = lipgloss.NewStyle().Background(colorMantle).Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Foreground(colorSubtext0).Padding(0, 1)
	tabActiveStyle = lipgloss.NewStyle().Foreground(colorBase).Background(colorFocus).Bold(true).Padding(0, 1)
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	mutedStyle     = lipgloss.NewStyle().Foreground(colorOverlay1)
	cursorStyle    = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	favoredStyle   = lipgloss.NewStyle().Foreground(colorFavored)
	priceStyle     = lipgloss.NewStyle().Foreground(colorPeach).Bold(true)
	nftStyle       = lipgloss.NewStyle().Foreground(colorSapphire)
	footerStyle    = lipgloss.NewStyle().Foreground(colorSubtext0).Background(colorSurface0).Padding(0, 1)
	statusStyle    = lipgloss.NewStyle().Foreground(colorInfo)

	walletButtonStyle = lipgloss.NewStyle().Foreground(colorBase).Background(colorBrand).Bold(true).Padding(0, 2)
	walletChipStyle   = lipgloss.NewStyle().Foreground(colorSuccess).Background(colorSurface1).Padding(0, 1)

	modalStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorFocus).Padding(1, 2).Width(52)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
)

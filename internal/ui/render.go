package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cumplesito/internal/ads"
	"github.com/five82/cumplesito/internal/i18n"
	"github.com/five82/cumplesito/internal/wishlist"
)

// renderBox draws a rounded panel with a title on its first line. width and
// height are the outer size including the border.
func (m Model) renderBox(title, content string, width, height int, focused bool) string {
	styles := m.theme.Styles()
	border := m.theme.BorderMuted
	if focused {
		border = m.theme.BorderFocus
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1)
	if width > 2 {
		style = style.Width(width - 2)
	}
	if height > 2 {
		style = style.Height(height - 2).MaxHeight(height)
	}
	body := content
	if title != "" {
		body = styles.AccentText.Bold(true).Render(title) + "\n" + content
	}
	return style.Render(body)
}

// renderModalFrame centers content in a bordered dialog over the screen.
func renderModalFrame(theme Theme, content string, modalWidth, width, height int) string {
	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2).
		Width(modalWidth)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(content),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}

// modalTitle renders a dialog heading followed by a rule.
func modalTitle(styles Styles, title string, width int) string {
	return styles.Text.Bold(true).Render(title) + "\n" +
		styles.FaintText.Render(strings.Repeat("─", width)) + "\n\n"
}

// stateKey maps an item state to its label.
func stateKey(s wishlist.State) i18n.Key {
	switch s {
	case wishlist.StateReserved:
		return i18n.StateReserved
	case wishlist.StatePurchased:
		return i18n.StatePurchased
	case wishlist.StateOpen:
		return i18n.StateOpen
	case wishlist.StateFunded:
		return i18n.StateFunded
	default:
		return i18n.StateAvailable
	}
}

// stateBadge renders the colored state chip for an item.
func (m Model) stateBadge(item wishlist.Item) string {
	state := item.State()
	return m.theme.Styles().StateStyle(state.String()).Render(m.tr.T(stateKey(state)))
}

// progressBar renders a pooled gift's funding as a bar of the given width.
func (m Model) progressBar(pct float64, width int) string {
	if width <= 0 {
		return ""
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct / 100 * float64(width))
	styles := m.theme.Styles()
	return styles.SuccessText.Render(strings.Repeat("█", filled)) +
		styles.FaintText.Render(strings.Repeat("░", width-filled))
}

// renderAd draws the banner for slot. Disabled ads show a labelled
// placeholder of the reserved size.
func (m Model) renderAd(slot ads.Slot, width int) string {
	if width < 20 {
		return ""
	}
	styles := m.theme.Styles()
	banner := m.ads.Banner(slot, width)

	body := m.tr.T(i18n.AdPlaceholder) + " · " + banner.Detail
	if banner.Live {
		body = banner.Detail
	}
	inner := styles.FaintText.Render(m.tr.T(i18n.AdLabel)) + "\n" + styles.MutedText.Render(body)

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderMuted)).
		Width(width - 2).
		Align(lipgloss.Center).
		Render(inner)
}

// keyHint renders "[k] label" pairs for the command bar.
func (m Model) keyHint(pairs ...string) string {
	styles := m.theme.Styles()
	parts := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, styles.Key.Render(pairs[i])+" "+styles.MutedText.Render(pairs[i+1]))
	}
	return strings.Join(parts, "  ")
}

package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cumplesito/internal/ads"
	"github.com/five82/cumplesito/internal/i18n"
)

// homeState holds the landing view's link prompt.
type homeState struct {
	input   textinput.Model
	editing bool
}

func newHomeState() homeState {
	return homeState{input: newInput(300)}
}

func (h *homeState) startEditing() {
	h.editing = true
	h.input.SetValue("")
	h.input.Focus()
}

func (h *homeState) stopEditing() {
	h.editing = false
	h.input.Blur()
}

// handleHomeInput edits the link prompt. Enter opens the wishlist it names.
func (m Model) handleHomeInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.home.stopEditing()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		raw := m.home.input.Value()
		id, owner, err := ParseLink(raw)
		if err != nil {
			m.setNotice(noticeError, m.tr.T(i18n.InvalidLink))
			return m, nil
		}
		m.home.stopEditing()
		m.notice = notice{}
		cmd := m.beginWishlist(id, owner, ViewHome)
		return m.titled(cmd)
	}

	var cmd tea.Cmd
	m.home.input, cmd = m.home.input.Update(msg)
	return m, cmd
}

// renderHome renders the landing view.
func (m Model) renderHome(height int) string {
	styles := m.theme.Styles()

	sidebar := m.width >= LayoutSidebarWidth
	mainWidth := m.width
	if sidebar {
		mainWidth = m.width - 34
	}
	textWidth := mainWidth - 4
	if textWidth > 76 {
		textWidth = 76
	}
	if textWidth < 10 {
		textWidth = 10
	}
	wrap := lipgloss.NewStyle().Width(textWidth)

	var b strings.Builder
	if ad := m.renderAd(ads.HomeTop, mainWidth-2); ad != "" {
		b.WriteString(ad)
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderLogo(mainWidth - 2))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Bold(true).Render(m.tr.T(i18n.HomeTitle)))
	b.WriteString("\n")
	b.WriteString(wrap.Inherit(styles.MutedText).Render(m.tr.T(i18n.HomeSubtitle)))
	b.WriteString("\n\n")

	b.WriteString(styles.AccentText.Bold(true).Render(m.tr.T(i18n.OpenLinkPrompt)))
	b.WriteString("\n")
	if m.home.editing {
		input := m.home.input
		input.Placeholder = m.tr.T(i18n.OpenLinkPlaceholder)
		b.WriteString(input.View())
	} else {
		b.WriteString(m.keyHint(
			m.keys.OpenLink.Help().Key, m.tr.T(i18n.OpenLinkPlaceholder),
			m.keys.NewWishlist.Help().Key, m.tr.T(i18n.CreateWishlistButton),
		))
	}
	b.WriteString("\n\n")

	features := []struct{ title, desc i18n.Key }{
		{i18n.EasyToCreateTitle, i18n.EasyToCreateDesc},
		{i18n.ShareWithFriendsTitle, i18n.ShareWithFriendsDesc},
		{i18n.TrackPurchasesTitle, i18n.TrackPurchasesDesc},
	}
	for _, f := range features {
		b.WriteString(styles.SuccessText.Render("• " + m.tr.T(f.title)))
		b.WriteString("\n  ")
		b.WriteString(wrap.Inherit(styles.MutedText).Render(m.tr.T(f.desc)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(m.tr.T(i18n.FooterText)))

	main := lipgloss.NewStyle().
		Width(mainWidth).
		Height(height).
		MaxHeight(height).
		Padding(0, 1).
		Render(b.String())

	if !sidebar {
		return main
	}
	side := lipgloss.NewStyle().
		Width(34).
		Height(height).
		MaxHeight(height).
		Render(m.renderAd(ads.HomeSidebar, 32))
	return lipgloss.JoinHorizontal(lipgloss.Top, main, side)
}

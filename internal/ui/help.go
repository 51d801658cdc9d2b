package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cumplesito/internal/i18n"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	k := m.keys

	sections := []helpSection{
		{title: m.tr.T(i18n.SectionGeneral), bindings: []key.Binding{k.ViewHome, k.OpenLink, k.ViewLists, k.NewWishlist, k.ViewLogs, k.Escape}},
		{title: m.tr.T(i18n.SectionMovement), bindings: []key.Binding{k.Up, k.Down, k.Top, k.Bottom, k.HalfPageUp, k.HalfPageDown}},
		{title: m.tr.T(i18n.SectionWishlist), bindings: []key.Binding{k.Reserve, k.Purchase, k.Contribute, k.CopyLink, k.Refresh}},
		{title: m.tr.T(i18n.SectionOwner), bindings: []key.Binding{k.AddItem, k.EditItem, k.Delete}},
		{title: m.tr.T(i18n.SectionForms), bindings: []key.Binding{k.Tab, k.ShiftTab, k.Confirm, k.Submit, k.Toggle, k.Autofill, k.QuickAmount}},
		{title: m.tr.T(i18n.SectionLogs), bindings: []key.Binding{k.Search, k.ToggleFollow, k.CycleLevel}},
		{title: m.tr.T(i18n.SectionAccount), bindings: []key.Binding{k.Login, k.Logout, k.CycleTheme, k.CycleLanguage, k.Help, k.Quit}},
	}

	var b strings.Builder

	b.WriteString(modalTitle(styles, m.tr.T(i18n.HelpTitle), 40))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Width(12)

	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(truncate(section.title, 40)))
		b.WriteString("\n")

		for _, binding := range section.bindings {
			help := binding.Help()
			b.WriteString(keyStyle.Render(help.Key))
			b.WriteString(styles.Text.Render(help.Desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	return renderModalFrame(m.theme, b.String(), 48, m.width, m.height)
}

type helpSection struct {
	title    string
	bindings []key.Binding
}

package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/five82/cumplesito/internal/i18n"
)

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit           key.Binding
	Help           key.Binding
	CycleTheme     key.Binding
	CycleLanguage  key.Binding
	Escape         key.Binding
	ViewHome       key.Binding
	ViewLists      key.Binding
	NewWishlist    key.Binding
	OpenLink       key.Binding
	Login          key.Binding
	Logout         key.Binding
	ViewLogs       key.Binding
	Refresh        key.Binding
	SwitchRegister key.Binding
	SwitchLogin    key.Binding

	// Navigation
	Up           key.Binding
	Down         key.Binding
	Top          key.Binding
	Bottom       key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding

	// Wishlist actions
	Reserve    key.Binding
	Purchase   key.Binding
	Contribute key.Binding
	CopyLink   key.Binding
	AddItem    key.Binding
	EditItem   key.Binding
	Delete     key.Binding

	// Forms
	Tab         key.Binding
	ShiftTab    key.Binding
	Confirm     key.Binding
	Submit      key.Binding
	Toggle      key.Binding
	Autofill    key.Binding
	QuickAmount key.Binding

	// Logs
	Search       key.Binding
	ToggleFollow key.Binding
	CycleLevel   key.Binding
}

// DefaultKeyMap returns the default key bindings with help text in the
// translator's current language. Rebuild it after switching languages.
func DefaultKeyMap(tr *i18n.Translator) keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", tr.T(i18n.Quit)),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", tr.T(i18n.HelpToggle)),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", tr.T(i18n.HelpCycleTheme)),
		),
		CycleLanguage: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", tr.T(i18n.HelpLanguage)),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", tr.T(i18n.Back)),
		),
		ViewHome: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", tr.T(i18n.HelpHome)),
		),
		ViewLists: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", tr.T(i18n.MyWishlists)),
		),
		NewWishlist: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", tr.T(i18n.HelpNewWishlist)),
		),
		OpenLink: key.NewBinding(
			key.WithKeys("o", "/"),
			key.WithHelp("o", tr.T(i18n.HelpOpenLink)),
		),
		Login: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", tr.T(i18n.Login)),
		),
		Logout: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", tr.T(i18n.Logout)),
		),
		ViewLogs: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", tr.T(i18n.HelpClientLog)),
		),
		Refresh: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", tr.T(i18n.Refresh)),
		),
		SwitchRegister: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", tr.T(i18n.Register)),
		),
		SwitchLogin: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", tr.T(i18n.Login)),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", tr.T(i18n.HelpMoveUp)),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", tr.T(i18n.HelpMoveDown)),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", tr.T(i18n.HelpTop)),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", tr.T(i18n.HelpBottom)),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", tr.T(i18n.HelpHalfPageUp)),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", tr.T(i18n.HelpHalfPageDown)),
		),

		Reserve: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", tr.T(i18n.HelpReserve)),
		),
		Purchase: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", tr.T(i18n.HelpPurchase)),
		),
		Contribute: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", tr.T(i18n.HelpContribute)),
		),
		CopyLink: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", tr.T(i18n.HelpCopyLink)),
		),
		AddItem: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", tr.T(i18n.HelpAddItem)),
		),
		EditItem: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", tr.T(i18n.Edit)),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", tr.T(i18n.Delete)),
		),

		Tab: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", tr.T(i18n.HelpNextField)),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", tr.T(i18n.HelpPrevField)),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", tr.T(i18n.Confirm)),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", tr.T(i18n.Save)),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", tr.T(i18n.HelpToggleField)),
		),
		Autofill: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", tr.T(i18n.HelpAutofill)),
		),
		QuickAmount: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", tr.T(i18n.HelpQuickAmount)),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", tr.T(i18n.HelpSearchLog)),
		),
		ToggleFollow: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", tr.T(i18n.HelpFollow)),
		),
		CycleLevel: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", tr.T(i18n.HelpLevel)),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ViewHome, k.OpenLink, k.ViewLists, k.NewWishlist, k.ViewLogs, k.Escape},
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Reserve, k.Purchase, k.Contribute, k.CopyLink, k.Refresh},
		{k.AddItem, k.EditItem, k.Delete},
		{k.Tab, k.Confirm, k.Submit, k.Toggle, k.Autofill, k.QuickAmount},
		{k.Login, k.Logout, k.CycleTheme, k.CycleLanguage, k.Help, k.Quit},
	}
}

package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cumplesito/internal/i18n"
)

type noticeKind int

const (
	noticeInfo noticeKind = iota
	noticeSuccess
	noticeWarning
	noticeError
)

// notice is the transient line under the content.
type notice struct {
	text string
	kind noticeKind
	at   time.Time
}

func (m *Model) setNotice(kind noticeKind, text string) {
	m.notice = notice{text: text, kind: kind, at: time.Now()}
}

// viewTitle names the active view in the header.
func (m Model) viewTitle() string {
	switch m.currentView {
	case ViewLogin:
		return m.tr.T(i18n.Login)
	case ViewRegister:
		return m.tr.T(i18n.Register)
	case ViewLists:
		return m.tr.T(i18n.MyWishlists)
	case ViewCreate:
		return m.tr.T(i18n.CreateWishlistTitle)
	case ViewWishlist:
		if m.snapshot.HasWishlist {
			return m.snapshot.Wishlist.Title
		}
		return m.tr.T(i18n.Loading)
	case ViewLogs:
		return m.tr.T(i18n.LogsTitle)
	default:
		return m.tr.T(i18n.Home)
	}
}

// renderHeader renders the top bar: logo, view, connection and session.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	surface := lipgloss.Color(m.theme.Surface)
	on := func(s lipgloss.Style) lipgloss.Style { return s.Background(surface) }
	sep := on(lipgloss.NewStyle()).Render("  ")

	left := []string{
		on(styles.Logo).Render("cumplesito"),
		on(styles.Text).Render(truncate(m.viewTitle(), 40)),
	}

	if m.currentView == ViewWishlist {
		switch {
		case m.snapshot.IsOffline():
			left = append(left, on(styles.DangerText).Render("● "+m.tr.T(i18n.Offline)))
		case !m.snapshot.LastUpdated.IsZero():
			stamp := m.snapshot.LastUpdated.Format("15:04:05")
			left = append(left, on(styles.MutedText).Render(m.tr.Tf(i18n.Updated, stamp)))
		}
	}

	var right []string
	if user, ok := m.session.User(); ok && m.width >= LayoutSplitWidth {
		right = append(right, on(styles.MutedText).Render(m.tr.Tf(i18n.SignedInAs, user.Name)))
	}
	right = append(right,
		on(styles.AccentText).Render(m.tr.Lang().Name()),
		on(styles.FaintText).Render(m.theme.Name),
	)

	leftText := strings.Join(left, sep)
	rightText := strings.Join(right, sep)
	gap := m.width - 2 - lipgloss.Width(leftText) - lipgloss.Width(rightText)
	if gap < 1 {
		gap = 1
	}

	return styles.Header.Width(m.width).Render(
		leftText + on(lipgloss.NewStyle()).Render(strings.Repeat(" ", gap)) + rightText,
	)
}

// renderCommandBar lists the keys that do something in the active view.
func (m Model) renderCommandBar() string {
	k := m.keys
	var hints []string
	switch m.currentView {
	case ViewHome:
		if m.home.editing {
			hints = []string{"enter", m.tr.T(i18n.Confirm), "esc", m.tr.T(i18n.Cancel)}
		} else {
			hints = []string{k.OpenLink.Help().Key, m.tr.T(i18n.OpenLinkPrompt), k.NewWishlist.Help().Key, m.tr.T(i18n.CreateWishlistButton), k.ViewLists.Help().Key, m.tr.T(i18n.MyWishlists)}
		}
	case ViewLogin, ViewRegister, ViewCreate:
		hints = []string{"tab", "↓", "ctrl+s", m.tr.T(i18n.Save), "esc", m.tr.T(i18n.Back)}
	case ViewLists:
		hints = []string{"enter", m.tr.T(i18n.ViewWishlist), k.Delete.Help().Key, m.tr.T(i18n.Delete), k.NewWishlist.Help().Key, m.tr.T(i18n.Create), k.Refresh.Help().Key, m.tr.T(i18n.Refresh)}
	case ViewWishlist:
		hints = []string{
			k.Reserve.Help().Key, m.tr.T(i18n.ReserveItem),
			k.Purchase.Help().Key, m.tr.T(i18n.MarkAsPurchased),
			k.Contribute.Help().Key, m.tr.T(i18n.ContributeButton),
			k.CopyLink.Help().Key, m.tr.T(i18n.CopyLink),
		}
		if m.isOwner() {
			hints = append(hints, k.AddItem.Help().Key, m.tr.T(i18n.AddItem), k.EditItem.Help().Key, m.tr.T(i18n.Edit), k.Delete.Help().Key, m.tr.T(i18n.Delete))
		}
	case ViewLogs:
		hints = []string{k.Search.Help().Key, m.tr.T(i18n.LogSearch), k.ToggleFollow.Help().Key, m.tr.T(i18n.LogFollow), k.CycleLevel.Help().Key, m.tr.T(i18n.LogLevel)}
	}
	if m.session.Authenticated() {
		hints = append(hints, k.Logout.Help().Key, m.tr.T(i18n.Logout))
	} else if m.currentView != ViewLogin && m.currentView != ViewRegister {
		hints = append(hints, k.Login.Help().Key, m.tr.T(i18n.Login))
	}
	hints = append(hints, k.Help.Help().Key, m.tr.T(i18n.HelpTitle))

	return lipgloss.NewStyle().
		Width(m.width).
		MaxHeight(1).
		Padding(0, 1).
		Render(m.keyHint(hints...))
}

// renderStatusLine shows the current notice, or the pending marker while an
// intent is in flight.
func (m Model) renderStatusLine() string {
	styles := m.theme.Styles()
	text := ""
	switch {
	case m.notice.text != "":
		style := styles.InfoText
		switch m.notice.kind {
		case noticeSuccess:
			style = styles.SuccessText
		case noticeWarning:
			style = styles.WarningText
		case noticeError:
			style = styles.DangerText
		}
		text = style.Render(m.notice.text)
	case m.pending:
		text = styles.InfoText.Render("…")
	}
	return styles.Footer.Width(m.width).MaxHeight(1).Render(text)
}

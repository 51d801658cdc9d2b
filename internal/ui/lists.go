package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cumplesito/internal/ads"
	"github.com/five82/cumplesito/internal/i18n"
	"github.com/five82/cumplesito/internal/session"
	"github.com/five82/cumplesito/internal/wishlist"
)

// listsState is the signed-in user's wishlist listing.
type listsState struct {
	items    []wishlist.Wishlist
	selected int
	loading  bool
	err      string
}

type listsLoadedMsg struct {
	lists []wishlist.Wishlist
	err   error
}

type confirmDeleteWishlistMsg struct {
	id string
}

type wishlistDeletedMsg struct {
	id  string
	err error
}

// showLists switches to the listing and loads it. Signed-out users are sent
// to log in first.
func (m *Model) showLists() tea.Cmd {
	if !m.session.Authenticated() {
		m.setNotice(noticeInfo, m.tr.T(i18n.LoginRequired))
		m.showAuth(ViewLogin, ViewLists)
		return nil
	}
	m.leaveWishlist()
	m.currentView = ViewLists
	m.lists.loading = true
	m.lists.err = ""
	return m.loadListsCmd()
}

func (m Model) loadListsCmd() tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		if svc == nil {
			return listsLoadedMsg{err: session.ErrNotSignedIn}
		}
		lists, err := svc.Mine(ctx)
		return listsLoadedMsg{lists: lists, err: err}
	}
}

func (m *Model) handleListsLoaded(msg listsLoadedMsg) {
	m.lists.loading = false
	if msg.err != nil {
		m.lists.err = describeError(m.tr, msg.err, i18n.ErrorLoadingLists)
		return
	}
	m.lists.err = ""
	m.lists.items = msg.lists
	if m.lists.selected >= len(msg.lists) {
		m.lists.selected = len(msg.lists) - 1
	}
	if m.lists.selected < 0 {
		m.lists.selected = 0
	}
}

// handleListsKey handles keys in the listing.
func (m Model) handleListsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.lists.items)
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.lists.selected > 0 {
			m.lists.selected--
		}
	case key.Matches(msg, m.keys.Down):
		if m.lists.selected < n-1 {
			m.lists.selected++
		}
	case key.Matches(msg, m.keys.Top):
		m.lists.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		if n > 0 {
			m.lists.selected = n - 1
		}
	case key.Matches(msg, m.keys.Refresh):
		m.lists.loading = true
		return m, m.loadListsCmd()
	case key.Matches(msg, m.keys.Confirm):
		if n == 0 {
			return m, nil
		}
		id := m.lists.items[m.lists.selected].ID
		cmd := m.beginWishlist(id, true, ViewLists)
		return m.titled(cmd)
	case key.Matches(msg, m.keys.Delete):
		if n == 0 {
			return m, nil
		}
		w := m.lists.items[m.lists.selected]
		m.modal = newConfirmModal(m.tr, m.tr.T(i18n.DeleteWishlist), w.Title+"\n\n"+m.tr.T(i18n.DeleteConfirm), confirmDeleteWishlistMsg{id: w.ID})
	}
	return m, nil
}

func (m Model) deleteWishlistCmd(id string) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		return wishlistDeletedMsg{id: id, err: svc.DeleteWishlist(ctx, id)}
	}
}

func (m Model) handleWishlistDeleted(msg wishlistDeletedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setNotice(noticeError, describeError(m.tr, msg.err, i18n.ErrorDeletingWishlist))
		return m, nil
	}
	m.setNotice(noticeSuccess, m.tr.T(i18n.WishlistDeleted))
	kept := m.lists.items[:0:0]
	for _, w := range m.lists.items {
		if w.ID != msg.id {
			kept = append(kept, w)
		}
	}
	m.lists.items = kept
	if m.lists.selected >= len(kept) && len(kept) > 0 {
		m.lists.selected = len(kept) - 1
	}
	if m.currentView == ViewLists {
		return m, m.loadListsCmd()
	}
	return m, nil
}

// renderLists renders the user's wishlists.
func (m Model) renderLists(height int) string {
	styles := m.theme.Styles()
	width := m.width

	var b strings.Builder
	if ad := m.renderAd(ads.MyListsTop, width-2); ad != "" {
		b.WriteString(ad)
		b.WriteString("\n")
	}
	b.WriteString(styles.Text.Bold(true).Render(m.tr.T(i18n.MyWishlistsTitle)))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(m.tr.T(i18n.MyWishlistsSubtitle)))
	b.WriteString("\n\n")

	switch {
	case m.lists.err != "":
		b.WriteString(styles.DangerText.Render(m.lists.err))
	case m.lists.loading && len(m.lists.items) == 0:
		b.WriteString(styles.InfoText.Render(m.tr.T(i18n.Loading)))
	case len(m.lists.items) == 0:
		b.WriteString(styles.Text.Render(m.tr.T(i18n.NoWishlistsYet)))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render(m.tr.T(i18n.CreateFirstWishlist)))
	default:
		titleWidth := width - 40
		if titleWidth < 12 {
			titleWidth = 12
		}
		for i, w := range m.lists.items {
			date := ""
			if !w.EventDate.IsZero() {
				date = w.EventDate.Format(wishlist.EventDateLayout)
			}
			row := fmt.Sprintf(" %s  %-10s  %d %s ",
				padRight(truncate(w.Title, titleWidth), titleWidth),
				date,
				len(w.Items),
				m.tr.T(i18n.Items),
			)
			if i == m.lists.selected {
				b.WriteString(styles.Selected.Render(row))
			} else {
				b.WriteString(styles.Text.Render(row))
			}
			b.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		MaxHeight(height).
		Padding(0, 1).
		Render(b.String())
}

package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cumplesito/internal/i18n"
	"github.com/five82/cumplesito/internal/wishlist"
)

type wishlistCreatedMsg struct {
	wishlist *wishlist.Wishlist
	err      error
}

func newCreateForm(ownerName string) form {
	f := newForm(
		textField("title", i18n.WishlistTitle, i18n.WishlistTitlePlaceholder),
		textField("ownerName", i18n.YourName, i18n.YourNamePlaceholder),
		textField("eventDate", i18n.BirthdayDate, ""),
		textField("description", i18n.Description, i18n.DescriptionPlaceholder),
		toggleField("allowAnonymousPurchase", i18n.AllowAnonymousPurchase, i18n.AllowAnonymousPurchaseHelp),
	)
	f.setValue("ownerName", ownerName)
	return f
}

// showCreate opens the create form, sending signed-out users to log in.
func (m *Model) showCreate() {
	user, ok := m.session.User()
	if !ok || !m.session.Authenticated() {
		m.setNotice(noticeInfo, m.tr.T(i18n.LoginRequired))
		m.showAuth(ViewLogin, ViewCreate)
		return
	}
	m.leaveWishlist()
	m.create = newCreateForm(user.Name)
	m.currentView = ViewCreate
}

// createInput reads the form into a NewWishlist.
func (f form) createInput() wishlist.NewWishlist {
	return wishlist.NewWishlist{
		Title:                  f.value("title"),
		OwnerName:              f.value("ownerName"),
		EventDate:              f.value("eventDate"),
		Description:            f.value("description"),
		AllowAnonymousPurchase: f.checked("allowAnonymousPurchase"),
	}
}

// handleCreateKey edits the create form and submits it once it validates.
func (m Model) handleCreateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Escape) {
		m.goHome()
		return m.titled()
	}
	if m.create.busy {
		return m, nil
	}

	submit, cmd := m.create.handleKey(msg, m.keys)
	if !submit {
		return m, cmd
	}

	in := m.create.createInput()
	if err := in.Validate(); err != nil {
		m.create.setError(err, describeError(m.tr, err, i18n.ErrorCreatingWishlist))
		return m, nil
	}
	m.create.clearErrors()
	m.create.busy = true

	ctx, svc := m.ctx, m.svc
	return m, func() tea.Msg {
		w, err := svc.CreateWishlist(ctx, in)
		return wishlistCreatedMsg{wishlist: w, err: err}
	}
}

// handleWishlistCreated opens the new list as its owner.
func (m Model) handleWishlistCreated(msg wishlistCreatedMsg) (tea.Model, tea.Cmd) {
	if m.currentView != ViewCreate {
		return m, nil
	}
	if msg.err != nil {
		m.create.setError(msg.err, describeError(m.tr, msg.err, i18n.ErrorCreatingWishlist))
		return m, nil
	}
	m.create = newCreateForm("")
	cmd := m.beginWishlist(msg.wishlist.ID, true, ViewLists)
	return m.titled(cmd)
}

// renderCreate renders the create-wishlist form.
func (m Model) renderCreate(height int) string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(m.tr.T(i18n.CreateWishlistTitle)))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(m.tr.T(i18n.CreateWishlistSubtitle)))
	b.WriteString("\n\n")
	b.WriteString(m.create.view(m.tr, styles))
	b.WriteString("\n")
	if m.create.busy {
		b.WriteString(styles.InfoText.Render(m.tr.T(i18n.Creating)))
	} else {
		b.WriteString(m.keyHint("ctrl+s", m.tr.T(i18n.CreateWishlistSubmit), "space", m.tr.T(i18n.AllowAnonymousPurchase)))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render(m.tr.T(i18n.CreateWishlistNote)))

	return lipgloss.NewStyle().
		Width(m.width).
		Height(height).
		MaxHeight(height).
		Padding(0, 2).
		Render(b.String())
}

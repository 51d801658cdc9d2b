package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cumplesito/internal/i18n"
	"github.com/five82/cumplesito/internal/wishlist"
)

// authDoneMsg is the answer to a login or registration.
type authDoneMsg struct {
	view View
	user wishlist.User
	err  error
}

func newLoginForm() form {
	return newForm(
		textField("email", i18n.Email, ""),
		secretField("password", i18n.Password),
	)
}

func newRegisterForm() form {
	return newForm(
		textField("name", i18n.Name, i18n.YourNamePlaceholder),
		textField("email", i18n.Email, ""),
		secretField("password", i18n.Password),
	)
}

// showAuth switches to the login or register view. after is the view to
// return to once signed in.
func (m *Model) showAuth(view View, after View) {
	if after != ViewLogin && after != ViewRegister {
		m.authReturn = after
	}
	if view == ViewRegister {
		m.register = newRegisterForm()
		if email := m.login.value("email"); email != "" {
			m.register.setValue("email", email)
		}
	} else {
		view = ViewLogin
		m.login = newLoginForm()
	}
	m.currentView = view
}

// activeAuthForm returns the form for the current auth view.
func (m *Model) activeAuthForm() *form {
	if m.currentView == ViewRegister {
		return &m.register
	}
	return &m.login
}

// handleAuthKey edits the login or register form.
func (m Model) handleAuthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.returnFromAuth()
		return m.titled()
	case key.Matches(msg, m.keys.SwitchRegister) && m.currentView == ViewLogin:
		m.showAuth(ViewRegister, m.authReturn)
		return m, nil
	case key.Matches(msg, m.keys.SwitchLogin) && m.currentView == ViewRegister:
		m.showAuth(ViewLogin, m.authReturn)
		return m, nil
	}

	f := m.activeAuthForm()
	if f.busy {
		return m, nil
	}
	submit, cmd := f.handleKey(msg, m.keys)
	if !submit {
		return m, cmd
	}
	f.clearErrors()
	f.busy = true
	return m, m.authCmd(m.currentView, *f)
}

// authCmd signs in or registers with the values in f.
func (m Model) authCmd(view View, f form) tea.Cmd {
	ctx, sess, client := m.ctx, m.session, m.client
	if view == ViewRegister {
		reg := wishlist.Registration{
			Name:     f.value("name"),
			Email:    f.value("email"),
			Password: f.raw("password"),
		}
		return func() tea.Msg {
			user, err := sess.Register(ctx, client, reg)
			return authDoneMsg{view: view, user: user, err: err}
		}
	}
	creds := wishlist.Credentials{
		Email:    f.value("email"),
		Password: f.raw("password"),
	}
	return func() tea.Msg {
		user, err := sess.Login(ctx, client, creds)
		return authDoneMsg{view: view, user: user, err: err}
	}
}

// handleAuthDone routes a finished sign-in back to where the user was going.
func (m Model) handleAuthDone(msg authDoneMsg) (tea.Model, tea.Cmd) {
	if msg.view != m.currentView {
		return m, nil
	}
	f := m.activeAuthForm()
	if msg.err != nil {
		fallback := i18n.ErrorLogin
		if msg.view == ViewRegister {
			fallback = i18n.ErrorRegister
		}
		f.setError(msg.err, describeError(m.tr, msg.err, fallback))
		return m, nil
	}
	f.busy = false
	m.setNotice(noticeSuccess, m.tr.Tf(i18n.SignedInAs, msg.user.Name))

	switch m.authReturn {
	case ViewCreate:
		m.showCreate()
		return m.titled()
	case ViewLists:
		cmd := m.showLists()
		return m.titled(cmd)
	}
	m.returnFromAuth()
	if m.currentView == ViewWishlist {
		m.updateDetailViewport()
		return m.titled(m.refreshCmd(m.gen))
	}
	return m.titled()
}

// returnFromAuth leaves the auth views for the view that sent the user
// there. An open wishlist is still open.
func (m *Model) returnFromAuth() {
	switch {
	case m.authReturn == ViewWishlist && m.gen != 0:
		m.currentView = ViewWishlist
	case m.authReturn == ViewLogs:
		m.currentView = ViewLogs
	default:
		m.goHome()
	}
}

// logout ends the session. Owner views of lists the user owns lose their
// owner actions; lists opened by link stay open.
func (m Model) logout() (tea.Model, tea.Cmd) {
	if !m.session.Authenticated() {
		return m, nil
	}
	if err := m.session.Logout(); err != nil {
		m.log.WithError(err).Warn("logout failed")
	}
	m.setNotice(noticeInfo, m.tr.T(i18n.LoggedOut))
	m.lists = listsState{}
	switch m.currentView {
	case ViewLists, ViewCreate:
		m.goHome()
	case ViewWishlist:
		m.updateDetailViewport()
	}
	return m.titled()
}

// renderAuth renders the login or register form.
func (m Model) renderAuth(height int) string {
	styles := m.theme.Styles()
	register := m.currentView == ViewRegister

	title, subtitle, switchHint := i18n.LoginTitle, i18n.LoginSubtitle, i18n.NoAccount
	button, busy := i18n.LoginButton, i18n.LoggingIn
	f := m.login
	if register {
		title, subtitle, switchHint = i18n.RegisterTitle, i18n.RegisterSubtitle, i18n.HaveAccount
		button, busy = i18n.RegisterButton, i18n.Registering
		f = m.register
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(m.tr.T(title)))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(m.tr.T(subtitle)))
	b.WriteString("\n\n")
	b.WriteString(f.view(m.tr, styles))
	b.WriteString("\n")
	if f.busy {
		b.WriteString(styles.InfoText.Render(m.tr.T(busy)))
	} else {
		b.WriteString(m.keyHint("ctrl+s", m.tr.T(button)))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render(m.tr.T(switchHint)))

	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Top,
		lipgloss.NewStyle().Width(min(m.width-2, 60)).Padding(1, 1).Render(b.String()))
}

package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/five82/cumplesito/internal/ads"
	"github.com/five82/cumplesito/internal/api"
	"github.com/five82/cumplesito/internal/config"
	"github.com/five82/cumplesito/internal/i18n"
	"github.com/five82/cumplesito/internal/logging"
	"github.com/five82/cumplesito/internal/mutation"
	"github.com/five82/cumplesito/internal/prefs"
	"github.com/five82/cumplesito/internal/session"
	"github.com/five82/cumplesito/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewHome View = iota
	ViewLogin
	ViewRegister
	ViewLists
	ViewCreate
	ViewWishlist
	ViewLogs
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Service    *mutation.Service
	Client     *api.Client
	Session    *session.Manager
	Store      *state.Store
	Config     *config.Config
	Translator *i18n.Translator
	Log        logrus.FieldLogger
	Tick       time.Duration
	ThemeName  string
	PrefsPath  string
	Link       string // wishlist id or share link to open first
	Owner      bool
}

// writeClipboard is swapped in tests; CI machines have no clipboard.
var writeClipboard = clipboard.WriteAll

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	svc       *mutation.Service
	client    *api.Client
	session   *session.Manager
	store     *state.Store
	config    *config.Config
	tr        *i18n.Translator
	log       logrus.FieldLogger
	ads       ads.Config
	keys      keyMap
	prefsPath string
	tick      time.Duration

	// UI state
	theme       Theme
	currentView View
	backView    View
	authReturn  View
	width       int
	height      int
	ready       bool
	showHelp    bool
	modal       Modal
	notice      notice
	windowTitle string

	// Wishlist state
	snapshot       state.Snapshot
	gen            uint64
	ownerLink      string
	selectedRow    int
	pending        bool
	detailViewport viewport.Model

	// Other views
	home     homeState
	login    form
	register form
	create   form
	lists    listsState
	logState logState
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	tick := opts.Tick
	if tick <= 0 {
		tick = DefaultUIInterval
	}

	tr := opts.Translator
	if tr == nil {
		tr = i18n.New(i18n.Default)
	}

	log := opts.Log
	if log == nil {
		log = logging.Discard()
	}

	cfg := opts.Config
	if cfg == nil {
		defaults := config.Default()
		cfg = &defaults
	}

	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}

	sess := opts.Session
	if sess == nil {
		sess = session.NewManager("")
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		ctx:         ctx,
		svc:         opts.Service,
		client:      opts.Client,
		session:     sess,
		store:       store,
		config:      cfg,
		tr:          tr,
		log:         log,
		ads:         ads.Config{Enabled: cfg.AdsEnabled, PublisherID: cfg.AdsPublisherID},
		keys:        DefaultKeyMap(tr),
		prefsPath:   prefsPath,
		tick:        tick,
		theme:       GetTheme(opts.ThemeName),
		currentView: ViewHome,
		home:        newHomeState(),
		login:       newLoginForm(),
		register:    newRegisterForm(),
		create:      newCreateForm(""),
		logState:    newLogState(),
	}

	if strings.TrimSpace(opts.Link) != "" {
		if id, owner, err := ParseLink(opts.Link); err == nil {
			m.beginWishlist(id, owner || opts.Owner, ViewHome)
		} else {
			m.setNotice(noticeError, tr.T(i18n.InvalidLink))
		}
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.tick),
		fetchSnapshotCmd(m.store),
		tea.SetWindowTitle(m.titleText()),
	}
	if m.currentView == ViewWishlist && m.gen != 0 {
		cmds = append(cmds, m.refreshCmd(m.gen))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initDetailViewport()
			m.initLogViewport()
		}
		m.ready = true
		m.updateDetailViewport()
		m.updateLogViewport()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m.titled()

	case wishlistLoadedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		if msg.err != nil && !errors.Is(msg.err, mutation.ErrStale) {
			m.setNotice(noticeError, describeError(m.tr, msg.err, i18n.ErrorLoadingWishlist))
		}
		return m, fetchSnapshotCmd(m.store)

	case intentMsg:
		return m.handleIntentResult(msg)

	case nameSubmittedMsg:
		return m.submitName(msg)

	case contributionSubmittedMsg:
		return m.submitContribution(msg)

	case itemSubmittedMsg:
		return m.submitItem(msg)

	case confirmDeleteItemMsg:
		return m.deleteItem(msg)

	case autofillRequestMsg:
		return m, m.extractMetadataCmd(msg.productURL)

	case metadataMsg:
		if m.modal != nil {
			m.modal, _, _ = m.modal.Update(msg, m.keys)
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.log.WithError(msg.err).Warn("clipboard copy failed")
			m.setNotice(noticeWarning, m.tr.T(i18n.ErrorCopy)+": "+msg.link)
		} else {
			m.setNotice(noticeSuccess, m.tr.T(i18n.Copied))
		}
		return m, nil

	case authDoneMsg:
		return m.handleAuthDone(msg)

	case listsLoadedMsg:
		m.handleListsLoaded(msg)
		return m, nil

	case wishlistCreatedMsg:
		return m.handleWishlistCreated(msg)

	case confirmDeleteWishlistMsg:
		return m, m.deleteWishlistCmd(msg.id)

	case wishlistDeletedMsg:
		return m.handleWishlistDeleted(msg)

	case logsLoadedMsg:
		m.handleLogsLoaded(msg)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return m.tr.T(i18n.Loading)
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		modal, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		} else {
			m.modal = modal
		}
		return m, cmd
	}

	if m.editing() {
		return m.handleEditingKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		m.updateDetailViewport()
		return m, nil

	case key.Matches(msg, m.keys.CycleLanguage):
		m.tr.SetLang(m.tr.Lang().Next())
		m.keys = DefaultKeyMap(m.tr)
		m.savePrefs()
		m.updateDetailViewport()
		return m.titled()

	case key.Matches(msg, m.keys.Escape):
		return m.back()

	case key.Matches(msg, m.keys.ViewHome):
		m.goHome()
		return m.titled()

	case key.Matches(msg, m.keys.OpenLink) && m.currentView != ViewLogs:
		m.goHome()
		m.home.startEditing()
		return m.titled()

	case key.Matches(msg, m.keys.ViewLists):
		cmd := m.showLists()
		return m.titled(cmd)

	case key.Matches(msg, m.keys.NewWishlist):
		m.showCreate()
		return m.titled()

	case key.Matches(msg, m.keys.Login):
		if !m.session.Authenticated() {
			m.showAuth(ViewLogin, m.currentView)
		}
		return m, nil

	case key.Matches(msg, m.keys.Logout):
		return m.logout()

	case key.Matches(msg, m.keys.ViewLogs):
		m.currentView = ViewLogs
		m.logState.follow = true
		return m.titled(m.refreshLogs())
	}

	switch m.currentView {
	case ViewWishlist:
		return m.handleWishlistKey(msg)
	case ViewLists:
		return m.handleListsKey(msg)
	case ViewLogs:
		return m.handleLogsKey(msg)
	}

	return m, nil
}

// editing reports whether keystrokes belong to a text input.
func (m Model) editing() bool {
	switch m.currentView {
	case ViewLogin, ViewRegister, ViewCreate:
		return true
	case ViewHome:
		return m.home.editing
	case ViewLogs:
		return m.logState.searching
	}
	return false
}

// handleEditingKey routes keys while a text input has focus.
func (m Model) handleEditingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.currentView {
	case ViewHome:
		return m.handleHomeInput(msg)
	case ViewLogs:
		return m.handleLogSearchInput(msg)
	case ViewLogin, ViewRegister:
		return m.handleAuthKey(msg)
	case ViewCreate:
		return m.handleCreateKey(msg)
	}
	return m, nil
}

// back leaves the current view.
func (m Model) back() (tea.Model, tea.Cmd) {
	switch m.currentView {
	case ViewLogs:
		if m.logState.query != "" {
			m.logState.query = ""
			m.updateLogViewport()
			return m, nil
		}
	case ViewWishlist:
		if m.backView == ViewLists && m.session.Authenticated() {
			m.leaveWishlist()
			cmd := m.showLists()
			return m.titled(cmd)
		}
	}
	m.goHome()
	return m.titled()
}

// goHome shows the landing view, leaving any open wishlist.
func (m *Model) goHome() {
	m.leaveWishlist()
	m.currentView = ViewHome
}

// beginWishlist opens a new view of wishlist id. Results for any earlier
// view are dropped from here on.
func (m *Model) beginWishlist(id string, owner bool, from View) tea.Cmd {
	m.gen = m.store.Open(id)
	m.snapshot = m.store.Snapshot()
	m.ownerLink = ""
	if owner {
		m.ownerLink = id
	}
	m.backView = from
	m.currentView = ViewWishlist
	m.selectedRow = 0
	m.pending = false
	m.updateDetailViewport()
	return m.refreshCmd(m.gen)
}

// leaveWishlist disposes of the wishlist view.
func (m *Model) leaveWishlist() {
	if m.gen == 0 {
		return
	}
	m.store.Close()
	m.gen = 0
	m.snapshot = state.Snapshot{}
	m.ownerLink = ""
	m.pending = false
}

// applySnapshot installs the latest store snapshot if it belongs to the
// current view. A wishlist the record store does not know sends the user
// home with a notice.
func (m *Model) applySnapshot(snap state.Snapshot) {
	if m.currentView != ViewWishlist || snap.Generation != m.gen {
		return
	}
	if snap.NotFound {
		m.goHome()
		m.setNotice(noticeError, m.tr.T(i18n.WishlistNotFound))
		return
	}
	m.snapshot = snap
	if n := len(snap.Wishlist.Items); m.selectedRow >= n {
		m.selectedRow = n - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
	m.updateDetailViewport()
}

// handleTick processes the UI tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.currentView == ViewWishlist {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}

	if !m.notice.at.IsZero() && time.Since(m.notice.at) > NoticeTTL {
		m.notice = notice{}
	}

	if m.currentView == ViewLogs && m.logState.follow {
		cmds = append(cmds, m.refreshLogs())
	}

	cmds = append(cmds, tickCmd(m.tick))
	return m, tea.Batch(cmds...)
}

// savePrefs persists the theme and language.
func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, Language: string(m.tr.Lang())}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.log.WithError(err).Warn("save preferences failed")
	}
}

// titleText is the terminal window title for the current view.
func (m Model) titleText() string {
	if m.currentView == ViewWishlist && m.snapshot.HasWishlist {
		w := m.snapshot.Wishlist
		return fmt.Sprintf("%s - %s | Cumplesito", w.Title, w.OwnerName)
	}
	if m.currentView == ViewHome {
		return m.tr.T(i18n.HomeTitle)
	}
	return "Cumplesito"
}

// syncTitle updates the window title when it changed.
func (m *Model) syncTitle() tea.Cmd {
	title := m.titleText()
	if title == m.windowTitle {
		return nil
	}
	m.windowTitle = title
	return tea.SetWindowTitle(title)
}

// titled returns the model with cmds plus a window title update.
func (m Model) titled(cmds ...tea.Cmd) (tea.Model, tea.Cmd) {
	title := m.syncTitle()
	return m, tea.Batch(append(cmds, title)...)
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	b.WriteString(m.renderContent(m.contentHeight()))
	b.WriteString("\n")

	b.WriteString(m.renderStatusLine())
	return b.String()
}

// contentHeight is the height left for the active view.
func (m Model) contentHeight() int {
	h := m.height - 3
	if h < 1 {
		return 1
	}
	return h
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent(height int) string {
	switch m.currentView {
	case ViewHome:
		return m.renderHome(height)
	case ViewLogin, ViewRegister:
		return m.renderAuth(height)
	case ViewLists:
		return m.renderLists(height)
	case ViewCreate:
		return m.renderCreate(height)
	case ViewWishlist:
		return m.renderWishlist(height)
	case ViewLogs:
		return m.renderLogs(height)
	default:
		return ""
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type wishlistLoadedMsg struct {
	gen uint64
	err error
}

type copiedMsg struct {
	link string
	err  error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func (m Model) refreshCmd(gen uint64) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		if svc == nil {
			return wishlistLoadedMsg{gen: gen, err: errors.New("no record store configured")}
		}
		return wishlistLoadedMsg{gen: gen, err: svc.Refresh(ctx, gen)}
	}
}

func (m Model) copyLinkCmd(link string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{link: link, err: writeClipboard(link)}
	}
}

func (m Model) extractMetadataCmd(productURL string) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		meta, err := client.ExtractMetadata(ctx, productURL)
		return metadataMsg{productURL: productURL, meta: meta, err: err}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}

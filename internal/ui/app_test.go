package ui

import (
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/five82/cumplesito/internal/api"
	"github.com/five82/cumplesito/internal/config"
	"github.com/five82/cumplesito/internal/devserver"
	"github.com/five82/cumplesito/internal/i18n"
	"github.com/five82/cumplesito/internal/mutation"
	"github.com/five82/cumplesito/internal/prefs"
	"github.com/five82/cumplesito/internal/session"
	"github.com/five82/cumplesito/internal/state"
	"github.com/five82/cumplesito/internal/wishlist"
)

const testFrontend = "http://cumplesito.test"

// harness drives a Model synchronously against an in-memory record store.
type harness struct {
	t      *testing.T
	m      Model
	listID string
	store  *state.Store
	sess   *session.Manager
	cfg    config.Config
	copied []string
}

func newHarness(t *testing.T, link string) *harness {
	t.Helper()

	srv := devserver.New(devserver.Options{Secret: "test-secret", BcryptCost: bcrypt.MinCost, FrontendURL: testFrontend})
	listID, err := devserver.Seed(srv.Store())
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	dir := t.TempDir()
	sess := session.NewManager(filepath.Join(dir, "session.toml"))
	client, err := api.NewClient(ts.URL+"/api", api.WithTokenSource(sess), api.WithTimeout(2*time.Second))
	require.NoError(t, err)

	tr := i18n.New(i18n.EN)
	store := &state.Store{}
	svc := mutation.New(client, store, mutation.WithAnonymousLabel(func() string { return tr.T(i18n.Anonymous) }))

	cfg := config.Default()
	cfg.FrontendURL = testFrontend
	cfg.LogFile = filepath.Join(dir, "cumplesito.log")

	h := &harness{t: t, listID: listID, store: store, sess: sess, cfg: cfg}

	prev := writeClipboard
	writeClipboard = func(text string) error {
		h.copied = append(h.copied, text)
		return nil
	}
	t.Cleanup(func() { writeClipboard = prev })

	if link == "seed" {
		link = listID
	}
	h.m = New(Options{
		Context:    context.Background(),
		Service:    svc,
		Client:     client,
		Session:    sess,
		Store:      store,
		Config:     &h.cfg,
		Translator: tr,
		Tick:       time.Millisecond,
		PrefsPath:  filepath.Join(dir, "prefs.toml"),
		Link:       link,
	})
	h.send(tea.WindowSizeMsg{Width: 120, Height: 40})
	h.run(h.m.Init())
	return h
}

// send delivers msg and keeps feeding the resulting commands' messages until
// nothing is left. Ticks are dropped so the loop settles.
func (h *harness) send(msg tea.Msg) {
	h.t.Helper()
	queue := []tea.Msg{msg}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 200 {
			h.t.Fatal("message loop did not settle")
		}
		next := queue[0]
		queue = queue[1:]
		model, cmd := h.m.Update(next)
		h.m = model.(Model)
		queue = append(queue, collect(cmd)...)
	}
}

func (h *harness) run(cmd tea.Cmd) {
	h.t.Helper()
	for _, msg := range collect(cmd) {
		h.send(msg)
	}
}

func (h *harness) keys(msgs ...tea.KeyMsg) {
	h.t.Helper()
	for _, msg := range msgs {
		h.send(msg)
	}
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case nil, tickMsg:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, collect(c)...)
		}
		return out
	default:
		return []tea.Msg{msg}
	}
}

func (h *harness) item(idx int) wishlist.Item {
	h.t.Helper()
	items := h.m.snapshot.Wishlist.Items
	require.Greater(h.t, len(items), idx)
	return items[idx]
}

func (h *harness) login() {
	h.t.Helper()
	h.keys(runes("i"))
	require.Equal(h.t, ViewLogin, h.m.currentView)
	h.keys(runes(devserver.DemoEmail), keyTab, runes(devserver.DemoPassword), keySave)
	require.True(h.t, h.sess.Authenticated(), "login failed: %q", h.m.login.err)
}

func TestOpenLinkFromHome(t *testing.T) {
	h := newHarness(t, "")
	assert.Equal(t, ViewHome, h.m.currentView)
	assert.Contains(t, h.m.View(), "Cumplesito")

	h.keys(runes("/"), runes("not a link!"), keyEnter)
	assert.Equal(t, ViewHome, h.m.currentView)
	assert.Equal(t, noticeError, h.m.notice.kind)

	h.keys(keyEsc, runes("/"), runes(testFrontend+"/wishlist/"+h.listID), keyEnter)
	require.Equal(t, ViewWishlist, h.m.currentView)
	require.True(t, h.m.snapshot.HasWishlist)
	assert.Len(t, h.m.snapshot.Wishlist.Items, 4)
	assert.False(t, h.m.isOwner(), "share links open as a visitor")

	view := h.m.View()
	assert.Contains(t, view, "Mis 30 años")
	assert.Contains(t, view, "Molino de café manual")
	assert.Equal(t, "Mis 30 años - Sofía | Cumplesito", h.m.windowTitle)
}

func TestUnknownWishlistRedirectsHome(t *testing.T) {
	h := newHarness(t, "no-such-list")
	require.Equal(t, ViewHome, h.m.currentView)
	assert.Equal(t, noticeError, h.m.notice.kind)
	assert.Equal(t, h.m.tr.T(i18n.WishlistNotFound), h.m.notice.text)
	assert.Contains(t, h.m.View(), h.m.tr.T(i18n.WishlistNotFound))
	assert.Empty(t, h.store.Snapshot().WishlistID)
	assert.Zero(t, h.m.gen)
}

func TestPurchaseThroughNamePrompt(t *testing.T) {
	h := newHarness(t, "seed")
	require.Equal(t, wishlist.StateAvailable, h.item(0).State())

	h.keys(runes("p"))
	require.IsType(t, nameModal{}, h.m.modal)

	h.keys(runes("Ana"), keyEnter)
	assert.Nil(t, h.m.modal)
	assert.False(t, h.m.pending)
	assert.Equal(t, noticeSuccess, h.m.notice.kind)
	assert.Equal(t, wishlist.StatePurchased, h.item(0).State())
	assert.Equal(t, "Ana", h.item(0).PurchasedBy)

	// The same key undoes the purchase.
	h.keys(runes("p"))
	assert.Nil(t, h.m.modal)
	assert.Equal(t, wishlist.StateAvailable, h.item(0).State())
}

func TestAnonymousPurchaseUsesLabel(t *testing.T) {
	h := newHarness(t, "seed")
	require.True(t, h.m.snapshot.Wishlist.AllowAnonymousPurchase)

	h.keys(runes("p"), keyEnter)
	assert.Equal(t, wishlist.StatePurchased, h.item(0).State())
	assert.Equal(t, "Anonymous", h.item(0).PurchasedBy)
}

func TestReleaseReservation(t *testing.T) {
	h := newHarness(t, "seed")
	h.keys(runes("j"))
	require.Equal(t, wishlist.StateReserved, h.item(1).State())

	h.keys(runes("r"))
	assert.Nil(t, h.m.modal, "releasing needs no name")
	assert.Equal(t, wishlist.StateAvailable, h.item(1).State())
	assert.Equal(t, h.m.tr.T(i18n.ReservationCleared), h.m.notice.text)
}

func TestIllegalActionIsRefusedLocally(t *testing.T) {
	h := newHarness(t, "seed")
	h.keys(runes("c"))
	assert.Nil(t, h.m.modal, "standard items take no contributions")
	assert.Equal(t, noticeWarning, h.m.notice.kind)
}

func TestContributionValidatedBeforeSending(t *testing.T) {
	h := newHarness(t, "seed")
	h.keys(runes("G"))
	pooled := h.item(3)
	require.Equal(t, wishlist.StateOpen, pooled.State())

	h.keys(runes("c"), runes("Ana"), keyTab, runes("500"), keySave)
	modal, ok := h.m.modal.(contributionModal)
	require.True(t, ok, "modal closed on an invalid amount")
	assert.Equal(t, "The amount exceeds the remaining $225", modal.form.err)
	assert.Len(t, h.item(3).Contributions, 2, "nothing sent")

	h.keys(keyEsc, runes("c"), runes("Ana"), keyTab, runes("225"), keySave)
	assert.Nil(t, h.m.modal)
	assert.Equal(t, wishlist.StateFunded, h.item(3).State())
	assert.Len(t, h.item(3).Contributions, 3)

	h.keys(runes("c"))
	assert.Nil(t, h.m.modal)
	assert.Equal(t, h.m.tr.T(i18n.ContributionEnded), h.m.notice.text)
}

func TestResultForLeftViewIsDropped(t *testing.T) {
	h := newHarness(t, "seed")
	itemID := h.item(0).ID

	_, cmd := h.m.Update(nameSubmittedMsg{action: wishlist.ActionPurchase, itemID: itemID, name: "Ana"})
	require.NotNil(t, cmd)

	h.keys(keyEsc)
	require.Equal(t, ViewHome, h.m.currentView)

	for _, msg := range collect(cmd) {
		intent, ok := msg.(intentMsg)
		require.True(t, ok)
		assert.ErrorIs(t, intent.err, state.ErrStale)
		h.send(msg)
	}
	assert.Empty(t, h.m.notice.text)

	h.keys(runes("/"), runes(h.listID), keyEnter)
	assert.Equal(t, wishlist.StateAvailable, h.item(0).State(), "stale intent must not reach the record store")
}

func TestStaleSnapshotIgnored(t *testing.T) {
	h := newHarness(t, "seed")
	before := h.m.snapshot

	h.send(snapshotMsg(state.Snapshot{Generation: h.m.gen + 1, HasWishlist: true}))
	assert.Equal(t, before.Wishlist.Title, h.m.snapshot.Wishlist.Title)

	h.send(intentMsg{gen: h.m.gen + 1, err: errors.New("late")})
	assert.Empty(t, h.m.notice.text)
}

func TestCopyShareLink(t *testing.T) {
	h := newHarness(t, "seed")
	h.keys(runes("y"))
	require.Len(t, h.copied, 1)
	assert.Equal(t, testFrontend+"/wishlist/"+h.listID, h.copied[0])
	assert.Equal(t, noticeSuccess, h.m.notice.kind)

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	h.keys(runes("y"))
	assert.Equal(t, noticeWarning, h.m.notice.kind)
	assert.Contains(t, h.m.notice.text, h.listID)
}

func TestOwnerAddsAndDeletesItem(t *testing.T) {
	h := newHarness(t, "seed")
	h.keys(runes("a"))
	assert.Nil(t, h.m.modal, "visitors get no item form")

	h.login()
	require.Equal(t, ViewWishlist, h.m.currentView, "login returns to the wishlist")
	require.True(t, h.m.isOwner())

	h.keys(runes("a"))
	require.IsType(t, itemFormModal{}, h.m.modal)
	h.keys(runes("Libro de fotografía"), keyTab, runes("Sobre Saul Leiter"), keySave)
	assert.Nil(t, h.m.modal)
	require.Len(t, h.m.snapshot.Wishlist.Items, 5)
	assert.Equal(t, "Libro de fotografía", h.item(4).Title)

	h.keys(runes("G"), runes("d"))
	require.IsType(t, confirmModal{}, h.m.modal)
	h.keys(runes("y"))
	assert.Len(t, h.m.snapshot.Wishlist.Items, 4)
	assert.Equal(t, h.m.tr.T(i18n.ItemDeleted), h.m.notice.text)

	h.keys(runes("x"))
	assert.False(t, h.sess.Authenticated())
	assert.False(t, h.m.isOwner())
}

func TestListsRequireLogin(t *testing.T) {
	h := newHarness(t, "")
	h.keys(runes("m"))
	require.Equal(t, ViewLogin, h.m.currentView)

	h.keys(runes(devserver.DemoEmail), keyTab, runes("wrong-password"), keySave)
	assert.Equal(t, ViewLogin, h.m.currentView)
	assert.NotEmpty(t, h.m.login.err)

	h.m.login = newLoginForm()
	h.keys(runes(devserver.DemoEmail), keyTab, runes(devserver.DemoPassword), keySave)
	require.Equal(t, ViewLists, h.m.currentView)
	require.Len(t, h.m.lists.items, 1)
	assert.Contains(t, h.m.View(), "Mis 30 años")

	h.keys(keyEnter)
	require.Equal(t, ViewWishlist, h.m.currentView)
	assert.True(t, h.m.isOwner())

	h.keys(keyEsc)
	assert.Equal(t, ViewLists, h.m.currentView)
}

func TestCreateWishlist(t *testing.T) {
	h := newHarness(t, "")
	h.login()
	require.Equal(t, ViewHome, h.m.currentView)

	h.keys(runes("n"))
	require.Equal(t, ViewCreate, h.m.currentView)
	assert.Equal(t, "Sofía", h.m.create.value("ownerName"))

	h.keys(runes("Mis 31"), keyTab, keyTab, runes("20-11-2027"), keyTab, runes("Otra fiesta"), keySave)
	require.Equal(t, ViewCreate, h.m.currentView)
	assert.Equal(t, wishlist.MsgInvalidDate, h.m.create.errors["eventDate"])

	h.m.create.setValue("eventDate", "2027-11-20")
	h.keys(keySave)
	require.Equal(t, ViewWishlist, h.m.currentView)
	assert.Equal(t, "Mis 31", h.m.snapshot.Wishlist.Title)
	assert.True(t, h.m.isOwner())
	assert.Empty(t, h.m.snapshot.Wishlist.Items)
	assert.Contains(t, h.m.View(), h.m.tr.T(i18n.NoItemsOwner))
}

func TestThemeAndLanguagePersist(t *testing.T) {
	h := newHarness(t, "")
	h.keys(runes("L"), runes("T"))
	assert.Equal(t, i18n.ES, h.m.tr.Lang())

	p, err := prefs.Load(h.m.prefsPath)
	require.NoError(t, err)
	assert.Equal(t, "es", p.Language)
	assert.Equal(t, h.m.theme.Name, p.Theme)
	assert.NotEqual(t, ThemeNames()[0], p.Theme)
}

func TestKeyHelpFollowsLanguage(t *testing.T) {
	h := newHarness(t, "")
	assert.Equal(t, "Copy link", h.m.keys.CopyLink.Help().Desc)

	h.keys(runes("L"))
	require.Equal(t, i18n.ES, h.m.tr.Lang())
	assert.Equal(t, "Copiar enlace", h.m.keys.CopyLink.Help().Desc)
	assert.Equal(t, "Monto rápido", h.m.keys.QuickAmount.Help().Desc)

	help := h.m.renderHelp()
	for _, want := range []string{"Atajos de teclado", "Formularios", "Dueño", "Copiar enlace", "Monto rápido"} {
		assert.Contains(t, help, want)
	}
	for _, english := range []string{"Copy link", "Toggle help", "Quick amount"} {
		assert.NotContains(t, help, english)
	}

	h.keys(runes("D"))
	require.Equal(t, ViewLogs, h.m.currentView)
	bar := h.m.renderCommandBar()
	assert.Contains(t, bar, "buscar")
	assert.NotContains(t, bar, "search")
}

func TestLogsView(t *testing.T) {
	h := newHarness(t, "")
	lines := strings.Join([]string{
		`time="2026-10-17T10:00:00Z" level=info msg="client started" api_url="http://localhost:8000/api"`,
		`time="2026-10-17T10:00:01Z" level=warning msg="wishlist fetch failed" wishlist_id=abc`,
		`time="2026-10-17T10:00:02Z" level=debug msg="tick"`,
	}, "\n") + "\n"
	require.NoError(t, os.WriteFile(h.cfg.LogFile, []byte(lines), 0o600))

	h.keys(runes("D"))
	require.Equal(t, ViewLogs, h.m.currentView)
	require.Len(t, h.m.logState.entries, 3)
	assert.Len(t, h.m.logState.visibleEntries(), 3)

	// debug -> info -> warn
	h.keys(runes("l"), runes("l"), runes("l"))
	assert.Equal(t, "warn", h.m.logState.minLevel)
	assert.Len(t, h.m.logState.visibleEntries(), 1)

	h.keys(runes("l"), runes("l"), runes("/"))
	require.True(t, h.m.logState.searching)
	h.keys(runes("started"), keyEnter)
	assert.Equal(t, "started", h.m.logState.query)
	visible := h.m.logState.visibleEntries()
	require.Len(t, visible, 1)
	assert.Equal(t, "client started", visible[0].Message)

	h.keys(keyEsc)
	assert.Equal(t, ViewLogs, h.m.currentView)
	assert.Empty(t, h.m.logState.query)
}

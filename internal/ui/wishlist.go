package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cumplesito/internal/ads"
	"github.com/five82/cumplesito/internal/i18n"
	"github.com/five82/cumplesito/internal/mutation"
	"github.com/five82/cumplesito/internal/wishlist"
)

// intentMsg is the outcome of one mutation issued from the wishlist view.
type intentMsg struct {
	gen      uint64
	success  i18n.Key
	fallback i18n.Key
	result   mutation.Result
	err      error
}

type confirmDeleteItemMsg struct {
	itemID string
}

// wishlistPanes is the geometry of the wishlist view for the current size.
type wishlistPanes struct {
	top     string
	split   bool
	listW   int
	listH   int
	detailW int
	detailH int
}

func (m *Model) initDetailViewport() {
	m.detailViewport = viewport.New(0, 0)
}

// updateDetailViewport resizes the detail pane and refills it with the
// selected item.
func (m *Model) updateDetailViewport() {
	if m.width == 0 || m.height == 0 {
		return
	}
	p := m.wishlistLayout(m.contentHeight())
	w := p.detailW - 4
	h := p.detailH - 3
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	m.detailViewport.Width = w
	m.detailViewport.Height = h

	item, ok := m.selectedItem()
	if !ok {
		m.detailViewport.SetContent("")
		return
	}
	m.detailViewport.SetContent(m.renderItemDetail(item, w))
}

func (m Model) selectedItem() (wishlist.Item, bool) {
	items := m.snapshot.Wishlist.Items
	if !m.snapshot.HasWishlist || m.selectedRow < 0 || m.selectedRow >= len(items) {
		return wishlist.Item{}, false
	}
	return items[m.selectedRow], true
}

// isOwner reports whether owner actions are shown. It is a display choice;
// the record store decides what the user may change.
func (m Model) isOwner() bool {
	if !m.snapshot.HasWishlist {
		return false
	}
	flag := m.ownerLink != "" && m.ownerLink == m.snapshot.WishlistID
	return m.snapshot.Wishlist.IsOwner(m.session.UserID(), flag)
}

func (m Model) shareLink() string {
	return m.config.ShareLink(m.snapshot.WishlistID)
}

// handleWishlistKey handles keys in the wishlist view.
func (m Model) handleWishlistKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.snapshot.Wishlist.Items)
	moved := false

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.selectedRow > 0 {
			m.selectedRow--
			moved = true
		}
	case key.Matches(msg, m.keys.Down):
		if m.selectedRow < n-1 {
			m.selectedRow++
			moved = true
		}
	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
		moved = true
	case key.Matches(msg, m.keys.Bottom):
		if n > 0 {
			m.selectedRow = n - 1
			moved = true
		}
	case key.Matches(msg, m.keys.HalfPageUp):
		m.detailViewport.HalfViewUp()
		return m, nil
	case key.Matches(msg, m.keys.HalfPageDown):
		m.detailViewport.HalfViewDown()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.refreshCmd(m.gen)

	case key.Matches(msg, m.keys.CopyLink):
		if m.snapshot.WishlistID == "" {
			return m, nil
		}
		return m, m.copyLinkCmd(m.shareLink())

	case key.Matches(msg, m.keys.Reserve):
		return m.startIntent(wishlist.ActionReserve)
	case key.Matches(msg, m.keys.Purchase):
		return m.startIntent(wishlist.ActionPurchase)
	case key.Matches(msg, m.keys.Contribute):
		return m.startIntent(wishlist.ActionContribute)

	case key.Matches(msg, m.keys.AddItem):
		if m.isOwner() && !m.pending {
			m.modal = newItemFormModal(m.tr, nil)
		}
		return m, nil
	case key.Matches(msg, m.keys.EditItem):
		if item, ok := m.selectedItem(); ok && m.isOwner() && !m.pending {
			m.modal = newItemFormModal(m.tr, &item)
		}
		return m, nil
	case key.Matches(msg, m.keys.Delete):
		if item, ok := m.selectedItem(); ok && m.isOwner() && !m.pending {
			m.modal = newConfirmModal(m.tr, m.tr.T(i18n.Delete), m.tr.Tf(i18n.DeleteItemConfirm, item.Title), confirmDeleteItemMsg{itemID: item.ID})
		}
		return m, nil
	}

	if moved {
		m.detailViewport.GotoTop()
		m.updateDetailViewport()
	}
	return m, nil
}

// startIntent opens the prompt for action on the selected item. The key for
// reserve and purchase undoes the action when it is already in place.
func (m Model) startIntent(action wishlist.Action) (tea.Model, tea.Cmd) {
	item, ok := m.selectedItem()
	if !ok || m.pending {
		return m, nil
	}
	allowAnonymous := m.snapshot.Wishlist.AllowAnonymousPurchase

	switch action {
	case wishlist.ActionReserve:
		switch {
		case item.Allows(wishlist.ActionReserve):
			m.modal = newNameModal(m.tr, action, item, allowAnonymous)
			return m, nil
		case item.Allows(wishlist.ActionUnreserve):
			return m.run(i18n.ReservationCleared, i18n.ErrorReserve, func(ctx context.Context, gen uint64) (mutation.Result, error) {
				return m.svc.Unreserve(ctx, gen, item.ID)
			})
		}
	case wishlist.ActionPurchase:
		switch {
		case item.Allows(wishlist.ActionPurchase):
			m.modal = newNameModal(m.tr, action, item, allowAnonymous)
			return m, nil
		case item.Allows(wishlist.ActionUnpurchase):
			return m.run(i18n.PurchaseCleared, i18n.ErrorPurchase, func(ctx context.Context, gen uint64) (mutation.Result, error) {
				return m.svc.Unpurchase(ctx, gen, item.ID)
			})
		}
	case wishlist.ActionContribute:
		switch {
		case item.Allows(wishlist.ActionContribute):
			m.modal = newContributionModal(m.tr, item)
			return m, nil
		case item.IsPooled():
			m.setNotice(noticeInfo, m.tr.T(i18n.ContributionEnded))
			return m, nil
		}
	}

	m.setNotice(noticeWarning, m.tr.T(i18n.NotAllowed))
	return m, nil
}

// run marks the view busy and issues call for the current generation.
func (m Model) run(success, fallback i18n.Key, call func(context.Context, uint64) (mutation.Result, error)) (tea.Model, tea.Cmd) {
	if m.svc == nil || m.gen == 0 {
		return m, nil
	}
	m.pending = true
	ctx, gen := m.ctx, m.gen
	return m, func() tea.Msg {
		res, err := call(ctx, gen)
		return intentMsg{gen: gen, success: success, fallback: fallback, result: res, err: err}
	}
}

func (m Model) submitName(msg nameSubmittedMsg) (tea.Model, tea.Cmd) {
	if msg.action == wishlist.ActionPurchase {
		return m.run(i18n.PurchaseRecorded, i18n.ErrorPurchase, func(ctx context.Context, gen uint64) (mutation.Result, error) {
			return m.svc.Purchase(ctx, gen, msg.itemID, msg.name)
		})
	}
	return m.run(i18n.ReservationRecorded, i18n.ErrorReserve, func(ctx context.Context, gen uint64) (mutation.Result, error) {
		return m.svc.Reserve(ctx, gen, msg.itemID, msg.name)
	})
}

func (m Model) submitContribution(msg contributionSubmittedMsg) (tea.Model, tea.Cmd) {
	return m.run(i18n.ContributionRecorded, i18n.ErrorContribute, func(ctx context.Context, gen uint64) (mutation.Result, error) {
		return m.svc.Contribute(ctx, gen, msg.itemID, msg.input)
	})
}

func (m Model) submitItem(msg itemSubmittedMsg) (tea.Model, tea.Cmd) {
	if msg.itemID == "" {
		return m.run(i18n.ItemAdded, i18n.ErrorAddingItem, func(ctx context.Context, gen uint64) (mutation.Result, error) {
			return m.svc.AddItem(ctx, gen, msg.input)
		})
	}
	return m.run(i18n.ItemUpdated, i18n.ErrorUpdatingItem, func(ctx context.Context, gen uint64) (mutation.Result, error) {
		return m.svc.EditItem(ctx, gen, msg.itemID, msg.input)
	})
}

func (m Model) deleteItem(msg confirmDeleteItemMsg) (tea.Model, tea.Cmd) {
	return m.run(i18n.ItemDeleted, i18n.ErrorDeletingItem, func(ctx context.Context, gen uint64) (mutation.Result, error) {
		return m.svc.DeleteItem(ctx, gen, msg.itemID)
	})
}

// handleIntentResult reports a finished intent. Results for a view the user
// already left are dropped.
func (m Model) handleIntentResult(msg intentMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen {
		return m, nil
	}
	m.pending = false

	switch {
	case errors.Is(msg.err, mutation.ErrStale):
		return m, nil
	case msg.err != nil:
		m.log.WithError(msg.err).WithField("wishlist_id", m.snapshot.WishlistID).Debug("intent rejected")
		m.setNotice(noticeError, describeError(m.tr, msg.err, msg.fallback))
	case msg.result.Warning != nil:
		m.setNotice(noticeWarning, m.tr.T(msg.success)+" · "+m.tr.T(i18n.RefreshWarning))
	default:
		m.setNotice(noticeSuccess, m.tr.T(msg.success))
	}
	return m, fetchSnapshotCmd(m.store)
}

// wishlistLayout splits the content area between the header block, the
// item list and the detail pane.
func (m Model) wishlistLayout(height int) wishlistPanes {
	p := wishlistPanes{top: m.renderWishlistTop(m.width)}
	rest := height - lipgloss.Height(p.top)
	if rest < 6 {
		rest = 6
	}

	if m.width >= LayoutSplitWidth {
		p.split = true
		p.listW = m.width * ListPaneRatio / 100
		p.detailW = m.width - p.listW
		p.listH = rest
		p.detailH = rest
		return p
	}
	p.listW = m.width
	p.detailW = m.width
	p.listH = rest / 2
	p.detailH = rest - p.listH
	return p
}

// renderWishlist renders the wishlist view.
func (m Model) renderWishlist(height int) string {
	styles := m.theme.Styles()
	snap := m.snapshot
	place := func(s string) string {
		return lipgloss.NewStyle().Width(m.width).Height(height).MaxHeight(height).Padding(1, 2).Render(s)
	}

	switch {
	case !snap.HasWishlist && snap.LastError != nil:
		return place(styles.DangerText.Render(describeError(m.tr, snap.LastError, i18n.ErrorLoadingWishlist)) + "\n\n" +
			m.keyHint(m.keys.Refresh.Help().Key, m.tr.T(i18n.Refresh), "esc", m.tr.T(i18n.Back)))
	case !snap.HasWishlist:
		return place(styles.InfoText.Render(m.tr.T(i18n.Loading)))
	}

	p := m.wishlistLayout(height)

	list := m.renderBox(m.tr.T(i18n.Items), m.renderItemList(p.listW-4, p.listH-3), p.listW, p.listH, true)
	detailTitle := ""
	if item, ok := m.selectedItem(); ok {
		detailTitle = truncate(item.Title, p.detailW-6)
	}
	detail := m.renderBox(detailTitle, m.detailViewport.View(), p.detailW, p.detailH, false)

	var body string
	if p.split {
		body = lipgloss.JoinHorizontal(lipgloss.Top, list, detail)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, list, detail)
	}

	return lipgloss.NewStyle().MaxHeight(height).Render(p.top + "\n" + body)
}

// renderWishlistTop renders the ad, title block and owner notice above the
// panes.
func (m Model) renderWishlistTop(width int) string {
	styles := m.theme.Styles()
	w := m.snapshot.Wishlist

	var b strings.Builder
	if m.height >= 30 {
		if ad := m.renderAd(ads.WishlistTop, width); ad != "" {
			b.WriteString(ad)
			b.WriteString("\n")
		}
	}

	line := styles.Text.Bold(true).Render(w.Title) + "  " +
		styles.MutedText.Render(m.tr.Tf(i18n.ByOwner, w.OwnerName))
	if !w.EventDate.IsZero() {
		line += "  " + styles.AccentText.Render("🎂 "+w.EventDate.Format(wishlist.EventDateLayout))
	}
	b.WriteString(" " + line + "\n")

	c := w.Count()
	b.WriteString(" " + styles.FaintText.Render(m.tr.Tf(i18n.ItemCounts, c.Total, c.Available+c.Open, c.Reserved, c.Purchased+c.Funded)))

	if desc := firstLine(w.Description); desc != "" {
		b.WriteString("\n " + styles.MutedText.Render(truncate(desc, width-2)))
	}
	if m.isOwner() {
		b.WriteString("\n " + styles.SuccessText.Render(truncate(m.tr.T(i18n.OwnerNotice), width-2)))
		b.WriteString("\n " + styles.FaintText.Render(m.tr.T(i18n.ShareLinkLabel)+": ") +
			styles.AccentText.Render(truncateMiddle(m.shareLink(), width-20)))
	}
	return b.String()
}

// renderItemList renders one row per item, keeping the selection visible.
func (m Model) renderItemList(width, height int) string {
	styles := m.theme.Styles()
	items := m.snapshot.Wishlist.Items
	if len(items) == 0 {
		hint := i18n.NoItemsVisitor
		if m.isOwner() {
			hint = i18n.NoItemsOwner
		}
		return styles.Text.Render(m.tr.T(i18n.NoItemsYet)) + "\n" + styles.MutedText.Render(m.tr.T(hint))
	}
	if height < 1 {
		height = 1
	}

	start := 0
	if m.selectedRow >= height {
		start = m.selectedRow - height + 1
	}
	end := start + height
	if end > len(items) {
		end = len(items)
	}

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, m.renderItemRow(items[i], i == m.selectedRow, width))
	}

	// Inline banner after the list when there is room for it.
	if ad := m.renderAd(ads.WishlistInline, width); ad != "" && height-len(rows) > lipgloss.Height(ad)+1 {
		rows = append(rows, "", ad)
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderItemRow(item wishlist.Item, selected bool, width int) string {
	styles := m.theme.Styles()
	badge := m.stateBadge(item)
	suffix := ""
	if item.IsPooled() {
		suffix = " " + m.tr.Percent(item.Progress())
	}
	titleWidth := width - lipgloss.Width(badge) - lipgloss.Width(suffix) - 2
	if titleWidth < 4 {
		titleWidth = 4
	}
	title := padRight(truncate(item.Title, titleWidth), titleWidth)
	if selected {
		return styles.Selected.Render("›"+title+suffix) + " " + badge
	}
	return styles.Text.Render(" "+title) + styles.MutedText.Render(suffix) + " " + badge
}

// renderItemDetail renders the detail pane for item.
func (m Model) renderItemDetail(item wishlist.Item, width int) string {
	styles := m.theme.Styles()
	wrap := lipgloss.NewStyle().Width(width)

	var b strings.Builder
	b.WriteString(m.stateBadge(item))
	if item.IsPooled() {
		b.WriteString("  " + styles.AccentText.Render(m.tr.T(i18n.PooledGift)))
	}
	b.WriteString("\n\n")

	if item.Description != "" {
		b.WriteString(wrap.Inherit(styles.Text).Render(item.Description))
		b.WriteString("\n\n")
	}

	switch item.State() {
	case wishlist.StatePurchased:
		b.WriteString(styles.SuccessText.Render(m.tr.Tf(i18n.PurchasedBy, item.PurchasedBy)))
		b.WriteString("\n\n")
	case wishlist.StateReserved:
		b.WriteString(styles.WarningText.Render(m.tr.Tf(i18n.ReservedBy, item.ReservedBy)))
		b.WriteString("\n\n")
	}

	if item.IsPooled() {
		b.WriteString(m.renderPooled(item, width))
		b.WriteString("\n")
	}

	if item.ProductURL != "" {
		b.WriteString(styles.MutedText.Render(m.tr.T(i18n.ViewProduct) + ": "))
		b.WriteString(styles.AccentText.Render(truncateMiddle(item.ProductURL, width-lipgloss.Width(m.tr.T(i18n.ViewProduct))-2)))
		b.WriteString("\n")
	}
	if item.ImageURL != "" {
		b.WriteString(styles.MutedText.Render(m.tr.T(i18n.ImageURL) + ": "))
		b.WriteString(styles.FaintText.Render(truncateMiddle(item.ImageURL, width-lipgloss.Width(m.tr.T(i18n.ImageURL))-2)))
		b.WriteString("\n")
	}

	if actions := m.itemActions(item); actions != "" {
		b.WriteString("\n")
		b.WriteString(actions)
	}
	return b.String()
}

// renderPooled renders a pooled gift's progress and contributions.
func (m Model) renderPooled(item wishlist.Item, width int) string {
	styles := m.theme.Styles()
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s   %s %s   %s %s\n",
		styles.MutedText.Render(m.tr.T(i18n.Raised)), styles.SuccessText.Render(m.tr.Money(item.CurrentAmount)),
		styles.MutedText.Render(m.tr.T(i18n.Goal)), styles.Text.Render(m.tr.Money(item.TargetAmount)),
		styles.MutedText.Render(m.tr.T(i18n.Remaining)), styles.Text.Render(m.tr.Money(item.Remaining())),
	)
	barWidth := width - 6
	if barWidth > 40 {
		barWidth = 40
	}
	b.WriteString(m.progressBar(item.Progress(), barWidth))
	b.WriteString(" " + styles.Text.Render(m.tr.Percent(item.Progress())))
	b.WriteString("\n\n")

	b.WriteString(styles.AccentText.Bold(true).Render(m.tr.T(i18n.Contributions)))
	b.WriteString("\n")
	if len(item.Contributions) == 0 {
		b.WriteString(styles.FaintText.Render(m.tr.T(i18n.NoContributions)))
		b.WriteString("\n")
		return b.String()
	}
	for _, c := range item.Contributions {
		b.WriteString("• " + styles.Text.Render(c.ContributorName) + "  " + styles.SuccessText.Render(m.tr.Money(c.Amount)))
		if c.Message != "" {
			b.WriteString("\n  " + styles.MutedText.Render(truncate(c.Message, width-4)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// itemActions lists the keys that apply to item in its current state.
func (m Model) itemActions(item wishlist.Item) string {
	k := m.keys
	var pairs []string
	switch {
	case item.Allows(wishlist.ActionReserve):
		pairs = append(pairs, k.Reserve.Help().Key, m.tr.T(i18n.ReserveItem))
	case item.Allows(wishlist.ActionUnreserve):
		pairs = append(pairs, k.Reserve.Help().Key, m.tr.T(i18n.UnreserveItem))
	}
	switch {
	case item.Allows(wishlist.ActionPurchase):
		pairs = append(pairs, k.Purchase.Help().Key, m.tr.T(i18n.MarkAsPurchased))
	case item.Allows(wishlist.ActionUnpurchase):
		pairs = append(pairs, k.Purchase.Help().Key, m.tr.T(i18n.UnmarkAsPurchased))
	}
	if item.Allows(wishlist.ActionContribute) {
		pairs = append(pairs, k.Contribute.Help().Key, m.tr.T(i18n.ContributeButton))
	}
	if m.isOwner() {
		pairs = append(pairs, k.EditItem.Help().Key, m.tr.T(i18n.Edit), k.Delete.Help().Key, m.tr.T(i18n.Delete))
	}
	return m.keyHint(pairs...)
}

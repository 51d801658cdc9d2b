package ui

import (
	"errors"
	"net/url"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/cumplesito/internal/api"
	"github.com/five82/cumplesito/internal/i18n"
	"github.com/five82/cumplesito/internal/wishlist"
)

// itemSubmittedMsg carries a locally valid item form. An empty itemID adds a
// new item.
type itemSubmittedMsg struct {
	itemID string
	input  wishlist.ItemInput
}

// autofillRequestMsg asks the model to scrape productURL.
type autofillRequestMsg struct {
	productURL string
}

// metadataMsg is the answer to an autofill request.
type metadataMsg struct {
	productURL string
	meta       api.Metadata
	err        error
}

type autofillStatus int

const (
	autofillIdle autofillStatus = iota
	autofillRunning
	autofillDone
	autofillFailed
	autofillBlocked
	autofillNeedsURL
)

// itemFormModal adds or edits an item. Owners can pull the title, description
// and image from the product page.
type itemFormModal struct {
	tr       *i18n.Translator
	itemID   string
	form     form
	autofill autofillStatus
}

func newItemFormModal(tr *i18n.Translator, item *wishlist.Item) itemFormModal {
	f := newForm(
		textField("title", i18n.ItemTitle, ""),
		textField("description", i18n.ItemDescription, ""),
		textField("productUrl", i18n.ProductURL, ""),
		textField("imageUrl", i18n.ImageURLOptional, ""),
		toggleField("itemType", i18n.TypePooled, ""),
		textField("targetAmount", i18n.TargetAmount, ""),
	)
	m := itemFormModal{tr: tr, form: f}
	if item != nil {
		m.itemID = item.ID
		f.setValue("title", item.Title)
		f.setValue("description", item.Description)
		f.setValue("productUrl", item.ProductURL)
		f.setValue("imageUrl", item.ImageURL)
		f.setChecked("itemType", item.IsPooled())
		if item.IsPooled() {
			f.setValue("targetAmount", tr.Number(item.TargetAmount))
		}
		m.form = f
	}
	return m
}

func (i itemFormModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case metadataMsg:
		if msg.productURL != i.form.value("productUrl") {
			return i, nil, false
		}
		i.applyMetadata(msg)
		return i, nil, false

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Escape):
			return i, nil, true
		case key.Matches(msg, keys.Autofill):
			return i.requestAutofill()
		}
		submit, cmd := i.form.handleKey(msg, keys)
		if !submit {
			return i, cmd, false
		}
		in, err := i.input()
		if err != nil {
			return i, nil, false
		}
		return i, emit(itemSubmittedMsg{itemID: i.itemID, input: in}), true
	}
	return i, nil, false
}

func (i itemFormModal) requestAutofill() (Modal, tea.Cmd, bool) {
	target := i.form.value("productUrl")
	if !isWebURL(target) {
		i.autofill = autofillNeedsURL
		return i, nil, false
	}
	i.autofill = autofillRunning
	return i, emit(autofillRequestMsg{productURL: target}), false
}

// applyMetadata copies whatever the scrape found over the current values.
func (i *itemFormModal) applyMetadata(msg metadataMsg) {
	if msg.err != nil {
		var soft *api.SoftError
		if errors.As(msg.err, &soft) && soft.Blocked {
			i.autofill = autofillBlocked
		} else {
			i.autofill = autofillFailed
		}
		return
	}
	if msg.meta.Title != "" {
		i.form.setValue("title", msg.meta.Title)
	}
	if msg.meta.Description != "" {
		i.form.setValue("description", msg.meta.Description)
	}
	if msg.meta.Image != "" {
		i.form.setValue("imageUrl", msg.meta.Image)
	}
	i.autofill = autofillDone
}

// input builds and validates the item, recording problems on the form.
func (i *itemFormModal) input() (wishlist.ItemInput, error) {
	i.form.clearErrors()
	in := wishlist.ItemInput{
		Title:       i.form.value("title"),
		Description: i.form.value("description"),
		ProductURL:  i.form.value("productUrl"),
		ImageURL:    i.form.value("imageUrl"),
		Type:        wishlist.TypeStandard,
	}
	if i.form.checked("itemType") {
		in.Type = wishlist.TypePooled
		if raw := i.form.value("targetAmount"); raw != "" {
			amount, err := i.tr.ParseAmount(raw)
			if err != nil {
				i.form.errors = wishlist.FieldErrors{"targetAmount": string(i18n.AmountInvalid)}
				return wishlist.ItemInput{}, err
			}
			in.TargetAmount = amount
		}
	}
	if err := in.Validate(); err != nil {
		if fe, ok := asFieldErrors(err); ok {
			i.form.errors = fe
		} else {
			i.form.err = describeError(i.tr, err, i18n.ErrorAddingItem)
		}
		return wishlist.ItemInput{}, err
	}
	return in, nil
}

func (i itemFormModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	tr := i.tr
	title := tr.T(i18n.AddNewItem)
	submit := tr.T(i18n.AddItemButton)
	if i.itemID != "" {
		title = tr.T(i18n.EditItem)
		submit = tr.T(i18n.UpdateItemButton)
	}

	var b strings.Builder
	b.WriteString(modalTitle(styles, title, 50))
	b.WriteString(i.form.view(tr, styles))
	b.WriteString("\n")
	if status := i.autofillLine(styles); status != "" {
		b.WriteString(status + "\n\n")
	}
	b.WriteString(styles.Key.Render("ctrl+f") + " " + styles.MutedText.Render(tr.T(i18n.Autofill)) + "   ")
	b.WriteString(styles.Key.Render("ctrl+s") + " " + styles.MutedText.Render(submit) + "   ")
	b.WriteString(styles.Key.Render("esc") + " " + styles.MutedText.Render(tr.T(i18n.Cancel)))
	return renderModalFrame(theme, b.String(), 62, width, height)
}

func (i itemFormModal) autofillLine(styles Styles) string {
	switch i.autofill {
	case autofillRunning:
		return styles.InfoText.Render(i.tr.T(i18n.Autofilling))
	case autofillDone:
		return styles.SuccessText.Render(i.tr.T(i18n.Autofilled))
	case autofillFailed:
		return styles.WarningText.Render(i.tr.T(i18n.MetadataFailed))
	case autofillBlocked:
		return styles.WarningText.Render(i.tr.T(i18n.MetadataBlocked))
	case autofillNeedsURL:
		return styles.DangerText.Render(i.tr.T(i18n.MetadataNeedsURL))
	}
	return ""
}

func isWebURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/five82/cumplesito/internal/api"
	"github.com/five82/cumplesito/internal/i18n"
	"github.com/five82/cumplesito/internal/wishlist"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keySave  = tea.KeyMsg{Type: tea.KeyCtrlS}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func TestFormFocusAndSubmit(t *testing.T) {
	keys := DefaultKeyMap(i18n.New(i18n.EN))
	f := newCreateForm("Sofía")

	if got := f.focusedName(); got != "title" {
		t.Fatalf("initial focus = %q, want title", got)
	}
	if got := f.value("ownerName"); got != "Sofía" {
		t.Fatalf("ownerName = %q, want prefilled name", got)
	}

	f.handleKey(runes("  Mis 31  "), keys)
	if got := f.value("title"); got != "Mis 31" {
		t.Fatalf("value(title) = %q, want trimmed", got)
	}

	if submit, _ := f.handleKey(keyEnter, keys); submit {
		t.Fatal("enter on a middle field submitted the form")
	}
	if got := f.focusedName(); got != "ownerName" {
		t.Fatalf("focus after enter = %q, want ownerName", got)
	}

	f.focusField(len(f.fields) - 1)
	if got := f.focusedName(); got != "allowAnonymousPurchase" {
		t.Fatalf("last field = %q", got)
	}
	f.handleKey(keySpace, keys)
	if !f.checked("allowAnonymousPurchase") {
		t.Fatal("space did not toggle the checkbox")
	}
	if submit, _ := f.handleKey(keyEnter, keys); !submit {
		t.Fatal("enter on the last field should submit")
	}

	f.handleKey(keyTab, keys)
	if got := f.focusedName(); got != "title" {
		t.Fatalf("tab from last field = %q, want wrap to title", got)
	}
	if submit, _ := f.handleKey(keySave, keys); !submit {
		t.Fatal("ctrl+s should submit from any field")
	}
}

func TestFormSetError(t *testing.T) {
	f := newLoginForm()
	f.busy = true

	f.setError(wishlist.FieldErrors{"email": wishlist.MsgInvalidEmail}, "ignored")
	if f.busy {
		t.Fatal("setError left the form busy")
	}
	if f.errors["email"] != wishlist.MsgInvalidEmail || f.err != "" {
		t.Fatalf("field error not recorded: errors=%v err=%q", f.errors, f.err)
	}

	f.setError(errors.New("boom"), "Login failed")
	if f.errors != nil || f.err != "Login failed" {
		t.Fatalf("form error not recorded: errors=%v err=%q", f.errors, f.err)
	}

	tr := i18n.New(i18n.EN)
	view := f.view(tr, GetTheme("").Styles())
	if !strings.Contains(view, "Login failed") {
		t.Fatalf("view does not show the form error:\n%s", view)
	}
}

func TestPasswordKeepsSpaces(t *testing.T) {
	f := newLoginForm()
	f.focusField(f.index("password"))
	f.handleKey(runes(" secret "), DefaultKeyMap(i18n.New(i18n.EN)))
	if got := f.raw("password"); got != " secret " {
		t.Fatalf("raw(password) = %q", got)
	}
}

func TestItemFormPooledTarget(t *testing.T) {
	tr := i18n.New(i18n.EN)
	modal := newItemFormModal(tr, nil)
	modal.form.setValue("title", "Bici")
	modal.form.setValue("description", "Para ir al trabajo")
	modal.form.setChecked("itemType", true)

	if _, err := modal.input(); err == nil {
		t.Fatal("pooled item without a target should not validate")
	}
	if modal.form.errors["targetAmount"] == "" {
		t.Fatalf("missing targetAmount error: %v", modal.form.errors)
	}

	modal.form.setValue("targetAmount", "$1.250,5")
	if _, err := modal.input(); err == nil {
		t.Fatal("malformed amount accepted")
	}

	modal.form.setValue("targetAmount", "1,250.50")
	in, err := modal.input()
	if err != nil {
		t.Fatalf("input() error = %v", err)
	}
	if in.Type != wishlist.TypePooled || in.TargetAmount.String() != "1250.5" {
		t.Fatalf("input() = %+v", in)
	}
}

func TestAutofillNeedsURL(t *testing.T) {
	keys := DefaultKeyMap(i18n.New(i18n.EN))
	var modal Modal = newItemFormModal(i18n.New(i18n.EN), nil)

	modal, cmd, _ := modal.Update(tea.KeyMsg{Type: tea.KeyCtrlF}, keys)
	if cmd != nil {
		t.Fatal("autofill without a URL should not request metadata")
	}
	if got := modal.(itemFormModal).autofill; got != autofillNeedsURL {
		t.Fatalf("autofill = %v, want needs URL", got)
	}

	withURL := modal.(itemFormModal)
	withURL.form.setValue("productUrl", "https://tienda.example/molino")
	modal, cmd, _ = withURL.Update(tea.KeyMsg{Type: tea.KeyCtrlF}, keys)
	if cmd == nil {
		t.Fatal("autofill with a URL should request metadata")
	}
	req, ok := cmd().(autofillRequestMsg)
	if !ok || req.productURL != "https://tienda.example/molino" {
		t.Fatalf("autofill request = %#v", req)
	}

	modal, _, _ = modal.Update(metadataMsg{productURL: req.productURL, meta: api.Metadata{Title: "Molino Hario", Description: "Cerámico"}}, keys)
	got := modal.(itemFormModal)
	if got.form.value("title") != "Molino Hario" || got.autofill != autofillDone {
		t.Fatalf("metadata not applied: title=%q status=%v", got.form.value("title"), got.autofill)
	}
}

func TestContributionAmountFollowsLanguage(t *testing.T) {
	item := wishlist.Item{
		ID:           "i1",
		Type:         wishlist.TypePooled,
		TargetAmount: decimal.NewFromInt(2000),
	}
	thousand := decimal.NewFromInt(1000)

	for _, lang := range i18n.Languages() {
		tr := i18n.New(lang)
		modal := newContributionModal(tr, item)
		modal.form.setValue("contributorName", "Ana")
		modal.form.setValue("amount", tr.Money(thousand))

		in, err := modal.input()
		if err != nil {
			t.Fatalf("%s input(%q) error = %v", lang, tr.Money(thousand), err)
		}
		if !in.Amount.Equal(thousand) {
			t.Fatalf("%s input(%q) amount = %s, want 1000", lang, tr.Money(thousand), in.Amount)
		}
	}

	tr := i18n.New(i18n.EN)
	modal := newContributionModal(tr, item)
	modal.form.setValue("contributorName", "Ana")
	modal.form.setValue("amount", "12,50")
	if in, err := modal.input(); err == nil {
		t.Fatalf("ambiguous amount accepted as %s", in.Amount)
	}
	if modal.form.errors["amount"] != string(i18n.AmountInvalid) {
		t.Fatalf("amount error = %q", modal.form.errors["amount"])
	}
}

func TestQuickAmountFillsLocalizedValue(t *testing.T) {
	item := wishlist.Item{
		ID:           "i1",
		Type:         wishlist.TypePooled,
		TargetAmount: decimal.NewFromInt(2000),
	}
	tr := i18n.New(i18n.ES)
	var modal Modal = newContributionModal(tr, item)
	modal, _, _ = modal.Update(tea.KeyMsg{Type: tea.KeyCtrlN}, DefaultKeyMap(i18n.New(i18n.EN)))

	c := modal.(contributionModal)
	c.form.setValue("contributorName", "Ana")
	in, err := c.input()
	if err != nil {
		t.Fatalf("quick amount %q rejected: %v", c.form.value("amount"), err)
	}
	if !in.Amount.Equal(c.quick[0]) {
		t.Fatalf("amount = %s, want %s", in.Amount, c.quick[0])
	}
}

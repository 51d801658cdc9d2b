package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/five82/cumplesito/internal/i18n"
	"github.com/five82/cumplesito/internal/wishlist"
)

// nameSubmittedMsg carries the visitor name for a reserve or purchase.
type nameSubmittedMsg struct {
	action wishlist.Action
	itemID string
	name   string
}

// contributionSubmittedMsg carries a locally valid contribution.
type contributionSubmittedMsg struct {
	itemID string
	input  wishlist.ContributionInput
}

// nameModal asks who is reserving or buying an item. The name may be left
// empty only when the wishlist allows anonymous purchases.
type nameModal struct {
	tr             *i18n.Translator
	action         wishlist.Action
	item           wishlist.Item
	allowAnonymous bool
	input          textinput.Model
	err            string
}

func newNameModal(tr *i18n.Translator, action wishlist.Action, item wishlist.Item, allowAnonymous bool) nameModal {
	input := newInput(100)
	input.Focus()
	return nameModal{tr: tr, action: action, item: item, allowAnonymous: allowAnonymous, input: input}
}

func (n nameModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return n, nil, false
	}
	switch {
	case key.Matches(keyMsg, keys.Escape):
		return n, nil, true
	case key.Matches(keyMsg, keys.Confirm):
		name := strings.TrimSpace(n.input.Value())
		if name == "" && !n.allowAnonymous {
			n.err = n.tr.T(i18n.NameRequired)
			return n, nil, false
		}
		return n, emit(nameSubmittedMsg{action: n.action, itemID: n.item.ID, name: name}), true
	}
	var cmd tea.Cmd
	n.input, cmd = n.input.Update(keyMsg)
	n.err = ""
	return n, cmd, false
}

func (n nameModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	title := n.tr.T(i18n.ConfirmReserve)
	if n.action == wishlist.ActionPurchase {
		title = n.tr.T(i18n.ConfirmPurchase)
	}
	label := i18n.YourNameInput
	if n.allowAnonymous {
		label = i18n.NameOptional
	}

	var b strings.Builder
	b.WriteString(modalTitle(styles, title, 40))
	b.WriteString(styles.AccentText.Render(truncate(n.item.Title, 44)))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render(n.tr.T(label)))
	b.WriteString("\n")
	b.WriteString(n.input.View())
	b.WriteString("\n")
	if n.err != "" {
		b.WriteString(styles.DangerText.Render(n.err))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.Key.Render("enter") + " " + styles.MutedText.Render(n.tr.T(i18n.Confirm)) + "   ")
	b.WriteString(styles.Key.Render("esc") + " " + styles.MutedText.Render(n.tr.T(i18n.Cancel)))
	return renderModalFrame(theme, b.String(), 50, width, height)
}

// contributionModal collects a pledge toward a pooled gift and checks it
// against the remaining balance before anything is sent.
type contributionModal struct {
	tr    *i18n.Translator
	item  wishlist.Item
	form  form
	quick []decimal.Decimal
	pick  int
}

func newContributionModal(tr *i18n.Translator, item wishlist.Item) contributionModal {
	f := newForm(
		textField("contributorName", i18n.ContributorName, i18n.YourNamePlaceholder),
		textField("amount", i18n.Amount, ""),
		textField("message", i18n.MessageOptional, ""),
	)
	return contributionModal{tr: tr, item: item, form: f, quick: wishlist.QuickAmounts(item), pick: -1}
}

func (c contributionModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil, false
	}
	switch {
	case key.Matches(keyMsg, keys.Escape):
		return c, nil, true
	case key.Matches(keyMsg, keys.QuickAmount):
		if len(c.quick) > 0 {
			c.pick = (c.pick + 1) % len(c.quick)
			c.form.setValue("amount", c.tr.Number(c.quick[c.pick]))
		}
		return c, nil, false
	}

	submit, cmd := c.form.handleKey(keyMsg, keys)
	if !submit {
		return c, cmd, false
	}

	in, err := c.input()
	if err != nil {
		return c, nil, false
	}
	return c, emit(contributionSubmittedMsg{itemID: c.item.ID, input: in}), true
}

// input parses and validates the form, recording any problem on the form.
func (c *contributionModal) input() (wishlist.ContributionInput, error) {
	c.form.clearErrors()
	amount, err := c.tr.ParseAmount(c.form.value("amount"))
	if err != nil {
		c.form.errors = wishlist.FieldErrors{"amount": string(i18n.AmountInvalid)}
		return wishlist.ContributionInput{}, err
	}
	in := wishlist.ContributionInput{
		ContributorName: c.form.value("contributorName"),
		Amount:          amount,
		Message:         c.form.value("message"),
	}
	if err := in.Validate(c.item); err != nil {
		if fe, ok := asFieldErrors(err); ok {
			c.form.errors = fe
		} else {
			c.form.err = describeError(c.tr, err, i18n.ErrorContribute)
		}
		return wishlist.ContributionInput{}, err
	}
	return in, nil
}

func (c contributionModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	tr := c.tr

	var b strings.Builder
	b.WriteString(modalTitle(styles, tr.T(i18n.ContributeTitle), 44))
	b.WriteString(styles.AccentText.Render(truncate(c.item.Title, 48)))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(tr.T(i18n.Raised)+" ") + styles.Text.Render(tr.Money(c.item.CurrentAmount)))
	b.WriteString(styles.MutedText.Render("  "+tr.T(i18n.Goal)+" ") + styles.Text.Render(tr.Money(c.item.TargetAmount)))
	b.WriteString(styles.MutedText.Render("  "+tr.T(i18n.Remaining)+" ") + styles.WarningText.Render(tr.Money(c.item.Remaining())))
	b.WriteString("\n\n")

	if len(c.quick) > 0 {
		chips := make([]string, 0, len(c.quick))
		for i, amount := range c.quick {
			chip := tr.Money(amount)
			if i == c.pick {
				chips = append(chips, styles.Selected.Render(" "+chip+" "))
			} else {
				chips = append(chips, styles.MutedText.Render(" "+chip+" "))
			}
		}
		b.WriteString(styles.FaintText.Render(tr.T(i18n.QuickAmounts)+" (ctrl+n)") + "\n")
		b.WriteString(strings.Join(chips, " "))
		b.WriteString("\n\n")
	}

	b.WriteString(c.form.view(tr, styles))
	b.WriteString("\n")
	b.WriteString(styles.Key.Render("ctrl+s") + " " + styles.MutedText.Render(tr.T(i18n.ContributeButton)) + "   ")
	b.WriteString(styles.Key.Render("esc") + " " + styles.MutedText.Render(tr.T(i18n.Cancel)))
	return renderModalFrame(theme, b.String(), 56, width, height)
}

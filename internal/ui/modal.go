package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/cumplesito/internal/i18n"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// emit wraps a message in a command.
func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// confirmModal asks a yes/no question. Confirming sends onConfirm back to
// the model.
type confirmModal struct {
	tr        *i18n.Translator
	title     string
	message   string
	onConfirm tea.Msg
}

func newConfirmModal(tr *i18n.Translator, title, message string, onConfirm tea.Msg) confirmModal {
	return confirmModal{tr: tr, title: title, message: message, onConfirm: onConfirm}
}

func (c confirmModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil, false
	}
	switch {
	case key.Matches(keyMsg, keys.Confirm), keyMsg.String() == "y":
		return c, emit(c.onConfirm), true
	case key.Matches(keyMsg, keys.Escape), keyMsg.String() == "n":
		return c, nil, true
	}
	return c, nil, false
}

func (c confirmModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	var b strings.Builder
	b.WriteString(modalTitle(styles, c.title, 36))
	b.WriteString(styles.Text.Render(c.message))
	b.WriteString("\n\n")
	b.WriteString(styles.Key.Render("y/enter") + " " + styles.MutedText.Render(c.tr.T(i18n.Confirm)) + "   ")
	b.WriteString(styles.Key.Render("n/esc") + " " + styles.MutedText.Render(c.tr.T(i18n.Cancel)))
	return renderModalFrame(theme, b.String(), 44, width, height)
}

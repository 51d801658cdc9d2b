package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/cumplesito/internal/i18n"
	"github.com/five82/cumplesito/internal/wishlist"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldSecret
	fieldToggle
)

// formField is one labelled input. name matches the form tag used by the
// wishlist validators so FieldErrors land on the right field.
type formField struct {
	name        string
	label       i18n.Key
	placeholder i18n.Key
	help        i18n.Key
	kind        fieldKind
	input       textinput.Model
	on          bool
}

// form is a vertical stack of fields with one focused at a time.
type form struct {
	fields []formField
	focus  int
	errors wishlist.FieldErrors
	err    string
	busy   bool
}

func newInput(limit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.CharLimit = limit
	ti.Width = 48
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

func textField(name string, label, placeholder i18n.Key) formField {
	return formField{name: name, label: label, placeholder: placeholder, kind: fieldText, input: newInput(500)}
}

func secretField(name string, label i18n.Key) formField {
	f := formField{name: name, label: label, kind: fieldSecret, input: newInput(128)}
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '•'
	return f
}

func toggleField(name string, label, help i18n.Key) formField {
	return formField{name: name, label: label, help: help, kind: fieldToggle}
}

func newForm(fields ...formField) form {
	f := form{fields: fields}
	f.focusField(0)
	return f
}

func (f *form) index(name string) int {
	for i, field := range f.fields {
		if field.name == name {
			return i
		}
	}
	return -1
}

func (f form) value(name string) string {
	if i := f.index(name); i >= 0 {
		return strings.TrimSpace(f.fields[i].input.Value())
	}
	return ""
}

// raw returns the untrimmed value; passwords keep their spaces.
func (f form) raw(name string) string {
	if i := f.index(name); i >= 0 {
		return f.fields[i].input.Value()
	}
	return ""
}

func (f *form) setValue(name, value string) {
	if i := f.index(name); i >= 0 {
		f.fields[i].input.SetValue(value)
	}
}

func (f form) checked(name string) bool {
	if i := f.index(name); i >= 0 {
		return f.fields[i].on
	}
	return false
}

func (f *form) setChecked(name string, on bool) {
	if i := f.index(name); i >= 0 {
		f.fields[i].on = on
	}
}

func (f *form) focusField(idx int) {
	if len(f.fields) == 0 {
		return
	}
	idx = (idx + len(f.fields)) % len(f.fields)
	f.focus = idx
	for i := range f.fields {
		if i == idx && f.fields[i].kind != fieldToggle {
			f.fields[i].input.Focus()
		} else {
			f.fields[i].input.Blur()
		}
	}
}

func (f form) onLast() bool {
	return f.focus == len(f.fields)-1
}

func (f form) focusedName() string {
	if f.focus < len(f.fields) {
		return f.fields[f.focus].name
	}
	return ""
}

// setError records a submit failure: per-field messages when err is
// FieldErrors, a form-level message otherwise.
func (f *form) setError(err error, fallback string) {
	f.busy = false
	f.errors = nil
	f.err = ""
	if fe, ok := asFieldErrors(err); ok {
		f.errors = fe
		return
	}
	f.err = fallback
}

func (f *form) clearErrors() {
	f.errors = nil
	f.err = ""
}

// handleKey moves focus and edits the focused field. It reports true when the
// user asked to submit.
func (f *form) handleKey(msg tea.KeyMsg, keys keyMap) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Submit):
		return true, nil
	case key.Matches(msg, keys.Confirm):
		if f.onLast() {
			return true, nil
		}
		f.focusField(f.focus + 1)
		return false, nil
	case key.Matches(msg, keys.Tab):
		f.focusField(f.focus + 1)
		return false, nil
	case key.Matches(msg, keys.ShiftTab):
		f.focusField(f.focus - 1)
		return false, nil
	}

	field := &f.fields[f.focus]
	if field.kind == fieldToggle {
		if key.Matches(msg, keys.Toggle) {
			field.on = !field.on
		}
		return false, nil
	}
	var cmd tea.Cmd
	field.input, cmd = field.input.Update(msg)
	return false, cmd
}

// view renders the form fields with their labels and errors.
func (f form) view(tr *i18n.Translator, styles Styles) string {
	var b strings.Builder
	for i, field := range f.fields {
		focused := i == f.focus
		label := styles.MutedText.Render(tr.T(field.label))
		if focused {
			label = styles.AccentText.Bold(true).Render(tr.T(field.label))
		}

		if field.kind == fieldToggle {
			box := "[ ]"
			if field.on {
				box = "[x]"
			}
			marker := "  "
			if focused {
				marker = styles.AccentText.Render("› ")
			}
			b.WriteString(marker + styles.Text.Render(box) + " " + label + "\n")
			if field.help != "" {
				b.WriteString("    " + styles.FaintText.Render(tr.T(field.help)) + "\n")
			}
		} else {
			input := field.input
			if field.placeholder != "" {
				input.Placeholder = tr.T(field.placeholder)
			}
			b.WriteString(label + "\n")
			b.WriteString(input.View() + "\n")
		}
		if msg, ok := f.errors[field.name]; ok {
			b.WriteString(styles.DangerText.Render(tr.Field(msg)) + "\n")
		}
		if i < len(f.fields)-1 {
			b.WriteString("\n")
		}
	}
	if f.err != "" {
		b.WriteString("\n" + styles.DangerText.Render(f.err) + "\n")
	}
	return b.String()
}

package i18n

import (
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Lang is a supported interface language.
type Lang string

const (
	ES Lang = "es"
	EN Lang = "en"
)

// Default is the language used when none is chosen.
const Default = ES

var order = []Lang{ES, EN}

// Languages lists the supported languages in selector order.
func Languages() []Lang {
	return append([]Lang(nil), order...)
}

// Parse maps a tag such as "en", "EN" or "es-MX" to a supported language,
// falling back to Default.
func Parse(raw string) Lang {
	tag := strings.ToLower(strings.TrimSpace(raw))
	if i := strings.IndexAny(tag, "-_"); i > 0 {
		tag = tag[:i]
	}
	switch Lang(tag) {
	case ES, EN:
		return Lang(tag)
	}
	return Default
}

// Name is the language's own name, as shown in the selector.
func (l Lang) Name() string {
	if l == EN {
		return "English"
	}
	return "Español"
}

// Next cycles to the following language.
func (l Lang) Next() Lang {
	for i, candidate := range order {
		if candidate == l {
			return order[(i+1)%len(order)]
		}
	}
	return Default
}

func (l Lang) tag() language.Tag {
	if l == EN {
		return language.English
	}
	return language.Spanish
}

func tableFor(l Lang) map[Key]string {
	if l == EN {
		return english
	}
	return spanish
}

// Translator resolves keys for the current language. It is safe for
// concurrent use; the UI switches language while background intents read
// the anonymous label. Build one with New.
type Translator struct {
	mu      sync.RWMutex
	lang    Lang
	table   map[Key]string
	printer *message.Printer
}

// New returns a Translator for lang.
func New(lang Lang) *Translator {
	t := &Translator{}
	t.SetLang(lang)
	return t
}

// SetLang switches the language.
func (t *Translator) SetLang(lang Lang) {
	lang = Parse(string(lang))
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lang = lang
	t.table = tableFor(lang)
	t.printer = message.NewPrinter(lang.tag())
}

// Lang reports the current language.
func (t *Translator) Lang() Lang {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lang
}

// T returns the string for key. Missing entries fall back to English, then
// to the key itself.
func (t *Translator) T(key Key) string {
	t.mu.RLock()
	table := t.table
	t.mu.RUnlock()
	if s, ok := table[key]; ok {
		return s
	}
	if s, ok := english[key]; ok {
		return s
	}
	return string(key)
}

// Tf formats the string for key with args.
func (t *Translator) Tf(key Key, args ...any) string {
	return fmt.Sprintf(t.T(key), args...)
}

// Field translates a validation message key attached to a form field.
func (t *Translator) Field(msg string) string {
	if msg == "" {
		return ""
	}
	return t.T(Key(msg))
}

// Money formats an amount with the language's separators and a "$" prefix.
// Whole amounts drop the cents.
func (t *Translator) Money(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	f := amount.Round(2).InexactFloat64()
	p := t.currentPrinter()
	if amount.Equal(amount.Truncate(0)) {
		return sign + "$" + p.Sprintf("%.0f", f)
	}
	return sign + "$" + p.Sprintf("%.2f", f)
}

// Percent formats a 0..100 progress value without decimals.
func (t *Translator) Percent(pct float64) string {
	return t.currentPrinter().Sprintf("%.0f%%", pct)
}

func (t *Translator) currentPrinter() *message.Printer {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.printer
}

package i18n

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/five82/cumplesito/internal/wishlist"
)

func TestTablesCoverSameKeys(t *testing.T) {
	for key := range english {
		if _, ok := spanish[key]; !ok {
			t.Errorf("spanish table missing %q", key)
		}
	}
	for key := range spanish {
		if _, ok := english[key]; !ok {
			t.Errorf("english table missing %q", key)
		}
	}
}

func TestValidationKeysResolve(t *testing.T) {
	msgs := []string{
		wishlist.MsgRequired,
		wishlist.MsgInvalidEmail,
		wishlist.MsgInvalidURL,
		wishlist.MsgInvalidDate,
		wishlist.MsgPasswordTooShort,
		wishlist.MsgAmountPositive,
		wishlist.MsgInvalid,
	}
	for _, lang := range Languages() {
		tr := New(lang)
		for _, msg := range msgs {
			if got := tr.Field(msg); got == msg || got == "" {
				t.Errorf("%s: Field(%q) = %q, want a translation", lang, msg, got)
			}
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Lang
	}{
		{"es", ES},
		{"EN", EN},
		{" en-US ", EN},
		{"es_MX", ES},
		{"fr", ES},
		{"", ES},
	}
	for _, tt := range tests {
		if got := Parse(tt.in); got != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNextCycles(t *testing.T) {
	if got := ES.Next(); got != EN {
		t.Fatalf("ES.Next() = %q", got)
	}
	if got := EN.Next(); got != ES {
		t.Fatalf("EN.Next() = %q", got)
	}
	if ES.Name() != "Español" || EN.Name() != "English" {
		t.Fatalf("unexpected names %q %q", ES.Name(), EN.Name())
	}
}

func TestTranslate(t *testing.T) {
	es := New(ES)
	en := New(EN)
	if got := es.T(Anonymous); got != "Anónimo" {
		t.Fatalf("es anonymous = %q", got)
	}
	if got := en.T(Anonymous); got != "Anonymous" {
		t.Fatalf("en anonymous = %q", got)
	}
	if got := es.T(Autofill); got != "Auto-llenar" {
		t.Fatalf("es autofill = %q", got)
	}
	if got := en.Tf(PurchasedBy, "Ana"); got != "Purchased by Ana" {
		t.Fatalf("en purchasedBy = %q", got)
	}
	if got := es.T(Key("noSuchKey")); got != "noSuchKey" {
		t.Fatalf("unknown key = %q", got)
	}
}

func TestMoney(t *testing.T) {
	tests := []struct {
		lang Lang
		in   string
		want string
	}{
		{EN, "25", "$25"},
		{EN, "12.5", "$12.50"},
		{EN, "1234.5", "$1,234.50"},
		{EN, "-3", "-$3"},
		{ES, "25", "$25"},
		{ES, "12.5", "$12,50"},
	}
	for _, tt := range tests {
		got := New(tt.lang).Money(decimal.RequireFromString(tt.in))
		if got != tt.want {
			t.Errorf("%s Money(%s) = %q, want %q", tt.lang, tt.in, got, tt.want)
		}
	}
}

func TestSetLang(t *testing.T) {
	tr := New(EN)
	tr.SetLang(ES)
	if tr.Lang() != ES || tr.T(Cancel) != "Cancelar" {
		t.Fatalf("SetLang did not switch: %q %q", tr.Lang(), tr.T(Cancel))
	}
	if got := tr.Money(decimal.RequireFromString("12.5")); got != "$12,50" {
		t.Fatalf("money after switch = %q", got)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		lang    Lang
		in      string
		want    string
		wantErr bool
	}{
		{EN, "$1,000", "1000", false},
		{EN, "1.000", "", true},
		{EN, "12,50", "", true},
		{EN, "1,000.50", "1000.5", false},
		{EN, "12.5", "12.5", false},
		{EN, "225", "225", false},
		{EN, "1,00", "", true},
		{ES, "$1.000", "1000", false},
		{ES, "1.000", "1000", false},
		{ES, "12,50", "12.5", false},
		{ES, "1,000.50", "", true},
		{ES, "1.250,5", "1250.5", false},
		{ES, "12.5", "", true},
		{EN, "", "", true},
		{EN, "$", "", true},
		{EN, "-5", "-5", false},
		{EN, "abc", "", true},
	}
	for _, tt := range tests {
		got, err := New(tt.lang).ParseAmount(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%s ParseAmount(%q) = %s, want error", tt.lang, tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s ParseAmount(%q) error = %v", tt.lang, tt.in, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("%s ParseAmount(%q) = %s, want %s", tt.lang, tt.in, got, tt.want)
		}
	}
}

func TestParseAmountReadsMoney(t *testing.T) {
	for _, lang := range Languages() {
		tr := New(lang)
		for _, in := range []string{"1000", "1234.5", "25", "1000000.25"} {
			want := decimal.RequireFromString(in)
			for _, shown := range []string{tr.Money(want), tr.Number(want)} {
				got, err := tr.ParseAmount(shown)
				if err != nil || !got.Equal(want) {
					t.Errorf("%s ParseAmount(%q) = %s, %v; want %s", lang, shown, got, err, want)
				}
			}
		}
	}
}

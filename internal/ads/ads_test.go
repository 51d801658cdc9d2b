package ads

import "testing"

func TestActive(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{"disabled", Config{PublisherID: "ca-pub-1"}, false},
		{"enabled without id", Config{Enabled: true}, false},
		{"enabled with placeholder", Config{Enabled: true, PublisherID: PlaceholderPublisher}, false},
		{"enabled with id", Config{Enabled: true, PublisherID: "ca-pub-1234"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Active(); got != tt.want {
				t.Fatalf("Active() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBannerPlaceholder(t *testing.T) {
	b := Config{}.Banner(HomeTop, 100)
	if b.Live {
		t.Fatal("disabled config produced a live banner")
	}
	if b.Size != Medium || b.Detail != "728x90" {
		t.Fatalf("unexpected banner %+v", b)
	}
	if b.SlotID != "1234567890" {
		t.Fatalf("slot id = %q", b.SlotID)
	}
}

func TestBannerLive(t *testing.T) {
	cfg := Config{Enabled: true, PublisherID: "ca-pub-42", SlotIDs: map[Slot]string{MyListsTop: "777"}}
	b := cfg.Banner(MyListsTop, 200)
	if !b.Live || b.Size != Large {
		t.Fatalf("unexpected banner %+v", b)
	}
	if b.Detail != "ca-pub-42 · 777" {
		t.Fatalf("detail = %q", b.Detail)
	}
	if got := cfg.ScriptURL(); got != "https://pagead2.googlesyndication.com/pagead/js/adsbygoogle.js?client=ca-pub-42" {
		t.Fatalf("script url = %q", got)
	}
}

func TestInlineAlwaysSmall(t *testing.T) {
	if b := (Config{}).Banner(WishlistInline, 300); b.Size != Small {
		t.Fatalf("inline size = %v", b.Size)
	}
	if SizeFor(40) != Small {
		t.Fatal("narrow terminal should get the small size")
	}
}

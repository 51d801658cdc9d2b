package ui

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"Molino de café", 20, "Molino de café"},
		{"Molino de café manual", 10, "Molino ..."},
		{"  padded  ", 0, "padded"},
		{"abcdef", 3, "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.limit); got != tt.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestTruncateMiddle(t *testing.T) {
	got := truncateMiddle("http://localhost:5173/wishlist/0123456789", 15)
	if got != "http://…3456789" {
		t.Fatalf("truncateMiddle = %q, want %q", got, "http://…3456789")
	}
	if got := truncateMiddle("short", 15); got != "short" {
		t.Fatalf("truncateMiddle(short) = %q", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("año", 5); got != "año  " {
		t.Fatalf("padRight = %q, want %q", got, "año  ")
	}
	if got := padRight("long", 2); got != "long" {
		t.Fatalf("padRight shorter width = %q", got)
	}
}

func TestFirstLine(t *testing.T) {
	if got := firstLine("\n  \nhola\nmundo"); got != "hola" {
		t.Fatalf("firstLine = %q, want hola", got)
	}
}

package util

import "testing"

func TestDedupKey(t *testing.T) {
	if DedupKey("Bohemian Rhapsody", "Queen") != DedupKey("  BOHEMIAN RHAPSODY ", "queen") {
		t.Fatal("dedup key should ignore case and surrounding whitespace")
	}
	if DedupKey("Song", "Artist A") == DedupKey("Song", "Artist B") {
		t.Fatal("different artists must produce different keys")
	}
}

func TestStripPunctuation(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"can't stop the feeling!", "cant stop the feeling"},
		{"rock & roll", "rock roll"},
		{"plain words", "plain words"},
		{"!!!", ""},
	}
	for _, tc := range cases {
		if got := StripPunctuation(tc.input); got != tc.want {
			t.Fatalf("StripPunctuation(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("hello", 10); got != "hello" {
		t.Fatalf("got %q, want unchanged", got)
	}
	if got := TruncateString("hello world", 5); got != "hello..." {
		t.Fatalf("got %q, want truncated with ellipsis", got)
	}
}

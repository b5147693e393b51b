package identity

import "testing"

func TestExtractIDCanonicalHosts(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"realsee.ai", "https://realsee.ai/Ae44XBBg", "Ae44XBBg"},
		{"realsee.com", "https://realsee.com/KqwPdxxE", "KqwPdxxE"},
		{"subdomain", "https://www.realsee.ai/Ae44XBBg", "Ae44XBBg"},
		{"deeper path", "https://realsee.ai/Ae44XBBg/detail", "Ae44XBBg"},
		{"http scheme", "http://realsee.ai/Ae44XBBg", "Ae44XBBg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractID(tt.url); got != tt.want {
				t.Errorf("ExtractID(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestExtractIDStableAcrossDecoration(t *testing.T) {
	base := ExtractID("https://realsee.ai/Ae44XBBg")
	variants := []string{
		"https://realsee.ai/Ae44XBBg/",
		"https://realsee.ai/Ae44XBBg?entry=share",
		"https://realsee.ai/Ae44XBBg?entry=share&lang=en",
		"https://realsee.ai/Ae44XBBg#start",
	}
	for _, url := range variants {
		if got := ExtractID(url); got != base {
			t.Errorf("ExtractID(%q) = %q, want %q", url, got, base)
		}
	}
}

func TestExtractIDFallback(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"mirror host", "https://tours.example.com/view/Zx81Qm4T", "Zx81Qm4T"},
		{"trailing slash", "https://tours.example.com/Zx81Qm4T/", "Zx81Qm4T"},
		{"query ignored", "https://tours.example.com/Zx81Qm4T?x=1", "Zx81Qm4T"},
		{"too short", "https://tours.example.com/ab1", ""},
		{"empty", "", ""},
		{"no id", "https://example.com/", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractID(tt.url); got != tt.want {
				t.Errorf("ExtractID(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

package fileutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteJSONRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.json")

	in := map[string]any{"id": "Ae44XBBg", "order": float64(3)}
	if err := WriteJSON(path, in); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.HasSuffix(string(raw), "\n") {
		t.Error("output missing trailing newline")
	}
	if !strings.Contains(string(raw), "  \"id\"") {
		t.Error("output not indented")
	}

	var out map[string]any
	if err := ReadJSON(path, &out); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if out["id"] != in["id"] || out["order"] != in["order"] {
		t.Errorf("round trip mismatch: %v", out)
	}
}

func TestReadJSONMissingFile(t *testing.T) {
	var out map[string]any
	err := ReadJSON(filepath.Join(t.TempDir(), "absent.json"), &out)
	if !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestSiteRelativeBase(t *testing.T) {
	tests := []struct {
		dir  string
		want string
	}{
		{"/srv/site/public/assets/vr-covers", "/assets/vr-covers"},
		{"/home/ci/site/public/assets/carousel", "/assets/carousel"},
		{"/data/covers", "/covers"},
	}
	for _, tt := range tests {
		if got := SiteRelativeBase(tt.dir); got != tt.want {
			t.Errorf("SiteRelativeBase(%q) = %q, want %q", tt.dir, got, tt.want)
		}
	}
}

func TestRemoveSiblings(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"abc123.png", "abc123.jpg", "other.jpg"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	if err := RemoveSiblings(dir, "abc123", "abc123.jpg"); err != nil {
		t.Fatalf("RemoveSiblings: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "abc123.png")); !os.IsNotExist(err) {
		t.Error("stale sibling not removed")
	}
	for _, name := range []string{"abc123.jpg", "other.jpg"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s should survive: %v", name, err)
		}
	}
}

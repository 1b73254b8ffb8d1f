package tui

import "testing"

func TestShortcutForOS(t *testing.T) {
	save := ShortcutKey{Default: "^s", PerOS: map[OSType]string{OSMac: "⌃s"}}

	if got := save.forOS(OSMac); got != "⌃s" {
		t.Errorf("expected mac label, got %q", got)
	}
	if got := save.forOS(OSLinux); got != "^s" {
		t.Errorf("expected default label on linux, got %q", got)
	}
	if got := (ShortcutKey{Default: "q"}).forOS(OSWindows); got != "q" {
		t.Errorf("expected default label without overrides, got %q", got)
	}
	if got := osFromGOOS("plan9"); got != OSUnknown {
		t.Errorf("expected unknown OS, got %d", got)
	}
	if got := osFromGOOS("darwin"); got != OSMac {
		t.Errorf("expected mac, got %d", got)
	}
}

func TestShortcutWarning(t *testing.T) {
	tests := []struct {
		os       OSType
		shortcut string
		want     string
	}{
		{OSLinux, "^s", "(may need: stty -ixon)"},
		{OSMac, "^s", ""},
		{OSWindows, "shift+tab", "(terminal dependent)"},
		{OSLinux, "y", ""},
		{OSUnknown, "^s", ""},
	}

	for _, tt := range tests {
		if got := shortcutWarning(tt.os, tt.shortcut); got != tt.want {
			t.Errorf("shortcutWarning(%d, %q) = %q, want %q", tt.os, tt.shortcut, got, tt.want)
		}
	}
}

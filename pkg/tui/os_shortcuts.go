package tui

import (
	"runtime"
)

// OSType identifies the host platform for shortcut labels
type OSType int

const (
	OSMac OSType = iota
	OSLinux
	OSWindows
	OSUnknown
)

var goosTypes = map[string]OSType{
	"darwin":  OSMac,
	"linux":   OSLinux,
	"windows": OSWindows,
}

// GetOS returns the platform the binary is running on
func GetOS() OSType {
	return osFromGOOS(runtime.GOOS)
}

func osFromGOOS(goos string) OSType {
	if t, ok := goosTypes[goos]; ok {
		return t
	}
	return OSUnknown
}

// ShortcutKey is the help label of one shortcut, with optional per-platform
// spellings
type ShortcutKey struct {
	Default string
	PerOS   map[OSType]string
}

// Get returns the label for the current platform
func (s ShortcutKey) Get() string {
	return s.forOS(GetOS())
}

func (s ShortcutKey) forOS(os OSType) string {
	if label := s.PerOS[os]; label != "" {
		return label
	}
	return s.Default
}

// terminalQuirks maps shortcut labels that terminals commonly intercept to a
// note shown next to them
var terminalQuirks = map[OSType]map[string]string{
	OSLinux: {
		// XON/XOFF flow control swallows ctrl+s
		"^s":     "(may need: stty -ixon)",
		"ctrl+s": "(may need: stty -ixon)",
	},
	OSWindows: {
		"shift+tab": "(terminal dependent)",
		"backtab":   "(terminal dependent)",
	},
}

// GetWithWarning returns the label for the current platform and its quirk
// note, if any
func (s ShortcutKey) GetWithWarning() (shortcut string, warning string) {
	os := GetOS()
	shortcut = s.forOS(os)
	return shortcut, shortcutWarning(os, shortcut)
}

func shortcutWarning(os OSType, shortcut string) string {
	return terminalQuirks[os][shortcut]
}

// Shortcuts that get platform-specific help labels
var Shortcuts = struct {
	Save ShortcutKey
	Prev ShortcutKey
}{
	Save: ShortcutKey{Default: "^s", PerOS: map[OSType]string{OSMac: "⌃s"}},
	Prev: ShortcutKey{Default: "↑/shift+tab"},
}

// helpLabel returns a key.WithHelp pair, appending the quirk note to desc
func helpLabel(s ShortcutKey, desc string) (string, string) {
	shortcut, warning := s.GetWithWarning()
	if warning == "" {
		return shortcut, desc
	}
	return shortcut, desc + " " + warning
}

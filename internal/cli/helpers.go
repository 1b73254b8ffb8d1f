package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ConfirmFrom prompts on out and reads the answer from in
func ConfirmFrom(in io.Reader, out io.Writer, prompt string, defaultYes bool) (bool, error) {
	if skipConfirm {
		return true, nil
	}

	suffix := " [y/N]: "
	if defaultYes {
		suffix = " [Y/n]: "
	}

	fmt.Fprint(out, prompt+suffix)

	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false, err
	}

	response = strings.ToLower(strings.TrimSpace(response))

	if response == "" {
		return defaultYes, nil
	}

	return response == "y" || response == "yes", nil
}

// statusLevel is the kind of a one-line status message
type statusLevel int

const (
	levelSuccess statusLevel = iota
	levelInfo
	levelError
)

// statusPrefixes holds the symbol and plain prefix for each level
var statusPrefixes = map[statusLevel][2]string{
	levelSuccess: {"✓", "OK:"},
	levelInfo:    {"ℹ", "INFO:"},
	levelError:   {"✗", "ERROR:"},
}

func fprintStatus(w io.Writer, level statusLevel, format string, args ...interface{}) {
	// Quiet mode never hides errors
	if quiet && level != levelError {
		return
	}
	prefix := statusPrefixes[level][0]
	if noColor {
		prefix = statusPrefixes[level][1]
	}
	fmt.Fprintf(w, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}

// ErrReported marks a failure the user has already been shown. Commands
// return it so the process exits non-zero without printing a second line.
var ErrReported = errors.New("failure already reported")

// FprintCommandError writes the error a command returned, unless it wraps
// ErrReported
func FprintCommandError(w io.Writer, err error) {
	if err == nil || errors.Is(err, ErrReported) {
		return
	}
	fprintStatus(w, levelError, "%v", err)
}

// FprintSuccess writes a success line to w unless quiet mode is enabled
func FprintSuccess(w io.Writer, format string, args ...interface{}) {
	fprintStatus(w, levelSuccess, format, args...)
}

// FprintInfo writes an info line to w unless quiet mode is enabled
func FprintInfo(w io.Writer, format string, args ...interface{}) {
	fprintStatus(w, levelInfo, format, args...)
}

// FprintError writes an error line to w
func FprintError(w io.Writer, format string, args ...interface{}) {
	fprintStatus(w, levelError, format, args...)
}

// Global flags (will be set from cmd package)
var (
	quiet       bool
	noColor     bool
	skipConfirm bool
)

// SetGlobalFlags sets the global flag values from the cmd package
func SetGlobalFlags(q, nc, sc bool) {
	quiet = q
	noColor = nc
	skipConfirm = sc
}

package tui

import (
	"errors"
	"log/slog"
	"os/exec"
	"runtime"
)

// ErrNoSystemBrowser is returned when the platform has no known URL opener.
var ErrNoSystemBrowser = errors.New("no system browser for this platform")

// systemOpeners maps GOOS to the command line that opens a URL.
var systemOpeners = map[string][]string{
	"linux":   {"xdg-open"},
	"freebsd": {"xdg-open"},
	"openbsd": {"xdg-open"},
	"darwin":  {"open"},
	"windows": {"rundll32", "url.dll,FileProtocolHandler"},
}

// OSOpenCmd builds the command that hands url to the system browser.
// Tests replace it.
var OSOpenCmd = func(url string) *exec.Cmd {
	argv, ok := systemOpeners[runtime.GOOS]
	if !ok {
		return nil
	}
	args := append(append([]string{}, argv[1:]...), url)
	return exec.Command(argv[0], args...) //nolint:gosec
}

func openBrowser(url string) error {
	cmd := OSOpenCmd(url)
	if cmd == nil {
		return ErrNoSystemBrowser
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	slog.Debug("opened in system browser", "url", url)
	return nil
}

package adapter

import (
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
)

// Launcher opens documentation URLs in an external browser
type Launcher struct {
	command string   // configured browser command, empty for system default
	args    []string // additional arguments for the browser
	logger  *slog.Logger

	// start runs a command without waiting for it; swapped in tests
	start func(name string, args ...string) error
	// lookPath reports whether a command exists; swapped in tests
	lookPath func(name string) (string, error)
}

// candidateOpeners defines the URL handlers tried in order for each platform
var candidateOpeners = map[string][][]string{
	"darwin":  {{"open"}},
	"linux":   {{"xdg-open"}, {"sensible-browser"}, {"wslview"}},
	"windows": {{"rundll32", "url.dll,FileProtocolHandler"}},
}

// NewLauncher creates a new Launcher
func NewLauncher(command string, args []string, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Launcher{
		command:  command,
		args:     args,
		logger:   logger,
		start:    startCommand,
		lookPath: exec.LookPath,
	}
}

func startCommand(name string, args ...string) error {
	return exec.Command(name, args...).Start() // Start async, don't wait
}

// Open opens url in the configured browser or the system default
func (l *Launcher) Open(url string) error {
	// Tier 1: User configured a specific browser
	if l.command != "" {
		args := append(append([]string{}, l.args...), url)
		l.logger.Info("launching configured browser", "command", l.command, "args", args)
		if err := l.start(l.command, args...); err != nil {
			return fmt.Errorf("failed to launch %s: %w", l.command, err)
		}
		return nil
	}

	// Tier 2: Platform openers in order
	candidates, ok := candidateOpeners[runtime.GOOS]
	if !ok {
		candidates = candidateOpeners["linux"]
	}
	for _, candidate := range candidates {
		if _, err := l.lookPath(candidate[0]); err != nil {
			l.logger.Debug("opener not available", "command", candidate[0], "error", err)
			continue
		}
		args := append(append([]string{}, candidate[1:]...), url)
		if err := l.start(candidate[0], args...); err != nil {
			l.logger.Debug("opener failed", "command", candidate[0], "error", err)
			continue
		}
		l.logger.Info("opened documentation", "command", candidate[0], "url", url)
		return nil
	}

	return fmt.Errorf("no browser found to open %s", url)
}

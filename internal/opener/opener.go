package opener

import (
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
)

// Opener opens URLs (posters, catalog pages) in an external program
type Opener struct {
	command string   // configured command, empty for system default
	args    []string // additional arguments placed before the URL
	goos    string
	start   func(name string, args ...string) error
	logger  *slog.Logger
}

// New creates an Opener. An empty command uses the system default handler.
func New(command string, args []string, logger *slog.Logger) *Opener {
	if logger == nil {
		logger = slog.Default()
	}
	return &Opener{
		command: command,
		args:    args,
		goos:    runtime.GOOS,
		start:   startDetached,
		logger:  logger,
	}
}

// startDetached launches a command without waiting for it
func startDetached(name string, args ...string) error {
	if _, err := exec.LookPath(name); err != nil {
		return err
	}
	return exec.Command(name, args...).Start()
}

// Open launches url in the configured program or the system default
func (o *Opener) Open(url string) error {
	if url == "" {
		return fmt.Errorf("nothing to open")
	}

	name, args := o.commandLine(url)
	o.logger.Info("opening url", "command", name, "args", args)

	if err := o.start(name, args...); err != nil {
		o.logger.Error("failed to open url", "command", name, "error", err)
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}

// commandLine returns the program and arguments used to open url
func (o *Opener) commandLine(url string) (string, []string) {
	if o.command != "" {
		args := append([]string{}, o.args...)
		return o.command, append(args, url)
	}

	switch o.goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "cmd", []string{"/c", "start", "", url}
	default:
		// Linux and other Unix-like systems
		return "xdg-open", []string{url}
	}
}

// Package launcher opens result links in the user's browser.
package launcher

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/manuaishika/researchrepo/internal/config"
	"github.com/manuaishika/researchrepo/internal/debuglog"
	"github.com/manuaishika/researchrepo/internal/validation"
)

type Launcher struct {
	opener    string
	validator *validation.URLValidator
}

func NewLauncher(cfg *config.Config) *Launcher {
	opener := cfg.UI.Opener
	if opener == "" {
		opener = defaultOpener()
	}

	return &Launcher{
		opener:    opener,
		validator: validation.NewResultURLValidator(),
	}
}

// Open launches the URL in the configured opener, detached so the TUI
// keeps running. The URL is validated first; result links come from the
// backend and are not trusted blindly.
func (l *Launcher) Open(rawURL string) error {
	normalized, err := l.validator.ValidateAndNormalize(rawURL)
	if err != nil {
		return fmt.Errorf("refusing to open link: %w", err)
	}

	if l.opener == "" {
		return fmt.Errorf("no application found to open URL")
	}

	cmd := exec.Command(l.opener, normalized)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", l.opener, err)
	}
	debuglog.Debugf("opened %s with %s", normalized, l.opener)

	go func() {
		_ = cmd.Wait()
	}()

	return nil
}

func defaultOpener() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "windows":
		return "rundll32"
	default:
		return findCommand("xdg-open", "sensible-browser", "x-www-browser")
	}
}

func findCommand(commands ...string) string {
	for _, cmd := range commands {
		if _, err := exec.LookPath(cmd); err == nil {
			return cmd
		}
	}
	return ""
}

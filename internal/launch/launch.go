// Package launch spawns new viewer processes. Duplicating a session is
// encode-then-exec: the configuration travels to the child process as its
// command line, and the child decodes it like any other startup.
package launch

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/winmirror/winmirror/internal/session"
)

// Args returns the argv (after the executable name) that launches a viewer
// for cfg.
func Args(cfg session.Config) []string {
	return append([]string{"view"}, session.EncodeArgs(cfg)...)
}

// Spawn starts a new independent viewer process for cfg, fire-and-forget:
// the child is released immediately and never awaited, so its lifetime is
// not tied to the parent's. Spawn failure is the one fatal error in the
// duplication flow and is returned to the caller.
func Spawn(cfg session.Config) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locate executable: %w", err)
	}

	cmd := exec.Command(exe, Args(cfg)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("spawn viewer: %w", err)
	}
	if err := cmd.Process.Release(); err != nil {
		return fmt.Errorf("release viewer process: %w", err)
	}
	return nil
}

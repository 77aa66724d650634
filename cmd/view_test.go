package cmd

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/winmirror/winmirror/internal/model"
	"github.com/winmirror/winmirror/internal/session"
	"github.com/winmirror/winmirror/internal/settings"
	"github.com/winmirror/winmirror/internal/store"
)

type stubEnumerator struct {
	windows []model.Window
}

func (e *stubEnumerator) ListWindows() ([]model.Window, error) {
	return e.windows, nil
}

func TestViewCommand_FlagParsingDisabled(t *testing.T) {
	// The view arguments are the session protocol; cobra must not eat them.
	if !viewCmd.DisableFlagParsing {
		t.Error("view command must pass its arguments through unparsed")
	}
}

func TestViewConfig_ExplicitArgs(t *testing.T) {
	args := []string{"--windowId=12345", "--opacity=128", "--fullscreen"}

	cfg, err := viewConfig(args, settings.Default(), nil, &stubEnumerator{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Identity.Handle != 12345 {
		t.Errorf("expected handle 12345, got %d", cfg.Identity.Handle)
	}
	if cfg.Opacity != 128 {
		t.Errorf("expected opacity 128, got %d", cfg.Opacity)
	}
	if !cfg.Fullscreen {
		t.Error("expected fullscreen")
	}
}

func TestViewConfig_RestoresLastSession(t *testing.T) {
	history, err := store.Open(filepath.Join(t.TempDir(), "history.db"), zerolog.Nop())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer history.Close()

	err = history.Add(store.Record{
		Target: "handle:777",
		Args:   "--windowId=777 --opacity=200 --chromeOff",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	prefs := settings.Default()
	prefs.RestoreLastSession = true

	cfg, err := viewConfig(nil, prefs, history, &stubEnumerator{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Identity.Handle != 777 {
		t.Errorf("expected restored handle 777, got %d", cfg.Identity.Handle)
	}
	if cfg.Opacity != 200 || !cfg.DisableChrome {
		t.Errorf("expected restored opacity/chrome, got %+v", cfg)
	}
}

func TestViewConfig_ExplicitArgsBeatRestore(t *testing.T) {
	history, err := store.Open(filepath.Join(t.TempDir(), "history.db"), zerolog.Nop())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer history.Close()

	if err := history.Add(store.Record{Target: "handle:1", Args: "--windowId=1 --opacity=255"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	prefs := settings.Default()
	prefs.RestoreLastSession = true

	cfg, err := viewConfig([]string{"--windowId=2"}, prefs, history, &stubEnumerator{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Identity.Handle != 2 {
		t.Errorf("expected explicit handle 2, got %d", cfg.Identity.Handle)
	}
}

func TestViewConfig_DefaultWithoutTerminal(t *testing.T) {
	// Test stdin is never a terminal, so the picker is skipped and a plain
	// default viewer opens.
	cfg, err := viewConfig(nil, settings.Default(), nil, &stubEnumerator{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != session.NewConfig() {
		t.Errorf("expected default config, got %+v", cfg)
	}
}

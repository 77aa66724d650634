package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/winmirror/winmirror/internal/launch"
	"github.com/winmirror/winmirror/internal/model"
	"github.com/winmirror/winmirror/internal/platform"
	"github.com/winmirror/winmirror/internal/session"
	"github.com/winmirror/winmirror/internal/settings"
	"github.com/winmirror/winmirror/internal/store"
)

var viewCmd = &cobra.Command{
	Use:   "view [--windowId=... | --windowTitle=... | --windowClass=...] [options]",
	Short: "Open a viewer mirroring a window",
	Long: `Open an always-on-top viewer mirroring the given window. The arguments are
the session protocol produced when a running viewer is duplicated, so any
viewer state can be reproduced from a command line:

  winmirror view --windowTitle="Media Player" --opacity=200 --chromeOff
  winmirror view --windowId=81285 --region=0,0,640,360 --screenPosition=BottomRight
  winmirror view --windowClass=MPC-BE --visible --width=480 --clickForwarding

With no arguments the viewer restores the last session (when enabled in
settings) or offers an interactive window picker.`,
	// The arguments ARE the session protocol; they go to the decoder, not
	// to cobra.
	DisableFlagParsing: true,
	RunE:               runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h") {
		return cmd.Help()
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	prefs, err := settings.Load()
	if err != nil {
		log.Warn().Err(err).Msg("settings unreadable, using defaults")
	}

	history := openHistory()
	if history != nil {
		defer history.Close()
	}

	cfg, err := viewConfig(args, prefs, history, provider.Enumerator)
	if err != nil {
		return err
	}

	viewer, err := provider.Viewers.NewViewer()
	if err != nil {
		return fmt.Errorf("create viewer: %w", err)
	}

	applier := session.Applier{Settings: prefs, Log: log}
	applier.Apply(cfg, viewer, provider.Enumerator)

	viewer.OnDuplicateRequest(func() {
		clone := session.Capture(viewer)
		if err := launch.Spawn(clone); err != nil {
			log.Error().Err(err).Msg("duplicate session failed")
		}
	})

	runErr := viewer.Run(cmd.Context())

	recordSession(history, session.Capture(viewer), prefs.HistoryLimit)
	return runErr
}

// viewConfig picks the session configuration for this run: explicit protocol
// arguments first, then the stored last session when restore is enabled,
// then an interactive picker on a terminal, and finally a plain default
// viewer.
func viewConfig(args []string, prefs settings.Settings, history *store.Store, enum platform.Enumerator) (session.Config, error) {
	if len(args) > 0 {
		return session.DecodeArgs(args), nil
	}

	if prefs.RestoreLastSession && history != nil {
		last, err := history.Last()
		if err != nil {
			log.Warn().Err(err).Msg("last session unreadable")
		} else if last != nil {
			log.Info().Str("target", last.Target).Msg("restoring last session")
			return session.Decode(last.Args), nil
		}
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		return pickWindow(enum)
	}

	return session.NewConfig(), nil
}

// pickWindow offers an interactive selection over the current enumeration
// snapshot. The picked window is identified by handle: the snapshot already
// resolved it, so there is no reason to re-resolve by title later.
func pickWindow(enum platform.Enumerator) (session.Config, error) {
	cfg := session.NewConfig()

	windows, err := enum.ListWindows()
	if err != nil {
		return cfg, fmt.Errorf("enumerate windows: %w", err)
	}
	windows = model.FilterWindows(windows, model.WindowFilter{VisibleOnly: true})
	if len(windows) == 0 {
		return cfg, fmt.Errorf("no visible windows to mirror")
	}

	options := make([]huh.Option[int64], 0, len(windows))
	for _, w := range windows {
		label := w.Title
		if label == "" {
			label = w.Class
		}
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%d)", label, w.Handle), w.Handle))
	}

	var handle int64
	err = huh.NewSelect[int64]().
		Title("Mirror which window?").
		Options(options...).
		Value(&handle).
		Run()
	if err != nil {
		return cfg, fmt.Errorf("pick window: %w", err)
	}

	cfg.Identity = session.Identity{Handle: handle}
	return cfg, nil
}

// openHistory opens the session history, best-effort: a broken history db
// costs the restore and recent features, never the viewer itself.
func openHistory() *store.Store {
	path, err := store.DefaultPath()
	if err != nil {
		log.Warn().Err(err).Msg("history unavailable")
		return nil
	}
	history, err := store.Open(path, log)
	if err != nil {
		log.Warn().Err(err).Msg("history unavailable")
		return nil
	}
	return history
}

// recordSession stores the final state of a closed viewer so it can be
// restored or inspected later.
func recordSession(history *store.Store, final session.Config, keep int) {
	if history == nil {
		return
	}
	err := history.Add(store.Record{
		Target: final.Identity.String(),
		Args:   session.Encode(final),
	})
	if err != nil {
		log.Warn().Err(err).Msg("session not recorded")
		return
	}
	if err := history.Prune(keep); err != nil {
		log.Warn().Err(err).Msg("history prune failed")
	}
}

package session

import (
	"github.com/rs/zerolog"

	"github.com/winmirror/winmirror/internal/model"
	"github.com/winmirror/winmirror/internal/platform"
)

// SettingsProvider supplies the persisted user preferences the applier
// consults. It is injected rather than read from a process-wide store so the
// core stays testable without live preferences.
type SettingsProvider interface {
	// DefaultFullscreenMode is the display area a fullscreen request covers.
	DefaultFullscreenMode() model.FullscreenMode
}

// Applier drives live viewer sessions to the state a Config describes. The
// zero value uses built-in defaults and logs nowhere.
type Applier struct {
	Settings SettingsProvider
	Log      zerolog.Logger
}

// Apply mutates viewer to match cfg. Steps run in a fixed order — opacity,
// mirror binding, position policy, size derivation, placement, behavior
// flags, fullscreen — and each is individually best-effort: an identity that
// no longer matches, a handle that went stale between enumeration and bind,
// or an underivable size never blocks the remaining steps. A partially
// applied session is a normal outcome, and nothing already applied is rolled
// back.
func (a Applier) Apply(cfg Config, viewer platform.Viewer, enum platform.Enumerator) {
	viewer.SetOpacity(float64(cfg.Opacity) / 255.0)

	target, err := Resolve(cfg.Identity, cfg.MustBeVisible, enum)
	if err != nil {
		a.Log.Warn().Err(err).Msg("window enumeration failed")
	}
	if target != nil {
		if err := viewer.Mirror().Bind(target.Handle, cfg.Region); err != nil {
			// The target can close between enumeration and bind.
			a.Log.Debug().Int64("handle", target.Handle).Err(err).Msg("mirror bind failed")
		}
	} else if cfg.Identity.Kind() != IdentityNone {
		a.Log.Debug().Stringer("identity", cfg.Identity).Msg("no window matched")
	}

	if cfg.Position != model.LockNone {
		viewer.SetPositionPolicy(cfg.Position)
	}

	// Width/Height derivation needs the bound mirror's aspect ratio, so it
	// must follow the bind step. An unbound mirror reports ratio 0 and the
	// partial size is dropped.
	size := cfg.Size
	if size == nil && (cfg.Width > 0 || cfg.Height > 0) {
		if derived, ok := DeriveSize(cfg.Width, cfg.Height, viewer.Mirror()); ok {
			size = &derived
		} else {
			a.Log.Debug().Int("width", cfg.Width).Int("height", cfg.Height).
				Msg("partial size dropped, no aspect source")
		}
	}

	if cfg.Location != nil {
		viewer.SetLocation(*cfg.Location)
	}
	if size != nil {
		viewer.SetClientSize(*size)
	}

	viewer.SetClickForwarding(cfg.ClickForwarding)
	viewer.SetClickThrough(cfg.ClickThrough)
	viewer.SetChromeVisible(!cfg.DisableChrome)

	if cfg.Fullscreen {
		viewer.EnterFullscreen(a.fullscreenMode())
	}
}

func (a Applier) fullscreenMode() model.FullscreenMode {
	if a.Settings == nil {
		return model.FullscreenCurrentScreen
	}
	return a.Settings.DefaultFullscreenMode()
}

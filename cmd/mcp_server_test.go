package cmd

import (
	"testing"

	"github.com/winmirror/winmirror/internal/model"
	"github.com/winmirror/winmirror/internal/session"
)

func TestProtocolTokens_FullConfig(t *testing.T) {
	params := map[string]interface{}{
		"windowId":        float64(81285), // JSON numbers arrive as float64
		"opacity":         float64(128),
		"fullscreen":      true,
		"screenPosition":  "BottomRight",
		"clickForwarding": true,
	}

	cfg := session.DecodeArgs(protocolTokens(params))

	if cfg.Identity.Handle != 81285 {
		t.Errorf("expected handle 81285, got %d", cfg.Identity.Handle)
	}
	if cfg.Opacity != 128 {
		t.Errorf("expected opacity 128, got %d", cfg.Opacity)
	}
	if !cfg.Fullscreen || !cfg.ClickForwarding {
		t.Errorf("expected fullscreen and clickForwarding, got %+v", cfg)
	}
	if cfg.Position != model.LockBottomRight {
		t.Errorf("expected BottomRight lock, got %s", cfg.Position)
	}
}

func TestProtocolTokens_TitleAndRegion(t *testing.T) {
	params := map[string]interface{}{
		"windowTitle": "Media Player",
		"region":      "0,0,640,360",
		"width":       float64(480),
		"visible":     true,
	}

	cfg := session.DecodeArgs(protocolTokens(params))

	if cfg.Identity.Title != "Media Player" {
		t.Errorf("expected title identity, got %+v", cfg.Identity)
	}
	if cfg.Region == nil || cfg.Region.Relative || cfg.Region.Bounds.Width != 640 {
		t.Errorf("expected absolute 640-wide region, got %+v", cfg.Region)
	}
	if cfg.Width != 480 {
		t.Errorf("expected width 480, got %d", cfg.Width)
	}
	if !cfg.MustBeVisible {
		t.Error("expected visibility constraint")
	}
}

func TestProtocolTokens_SizeWithScreenPosition(t *testing.T) {
	// Size and a position lock are mutually exclusive; the size token is
	// emitted after screenPosition, so the explicit size wins and must
	// survive the spawn round-trip.
	params := map[string]interface{}{
		"windowId":       float64(7),
		"screenPosition": "Center",
		"size":           "300,200",
	}

	cfg := session.DecodeArgs(protocolTokens(params))
	if cfg.Position != model.LockNone {
		t.Errorf("expected lock superseded by explicit size, got %s", cfg.Position)
	}
	if cfg.Size == nil || cfg.Size.Width != 300 || cfg.Size.Height != 200 {
		t.Fatalf("expected size 300x200, got %+v", cfg.Size)
	}

	respawned := session.DecodeArgs(session.EncodeArgs(cfg))
	if respawned.Size == nil || *respawned.Size != *cfg.Size {
		t.Errorf("expected size to reach the spawned viewer, got %+v", respawned.Size)
	}
}

func TestProtocolTokens_EmptyParams(t *testing.T) {
	cfg := session.DecodeArgs(protocolTokens(map[string]interface{}{}))
	if cfg != session.NewConfig() {
		t.Errorf("expected defaults from empty params, got %+v", cfg)
	}
}

func TestParamHelpers(t *testing.T) {
	params := map[string]interface{}{
		"str":   "value",
		"num":   float64(42),
		"flag":  true,
		"mixed": float64(7),
	}

	if stringParam(params, "str", "") != "value" {
		t.Error("stringParam failed on string value")
	}
	if stringParam(params, "missing", "fallback") != "fallback" {
		t.Error("stringParam failed on missing key")
	}
	if stringParam(params, "mixed", "") != "7" {
		t.Error("stringParam failed to format numeric value")
	}
	if intParam(params, "num", 0) != 42 {
		t.Error("intParam failed on float64 value")
	}
	if intParam(params, "missing", 9) != 9 {
		t.Error("intParam failed on missing key")
	}
	if !boolParam(params, "flag", false) {
		t.Error("boolParam failed on bool value")
	}
	if boolParam(params, "missing", false) {
		t.Error("boolParam failed on missing key")
	}
}

package session

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/winmirror/winmirror/internal/model"
)

// Encode renders cfg as the single-string session protocol: space-separated
// --key=value tokens in a fixed order, each present only when its field is
// non-default, except --opacity which is always emitted. Title and class
// values are double-quoted. Encode never fails; re-decoding its output
// reconstructs every field that was set.
func Encode(cfg Config) string {
	return strings.Join(encodeTokens(cfg, true), " ")
}

// EncodeArgs renders the same tokens pre-split for an exec argv, with no
// shell quoting around title and class values.
func EncodeArgs(cfg Config) []string {
	return encodeTokens(cfg, false)
}

func encodeTokens(cfg Config, quote bool) []string {
	var tokens []string

	switch cfg.Identity.Kind() {
	case IdentityHandle:
		tokens = append(tokens, fmt.Sprintf("--windowId=%d", cfg.Identity.Handle))
	case IdentityTitle:
		tokens = append(tokens, "--windowTitle="+quoted(cfg.Identity.Title, quote))
	case IdentityClass:
		tokens = append(tokens, "--windowClass="+quoted(cfg.Identity.Class, quote))
	}

	if cfg.Region != nil {
		if cfg.Region.Relative {
			left, top, right, bottom := cfg.Region.Insets()
			tokens = append(tokens, fmt.Sprintf("--padding=%d,%d,%d,%d", left, top, right, bottom))
		} else {
			b := cfg.Region.Bounds
			tokens = append(tokens, fmt.Sprintf("--region=%d,%d,%d,%d", b.X, b.Y, b.Width, b.Height))
		}
	}

	tokens = append(tokens, fmt.Sprintf("--opacity=%d", cfg.Opacity))

	if cfg.DisableChrome {
		tokens = append(tokens, "--chromeOff")
	}
	if cfg.ClickForwarding {
		tokens = append(tokens, "--clickForwarding")
	}
	if cfg.ClickThrough {
		tokens = append(tokens, "--clickThrough")
	}
	if cfg.Fullscreen {
		tokens = append(tokens, "--fullscreen")
	}
	if cfg.MustBeVisible {
		tokens = append(tokens, "--visible")
	}

	if cfg.Position != model.LockNone {
		tokens = append(tokens, "--screenPosition="+cfg.Position.String())
	} else {
		if cfg.Location != nil {
			tokens = append(tokens, fmt.Sprintf("--position=%d,%d", cfg.Location.X, cfg.Location.Y))
		}
		if cfg.Size != nil {
			tokens = append(tokens, fmt.Sprintf("--size=%d,%d", cfg.Size.Width, cfg.Size.Height))
		} else {
			if cfg.Width > 0 {
				tokens = append(tokens, fmt.Sprintf("--width=%d", cfg.Width))
			}
			if cfg.Height > 0 {
				tokens = append(tokens, fmt.Sprintf("--height=%d", cfg.Height))
			}
		}
	}

	return tokens
}

func quoted(s string, quote bool) string {
	if !quote {
		return s
	}
	return `"` + s + `"`
}

// Decode parses the single-string protocol form into a Config. Decoding
// never fails as a whole: keys are matched case-insensitively, unknown keys
// are ignored for forward compatibility, a repeated key keeps its last
// value, and a malformed value leaves that one field at its default. The
// result is always a usable configuration.
func Decode(text string) Config {
	return DecodeArgs(splitTokens(text))
}

// DecodeArgs parses pre-split protocol tokens, typically a process argv.
func DecodeArgs(args []string) Config {
	cfg := NewConfig()
	for _, tok := range args {
		applyToken(&cfg, tok)
	}
	return cfg
}

func applyToken(cfg *Config, tok string) {
	if !strings.HasPrefix(tok, "--") {
		return
	}
	key, value, hasValue := strings.Cut(tok[2:], "=")
	key = strings.ToLower(key)
	value = unquote(value)

	switch key {
	case "windowid":
		h, err := strconv.ParseInt(value, 10, 64)
		if !hasValue || err != nil || h == 0 {
			return
		}
		cfg.Identity = Identity{Handle: h}
	case "windowtitle":
		if !hasValue {
			return
		}
		cfg.Identity = Identity{Title: value}
	case "windowclass":
		if !hasValue {
			return
		}
		cfg.Identity = Identity{Class: value}
	case "padding":
		v, ok := parseTuple(value, 4)
		if !ok {
			return
		}
		r := model.PaddingRegion(v[0], v[1], v[2], v[3])
		cfg.Region = &r
	case "region":
		v, ok := parseTuple(value, 4)
		if !ok {
			return
		}
		r := model.AbsoluteRegion(v[0], v[1], v[2], v[3])
		cfg.Region = &r
	case "opacity":
		o, err := strconv.ParseUint(value, 10, 8)
		if !hasValue || err != nil {
			return
		}
		cfg.Opacity = uint8(o)
	// Flag tokens never carry a value; a valued one is malformed and the
	// field keeps its default, like any other malformed value.
	case "chromeoff":
		if hasValue {
			return
		}
		cfg.DisableChrome = true
	case "clickforwarding":
		if hasValue {
			return
		}
		cfg.ClickForwarding = true
	case "clickthrough":
		if hasValue {
			return
		}
		cfg.ClickThrough = true
	case "fullscreen":
		if hasValue {
			return
		}
		cfg.Fullscreen = true
	case "visible":
		if hasValue {
			return
		}
		cfg.MustBeVisible = true
	case "screenposition":
		lock, err := model.ParsePositionLock(value)
		if !hasValue || err != nil {
			return
		}
		// The lock excludes the explicit placement pair; last token wins.
		cfg.Position = lock
		cfg.Location = nil
		cfg.Size = nil
	case "position":
		v, ok := parseTuple(value, 2)
		if !ok {
			return
		}
		cfg.Location = &model.Point{X: v[0], Y: v[1]}
		cfg.Position = model.LockNone
	case "size":
		v, ok := parseTuple(value, 2)
		if !ok || v[0] <= 0 || v[1] <= 0 {
			return
		}
		cfg.Size = &model.Size{Width: v[0], Height: v[1]}
		cfg.Position = model.LockNone
	case "width":
		w, err := strconv.Atoi(value)
		if !hasValue || err != nil || w <= 0 {
			return
		}
		cfg.Width = w
	case "height":
		h, err := strconv.Atoi(value)
		if !hasValue || err != nil || h <= 0 {
			return
		}
		cfg.Height = h
	}
}

// splitTokens splits the single-string protocol form on whitespace, keeping
// double-quoted spans (window titles with spaces) inside one token.
func splitTokens(text string) []string {
	var tokens []string
	var b strings.Builder
	inQuotes := false
	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}
	for _, r := range text {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			b.WriteRune(r)
		case unicode.IsSpace(r) && !inQuotes:
			flush()
		default:
			b.WriteRune(r)
		}
	}
	flush()
	return tokens
}

// unquote strips one pair of surrounding double quotes, if present.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// parseTuple parses a comma-separated list of exactly n integers. Spaces
// after commas are tolerated.
func parseTuple(s string, n int) ([]int, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, false
	}
	vals := make([]int, n)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, false
		}
		vals[i] = v
	}
	return vals, true
}

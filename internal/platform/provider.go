package platform

import (
	"fmt"
	"runtime"
)

// Provider bundles the platform backends for the current OS.
type Provider struct {
	Enumerator Enumerator
	Viewers    ViewerFactory
}

// ErrUnsupported is returned on platforms with no registered window backend.
var ErrUnsupported = fmt.Errorf("winmirror has no window backend for %s/%s", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init(). The core
// never touches a window system directly, so it compiles and tests on every
// platform; a backend package registers itself here to make the binary
// usable.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}

//go:build !windows

package store

import (
	"runtime"

	"github.com/arthur-debert/userenv/pkg/errors"
)

const platformKind = KindFile

// RegistrySupported reports whether the registry store works on this
// platform.
const RegistrySupported = false

// Registry is unavailable outside Windows; Open always fails.
type Registry struct {
	path string
}

// NewRegistry returns a Registry whose Open reports STORE_UNAVAILABLE.
func NewRegistry() *Registry {
	return &Registry{path: EnvironmentKey}
}

func (r *Registry) Open() (Handle, error) {
	return nil, errors.Newf(errors.ErrStoreUnavailable,
		"registry store requires windows, running on %s", runtime.GOOS).
		WithDetail("key", r.path)
}

//go:build windows

package store

import (
	stderrors "errors"
	"syscall"

	"github.com/arthur-debert/userenv/pkg/errors"
	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

const platformKind = KindRegistry

// RegistrySupported reports whether the registry store works on this
// platform.
const RegistrySupported = true

// Registry implements Store on HKEY_CURRENT_USER\<Path>.
type Registry struct {
	root registry.Key
	path string
}

// NewRegistry returns the store for HKEY_CURRENT_USER\Environment.
func NewRegistry() *Registry {
	return &Registry{root: registry.CURRENT_USER, path: EnvironmentKey}
}

// Open opens the key with combined read and write access.
func (r *Registry) Open() (Handle, error) {
	k, err := registry.OpenKey(r.root, r.path, registry.QUERY_VALUE|registry.SET_VALUE)
	if err != nil {
		return nil, classifyRegistry(err, "open key", r.path)
	}
	return &registryHandle{key: k}, nil
}

type registryHandle struct {
	key registry.Key
}

func (h *registryHandle) Get(name string) (string, error) {
	v, _, err := h.key.GetStringValue(name)
	if err != nil {
		return "", classifyRegistry(err, "read value", name)
	}
	return v, nil
}

// Set writes REG_SZ, keeping REG_EXPAND_SZ when the existing value has it.
func (h *registryHandle) Set(name, value string) error {
	if err := checkText("value", value); err != nil {
		return err
	}
	_, valtype, err := h.key.GetValue(name, nil)
	switch {
	case err == nil && valtype == registry.EXPAND_SZ:
		err = h.key.SetExpandStringValue(name, value)
	case err == nil, stderrors.Is(err, registry.ErrNotExist):
		err = h.key.SetStringValue(name, value)
	}
	if err != nil {
		return classifyRegistry(err, "write value", name)
	}
	return nil
}

func (h *registryHandle) Delete(name string) error {
	err := h.key.DeleteValue(name)
	if err == nil || stderrors.Is(err, registry.ErrNotExist) {
		return nil
	}
	return classifyRegistry(err, "delete value", name)
}

func (h *registryHandle) Close() error {
	return h.key.Close()
}

func classifyRegistry(err error, action, name string) error {
	code := errors.ErrStoreUnavailable
	switch {
	case stderrors.Is(err, registry.ErrNotExist):
		return notFound(name)
	case stderrors.Is(err, windows.ERROR_ACCESS_DENIED):
		code = errors.ErrPermission
	case stderrors.Is(err, registry.ErrUnexpectedType), stderrors.Is(err, syscall.EINVAL):
		code = errors.ErrEncoding
	}
	return errors.Wrapf(err, code, "cannot %s %s", action, name).WithDetail("name", name)
}

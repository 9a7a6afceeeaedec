package store

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/userenv/pkg/errors"
	"github.com/arthur-debert/userenv/pkg/paths"
	"golang.org/x/text/cases"
)

// Store opens handles on the environment collection.
type Store interface {
	Open() (Handle, error)
}

// Handle reads and writes named slots. A Handle is not safe for concurrent
// use and must be closed.
type Handle interface {
	// Get returns the stored value or a NOT_FOUND error.
	Get(name string) (string, error)
	// Set creates or overwrites name.
	Set(name, value string) error
	// Delete removes name. Deleting an absent name succeeds.
	Delete(name string) error
	Close() error
}

// Kind selects a Store implementation.
type Kind string

const (
	KindAuto     Kind = "auto"
	KindRegistry Kind = "registry"
	KindFile     Kind = "file"
	KindMemory   Kind = "memory"
)

// Kinds lists every accepted Kind.
var Kinds = []Kind{KindAuto, KindRegistry, KindFile, KindMemory}

// ParseKind converts a configuration string into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if k == "" {
		return KindAuto, nil
	}
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown store backend %q", s).
		WithDetail("backend", s)
}

// Resolve maps KindAuto to the platform's native store kind.
func (k Kind) Resolve() Kind {
	if k == KindAuto || k == "" {
		return platformKind
	}
	return k
}

// FileConfig configures the file store built by New.
type FileConfig struct {
	// Path of the TOML document. Empty means paths.StoreFile().
	Path string
	// Lock enables the cross-process lock file next to Path.
	Lock bool
}

// New builds the store for kind.
func New(kind Kind, fileCfg FileConfig) (Store, error) {
	switch kind.Resolve() {
	case KindRegistry:
		return NewRegistry(), nil
	case KindFile:
		path := fileCfg.Path
		if path == "" {
			path = paths.StoreFile()
		}
		var opts []FileOption
		if fileCfg.Lock {
			opts = append(opts, WithLockFile(path+".lock"))
		}
		return NewOSFile(filepath.Clean(path), opts...), nil
	case KindMemory:
		return NewMemory(), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown store backend %q", kind)
	}
}

// foldName returns the comparison key for a variable name.
func foldName(name string) string {
	return cases.Fold().String(name)
}

// checkText rejects strings the native store cannot hold.
func checkText(field, s string) error {
	if strings.ContainsRune(s, 0) {
		return errors.Newf(errors.ErrEncoding, "%s contains a NUL character", field).
			WithDetail(field, s)
	}
	return nil
}

func notFound(name string) error {
	return errors.Newf(errors.ErrNotFound, "%s not found", name).WithDetail("name", name)
}

// EnvironmentKey is the per-user environment key below HKEY_CURRENT_USER.
const EnvironmentKey = "Environment"

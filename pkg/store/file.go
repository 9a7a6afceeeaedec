package store

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/userenv/pkg/errors"
	"github.com/gofrs/flock"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// File implements Store on top of a TOML document mapping variable names to
// values. The document is read on Open and rewritten on every Set and
// Delete.
type File struct {
	fs       afero.Fs
	path     string
	lockPath string
}

// FileOption customizes a File store.
type FileOption func(*File)

// WithLockFile makes every handle hold an exclusive advisory lock on path
// from Open until Close. The lock lives on the host filesystem regardless of
// the afero.Fs the document is stored on.
func WithLockFile(path string) FileOption {
	return func(f *File) {
		f.lockPath = path
	}
}

// NewFile creates a File store for the document at path on fsys.
func NewFile(fsys afero.Fs, path string, opts ...FileOption) *File {
	f := &File{fs: fsys, path: path}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewOSFile creates a File store on the host filesystem.
func NewOSFile(path string, opts ...FileOption) *File {
	return NewFile(afero.NewOsFs(), path, opts...)
}

// Path returns the location of the backing document.
func (f *File) Path() string {
	return f.path
}

// Open locks the store if configured and loads the document.
func (f *File) Open() (Handle, error) {
	var lock *flock.Flock
	if f.lockPath != "" {
		if err := os.MkdirAll(filepath.Dir(f.lockPath), 0755); err != nil {
			return nil, classifyFS(err, "create lock directory", f.lockPath)
		}
		lock = flock.New(f.lockPath)
		if err := lock.Lock(); err != nil {
			return nil, classifyFS(err, "lock store", f.lockPath)
		}
	}

	vars, err := f.load()
	if err != nil {
		if lock != nil {
			_ = lock.Unlock()
		}
		return nil, err
	}
	return &fileHandle{store: f, lock: lock, vars: vars}, nil
}

func (f *File) load() (map[string]string, error) {
	vars := make(map[string]string)
	data, err := afero.ReadFile(f.fs, f.path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return vars, nil
		}
		return nil, classifyFS(err, "read store", f.path)
	}
	if err := toml.Unmarshal(data, &vars); err != nil {
		return nil, errors.Wrapf(err, errors.ErrStoreUnavailable, "store %s is not valid TOML", f.path).
			WithDetail("path", f.path)
	}
	return vars, nil
}

func (f *File) save(vars map[string]string) error {
	data, err := toml.Marshal(vars)
	if err != nil {
		return errors.Wrap(err, errors.ErrEncoding, "cannot encode store").WithDetail("path", f.path)
	}

	dir := filepath.Dir(f.path)
	if err := f.fs.MkdirAll(dir, 0755); err != nil {
		return classifyFS(err, "create store directory", dir)
	}

	tmp, err := afero.TempFile(f.fs, dir, ".environment-*.tmp")
	if err != nil {
		return classifyFS(err, "write store", f.path)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = f.fs.Remove(tmpName)
		return classifyFS(err, "write store", f.path)
	}
	if err := tmp.Close(); err != nil {
		_ = f.fs.Remove(tmpName)
		return classifyFS(err, "write store", f.path)
	}
	if err := f.fs.Rename(tmpName, f.path); err != nil {
		_ = f.fs.Remove(tmpName)
		return classifyFS(err, "replace store", f.path)
	}
	return nil
}

func classifyFS(err error, action, path string) error {
	code := errors.ErrStoreUnavailable
	if stderrors.Is(err, fs.ErrPermission) {
		code = errors.ErrPermission
	}
	return errors.Wrapf(err, code, "cannot %s", action).WithDetail("path", path)
}

type fileHandle struct {
	store *File
	lock  *flock.Flock
	vars  map[string]string
}

// key returns the stored spelling of name, or name itself when absent.
func (h *fileHandle) key(name string) (string, bool) {
	if _, ok := h.vars[name]; ok {
		return name, true
	}
	folded := foldName(name)
	for k := range h.vars {
		if foldName(k) == folded {
			return k, true
		}
	}
	return name, false
}

func (h *fileHandle) Get(name string) (string, error) {
	if err := checkText("name", name); err != nil {
		return "", err
	}
	k, ok := h.key(name)
	if !ok {
		return "", notFound(name)
	}
	return h.vars[k], nil
}

func (h *fileHandle) Set(name, value string) error {
	if err := checkText("name", name); err != nil {
		return err
	}
	if err := checkText("value", value); err != nil {
		return err
	}
	k, existed := h.key(name)
	previous := h.vars[k]
	h.vars[k] = value
	if err := h.store.save(h.vars); err != nil {
		if existed {
			h.vars[k] = previous
		} else {
			delete(h.vars, k)
		}
		return err
	}
	return nil
}

func (h *fileHandle) Delete(name string) error {
	if err := checkText("name", name); err != nil {
		return err
	}
	k, ok := h.key(name)
	if !ok {
		return nil
	}
	previous := h.vars[k]
	delete(h.vars, k)
	if err := h.store.save(h.vars); err != nil {
		h.vars[k] = previous
		return err
	}
	return nil
}

func (h *fileHandle) Close() error {
	if h.lock == nil {
		return nil
	}
	lock := h.lock
	h.lock = nil
	return lock.Unlock()
}

package envvar

import (
	"sync"

	"github.com/arthur-debert/userenv/pkg/envlist"
	"github.com/arthur-debert/userenv/pkg/errors"
	"github.com/arthur-debert/userenv/pkg/logging"
	"github.com/arthur-debert/userenv/pkg/notify"
	"github.com/arthur-debert/userenv/pkg/store"
	"github.com/rs/zerolog"
)

// processGuard serializes every Client that was not given its own guard.
var processGuard sync.RWMutex

// Client performs variable operations against a store.
type Client struct {
	store    store.Store
	notifier notify.Notifier
	guard    *sync.RWMutex
	logger   zerolog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithNotifier sets the change notifier. The default discards notifications.
func WithNotifier(n notify.Notifier) Option {
	return func(c *Client) {
		if n != nil {
			c.notifier = n
		}
	}
}

// WithGuard replaces the process-wide guard with g.
func WithGuard(g *sync.RWMutex) Option {
	return func(c *Client) {
		if g != nil {
			c.guard = g
		}
	}
}

// WithLogger sets the logger used for operation logging. The default
// discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a Client on s.
func New(s store.Store, opts ...Option) *Client {
	c := newClient(s, opts...)
	if c.notifier == nil {
		c.notifier = notify.Nop{}
	}
	return c
}

// newClient applies opts and leaves notifier nil unless WithNotifier was
// given.
func newClient(s store.Store, opts ...Option) *Client {
	c := &Client{
		store:  s,
		guard:  &processGuard,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Set writes value to name, creating the variable if needed.
func (c *Client) Set(name, value string) error {
	return c.mutate("set", name, func(h store.Handle) (bool, error) {
		if err := h.Set(name, value); err != nil {
			return false, err
		}
		return true, nil
	})
}

// Get returns the raw value of name. ok is false when name does not exist.
func (c *Client) Get(name string) (value string, ok bool, err error) {
	if err := checkName(name); err != nil {
		return "", false, err
	}

	c.guard.RLock()
	defer c.guard.RUnlock()

	err = c.withHandle(func(h store.Handle) error {
		value, ok, err = lookup(h, name)
		return err
	})
	if err != nil {
		c.logFailure("get", name, err)
		return "", false, err
	}
	return value, ok, nil
}

// Remove deletes name. Removing an absent variable is not an error, and
// the change notification is sent either way.
func (c *Client) Remove(name string) error {
	return c.mutate("remove", name, func(h store.Handle) (bool, error) {
		if err := h.Delete(name); err != nil && !errors.IsNotFound(err) {
			return false, err
		}
		return true, nil
	})
}

// Append adds value as the last entry of the list in name unless it is
// already an entry.
func (c *Client) Append(name, value string) error {
	return c.add("append", name, value, false)
}

// Prepend adds value as the first entry of the list in name unless it is
// already an entry.
func (c *Client) Prepend(name, value string) error {
	return c.add("prepend", name, value, true)
}

func (c *Client) add(op, name, value string, front bool) error {
	return c.mutate(op, name, func(h store.Handle) (bool, error) {
		raw, _, err := lookup(h, name)
		if err != nil {
			return false, err
		}
		entries := envlist.Split(raw)
		if envlist.Contains(entries, value) {
			return false, nil
		}
		if err := h.Set(name, envlist.Join(envlist.Insert(entries, value, front))); err != nil {
			return false, err
		}
		return true, nil
	})
}

// RemoveFromList drops every entry equal to value from the list in name and
// reports whether anything was dropped. An existing variable is always
// rewritten and announced, matched or not. An emptied list stays as "".
func (c *Client) RemoveFromList(name, value string) (bool, error) {
	removed := false
	err := c.mutate("remove_from_list", name, func(h store.Handle) (bool, error) {
		raw, ok, err := lookup(h, name)
		if err != nil || !ok {
			return false, err
		}
		kept, n := envlist.Remove(envlist.SplitRaw(raw), value)
		if err := h.Set(name, envlist.Join(kept)); err != nil {
			return false, err
		}
		removed = n > 0
		return true, nil
	})
	return removed, err
}

// ExistsInList reports whether value is one of the raw entries of name.
func (c *Client) ExistsInList(name, value string) (bool, error) {
	raw, ok, err := c.Get(name)
	if err != nil || !ok {
		return false, err
	}
	return envlist.Contains(envlist.SplitRaw(raw), value), nil
}

// mutate runs fn under the write lock and notifies once the lock is
// released if fn reports a change.
func (c *Client) mutate(op, name string, fn func(store.Handle) (bool, error)) error {
	if err := checkName(name); err != nil {
		return err
	}
	done := logging.LogOperationStart(c.logger, op)
	defer done()

	changed, err := c.locked(fn)
	if err != nil {
		c.logFailure(op, name, err)
		return err
	}

	c.logger.Debug().
		Str("op", op).
		Str("name", name).
		Bool("changed", changed).
		Msg("variable operation completed")

	if changed {
		c.notifier.NotifyChanged()
	}
	return nil
}

func (c *Client) locked(fn func(store.Handle) (bool, error)) (bool, error) {
	c.guard.Lock()
	defer c.guard.Unlock()

	var changed bool
	err := c.withHandle(func(h store.Handle) error {
		var err error
		changed, err = fn(h)
		return err
	})
	return changed, err
}

func (c *Client) withHandle(fn func(store.Handle) error) error {
	h, err := c.store.Open()
	if err != nil {
		return err
	}
	defer func() {
		if err := h.Close(); err != nil {
			c.logger.Warn().Err(err).Msg("failed to close store handle")
		}
	}()
	return fn(h)
}

func (c *Client) logFailure(op, name string, err error) {
	c.logger.Error().
		Err(err).
		Str("op", op).
		Str("name", name).
		Str("code", string(errors.GetErrorCode(err))).
		Msg("variable operation failed")
}

// lookup reads name, folding NOT_FOUND into ok=false.
func lookup(h store.Handle, name string) (string, bool, error) {
	v, err := h.Get(name)
	if err != nil {
		if errors.IsNotFound(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return v, true, nil
}

func checkName(name string) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "variable name must not be empty")
	}
	return nil
}

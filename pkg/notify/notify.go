// Package notify tells running programs that the user environment changed.
//
// On Windows this is a WM_SETTINGCHANGE broadcast carrying the "Environment"
// category, the message Explorer and most shells listen to before re-reading
// HKEY_CURRENT_USER\Environment. The broadcast waits a bounded time for each
// top-level window, skips hung ones and never reports failure: callers fire
// it and move on.
package notify

import (
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultTimeout bounds the wait for each receiving window.
	DefaultTimeout = 500 * time.Millisecond

	// DefaultCategory names the changed settings area.
	DefaultCategory = "Environment"
)

// Notifier announces that environment variables changed.
// Implementations must not block indefinitely and must not panic.
type Notifier interface {
	NotifyChanged()
}

// Nop discards notifications.
type Nop struct{}

func (Nop) NotifyChanged() {}

// Func adapts a function to Notifier.
type Func func()

func (f Func) NotifyChanged() { f() }

// Options configures a Broadcast.
type Options struct {
	Timeout  time.Duration
	Category string
	Logger   *zerolog.Logger
}

// Broadcast sends the system-wide settings-changed message.
type Broadcast struct {
	timeout  time.Duration
	category string
	logger   zerolog.Logger
}

// NewBroadcast creates a Broadcast, filling zero options with defaults.
func NewBroadcast(opts Options) *Broadcast {
	b := &Broadcast{
		timeout:  opts.Timeout,
		category: opts.Category,
		logger:   zerolog.Nop(),
	}
	if b.timeout <= 0 {
		b.timeout = DefaultTimeout
	}
	if b.category == "" {
		b.category = DefaultCategory
	}
	if opts.Logger != nil {
		b.logger = *opts.Logger
	}
	return b
}

// Timeout returns the per-window wait.
func (b *Broadcast) Timeout() time.Duration { return b.timeout }

// Category returns the broadcast category string.
func (b *Broadcast) Category() string { return b.category }

// New returns a Broadcast when enabled and Nop otherwise.
func New(enabled bool, opts Options) Notifier {
	if !enabled {
		return Nop{}
	}
	return NewBroadcast(opts)
}

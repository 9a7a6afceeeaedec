package envvar

import (
	"github.com/arthur-debert/userenv/pkg/config"
	"github.com/arthur-debert/userenv/pkg/notify"
	"github.com/arthur-debert/userenv/pkg/store"
)

// FromConfig builds a Client with the store and notifier cfg describes. An
// explicit WithNotifier wins; the broadcast logs through the client's logger.
func FromConfig(cfg *config.Config, opts ...Option) (*Client, error) {
	s, err := store.New(cfg.StoreKind(), store.FileConfig{
		Path: cfg.File.Path,
		Lock: cfg.File.Lock,
	})
	if err != nil {
		return nil, err
	}

	c := newClient(s, opts...)
	if c.notifier == nil {
		logger := c.logger
		c.notifier = notify.New(cfg.Notify.Enabled, notify.Options{
			Timeout:  cfg.Notify.Timeout,
			Category: cfg.Notify.Category,
			Logger:   &logger,
		})
	}
	return c, nil
}

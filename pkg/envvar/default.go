package envvar

import (
	"sync"

	"github.com/arthur-debert/userenv/pkg/config"
)

var (
	defaultOnce   sync.Once
	defaultClient *Client
	defaultErr    error
)

// Default returns the client used by the package-level functions: the
// platform's native store with the change broadcast enabled, as described by
// the embedded default configuration.
func Default() (*Client, error) {
	defaultOnce.Do(func() {
		defaultClient, defaultErr = FromConfig(config.Default())
	})
	return defaultClient, defaultErr
}

// Set writes value to name using the default client.
func Set(name, value string) error {
	c, err := Default()
	if err != nil {
		return err
	}
	return c.Set(name, value)
}

// Get reads name using the default client.
func Get(name string) (string, bool, error) {
	c, err := Default()
	if err != nil {
		return "", false, err
	}
	return c.Get(name)
}

// Remove deletes name using the default client.
func Remove(name string) error {
	c, err := Default()
	if err != nil {
		return err
	}
	return c.Remove(name)
}

// Append adds value to the end of the list in name using the default client.
func Append(name, value string) error {
	c, err := Default()
	if err != nil {
		return err
	}
	return c.Append(name, value)
}

// Prepend adds value to the front of the list in name using the default
// client.
func Prepend(name, value string) error {
	c, err := Default()
	if err != nil {
		return err
	}
	return c.Prepend(name, value)
}

// RemoveFromList drops value from the list in name using the default client.
func RemoveFromList(name, value string) (bool, error) {
	c, err := Default()
	if err != nil {
		return false, err
	}
	return c.RemoveFromList(name, value)
}

// ExistsInList tests membership of value in name using the default client.
func ExistsInList(name, value string) (bool, error) {
	c, err := Default()
	if err != nil {
		return false, err
	}
	return c.ExistsInList(name, value)
}

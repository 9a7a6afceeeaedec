//go:build !windows

package notify

// NotifyChanged only logs; there is no system-wide environment broadcast
// outside Windows.
func (b *Broadcast) NotifyChanged() {
	b.logger.Debug().Str("category", b.category).Msg("settings change broadcast skipped on this platform")
}

//go:build windows

package notify

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	hwndBroadcast   = 0xffff
	wmSettingChange = 0x001A
	smtoAbortIfHung = 0x0002
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procSendMessageTimeoutW = user32.NewProc("SendMessageTimeoutW")
)

// NotifyChanged broadcasts WM_SETTINGCHANGE with the configured category.
// The outcome is logged and otherwise ignored.
func (b *Broadcast) NotifyChanged() {
	category, err := windows.UTF16PtrFromString(b.category)
	if err != nil {
		b.logger.Debug().Err(err).Str("category", b.category).Msg("invalid broadcast category")
		return
	}
	if err := procSendMessageTimeoutW.Find(); err != nil {
		b.logger.Debug().Err(err).Msg("SendMessageTimeoutW unavailable")
		return
	}

	var result uintptr
	ok, _, callErr := procSendMessageTimeoutW.Call(
		hwndBroadcast,
		wmSettingChange,
		0,
		uintptr(unsafe.Pointer(category)),
		smtoAbortIfHung,
		uintptr(b.timeout.Milliseconds()),
		uintptr(unsafe.Pointer(&result)),
	)
	if ok == 0 {
		b.logger.Debug().Err(callErr).Dur("timeout", b.timeout).Msg("settings broadcast did not complete")
		return
	}
	b.logger.Trace().Str("category", b.category).Msg("settings change broadcast")
}

package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/keybind"

	"github.com/1broseidon/tilewm/internal/config"
	"github.com/1broseidon/tilewm/internal/wm"
)

// ResolveKeys maps the configured key bindings onto the server's current
// keyboard layout. The returned stack release code is the keycode whose
// release commits a window cycle.
func (c *Connection) ResolveKeys(cfg *config.Config) ([]wm.Key, uint32, error) {
	keys := make([]wm.Key, 0, len(cfg.Keys))
	for _, kb := range cfg.Keys {
		mod, err := config.ParseModifiers(kb.Mod)
		if err != nil {
			return nil, 0, fmt.Errorf("binding %q: %w", kb.Key, err)
		}
		codes := keybind.StrToKeycodes(c.XUtil, kb.Key)
		if len(codes) == 0 {
			return nil, 0, fmt.Errorf("no keycode for key %q", kb.Key)
		}
		keys = append(keys, wm.Key{
			Code:    uint32(codes[0]),
			Mod:     mod,
			Binding: kb,
		})
	}
	codes := keybind.StrToKeycodes(c.XUtil, cfg.StackKey)
	if len(codes) == 0 {
		return nil, 0, fmt.Errorf("no keycode for stack key %q", cfg.StackKey)
	}
	return keys, uint32(codes[0]), nil
}

// GrabKeys replaces all key grabs on the root window with the given
// bindings. Each chord is grabbed with every combination of the lock
// modifiers so caps lock and num lock never mask a binding.
func (c *Connection) GrabKeys(keys []wm.Key) {
	xproto.UngrabKey(c.Conn(), xproto.GrabAny, c.Root, xproto.ModMaskAny)
	lockVariants := []uint16{
		0,
		xproto.ModMaskLock,
		xproto.ModMask2,
		xproto.ModMaskLock | xproto.ModMask2,
	}
	for _, k := range keys {
		for _, lock := range lockVariants {
			xproto.GrabKey(c.Conn(), true, c.Root, k.Mod|lock,
				xproto.Keycode(k.Code),
				xproto.GrabModeAsync, xproto.GrabModeAsync)
		}
	}
}

// RefreshKeymap re-reads the keyboard mapping after a MappingNotify and
// re-resolves and re-grabs every binding.
func (c *Connection) RefreshKeymap(cfg *config.Config) ([]wm.Key, uint32, error) {
	keybind.Initialize(c.XUtil)
	keys, stackRelease, err := c.ResolveKeys(cfg)
	if err != nil {
		return nil, 0, err
	}
	c.GrabKeys(keys)
	return keys, stackRelease, nil
}

package config

import (
	"fmt"
	"strings"
)

// Action names an operation a key or button binding can invoke. The set is
// closed: bindings referencing an unknown action fail validation.
type Action string

const (
	ActionSpawn            Action = "spawn"
	ActionView             Action = "view"
	ActionToggleView       Action = "toggleview"
	ActionViewShift        Action = "viewshift"
	ActionViewTagShift     Action = "viewtagshift"
	ActionTag              Action = "tag"
	ActionToggleTag        Action = "toggletag"
	ActionFocusStack       Action = "focusstack"
	ActionGrabStack        Action = "grabstack"
	ActionGrabMove         Action = "grabmove"
	ActionGrabResize       Action = "grabresize"
	ActionToggleFloating   Action = "togglefloating"
	ActionToggleFullscreen Action = "togglefullscreen"
	ActionPin              Action = "pin"
	ActionZoom             Action = "zoom"
	ActionKillClient       Action = "killclient"
	ActionQuit             Action = "quit"
)

var knownActions = map[Action]struct{}{
	ActionSpawn:            {},
	ActionView:             {},
	ActionToggleView:       {},
	ActionViewShift:        {},
	ActionViewTagShift:     {},
	ActionTag:              {},
	ActionToggleTag:        {},
	ActionFocusStack:       {},
	ActionGrabStack:        {},
	ActionGrabMove:         {},
	ActionGrabResize:       {},
	ActionToggleFloating:   {},
	ActionToggleFullscreen: {},
	ActionPin:              {},
	ActionZoom:             {},
	ActionKillClient:       {},
	ActionQuit:             {},
}

// Bar click regions, left to right: launcher glyph, focused window title,
// status text, then the tag indicators right-aligned at the bar's end.
type BarRegion string

const (
	RegionLauncher BarRegion = "launcher"
	RegionTitle    BarRegion = "title"
	RegionStatus   BarRegion = "status"
	RegionTags     BarRegion = "tags"
)

// Modifier masks use the core protocol values so bindings resolve without a
// live connection.
const (
	ModShift   uint16 = 1 << 0
	ModControl uint16 = 1 << 2
	ModAlt     uint16 = 1 << 3 // Mod1
	ModSuper   uint16 = 1 << 6 // Mod4
)

// ParseModifiers turns a spec like "super+shift" into a modifier mask.
// An empty spec means no modifier.
func ParseModifiers(spec string) (uint16, error) {
	if strings.TrimSpace(spec) == "" {
		return 0, nil
	}
	var mask uint16
	for _, part := range strings.Split(spec, "+") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "shift":
			mask |= ModShift
		case "ctrl", "control":
			mask |= ModControl
		case "alt", "mod1":
			mask |= ModAlt
		case "super", "win", "mod4":
			mask |= ModSuper
		default:
			return 0, fmt.Errorf("unknown modifier %q", part)
		}
	}
	return mask, nil
}

// KeyBinding maps a modifier+keysym chord to an action. Amount carries the
// signed argument for shift/cycle actions, Tag the 1-based tag index for tag
// actions, and Command the argv for spawn.
type KeyBinding struct {
	Mod     string   `yaml:"mod"`
	Key     string   `yaml:"key"`
	Action  Action   `yaml:"action"`
	Amount  int      `yaml:"amount,omitempty"`
	Tag     int      `yaml:"tag,omitempty"`
	Command []string `yaml:"command,omitempty"`
}

// ButtonBinding maps a pointer button over a bar region to an action.
type ButtonBinding struct {
	Region  BarRegion `yaml:"region"`
	Button  int       `yaml:"button"`
	Mod     string    `yaml:"mod,omitempty"`
	Action  Action    `yaml:"action"`
	Amount  int       `yaml:"amount,omitempty"`
	Command []string  `yaml:"command,omitempty"`
}

// MonitorRule pins monitor geometry when autodetection is unwanted or
// unavailable. The first rule is treated as the primary monitor.
type MonitorRule struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Colors holds the border and bar palette as "#rrggbb" strings.
type Colors struct {
	Border    string `yaml:"border"`
	SelBorder string `yaml:"selected_border"`
	BarFG     string `yaml:"bar_foreground"`
	BarBG     string `yaml:"bar_background"`
	Mark      string `yaml:"mark"`
}

// Config is the effective, validated configuration.
type Config struct {
	Tags        []string        `yaml:"tags"`
	BorderWidth int             `yaml:"border_width"`
	Snap        int             `yaml:"snap"`
	MFact       float64         `yaml:"mfact"`
	NMain       int             `yaml:"nmain"`
	TopBar      bool            `yaml:"top_bar"`
	BarHeight   int             `yaml:"bar_height"`
	BarFont     string          `yaml:"bar_font"`
	ZenSeconds  int             `yaml:"zen_seconds"`
	Colors      Colors          `yaml:"colors"`
	Monitors    []MonitorRule   `yaml:"monitors"`
	Launcher    []string        `yaml:"launcher"`
	Terminal    []string        `yaml:"terminal"`
	StackKey    string          `yaml:"stack_key"`
	Keys        []KeyBinding    `yaml:"keys"`
	Buttons     []ButtonBinding `yaml:"buttons"`
}

// TagMask returns the all-tags bitmask for the configured tag count.
func (c *Config) TagMask() uint32 {
	return uint32(1)<<len(c.Tags) - 1
}

func (c *Config) Validate() error {
	if len(c.Tags) == 0 {
		return &ValidationError{Path: "tags", Err: fmt.Errorf("at least one tag is required")}
	}
	if len(c.Tags) > 31 {
		return &ValidationError{Path: "tags", Err: fmt.Errorf("at most 31 tags are supported, got %d", len(c.Tags))}
	}
	for i, tag := range c.Tags {
		if strings.TrimSpace(tag) == "" {
			return &ValidationError{Path: fmt.Sprintf("tags[%d]", i), Err: fmt.Errorf("tag names must not be empty")}
		}
	}
	if c.BorderWidth < 0 {
		return &ValidationError{Path: "border_width", Err: fmt.Errorf("border_width must be >= 0")}
	}
	if c.Snap < 0 {
		return &ValidationError{Path: "snap", Err: fmt.Errorf("snap must be >= 0")}
	}
	if c.MFact < 0.05 || c.MFact > 0.95 {
		return &ValidationError{Path: "mfact", Err: fmt.Errorf("mfact must be between 0.05 and 0.95")}
	}
	if c.NMain < 1 {
		return &ValidationError{Path: "nmain", Err: fmt.Errorf("nmain must be >= 1")}
	}
	if c.BarHeight < 1 {
		return &ValidationError{Path: "bar_height", Err: fmt.Errorf("bar_height must be >= 1")}
	}
	if c.ZenSeconds < 0 {
		return &ValidationError{Path: "zen_seconds", Err: fmt.Errorf("zen_seconds must be >= 0")}
	}
	for _, field := range []struct {
		path  string
		value string
	}{
		{"colors.border", c.Colors.Border},
		{"colors.selected_border", c.Colors.SelBorder},
		{"colors.bar_foreground", c.Colors.BarFG},
		{"colors.bar_background", c.Colors.BarBG},
		{"colors.mark", c.Colors.Mark},
	} {
		if _, err := ParseColor(field.value); err != nil {
			return &ValidationError{Path: field.path, Err: err}
		}
	}
	for i, mon := range c.Monitors {
		if mon.Width < 1 || mon.Height < 1 {
			return &ValidationError{Path: fmt.Sprintf("monitors[%d]", i), Err: fmt.Errorf("monitor size must be at least 1x1")}
		}
	}
	if strings.TrimSpace(c.StackKey) == "" {
		return &ValidationError{Path: "stack_key", Err: fmt.Errorf("stack_key is required")}
	}
	for i, kb := range c.Keys {
		path := fmt.Sprintf("keys[%d]", i)
		if strings.TrimSpace(kb.Key) == "" {
			return &ValidationError{Path: path + ".key", Err: fmt.Errorf("key is required")}
		}
		if _, err := ParseModifiers(kb.Mod); err != nil {
			return &ValidationError{Path: path + ".mod", Err: err}
		}
		if err := validateActionArgs(path, kb.Action, kb.Tag, kb.Command, len(c.Tags)); err != nil {
			return err
		}
	}
	for i, bb := range c.Buttons {
		path := fmt.Sprintf("buttons[%d]", i)
		switch bb.Region {
		case RegionLauncher, RegionTitle, RegionStatus, RegionTags:
		default:
			return &ValidationError{Path: path + ".region", Err: fmt.Errorf("region must be one of: launcher, title, status, tags")}
		}
		if bb.Button < 1 || bb.Button > 5 {
			return &ValidationError{Path: path + ".button", Err: fmt.Errorf("button must be between 1 and 5")}
		}
		if _, err := ParseModifiers(bb.Mod); err != nil {
			return &ValidationError{Path: path + ".mod", Err: err}
		}
		if err := validateActionArgs(path, bb.Action, 0, bb.Command, len(c.Tags)); err != nil {
			return err
		}
	}
	return nil
}

func validateActionArgs(path string, action Action, tag int, command []string, tagCount int) error {
	if _, ok := knownActions[action]; !ok {
		return &ValidationError{Path: path + ".action", Err: fmt.Errorf("unknown action %q", action)}
	}
	switch action {
	case ActionSpawn:
		if len(command) == 0 {
			return &ValidationError{Path: path + ".command", Err: fmt.Errorf("spawn requires a command")}
		}
	case ActionView, ActionToggleView, ActionTag, ActionToggleTag:
		if tag < 0 || tag > tagCount {
			return &ValidationError{Path: path + ".tag", Err: fmt.Errorf("tag must be between 1 and %d", tagCount)}
		}
	}
	return nil
}

// ParseColor parses "#rrggbb" into a packed 0x00rrggbb pixel value.
func ParseColor(s string) (uint32, error) {
	if len(s) != 7 || s[0] != '#' {
		return 0, fmt.Errorf("color must look like #rrggbb, got %q", s)
	}
	var v uint32
	for _, ch := range s[1:] {
		v <<= 4
		switch {
		case ch >= '0' && ch <= '9':
			v |= uint32(ch - '0')
		case ch >= 'a' && ch <= 'f':
			v |= uint32(ch-'a') + 10
		case ch >= 'A' && ch <= 'F':
			v |= uint32(ch-'A') + 10
		default:
			return 0, fmt.Errorf("color must look like #rrggbb, got %q", s)
		}
	}
	return v, nil
}

package config

import (
	"fmt"
)

type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

// BuildEffectiveConfig overlays raw onto the built-in defaults. Fields left
// unset in raw keep their default values.
func BuildEffectiveConfig(raw RawConfig) (*Config, error) {
	cfg := DefaultConfig()

	if raw.Tags != nil {
		cfg.Tags = raw.Tags
	}
	if raw.BorderWidth != nil {
		cfg.BorderWidth = *raw.BorderWidth
	}
	if raw.Snap != nil {
		cfg.Snap = *raw.Snap
	}
	if raw.MFact != nil {
		cfg.MFact = *raw.MFact
	}
	if raw.NMain != nil {
		cfg.NMain = *raw.NMain
	}
	if raw.TopBar != nil {
		cfg.TopBar = *raw.TopBar
	}
	if raw.BarHeight != nil {
		cfg.BarHeight = *raw.BarHeight
	}
	if raw.BarFont != nil {
		cfg.BarFont = *raw.BarFont
	}
	if raw.ZenSeconds != nil {
		cfg.ZenSeconds = *raw.ZenSeconds
	}
	if raw.Colors != nil {
		if raw.Colors.Border != nil {
			cfg.Colors.Border = *raw.Colors.Border
		}
		if raw.Colors.SelBorder != nil {
			cfg.Colors.SelBorder = *raw.Colors.SelBorder
		}
		if raw.Colors.BarFG != nil {
			cfg.Colors.BarFG = *raw.Colors.BarFG
		}
		if raw.Colors.BarBG != nil {
			cfg.Colors.BarBG = *raw.Colors.BarBG
		}
		if raw.Colors.Mark != nil {
			cfg.Colors.Mark = *raw.Colors.Mark
		}
	}
	if raw.Monitors != nil {
		cfg.Monitors = raw.Monitors
	}
	if raw.Launcher != nil {
		cfg.Launcher = raw.Launcher
	}
	if raw.Terminal != nil {
		cfg.Terminal = raw.Terminal
	}
	if raw.StackKey != nil {
		cfg.StackKey = *raw.StackKey
	}
	if raw.Keys != nil {
		cfg.Keys = raw.Keys
	}
	if raw.Buttons != nil {
		cfg.Buttons = raw.Buttons
	}

	return cfg, nil
}

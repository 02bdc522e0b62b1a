package config

import (
	"fmt"
	"strings"
)

// Explain returns the effective value at the given YAML-like path and the
// source it came from (a file location when a loaded file set it, otherwise
// the built-in defaults).
//
// Supported paths include:
//
//	tags
//	border_width
//	snap
//	mfact
//	nmain
//	top_bar
//	bar_height
//	bar_font
//	zen_seconds
//	colors.border
//	colors.selected_border
//	colors.bar_foreground
//	colors.bar_background
//	colors.mark
//	monitors
//	launcher
//	terminal
//	stack_key
//	keys
//	buttons
func Explain(res *LoadResult, path string) (any, Source, error) {
	if res == nil || res.Config == nil {
		return nil, Source{}, fmt.Errorf("no config loaded")
	}
	if path == "" {
		return nil, Source{}, fmt.Errorf("path is empty")
	}

	value, err := lookupValue(res.Config, path)
	if err != nil {
		return nil, Source{}, err
	}

	if src, ok := res.Sources[path]; ok {
		return value, src, nil
	}
	return value, Source{Kind: SourceDefault, Name: "defaults"}, nil
}

func lookupValue(cfg *Config, path string) (any, error) {
	parts := strings.Split(path, ".")
	switch parts[0] {
	case "tags":
		return scalarAt(path, parts, cfg.Tags)
	case "border_width":
		return scalarAt(path, parts, cfg.BorderWidth)
	case "snap":
		return scalarAt(path, parts, cfg.Snap)
	case "mfact":
		return scalarAt(path, parts, cfg.MFact)
	case "nmain":
		return scalarAt(path, parts, cfg.NMain)
	case "top_bar":
		return scalarAt(path, parts, cfg.TopBar)
	case "bar_height":
		return scalarAt(path, parts, cfg.BarHeight)
	case "bar_font":
		return scalarAt(path, parts, cfg.BarFont)
	case "zen_seconds":
		return scalarAt(path, parts, cfg.ZenSeconds)
	case "monitors":
		return scalarAt(path, parts, cfg.Monitors)
	case "launcher":
		return scalarAt(path, parts, cfg.Launcher)
	case "terminal":
		return scalarAt(path, parts, cfg.Terminal)
	case "stack_key":
		return scalarAt(path, parts, cfg.StackKey)
	case "keys":
		return scalarAt(path, parts, cfg.Keys)
	case "buttons":
		return scalarAt(path, parts, cfg.Buttons)
	case "colors":
		if len(parts) == 1 {
			return cfg.Colors, nil
		}
		if len(parts) != 2 {
			return nil, fmt.Errorf("unknown config path %q", path)
		}
		switch parts[1] {
		case "border":
			return cfg.Colors.Border, nil
		case "selected_border":
			return cfg.Colors.SelBorder, nil
		case "bar_foreground":
			return cfg.Colors.BarFG, nil
		case "bar_background":
			return cfg.Colors.BarBG, nil
		case "mark":
			return cfg.Colors.Mark, nil
		default:
			return nil, fmt.Errorf("unknown config path %q", path)
		}
	default:
		return nil, fmt.Errorf("unknown config path %q", path)
	}
}

func scalarAt(path string, parts []string, value any) (any, error) {
	if len(parts) != 1 {
		return nil, fmt.Errorf("unknown config path %q", path)
	}
	return value, nil
}

package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// IncludeList supports either:
//
//	include: "/path/to/file.yaml"
//
// or:
//
//	include:
//	  - "/path/to/file.yaml"
//	  - "/path/to/dir"
type IncludeList []string

func (l *IncludeList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case 0:
		// Not present.
		*l = nil
		return nil
	case yaml.ScalarNode:
		if value.Tag != "!!str" {
			return fmt.Errorf("include must be a string or list of strings")
		}
		*l = []string{value.Value}
		return nil
	case yaml.SequenceNode:
		out := make([]string, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode || item.Tag != "!!str" {
				return fmt.Errorf("include entries must be strings")
			}
			out = append(out, item.Value)
		}
		*l = out
		return nil
	default:
		return fmt.Errorf("include must be a string or list of strings")
	}
}

type RawColors struct {
	Border    *string `yaml:"border"`
	SelBorder *string `yaml:"selected_border"`
	BarFG     *string `yaml:"bar_foreground"`
	BarBG     *string `yaml:"bar_background"`
	Mark      *string `yaml:"mark"`
}

type RawConfig struct {
	Include     IncludeList     `yaml:"include"`
	Tags        []string        `yaml:"tags"`
	BorderWidth *int            `yaml:"border_width"`
	Snap        *int            `yaml:"snap"`
	MFact       *float64        `yaml:"mfact"`
	NMain       *int            `yaml:"nmain"`
	TopBar      *bool           `yaml:"top_bar"`
	BarHeight   *int            `yaml:"bar_height"`
	BarFont     *string         `yaml:"bar_font"`
	ZenSeconds  *int            `yaml:"zen_seconds"`
	Colors      *RawColors      `yaml:"colors"`
	Monitors    []MonitorRule   `yaml:"monitors"`
	Launcher    []string        `yaml:"launcher"`
	Terminal    []string        `yaml:"terminal"`
	StackKey    *string         `yaml:"stack_key"`
	Keys        []KeyBinding    `yaml:"keys"`
	Buttons     []ButtonBinding `yaml:"buttons"`
}

func (c RawConfig) merge(overlay RawConfig) RawConfig {
	out := c

	if overlay.Tags != nil {
		out.Tags = overlay.Tags
	}
	if overlay.BorderWidth != nil {
		out.BorderWidth = overlay.BorderWidth
	}
	if overlay.Snap != nil {
		out.Snap = overlay.Snap
	}
	if overlay.MFact != nil {
		out.MFact = overlay.MFact
	}
	if overlay.NMain != nil {
		out.NMain = overlay.NMain
	}
	if overlay.TopBar != nil {
		out.TopBar = overlay.TopBar
	}
	if overlay.BarHeight != nil {
		out.BarHeight = overlay.BarHeight
	}
	if overlay.BarFont != nil {
		out.BarFont = overlay.BarFont
	}
	if overlay.ZenSeconds != nil {
		out.ZenSeconds = overlay.ZenSeconds
	}
	if overlay.Colors != nil {
		if out.Colors == nil {
			out.Colors = &RawColors{}
		}
		if overlay.Colors.Border != nil {
			out.Colors.Border = overlay.Colors.Border
		}
		if overlay.Colors.SelBorder != nil {
			out.Colors.SelBorder = overlay.Colors.SelBorder
		}
		if overlay.Colors.BarFG != nil {
			out.Colors.BarFG = overlay.Colors.BarFG
		}
		if overlay.Colors.BarBG != nil {
			out.Colors.BarBG = overlay.Colors.BarBG
		}
		if overlay.Colors.Mark != nil {
			out.Colors.Mark = overlay.Colors.Mark
		}
	}
	if overlay.Monitors != nil {
		out.Monitors = overlay.Monitors
	}
	if overlay.Launcher != nil {
		out.Launcher = overlay.Launcher
	}
	if overlay.Terminal != nil {
		out.Terminal = overlay.Terminal
	}
	if overlay.StackKey != nil {
		out.StackKey = overlay.StackKey
	}
	// Binding lists replace wholesale: partial overlays of positional lists
	// are more confusing than helpful.
	if overlay.Keys != nil {
		out.Keys = overlay.Keys
	}
	if overlay.Buttons != nil {
		out.Buttons = overlay.Buttons
	}

	return out
}

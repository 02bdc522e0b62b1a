package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if got := cfg.TagMask(); got != 0x1ff {
		t.Fatalf("expected tag mask 0x1ff for nine tags, got %#x", got)
	}
}

func TestLoadFromPath_EmptyFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("# empty\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Config.MFact != 0.6 {
		t.Fatalf("expected default mfact 0.6, got %v", res.Config.MFact)
	}
	if len(res.Config.Tags) != 9 {
		t.Fatalf("expected nine default tags, got %d", len(res.Config.Tags))
	}
}

func TestLoadFromPath_OverridesKeepOtherDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := strings.Join([]string{
		"mfact: 0.5",
		"snap: 16",
		"colors:",
		"  border: \"#222222\"",
		"",
	}, "\n")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg := res.Config
	if cfg.MFact != 0.5 {
		t.Fatalf("expected mfact 0.5, got %v", cfg.MFact)
	}
	if cfg.Snap != 16 {
		t.Fatalf("expected snap 16, got %d", cfg.Snap)
	}
	if cfg.Colors.Border != "#222222" {
		t.Fatalf("expected border #222222, got %q", cfg.Colors.Border)
	}
	// Fields the file never mentions stay at their defaults.
	if cfg.Colors.SelBorder != "#335577" {
		t.Fatalf("expected default selected border, got %q", cfg.Colors.SelBorder)
	}
	if cfg.BarHeight != 18 {
		t.Fatalf("expected default bar height 18, got %d", cfg.BarHeight)
	}
}

func TestLoadFromPath_StrictUnknownKeyErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("no_such_key: 1\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := LoadFromPath(path); err == nil {
		t.Fatalf("expected unknown key to error")
	}
}

func TestLoadFromPath_MalformedYAMLErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("tags: [\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := LoadFromPath(path); err == nil {
		t.Fatalf("expected malformed yaml to error")
	}
}

func TestLoadFromPath_IncludeMerges(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.yaml")
	main := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(base, []byte("snap: 4\nmfact: 0.7\n"), 0644); err != nil {
		t.Fatalf("write base: %v", err)
	}
	data := strings.Join([]string{
		"include: base.yaml",
		"mfact: 0.55",
		"",
	}, "\n")
	if err := os.WriteFile(main, []byte(data), 0644); err != nil {
		t.Fatalf("write main: %v", err)
	}

	res, err := LoadFromPath(main)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	// Including file wins over the included one.
	if res.Config.MFact != 0.55 {
		t.Fatalf("expected mfact 0.55, got %v", res.Config.MFact)
	}
	if res.Config.Snap != 4 {
		t.Fatalf("expected snap 4 from include, got %d", res.Config.Snap)
	}
}

func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		path   string
	}{
		{"no tags", func(c *Config) { c.Tags = nil }, "tags"},
		{"too many tags", func(c *Config) { c.Tags = make([]string, 32) }, "tags"},
		{"negative snap", func(c *Config) { c.Snap = -1 }, "snap"},
		{"mfact too small", func(c *Config) { c.MFact = 0.01 }, "mfact"},
		{"mfact too large", func(c *Config) { c.MFact = 0.99 }, "mfact"},
		{"nmain zero", func(c *Config) { c.NMain = 0 }, "nmain"},
		{"bad color", func(c *Config) { c.Colors.Border = "red" }, "colors.border"},
		{"empty stack key", func(c *Config) { c.StackKey = "" }, "stack_key"},
		{"unknown action", func(c *Config) {
			c.Keys = []KeyBinding{{Mod: "super", Key: "x", Action: "explode"}}
		}, "keys[0].action"},
		{"spawn without command", func(c *Config) {
			c.Keys = []KeyBinding{{Mod: "super", Key: "x", Action: ActionSpawn}}
		}, "keys[0].command"},
		{"tag out of range", func(c *Config) {
			c.Keys = []KeyBinding{{Mod: "super", Key: "x", Action: ActionView, Tag: 10}}
		}, "keys[0].tag"},
		{"bad button region", func(c *Config) {
			c.Buttons = []ButtonBinding{{Region: "dock", Button: 1, Action: ActionZoom}}
		}, "buttons[0].region"},
		{"bad modifier", func(c *Config) {
			c.Keys = []KeyBinding{{Mod: "hyper", Key: "x", Action: ActionZoom}}
		}, "keys[0].mod"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected validation error")
			}
			verr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if verr.Path != tc.path {
				t.Fatalf("expected path %q, got %q", tc.path, verr.Path)
			}
		})
	}
}

func TestParseModifiers(t *testing.T) {
	cases := []struct {
		spec string
		want uint16
	}{
		{"", 0},
		{"super", ModSuper},
		{"alt", ModAlt},
		{"super+shift", ModSuper | ModShift},
		{"ctrl+alt+shift", ModControl | ModAlt | ModShift},
		{"Win", ModSuper},
	}
	for _, tc := range cases {
		got, err := ParseModifiers(tc.spec)
		if err != nil {
			t.Fatalf("ParseModifiers(%q): %v", tc.spec, err)
		}
		if got != tc.want {
			t.Fatalf("ParseModifiers(%q) = %#x, want %#x", tc.spec, got, tc.want)
		}
	}
	if _, err := ParseModifiers("meta+x"); err == nil {
		t.Fatalf("expected error for unknown modifier")
	}
}

func TestParseColor(t *testing.T) {
	got, err := ParseColor("#335577")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	if got != 0x335577 {
		t.Fatalf("expected 0x335577, got %#x", got)
	}
	for _, bad := range []string{"", "335577", "#33557", "#33557g"} {
		if _, err := ParseColor(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

package config

// DefaultConfig returns the built-in configuration.
//
// It is complete on its own: a missing or empty config file yields a fully
// working window manager. User files only override the fields they set.
func DefaultConfig() *Config {
	term := DetectTerminal()
	return &Config{
		Tags:        []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"},
		BorderWidth: 1,
		Snap:        8,
		MFact:       0.6,
		NMain:       1,
		TopBar:      true,
		BarHeight:   18,
		BarFont:     "fixed",
		ZenSeconds:  3,
		Colors: Colors{
			Border:    "#444444",
			SelBorder: "#335577",
			BarFG:     "#dddddd",
			BarBG:     "#111111",
			Mark:      "#88cc66",
		},
		Launcher: []string{"dmenu_run"},
		Terminal: []string{term},
		StackKey: "Super_L",
		Keys:     defaultKeys(term),
		Buttons: []ButtonBinding{
			{Region: RegionLauncher, Button: 1, Action: ActionSpawn, Command: []string{"dmenu_run"}},
			{Region: RegionTitle, Button: 1, Action: ActionZoom},
			{Region: RegionStatus, Button: 1, Action: ActionSpawn, Command: []string{term}},
			{Region: RegionTags, Button: 1, Action: ActionView},
			{Region: RegionTags, Button: 3, Action: ActionToggleView},
			{Region: RegionTags, Button: 2, Action: ActionTag},
		},
	}
}

func defaultKeys(term string) []KeyBinding {
	keys := []KeyBinding{
		{Mod: "super", Key: "Return", Action: ActionSpawn, Command: []string{term}},
		{Mod: "super", Key: "p", Action: ActionSpawn, Command: []string{"dmenu_run"}},
		{Mod: "super", Key: "Tab", Action: ActionGrabStack, Amount: 1},
		{Mod: "super+shift", Key: "Tab", Action: ActionGrabStack, Amount: -1},
		{Mod: "super", Key: "j", Action: ActionFocusStack, Amount: 1},
		{Mod: "super", Key: "k", Action: ActionFocusStack, Amount: -1},
		{Mod: "super", Key: "Left", Action: ActionViewShift, Amount: -1},
		{Mod: "super", Key: "Right", Action: ActionViewShift, Amount: 1},
		{Mod: "super+shift", Key: "Left", Action: ActionViewTagShift, Amount: -1},
		{Mod: "super+shift", Key: "Right", Action: ActionViewTagShift, Amount: 1},
		{Mod: "super", Key: "space", Action: ActionToggleFloating},
		{Mod: "super", Key: "f", Action: ActionToggleFullscreen},
		{Mod: "super", Key: "s", Action: ActionPin},
		{Mod: "super", Key: "z", Action: ActionZoom},
		{Mod: "super", Key: "m", Action: ActionGrabMove},
		{Mod: "super", Key: "r", Action: ActionGrabResize},
		{Mod: "super+shift", Key: "q", Action: ActionKillClient},
		{Mod: "super+shift", Key: "e", Action: ActionQuit},
		{Mod: "super", Key: "0", Action: ActionView, Tag: 0},
	}
	tagKeys := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}
	for i, key := range tagKeys {
		keys = append(keys,
			KeyBinding{Mod: "super", Key: key, Action: ActionView, Tag: i + 1},
			KeyBinding{Mod: "super+ctrl", Key: key, Action: ActionToggleView, Tag: i + 1},
			KeyBinding{Mod: "super+shift", Key: key, Action: ActionTag, Tag: i + 1},
			KeyBinding{Mod: "super+ctrl+shift", Key: key, Action: ActionToggleTag, Tag: i + 1},
		)
	}
	return keys
}

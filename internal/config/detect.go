package config

import "os/exec"

// terminalCandidates are tried in order when no terminal is configured.
// x-terminal-emulator is the Debian alternatives symlink and wins when
// present because it reflects the system-wide choice.
var terminalCandidates = []string{
	"x-terminal-emulator",
	"st",
	"alacritty",
	"kitty",
	"foot",
	"urxvt",
	"xterm",
}

// DetectTerminal returns the first terminal emulator from the candidate list
// found on PATH, or "st" when none is installed so the default config stays
// self-consistent.
func DetectTerminal() string {
	for _, name := range terminalCandidates {
		if _, err := exec.LookPath(name); err == nil {
			return name
		}
	}
	return "st"
}

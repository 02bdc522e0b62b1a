package x11

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

func TestBenignErrorMatchesRequestErrorPairs(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		benign bool
	}{
		{"bad window from any request", xproto.WindowError{MajorOpcode: 1}, true},
		{"bad match from SetInputFocus", xproto.MatchError{MajorOpcode: opSetInputFocus}, true},
		{"bad match from ConfigureWindow", xproto.MatchError{MajorOpcode: opConfigureWindow}, true},
		{"bad match from CreateWindow", xproto.MatchError{MajorOpcode: 1}, false},
		{"bad drawable from PolyFillRectangle", xproto.DrawableError{MajorOpcode: opPolyFillRectangle}, true},
		{"bad drawable from ImageText8", xproto.DrawableError{MajorOpcode: opImageText8}, true},
		{"bad drawable from GetGeometry", xproto.DrawableError{MajorOpcode: 14}, false},
		{"bad access from GrabButton", xproto.AccessError{MajorOpcode: opGrabButton}, true},
		{"bad access from GrabKey", xproto.AccessError{MajorOpcode: opGrabKey}, true},
		{"bad access from ChangeWindowAttributes", xproto.AccessError{MajorOpcode: 2}, false},
		{"unrelated error kind", xproto.ValueError{MajorOpcode: opConfigureWindow}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := benignError(tt.err); got != tt.benign {
				t.Fatalf("benignError(%v) = %v, want %v", tt.err, got, tt.benign)
			}
		})
	}
}

package input

import "testing"

func TestScancodeString(t *testing.T) {
	tests := []struct {
		code Scancode
		want string
	}{
		{W, "W"},
		{Escape, "Escape"},
		{MouseMiddle, "MouseMiddle"},
		{Scancode(200), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("Scancode(%d).String() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestIsMouseButton(t *testing.T) {
	for _, c := range []Scancode{MouseLeft, MouseRight, MouseMiddle} {
		if !c.IsMouseButton() {
			t.Errorf("%v.IsMouseButton() = false, want true", c)
		}
	}
	if W.IsMouseButton() {
		t.Error("W.IsMouseButton() = true, want false")
	}
}

func TestEventTypeSwitch(t *testing.T) {
	events := []Event{
		KeyPressed{Code: W},
		KeyReleased{Code: W},
		MouseMoved{DX: 1, DY: -1},
		MouseButtonPressed{Button: MouseLeft},
		MouseButtonReleased{Button: MouseLeft},
		Closed{},
	}
	seen := 0
	for _, ev := range events {
		switch ev.(type) {
		case KeyPressed, KeyReleased, MouseMoved, MouseButtonPressed, MouseButtonReleased, Closed:
			seen++
		}
	}
	if seen != len(events) {
		t.Errorf("matched %d events, want %d", seen, len(events))
	}
}

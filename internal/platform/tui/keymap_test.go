package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/kokaton/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runeKey('w'), core.ActionUp},
		{"s", runeKey('s'), core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"d", runeKey('d'), core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire},
		{"p", runeKey('p'), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestHeldKeysExpire(t *testing.T) {
	h := NewHeldKeys()
	h.Press(core.ActionLeft)

	for i := range HeldTicks {
		frame := core.NewInputFrame()
		h.Apply(&frame)
		if !frame.IsHeld(core.ActionLeft) {
			t.Fatalf("frame %d: left not held", i)
		}
	}
	frame := core.NewInputFrame()
	h.Apply(&frame)
	if frame.IsHeld(core.ActionLeft) {
		t.Error("left still held after HeldTicks frames")
	}
}

func TestHeldKeysRepeatExtends(t *testing.T) {
	h := NewHeldKeys()
	h.Press(core.ActionUp)
	for range HeldTicks - 1 {
		frame := core.NewInputFrame()
		h.Apply(&frame)
	}
	h.Press(core.ActionUp)
	for i := range HeldTicks {
		frame := core.NewInputFrame()
		h.Apply(&frame)
		if !frame.IsHeld(core.ActionUp) {
			t.Fatalf("frame %d after repeat: up not held", i)
		}
	}
}

func TestHeldKeysOppositeReleases(t *testing.T) {
	h := NewHeldKeys()
	h.Press(core.ActionLeft)
	h.Press(core.ActionUp)
	h.Press(core.ActionRight)
	h.Press(core.ActionFire)

	frame := core.NewInputFrame()
	h.Apply(&frame)
	if frame.IsHeld(core.ActionLeft) {
		t.Error("left held after pressing right")
	}
	if !frame.IsHeld(core.ActionRight) || !frame.IsHeld(core.ActionUp) {
		t.Errorf("held = %v, want up and right", frame.Held)
	}
	if frame.IsHeld(core.ActionFire) {
		t.Error("fire must never be held")
	}

	h.Release()
	frame = core.NewInputFrame()
	h.Apply(&frame)
	if len(frame.Held) != 0 {
		t.Errorf("held after Release = %v", frame.Held)
	}
}

func TestHoldTicks(t *testing.T) {
	tests := []struct {
		hold string
		rate int
		want int
	}{
		{"1s", 50, 50},
		{"3s", 50, 150},
		{"0s", 50, 1},
		{"1s", 0, 50},
	}
	for _, tt := range tests {
		d, err := time.ParseDuration(tt.hold)
		if err != nil {
			t.Fatal(err)
		}
		if got := holdTicks(d, tt.rate); got != tt.want {
			t.Errorf("holdTicks(%s, %d) = %d, want %d", tt.hold, tt.rate, got, tt.want)
		}
	}
}

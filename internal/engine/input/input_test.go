package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestScrollLines(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		want   float64
	}{
		{"none", nil, 0},
		{"wheel", []Event{{Type: EventScroll, Scroll: 3}}, 3},
		{"wheel up", []Event{{Type: EventScroll, Scroll: -2}, {Type: EventScroll, Scroll: -1}}, -3},
		{"arrows", []Event{
			{Type: EventKeyDown, Key: sdl.SCANCODE_DOWN},
			{Type: EventKeyDown, Key: sdl.SCANCODE_DOWN},
			{Type: EventKeyDown, Key: sdl.SCANCODE_UP},
		}, 1},
		{"page", []Event{{Type: EventKeyDown, Key: sdl.SCANCODE_PAGEDOWN}}, 10},
		{"space", []Event{{Type: EventKeyDown, Key: sdl.SCANCODE_SPACE}}, 10},
		{"other keys", []Event{{Type: EventKeyDown, Key: sdl.SCANCODE_A}}, 0},
		{"resize ignored", []Event{{Type: EventWindowResize, Width: 10, Height: 10}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScrollLines(tt.events, 10); got != tt.want {
				t.Errorf("ScrollLines = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsKeyPressed(t *testing.T) {
	in := New()
	in.events = append(in.events, Event{Type: EventKeyDown, Key: sdl.SCANCODE_ESCAPE})

	if !in.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
		t.Error("escape not reported")
	}
	if in.IsKeyPressed(sdl.SCANCODE_Q) {
		t.Error("q reported")
	}
}

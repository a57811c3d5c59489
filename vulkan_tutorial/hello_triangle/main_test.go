package main

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestHandleEvent(t *testing.T) {
	app := &HelloTriangleApplication{}

	events := []struct {
		name      string
		event     sdl.Event
		quit      bool
		minimized bool
	}{
		{name: "minimize", event: &sdl.WindowEvent{Event: sdl.WINDOWEVENT_MINIMIZED}, minimized: true},
		{name: "unrelated window event", event: &sdl.WindowEvent{Event: sdl.WINDOWEVENT_FOCUS_LOST}, minimized: true},
		{name: "restore", event: &sdl.WindowEvent{Event: sdl.WINDOWEVENT_RESTORED}},
		{name: "key press", event: &sdl.KeyboardEvent{Type: sdl.KEYDOWN}},
		{name: "quit", event: &sdl.QuitEvent{Type: sdl.QUIT}, quit: true},
	}

	// Events are applied in order; minimized state carries over between them
	for _, e := range events {
		quit := app.handleEvent(e.event)
		if quit != e.quit {
			t.Errorf("%s: handleEvent() = %v, want %v", e.name, quit, e.quit)
		}
		if app.minimized != e.minimized {
			t.Errorf("%s: minimized = %v, want %v", e.name, app.minimized, e.minimized)
		}
	}
}

func TestInitSteps(t *testing.T) {
	steps := (&HelloTriangleApplication{}).initSteps()

	if steps[0].Name != "create instance" {
		t.Errorf("first step = %q, want create instance", steps[0].Name)
	}
	if last := steps[len(steps)-1].Name; last != "create semaphores" {
		t.Errorf("last step = %q, want create semaphores", last)
	}

	messenger := false
	for _, step := range steps {
		if step.Run == nil {
			t.Errorf("step %q has no Run", step.Name)
		}
		if step.Name == "setup debug messenger" {
			messenger = true
		}
	}
	if messenger != enableValidationLayers {
		t.Errorf("debug messenger step present = %v, want %v", messenger, enableValidationLayers)
	}

	want := 12
	if enableValidationLayers {
		want = 13
	}
	if len(steps) != want {
		t.Errorf("len(steps) = %d, want %d", len(steps), want)
	}
}

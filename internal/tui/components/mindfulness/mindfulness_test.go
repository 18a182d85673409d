package mindfulness

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/timer"
)

func TestModel_StartStop(t *testing.T) {
	m := New()
	if m.Running() {
		t.Fatal("new session should not be running")
	}

	if cmd := m.Start(); cmd == nil {
		t.Error("Start() should return the timer command")
	}
	if !m.Running() {
		t.Error("Running() = false after Start()")
	}

	m.Stop()
	if m.Running() {
		t.Error("Running() = true after Stop()")
	}
}

func TestModel_Timeout(t *testing.T) {
	m := NewWithDuration(time.Second)
	m.Start()

	m, cmd := m.Update(timer.TimeoutMsg{ID: m.timer.ID()})
	if !m.Done() || m.Running() {
		t.Fatalf("after timeout Done() = %v, Running() = %v", m.Done(), m.Running())
	}
	if cmd == nil {
		t.Fatal("timeout should emit DoneMsg")
	}
	if _, ok := cmd().(DoneMsg); !ok {
		t.Errorf("timeout produced %T, want DoneMsg", cmd())
	}
}

func TestModel_IgnoresForeignTimeout(t *testing.T) {
	m := NewWithDuration(time.Second)
	m.Start()

	m, cmd := m.Update(timer.TimeoutMsg{ID: m.timer.ID() + 1000})
	if m.Done() || cmd != nil {
		t.Error("a timeout from another timer should be ignored")
	}
}

func TestModel_Prompt(t *testing.T) {
	m := New()
	m.Start()

	if got := m.Prompt(); got != prompts[0] {
		t.Errorf("Prompt() at start = %q, want %q", got, prompts[0])
	}
	m.timer.Timeout = 0
	if got := m.Prompt(); got != prompts[len(prompts)-1] {
		t.Errorf("Prompt() at end = %q, want %q", got, prompts[len(prompts)-1])
	}
}

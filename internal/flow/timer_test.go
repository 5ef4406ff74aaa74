package flow

import (
	"reflect"
	"testing"
)

func TestFormatSeconds(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{7, "00:07"},
		{65, "01:05"},
		{600, "10:00"},
		{3599, "59:59"},
		{3600, "01:00:00"},
		{3725, "01:02:05"},
	}
	for _, tc := range cases {
		if got := FormatSeconds(tc.in); got != tc.want {
			t.Errorf("FormatSeconds(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTimerDefaultStartAndStop(t *testing.T) {
	qs := linearQuestions(2)
	log := &eventLog{}
	f := NewForm(qs, Config{Timer: true}, log.hooks())

	if f.TimerOn() {
		t.Fatal("timer running before any answer")
	}
	f.Tick() // ignored while stopped
	if f.ElapsedSeconds() != 0 {
		t.Fatalf("elapsed = %d, want 0", f.ElapsedSeconds())
	}

	// Default start: the first step transition.
	answer(f, qs[0], "a")
	if !f.TimerOn() {
		t.Fatal("timer not started by the first answer")
	}

	f.Tick()
	f.Tick()
	if f.ElapsedSeconds() != 2 {
		t.Errorf("elapsed = %d, want 2", f.ElapsedSeconds())
	}
	if !reflect.DeepEqual(log.ticks, []string{"00:01", "00:02"}) {
		t.Errorf("tick events = %v", log.ticks)
	}

	// Default stop: submission. No ticks after submitted.
	answer(f, qs[1], "b")
	f.Submit()
	if f.TimerOn() {
		t.Error("timer still running after submit")
	}
	f.Tick()
	if f.ElapsedSeconds() != 2 {
		t.Errorf("elapsed advanced after submit: %d", f.ElapsedSeconds())
	}
	if len(log.ticks) != 2 {
		t.Errorf("timer events after submit: %v", log.ticks)
	}
}

func TestTimerExplicitSteps(t *testing.T) {
	q0 := NewQuestion(Question{ID: "q0", Type: TypeText})
	q1 := NewQuestion(Question{ID: "q1", Type: TypeText})
	q2 := NewQuestion(Question{ID: "q2", Type: TypeText})
	cfg := Config{Timer: true, TimerStartStep: "q1", TimerStopStep: "q2"}
	f := NewForm([]*Question{q0, q1, q2}, cfg, Events{})

	answer(f, q0, "a")
	if !f.TimerOn() {
		t.Fatal("timer not started when q1 became active")
	}
	f.Tick()

	answer(f, q1, "b")
	if f.TimerOn() {
		t.Fatal("timer not stopped when q2 became active")
	}

	// Leaving the stop step backwards restarts the timer.
	f.Previous()
	if !f.TimerOn() {
		t.Error("timer not restarted by previous navigation")
	}
}

func TestTimerPreviousBeforeStartKeepsTimerOff(t *testing.T) {
	q0 := NewQuestion(Question{ID: "q0", Type: TypeText})
	q1 := NewQuestion(Question{ID: "q1", Type: TypeText})
	q2 := NewQuestion(Question{ID: "q2", Type: TypeText})
	cfg := Config{Timer: true, TimerStartStep: "q2"}
	f := NewForm([]*Question{q0, q1, q2}, cfg, Events{})

	answer(f, q0, "a")
	if f.TimerOn() {
		t.Fatal("timer started before its start step")
	}

	// Previous restarts a stopped timer, never one that has not run.
	f.Previous()
	if f.TimerOn() {
		t.Error("previous navigation started a timer that never ran")
	}
	if f.ElapsedSeconds() != 0 {
		t.Errorf("elapsed = %d, want 0", f.ElapsedSeconds())
	}
}

func TestTimerStartStepIsFirstQuestion(t *testing.T) {
	q0 := NewQuestion(Question{ID: "q0", Type: TypeText})
	q1 := NewQuestion(Question{ID: "q1", Type: TypeText})
	cfg := Config{Timer: true, TimerStartStep: "q0"}
	f := NewForm([]*Question{q0, q1}, cfg, Events{})

	// An explicit start step naming the first question arms the timer
	// immediately at activation.
	if !f.TimerOn() {
		t.Error("timer not started at first-question activation")
	}
}

func TestTimerDisabled(t *testing.T) {
	qs := linearQuestions(1)
	f := NewForm(qs, Config{}, Events{})
	answer(f, qs[0], "a")
	if f.TimerOn() {
		t.Error("timer ran without the timer flag")
	}
}

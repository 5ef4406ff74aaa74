package flow

import "fmt"

// timerState is the independent timer sub-state machine, gated by the
// configured start/stop question ids.
type timerState struct {
	on      bool
	started bool
	seconds int
}

// TimerOn reports whether the elapsed-time ticker should be running.
// The host owns the actual clock and calls Tick once per second while
// this is true.
func (f *Form) TimerOn() bool {
	return f.timer.on
}

// ElapsedSeconds returns the accumulated timer seconds.
func (f *Form) ElapsedSeconds() int {
	return f.timer.seconds
}

// Tick advances the timer by one second and emits a timer event. Ticks
// are ignored while the timer is stopped or after submission.
func (f *Form) Tick() {
	if !f.timer.on || f.state == StateSubmitted {
		return
	}
	f.timer.seconds++
	if f.events.OnTimer != nil {
		f.events.OnTimer(f.timer.seconds, FormatSeconds(f.timer.seconds))
	}
}

func (f *Form) startTimer() {
	if !f.cfg.Timer {
		return
	}
	f.timer.on = true
	f.timer.started = true
}

func (f *Form) stopTimer() {
	f.timer.on = false
}

// checkTimer applies the start/stop triggers when the question with the
// given id becomes active. With no explicit start step the timer starts
// on the first step transition; with no explicit stop step it stops at
// submission instead.
func (f *Form) checkTimer(id string) {
	if !f.cfg.Timer {
		return
	}
	if f.cfg.TimerStopStep != "" && id == f.cfg.TimerStopStep {
		f.stopTimer()
		return
	}
	if f.timer.on {
		return
	}
	if f.cfg.TimerStartStep == "" || id == f.cfg.TimerStartStep {
		f.startTimer()
	}
}

// FormatSeconds renders elapsed seconds as mm:ss, switching to
// hh:mm:ss once a full hour has passed.
func FormatSeconds(s int) string {
	if s >= 3600 {
		return fmt.Sprintf("%02d:%02d:%02d", s/3600, (s%3600)/60, s%60)
	}
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

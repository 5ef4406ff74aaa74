package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/askren/flowform/internal/flow"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.ticking = false
		m.form.Tick()
		return m.scheduleTick()

	case saveDoneMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Save failed: %v", msg.err)
			m.statusErr = true
			return m, nil
		}
		m.saved = true
		m.status = fmt.Sprintf("Submission %s saved.", msg.id)
		m.statusErr = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	// After submission the only remaining binding is quit.
	if m.form.Submitted() {
		switch msg.String() {
		case "enter", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Continue):
		return m.afterEngine(func() { m.form.Input(flow.KeyEnter) })

	case key.Matches(msg, m.keys.Next):
		return m.afterEngine(func() { m.form.Input(flow.KeyTab) })

	case key.Matches(msg, m.keys.Prev):
		return m.afterEngine(func() { m.form.Input(flow.KeyShiftTab) })
	}

	// Everything else belongs to the active question's widget.
	w := m.activeWidget()
	if w == nil {
		return m, nil
	}
	cmd := w.Update(msg)

	// Selecting an option on an auto-advance question commits it
	// without waiting for Enter.
	if q := w.Question(); msg.Type == tea.KeySpace && q.NextStepOnAnswer && !q.Multiple && w.HasValue() {
		next, engineCmd := m.afterEngine(func() { m.form.Input(flow.KeyEnter) })
		return next, tea.Batch(cmd, engineCmd)
	}
	return m, cmd
}

// afterEngine runs an engine call and then reconciles runner state with
// whatever the engine did: focus follows the cursor, submission kicks
// off the save, and a freshly started timer gets its ticker.
func (m model) afterEngine(call func()) (tea.Model, tea.Cmd) {
	wasSubmitted := m.form.Submitted()
	call()
	m.focusActive()

	var cmds []tea.Cmd
	if !wasSubmitted && m.form.Submitted() && m.repo != nil {
		cmds = append(cmds, saveCmd(m.repo, m.def, m.feed.submitted, m.form.ElapsedSeconds()))
	}
	next, tick := m.scheduleTick()
	m = next.(model)
	if tick != nil {
		cmds = append(cmds, tick)
	}
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

// scheduleTick keeps exactly one pending ticker while the timer runs.
func (m model) scheduleTick() (tea.Model, tea.Cmd) {
	if m.form.TimerOn() && !m.ticking {
		m.ticking = true
		return m, tickCmd()
	}
	return m, nil
}

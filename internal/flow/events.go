package flow

// Events is the engine's public event surface. Hooks are optional; nil
// hooks are skipped. All hooks fire synchronously inside the engine
// call that caused them.
type Events struct {
	// OnAnswer fires each time a question is successfully answered.
	OnAnswer func(q *Question)
	// OnStep fires whenever the active question changes. Once the form
	// is fully completed it fires with SubmitID and a nil question.
	OnStep func(id string, q *Question)
	// OnComplete fires whenever the completed state flips.
	OnComplete func(completed bool, list []*Question)
	// OnSubmit fires once, on explicit final submission.
	OnSubmit func(list []*Question)
	// OnTimer fires every elapsed second while the timer runs.
	OnTimer func(seconds int, formatted string)
}

// Key is a navigation input event delivered to the engine. The host
// subscribes to its own input source once and forwards these; the
// engine dispatches internally to the active question's widget.
type Key int

const (
	// KeyEnter commits the current answer and moves forward.
	KeyEnter Key = iota
	// KeyTab commits and advances, unless the active widget still
	// needs focus, in which case focus is restored instead.
	KeyTab
	// KeyShiftTab moves to the previous question, unless the focused
	// widget captures it.
	KeyShiftTab
)

// Widget is the engine's view of the rendered question widget: the
// narrow contract through which answers are committed and focus is
// negotiated. The engine never reaches past it.
type Widget interface {
	Question() *Question
	HasValue() bool
	IsValid() bool
	Focused() bool
	Focus()
	Blur()
	// OnEnter commits the widget's current input into the question's
	// answer. OnTab is the variant used for tab-advance.
	OnEnter()
	OnTab()
	// ShouldFocus reports that the widget still needs to receive input
	// focus before navigation keys may advance past it.
	ShouldFocus() bool
}

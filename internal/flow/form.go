// Package flow implements the conversational form engine: a list of
// questions walked one at a time, with per-question branch ("jump")
// rules deciding which questions are reachable, an explicit lifecycle
// state machine, progress computation, and an optional elapsed-time
// timer. Rendering is the host's concern; the engine talks to the
// rendered question only through the Widget contract.
package flow

// Config carries the construction-time engine flags.
type Config struct {
	Progressbar    bool
	Standalone     bool
	Navigation     bool
	Timer          bool
	TimerStartStep string
	TimerStopStep  string
}

// AnswerSource is what the engine needs from whoever reports an answer
// change: the question it belongs to and whether the committed value
// passes the widget's validation.
type AnswerSource interface {
	Question() *Question
	IsValid() bool
}

// Form owns the full question list, computes the active path through
// the branch rules, tracks the cursor, and emits lifecycle events. All
// mutation happens synchronously inside its methods; the question slice
// and cursor are exclusively engine-owned.
type Form struct {
	questions    []*Question
	activePath   []*Question
	questionList []*Question
	activeIndex  int
	reverse      bool
	completed    bool
	submitted    bool
	state        State

	cfg      Config
	events   Events
	timer    timerState
	resolver func(*Question) Widget
}

// NewForm builds the engine over an ordered question list. Indices are
// assigned immediately by the first active-path resolution.
func NewForm(questions []*Question, cfg Config, events Events) *Form {
	f := &Form{
		questions: questions,
		cfg:       cfg,
		events:    events,
	}
	f.setQuestionListActivePath()
	f.setQuestionList()
	f.syncState()
	// An explicit start step naming the first question arms the timer
	// at activation; the default start is the first step transition.
	if cfg.Timer && cfg.TimerStartStep != "" && len(f.activePath) > 0 {
		f.checkTimer(f.activePath[0].ID)
	}
	return f
}

// BindWidgets registers the host's widget resolver so keyboard input
// events can be dispatched to the active question's widget.
func (f *Form) BindWidgets(resolver func(*Question) Widget) {
	f.resolver = resolver
}

// Questions returns the full, unbranched question list.
func (f *Form) Questions() []*Question { return f.questions }

// ActivePath returns the questions reachable given the answers so far.
func (f *Form) ActivePath() []*Question { return f.activePath }

// QuestionList returns the rendered subset: the active-path prefix up
// to and including the first unanswered question.
func (f *Form) QuestionList() []*Question { return f.questionList }

// ActiveIndex returns the cursor into the question list. It equals
// len(QuestionList()) on the final submit step.
func (f *Form) ActiveIndex() int { return f.activeIndex }

// ActiveQuestion returns the question under the cursor, or nil on the
// submit step.
func (f *Form) ActiveQuestion() *Question {
	if f.activeIndex >= 0 && f.activeIndex < len(f.questionList) {
		return f.questionList[f.activeIndex]
	}
	return nil
}

// State returns the engine's lifecycle state.
func (f *Form) State() State { return f.state }

// Completed reports that every question on the active path is answered.
func (f *Form) Completed() bool { return f.completed }

// Submitted reports that final submission has been confirmed.
func (f *Form) Submitted() bool { return f.submitted }

// Reverse reports whether the last navigation went backwards. Hosts use
// it as an animation-direction hint.
func (f *Form) Reverse() bool { return f.reverse }

// NumActiveQuestions returns the active path length.
func (f *Form) NumActiveQuestions() int { return len(f.activePath) }

// PercentCompleted returns floor(100 * answered / active-path length),
// 0 for an empty path.
func (f *Form) PercentCompleted() int {
	if len(f.activePath) == 0 {
		return 0
	}
	answered := 0
	for _, q := range f.activePath {
		if q.Answered {
			answered++
		}
	}
	return 100 * answered / len(f.activePath)
}

// Answer processes an answer change reported for a question. A valid
// answer to the active question recomputes the active path, advances
// the cursor, and emits the step event; an invalid answer on a
// previously completed form reverts the completed state. Ignored after
// submission.
func (f *Form) Answer(src AnswerSource) {
	if f.submitted {
		return
	}
	q := src.Question()
	q.Answered = src.IsValid()

	if !q.Answered {
		if f.completed {
			f.setCompleted(false)
		}
		f.refresh()
		return
	}

	if f.events.OnAnswer != nil {
		f.events.OnAnswer(q)
	}

	active := f.ActiveQuestion()
	f.refresh()
	if active != nil && active != q {
		// Edited a prior answer: reachability may have changed but the
		// cursor stays put.
		return
	}

	f.reverse = false
	if f.activeIndex < len(f.questionList) {
		f.activeIndex++
	}
	f.syncState()

	if next := f.ActiveQuestion(); next != nil {
		f.checkTimer(next.ID)
		f.emitStep(next.ID, next)
	} else if f.activeIndex >= len(f.activePath) && f.completed {
		f.emitStep(SubmitID, nil)
	}
}

// Submit confirms final submission. Only reachable from the completed
// state; anything else is a no-op guard.
func (f *Form) Submit() {
	if f.state != StateCompleted {
		return
	}
	f.stopTimer()
	f.submitted = true
	f.syncState()
	if f.events.OnSubmit != nil {
		f.events.OnSubmit(f.questionList)
	}
}

// Previous moves the cursor back one question. No-op at the start or
// after submission. Stepping back after the timer stopped restarts it.
func (f *Form) Previous() {
	if f.submitted || f.activeIndex <= 0 {
		return
	}
	f.activeIndex--
	f.reverse = true
	f.syncState()
	if f.cfg.Timer && f.timer.started && !f.timer.on {
		f.startTimer()
	}
	if q := f.ActiveQuestion(); q != nil {
		f.emitStep(q.ID, q)
	}
}

// CanGoNext reports whether forward navigation is currently permitted:
// the active question is optional, or the form is completed and the
// cursor is not yet on the submit step, or the cursor sits strictly
// before the end of the rendered list.
func (f *Form) CanGoNext() bool {
	if f.submitted {
		return false
	}
	if q := f.ActiveQuestion(); q != nil && !q.Required {
		return true
	}
	if f.completed && f.activeIndex < len(f.questionList) {
		return true
	}
	return f.activeIndex < len(f.questionList)-1
}

// Next advances via the same pathway as pressing Enter on the active
// question. Out-of-range requests are no-ops.
func (f *Form) Next() {
	if !f.CanGoNext() {
		return
	}
	f.commitActive(false)
}

// Input delivers a keyboard navigation event. Returns true when the
// engine consumed it. All bindings are suppressed once submitted.
func (f *Form) Input(k Key) bool {
	if f.submitted {
		return false
	}
	switch k {
	case KeyEnter:
		if f.completed && f.ActiveQuestion() == nil {
			f.Submit()
			return true
		}
		return f.commitActive(false)
	case KeyTab:
		if w := f.activeWidget(); w != nil && w.ShouldFocus() {
			w.Focus()
			return true
		}
		return f.commitActive(true)
	case KeyShiftTab:
		if w := f.activeWidget(); w != nil && w.Focused() && w.ShouldFocus() {
			return false
		}
		f.Previous()
		return true
	}
	return false
}

// commitActive asks the active widget to commit its current input and
// routes the result through Answer. The tab variant uses OnTab.
func (f *Form) commitActive(tab bool) bool {
	w := f.activeWidget()
	if w == nil {
		return false
	}
	if tab {
		w.OnTab()
	} else {
		w.OnEnter()
	}
	f.Answer(w)
	return true
}

func (f *Form) activeWidget() Widget {
	if f.resolver == nil {
		return nil
	}
	q := f.ActiveQuestion()
	if q == nil {
		return nil
	}
	return f.resolver(q)
}

// refresh recomputes the active path, the rendered subset, and the
// completed flag, in that order. Recomputation always happens before
// any cursor movement in the same answer event.
func (f *Form) refresh() {
	f.setQuestionListActivePath()
	f.setQuestionList()
	f.syncState()
}

// setQuestionListActivePath walks the full question list from the top,
// following each answered question's jump rule: a known target id moves
// the walk there, the submit sentinel or an unknown id ends the form,
// an unanswered question with a jump rule truncates the path. A target
// already on the path also ends the walk, so cyclic jump configurations
// terminate instead of looping.
func (f *Form) setQuestionListActivePath() {
	path := make([]*Question, 0, len(f.questions))
	onPath := make(map[*Question]bool, len(f.questions))
	serial := 0
	idx := 0
	for idx < len(f.questions) {
		q := f.questions[idx]
		if onPath[q] {
			break
		}
		q.SetIndex(serial)
		serial++
		path = append(path, q)
		onPath[q] = true

		if !q.HasJump() {
			idx++
			continue
		}
		if !q.Answered {
			break
		}
		target := q.JumpTarget()
		if target == "" {
			idx++
			continue
		}
		if target == SubmitID {
			break
		}
		pos := f.indexOfID(target)
		if pos < 0 {
			// Unknown target id: treated as reaching the end, not as
			// a configuration error.
			break
		}
		idx = pos
	}
	f.activePath = path
}

// setQuestionList keeps the active-path prefix up to and including the
// first unanswered question, and derives the completed flag: true iff
// the whole path is answered.
func (f *Form) setQuestionList() {
	list := make([]*Question, 0, len(f.activePath))
	allAnswered := true
	for _, q := range f.activePath {
		list = append(list, q)
		if !q.Answered {
			allAnswered = false
			break
		}
	}
	f.questionList = list
	if len(f.activePath) == 0 {
		allAnswered = false
	}
	if allAnswered != f.completed {
		f.setCompleted(allAnswered)
	}
}

func (f *Form) setCompleted(v bool) {
	f.completed = v
	f.syncState()
	if f.events.OnComplete != nil {
		f.events.OnComplete(v, f.questionList)
	}
}

func (f *Form) emitStep(id string, q *Question) {
	if f.events.OnStep != nil {
		f.events.OnStep(id, q)
	}
}

func (f *Form) indexOfID(id string) int {
	for i, q := range f.questions {
		if q.ID == id {
			return i
		}
	}
	return -1
}

// syncState derives the lifecycle state from the flags and cursor.
func (f *Form) syncState() {
	switch {
	case f.submitted:
		f.state = StateSubmitted
	case f.completed:
		f.state = StateCompleted
	case f.activeIndex >= len(f.questionList) && f.anyAnswered():
		f.state = StateAwaitingCompletion
	case f.anyAnswered() || f.activeIndex > 0:
		f.state = StateInProgress
	default:
		f.state = StateIdle
	}
}

func (f *Form) anyAnswered() bool {
	for _, q := range f.questions {
		if q.Answered {
			return true
		}
	}
	return false
}

package script

import (
	"testing"

	"github.com/askren/flowform/internal/flow"
)

func TestCompileJumpAnswerBranch(t *testing.T) {
	fn, err := CompileJump(`question.answer === "yes" ? "q_details" : "q_end"`, nil)
	if err != nil {
		t.Fatalf("CompileJump: %v", err)
	}

	q := flow.NewQuestion(flow.Question{ID: "q0", Type: flow.TypeText})
	q.SetAnswer("yes")
	if got := fn(q); got != "q_details" {
		t.Errorf("jump = %q, want q_details", got)
	}
	q.SetAnswer("no")
	if got := fn(q); got != "q_end" {
		t.Errorf("jump = %q, want q_end", got)
	}
}

func TestCompileJumpSeesCollectedAnswers(t *testing.T) {
	qs := []*flow.Question{
		flow.NewQuestion(flow.Question{ID: "age", Type: flow.TypeNumber}),
		flow.NewQuestion(flow.Question{ID: "q1", Type: flow.TypeText}),
	}
	qs[0].SetAnswer("20")
	qs[0].Answered = true

	fn, err := CompileJump(`answers["age"] >= 18 ? "q_adult" : "q_minor"`, func() map[string]any {
		return Answers(qs)
	})
	if err != nil {
		t.Fatalf("CompileJump: %v", err)
	}
	if got := fn(qs[1]); got != "q_adult" {
		t.Errorf("jump = %q, want q_adult", got)
	}
}

func TestCompileJumpNonStringResult(t *testing.T) {
	fn, err := CompileJump(`42`, nil)
	if err != nil {
		t.Fatalf("CompileJump: %v", err)
	}
	q := flow.NewQuestion(flow.Question{ID: "q0", Type: flow.TypeText})
	if got := fn(q); got != "" {
		t.Errorf("jump = %q, want empty for non-string result", got)
	}
}

func TestCompileJumpThrowFailsOpen(t *testing.T) {
	fn, err := CompileJump(`(function(){ throw new Error("boom") })()`, nil)
	if err != nil {
		t.Fatalf("CompileJump: %v", err)
	}
	q := flow.NewQuestion(flow.Question{ID: "q0", Type: flow.TypeText})
	if got := fn(q); got != "" {
		t.Errorf("jump = %q, want empty on throw", got)
	}
}

func TestCompileJumpSyntaxError(t *testing.T) {
	if _, err := CompileJump(`question.answer ===`, nil); err == nil {
		t.Fatal("expected compile error")
	}
}

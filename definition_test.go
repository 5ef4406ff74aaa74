package main

import (
	"strings"
	"testing"

	"github.com/askren/flowform/internal/flow"
)

func TestParseDefaultDefinition(t *testing.T) {
	def, err := parseDefinition([]byte(defaultDefinitionTOML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if def.Name != "feedback" {
		t.Errorf("name = %q", def.Name)
	}
	if len(def.Questions) != 5 {
		t.Fatalf("questions = %d, want 5", len(def.Questions))
	}
	if err := def.validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}

	questions, err := def.buildQuestions()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	// "liked" branches: Yes skips the feedback question, No visits it
	// and then jumps straight to the end.
	liked := questions[2]
	if got := liked.JumpTarget(); got != "" {
		t.Errorf("unanswered jump target = %q", got)
	}
	liked.SetAnswer("No")
	liked.Answered = true
	if got := liked.JumpTarget(); got != "feedback" {
		t.Errorf("jump target = %q, want feedback", got)
	}
	feedback := questions[3]
	feedback.SetAnswer("too slow")
	feedback.Answered = true
	if got := feedback.JumpTarget(); got != flow.SubmitID {
		t.Errorf("jump target = %q, want %q", got, flow.SubmitID)
	}
}

func TestParseDefinitionRejectsUnknownType(t *testing.T) {
	src := `
name = "x"
[[question]]
id = "a"
type = "checkbox"
title = "Broken"
`
	if _, err := parseDefinition([]byte(src)); err == nil {
		t.Fatal("expected error for unknown question type")
	} else if !strings.Contains(err.Error(), "checkbox") {
		t.Errorf("error should name the bad type: %v", err)
	}
}

func TestParseDefinitionRejectsEmptyForm(t *testing.T) {
	if _, err := parseDefinition([]byte(`name = "empty"`)); err == nil {
		t.Fatal("expected error for form with no questions")
	}
}

func TestValidateRejectsUnknownJumpTarget(t *testing.T) {
	src := `
name = "x"
[[question]]
id = "a"
type = "text"
title = "A"
[question.jump]
_other = "nowhere"
`
	def, err := parseDefinition([]byte(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := def.validate(); err == nil {
		t.Fatal("expected error for jump to unknown question")
	}
}

func TestValidateAcceptsSubmitJump(t *testing.T) {
	src := `
name = "x"
[[question]]
id = "a"
type = "text"
title = "A"
[question.jump]
_other = "_submit"
`
	def, err := parseDefinition([]byte(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := def.validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestBuildQuestionsJumpScript(t *testing.T) {
	src := `
name = "x"
[[question]]
id = "age"
type = "number"
title = "Age?"
jump_script = "question.answer >= 18 ? 'adult' : 'minor'"
[[question]]
id = "minor"
type = "text"
title = "Guardian name?"
[[question]]
id = "adult"
type = "text"
title = "Occupation?"
`
	def, err := parseDefinition([]byte(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	questions, err := def.buildQuestions()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	age := questions[0]
	age.SetAnswer("21")
	age.Answered = true
	if got := age.JumpTarget(); got != "adult" {
		t.Errorf("jump target = %q, want adult", got)
	}
	age.SetAnswer("12")
	if got := age.JumpTarget(); got != "minor" {
		t.Errorf("jump target = %q, want minor", got)
	}
}

func TestBuildQuestionsRejectsBadScript(t *testing.T) {
	src := `
name = "x"
[[question]]
id = "a"
type = "text"
title = "A"
jump_script = "this is not javascript ((("
`
	def, err := parseDefinition([]byte(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := def.buildQuestions(); err == nil {
		t.Fatal("expected compile error for malformed jump script")
	}
}

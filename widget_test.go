package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/askren/flowform/internal/flow"
	"github.com/askren/flowform/internal/lang"
)

func TestValidText(t *testing.T) {
	cases := []struct {
		typ  flow.QuestionType
		v    string
		want bool
	}{
		{flow.TypeEmail, "a@b.com", true},
		{flow.TypeEmail, "a@b", false},
		{flow.TypeEmail, "@b.com", false},
		{flow.TypeNumber, "42.5", true},
		{flow.TypeNumber, "forty", false},
		{flow.TypeURL, "https://example.com/x", true},
		{flow.TypeURL, "example.com", false},
		{flow.TypeURL, "ftp://example.com", false},
		{flow.TypePhone, "(04) 123 4567", true},
		{flow.TypePhone, "123", false},
		{flow.TypeDate, "2026-08-28", true},
		{flow.TypeDate, "28/08/2026", false},
		{flow.TypeText, "anything", true},
	}
	for _, tc := range cases {
		if got := validText(tc.typ, tc.v); got != tc.want {
			t.Errorf("validText(%s, %q) = %v, want %v", tc.typ, tc.v, got, tc.want)
		}
	}
}

func TestTextWidgetCommit(t *testing.T) {
	q := flow.NewQuestion(flow.Question{ID: "name", Type: flow.TypeText})
	w := newTextWidget(q, lang.Default())

	w.input.SetValue("  Jane  ")
	w.OnEnter()
	if q.Answer != "Jane" {
		t.Errorf("answer = %v, want Jane", q.Answer)
	}

	w.input.SetValue("   ")
	w.OnEnter()
	if q.Answer != nil {
		t.Errorf("blank commit should clear the answer, got %v", q.Answer)
	}
}

func TestTextWidgetValidity(t *testing.T) {
	q := flow.NewQuestion(flow.Question{ID: "mail", Type: flow.TypeEmail, Required: true})
	w := newTextWidget(q, lang.Default())

	if w.IsValid() {
		t.Error("empty required field should be invalid")
	}
	w.input.SetValue("not-an-email")
	if w.IsValid() {
		t.Error("malformed email should be invalid")
	}
	w.input.SetValue("jane@example.com")
	if !w.IsValid() {
		t.Error("well-formed email should be valid")
	}
}

func TestChoiceWidgetSingleToggle(t *testing.T) {
	q := flow.NewQuestion(flow.Question{
		ID:   "pick",
		Type: flow.TypeMultipleChoice,
		Options: []*flow.ChoiceOption{
			{Label: "Red"},
			{Label: "Blue", Value: "b"},
		},
	})
	w := newChoiceWidget(q, lang.Default())

	w.toggle()
	w.move(1)
	w.toggle()
	if len(w.selected) != 1 || !w.selected[1] {
		t.Fatalf("single-select should keep only the last pick, got %v", w.selected)
	}

	w.commit()
	if q.Answer != "b" {
		t.Errorf("answer = %v, want option value b", q.Answer)
	}
	if !q.Options[1].Selected || q.Options[0].Selected {
		t.Error("option selection state not recomputed from answer")
	}
}

func TestChoiceWidgetMultipleWithOther(t *testing.T) {
	q := flow.NewQuestion(flow.Question{
		ID:         "langs",
		Type:       flow.TypeMultipleChoice,
		Multiple:   true,
		AllowOther: true,
		Options: []*flow.ChoiceOption{
			{Label: "Go"},
			{Label: "Rust"},
		},
	})
	w := newChoiceWidget(q, lang.Default())

	w.toggle()
	w.other.SetValue("Zig")
	w.commit()

	got, ok := q.Answer.([]any)
	if !ok || len(got) != 2 {
		t.Fatalf("answer = %v, want two entries", q.Answer)
	}
	if got[0] != "Go" || got[1] != "Zig" {
		t.Errorf("answer = %v", got)
	}
	if q.OtherAnswer != "Zig" {
		t.Errorf("other answer = %q, want Zig", q.OtherAnswer)
	}
}

func TestChoiceWidgetFilter(t *testing.T) {
	q := flow.NewQuestion(flow.Question{
		ID:   "fruit",
		Type: flow.TypeDropdown,
		Options: []*flow.ChoiceOption{
			{Label: "Apple"},
			{Label: "Banana"},
			{Label: "Cherry"},
		},
	})
	w := newChoiceWidget(q, lang.Default())
	if len(w.visible) != 3 {
		t.Fatalf("visible = %d, want all 3", len(w.visible))
	}

	w.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ban")})
	if len(w.visible) == 0 || w.visible[0] != 1 {
		t.Errorf("filter 'ban' should rank Banana first, visible = %v", w.visible)
	}

	for i := 0; i < 3; i++ {
		w.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	}
	if len(w.visible) != 3 {
		t.Errorf("clearing the query should restore all options, visible = %v", w.visible)
	}
}

func TestChoiceWidgetLeavesOtherRow(t *testing.T) {
	q := flow.NewQuestion(flow.Question{
		ID:         "langs",
		Type:       flow.TypeMultipleChoice,
		Multiple:   true,
		AllowOther: true,
		Options: []*flow.ChoiceOption{
			{Label: "Go"},
			{Label: "Rust"},
		},
	})
	w := newChoiceWidget(q, lang.Default())

	w.Update(tea.KeyMsg{Type: tea.KeyDown})
	w.Update(tea.KeyMsg{Type: tea.KeyDown})
	if !w.onOther {
		t.Fatal("cursor did not reach the other row")
	}

	w.Update(tea.KeyMsg{Type: tea.KeyUp})
	if w.onOther {
		t.Fatal("up key did not leave the other row")
	}
	if w.cursor != 1 {
		t.Errorf("cursor = %d, want last option row", w.cursor)
	}
	if w.other.Focused() {
		t.Error("other input still focused after leaving its row")
	}
}

func TestRateWidgetDigitEntry(t *testing.T) {
	q := flow.NewQuestion(flow.Question{ID: "score", Type: flow.TypeRate})
	w := newRateWidget(q)

	w.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("4")})
	if w.value != 4 {
		t.Fatalf("value = %d, want 4", w.value)
	}
	w.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("9")})
	if w.value != 4 {
		t.Errorf("digit beyond max rating should be ignored, value = %d", w.value)
	}
	w.Update(tea.KeyMsg{Type: tea.KeyRight})
	if w.value != 5 {
		t.Errorf("value = %d, want 5", w.value)
	}

	w.commit()
	if q.Answer != float64(5) {
		t.Errorf("answer = %v, want 5", q.Answer)
	}
}

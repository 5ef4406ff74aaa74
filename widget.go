package main

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/askren/flowform/internal/flow"
	"github.com/askren/flowform/internal/lang"
	"github.com/askren/flowform/internal/match"
)

// questionWidget is one rendered question. It satisfies the engine's
// widget contract and additionally knows how to consume terminal input
// and draw itself.
type questionWidget interface {
	flow.Widget
	Update(msg tea.Msg) tea.Cmd
	View(tab lang.Table, width int) string
}

// newWidget builds the widget for a question's type family.
func newWidget(q *flow.Question, tab lang.Table) questionWidget {
	switch q.Type {
	case flow.TypeDropdown, flow.TypeMultipleChoice, flow.TypeMultiplePictureChoice:
		return newChoiceWidget(q, tab)
	case flow.TypeRate:
		return newRateWidget(q)
	case flow.TypeSectionBreak:
		return &sectionWidget{q: q}
	default:
		return newTextWidget(q, tab)
	}
}

// ---------------------------------------------------------------------------
// Text-family widget (text, longtext, email, password, phone, number,
// url, date)
// ---------------------------------------------------------------------------

type textWidget struct {
	q     *flow.Question
	input textinput.Model
}

func newTextWidget(q *flow.Question, tab lang.Table) *textWidget {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = q.Placeholder
	if ti.Placeholder == "" {
		ti.Placeholder = tab.Placeholder
	}
	if q.Type == flow.TypePassword {
		ti.EchoMode = textinput.EchoPassword
	}
	if q.Answer != nil {
		if s, ok := q.Answer.(string); ok {
			ti.SetValue(s)
		} else {
			ti.SetValue(fmt.Sprintf("%v", q.Answer))
		}
	}
	return &textWidget{q: q, input: ti}
}

func (w *textWidget) Question() *flow.Question { return w.q }
func (w *textWidget) HasValue() bool           { return strings.TrimSpace(w.input.Value()) != "" }
func (w *textWidget) Focused() bool            { return w.input.Focused() }
func (w *textWidget) Focus()                   { w.input.Focus() }
func (w *textWidget) Blur()                    { w.input.Blur() }
func (w *textWidget) ShouldFocus() bool        { return !w.input.Focused() }

func (w *textWidget) IsValid() bool {
	v := strings.TrimSpace(w.input.Value())
	if v == "" {
		return !w.q.Required
	}
	return validText(w.q.Type, v)
}

func (w *textWidget) OnEnter() { w.commit() }
func (w *textWidget) OnTab()   { w.commit() }

func (w *textWidget) commit() {
	v := strings.TrimSpace(w.input.Value())
	if v == "" {
		w.q.SetAnswer(nil)
		return
	}
	w.q.SetAnswer(v)
}

func (w *textWidget) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return cmd
}

func (w *textWidget) View(tab lang.Table, width int) string {
	var b strings.Builder
	b.WriteString(w.input.View())
	if w.HasValue() && !w.IsValid() {
		b.WriteString("\n" + invalidStyle.Render(tab.InvalidPrompt))
	}
	return b.String()
}

// validText applies the per-type shape check. Deliberately permissive:
// the engine treats validation as the widget's concern and these checks
// only gate the advance transition.
func validText(t flow.QuestionType, v string) bool {
	switch t {
	case flow.TypeEmail:
		at := strings.Index(v, "@")
		return at > 0 && strings.Contains(v[at:], ".")
	case flow.TypeNumber:
		_, err := strconv.ParseFloat(v, 64)
		return err == nil
	case flow.TypeURL:
		u, err := url.Parse(v)
		return err == nil && u.Host != "" && (u.Scheme == "http" || u.Scheme == "https")
	case flow.TypePhone:
		digits := 0
		for _, r := range v {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		return digits >= 7
	case flow.TypeDate:
		_, err := time.Parse("2006-01-02", v)
		return err == nil
	default:
		return true
	}
}

// ---------------------------------------------------------------------------
// Choice-family widget (dropdown, multiple choice, picture choice)
// ---------------------------------------------------------------------------

type choiceWidget struct {
	q        *flow.Question
	cursor   int
	selected map[int]bool
	visible  []int // option indices after filtering
	query    string
	other    textinput.Model
	onOther  bool
	focused  bool
}

func newChoiceWidget(q *flow.Question, tab lang.Table) *choiceWidget {
	other := textinput.New()
	other.Prompt = "> "
	other.Placeholder = tab.OtherPrompt
	if q.OtherAnswer != "" {
		other.SetValue(q.OtherAnswer)
	}

	w := &choiceWidget{
		q:        q,
		selected: make(map[int]bool),
		other:    other,
	}
	for i, opt := range q.Options {
		if opt.Selected {
			w.selected[i] = true
		}
	}
	w.refilter()
	return w
}

func (w *choiceWidget) Question() *flow.Question { return w.q }
func (w *choiceWidget) Focused() bool            { return w.focused }
func (w *choiceWidget) Focus()                   { w.focused = true }
func (w *choiceWidget) Blur() {
	w.focused = false
	w.other.Blur()
}
func (w *choiceWidget) ShouldFocus() bool { return w.onOther && !w.other.Focused() }

func (w *choiceWidget) HasValue() bool {
	if len(w.selected) > 0 {
		return true
	}
	return w.q.AllowOther && strings.TrimSpace(w.other.Value()) != ""
}

func (w *choiceWidget) IsValid() bool {
	return !w.q.Required || w.HasValue()
}

func (w *choiceWidget) OnEnter() { w.commit() }
func (w *choiceWidget) OnTab()   { w.commit() }

// commit projects the selection set (plus any other text) into the
// question's answer and recomputes option state from it.
func (w *choiceWidget) commit() {
	otherText := ""
	if w.q.AllowOther {
		otherText = strings.TrimSpace(w.other.Value())
	}

	if w.q.Multiple {
		values := make([]any, 0, len(w.selected)+1)
		for i, opt := range w.q.Options {
			if w.selected[i] {
				values = append(values, opt.EffectiveValue())
			}
		}
		if otherText != "" {
			values = append(values, otherText)
		}
		w.q.SetAnswer(values)
	} else {
		var value any
		for i, opt := range w.q.Options {
			if w.selected[i] {
				value = opt.EffectiveValue()
				break
			}
		}
		if value == nil && otherText != "" {
			value = otherText
		}
		w.q.SetAnswer(value)
	}
	w.q.ResetOptions()
}

// toggle flips the option under the cursor. Single-select clears any
// previous pick first.
func (w *choiceWidget) toggle() {
	if w.onOther {
		return
	}
	if len(w.visible) == 0 {
		return
	}
	idx := w.visible[w.cursor]
	if w.q.Multiple {
		if w.selected[idx] {
			delete(w.selected, idx)
		} else {
			w.selected[idx] = true
		}
		return
	}
	for k := range w.selected {
		delete(w.selected, k)
	}
	w.selected[idx] = true
}

func (w *choiceWidget) move(delta int) {
	rows := len(w.visible)
	if w.q.AllowOther {
		rows++
	}
	if rows == 0 {
		return
	}
	pos := w.cursor
	if w.onOther {
		pos = len(w.visible)
	}
	pos += delta
	if pos < 0 {
		pos = 0
	}
	if pos > rows-1 {
		pos = rows - 1
	}
	if w.q.AllowOther && pos == len(w.visible) {
		w.onOther = true
		w.other.Focus()
		return
	}
	w.onOther = false
	w.other.Blur()
	w.cursor = pos
}

// refilter recomputes the visible option rows from the typed query.
func (w *choiceWidget) refilter() {
	labels := make([]string, len(w.q.Options))
	for i, opt := range w.q.Options {
		labels[i] = opt.EffectiveLabel()
	}
	w.visible = match.Filter(w.query, labels, 0.4)
	if w.cursor >= len(w.visible) {
		w.cursor = 0
	}
}

func (w *choiceWidget) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if w.onOther {
		// Arrow keys move the cursor off the other row; everything
		// else belongs to its text input.
		switch key.Type {
		case tea.KeyUp:
			w.move(-1)
			return nil
		case tea.KeyDown:
			w.move(1)
			return nil
		}
		var cmd tea.Cmd
		w.other, cmd = w.other.Update(msg)
		return cmd
	}

	switch key.Type {
	case tea.KeyUp:
		w.move(-1)
	case tea.KeyDown:
		w.move(1)
	case tea.KeySpace:
		w.toggle()
	case tea.KeyBackspace:
		if w.query != "" {
			w.query = w.query[:len(w.query)-1]
			w.refilter()
		}
	case tea.KeyRunes:
		w.query += string(key.Runes)
		w.refilter()
	}
	return nil
}

func (w *choiceWidget) View(tab lang.Table, width int) string {
	var b strings.Builder
	if w.q.Multiple {
		b.WriteString(helpTextStyle.Render(tab.MultipleChoice) + "\n")
	}
	if w.query != "" {
		b.WriteString(helpTextStyle.Render("filter: "+w.query) + "\n")
	}

	for row, idx := range w.visible {
		opt := w.q.Options[idx]
		prefix := "  "
		if !w.onOther && row == w.cursor {
			prefix = optionCursorStyle.Render("> ")
		}
		marker := "( ) "
		if w.q.Multiple {
			marker = "[ ] "
		}
		line := optionStyle.Render(opt.EffectiveLabel())
		if w.selected[idx] {
			if w.q.Multiple {
				marker = "[x] "
			} else {
				marker = "(o) "
			}
			line = optionSelectedStyle.Render(opt.EffectiveLabel())
		}
		b.WriteString(prefix + marker + line + "\n")
	}

	if w.q.AllowOther {
		prefix := "  "
		if w.onOther {
			prefix = optionCursorStyle.Render("> ")
		}
		b.WriteString(prefix + tab.OtherPrompt + ": " + w.other.View() + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// ---------------------------------------------------------------------------
// Rate widget
// ---------------------------------------------------------------------------

type rateWidget struct {
	q       *flow.Question
	value   int
	focused bool
}

func newRateWidget(q *flow.Question) *rateWidget {
	w := &rateWidget{q: q}
	if f, ok := q.Answer.(float64); ok {
		w.value = int(f)
	}
	return w
}

func (w *rateWidget) Question() *flow.Question { return w.q }
func (w *rateWidget) HasValue() bool           { return w.value > 0 }
func (w *rateWidget) IsValid() bool            { return !w.q.Required || w.value > 0 }
func (w *rateWidget) Focused() bool            { return w.focused }
func (w *rateWidget) Focus()                   { w.focused = true }
func (w *rateWidget) Blur()                    { w.focused = false }
func (w *rateWidget) ShouldFocus() bool        { return false }

func (w *rateWidget) OnEnter() { w.commit() }
func (w *rateWidget) OnTab()   { w.commit() }

func (w *rateWidget) commit() {
	if w.value > 0 {
		w.q.SetAnswer(float64(w.value))
	} else {
		w.q.SetAnswer(nil)
	}
}

func (w *rateWidget) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.Type {
	case tea.KeyLeft:
		if w.value > 1 {
			w.value--
		} else {
			w.value = 1
		}
	case tea.KeyRight:
		if w.value < w.q.MaxRating {
			w.value++
		}
	case tea.KeyRunes:
		// Direct digit entry.
		if n, err := strconv.Atoi(string(key.Runes)); err == nil && n >= 1 && n <= w.q.MaxRating {
			w.value = n
		}
	}
	return nil
}

func (w *rateWidget) View(tab lang.Table, width int) string {
	var b strings.Builder
	for i := 1; i <= w.q.MaxRating; i++ {
		star := "☆"
		style := optionStyle
		if i <= w.value {
			star = "★"
			style = optionSelectedStyle
		}
		b.WriteString(style.Render(star) + " ")
	}
	if w.value > 0 {
		b.WriteString(progressLabelStyle.Render(fmt.Sprintf(" %d/%d", w.value, w.q.MaxRating)))
	}
	return b.String()
}

// ---------------------------------------------------------------------------
// Section break
// ---------------------------------------------------------------------------

type sectionWidget struct {
	q       *flow.Question
	focused bool
}

func (w *sectionWidget) Question() *flow.Question { return w.q }
func (w *sectionWidget) HasValue() bool           { return false }
func (w *sectionWidget) IsValid() bool            { return true }
func (w *sectionWidget) Focused() bool            { return w.focused }
func (w *sectionWidget) Focus()                   { w.focused = true }
func (w *sectionWidget) Blur()                    { w.focused = false }
func (w *sectionWidget) ShouldFocus() bool        { return false }
func (w *sectionWidget) OnEnter()                 {}
func (w *sectionWidget) OnTab()                   {}
func (w *sectionWidget) Update(tea.Msg) tea.Cmd   { return nil }

func (w *sectionWidget) View(tab lang.Table, width int) string {
	return helpTextStyle.Render(tab.FormatPressEnter())
}

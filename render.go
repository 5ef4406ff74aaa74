package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/askren/flowform/internal/flow"
)

func (m model) View() string {
	if m.quitting {
		return ""
	}

	width := m.width
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	b.WriteString(m.renderHeader(width) + "\n\n")

	if m.form.Submitted() {
		b.WriteString(m.renderThankYou())
	} else {
		if m.cfg.Engine.Progressbar {
			b.WriteString(m.renderProgress(width) + "\n\n")
		}
		b.WriteString(m.renderQuestions(width))
	}

	b.WriteString("\n" + m.renderFooter(width))
	return b.String()
}

func (m model) renderHeader(width int) string {
	left := headerAppStyle.Render(appName)
	if m.def.Title != "" {
		left += statusStyle.Render(" · " + m.def.Title)
	}
	right := ""
	if m.cfg.Engine.Timer && m.form.ElapsedSeconds() > 0 {
		right = timerStyle.Render(m.tab.TimeLabel + " " + flow.FormatSeconds(m.form.ElapsedSeconds()))
	}
	gap := width - ansi.StringWidth(left) - ansi.StringWidth(right) - 4
	if gap < 1 {
		gap = 1
	}
	return headerBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m model) renderProgress(width int) string {
	percent := m.form.PercentCompleted()
	label := progressLabelStyle.Render(m.tab.FormatPercent(percent))

	barWidth := width - ansi.StringWidth(label) - 3
	if barWidth < 10 {
		barWidth = 10
	}
	done := barWidth * percent / 100
	bar := progressDoneStyle.Render(strings.Repeat("█", done)) +
		progressRestStyle.Render(strings.Repeat("░", barWidth-done))
	return " " + bar + " " + label
}

func (m model) renderQuestions(width int) string {
	var b strings.Builder
	active := m.form.ActiveQuestion()

	for _, q := range m.form.QuestionList() {
		if q == active {
			b.WriteString(m.renderActiveQuestion(q, width))
			continue
		}
		// Answered questions above the cursor render as a dim summary.
		title := questionDimStyle.Render(q.Title)
		b.WriteString(fmt.Sprintf("%s  %s\n", title, answeredValStyle.Render(answerSummary(q))))
	}

	if active == nil && m.form.Completed() {
		b.WriteString("\n" + submitPromptStyle.Render(m.tab.SubmitText))
		b.WriteString(helpTextStyle.Render("  " + m.tab.FormatPressEnter()))
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) renderActiveQuestion(q *flow.Question, width int) string {
	var b strings.Builder

	title := questionTitleStyle.Render(q.Title)
	if q.Required {
		title += requiredMarkStyle.Render(" *")
	}
	b.WriteString("\n" + title + "\n")
	if q.Description != "" {
		b.WriteString(questionDescStyle.Render(q.Description) + "\n")
	}
	b.WriteString("\n" + m.widgetFor(q).View(m.tab, width) + "\n\n")
	return b.String()
}

func (m model) renderThankYou() string {
	var b strings.Builder
	b.WriteString(thankYouStyle.Render(m.tab.ThankYouText) + "\n\n")
	b.WriteString(statusStyle.Render(m.tab.SuccessText) + "\n")
	if m.status != "" {
		style := statusStyle
		if m.statusErr {
			style = statusErrStyle
		}
		b.WriteString("\n" + style.Render(m.status) + "\n")
	}
	return b.String()
}

func (m model) renderFooter(width int) string {
	var parts []string
	for _, binding := range m.keys.ShortHelp() {
		if !binding.Enabled() {
			continue
		}
		parts = append(parts, binding.Help().Key+" "+binding.Help().Desc)
	}
	return footerStyle.Width(width).Render(strings.Join(parts, " • "))
}

// answerSummary renders an answered question's value for the dim recap
// rows above the cursor.
func answerSummary(q *flow.Question) string {
	if q.Type == flow.TypePassword {
		return "••••••"
	}
	switch a := q.Answer.(type) {
	case nil:
		return ""
	case []any:
		parts := make([]string, 0, len(a))
		for _, v := range a {
			parts = append(parts, fmt.Sprintf("%v", v))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", a)
	}
}

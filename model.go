package main

import (
	"context"
	"encoding/json"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/askren/flowform/internal/config"
	"github.com/askren/flowform/internal/database"
	"github.com/askren/flowform/internal/database/repository"
	"github.com/askren/flowform/internal/flow"
	"github.com/askren/flowform/internal/lang"
)

const appName = "Flowform"

// ---------------------------------------------------------------------------
// Engine event feed
// ---------------------------------------------------------------------------

// engineFeed collects events emitted synchronously by the engine during
// an Update call, so the model can react after the engine returns. The
// model holds a pointer so bubbletea's value-copied models share it.
type engineFeed struct {
	lastStep   string
	answered   []string
	submitted  []*flow.Question
	timerLabel string
}

func (f *engineFeed) hooks() flow.Events {
	return flow.Events{
		OnAnswer: func(q *flow.Question) { f.answered = append(f.answered, q.ID) },
		OnStep:   func(id string, _ *flow.Question) { f.lastStep = id },
		OnSubmit: func(list []*flow.Question) { f.submitted = list },
		OnTimer:  func(_ int, formatted string) { f.timerLabel = formatted },
	}
}

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

type tickMsg time.Time

type saveDoneMsg struct {
	id  string
	err error
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

type model struct {
	cfg     config.Config
	def     formDefinition
	tab     lang.Table
	keys    keyMap
	form    *flow.Form
	feed    *engineFeed
	widgets map[string]questionWidget
	repo    *repository.SubmissionRepo

	width     int
	height    int
	ticking   bool
	saved     bool
	status    string
	statusErr bool
	quitting  bool
}

func newModel(cfg config.Config, def formDefinition, tab lang.Table, questions []*flow.Question, repo *repository.SubmissionRepo) model {
	feed := &engineFeed{}
	engineCfg := flow.Config{
		Progressbar:    cfg.Engine.Progressbar,
		Standalone:     cfg.Engine.Standalone,
		Navigation:     cfg.Engine.Navigation,
		Timer:          cfg.Engine.Timer,
		TimerStartStep: cfg.Engine.TimerStartStep,
		TimerStopStep:  cfg.Engine.TimerStopStep,
	}

	m := model{
		cfg:     cfg,
		def:     def,
		tab:     tab,
		keys:    newKeyMap(),
		feed:    feed,
		widgets: make(map[string]questionWidget),
		repo:    repo,
	}
	if !cfg.Engine.Navigation {
		m.keys.Prev.SetEnabled(false)
	}
	m.form = flow.NewForm(questions, engineCfg, feed.hooks())
	m.form.BindWidgets(func(q *flow.Question) flow.Widget {
		return m.widgetFor(q)
	})
	m.focusActive()
	// A timer armed at construction gets its ticker from Init; marking
	// it here keeps later key handling from scheduling a second one.
	if m.form.TimerOn() {
		m.ticking = true
	}
	return m
}

func (m model) Init() tea.Cmd {
	if m.form.TimerOn() {
		return tickCmd()
	}
	return nil
}

// widgetFor returns the (lazily created) widget for a question.
func (m model) widgetFor(q *flow.Question) questionWidget {
	if w, ok := m.widgets[q.ID]; ok {
		return w
	}
	w := newWidget(q, m.tab)
	m.widgets[q.ID] = w
	return w
}

// activeWidget returns the widget of the question under the cursor, or
// nil on the submit step.
func (m model) activeWidget() questionWidget {
	q := m.form.ActiveQuestion()
	if q == nil {
		return nil
	}
	return m.widgetFor(q)
}

// focusActive gives input focus to the active question's widget and
// blurs everything else.
func (m *model) focusActive() {
	active := m.form.ActiveQuestion()
	for _, q := range m.form.QuestionList() {
		w := m.widgetFor(q)
		if q == active {
			w.Focus()
		} else {
			w.Blur()
		}
	}
}

// saveCmd persists the submitted form.
func saveCmd(repo *repository.SubmissionRepo, def formDefinition, list []*flow.Question, elapsed int) tea.Cmd {
	return func() tea.Msg {
		sub := repository.Submission{
			ID:             uuid.NewString(),
			FormName:       def.Name,
			SubmittedAt:    database.Now(),
			ElapsedSeconds: elapsed,
		}
		answers := make([]repository.Answer, 0, len(list))
		for i, q := range list {
			encoded, err := json.Marshal(q.Answer)
			if err != nil {
				return saveDoneMsg{err: err}
			}
			answers = append(answers, repository.Answer{
				QuestionID:   q.ID,
				QuestionType: string(q.Type),
				Position:     i,
				Answer:       string(encoded),
				OtherAnswer:  q.OtherAnswer,
			})
		}
		err := repo.Create(context.Background(), sub, answers)
		return saveDoneMsg{id: sub.ID, err: err}
	}
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/askren/flowform/internal/flow"
	"github.com/askren/flowform/internal/script"
)

// ---------------------------------------------------------------------------
// Form definition (TOML-based)
// ---------------------------------------------------------------------------

// formDefinition is the top-level TOML structure describing a form.
type formDefinition struct {
	Name      string        `toml:"name"`
	Title     string        `toml:"title"`
	Questions []questionDef `toml:"question"`
}

// questionDef declares a single step. One [[question]] block per step,
// in presentation order.
type questionDef struct {
	ID               string            `toml:"id"`
	Type             string            `toml:"type"`
	Title            string            `toml:"title"`
	Description      string            `toml:"description"`
	Required         bool              `toml:"required"`
	Multiple         bool              `toml:"multiple"`
	AllowOther       bool              `toml:"allow_other"`
	NextStepOnAnswer bool              `toml:"next_step_on_answer"`
	Placeholder      string            `toml:"placeholder"`
	Mask             string            `toml:"mask"`
	MaxRating        int               `toml:"max_rating"`
	Jump             map[string]string `toml:"jump"`
	JumpScript       string            `toml:"jump_script"`
	Options          []optionDef       `toml:"option"`
}

type optionDef struct {
	Label    string `toml:"label"`
	Value    any    `toml:"value"`
	ImageSrc string `toml:"image_src"`
	ImageAlt string `toml:"image_alt"`
}

var questionTypes = map[string]flow.QuestionType{
	"date":                  flow.TypeDate,
	"dropdown":              flow.TypeDropdown,
	"email":                 flow.TypeEmail,
	"longtext":              flow.TypeLongText,
	"multiplechoice":        flow.TypeMultipleChoice,
	"multiplepicturechoice": flow.TypeMultiplePictureChoice,
	"number":                flow.TypeNumber,
	"password":              flow.TypePassword,
	"phone":                 flow.TypePhone,
	"rate":                  flow.TypeRate,
	"sectionbreak":          flow.TypeSectionBreak,
	"text":                  flow.TypeText,
	"url":                   flow.TypeURL,
}

func parseDefinition(data []byte) (formDefinition, error) {
	var def formDefinition
	if err := toml.Unmarshal(data, &def); err != nil {
		return formDefinition{}, fmt.Errorf("parse form definition: %w", err)
	}
	if len(def.Questions) == 0 {
		return formDefinition{}, fmt.Errorf("form definition has no questions")
	}
	for i, qd := range def.Questions {
		if _, ok := questionTypes[qd.Type]; !ok {
			return formDefinition{}, fmt.Errorf("question %d: unknown type %q", i, qd.Type)
		}
	}
	return def, nil
}

// buildQuestions turns the parsed definition into engine questions.
// Jump scripts compile against the built slice so they can read any
// answer given so far.
func (d formDefinition) buildQuestions() ([]*flow.Question, error) {
	questions := make([]*flow.Question, 0, len(d.Questions))
	for _, qd := range d.Questions {
		opts := make([]*flow.ChoiceOption, 0, len(qd.Options))
		for _, od := range qd.Options {
			opts = append(opts, &flow.ChoiceOption{
				Label:    od.Label,
				Value:    od.Value,
				ImageSrc: od.ImageSrc,
				ImageAlt: od.ImageAlt,
			})
		}
		q := flow.NewQuestion(flow.Question{
			ID:               qd.ID,
			Type:             questionTypes[qd.Type],
			Title:            qd.Title,
			Description:      qd.Description,
			Required:         qd.Required,
			Multiple:         qd.Multiple,
			AllowOther:       qd.AllowOther,
			NextStepOnAnswer: qd.NextStepOnAnswer,
			Placeholder:      qd.Placeholder,
			Mask:             qd.Mask,
			MaxRating:        qd.MaxRating,
			Jump:             qd.Jump,
			Options:          opts,
		})
		questions = append(questions, q)
	}

	for i, qd := range d.Questions {
		if qd.JumpScript == "" {
			continue
		}
		fn, err := script.CompileJump(qd.JumpScript, func() map[string]any {
			return script.Answers(questions)
		})
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		questions[i].JumpFunc = fn
	}
	return questions, nil
}

// validate cross-checks jump targets against declared question ids.
func (d formDefinition) validate() error {
	ids := make(map[string]bool, len(d.Questions))
	for i, qd := range d.Questions {
		id := qd.ID
		if id == "" {
			id = fmt.Sprintf("q_%d", i)
		}
		ids[id] = true
	}
	for i, qd := range d.Questions {
		for answer, target := range qd.Jump {
			if target == flow.SubmitID || ids[target] {
				continue
			}
			return fmt.Errorf("question %d: jump %q targets unknown question %q", i, answer, target)
		}
	}
	return nil
}

const defaultDefinitionTOML = `# Flowform form definition
# Add [[question]] blocks in presentation order. Supported types:
# text, longtext, email, number, phone, url, password, date,
# multiplechoice, multiplepicturechoice, dropdown, rate, sectionbreak.
#
# Branching: set [question.jump] to map answers to question ids, with
# "_other" as the fallback key and "_submit" jumping straight to the
# end. jump_script runs a JavaScript expression with the current
# question and answers in scope.

name = "feedback"
title = "Product feedback"

[[question]]
id = "intro"
type = "sectionbreak"
title = "Welcome"
description = "A few quick questions, takes about a minute."

[[question]]
id = "name"
type = "text"
title = "What's your name?"
required = true
placeholder = "Jane Doe"

[[question]]
id = "liked"
type = "multiplechoice"
title = "Did you enjoy using the product?"
required = true
next_step_on_answer = true

[[question.option]]
label = "Yes"

[[question.option]]
label = "No"

[question.jump]
Yes = "rating"
No = "feedback"

[[question]]
id = "feedback"
type = "longtext"
title = "What went wrong?"
description = "Tell us what we should fix."

[question.jump]
_other = "_submit"

[[question]]
id = "rating"
type = "rate"
title = "How would you rate it?"
max_rating = 5
`

// definitionPath resolves the form file: explicit config value first,
// then <config dir>/flowform/form.toml.
func definitionPath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "flowform", "form.toml"), nil
}

// loadDefinition reads the form definition, scaffolding the default
// form on first run when no explicit path was given.
func loadDefinition(explicit string) (formDefinition, error) {
	path, err := definitionPath(explicit)
	if err != nil {
		return formDefinition{}, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit != "" {
			return formDefinition{}, fmt.Errorf("form definition %s not found", path)
		}
		if mkErr := os.MkdirAll(filepath.Dir(path), 0755); mkErr != nil {
			return formDefinition{}, fmt.Errorf("create config dir: %w", mkErr)
		}
		if wErr := os.WriteFile(path, []byte(defaultDefinitionTOML), 0644); wErr != nil {
			return formDefinition{}, fmt.Errorf("write default form: %w", wErr)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return formDefinition{}, fmt.Errorf("read form definition: %w", err)
	}
	def, err := parseDefinition(data)
	if err != nil {
		return formDefinition{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := def.validate(); err != nil {
		return formDefinition{}, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

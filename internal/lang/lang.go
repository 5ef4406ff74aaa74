// Package lang holds the display string table handed to question
// widgets. The engine treats it as opaque; the runner loads overrides
// from a TOML file so forms can be localized without code changes.
package lang

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Table is the language/string-table object. Every field has a sensible
// English default; a TOML file overrides individual keys.
type Table struct {
	EnterKey         string `toml:"enter_key"`
	ShiftKey         string `toml:"shift_key"`
	OK               string `toml:"ok"`
	Continue         string `toml:"continue"`
	SkipIntro        string `toml:"skip_intro"`
	PressEnter       string `toml:"press_enter"`
	MultipleChoice   string `toml:"multiple_choice_help"`
	OtherPrompt      string `toml:"other_prompt"`
	Placeholder      string `toml:"placeholder"`
	SubmitText       string `toml:"submit_text"`
	PercentCompleted string `toml:"percent_completed"`
	InvalidPrompt    string `toml:"invalid_prompt"`
	ThankYouText     string `toml:"thank_you_text"`
	SuccessText      string `toml:"success_text"`
	TimeLabel        string `toml:"time_label"`
}

// Default returns the built-in English table.
func Default() Table {
	return Table{
		EnterKey:         "Enter",
		ShiftKey:         "Shift",
		OK:               "OK",
		Continue:         "Continue",
		SkipIntro:        "Press Enter to begin",
		PressEnter:       "Press :enterKey",
		MultipleChoice:   "Choose as many as you like",
		OtherPrompt:      "Other",
		Placeholder:      "Type your answer here...",
		SubmitText:       "Submit",
		PercentCompleted: ":percent% completed",
		InvalidPrompt:    "Please fill this in",
		ThankYouText:     "Thank you!",
		SuccessText:      "Your submission has been sent.",
		TimeLabel:        "Time",
	}
}

// Load reads a TOML override file on top of the defaults. A missing
// path returns the defaults unchanged.
func Load(path string) (Table, error) {
	t := Default()
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}
		return t, fmt.Errorf("read language file: %w", err)
	}
	if err := toml.Unmarshal(data, &t); err != nil {
		return Default(), fmt.Errorf("parse language file: %w", err)
	}
	return t, nil
}

// FormatPercent substitutes the progress percentage into the
// PercentCompleted template.
func (t Table) FormatPercent(percent int) string {
	return strings.ReplaceAll(t.PercentCompleted, ":percent", fmt.Sprintf("%d", percent))
}

// FormatPressEnter substitutes the key name into the PressEnter
// template.
func (t Table) FormatPressEnter() string {
	return strings.ReplaceAll(t.PressEnter, ":enterKey", t.EnterKey)
}

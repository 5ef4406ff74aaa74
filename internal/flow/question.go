package flow

import (
	"fmt"
	"math"
	"strconv"
)

// QuestionType tags the closed set of question variants.
type QuestionType string

const (
	TypeDate                  QuestionType = "date"
	TypeDropdown              QuestionType = "dropdown"
	TypeEmail                 QuestionType = "email"
	TypeLongText              QuestionType = "longtext"
	TypeMultipleChoice        QuestionType = "multiplechoice"
	TypeMultiplePictureChoice QuestionType = "multiplepicturechoice"
	TypeNumber                QuestionType = "number"
	TypePassword              QuestionType = "password"
	TypePhone                 QuestionType = "phone"
	TypeSectionBreak          QuestionType = "sectionbreak"
	TypeText                  QuestionType = "text"
	TypeURL                   QuestionType = "url"
	TypeRate                  QuestionType = "rate"
)

// SubmitID is the sentinel jump target meaning "end of form".
const SubmitID = "_submit"

// OtherKey is the jump-table fallback key used when the answer matches
// no explicit key.
const OtherKey = "_other"

const (
	defaultPhoneMask       = "(999) 999-9999"
	defaultDatePlaceholder = "yyyy-mm-dd"
	defaultMaxRating       = 5
)

// JumpFunc resolves the next question id from the question itself.
// When set it takes precedence over the Jump table. An empty return
// means "no branch, continue sequentially".
type JumpFunc func(q *Question) string

// Question holds one step of the form: its definition, its current
// answer, and its branching rule. Questions are created once per form
// definition and mutated as the user answers; the engine reassigns
// indices whenever the active path is recomputed.
type Question struct {
	ID          string
	Type        QuestionType
	Title       string
	Description string

	// Answer is string | float64 | bool | []any | nil. The rendered
	// widget holds transient write access to this field; everything
	// else is engine-owned.
	Answer   any
	Answered bool
	Required bool
	Index    int

	Jump     map[string]string
	JumpFunc JumpFunc

	Options     []*ChoiceOption
	Multiple    bool
	AllowOther  bool
	OtherAnswer string

	NextStepOnAnswer bool
	Placeholder      string
	Mask             string
	MaxRating        int
}

// NewQuestion normalizes a caller-supplied question over the documented
// defaults: type-specific mask/placeholder handling, list coercion for
// multiple-select answers, and initial option-selection state.
func NewQuestion(q Question) *Question {
	out := q

	switch out.Type {
	case TypePhone:
		if out.Mask == "" {
			out.Mask = defaultPhoneMask
		}
	case TypeURL:
		// URL questions never mask input.
		out.Mask = ""
	case TypeDate:
		if out.Placeholder == "" {
			out.Placeholder = defaultDatePlaceholder
		}
	case TypeRate:
		if out.MaxRating <= 0 {
			out.MaxRating = defaultMaxRating
		}
	}

	if out.Multiple {
		if out.Answer == nil {
			out.Answer = []any{}
		} else if _, ok := out.Answer.([]any); !ok {
			out.Answer = []any{out.Answer}
		}
	}

	out.ResetOptions()
	return &out
}

// SetIndex records the question's ordinal position on the active path.
// An id is derived from the first assigned index only when no explicit
// id was given; subsequent calls keep updating Index but never touch an
// existing id.
func (q *Question) SetIndex(i int) {
	q.Index = i
	if q.ID == "" {
		q.ID = fmt.Sprintf("q_%d", i)
	}
}

// SetAnswer stores the value. For Number questions a non-empty string
// that parses as a finite number is coerced to float64; anything else
// is stored as-is. Validation is the widget's job, not this method's.
func (q *Question) SetAnswer(v any) {
	if q.Type == TypeNumber {
		if s, ok := v.(string); ok && s != "" {
			if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
				v = f
			}
		}
	}
	q.Answer = v
}

// HasJump reports whether any branching rule is configured.
func (q *Question) HasJump() bool {
	return q.JumpFunc != nil || len(q.Jump) > 0
}

// JumpTarget resolves the next question id for the current answer. A
// JumpFunc always wins; otherwise the jump table is consulted by answer
// value with "_other" as the fallback key. Empty means no branch.
func (q *Question) JumpTarget() string {
	if q.JumpFunc != nil {
		return q.JumpFunc(q)
	}
	if len(q.Jump) == 0 {
		return ""
	}
	if id, ok := q.Jump[q.answerKey()]; ok {
		return id
	}
	if id, ok := q.Jump[OtherKey]; ok {
		return id
	}
	return ""
}

// answerKey renders the answer as a jump-table key.
func (q *Question) answerKey() string {
	switch a := q.Answer.(type) {
	case nil:
		return ""
	case string:
		return a
	case float64:
		return strconv.FormatFloat(a, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(a)
	default:
		return fmt.Sprintf("%v", a)
	}
}

// ResetOptions recomputes each option's Selected flag from the current
// answer and, when AllowOther is set, infers the free-text "other"
// value from the answer entries no predefined option accounts for.
func (q *Question) ResetOptions() {
	if len(q.Options) == 0 {
		return
	}

	answers, isList := q.Answer.([]any)
	matched := 0
	for _, opt := range q.Options {
		opt.Selected = false
		if isList {
			for _, a := range answers {
				if opt.matches(a) {
					opt.Selected = true
					matched++
					break
				}
			}
		} else if q.Answer != nil && opt.matches(q.Answer) {
			opt.Selected = true
			matched++
		}
	}

	if !q.AllowOther {
		return
	}
	if q.Multiple && isList {
		// When the answer list holds entries no option matched, the
		// last unmatched entry is taken as the other value. With more
		// than one unmatched entry this can misattribute; the original
		// behaves the same way.
		if matched != len(answers) {
			for _, a := range answers {
				known := false
				for _, opt := range q.Options {
					if opt.matches(a) {
						known = true
						break
					}
				}
				if !known {
					q.OtherAnswer = stringify(a)
				}
			}
		}
	} else if !q.Multiple && q.Answer != nil {
		if matched == 0 {
			q.OtherAnswer = stringify(q.Answer)
		}
	}
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

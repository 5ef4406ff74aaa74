// Package script evaluates JavaScript jump expressions for questions
// whose branching cannot be expressed as a static answer table. The
// expression sees a `question` object (id, type, answer, other) and an
// `answers` map of every answer recorded so far, and returns the next
// question id, or nothing to continue sequentially.
package script

import (
	"fmt"

	"github.com/dop251/goja"

	"github.com/askren/flowform/internal/flow"
)

// CompileJump compiles a jump expression once and returns a flow.JumpFunc
// that evaluates it per call. The answers callback supplies the current
// answer map at evaluation time; pass nil when only the question itself
// is needed.
func CompileJump(expr string, answers func() map[string]any) (flow.JumpFunc, error) {
	prog, err := goja.Compile("jump", expr, true)
	if err != nil {
		return nil, fmt.Errorf("compile jump expression: %w", err)
	}

	return func(q *flow.Question) string {
		vm := goja.New()

		obj := vm.NewObject()
		_ = obj.Set("id", q.ID)
		_ = obj.Set("type", string(q.Type))
		_ = obj.Set("answer", vm.ToValue(q.Answer))
		_ = obj.Set("other", q.OtherAnswer)
		if err := vm.Set("question", obj); err != nil {
			return ""
		}

		all := map[string]any{}
		if answers != nil {
			all = answers()
		}
		if err := vm.Set("answers", vm.ToValue(all)); err != nil {
			return ""
		}

		val, err := vm.RunProgram(prog)
		if err != nil {
			// A throwing expression falls back to sequential advance,
			// matching the engine's fail-open jump handling.
			return ""
		}
		if val == nil || goja.IsUndefined(val) || goja.IsNull(val) {
			return ""
		}
		if s, ok := val.Export().(string); ok {
			return s
		}
		return ""
	}, nil
}

// Answers collects the current answers of a question list keyed by
// question id, in the shape jump expressions consume.
func Answers(questions []*flow.Question) map[string]any {
	out := make(map[string]any, len(questions))
	for _, q := range questions {
		if q.Answered {
			out[q.ID] = q.Answer
		}
	}
	return out
}

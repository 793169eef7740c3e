package assist

import (
	"context"
	"encoding/json"
	"fmt"

	"homecalc/internal/llm"
	"homecalc/internal/metrics"
	"homecalc/internal/schema"
	"homecalc/internal/tools"
	"homecalc/internal/util/jsonutil"
)

// defaultMaxRounds caps model round-trips per invocation. Past the cap
// the invoker fails closed; a misbehaving model must not loop forever.
const defaultMaxRounds = 3

// PromptBuilder rebuilds the prompt for each round from the accumulated
// tool state.
type PromptBuilder func(state *ToolState, specs []tools.Spec) (string, error)

// ToolState carries tool results across rounds of one invocation. It is
// ephemeral: created per invocation, discarded with the response.
type ToolState struct {
	Rounds      int
	ToolResults []ToolResult
}

// ToolResult is the outcome of one tool dispatch, fed back into the
// next round's prompt. A failed dispatch keeps its error string so the
// model can answer without the data.
type ToolResult struct {
	Name   string          `json:"name"`
	Input  json.RawMessage `json:"input,omitempty"`
	Output json.RawMessage `json:"output,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// FormatToolSpecs renders tool specs as a JSON block for prompt
// inclusion.
func FormatToolSpecs(specs []tools.Spec) string {
	if specs == nil {
		specs = []tools.Spec{}
	}
	b, err := jsonutil.MarshalNoEscape(specs)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// FormatToolResults renders accumulated tool results as a JSON block.
func FormatToolResults(results []ToolResult) string {
	if len(results) == 0 {
		return ""
	}
	b, err := jsonutil.MarshalNoEscape(results)
	if err != nil {
		return ""
	}
	return string(b)
}

// Invoker runs one logical model request: prompt in, validated
// structured result out, with zero or more serial tool round-trips in
// between. It is stateless and safe for concurrent use.
type Invoker struct {
	LLM       llm.Client
	Tools     *tools.Registry
	MaxRounds int
}

// Invoke drives the model until it emits a final answer conforming to
// out, or fails. All failures wrap exactly one taxonomy error.
func (iv *Invoker) Invoke(ctx context.Context, build PromptBuilder, out *schema.Shape) (json.RawMessage, *ToolState, error) {
	if iv == nil || iv.LLM == nil {
		return nil, nil, fmt.Errorf("%w: invoker not configured", ErrModelInvocation)
	}
	if build == nil {
		return nil, nil, fmt.Errorf("%w: prompt builder is nil", ErrModelInvocation)
	}
	max := iv.MaxRounds
	if max <= 0 {
		max = defaultMaxRounds
	}

	var specs []tools.Spec
	if iv.Tools != nil {
		specs = iv.Tools.Specs()
	}

	state := &ToolState{}
	toolFailed := false
	for round := 0; round < max; round++ {
		state.Rounds = round + 1
		prompt, err := build(state, specs)
		if err != nil {
			return nil, state, fmt.Errorf("%w: compose prompt: %v", ErrModelInvocation, err)
		}
		raw, err := iv.LLM.GenerateJSON(ctx, prompt)
		if err != nil {
			return nil, state, fmt.Errorf("%w: %v", ErrModelInvocation, err)
		}

		if len(specs) == 0 {
			// No tools declared: the whole response is the answer.
			if err := out.Validate(raw); err != nil {
				return nil, state, fmt.Errorf("%w: %v", ErrResponseValidation, err)
			}
			return raw, state, nil
		}

		env, err := parseAction(raw)
		if err != nil {
			return nil, state, fmt.Errorf("%w: %v", ErrResponseValidation, err)
		}
		switch env.Action {
		case "final":
			if err := out.Validate(env.Final); err != nil {
				return nil, state, fmt.Errorf("%w: %v", ErrResponseValidation, err)
			}
			return env.Final, state, nil
		case "tool":
			if env.ToolName == "" {
				return nil, state, fmt.Errorf("%w: tool_name required", ErrResponseValidation)
			}
			result, err := iv.Tools.Call(ctx, env.ToolName, env.ToolInput)
			tr := ToolResult{Name: env.ToolName, Input: env.ToolInput, Output: result}
			if err != nil {
				// Record the failure and let the model answer without
				// the data on the next round.
				tr.Error = err.Error()
				toolFailed = true
				metrics.ObserveToolCall(env.ToolName, "error")
			} else {
				metrics.ObserveToolCall(env.ToolName, "ok")
			}
			state.ToolResults = append(state.ToolResults, tr)
		}
	}

	if toolFailed {
		return nil, state, fmt.Errorf("%w: no final answer after failed tool call within %d rounds", ErrToolInvocation, max)
	}
	return nil, state, fmt.Errorf("%w: tool round limit (%d) exceeded", ErrModelInvocation, max)
}

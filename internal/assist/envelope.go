package assist

import (
	"encoding/json"
	"fmt"
)

// actionEnvelope is the tool-protocol response from the model: either a
// tool request or the final structured answer.
type actionEnvelope struct {
	Action    string          `json:"action,omitempty"`
	ToolName  string          `json:"tool_name,omitempty"`
	ToolInput json.RawMessage `json:"tool_input,omitempty"`
	Final     json.RawMessage `json:"final,omitempty"`
}

// parseAction parses a model response into an action envelope. A
// response with none of the envelope fields is treated as a direct
// final answer; models constrained to a result schema often skip the
// wrapper.
func parseAction(raw json.RawMessage) (actionEnvelope, error) {
	var env actionEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return actionEnvelope{}, err
	}
	if env.Action == "" && env.ToolName == "" && len(env.Final) == 0 {
		env.Action = "final"
		env.Final = raw
	}
	if env.Action == "" {
		switch {
		case len(env.Final) > 0:
			env.Action = "final"
		case env.ToolName != "" || len(env.ToolInput) > 0:
			env.Action = "tool"
		}
	}
	switch env.Action {
	case "final", "tool":
		return env, nil
	default:
		return actionEnvelope{}, fmt.Errorf("invalid action %q", env.Action)
	}
}

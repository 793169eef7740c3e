package assist

import "errors"

// Error taxonomy. Every flow failure wraps exactly one of these; the
// HTTP layer maps ErrRequestValidation to a 400 and the rest to a
// generic upstream failure. Nothing is retried inside this package.
var (
	// ErrRequestValidation: the caller's input failed its declared
	// schema. No model call was attempted.
	ErrRequestValidation = errors.New("assist: invalid request")

	// ErrModelInvocation: network failure, timeout, empty output, or
	// the tool round limit was exceeded.
	ErrModelInvocation = errors.New("assist: model invocation failed")

	// ErrResponseValidation: the model produced output that does not
	// conform to the declared result shape. The flow fails rather than
	// surfacing malformed data.
	ErrResponseValidation = errors.New("assist: model response failed validation")

	// ErrToolInvocation: a tool lookup failed and the model never
	// recovered with a final answer.
	ErrToolInvocation = errors.New("assist: tool invocation failed")
)

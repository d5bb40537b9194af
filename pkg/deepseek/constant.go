package deepseek

import "time"

const (
	// DefaultBaseURL is the DeepSeek OpenAI-compatible endpoint.
	DefaultBaseURL = "https://api.deepseek.com/v1"

	// DefaultModel is the general-purpose chat model.
	DefaultModel = "deepseek-chat"

	// DefaultTimeout bounds a single completion call.
	DefaultTimeout = 30 * time.Second
)

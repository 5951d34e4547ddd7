package models

// OpenAI-compatible chat completion wire types. The secondary and
// grant-authenticated providers speak the same shape.

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int64         `json:"max_tokens,omitempty"`
}

type ChatChoice struct {
	Index        int         `json:"index"`
	Message      ChatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type ChatResponse struct {
	ID        string       `json:"id"`
	Model     string       `json:"model"`
	Choices   []ChatChoice `json:"choices"`
	Signature string       `json:"signature,omitempty"`
}

// GenerateOptions carries everything a pipeline stage needs to build its
// prompt. Absent fields fall back to defaults; numeric scores are clamped
// to 0..10 by the prompt builders.
type GenerateOptions struct {
	Input        string `json:"input"`
	Context      string `json:"context"`
	Intent       string `json:"intent"`
	Length       string `json:"length"`
	Tone         int64  `json:"tone"`
	EmojiDensity string `json:"emojiDensity"`
	Language     string `json:"language"`
	Model        string `json:"model"`
}

// AIResult is what the generation endpoints return: one or more candidate
// strings plus the provider signature, passed through uninterpreted.
type AIResult struct {
	Result    []string `json:"result"`
	Signature string   `json:"signature,omitempty"`
}

// TierContent is the shape assembled by the tiered orchestration. Tier 1
// fills only Post; tier 2 adds the full candidate sets; tier 3 additionally
// fills Polished.
type TierContent struct {
	Tier     int      `json:"tier"`
	Post     string   `json:"post,omitempty"`
	Topics   []string `json:"topics,omitempty"`
	Hooks    []string `json:"hooks,omitempty"`
	Bodies   []string `json:"bodies,omitempty"`
	CTAs     []string `json:"ctas,omitempty"`
	Polished string   `json:"polished,omitempty"`
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/draftforge/draftforge-server/models"
)

func TestClampScore(t *testing.T) {
	assert.Equal(t, int64(0), clampScore(-5))
	assert.Equal(t, int64(10), clampScore(99))
	assert.Equal(t, int64(7), clampScore(7))
}

func TestToneInstructionRange(t *testing.T) {
	assert.Contains(t, toneInstruction(0), "formal")
	assert.Contains(t, toneInstruction(10), "casual")
	// out-of-range values clamp instead of panicking
	assert.Contains(t, toneInstruction(-3), "formal")
	assert.Contains(t, toneInstruction(42), "casual")
}

func TestEmojiInstruction(t *testing.T) {
	assert.Contains(t, emojiInstruction("none"), "not use any emojis")
	assert.Contains(t, emojiInstruction("0"), "not use any emojis")
	assert.Contains(t, emojiInstruction("2"), "at most one")
	assert.Contains(t, emojiInstruction("9"), "generously")
	// unknown levels fall back to medium
	assert.Contains(t, emojiInstruction("whatever"), "well-placed")
	assert.Contains(t, emojiInstruction(""), "well-placed")
}

func TestTopicsPromptContents(t *testing.T) {
	opts := models.GenerateOptions{
		Input:    "shipping a side project",
		Context:  "solo developer audience",
		Intent:   "inspire",
		Language: "Indonesian",
	}
	prompt := TopicsPrompt(opts, "trending snippet about launches")

	assert.Contains(t, prompt, "shipping a side project")
	assert.Contains(t, prompt, "solo developer audience")
	assert.Contains(t, prompt, "trending snippet about launches")
	assert.Contains(t, prompt, "inspire")
	assert.Contains(t, prompt, "Indonesian")
	assert.Contains(t, prompt, "JSON array")
}

func TestTopicsPromptOmitsEmptySections(t *testing.T) {
	prompt := TopicsPrompt(models.GenerateOptions{Input: "topic"}, "")
	assert.NotContains(t, prompt, "Currently trending")
	assert.NotContains(t, prompt, "Additional context")
	assert.Contains(t, prompt, "Write in English.")
}

func TestBodyPromptLength(t *testing.T) {
	short := BodyPrompt(models.GenerateOptions{Input: "x", Length: "short"})
	long := BodyPrompt(models.GenerateOptions{Input: "x", Length: "long"})
	def := BodyPrompt(models.GenerateOptions{Input: "x"})

	assert.Contains(t, short, "under 80 words")
	assert.Contains(t, long, "250-400 words")
	assert.Contains(t, def, "100-200 words")
}

func TestPolishPromptContents(t *testing.T) {
	prompt := PolishPrompt("my draft post", 9, "high")
	assert.Contains(t, prompt, "my draft post")
	assert.Contains(t, prompt, "casual")
	assert.Contains(t, prompt, "generously")
}

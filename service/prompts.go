package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/draftforge/draftforge-server/models"
)

// Prompt builders are pure string templating over GenerateOptions. Scores
// outside 0..10 are clamped, absent fields fall back to defaults.

func clampScore(v int64) int64 {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}

func toneInstruction(score int64) string {
	score = clampScore(score)
	switch {
	case score <= 2:
		return "Keep the tone strictly formal and professional."
	case score <= 5:
		return "Keep the tone professional but approachable."
	case score <= 8:
		return "Use a conversational, friendly tone."
	default:
		return "Use a casual, playful tone with personality."
	}
}

// emojiInstruction accepts either a named level or a 0..10 score.
func emojiInstruction(density string) string {
	level := strings.ToLower(strings.TrimSpace(density))
	if n, err := strconv.ParseInt(level, 10, 64); err == nil {
		n = clampScore(n)
		switch {
		case n == 0:
			level = "none"
		case n <= 3:
			level = "low"
		case n <= 7:
			level = "medium"
		default:
			level = "high"
		}
	}
	switch level {
	case "none":
		return "Do not use any emojis."
	case "low":
		return "Use at most one emoji in the whole text."
	case "high":
		return "Use emojis generously, one per paragraph or more."
	default:
		return "Use a few well-placed emojis."
	}
}

func lengthInstruction(length string) string {
	switch strings.ToLower(strings.TrimSpace(length)) {
	case "short":
		return "Keep it under 80 words."
	case "long":
		return "Write 250-400 words."
	default:
		return "Write 100-200 words."
	}
}

func languageInstruction(language string) string {
	if language == "" {
		return "Write in English."
	}
	return fmt.Sprintf("Write in %s.", language)
}

func intentInstruction(intent string) string {
	if intent == "" {
		return ""
	}
	return fmt.Sprintf("The intent of the post is: %s.", intent)
}

func TopicsPrompt(opts models.GenerateOptions, viralContext string) string {
	var b strings.Builder
	b.WriteString("You are a LinkedIn content strategist. ")
	b.WriteString("Suggest 5 distinct post topics based on the following input.\n\n")
	b.WriteString("Input: " + opts.Input + "\n")
	if opts.Context != "" {
		b.WriteString("Additional context: " + opts.Context + "\n")
	}
	if viralContext != "" {
		b.WriteString("Currently trending: " + viralContext + "\n")
	}
	if instr := intentInstruction(opts.Intent); instr != "" {
		b.WriteString(instr + "\n")
	}
	b.WriteString(languageInstruction(opts.Language) + "\n")
	b.WriteString(`Return ONLY a JSON array of 5 topic strings, no explanation.`)
	return b.String()
}

func HooksPrompt(opts models.GenerateOptions) string {
	var b strings.Builder
	b.WriteString("You are a LinkedIn copywriter. ")
	b.WriteString("Write 3 scroll-stopping opening hooks for a post about:\n\n")
	b.WriteString(opts.Input + "\n")
	b.WriteString(toneInstruction(opts.Tone) + "\n")
	b.WriteString(languageInstruction(opts.Language) + "\n")
	b.WriteString(`Return ONLY a JSON array of 3 hook strings, no explanation.`)
	return b.String()
}

func BodyPrompt(opts models.GenerateOptions) string {
	var b strings.Builder
	b.WriteString("You are a LinkedIn copywriter. Write the body of a post.\n\n")
	b.WriteString("Topic and hook: " + opts.Input + "\n")
	if opts.Context != "" {
		b.WriteString("Context: " + opts.Context + "\n")
	}
	b.WriteString(toneInstruction(opts.Tone) + "\n")
	b.WriteString(emojiInstruction(opts.EmojiDensity) + "\n")
	b.WriteString(lengthInstruction(opts.Length) + "\n")
	b.WriteString(languageInstruction(opts.Language) + "\n")
	b.WriteString("Return ONLY the post body, no explanation.")
	return b.String()
}

func CTAPrompt(opts models.GenerateOptions) string {
	var b strings.Builder
	b.WriteString("You are a LinkedIn copywriter. ")
	b.WriteString("Write 3 short call-to-action closers for this post:\n\n")
	b.WriteString(opts.Input + "\n")
	b.WriteString(toneInstruction(opts.Tone) + "\n")
	b.WriteString(languageInstruction(opts.Language) + "\n")
	b.WriteString(`Return ONLY a JSON array of 3 CTA strings, no explanation.`)
	return b.String()
}

func PolishPrompt(content string, tone int64, emojiDensity string) string {
	var b strings.Builder
	b.WriteString("Polish the following LinkedIn post. Fix grammar, improve flow, ")
	b.WriteString("keep the original meaning and structure.\n\n")
	b.WriteString(content + "\n\n")
	b.WriteString(toneInstruction(tone) + "\n")
	b.WriteString(emojiInstruction(emojiDensity) + "\n")
	b.WriteString("Return ONLY the polished post, no explanation.")
	return b.String()
}

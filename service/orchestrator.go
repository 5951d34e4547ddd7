package service

import (
	"strings"

	"github.com/draftforge/draftforge-server/models"
)

// Pipeline stages.
const (
	StepTopics = "topics"
	StepHooks  = "hooks"
	StepBody   = "body"
	StepCTA    = "cta"
	StepPolish = "polish"
)

// Fixed parameters for the tier-3 polish pass.
const (
	polishTone  = 6
	polishEmoji = "medium"
)

// Stage defaults returned when every provider attempt fails. Generation
// endpoints never surface AI errors to the caller; they degrade to
// placeholder text instead.
var stageDefaults = map[string][]string{
	StepTopics: {
		"Lessons learned from a recent project",
		"An industry trend worth watching",
		"A contrarian take on common advice",
	},
	StepHooks: {
		"I almost gave up on this. Then everything changed.",
		"Nobody talks about this, but it matters.",
	},
	StepBody: {
		"Every setback taught me something I could not have learned any other way. " +
			"The details differ for everyone, but the pattern is the same: show up, " +
			"pay attention, adjust.",
	},
	StepCTA: {
		"What has your experience been? Share it in the comments.",
		"Follow for more posts like this.",
	},
}

// IsValidStep reports whether step names a generation pipeline stage
// reachable from the generate endpoint.
func IsValidStep(step string) bool {
	switch step {
	case StepTopics, StepHooks, StepBody, StepCTA:
		return true
	}
	return false
}

// GenerateStage builds the stage prompt, runs it through the provider chain
// and normalizes the raw completion into candidate strings. It never returns
// an error: repeated provider failure degrades to the stage default.
func (s *Service) GenerateStage(step string, opts models.GenerateOptions, grant *models.GrantAuth) models.AIResult {
	var prompt string
	switch step {
	case StepTopics:
		prompt = TopicsPrompt(opts, s.ViralContext(opts.Input))
	case StepHooks:
		prompt = HooksPrompt(opts)
	case StepBody:
		prompt = BodyPrompt(opts)
	case StepCTA:
		prompt = CTAPrompt(opts)
	default:
		return models.AIResult{Result: []string{opts.Input}}
	}

	text, signature, err := s.completeStage(prompt, opts.Model, grant)
	if err != nil {
		s.Log.Warnw("stage degraded to default", "step", step, "err", err)
		return models.AIResult{Result: stageDefaults[step]}
	}
	return models.AIResult{Result: ParseCandidates(text), Signature: signature}
}

// PolishContent runs the polish pass over an assembled post.
func (s *Service) PolishContent(content string, tone int64, emojiDensity string, grant *models.GrantAuth) models.AIResult {
	text, signature, err := s.completeStage(PolishPrompt(content, tone, emojiDensity), "", grant)
	if err != nil {
		s.Log.Warnw("polish degraded to input", "err", err)
		return models.AIResult{Result: []string{content}}
	}
	return models.AIResult{Result: []string{FirstCandidate(text)}, Signature: signature}
}

// GenerateTier runs the fixed stage sequence for a content tier.
//
// Tier 1 keeps only the first candidate at each stage and assembles a single
// post. Tier 2 returns the full candidate sets. Tier 3 is tier 2 plus a
// final polish pass over the first-candidate assembly with fixed tone and
// emoji parameters.
func (s *Service) GenerateTier(tier int, opts models.GenerateOptions, grant *models.GrantAuth) models.TierContent {
	content := models.TierContent{Tier: tier}

	topics := s.GenerateStage(StepTopics, opts, grant).Result
	topic := topics[0]

	stageOpts := opts
	stageOpts.Input = topic
	hooks := s.GenerateStage(StepHooks, stageOpts, grant).Result

	stageOpts.Input = topic + "\n" + hooks[0]
	bodies := s.GenerateStage(StepBody, stageOpts, grant).Result

	stageOpts.Input = bodies[0]
	ctas := s.GenerateStage(StepCTA, stageOpts, grant).Result

	post := assemblePost(hooks[0], bodies[0], ctas[0])

	switch tier {
	case 1:
		content.Post = post
	case 2:
		content.Post = post
		content.Topics = topics
		content.Hooks = hooks
		content.Bodies = bodies
		content.CTAs = ctas
	default: // tier 3
		content.Post = post
		content.Topics = topics
		content.Hooks = hooks
		content.Bodies = bodies
		content.CTAs = ctas
		content.Polished = s.PolishContent(post, polishTone, polishEmoji, grant).Result[0]
	}
	return content
}

func assemblePost(hook, body, cta string) string {
	return strings.TrimSpace(hook) + "\n\n" + strings.TrimSpace(body) + "\n\n" + strings.TrimSpace(cta)
}

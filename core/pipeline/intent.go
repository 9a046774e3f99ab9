package pipeline

import (
	"strings"
)

// domainRule maps prompt cues to a domain and its standing goal. Rules are
// checked in order; the first hit wins.
type domainRule struct {
	domain string
	goal   string
	cues   []string
}

var domainRules = []domainRule{
	{
		domain: "billing",
		goal:   "monitor and analyze bills",
		cues:   []string{"bill", "invoice", "utility", "expense", "payment"},
	},
	{
		domain: "scheduling",
		goal:   "automate scheduling",
		cues:   []string{"schedule", "appointment", "calendar", "remind", "meeting"},
	},
	{
		domain: "decluttering",
		goal:   "declutter and donate items",
		cues:   []string{"declutter", "donat", "clutter", "tidy", "organize"},
	},
}

var frustrationCues = []string{"tired of", "sick of", "frustrat", "annoy", "fed up", "hate"}

var excitementCues = []string{"excited", "can't wait", "love", "awesome", "amazing"}

func (o *Orchestrator) interpret(prompt string) Intent {
	lower := strings.ToLower(prompt)

	intent := Intent{
		Goal:    strings.TrimSpace(prompt),
		Domain:  "general",
		Emotion: "neutral",
	}

	for _, rule := range domainRules {
		if containsAny(lower, rule.cues) {
			intent.Domain = rule.domain
			intent.Goal = rule.goal
			break
		}
	}

	switch {
	case containsAny(lower, frustrationCues):
		intent.Emotion = "frustration"
	case containsAny(lower, excitementCues):
		intent.Emotion = "excitement"
	default:
		if top := o.detector.Classify(prompt).Top(); top != "" {
			intent.Emotion = top
		}
	}

	return intent
}

func containsAny(s string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(s, cue) {
			return true
		}
	}
	return false
}

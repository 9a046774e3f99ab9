// Package mood scores free-text requests against an emotion lexicon and a set
// of structural syntax patterns. Its output drives agent routing.
package mood

import (
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"
)

const (
	keywordWeight    = 0.3
	intensifierBonus = 0.2
	contextBonus     = 0.4

	// scoreFloor is the normalized score below which an emotion is dropped
	// from the result.
	scoreFloor = 0.3
)

// EmotionScores maps an emotion name to a normalized score in [0,1]. Only
// emotions scoring above the retention floor appear.
type EmotionScores map[string]float64

// Top returns the highest-scoring emotion, or "" when no emotion scored.
func (s EmotionScores) Top() string {
	top, best := "", 0.0
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if s[name] > best {
			top, best = name, s[name]
		}
	}
	return top
}

type compiledKeyword struct {
	word string
	re   *regexp.Regexp
}

// Detector classifies request text. It is safe for concurrent use: all state
// is immutable after construction except the optional cache.
type Detector struct {
	keywords   map[string][]compiledKeyword
	patterns   map[string][]*regexp.Regexp
	categories []string
	cache      *Cache
	logger     *zap.Logger
}

// DetectorConfig configures a Detector. Zero values select the built-in
// lexicon and patterns with no cache.
type DetectorConfig struct {
	Lexicon  Lexicon
	Patterns PatternSet
	Cache    *Cache
	Logger   *zap.Logger
}

// NewDetector compiles the lexicon and pattern set into a Detector.
func NewDetector(cfg DetectorConfig) *Detector {
	if cfg.Lexicon == nil {
		cfg.Lexicon = DefaultLexicon()
	}
	if cfg.Patterns == nil {
		cfg.Patterns = DefaultPatterns()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	d := &Detector{
		keywords: make(map[string][]compiledKeyword, len(cfg.Lexicon)),
		patterns: make(map[string][]*regexp.Regexp, len(cfg.Patterns)),
		cache:    cfg.Cache,
		logger:   cfg.Logger,
	}

	for emotion, words := range cfg.Lexicon {
		compiled := make([]compiledKeyword, 0, len(words))
		for _, w := range words {
			re, err := regexp.Compile(`\b` + regexp.QuoteMeta(strings.ToLower(w)) + `\b`)
			if err != nil {
				cfg.Logger.Warn("skipping lexicon keyword", zap.String("keyword", w), zap.Error(err))
				continue
			}
			compiled = append(compiled, compiledKeyword{word: strings.ToLower(w), re: re})
		}
		d.keywords[emotion] = compiled
	}

	for category, pats := range cfg.Patterns {
		compiled := make([]*regexp.Regexp, 0, len(pats))
		for _, p := range pats {
			re, err := regexp.Compile(`\b(?:` + p + `)\b`)
			if err != nil {
				cfg.Logger.Warn("skipping syntax pattern", zap.String("pattern", p), zap.Error(err))
				continue
			}
			compiled = append(compiled, re)
		}
		d.patterns[category] = compiled
		d.categories = append(d.categories, category)
	}
	sort.Strings(d.categories)

	return d
}

// Classify scores text against the lexicon. Each whole-word keyword
// occurrence contributes a fixed weight; an intensifier immediately preceding
// a matched keyword adds a bonus once per intensifier type; contextual rules
// add a flat bonus. Raw scores are normalized by the maximum and entries at
// or below the floor are dropped.
func (d *Detector) Classify(text string) EmotionScores {
	if d.cache != nil {
		if cached, ok := d.cache.getEmotions(text); ok {
			return cached
		}
	}

	lower := strings.ToLower(text)
	raw := make(map[string]float64)

	for emotion, kws := range d.keywords {
		for _, kw := range kws {
			matches := kw.re.FindAllStringIndex(lower, -1)
			if len(matches) == 0 {
				continue
			}
			raw[emotion] += keywordWeight * float64(len(matches))
			for _, intensifier := range intensifiers {
				if strings.Contains(lower, intensifier+" "+kw.word) {
					raw[emotion] += intensifierBonus
				}
			}
		}
	}

	for _, rule := range contextRules {
		if rule.matches(lower) {
			raw[rule.emotion] += contextBonus
		}
	}

	max := 0.0
	for _, v := range raw {
		if v > max {
			max = v
		}
	}

	scores := make(EmotionScores)
	if max > 0 {
		for emotion, v := range raw {
			normalized := v / max
			if normalized > 1.0 {
				normalized = 1.0
			}
			if normalized > scoreFloor {
				scores[emotion] = normalized
			}
		}
	}

	if d.cache != nil {
		d.cache.setEmotions(text, scores)
	}
	return scores
}

func (r contextRule) matches(lower string) bool {
	if len(r.all) > 0 {
		for _, w := range r.all {
			if !strings.Contains(lower, w) {
				return false
			}
		}
		return true
	}
	for _, p := range r.any {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// MatchSyntax flags the structural categories present in text. Every declared
// category appears in the result. A second pass of exact contextual phrases
// force-sets categories in addition to the pattern pass.
func (d *Detector) MatchSyntax(text string) SyntaxFlags {
	if d.cache != nil {
		if cached, ok := d.cache.getSyntax(text); ok {
			return cached
		}
	}

	lower := strings.ToLower(text)
	flags := make(SyntaxFlags, len(d.categories))

	for _, category := range d.categories {
		flags[category] = false
		for _, re := range d.patterns[category] {
			if re.MatchString(lower) {
				flags[category] = true
				break
			}
		}
	}

	for _, rule := range phraseRules {
		if _, declared := flags[rule.category]; declared && strings.Contains(lower, rule.phrase) {
			flags[rule.category] = true
		}
	}

	if d.cache != nil {
		d.cache.setSyntax(text, flags)
	}
	return flags
}

// Categories returns the declared syntax categories in sorted order.
func (d *Detector) Categories() []string {
	out := make([]string, len(d.categories))
	copy(out, d.categories)
	return out
}
